package hillclimb

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DisplayFunc is called once for every yielded improvement, in order.
type DisplayFunc[G comparable, F any] func(*Chromosome[G, F])

// Options configure one search run.
type Options[G comparable, F any] struct {
	// GeneSet is the alphabet genes are drawn from. It is also the initial
	// candidate unless Length says otherwise.
	GeneSet []G
	// Length of the initial candidate. 0 means len(GeneSet).
	Length int
	// MaxGroupSize is passed through to the grouped fitness function and to
	// Mutate. Must be at least 1.
	MaxGroupSize int

	OptimalFitness F
	Order          Order[F]

	Fitness        FitnessFunc[G, F]
	GroupedFitness GroupedFitnessFunc[G, F]

	// Mutate replaces the default single gene substitution when set.
	Mutate MutateFunc[G]

	Display DisplayFunc[G, F]

	// MaxAge stops the search once the best candidate has gone this many
	// generations without being superseded. NoAgeLimit disables it.
	MaxAge int

	Random Random
	Logger logrus.FieldLogger
}

// Engine drives an ImprovementStream and applies the stop conditions.
type Engine[G comparable, F any] struct {
	opts   Options[G, F]
	stream *ImprovementStream[G, F]
	log    logrus.FieldLogger
}

func NewEngine[G comparable, F any](opts Options[G, F]) (*Engine[G, F], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Random == nil {
		opts.Random = NewRandom(0)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Display == nil {
		opts.Display = func(*Chromosome[G, F]) {}
	}

	eval := NewEvaluator(opts.Fitness, opts.GroupedFitness, opts.MaxGroupSize)

	var mutator Mutator[G, F]
	if opts.Mutate == nil {
		mutator = NewGeneMutator(opts.GeneSet, opts.Random, eval)
	} else {
		mutator = NewCustomMutator(opts.Mutate, eval)
	}

	generate := func() (*Chromosome[G, F], error) {
		return GenerateParent(opts.GeneSet, opts.Length, opts.Random, eval)
	}

	return &Engine[G, F]{
		opts:   opts,
		stream: NewImprovementStream(generate, mutator, opts.Order, opts.MaxAge),
		log:    opts.Logger,
	}, nil
}

func (o *Options[G, F]) validate() error {
	if o.Order == nil {
		return fmt.Errorf("%w: an Order is required", ErrInvalidConfig)
	}
	if o.GroupedFitness == nil {
		return fmt.Errorf("%w: a grouped fitness function is required", ErrInvalidConfig)
	}
	if o.Mutate == nil && o.Fitness == nil {
		return fmt.Errorf("%w: default mutation requires a single-argument fitness function", ErrInvalidConfig)
	}
	if o.MaxGroupSize < 1 {
		return fmt.Errorf("%w: max group size must be at least 1, got %d", ErrInvalidConfig, o.MaxGroupSize)
	}
	if len(o.GeneSet) == 0 {
		return fmt.Errorf("%w: gene set is empty", ErrInvalidConfig)
	}
	if o.Mutate == nil && distinctSymbols(o.GeneSet, 2) < 2 {
		return fmt.Errorf("%w: default mutation needs 2 distinct symbols: %w", ErrInvalidConfig, ErrGeneSetTooSmall)
	}
	if o.Length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidConfig, o.Length)
	}
	return nil
}

// Run pulls improvements until one meets the optimal fitness or reaches the
// age limit and returns it. Without an age limit and with an unreachable
// goal Run only returns when ctx is cancelled. Once a run has ended, further
// calls return ErrExhausted.
func (e *Engine[G, F]) Run(ctx context.Context) (*Chromosome[G, F], error) {
	for {
		improvement, err := e.stream.Next(ctx)
		if errors.Is(err, ErrExhausted) {
			return nil, err
		}
		if err != nil {
			e.log.WithError(err).WithField("generation", e.stream.Generation()).Debug("search aborted")
			return nil, err
		}

		e.log.WithFields(logrus.Fields{
			"generation": e.stream.Generation(),
			"fitness":    improvement.Fitness,
			"age":        improvement.Age,
		}).Debug("improvement")

		e.opts.Display(improvement)

		if !e.opts.Order(e.opts.OptimalFitness, improvement.Fitness) {
			e.log.WithField("generation", e.stream.Generation()).Debug("optimal fitness reached")
			return improvement, nil
		}
		if e.opts.MaxAge > 0 && improvement.Age >= e.opts.MaxAge {
			e.log.WithField("generation", e.stream.Generation()).Debug("age limit reached")
			return improvement, nil
		}
	}
}

// Generation is the number of children evaluated so far.
func (e *Engine[G, F]) Generation() int {
	return e.stream.Generation()
}

// GetBest builds an Engine from opts and runs it.
func GetBest[G comparable, F any](ctx context.Context, opts Options[G, F]) (*Chromosome[G, F], error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx)
}
