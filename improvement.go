package hillclimb

import (
	"context"
	"fmt"
)

// ParentGenerator builds the candidate an ImprovementStream starts from.
type ParentGenerator[G comparable, F any] func() (*Chromosome[G, F], error)

// ImprovementStream is a pull based state machine over the search. Every
// call to Next runs mutations until there is something to yield, the stream
// terminates, or a callback fails. A stream owns its state and cannot be
// restarted.
type ImprovementStream[G comparable, F any] struct {
	generate ParentGenerator[G, F]
	mutator  Mutator[G, F]
	order    Order[F]
	maxAge   int

	parent *Chromosome[G, F]
	best   *Chromosome[G, F]

	generation int
	started    bool
	done       bool
}

// NewImprovementStream creates a stream. The parent is generated on the
// first call to Next. maxAge <= 0 disables the age limit.
func NewImprovementStream[G comparable, F any](generate ParentGenerator[G, F], mutator Mutator[G, F], order Order[F], maxAge int) *ImprovementStream[G, F] {
	return &ImprovementStream[G, F]{
		generate: generate,
		mutator:  mutator,
		order:    order,
		maxAge:   maxAge,
	}
}

// Next returns the next yielded candidate, or ErrExhausted once the stream
// has terminated. Yielded values are snapshots. Any other error ends the
// stream.
func (s *ImprovementStream[G, F]) Next(ctx context.Context) (*Chromosome[G, F], error) {
	if s.done {
		return nil, ErrExhausted
	}

	if !s.started {
		parent, err := s.generate()
		if err != nil {
			s.done = true
			return nil, fmt.Errorf("generating parent: %w", err)
		}
		s.parent, s.best = parent, parent
		s.started = true
	}

	for {
		if err := ctx.Err(); err != nil {
			s.done = true
			return nil, err
		}

		child, err := s.mutator.Mutate(s.parent)
		if err != nil {
			s.done = true
			return nil, fmt.Errorf("generation %d: %w", s.generation+1, err)
		}
		s.generation++
		s.best.IncrementAge()

		switch Select(s.order, s.parent.Fitness, child.Fitness, s.best.Fitness) {
		case Discard:
			if s.maxAge <= 0 || s.best.Age < s.maxAge {
				continue
			}
			s.done = true
			return s.best.Clone(), nil
		case Promote:
			child.Age = s.best.Age
			s.best = child
			s.parent = child
			return child.Clone(), nil
		case Advance:
			s.parent = child
		case Hold:
		}
	}
}

// Generation is the number of children produced so far.
func (s *ImprovementStream[G, F]) Generation() int {
	return s.generation
}

// Best returns a snapshot of the best candidate, or nil before the first
// call to Next.
func (s *ImprovementStream[G, F]) Best() *Chromosome[G, F] {
	if s.best == nil {
		return nil
	}
	return s.best.Clone()
}

// Parent returns a snapshot of the working parent, or nil before the first
// call to Next.
func (s *ImprovementStream[G, F]) Parent() *Chromosome[G, F] {
	if s.parent == nil {
		return nil
	}
	return s.parent.Clone()
}
