package hillclimb

import (
	"cmp"
	"fmt"
)

// Fitness values are opaque to the search. The caller decides what "better"
// means by supplying an Order; the search never compares fitness any other
// way.

// Order reports whether a sorts strictly before b in the caller's total
// order.
type Order[F any] func(a, b F) bool

// Ascending orders fitness from numerically low to high. Searches using it
// climb towards numerically lower values.
func Ascending[F cmp.Ordered]() Order[F] {
	return func(a, b F) bool { return a < b }
}

// Descending orders fitness from numerically high to low. Searches using it
// climb towards numerically higher values.
func Descending[F cmp.Ordered]() Order[F] {
	return func(a, b F) bool { return a > b }
}

// Compare returns -1 if a sorts before b, 1 if after and 0 if neither does.
func (o Order[F]) Compare(a, b F) int {
	switch {
	case o(a, b):
		return -1
	case o(b, a):
		return 1
	}
	return 0
}

// FitnessFunc scores a gene sequence. It is only used by default mutation.
type FitnessFunc[G comparable, F any] func(genes []G) (F, error)

// GroupedFitnessFunc scores a gene sequence that the caller partitions into
// groupCount groups of at most maxGroupSize genes.
type GroupedFitnessFunc[G comparable, F any] func(genes []G, groupCount, maxGroupSize int) (F, error)

// Evaluator holds both fitness capabilities. They are kept distinct on
// purpose: default mutation scores children with Fitness while parent
// generation and custom mutation use Grouped.
type Evaluator[G comparable, F any] struct {
	Fitness      FitnessFunc[G, F]
	Grouped      GroupedFitnessFunc[G, F]
	MaxGroupSize int
}

func NewEvaluator[G comparable, F any](fitness FitnessFunc[G, F], grouped GroupedFitnessFunc[G, F], maxGroupSize int) *Evaluator[G, F] {
	return &Evaluator[G, F]{
		Fitness:      fitness,
		Grouped:      grouped,
		MaxGroupSize: maxGroupSize,
	}
}

func (e *Evaluator[G, F]) Evaluate(genes []G) (F, error) {
	if e.Fitness == nil {
		var zero F
		return zero, fmt.Errorf("%w: no single-argument fitness function", ErrInvalidConfig)
	}
	return e.Fitness(genes)
}

func (e *Evaluator[G, F]) EvaluateGrouped(genes []G) (F, error) {
	if e.Grouped == nil {
		var zero F
		return zero, fmt.Errorf("%w: no grouped fitness function", ErrInvalidConfig)
	}
	return e.Grouped(genes, GroupCount(len(genes), e.MaxGroupSize), e.MaxGroupSize)
}

// GroupCount is ceil(length / maxGroupSize).
func GroupCount(length, maxGroupSize int) int {
	return (length + maxGroupSize - 1) / maxGroupSize
}
