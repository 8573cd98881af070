package hillclimb

import (
	"fmt"
)

// Mutator produces one child from a parent. Children always start with age
// 0 and never share gene storage with the parent.
type Mutator[G comparable, F any] interface {
	Mutate(parent *Chromosome[G, F]) (*Chromosome[G, F], error)
}

// MutateFunc transforms a private copy of a parent's genes into the genes of
// a child.
type MutateFunc[G comparable] func(genes []G, maxGroupSize int) ([]G, error)

// GeneMutator substitutes the gene at one random position.
type GeneMutator[G comparable, F any] struct {
	GeneSet   []G
	Random    Random
	Evaluator *Evaluator[G, F]
}

func NewGeneMutator[G comparable, F any](geneSet []G, rnd Random, eval *Evaluator[G, F]) *GeneMutator[G, F] {
	return &GeneMutator[G, F]{
		GeneSet:   geneSet,
		Random:    rnd,
		Evaluator: eval,
	}
}

// Mutate picks a position, samples two distinct symbols and writes the first
// one unless it equals the gene already there, in which case the second is
// written. The child is scored with the single-argument fitness function.
func (m *GeneMutator[G, F]) Mutate(parent *Chromosome[G, F]) (*Chromosome[G, F], error) {
	if len(parent.Genes) == 0 {
		return nil, fmt.Errorf("%w: parent has no genes to mutate", ErrInvalidConfig)
	}
	if distinctSymbols(m.GeneSet, 2) < 2 {
		return nil, fmt.Errorf("gene set of %d symbols: %w", len(m.GeneSet), ErrGeneSetTooSmall)
	}

	childGenes := copyGenes(parent.Genes)
	index := m.Random.Intn(len(parent.Genes))
	picked := sample(m.GeneSet, 2, m.Random)
	newGene, alternate := picked[0], picked[1]
	if newGene == childGenes[index] {
		childGenes[index] = alternate
	} else {
		childGenes[index] = newGene
	}

	fitness, err := m.Evaluator.Evaluate(childGenes)
	if err != nil {
		return nil, fmt.Errorf("evaluating child fitness: %w", err)
	}
	return NewChromosome(childGenes, fitness), nil
}

// CustomMutator delegates the transformation to a caller function and scores
// the child with the grouped fitness function.
type CustomMutator[G comparable, F any] struct {
	Mutation  MutateFunc[G]
	Evaluator *Evaluator[G, F]
}

func NewCustomMutator[G comparable, F any](fn MutateFunc[G], eval *Evaluator[G, F]) *CustomMutator[G, F] {
	return &CustomMutator[G, F]{
		Mutation:  fn,
		Evaluator: eval,
	}
}

func (m *CustomMutator[G, F]) Mutate(parent *Chromosome[G, F]) (*Chromosome[G, F], error) {
	childGenes, err := m.Mutation(copyGenes(parent.Genes), m.Evaluator.MaxGroupSize)
	if err != nil {
		return nil, fmt.Errorf("custom mutation: %w", err)
	}

	fitness, err := m.Evaluator.EvaluateGrouped(childGenes)
	if err != nil {
		return nil, fmt.Errorf("evaluating child fitness: %w", err)
	}
	return NewChromosome(childGenes, fitness), nil
}

// distinctSymbols counts the distinct symbols of set, stopping at limit.
func distinctSymbols[G comparable](set []G, limit int) int {
	seen := make(map[G]struct{}, limit)
	for _, g := range set {
		seen[g] = struct{}{}
		if len(seen) >= limit {
			break
		}
	}
	return len(seen)
}
