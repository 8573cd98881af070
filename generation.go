package hillclimb

import "fmt"

// GenerateParent builds the initial candidate. With length 0 (or equal to
// the gene set size) the candidate is the full gene set. Any other length
// is filled by repeatedly sampling up to len(geneSet) distinct symbols from
// the gene set.
func GenerateParent[G comparable, F any](geneSet []G, length int, rnd Random, eval *Evaluator[G, F]) (*Chromosome[G, F], error) {
	var genes []G
	if length <= 0 || length == len(geneSet) {
		genes = copyGenes(geneSet)
	} else {
		if len(geneSet) == 0 {
			return nil, fmt.Errorf("%w: cannot sample %d genes from an empty gene set", ErrInvalidConfig, length)
		}
		genes = make([]G, 0, length)
		for len(genes) < length {
			sampleSize := min(length-len(genes), len(geneSet))
			genes = append(genes, sample(geneSet, sampleSize, rnd)...)
		}
	}

	fitness, err := eval.EvaluateGrouped(genes)
	if err != nil {
		return nil, fmt.Errorf("evaluating parent fitness: %w", err)
	}
	return NewChromosome(genes, fitness), nil
}

// sample picks k distinct positions of set (partial Fisher-Yates) and
// returns the symbols found there.
func sample[G any](set []G, k int, rnd Random) []G {
	idx := make([]int, len(set))
	for i := range idx {
		idx[i] = i
	}

	out := make([]G, k)
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = set[idx[i]]
	}
	return out
}
