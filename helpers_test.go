package hillclimb

import (
	"fmt"
)

// scriptedRandom replays fixed values so tests can pick exact positions and
// symbols.
type scriptedRandom struct {
	values []int
	calls  int
}

func (r *scriptedRandom) Intn(n int) int {
	if r.calls >= len(r.values) {
		panic(fmt.Sprintf("scriptedRandom exhausted after %d calls", r.calls))
	}
	v := r.values[r.calls]
	r.calls++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted value %d out of range [0, %d)", v, n))
	}
	return v
}

func countMatches(target []int) FitnessFunc[int, int] {
	return func(genes []int) (int, error) {
		if len(genes) != len(target) {
			return 0, fmt.Errorf("length %d does not match target length %d", len(genes), len(target))
		}
		matches := 0
		for i := range genes {
			if genes[i] == target[i] {
				matches++
			}
		}
		return matches, nil
	}
}

func groupedCountMatches(target []int) GroupedFitnessFunc[int, int] {
	single := countMatches(target)
	return func(genes []int, _, _ int) (int, error) {
		return single(genes)
	}
}

func diffPositions[G comparable](a, b []G) int {
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff
}
