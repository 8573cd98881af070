package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nickandperla.net/hillclimb"
)

func newSortCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort numbers by swapping pairs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if len(config.Sort.Numbers) < 2 {
				return fmt.Errorf("%w: sort needs at least 2 numbers", hillclimb.ErrInvalidConfig)
			}
			return solve(cmd.Context(), config, flags.bench, sortProblem(config))
		},
	}
}

// sortProblem starts from the configured numbers and swaps two of them per
// mutation. Fitness counts inversions, attributing each one to the group of
// its left element, so 0 means sorted.
func sortProblem(config *hillclimb.ToolConfig) problem[int, int] {
	grouped := func(genes []int, groupCount, maxGroupSize int) (int, error) {
		inversions := 0
		for g := 0; g < groupCount; g++ {
			start := g * maxGroupSize
			end := min(start+maxGroupSize, len(genes))
			for i := start; i < end; i++ {
				for j := i + 1; j < len(genes); j++ {
					if genes[i] > genes[j] {
						inversions++
					}
				}
			}
		}
		return inversions, nil
	}

	return problem[int, int]{
		name:   "sort",
		format: func(genes []int) string { return fmt.Sprint(genes) },
		options: func(seed int64) hillclimb.Options[int, int] {
			rnd := hillclimb.NewRandom(seed)
			swap := func(genes []int, _ int) ([]int, error) {
				i, j := rnd.Intn(len(genes)), rnd.Intn(len(genes)-1)
				if j >= i {
					j++
				}
				child := append([]int(nil), genes...)
				child[i], child[j] = child[j], child[i]
				return child, nil
			}
			return hillclimb.Options[int, int]{
				GeneSet:        config.Sort.Numbers,
				MaxGroupSize:   config.MaxGroupSize,
				OptimalFitness: 0,
				Order:          hillclimb.Ascending[int](),
				GroupedFitness: grouped,
				Mutate:         swap,
				MaxAge:         config.MaxAge,
				Random:         rnd,
			}
		},
	}
}
