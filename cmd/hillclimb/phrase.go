package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xrash/smetrics"

	"nickandperla.net/hillclimb"
)

func newPhraseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "phrase [target]",
		Short: "Guess a phrase one character at a time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			target := config.Phrase.Target
			if len(args) == 1 {
				target = args[0]
			}
			return solve(cmd.Context(), config, flags.bench, phraseProblem(target, config))
		},
	}
}

// phraseProblem scores a guess by its Hamming distance to target, so lower
// fitness is better and 0 is a match.
func phraseProblem(target string, config *hillclimb.ToolConfig) problem[rune, int] {
	geneSet := []rune(config.Phrase.GeneSet)
	targetRunes := []rune(target)

	fitness := func(genes []rune) (int, error) {
		return smetrics.Hamming(string(genes), target)
	}

	grouped := func(genes []rune, groupCount, maxGroupSize int) (int, error) {
		if len(genes) != len(targetRunes) {
			return 0, fmt.Errorf("guess has %d characters, target has %d", len(genes), len(targetRunes))
		}
		total := 0
		for g := 0; g < groupCount; g++ {
			start := g * maxGroupSize
			end := min(start+maxGroupSize, len(genes))
			d, err := smetrics.Hamming(string(genes[start:end]), string(targetRunes[start:end]))
			if err != nil {
				return 0, err
			}
			total += d
		}
		return total, nil
	}

	return problem[rune, int]{
		name:   "phrase",
		format: func(genes []rune) string { return string(genes) },
		options: func(seed int64) hillclimb.Options[rune, int] {
			return hillclimb.Options[rune, int]{
				GeneSet:        geneSet,
				Length:         len(targetRunes),
				MaxGroupSize:   config.MaxGroupSize,
				OptimalFitness: 0,
				Order:          hillclimb.Ascending[int](),
				Fitness:        fitness,
				GroupedFitness: grouped,
				MaxAge:         config.MaxAge,
				Random:         hillclimb.NewRandom(seed),
			}
		},
	}
}
