package main

import (
	"fmt"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"nickandperla.net/hillclimb"
)

func newHistoryCmd(flags *globalFlags) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, or the improvements of one run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if config.Persistence == nil {
				return fmt.Errorf("%w: history needs --db or a [persistence] section", hillclimb.ErrInvalidConfig)
			}

			persist, err := hillclimb.NewPersistence(config.Persistence)
			if err != nil {
				return err
			}
			defer persist.Shutdown()

			if runID != "" {
				return showRun(persist, runID)
			}
			return listRuns(persist, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to list")
	cmd.Flags().StringVar(&runID, "run", "", "show the improvements of this run")
	return cmd
}

func listRuns(persist *hillclimb.Persistence, limit int) error {
	runs, err := persist.ListRuns(limit)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("RUN", "PROBLEM", "SEED", "STARTED", "GENERATIONS", "BEST", "AGE")
	for _, r := range runs {
		table.AddRow(r.ID, r.Problem, r.Seed, r.StartedAt.Format(time.RFC3339), r.Generations, r.BestFitness, r.BestAge)
	}
	fmt.Println(table)
	return nil
}

func showRun(persist *hillclimb.Persistence, id string) error {
	run, err := persist.LoadRun(id)
	if err != nil {
		return err
	}
	metrics, err := persist.QueryRunMetrics(id)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("#", "GENES", "FITNESS", "AGE")
	for _, imp := range run.Improvements {
		table.AddRow(imp.Sequence, imp.Genes, imp.Fitness, imp.Age)
	}
	fmt.Println(table)
	fmt.Printf("%d improvements, %d generations, max age %d, took %v\n",
		metrics.Improvements, metrics.Generations, metrics.MaxAge, metrics.Duration)
	return nil
}
