package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/hillclimb"
	"nickandperla.net/hillclimb/benchmark"
)

type globalFlags struct {
	configPath string
	seed       int64
	maxAge     int
	groupSize  int
	debug      bool
	dbPath     string
	bench      bool
	profile    string
}

// newRootCmd returns the command tree and a function that stops a profile
// started by --profile. The stop function must run whether or not the command
// failed.
func newRootCmd() (*cobra.Command, func()) {
	var flags globalFlags
	var stopProfile func()

	cmd := &cobra.Command{
		Use:          "hillclimb",
		Short:        "Stochastic hill climbing over gene sequences",
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "TOML or YAML config file")
	pf.Int64Var(&flags.seed, "seed", 0, "random seed, 0 seeds from the clock")
	pf.IntVar(&flags.maxAge, "max-age", 0, "stop once the best candidate is this old, 0 disables")
	pf.IntVar(&flags.groupSize, "group-size", 0, "max gene group size passed to fitness functions")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.dbPath, "db", "", "sqlite file to record runs in")
	pf.BoolVar(&flags.bench, "bench", false, "time 100 silent runs instead of one")
	pf.StringVar(&flags.profile, "profile", "", "write a CPU profile to this directory")

	cmd.PersistentPreRun = func(*cobra.Command, []string) {
		if flags.profile != "" {
			stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath(flags.profile), profile.Quiet, profile.NoShutdownHook).Stop
		}
	}

	cmd.AddCommand(
		newPhraseCmd(&flags),
		newSortCmd(&flags),
		newHistoryCmd(&flags),
	)
	return cmd, func() {
		if stopProfile != nil {
			stopProfile()
			stopProfile = nil
		}
	}
}

// loadConfig merges the config file (if any) with command line overrides and
// configures logging.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*hillclimb.ToolConfig, error) {
	config := hillclimb.DefaultToolConfig()
	if flags.configPath != "" {
		var err error
		if config, err = hillclimb.LoadToolConfig(flags.configPath); err != nil {
			return nil, err
		}
	}

	pf := cmd.Flags()
	if pf.Changed("seed") {
		config.Seed = flags.seed
	}
	if pf.Changed("max-age") {
		config.MaxAge = flags.maxAge
	}
	if pf.Changed("group-size") {
		config.MaxGroupSize = flags.groupSize
	}
	if pf.Changed("debug") {
		config.Debug = flags.debug
	}
	if flags.dbPath != "" {
		config.Persistence = &hillclimb.PersistenceConfig{
			Path: filepath.Dir(flags.dbPath),
			Name: filepath.Base(flags.dbPath),
		}
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if config.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return config, nil
}

// problem is one runnable demo.
type problem[G comparable, F any] struct {
	name    string
	options func(seed int64) hillclimb.Options[G, F]
	format  func([]G) string
}

// solve runs p once (recording it when persistence is configured) or, with
// --bench, 100 times under the benchmark harness.
func solve[G comparable, F any](ctx context.Context, config *hillclimb.ToolConfig, bench bool, p problem[G, F]) error {
	var persist *hillclimb.Persistence
	if config.Persistence != nil {
		var err error
		if persist, err = hillclimb.NewPersistence(config.Persistence); err != nil {
			return fmt.Errorf("failed to open run history: %w", err)
		}
		defer persist.Shutdown()
	}

	if bench {
		var runErr error
		seed := config.Seed
		_, err := benchmark.New().Run(func() {
			if runErr != nil {
				return
			}
			_, runErr = solveOnce(ctx, persist, p, seed)
			seed++
		})
		if err != nil {
			return err
		}
		return runErr
	}

	best, err := solveOnce(ctx, persist, p, config.Seed)
	if err != nil {
		return err
	}
	printSummary(p, best, config.Seed)
	return nil
}

func solveOnce[G comparable, F any](ctx context.Context, persist *hillclimb.Persistence, p problem[G, F], seed int64) (*hillclimb.Chromosome[G, F], error) {
	opts := p.options(seed)
	opts.Display = newDisplay(opts, p.format)

	var run *hillclimb.Run
	if persist != nil {
		var err error
		if run, err = persist.StartRun(p.name, seed); err != nil {
			return nil, err
		}
		opts.Display = hillclimb.RecordDisplay(persist, run, p.format, opts.Display)
	}

	engine, err := hillclimb.NewEngine(opts)
	if err != nil {
		return nil, err
	}
	best, runErr := engine.Run(ctx)

	if run != nil {
		var fitness string
		var age int
		if best != nil {
			fitness, age = fmt.Sprint(best.Fitness), best.Age
		}
		if err := persist.FinishRun(run, engine.Generation(), fitness, age); err != nil {
			logrus.WithError(err).Warn("run outcome not recorded")
		}
	}
	return best, runErr
}

// newDisplay prints every improvement with the time since the search started
// and highlights the ones that meet the goal.
func newDisplay[G comparable, F any](opts hillclimb.Options[G, F], format func([]G) string) hillclimb.DisplayFunc[G, F] {
	start := time.Now()
	goal := color.New(color.FgGreen, color.Bold).SprintFunc()
	return func(c *hillclimb.Chromosome[G, F]) {
		line := fmt.Sprintf("%s\t%s\t%v", format(c.Genes), c, time.Since(start))
		if !opts.Order(opts.OptimalFitness, c.Fitness) {
			line = goal(line)
		}
		fmt.Fprintln(os.Stdout, line)
	}
}

func printSummary[G comparable, F any](p problem[G, F], best *hillclimb.Chromosome[G, F], seed int64) {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("PROBLEM", "SEED", "GENES", "FITNESS", "AGE")
	table.AddRow(p.name, seed, p.format(best.Genes), best.Fitness, best.Age)
	fmt.Println(table)
}
