// Command warehouse plans optimal robot routes on a warehouse grid by
// solving the underlying MDP with Value Iteration and Policy
// Iteration, then reports and renders both results.
//
// Usage:
//
//	go run ./cmd/warehouse
//	go run ./cmd/warehouse --config warehouse.yaml --output ./out
//	go run ./cmd/warehouse --evaluation iterative --progress
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/experiment"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/render"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configFile  string
	outputDir   string
	metricsFile string
	evaluation  string
	progress    bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "warehouse",
		Short: "Plan optimal warehouse robot routes with MDP dynamic programming",
		Long: "warehouse models a grid warehouse as a Markov Decision " +
			"Process, solves it with Value Iteration and Policy Iteration, " +
			"prints a comparison report, and renders each solution as a PNG.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "",
		"YAML run configuration (default: built-in 10x10 warehouse)")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", ".",
		"directory for rendered PNGs")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics", "",
		"optional gob file to save run metrics to")
	cmd.Flags().StringVar(&opts.evaluation, "evaluation", "",
		"policy evaluation method: linear or iterative")
	cmd.Flags().BoolVar(&opts.progress, "progress", false,
		"display solver progress bars")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"enable debug logging")

	return cmd
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level}))

	cfg := experiment.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = experiment.LoadConfig(opts.configFile); err != nil {
			return err
		}
	}
	if opts.evaluation != "" {
		cfg.Solver.Evaluation = solver.EvaluationMethod(opts.evaluation)
	}
	cfg.Solver.ShowProgress = opts.progress

	comparison, err := experiment.Run(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Println(comparison.Grid)
	fmt.Println(experiment.Report(comparison))

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %v", err)
	}
	outcomes := []struct {
		outcome  experiment.Outcome
		filename string
	}{
		{comparison.ValueIteration, "value_iteration.png"},
		{comparison.PolicyIteration, "policy_iteration.png"},
	}
	for _, o := range outcomes {
		name := filepath.Join(opts.outputDir, o.filename)
		err := render.SavePNG(name, comparison.Grid, o.outcome.Result.Values,
			o.outcome.Result.Policy, o.outcome.Metrics.Path,
			o.outcome.Metrics.Algorithm)
		if err != nil {
			return err
		}
		logger.Info("plot written", slog.String("file", name))
	}

	if opts.metricsFile != "" {
		metrics := []experiment.Metrics{
			comparison.ValueIteration.Metrics,
			comparison.PolicyIteration.Metrics,
		}
		if err := experiment.SaveMetrics(opts.metricsFile, metrics); err != nil {
			return err
		}
		logger.Info("metrics saved", slog.String("file", opts.metricsFile))
	}

	return nil
}
