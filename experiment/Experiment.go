// Package experiment runs both dynamic-programming solvers on a single
// warehouse grid and collects comparable metrics for each: iteration
// counts, wall-clock time, the extracted path and whether it reached
// the goal.
package experiment

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/solver"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/trajectory"
)

// Config describes a full experiment run: the grid, the shared solver
// hyperparameters, and the path-extraction step bound.
type Config struct {
	Grid         gridworld.Config `yaml:"grid"`
	Solver       solver.Config    `yaml:"solver"`
	MaxPathSteps int              `yaml:"max_path_steps"`
}

// LoadConfig reads an experiment Config from a YAML file. Validation
// happens later, in the gridworld and solver constructors.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %v", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not parse %v: %v",
			filename, err)
	}
	if c.MaxPathSteps == 0 {
		c.MaxPathSteps = trajectory.DefaultMaxSteps
	}
	return c, nil
}

// Outcome bundles one solver's full result with its metrics.
type Outcome struct {
	Result  *solver.Result
	Metrics Metrics
}

// Comparison is the output of a Run: both solvers' outcomes on the
// same immutable grid.
type Comparison struct {
	Grid            *gridworld.GridWorld
	ValueIteration  Outcome
	PolicyIteration Outcome
}

// Run builds the grid, solves it with Value Iteration and Policy
// Iteration, and extracts each resulting policy's path. Convergence
// and path failures are reported through the metrics and the logger,
// not as errors: only a malformed grid, a bad solver config, or an
// unexpected evaluation failure aborts the run. A nil logger means
// slog.Default().
func Run(c Config, logger *slog.Logger) (*Comparison, error) {
	if logger == nil {
		logger = slog.Default()
	}

	g, err := gridworld.New(c.Grid)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	logger.Info("grid constructed",
		slog.Int("height", g.Height()),
		slog.Int("width", g.Width()),
		slog.Int("states", g.NumStates()))

	vi, err := solver.NewValueIteration(c.Solver)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	pi, err := solver.NewPolicyIteration(c.Solver)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	comparison := &Comparison{Grid: g}
	if comparison.ValueIteration, err = runSolver(g, vi, c.MaxPathSteps,
		logger); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	if comparison.PolicyIteration, err = runSolver(g, pi, c.MaxPathSteps,
		logger); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	return comparison, nil
}

func runSolver(g *gridworld.GridWorld, s solver.Solver, maxPathSteps int,
	logger *slog.Logger) (Outcome, error) {

	result, err := s.Solve(g)
	converged := true
	if err != nil {
		var convErr *solver.ConvergenceError
		if !errors.As(err, &convErr) {
			return Outcome{}, err
		}
		// Recoverable: the partial values and policy are still usable.
		converged = false
		logger.Warn("solver hit its iteration cap",
			slog.String("algorithm", s.Name()),
			slog.String("detail", convErr.Error()))
	}

	metrics := Metrics{
		Algorithm:    s.Name(),
		Iterations:   result.Iterations,
		Elapsed:      result.Elapsed,
		Converged:    converged,
		ValueAtStart: result.Values[g.Start()],
	}

	path, err := trajectory.Extract(g, result.Policy, g.Start(), maxPathSteps)
	if err != nil {
		var notFound *trajectory.PathNotFoundError
		if !errors.As(err, &notFound) {
			return Outcome{}, err
		}
		metrics.Path = notFound.Path // truncated, for diagnostics
		logger.Warn("policy does not reach the goal",
			slog.String("algorithm", s.Name()),
			slog.Int("truncated_length", len(notFound.Path)-1))
	} else {
		metrics.Path = path
		metrics.PathLength = len(path) - 1
		metrics.Success = true
	}

	logger.Info("solver finished",
		slog.String("algorithm", s.Name()),
		slog.Int("iterations", metrics.Iterations),
		slog.Duration("elapsed", metrics.Elapsed),
		slog.Bool("success", metrics.Success),
		slog.Int("path_length", metrics.PathLength))

	return Outcome{Result: result, Metrics: metrics}, nil
}

// Metrics summarises one solver run for reporting.
type Metrics struct {
	Algorithm    string
	Iterations   int
	Elapsed      time.Duration
	Converged    bool
	Success      bool
	Path         []gridworld.State
	PathLength   int
	ValueAtStart float64
}
