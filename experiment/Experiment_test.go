package experiment_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/experiment"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/solver"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scenario() experiment.Config {
	return experiment.Config{
		Grid: gridworld.Config{
			Height: 5,
			Width:  5,
			Start:  gridworld.State{Row: 0, Col: 0},
			Goal:   gridworld.State{Row: 4, Col: 4},
			Obstacles: []gridworld.State{
				{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
			},
			StepCost:        -1,
			ObstaclePenalty: -10,
			GoalReward:      10,
		},
		Solver:       solver.Config{Gamma: 0.9, Theta: 1e-8, MaxIterations: 10_000},
		MaxPathSteps: 50,
	}
}

func TestRun_ReferenceScenario(t *testing.T) {
	comparison, err := experiment.Run(scenario(), quietLogger())
	require.NoError(t, err)

	for _, o := range []experiment.Outcome{
		comparison.ValueIteration, comparison.PolicyIteration,
	} {
		m := o.Metrics
		assert.True(t, m.Converged, m.Algorithm)
		assert.True(t, m.Success, m.Algorithm)
		assert.Equal(t, 8, m.PathLength, m.Algorithm)
		assert.Equal(t, comparison.Grid.Start(), m.Path[0], m.Algorithm)
		assert.Equal(t, comparison.Grid.Goal(), m.Path[len(m.Path)-1],
			m.Algorithm)
		assert.Positive(t, m.Iterations, m.Algorithm)
	}

	assert.Less(t, comparison.PolicyIteration.Metrics.Iterations,
		comparison.ValueIteration.Metrics.Iterations)
}

func TestRun_StartEqualsGoal(t *testing.T) {
	c := scenario()
	c.Grid.Goal = c.Grid.Start

	comparison, err := experiment.Run(c, quietLogger())
	require.NoError(t, err)

	m := comparison.ValueIteration.Metrics
	assert.True(t, m.Success)
	assert.Zero(t, m.PathLength)
}

func TestRun_EnclosedGoalIsNeverASuccess(t *testing.T) {
	c := scenario()
	c.Grid.Goal = gridworld.State{Row: 2, Col: 2}
	c.Grid.Obstacles = []gridworld.State{
		{Row: 1, Col: 2}, {Row: 3, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
	}

	comparison, err := experiment.Run(c, quietLogger())
	require.NoError(t, err)

	assert.False(t, comparison.ValueIteration.Metrics.Success)
	assert.False(t, comparison.PolicyIteration.Metrics.Success)
}

func TestRun_InvalidGridIsFatal(t *testing.T) {
	c := scenario()
	c.Grid.Start = gridworld.State{Row: 1, Col: 1} // on a shelf

	_, err := experiment.Run(c, quietLogger())
	assert.Error(t, err)
}

func TestRun_InvalidSolverConfigIsFatal(t *testing.T) {
	c := scenario()
	c.Solver.Gamma = 1.5

	_, err := experiment.Run(c, quietLogger())
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
grid:
  height: 5
  width: 5
  start: {row: 0, col: 0}
  goal: {row: 4, col: 4}
  obstacles:
    - {row: 1, col: 1}
    - {row: 1, col: 2}
  step_cost: -1
  obstacle_penalty: -10
  goal_reward: 10
solver:
  gamma: 0.9
  theta: 1.0e-6
  max_iterations: 5000
  evaluation: iterative
max_path_steps: 40
`), 0o644))

	c, err := experiment.LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Grid.Height)
	assert.Len(t, c.Grid.Obstacles, 2)
	assert.Equal(t, gridworld.State{Row: 4, Col: 4}, c.Grid.Goal)
	assert.Equal(t, 0.9, c.Solver.Gamma)
	assert.Equal(t, solver.IterativeEvaluation, c.Solver.Evaluation)
	assert.Equal(t, 40, c.MaxPathSteps)

	_, err = experiment.Run(c, quietLogger())
	assert.NoError(t, err)
}

func TestLoadConfig_MissingOrMalformed(t *testing.T) {
	_, err := experiment.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("grid: ["), 0o644))
	_, err = experiment.LoadConfig(file)
	assert.Error(t, err)
}

func TestDefaultConfig_Runs(t *testing.T) {
	comparison, err := experiment.Run(experiment.DefaultConfig(), quietLogger())
	require.NoError(t, err)

	assert.True(t, comparison.ValueIteration.Metrics.Success)
	assert.True(t, comparison.PolicyIteration.Metrics.Success)
	assert.Equal(t, comparison.ValueIteration.Metrics.PathLength,
		comparison.PolicyIteration.Metrics.PathLength)
}

func TestSaveAndLoadMetrics(t *testing.T) {
	comparison, err := experiment.Run(scenario(), quietLogger())
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "metrics.bin")
	saved := []experiment.Metrics{
		comparison.ValueIteration.Metrics,
		comparison.PolicyIteration.Metrics,
	}
	require.NoError(t, experiment.SaveMetrics(file, saved))

	loaded, err := experiment.LoadMetrics(file)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestReport_MentionsBothAlgorithms(t *testing.T) {
	comparison, err := experiment.Run(scenario(), quietLogger())
	require.NoError(t, err)

	report := experiment.Report(comparison)
	assert.Contains(t, report, "Value Iteration")
	assert.Contains(t, report, "Policy Iteration")
	assert.Contains(t, report, "Path length")
}
