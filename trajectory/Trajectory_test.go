package trajectory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/solver"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/trajectory"
)

func newGrid(t *testing.T, c gridworld.Config) *gridworld.GridWorld {
	t.Helper()
	g, err := gridworld.New(c)
	require.NoError(t, err)
	return g
}

func lineGrid(t *testing.T) *gridworld.GridWorld {
	return newGrid(t, gridworld.Config{
		Height: 1,
		Width:  4,
		Start:  gridworld.State{Row: 0, Col: 0},
		Goal:   gridworld.State{Row: 0, Col: 3},
	})
}

func TestExtract_FollowsPolicyToGoal(t *testing.T) {
	g := lineGrid(t)
	policy := solver.Policy{
		{Row: 0, Col: 0}: gridworld.Right,
		{Row: 0, Col: 1}: gridworld.Right,
		{Row: 0, Col: 2}: gridworld.Right,
	}

	path, err := trajectory.Extract(g, policy, g.Start(), 10)
	require.NoError(t, err)
	assert.Equal(t, []gridworld.State{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
	}, path)
}

func TestExtract_StartEqualsGoalYieldsLengthZeroPath(t *testing.T) {
	g := newGrid(t, gridworld.Config{
		Height: 3,
		Width:  3,
		Start:  gridworld.State{Row: 1, Col: 1},
		Goal:   gridworld.State{Row: 1, Col: 1},
	})

	path, err := trajectory.Extract(g, solver.Policy{}, g.Start(), 10)
	require.NoError(t, err)
	assert.Equal(t, []gridworld.State{{Row: 1, Col: 1}}, path)
	assert.Zero(t, len(path)-1, "length-zero trajectory")
}

func TestExtract_CyclingPolicyReturnsTruncatedPath(t *testing.T) {
	g := lineGrid(t)
	// (0,0) and (0,1) point at each other, never reaching the goal.
	policy := solver.Policy{
		{Row: 0, Col: 0}: gridworld.Right,
		{Row: 0, Col: 1}: gridworld.Left,
		{Row: 0, Col: 2}: gridworld.Right,
	}

	maxSteps := 6
	_, err := trajectory.Extract(g, policy, g.Start(), maxSteps)
	require.Error(t, err)

	var notFound *trajectory.PathNotFoundError
	require.True(t, errors.As(err, &notFound), "want *PathNotFoundError, got %T", err)
	assert.Len(t, notFound.Path, maxSteps+1, "start plus one state per step")
	assert.Equal(t, g.Start(), notFound.Path[0])
}

func TestExtract_MissingPolicyEntryFails(t *testing.T) {
	g := lineGrid(t)

	_, err := trajectory.Extract(g, solver.Policy{}, g.Start(), 10)
	var notFound *trajectory.PathNotFoundError
	require.True(t, errors.As(err, &notFound), "want *PathNotFoundError, got %T", err)
	assert.Equal(t, []gridworld.State{g.Start()}, notFound.Path)
}

func TestExtract_InvalidStart(t *testing.T) {
	g := lineGrid(t)

	_, err := trajectory.Extract(g, solver.Policy{},
		gridworld.State{Row: 5, Col: 5}, 10)
	assert.Error(t, err)
}

func TestExtract_DefaultsStepBound(t *testing.T) {
	g := lineGrid(t)
	policy := solver.Policy{
		{Row: 0, Col: 0}: gridworld.Right,
		{Row: 0, Col: 1}: gridworld.Right,
		{Row: 0, Col: 2}: gridworld.Right,
	}

	path, err := trajectory.Extract(g, policy, g.Start(), 0)
	require.NoError(t, err)
	assert.Len(t, path, 4)
}
