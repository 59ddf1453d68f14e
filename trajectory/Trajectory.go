// Package trajectory extracts the deterministic path a policy induces
// on a warehouse grid.
package trajectory

import (
	"fmt"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/solver"
)

// DefaultMaxSteps bounds path extraction when the caller gives no cap.
const DefaultMaxSteps = 50

// PathNotFoundError reports that following the policy from the start
// state did not reach the goal within the step bound. It is
// recoverable and indicates a policy defect, typically a cycle left by
// a solver that stopped early. Path holds the truncated trajectory for
// diagnostics.
type PathNotFoundError struct {
	Start    gridworld.State
	MaxSteps int
	Path     []gridworld.State
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("no path from %v to the goal within %d steps",
		e.Start, e.MaxSteps)
}

// Extract simulates the trajectory induced by policy from start,
// repeatedly applying the grid's transition until the goal is reached
// or maxSteps transitions have been taken. A non-positive maxSteps
// means DefaultMaxSteps.
//
// On success the returned path contains every visited state in order,
// start first and goal last; a start equal to the goal yields the
// single-element path {start}, a length-zero trajectory. On failure
// Extract returns a *PathNotFoundError carrying the truncated path.
//
// Extract is a pure function of its arguments: it never mutates the
// policy and keeps no state between calls.
func Extract(g *gridworld.GridWorld, policy solver.Policy,
	start gridworld.State, maxSteps int) ([]gridworld.State, error) {

	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	if g.Index(start) < 0 {
		return nil, fmt.Errorf("extract: start %v is not a valid state", start)
	}

	path := []gridworld.State{start}
	s := start
	for step := 0; step < maxSteps; step++ {
		if g.IsTerminal(s) {
			return path, nil
		}
		a, ok := policy[s]
		if !ok {
			// A state with no policy entry is as dead an end as a cycle.
			return nil, &PathNotFoundError{
				Start: start, MaxSteps: maxSteps, Path: path,
			}
		}
		s = g.Transition(s, a)
		path = append(path, s)
	}

	if g.IsTerminal(s) {
		return path, nil
	}
	return nil, &PathNotFoundError{Start: start, MaxSteps: maxSteps, Path: path}
}
