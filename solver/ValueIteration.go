package solver

import (
	"fmt"
	"time"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/utils/floatutils"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/utils/progressbar"
)

// ValueIteration computes the optimal value function by repeated
// synchronous Bellman-optimality backups and derives the greedy policy
// from the converged values.
type ValueIteration struct {
	config Config
}

// NewValueIteration returns a Value Iteration solver for the given
// hyperparameters. Zero-valued fields of c take the package defaults.
func NewValueIteration(c Config) (*ValueIteration, error) {
	c.fillDefaults()
	if err := c.check(); err != nil {
		return nil, fmt.Errorf("newValueIteration: %w", err)
	}
	return &ValueIteration{config: c}, nil
}

// Name returns the solver's display name.
func (*ValueIteration) Name() string { return "Value Iteration" }

// Solve runs Bellman-optimality sweeps until the sup-norm change drops
// below Theta or MaxIterations sweeps have run. Each sweep reads only
// the previous sweep's values, which is what makes the standard
// contraction argument apply. The goal state is pinned at value zero
// and skipped in every sweep.
//
// On hitting the cap Solve returns the partial result together with a
// *ConvergenceError; the values and policy are the best estimates so
// far and remain usable.
func (vi *ValueIteration) Solve(g *gridworld.GridWorld) (*Result, error) {
	start := time.Now()
	c := vi.config
	states := g.States()
	v := make([]float64, len(states))

	var bar *progressbar.ManualProgressBar
	if c.ShowProgress {
		bar = progressbar.NewManualProgressBar(40, c.MaxIterations)
		defer bar.Close()
	}

	var (
		iterations int
		delta      float64
		converged  bool
	)
	for iterations = 1; iterations <= c.MaxIterations; iterations++ {
		vNew := make([]float64, len(v))
		for i, s := range states {
			if g.IsTerminal(s) {
				continue // pinned at zero
			}
			_, vNew[i] = greedy(g, s, v, c.Gamma)
		}
		delta = floatutils.MaxAbsDiff(v, vNew)
		v = vNew

		if bar != nil {
			bar.Increment()
			bar.SetPostfix(fmt.Sprintf("delta: %.6f", delta))
			bar.Display()
		}

		if delta < c.Theta {
			converged = true
			break
		}
	}
	if iterations > c.MaxIterations {
		iterations = c.MaxIterations
	}

	result := &Result{
		Values:     toValueFunction(g, v),
		Policy:     greedyPolicy(g, v, c.Gamma),
		Iterations: iterations,
		Elapsed:    time.Since(start),
	}

	if !converged {
		return result, &ConvergenceError{
			Algorithm:  vi.Name(),
			Iterations: iterations,
			Delta:      delta,
			Theta:      c.Theta,
		}
	}
	return result, nil
}
