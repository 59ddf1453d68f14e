package solver

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/utils/floatutils"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/utils/progressbar"
)

// PolicyIteration alternates policy evaluation and greedy policy
// improvement until an improvement step changes no action. Evaluation
// solves the Bellman expectation equation either exactly as a linear
// system or by iterative sweeps, selected by Config.Evaluation.
type PolicyIteration struct {
	config Config
}

// NewPolicyIteration returns a Policy Iteration solver for the given
// hyperparameters. Zero-valued fields of c take the package defaults.
func NewPolicyIteration(c Config) (*PolicyIteration, error) {
	c.fillDefaults()
	if err := c.check(); err != nil {
		return nil, fmt.Errorf("newPolicyIteration: %w", err)
	}
	return &PolicyIteration{config: c}, nil
}

// Name returns the solver's display name.
func (*PolicyIteration) Name() string { return "Policy Iteration" }

// Solve runs evaluation/improvement cycles until the policy is stable.
// Convergence is guaranteed in finitely many cycles since the policy
// space is finite and improvement never decreases value, but
// MaxIterations still bounds the loop; hitting it returns the partial
// result together with a *ConvergenceError.
func (pi *PolicyIteration) Solve(g *gridworld.GridWorld) (*Result, error) {
	start := time.Now()
	c := pi.config
	states := g.States()

	policy := pi.initialPolicy(g)
	v := make([]float64, len(states))

	var bar *progressbar.ManualProgressBar
	if c.ShowProgress {
		bar = progressbar.NewManualProgressBar(40, c.MaxIterations)
		defer bar.Close()
	}

	var (
		cycles int
		stable bool
	)
	for cycles = 1; cycles <= c.MaxIterations; cycles++ {
		var err error
		v, err = pi.evaluate(g, policy, v)
		if err != nil {
			return &Result{
				Values:     toValueFunction(g, v),
				Policy:     policy,
				Iterations: cycles,
				Elapsed:    time.Since(start),
			}, err
		}

		stable = true
		for _, s := range states {
			if g.IsTerminal(s) {
				continue
			}
			best, _ := greedy(g, s, v, c.Gamma)
			if policy[s] != best {
				policy[s] = best
				stable = false
			}
		}

		if bar != nil {
			bar.Increment()
			bar.Display()
		}

		if stable {
			break
		}
	}
	if cycles > c.MaxIterations {
		cycles = c.MaxIterations
	}

	result := &Result{
		Values:     toValueFunction(g, v),
		Policy:     policy,
		Iterations: cycles,
		Elapsed:    time.Since(start),
	}

	if !stable {
		return result, &ConvergenceError{
			Algorithm:  pi.Name(),
			Iterations: cycles,
			Theta:      c.Theta,
		}
	}
	return result, nil
}

// initialPolicy builds the starting policy: a fixed first action for
// every non-terminal state, or a seeded random choice when RandomInit
// is set. Both are deterministic for a fixed Config, which keeps
// repeated Solve calls bit-identical.
func (pi *PolicyIteration) initialPolicy(g *gridworld.GridWorld) Policy {
	var rng *rand.Rand
	if pi.config.RandomInit {
		rng = rand.New(rand.NewSource(pi.config.Seed))
	}

	policy := make(Policy, g.NumStates())
	for _, s := range g.States() {
		if g.IsTerminal(s) {
			continue
		}
		if rng != nil {
			policy[s] = gridworld.Actions[rng.Intn(len(gridworld.Actions))]
		} else {
			policy[s] = gridworld.Actions[0]
		}
	}
	return policy
}

func (pi *PolicyIteration) evaluate(g *gridworld.GridWorld, policy Policy,
	v []float64) ([]float64, error) {

	if pi.config.Evaluation == IterativeEvaluation {
		return pi.evaluateIterative(g, policy, v)
	}
	return pi.evaluateLinear(g, policy)
}

// evaluateLinear solves (I - gamma*P_pi) v = r_pi exactly. The
// coefficient matrix is strictly diagonally dominant for gamma < 1, so
// the system is nonsingular for any policy.
func (pi *PolicyIteration) evaluateLinear(g *gridworld.GridWorld,
	policy Policy) ([]float64, error) {

	gamma := pi.config.Gamma
	states := g.States()
	n := len(states)

	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i, s := range states {
		a.Set(i, i, 1)
		if g.IsTerminal(s) {
			continue // row pins v(goal) = 0
		}
		next := g.Transition(s, policy[s])
		j := g.Index(next)
		a.Set(i, j, a.At(i, j)-gamma)
		b.SetVec(i, g.Reward(s, policy[s], next))
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("evaluateLinear: could not solve Bellman "+
			"system: %v", err)
	}

	v := x.RawVector().Data
	for i, s := range states {
		if g.IsTerminal(s) {
			v[i] = 0 // keep the pinned convention exact
		}
	}
	return v, nil
}

// evaluateIterative runs expectation sweeps from the previous cycle's
// values until the sup-norm change drops below a tenth of Theta. A
// sweep cap bounds the loop; firing it yields a ConvergenceError.
func (pi *PolicyIteration) evaluateIterative(g *gridworld.GridWorld,
	policy Policy, v []float64) ([]float64, error) {

	c := pi.config
	states := g.States()
	theta := c.Theta / 10

	var delta float64
	for sweep := 1; sweep <= c.MaxIterations; sweep++ {
		vNew := make([]float64, len(v))
		for i, s := range states {
			if g.IsTerminal(s) {
				continue
			}
			vNew[i] = qValue(g, s, policy[s], v, c.Gamma)
		}
		delta = floatutils.MaxAbsDiff(v, vNew)
		v = vNew
		if delta < theta {
			return v, nil
		}
	}

	return v, &ConvergenceError{
		Algorithm:  pi.Name() + " (evaluation)",
		Iterations: c.MaxIterations,
		Delta:      delta,
		Theta:      theta,
	}
}
