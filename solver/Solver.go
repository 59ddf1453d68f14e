// Package solver implements dynamic-programming solvers for warehouse
// grid MDPs: Value Iteration and Policy Iteration. Both share the same
// Bellman backup and the same deterministic argmax tie-breaking, so
// their outputs are directly comparable.
package solver

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"
	"github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/utils/floatutils"
)

// Policy is a deterministic mapping from each non-terminal state to
// the action taken there. The goal state carries no entry since no
// action is ever applied in it.
type Policy map[gridworld.State]gridworld.Action

// ValueFunction maps each state to its estimated discounted return.
type ValueFunction map[gridworld.State]float64

// Result is the output of a single Solve call. Values and Policy are
// owned by the caller once returned; the solver retains no reference.
type Result struct {
	Values     ValueFunction
	Policy     Policy
	Iterations int // sweeps for Value Iteration, outer cycles for Policy Iteration
	Elapsed    time.Duration
}

// Solver is a dynamic-programming planner over an immutable GridWorld.
// Solve may return a partial Result together with a *ConvergenceError
// when an iteration cap fires; the partial values and policy are still
// usable for diagnostics.
type Solver interface {
	Solve(g *gridworld.GridWorld) (*Result, error)
	Name() string
}

// EvaluationMethod selects how Policy Iteration evaluates a fixed
// policy.
type EvaluationMethod string

const (
	// LinearEvaluation solves the Bellman expectation equation as the
	// linear system (I - gamma*P_pi) v = r_pi.
	LinearEvaluation EvaluationMethod = "linear"

	// IterativeEvaluation runs expectation sweeps to a threshold a
	// magnitude tighter than the outer convergence threshold.
	IterativeEvaluation EvaluationMethod = "iterative"
)

// Default solver hyperparameters, matching the warehouse planning
// defaults.
const (
	DefaultGamma         = 0.99
	DefaultTheta         = 1e-4
	DefaultMaxIterations = 10_000
)

var validate = validator.New()

// Config holds the hyperparameters shared by both solvers. Fields only
// one solver uses are documented as such and ignored by the other.
type Config struct {
	// Gamma is the discount factor. It must be strictly inside (0, 1)
	// so the Bellman backup is a contraction.
	Gamma float64 `yaml:"gamma" validate:"gt=0,lt=1"`

	// Theta is the convergence threshold on the sup-norm change of the
	// value function between sweeps.
	Theta float64 `yaml:"theta" validate:"gt=0"`

	// MaxIterations caps sweeps (Value Iteration) or outer cycles
	// (Policy Iteration). Hitting the cap yields a ConvergenceError
	// with the partial result attached.
	MaxIterations int `yaml:"max_iterations" validate:"gt=0"`

	// Evaluation selects the policy-evaluation method for Policy
	// Iteration. Empty means LinearEvaluation.
	Evaluation EvaluationMethod `yaml:"evaluation" validate:"omitempty,oneof=linear iterative"`

	// RandomInit makes Policy Iteration start from a seeded random
	// policy instead of a uniform default action.
	RandomInit bool `yaml:"random_init"`

	// Seed drives the random initial policy when RandomInit is set.
	Seed uint64 `yaml:"seed"`

	// ShowProgress displays a terminal progress bar against
	// MaxIterations while solving.
	ShowProgress bool `yaml:"-"`
}

func (c *Config) fillDefaults() {
	if c.Gamma == 0 {
		c.Gamma = DefaultGamma
	}
	if c.Theta == 0 {
		c.Theta = DefaultTheta
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.Evaluation == "" {
		c.Evaluation = LinearEvaluation
	}
}

func (c Config) check() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid solver config: %v", err)
	}
	return nil
}

// ConvergenceError reports that a solver exhausted its iteration cap
// before meeting its convergence threshold. It is recoverable: the
// Solve call that produced it still returns its partial result, and
// the caller may retry with a larger cap or a relaxed threshold.
type ConvergenceError struct {
	Algorithm  string
	Iterations int
	Delta      float64
	Theta      float64
}

func (e *ConvergenceError) Error() string {
	if e.Delta > 0 {
		return fmt.Sprintf("%v did not converge after %d iterations: "+
			"delta %v >= theta %v", e.Algorithm, e.Iterations, e.Delta,
			e.Theta)
	}
	return fmt.Sprintf("%v did not converge after %d iterations",
		e.Algorithm, e.Iterations)
}

// qValue computes the one-step lookahead value of taking action a in
// state s: R(s, a, s') + gamma*v[s'], reading values only from v so
// that sweeps stay synchronous.
func qValue(g *gridworld.GridWorld, s gridworld.State, a gridworld.Action,
	v []float64, gamma float64) float64 {

	next := g.Transition(s, a)
	return g.Reward(s, a, next) + gamma*v[g.Index(next)]
}

// greedy returns the best action in s against the value estimate v and
// that action's backup value. Ties are broken by the fixed order of
// gridworld.Actions: the first maximal action wins. Both solvers route
// every argmax through here so cross-solver comparisons are
// reproducible.
func greedy(g *gridworld.GridWorld, s gridworld.State, v []float64,
	gamma float64) (gridworld.Action, float64) {

	var q [len(gridworld.Actions)]float64
	for i, a := range gridworld.Actions {
		q[i] = qValue(g, s, a, v, gamma)
	}
	best := floatutils.ArgMax(q[:])
	return gridworld.Actions[best], q[best]
}

// greedyPolicy derives the full greedy policy against v. The goal
// state gets no entry.
func greedyPolicy(g *gridworld.GridWorld, v []float64, gamma float64) Policy {
	policy := make(Policy, g.NumStates())
	for _, s := range g.States() {
		if g.IsTerminal(s) {
			continue
		}
		a, _ := greedy(g, s, v, gamma)
		policy[s] = a
	}
	return policy
}

// toValueFunction converts a dense value vector into the exported
// state-keyed form.
func toValueFunction(g *gridworld.GridWorld, v []float64) ValueFunction {
	values := make(ValueFunction, len(v))
	for i, s := range g.States() {
		values[s] = v[i]
	}
	return values
}
