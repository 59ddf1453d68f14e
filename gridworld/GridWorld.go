// Package gridworld implements the warehouse grid MDP: a finite state
// space of free cells, a four-action move set, deterministic
// transitions with self-loops on invalid moves, and a goal-directed
// reward scheme.
package gridworld

import (
	"fmt"
	"strings"
)

// State identifies a single grid cell by its row and column.
type State struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

// Action is one of the four cardinal moves. The declaration order is
// the tie-breaking order used by the solvers: when several actions
// achieve the same backup value, the first one in this order wins.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

// Actions lists every action in tie-breaking order.
var Actions = [4]Action{Up, Down, Left, Right}

// Delta returns the row and column offsets of taking the action.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// GridWorld is the immutable MDP model of a warehouse floor. Obstacle
// cells are excluded from the state space entirely, so both solvers
// only ever see free cells. A GridWorld is safe for concurrent reads
// once constructed.
type GridWorld struct {
	height, width int
	obstacles     map[State]struct{}
	start, goal   State

	stepCost        float64
	obstaclePenalty float64
	goalReward      float64

	states []State // valid states in row-major order
	index  map[State]int
}

// New constructs a GridWorld from a validated Config. It returns an
// *InvalidGridError if the dimensions are non-positive, the start or
// goal falls outside the grid, or either coincides with an obstacle.
// Reachability of the goal is not checked here; an unreachable goal
// surfaces later as a solver or path-extraction outcome.
func New(c Config) (*GridWorld, error) {
	c.fillDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}

	g := &GridWorld{
		height:          c.Height,
		width:           c.Width,
		obstacles:       make(map[State]struct{}, len(c.Obstacles)),
		start:           c.Start,
		goal:            c.Goal,
		stepCost:        c.StepCost,
		obstaclePenalty: c.ObstaclePenalty,
		goalReward:      c.GoalReward,
		index:           make(map[State]int),
	}
	for _, o := range c.Obstacles {
		g.obstacles[o] = struct{}{}
	}

	for r := 0; r < g.height; r++ {
		for col := 0; col < g.width; col++ {
			s := State{Row: r, Col: col}
			if _, blocked := g.obstacles[s]; blocked {
				continue
			}
			g.index[s] = len(g.states)
			g.states = append(g.states, s)
		}
	}

	return g, nil
}

// Height returns the number of rows in the grid.
func (g *GridWorld) Height() int { return g.height }

// Width returns the number of columns in the grid.
func (g *GridWorld) Width() int { return g.width }

// Start returns the robot's starting cell.
func (g *GridWorld) Start() State { return g.start }

// Goal returns the terminal goal cell.
func (g *GridWorld) Goal() State { return g.goal }

// States returns every valid state in row-major order. The returned
// slice is owned by the GridWorld and must not be modified.
func (g *GridWorld) States() []State { return g.states }

// NumStates returns the number of valid states.
func (g *GridWorld) NumStates() int { return len(g.states) }

// Index returns the dense index of a state into the slice returned by
// States, or -1 if the state is not part of the state space. Solvers
// use it to address flat value vectors.
func (g *GridWorld) Index(s State) int {
	i, ok := g.index[s]
	if !ok {
		return -1
	}
	return i
}

// StateAt is the inverse of Index.
func (g *GridWorld) StateAt(i int) State { return g.states[i] }

// InBounds reports whether s lies within the grid rectangle.
func (g *GridWorld) InBounds(s State) bool {
	return s.Row >= 0 && s.Row < g.height && s.Col >= 0 && s.Col < g.width
}

// IsObstacle reports whether s is an obstacle cell.
func (g *GridWorld) IsObstacle(s State) bool {
	_, blocked := g.obstacles[s]
	return blocked
}

// IsTerminal reports whether s is the goal.
func (g *GridWorld) IsTerminal(s State) bool { return s == g.goal }

// Transition applies action a in state s and returns the successor
// state. A move that would leave the grid or enter an obstacle is a
// self-loop: the successor is s itself. Invalid moves are ordinary,
// expected transitions here, never errors.
func (g *GridWorld) Transition(s State, a Action) State {
	dRow, dCol := a.Delta()
	next := State{Row: s.Row + dRow, Col: s.Col + dCol}
	if !g.InBounds(next) || g.IsObstacle(next) {
		return s
	}
	return next
}

// Reward returns the reward for the transition (s, a, next). Entering
// the goal pays the goal reward, bumping into a wall or obstacle pays
// the obstacle penalty, and any other move pays the step cost.
func (g *GridWorld) Reward(s State, a Action, next State) float64 {
	if next == g.goal {
		return g.goalReward
	}
	if next == s {
		return g.obstaclePenalty
	}
	return g.stepCost
}

// String renders the grid as ASCII art, one row per line: '#' for
// obstacles, 'S' for the start, 'G' for the goal and '.' elsewhere.
func (g *GridWorld) String() string {
	var b strings.Builder
	for r := 0; r < g.height; r++ {
		for col := 0; col < g.width; col++ {
			s := State{Row: r, Col: col}
			switch {
			case s == g.start:
				b.WriteByte(layoutStart)
			case s == g.goal:
				b.WriteByte(layoutGoal)
			case g.IsObstacle(s):
				b.WriteByte(layoutObstacle)
			default:
				b.WriteByte(layoutFree)
			}
		}
		if r < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
