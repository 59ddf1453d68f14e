package gridworld

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default reward scheme for warehouse grids.
const (
	DefaultStepCost        = -1.0
	DefaultObstaclePenalty = -10.0
	DefaultGoalReward      = 100.0
)

var validate = validator.New()

// Config describes a warehouse grid: its dimensions, the shelf
// (obstacle) cells, the robot's start cell, the goal cell, and the
// reward scheme. The zero values of StepCost, ObstaclePenalty and
// GoalReward are replaced by the package defaults.
type Config struct {
	Height    int     `yaml:"height" validate:"gt=0"`
	Width     int     `yaml:"width" validate:"gt=0"`
	Obstacles []State `yaml:"obstacles"`
	Start     State   `yaml:"start"`
	Goal      State   `yaml:"goal"`

	StepCost        float64 `yaml:"step_cost"`
	ObstaclePenalty float64 `yaml:"obstacle_penalty"`
	GoalReward      float64 `yaml:"goal_reward"`
}

func (c *Config) fillDefaults() {
	if c.StepCost == 0 {
		c.StepCost = DefaultStepCost
	}
	if c.ObstaclePenalty == 0 {
		c.ObstaclePenalty = DefaultObstaclePenalty
	}
	if c.GoalReward == 0 {
		c.GoalReward = DefaultGoalReward
	}
}

func (c Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return &InvalidGridError{Reason: err.Error()}
	}

	inBounds := func(s State) bool {
		return s.Row >= 0 && s.Row < c.Height && s.Col >= 0 && s.Col < c.Width
	}

	if !inBounds(c.Start) {
		return &InvalidGridError{
			Reason: fmt.Sprintf("start %v outside %dx%d grid",
				c.Start, c.Height, c.Width),
		}
	}
	if !inBounds(c.Goal) {
		return &InvalidGridError{
			Reason: fmt.Sprintf("goal %v outside %dx%d grid",
				c.Goal, c.Height, c.Width),
		}
	}

	for _, o := range c.Obstacles {
		if !inBounds(o) {
			return &InvalidGridError{
				Reason: fmt.Sprintf("obstacle %v outside %dx%d grid",
					o, c.Height, c.Width),
			}
		}
		if o == c.Start {
			return &InvalidGridError{
				Reason: fmt.Sprintf("start %v is an obstacle", c.Start),
			}
		}
		if o == c.Goal {
			return &InvalidGridError{
				Reason: fmt.Sprintf("goal %v is an obstacle", c.Goal),
			}
		}
	}

	return nil
}

// InvalidGridError reports a malformed grid description at
// construction time. It is fatal: no GridWorld is produced.
type InvalidGridError struct {
	Reason string
}

func (e *InvalidGridError) Error() string {
	return "invalid grid: " + e.Reason
}
