package gridworld

import "fmt"

// Layout characters. A layout is a slice of equal-length strings, one
// per grid row.
const (
	layoutFree     = '.'
	layoutObstacle = '#'
	layoutStart    = 'S'
	layoutGoal     = 'G'
)

// ParseLayout converts an ASCII floor plan into a grid Config. Exactly
// one 'S' and one 'G' must appear; '#' marks a shelf and '.' a free
// cell. Reward parameters are left at their zero values so that New
// applies the package defaults; callers may override them on the
// returned Config before constructing the GridWorld.
func ParseLayout(rows []string) (Config, error) {
	if len(rows) == 0 {
		return Config{}, &InvalidGridError{Reason: "empty layout"}
	}

	c := Config{
		Height: len(rows),
		Width:  len(rows[0]),
	}

	var haveStart, haveGoal bool
	for r, row := range rows {
		if len(row) != c.Width {
			return Config{}, &InvalidGridError{
				Reason: fmt.Sprintf("row %d has length %d, want %d",
					r, len(row), c.Width),
			}
		}
		for col, ch := range row {
			s := State{Row: r, Col: col}
			switch ch {
			case layoutFree:
			case layoutObstacle:
				c.Obstacles = append(c.Obstacles, s)
			case layoutStart:
				if haveStart {
					return Config{}, &InvalidGridError{
						Reason: "multiple start cells in layout",
					}
				}
				c.Start = s
				haveStart = true
			case layoutGoal:
				if haveGoal {
					return Config{}, &InvalidGridError{
						Reason: "multiple goal cells in layout",
					}
				}
				c.Goal = s
				haveGoal = true
			default:
				return Config{}, &InvalidGridError{
					Reason: fmt.Sprintf("unknown layout character %q at %v",
						ch, s),
				}
			}
		}
	}

	if !haveStart {
		return Config{}, &InvalidGridError{Reason: "layout has no start cell"}
	}
	if !haveGoal {
		return Config{}, &InvalidGridError{Reason: "layout has no goal cell"}
	}

	return c, nil
}
