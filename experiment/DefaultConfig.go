package experiment

import "github.com/harismb-208/Warehouse-Path-Planning-using-Reinforcement-Learning/gridworld"

// DefaultConfig returns the stock 10x10 warehouse scenario: five rows
// of shelving between the dock at (0, 0) and the pick station at
// (9, 9).
func DefaultConfig() Config {
	return Config{
		Grid: gridworld.Config{
			Height: 10,
			Width:  10,
			Start:  gridworld.State{Row: 0, Col: 0},
			Goal:   gridworld.State{Row: 9, Col: 9},
			Obstacles: []gridworld.State{
				{Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4},
				{Row: 1, Col: 5}, {Row: 1, Col: 6},
				{Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4},
				{Row: 3, Col: 5}, {Row: 3, Col: 6}, {Row: 3, Col: 7},
				{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 5, Col: 2},
				{Row: 5, Col: 3},
				{Row: 7, Col: 4}, {Row: 7, Col: 5}, {Row: 7, Col: 6},
				{Row: 7, Col: 7}, {Row: 7, Col: 8}, {Row: 7, Col: 9},
				{Row: 8, Col: 4},
			},
		},
		MaxPathSteps: 50,
	}
}
