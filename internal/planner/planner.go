// Package planner contains the movement planners that pilot the snake.
// Each planner answers a single question per tick: given the current
// body and goal, what path should the snake walk next? An empty answer
// means no move exists and the caller must treat the agent as doomed.
//
// Planners register themselves with the registry in init(), so an
// importing command can discover them by ID.
package planner

import (
	"github.com/vovakirdan/snake-autopilot/internal/grid"
)

// bias is the open-space preference weight shared by all planners.
// Adjusted via SetBias before planner creation (CLI/config pattern);
// individual instances capture it at construction time.
var biasWeight = defaultBiasUnset

const defaultBiasUnset = -1.0

// SetBias overrides the open-space bias weight for planners created
// afterwards. Values below zero reset to the search default.
func SetBias(w float64) {
	biasWeight = w
}

// interior returns the blocked-cell set for the given body: every
// segment except the head and the tail. The head is where searches
// start, and the tail is deliberately left passable because it vacates
// its cell on the very next real move.
func interior(body []grid.Cell) map[grid.Cell]bool {
	if len(body) <= 2 {
		return map[grid.Cell]bool{}
	}
	return grid.CellSet(body[1 : len(body)-1])
}
