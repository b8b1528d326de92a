package planner

import (
	"github.com/vovakirdan/snake-autopilot/internal/grid"
	"github.com/vovakirdan/snake-autopilot/internal/registry"
	"github.com/vovakirdan/snake-autopilot/internal/search"
)

// Safe is the full planning pipeline: goal-directed A* with an
// open-space bias, vetted by the trap-avoidance oracle, with the
// survival fallback when the goal path is missing or unsafe. This is
// the planner the simulator uses by default.
type Safe struct {
	bias float64
}

// NewSafe creates a Safe planner with the currently configured bias.
func NewSafe() *Safe {
	b := biasWeight
	if b < 0 {
		b = search.DefaultBias
	}
	return &Safe{bias: b}
}

func init() {
	registry.Register("safe", func() registry.Planner {
		return NewSafe()
	})
}

// ID returns the planner identifier.
func (p *Safe) ID() string { return "safe" }

// Title returns the display name.
func (p *Safe) Title() string { return "A* + trap-avoidance oracle" }

// Plan computes the next path for the snake. It returns a path ending
// at the goal when one exists and survives the safety check, a survival
// path otherwise, and nil when the snake has no move left at all.
func (p *Safe) Plan(s grid.State) []grid.Cell {
	blocked := interior(s.Body)

	path := search.AStar(s.Torus, s.Head(), s.Goal, blocked, p.bias)
	if len(path) > 0 && pathIsSafe(s, path) {
		return path
	}

	return survive(s, blocked)
}
