package planner

import (
	"github.com/vovakirdan/snake-autopilot/internal/grid"
	"github.com/vovakirdan/snake-autopilot/internal/registry"
	"github.com/vovakirdan/snake-autopilot/internal/search"
)

// Greedy is the baseline planner: it walks the shortest biased A* path
// to the goal without asking whether eating there seals the snake in.
// It keeps greater pace than Safe early on and reliably traps itself as
// the body grows, which makes it the benchmark to measure Safe against.
type Greedy struct {
	bias float64
}

// NewGreedy creates a Greedy planner with the currently configured bias.
func NewGreedy() *Greedy {
	b := biasWeight
	if b < 0 {
		b = search.DefaultBias
	}
	return &Greedy{bias: b}
}

func init() {
	registry.Register("greedy", func() registry.Planner {
		return NewGreedy()
	})
}

// ID returns the planner identifier.
func (p *Greedy) ID() string { return "greedy" }

// Title returns the display name.
func (p *Greedy) Title() string { return "A* without safety check" }

// Plan returns the biased A* path to the goal, falling back to the
// single most open step when the goal is unreachable. No safety oracle,
// no tail-chase.
func (p *Greedy) Plan(s grid.State) []grid.Cell {
	blocked := interior(s.Body)

	if path := search.AStar(s.Torus, s.Head(), s.Goal, blocked, p.bias); len(path) > 0 {
		return path
	}

	return openSpaceMove(s.Torus, s.Head(), blocked)
}
