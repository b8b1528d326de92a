package planner

import (
	"github.com/vovakirdan/snake-autopilot/internal/grid"
	"github.com/vovakirdan/snake-autopilot/internal/search"
)

// pathIsSafe decides whether walking the full candidate path and eating
// the goal at its end leaves the snake an escape route.
//
// It builds the body as it would look after the meal: the path's final
// cell becomes the new head, followed by the whole current body minus
// its last segment (eating extends the snake by one, so the rest of the
// body has shifted forward by the path length while a new segment
// filled in behind). The path is safe iff the simulated tail is still
// reachable from the simulated head through the simulated interior.
//
// The tail cell itself is treated as passable, not blocked: by the time
// the head could arrive there, the tail will have moved on. This is a
// one-step conservative approximation, not an exact multi-tick
// simulation; it may reject a path that was actually fine, but it never
// accepts one that seals the snake in.
func pathIsSafe(s grid.State, path []grid.Cell) bool {
	if len(path) == 0 {
		return false
	}

	sim := make([]grid.Cell, 0, len(s.Body))
	sim = append(sim, path[len(path)-1])
	sim = append(sim, s.Body[:len(s.Body)-1]...)

	head := sim[0]
	tail := sim[len(sim)-1]
	if head == tail {
		// Single-segment snake: nothing to get trapped behind.
		return true
	}

	return len(search.BFS(s.Torus, head, tail, interior(sim))) > 0
}
