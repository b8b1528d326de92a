package planner

import (
	"github.com/vovakirdan/snake-autopilot/internal/grid"
	"github.com/vovakirdan/snake-autopilot/internal/search"
)

// survive produces a move when no safe path to the goal exists.
// Policy, in order:
//
//  1. Chase the tail. Following one's own tail is survivable for at
//     least one more tick and buys time for the goal to become
//     reachable again.
//  2. Take the single neighboring cell with the most open space around
//     it (the same free-degree measure the A* bias uses, applied
//     directly).
//  3. Give up: return nil. The caller treats this as terminal.
func survive(s grid.State, blocked map[grid.Cell]bool) []grid.Cell {
	head := s.Head()

	if len(s.Body) >= 2 {
		if path := search.BFS(s.Torus, head, s.Tail(), blocked); len(path) > 0 {
			return path
		}
	}

	return openSpaceMove(s.Torus, head, blocked)
}

// openSpaceMove returns a single-cell path to the free neighbor of head
// with the highest free degree, or nil when head has no free neighbor.
// Ties go to the first candidate in neighbor emission order, keeping
// the choice deterministic.
func openSpaceMove(t grid.Torus, head grid.Cell, blocked map[grid.Cell]bool) []grid.Cell {
	best := grid.Cell{}
	bestFree := -1
	for _, nb := range t.Neighbors(head, blocked) {
		if free := t.FreeDegree(nb, blocked); free > bestFree {
			best, bestFree = nb, free
		}
	}
	if bestFree < 0 {
		return nil
	}
	return []grid.Cell{best}
}
