// Package search implements the two path searches the pilot is built
// on: unweighted breadth-first search for reachability questions and
// best-first (A*) search for goal-directed planning. Both operate on a
// grid.Torus with a per-invocation blocked-cell set and keep no state
// between calls.
package search

import "github.com/vovakirdan/snake-autopilot/internal/grid"

// BFS returns the shortest path from `from` to `to` on the torus,
// excluding the source and including the target. It returns nil when
// the target is unreachable given the blocked set, and also when
// from == to; callers that care about the "already there" case must
// check from != to before invoking.
//
// Besides direct pathfinding (the tail-chase fallback), BFS doubles as
// a pure existence oracle: callers check non-emptiness and discard the
// path itself.
func BFS(t grid.Torus, from, to grid.Cell, blocked map[grid.Cell]bool) []grid.Cell {
	if from == to {
		return nil
	}

	cameFrom := map[grid.Cell]grid.Cell{}
	visited := map[grid.Cell]bool{from: true}
	queue := []grid.Cell{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			return reconstruct(cameFrom, from, to)
		}

		for _, nb := range t.Neighbors(current, blocked) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			cameFrom[nb] = current
			queue = append(queue, nb)
		}
	}

	return nil
}

// reconstruct walks the parent links from `to` back to `from` and
// returns the path in travel order, source excluded.
func reconstruct(cameFrom map[grid.Cell]grid.Cell, from, to grid.Cell) []grid.Cell {
	var path []grid.Cell
	for c := to; c != from; c = cameFrom[c] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
