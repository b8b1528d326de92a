package search

import (
	"container/heap"

	"github.com/vovakirdan/snake-autopilot/internal/grid"
)

// DefaultBias is the weight of the open-space preference in AStar.
// Each free neighbor of a candidate cell subtracts this much from its
// f-score, so among equal-cost frontier entries the search leans toward
// cells with more surrounding room. Four free neighbors at 0.1 apiece
// stay well under the unit edge cost, so the nudge can reorder only
// genuine ties and never trades away a shorter path.
const DefaultBias = 0.1

type astarNode struct {
	cell   grid.Cell
	f      float64
	seq    int // insertion order, breaks f-score ties deterministically
	index  int // heap index
	parent *astarNode
}

type astarQueue []*astarNode

func (q astarQueue) Len() int { return len(q) }

func (q astarQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q astarQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *astarQueue) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// AStar returns a best-effort path from `from` to `to`, excluding the
// source and including the target, or nil when the target is provably
// unreachable given the blocked set. Edges cost one step; the heuristic
// is the wrapped Manhattan distance, lowered by bias times the free
// degree of each candidate cell (see DefaultBias). Pass bias 0 for
// plain A*.
//
// Returns nil when from == to, matching BFS.
func AStar(t grid.Torus, from, to grid.Cell, blocked map[grid.Cell]bool, bias float64) []grid.Cell {
	if from == to {
		return nil
	}

	open := &astarQueue{}
	heap.Init(open)

	seq := 0
	start := &astarNode{cell: from, f: float64(t.Distance(from, to))}
	heap.Push(open, start)

	gScore := map[grid.Cell]int{from: 0}
	closed := map[grid.Cell]bool{}

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode)
		if closed[current.cell] {
			continue
		}
		if current.cell == to {
			return rebuild(current)
		}
		closed[current.cell] = true

		tentative := gScore[current.cell] + 1
		for _, nb := range t.Neighbors(current.cell, blocked) {
			if known, seen := gScore[nb]; seen && tentative >= known {
				continue
			}
			gScore[nb] = tentative
			seq++
			heap.Push(open, &astarNode{
				cell:   nb,
				f:      float64(tentative+t.Distance(nb, to)) - bias*float64(t.FreeDegree(nb, blocked)),
				seq:    seq,
				parent: current,
			})
		}
	}

	return nil
}

// rebuild follows parent links from the goal node back to the start and
// returns the path in travel order, source excluded.
func rebuild(goal *astarNode) []grid.Cell {
	var path []grid.Cell
	for n := goal; n.parent != nil; n = n.parent {
		path = append(path, n.cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
