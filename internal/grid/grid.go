// Package grid provides coordinates and distance math on a toroidal
// (wrap-around) board. It contains no external dependencies to keep the
// pathfinding logic pure and testable.
package grid

// Cell is a single board position. Both coordinates are in [0, Size)
// once wrapped; a Cell produced by arithmetic may be out of range until
// it goes through Torus.Wrap.
type Cell struct {
	X, Y int
}

// Torus is an N x N board whose edges wrap around. Moving past one side
// reenters from the opposite side, so no cell is intrinsically outside
// the board.
type Torus struct {
	Size int // Side length in cells
}

// New creates a torus with the given side length.
func New(size int) Torus {
	return Torus{Size: size}
}

// steps lists the four orthogonal moves in their fixed emission order:
// up, down, left, right. The order is a deterministic tie-break for the
// searches built on Neighbors and must not change.
var steps = [4]Cell{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
	{X: 1, Y: 0},  // right
}

// Wrap reduces both coordinates modulo the board size, returning a cell
// with coordinates in [0, Size). Works for any negative input, not just
// one step off the edge.
func (t Torus) Wrap(c Cell) Cell {
	n := t.Size
	return Cell{
		X: ((c.X % n) + n) % n,
		Y: ((c.Y % n) + n) % n,
	}
}

// Neighbors returns the wrapped orthogonal neighbors of c that are not
// in blocked, in the fixed up, down, left, right order.
func (t Torus) Neighbors(c Cell, blocked map[Cell]bool) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range steps {
		nb := t.Wrap(Cell{X: c.X + d.X, Y: c.Y + d.Y})
		if !blocked[nb] {
			out = append(out, nb)
		}
	}
	return out
}

// Distance returns the wrapped Manhattan distance between two cells:
// per axis, the shorter of the direct difference and the wrap-around
// difference. It is a lower bound on any path length between the cells
// and changes by at most 1 per step, which makes it an admissible and
// consistent A* heuristic on the torus.
func (t Torus) Distance(a, b Cell) int {
	dx := abs(a.X - b.X)
	if t.Size-dx < dx {
		dx = t.Size - dx
	}
	dy := abs(a.Y - b.Y)
	if t.Size-dy < dy {
		dy = t.Size - dy
	}
	return dx + dy
}

// FreeDegree counts how many of c's four neighbors are not in blocked.
// Used as the open-space measure: both the A* tie-break bias and the
// last-resort survival move prefer cells with a higher free degree.
func (t Torus) FreeDegree(c Cell, blocked map[Cell]bool) int {
	free := 0
	for _, d := range steps {
		if !blocked[t.Wrap(Cell{X: c.X + d.X, Y: c.Y + d.Y})] {
			free++
		}
	}
	return free
}

// CellSet builds a lookup set from a list of cells.
func CellSet(cells []Cell) map[Cell]bool {
	set := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
