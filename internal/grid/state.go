package grid

// State is the immutable board snapshot handed to a planner for one
// planning call. The planner only reads it; all what-if reasoning runs
// on throwaway local copies, so the caller's body slice is never
// touched.
type State struct {
	Torus Torus
	Body  []Cell // Ordered, head first, tail last, duplicate-free
	Goal  Cell   // Guaranteed by the caller to not lie on Body
}

// Head returns the agent's head cell. Body must be non-empty.
func (s State) Head() Cell {
	return s.Body[0]
}

// Tail returns the agent's tail cell. Body must be non-empty.
func (s State) Tail() Cell {
	return s.Body[len(s.Body)-1]
}
