package game

import "github.com/vovakirdan/snake-autopilot/internal/grid"

// Outcome labels how a run currently stands.
type Outcome string

const (
	OutcomeRunning Outcome = "running"
	OutcomeDied    Outcome = "died"
	OutcomeFilled  Outcome = "filled"
)

// Snapshot captures the observable world state for determinism testing
// and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     grid.Cell
	Food     grid.Cell
	Outcome  Outcome
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	outcome := OutcomeRunning
	switch {
	case w.filled:
		outcome = OutcomeFilled
	case w.gameOver:
		outcome = OutcomeDied
	}

	return Snapshot{
		Tick:     w.tick,
		Score:    w.score,
		SnakeLen: len(w.body),
		Head:     w.body[0],
		Food:     w.food,
		Outcome:  outcome,
	}
}
