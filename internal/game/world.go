// Package game implements the headless snake world: body movement,
// eat-and-grow, self-collision detection, and food placement on a
// toroidal board. It is the external collaborator the planners serve —
// all randomness (food placement) lives here, never in the planners, so
// planning stays deterministic for a given snapshot.
package game

import (
	"math/rand"

	"github.com/vovakirdan/snake-autopilot/internal/grid"
)

// World holds one running game. It is not safe for concurrent use; the
// simulation loop is the single writer.
type World struct {
	torus grid.Torus
	rng   *rand.Rand

	body []grid.Cell // Head at index 0
	food grid.Cell

	tick     uint64
	score    int
	gameOver bool
	filled   bool // Board has no free cell left for food
}

// New creates a world on an N x N torus with a single-segment snake at
// the board center and the first food spawned. The seed drives food
// placement only.
func New(size int, seed int64) *World {
	w := &World{
		torus: grid.New(size),
		rng:   rand.New(rand.NewSource(seed)),
		body:  []grid.Cell{{X: size / 2, Y: size / 2}},
	}
	w.spawnFood()
	return w
}

// spawnFood places food at a random free cell. When no free cell
// remains the board is full and the run is won.
func (w *World) spawnFood() {
	var emptyCells []grid.Cell
	occupied := grid.CellSet(w.body)
	for y := 0; y < w.torus.Size; y++ {
		for x := 0; x < w.torus.Size; x++ {
			p := grid.Cell{X: x, Y: y}
			if !occupied[p] {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		w.filled = true
		w.food = grid.Cell{X: -1, Y: -1}
		return
	}

	w.food = emptyCells[w.rng.Intn(len(emptyCells))]
}

// Apply advances the world by one movement tick: the head moves to
// next, the snake grows when next holds the food, and the tail vacates
// otherwise. Walking into the body ends the game. The caller supplies
// one planned path cell per Apply call.
func (w *World) Apply(next grid.Cell) {
	if w.gameOver || w.filled {
		return
	}
	w.tick++

	next = w.torus.Wrap(next)
	eating := next == w.food

	// Self collision. The tail cell is excluded unless the snake is
	// eating, because a non-growing tail vacates on this same move.
	checkLen := len(w.body)
	if !eating {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if w.body[i] == next {
			w.gameOver = true
			return
		}
	}

	w.body = append([]grid.Cell{next}, w.body...)

	if eating {
		w.score++
		w.spawnFood()
	} else if len(w.body) > 1 {
		w.body = w.body[:len(w.body)-1]
	}
}

// State returns an immutable planning snapshot. The body is copied so a
// planner can never alias the world's own slice.
func (w *World) State() grid.State {
	body := make([]grid.Cell, len(w.body))
	copy(body, w.body)
	return grid.State{
		Torus: w.torus,
		Body:  body,
		Goal:  w.food,
	}
}

// Body returns a copy of the snake, head first.
func (w *World) Body() []grid.Cell {
	body := make([]grid.Cell, len(w.body))
	copy(body, w.body)
	return body
}

// Food returns the current food cell, or (-1, -1) once the board is full.
func (w *World) Food() grid.Cell { return w.food }

// Score returns the number of meals eaten.
func (w *World) Score() int { return w.score }

// Tick returns the number of Apply calls processed.
func (w *World) Tick() uint64 { return w.tick }

// Over reports whether the snake has collided with itself.
func (w *World) Over() bool { return w.gameOver }

// Filled reports whether the snake has covered the whole board.
func (w *World) Filled() bool { return w.filled }

// Torus returns the board geometry.
func (w *World) Torus() grid.Torus { return w.torus }
