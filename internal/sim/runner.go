// Package sim drives complete autopilot episodes: it asks a planner for
// a path, walks the world along it one cell per tick, and replans when
// the path runs out or the food has moved. One episode runs to death,
// board fill, a dead-end verdict from the planner, or the tick cap.
package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-autopilot/internal/game"
	"github.com/vovakirdan/snake-autopilot/internal/grid"
	"github.com/vovakirdan/snake-autopilot/internal/registry"
)

// DefaultMaxTicks caps runaway episodes. Filling a board of the sizes
// the CLI accepts takes well under this many moves.
const DefaultMaxTicks = 250_000

// Outcome labels how an episode ended.
type Outcome string

const (
	// OutcomeDied: the snake walked into itself. The safe planner never
	// produces this; the greedy baseline does.
	OutcomeDied Outcome = "died"
	// OutcomeFilled: the snake covered every cell. The best possible run.
	OutcomeFilled Outcome = "filled"
	// OutcomeDoomed: the planner returned an empty path — no move left.
	OutcomeDoomed Outcome = "doomed"
	// OutcomeCapped: the tick limit fired before any terminal state.
	OutcomeCapped Outcome = "capped"
)

// Result summarizes one finished episode.
type Result struct {
	Planner  string
	GridSize int
	Seed     int64
	Score    int
	Ticks    uint64
	Replans  int
	Outcome  Outcome
	Duration time.Duration
}

// ResultSaver persists episode results. Implemented by the storage
// package; the runner itself never touches the database.
type ResultSaver interface {
	SaveResult(r Result) error
}

// Runner executes episodes with a shared logger and tick cap.
type Runner struct {
	logger   *log.Logger
	maxTicks uint64
}

// NewRunner creates a runner. A nil logger discards all output;
// maxTicks <= 0 selects DefaultMaxTicks.
func NewRunner(logger *log.Logger, maxTicks int) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ticks := uint64(DefaultMaxTicks)
	if maxTicks > 0 {
		ticks = uint64(maxTicks)
	}
	return &Runner{logger: logger, maxTicks: ticks}
}

// Episode runs one game on an N x N torus to completion and returns its
// result. The seed drives food placement; two calls with identical
// arguments produce identical results.
func (r *Runner) Episode(p registry.Planner, size int, seed int64) Result {
	started := time.Now()
	w := game.New(size, seed)

	res := Result{
		Planner:  p.ID(),
		GridSize: size,
		Seed:     seed,
	}

	var path []grid.Cell
	var plannedGoal grid.Cell

	for {
		if w.Filled() {
			res.Outcome = OutcomeFilled
			break
		}
		if w.Tick() >= r.maxTicks {
			res.Outcome = OutcomeCapped
			break
		}

		// Replan when the previous path is consumed or the food moved
		// from under it.
		if len(path) == 0 || plannedGoal != w.Food() {
			path = p.Plan(w.State())
			plannedGoal = w.Food()
			res.Replans++
			r.logger.Debug("replanned",
				"planner", p.ID(),
				"tick", w.Tick(),
				"len", len(w.Body()),
				"path", len(path),
			)
			if len(path) == 0 {
				res.Outcome = OutcomeDoomed
				break
			}
		}

		next := path[0]
		path = path[1:]
		w.Apply(next)

		if w.Over() {
			res.Outcome = OutcomeDied
			break
		}
	}

	res.Score = w.Score()
	res.Ticks = w.Tick()
	res.Duration = time.Since(started)

	r.logger.Info("episode finished",
		"planner", p.ID(),
		"grid", size,
		"seed", seed,
		"outcome", res.Outcome,
		"score", res.Score,
		"ticks", res.Ticks,
		"replans", res.Replans,
	)

	return res
}
