/*
Package walk implements a bounded stochastic grid walk.

A walker starts on a random cell of a rectangular grid and repeatedly
moves to a randomly chosen neighbor, using either the 4 cardinal or all
8 compass directions. Moves that would leave the grid are rejected and
redrawn; when revisiting is disallowed, moves onto already visited cells
are rejected as well. Each committed move increments a visit counter on
the target cell. The walk ends when the step budget is spent or when
every direction from the current cell is blocked, in which case the
current cell is overwritten with a sentinel value.

The walker owns a private seeded random stream, so two runs with the
same configuration, seed, and grid extent produce identical grids.
*/
package walk

import (
	"math/rand"
	"time"
)

// Config describes one walk. It is read once at construction and never
// mutated afterwards.
type Config struct {
	Directions int    // size of the direction set, 4 or 8
	Steps      int    // movement budget; 0 seeds the start cell and stops
	Revisit    bool   // allow stepping onto already visited cells
	Seed       *int64 // random seed; nil means a time-based seed
}

// State is the terminal state of a finished walk.
type State int

const (
	// Completed means the walk spent its whole step budget.
	Completed State = iota
	// Stuck means every direction from the final cell was blocked.
	Stuck
)

// String returns a readable name for the state.
func (s State) String() string {
	if s == Stuck {
		return "stuck"
	}
	return "completed"
}

// Result summarizes a finished walk. The mutated grid itself is the
// walk's primary output; Result carries the metadata around it.
type Result struct {
	Start     Position // seeded starting cell
	Final     Position // cell the walker ended on
	State     State    // Completed or Stuck
	Steps     int      // committed movement steps, excluding the seeding
	StuckStep int      // 1-based step the walker got stuck on; 0 otherwise
}

// Walker performs walks. One Walker runs one walk at a time; the random
// stream advances with every draw, so reuse across runs is sequential.
type Walker struct {
	directions int
	steps      int
	revisit    bool
	rng        *rand.Rand
}

// New validates cfg and builds a Walker with its own seeded random
// stream. Configuration errors are fatal: the walk must not begin.
func New(cfg Config) (*Walker, error) {
	if cfg.Directions != FourDirections && cfg.Directions != EightDirections {
		return nil, ErrUnsupportedDirectionCount
	}
	if cfg.Steps < 0 {
		return nil, ErrNegativeStepCount
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	return &Walker{
		directions: cfg.Directions,
		steps:      cfg.Steps,
		revisit:    cfg.Revisit,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// Run performs one walk on grid and returns the configuration error, if
// any, before the grid is touched.
func Run(cfg Config, grid Grid) (*Result, error) {
	w, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return w.Run(grid)
}

// Run walks grid from a uniformly random starting cell. The grid is
// mutated in place and must not be accessed concurrently until Run
// returns.
func (w *Walker) Run(grid Grid) (*Result, error) {
	rows, cols := grid.Extent()
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}

	start := Position{Row: w.rng.Intn(rows), Col: w.rng.Intn(cols)}
	return w.runFrom(grid, start), nil
}

// runFrom is the walk state machine: seed the start cell, then take up
// to w.steps committed moves, delegating boundary and revisit resolution
// to resolveStep. Stuck marks the current cell with the sentinel and
// ends the walk early.
func (w *Walker) runFrom(grid Grid, start Position) *Result {
	rows, cols := grid.Extent()
	maxRow, maxCol := rows-1, cols-1

	grid.Set(start.Row, start.Col, StartSeed)
	current := start
	result := &Result{Start: start, State: Completed}

	for step := 1; step <= w.steps; step++ {
		first, err := w.takeStep(current, nil)
		if err != nil {
			// Unreachable: the unconstrained draw always has candidates.
			break
		}

		attempt, stuck := w.resolveStep(grid, current, first, maxRow, maxCol)
		if stuck {
			grid.Set(current.Row, current.Col, StuckSentinel)
			result.State = Stuck
			result.StuckStep = step
			break
		}

		grid.Set(attempt.Pos.Row, attempt.Pos.Col, grid.Get(attempt.Pos.Row, attempt.Pos.Col)+1)
		current = attempt.Pos
		result.Steps++
	}

	result.Final = current
	return result
}
