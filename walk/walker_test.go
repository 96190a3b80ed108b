package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGrid is an in-memory Grid that records every write and flags any
// access outside its extent.
type testGrid struct {
	rows, cols int
	cells      [][]int
	setCalls   int
	outOfRange bool
}

func newTestGrid(rows, cols int) *testGrid {
	cells := make([][]int, rows)
	for i := range cells {
		cells[i] = make([]int, cols)
	}
	return &testGrid{rows: rows, cols: cols, cells: cells}
}

func (g *testGrid) in(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *testGrid) Get(row, col int) int {
	if !g.in(row, col) {
		g.outOfRange = true
		return 0
	}
	return g.cells[row][col]
}

func (g *testGrid) Set(row, col, value int) {
	if !g.in(row, col) {
		g.outOfRange = true
		return
	}
	g.setCalls++
	g.cells[row][col] = value
}

func (g *testGrid) Extent() (int, int) {
	return g.rows, g.cols
}

func int64p(v int64) *int64 {
	return &v
}

func TestNewWalkerValidation(t *testing.T) {
	t.Run("rejects unsupported direction count", func(t *testing.T) {
		_, err := New(Config{Directions: 6, Steps: 10})
		assert.ErrorIs(t, err, ErrUnsupportedDirectionCount)
	})

	t.Run("rejects negative step budget", func(t *testing.T) {
		_, err := New(Config{Directions: FourDirections, Steps: -1})
		assert.ErrorIs(t, err, ErrNegativeStepCount)
	})

	t.Run("accepts both direction modes", func(t *testing.T) {
		for _, dirs := range []int{FourDirections, EightDirections} {
			_, err := New(Config{Directions: dirs, Steps: 0})
			assert.NoError(t, err)
		}
	})
}

func TestRunEmptyGrid(t *testing.T) {
	w, err := New(Config{Directions: FourDirections, Steps: 10})
	require.NoError(t, err)

	_, err = w.Run(newTestGrid(0, 0))
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestRunDeterminism(t *testing.T) {
	cfg := Config{
		Directions: EightDirections,
		Steps:      2000,
		Revisit:    true,
		Seed:       int64p(42),
	}

	first := newTestGrid(30, 30)
	second := newTestGrid(30, 30)

	resA, err := Run(cfg, first)
	require.NoError(t, err)
	resB, err := Run(cfg, second)
	require.NoError(t, err)

	assert.Equal(t, resA, resB)
	assert.Equal(t, first.cells, second.cells)
}

func TestRunStaysInBounds(t *testing.T) {
	cfg := Config{
		Directions: EightDirections,
		Steps:      5000,
		Revisit:    true,
		Seed:       int64p(7),
	}

	grid := newTestGrid(12, 9)
	res, err := Run(cfg, grid)
	require.NoError(t, err)

	assert.False(t, grid.outOfRange, "walker accessed a cell outside the grid")
	assert.Equal(t, Completed, res.State)
}

func TestRunStepBudget(t *testing.T) {
	t.Run("revisit walk commits seeding plus one write per step", func(t *testing.T) {
		cfg := Config{
			Directions: FourDirections,
			Steps:      500,
			Revisit:    true,
			Seed:       int64p(11),
		}

		grid := newTestGrid(50, 50)
		res, err := Run(cfg, grid)
		require.NoError(t, err)

		assert.Equal(t, Completed, res.State)
		assert.Equal(t, 500, res.Steps)
		assert.Equal(t, 501, grid.setCalls)
	})

	t.Run("zero budget seeds the start cell only", func(t *testing.T) {
		cfg := Config{
			Directions: FourDirections,
			Steps:      0,
			Revisit:    false,
			Seed:       int64p(3),
		}

		grid := newTestGrid(4, 4)
		res, err := Run(cfg, grid)
		require.NoError(t, err)

		assert.Equal(t, Completed, res.State)
		assert.Equal(t, 0, res.Steps)
		assert.Equal(t, res.Start, res.Final)
		assert.Equal(t, 1, grid.setCalls)
		assert.Equal(t, StartSeed, grid.cells[res.Start.Row][res.Start.Col])
	})
}

func TestRunNoRevisit(t *testing.T) {
	cfg := Config{
		Directions: FourDirections,
		Steps:      60,
		Revisit:    false,
		Seed:       int64p(19),
	}

	grid := newTestGrid(20, 20)
	res, err := Run(cfg, grid)
	require.NoError(t, err)

	// Without revisiting, a cell is committed at most once: unvisited
	// cells stay 0, visited cells hold 1, the start holds 2, and only a
	// stuck terminal cell may hold the sentinel 3.
	sentinels := 0
	for row := range grid.cells {
		for col, value := range grid.cells[row] {
			switch {
			case value == StuckSentinel:
				sentinels++
			case row == res.Start.Row && col == res.Start.Col:
				assert.Equal(t, StartSeed, value)
			default:
				assert.LessOrEqual(t, value, 1)
			}
		}
	}

	if res.State == Stuck {
		assert.Equal(t, 1, sentinels)
	} else {
		assert.Equal(t, 0, sentinels)
	}
}

func TestRunSingleCellGrid(t *testing.T) {
	t.Run("no-revisit walker is boundary blocked immediately", func(t *testing.T) {
		w, err := New(Config{
			Directions: FourDirections,
			Steps:      5,
			Revisit:    false,
			Seed:       int64p(1),
		})
		require.NoError(t, err)

		grid := newTestGrid(1, 1)
		res := w.runFrom(grid, Position{Row: 0, Col: 0})

		assert.Equal(t, Stuck, res.State)
		assert.Equal(t, 1, res.StuckStep)
		assert.Equal(t, 0, res.Steps)
		assert.Equal(t, [][]int{{StuckSentinel}}, grid.cells)
	})

	t.Run("allowing revisits does not help against the boundary", func(t *testing.T) {
		w, err := New(Config{
			Directions: EightDirections,
			Steps:      5,
			Revisit:    true,
			Seed:       int64p(1),
		})
		require.NoError(t, err)

		grid := newTestGrid(1, 1)
		res := w.runFrom(grid, Position{Row: 0, Col: 0})

		assert.Equal(t, Stuck, res.State)
		assert.Equal(t, [][]int{{StuckSentinel}}, grid.cells)
	})
}

func TestRunSaturatedNeighborhood(t *testing.T) {
	// A 3x3 grid with every cell around the center pre-marked visited.
	saturated := func() *testGrid {
		grid := newTestGrid(3, 3)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if row != 1 || col != 1 {
					grid.cells[row][col] = 1
				}
			}
		}
		return grid
	}

	t.Run("no-revisit walker sticks on the first step", func(t *testing.T) {
		w, err := New(Config{
			Directions: EightDirections,
			Steps:      10,
			Revisit:    false,
			Seed:       int64p(5),
		})
		require.NoError(t, err)

		grid := saturated()
		res := w.runFrom(grid, Position{Row: 1, Col: 1})

		assert.Equal(t, Stuck, res.State)
		assert.Equal(t, 1, res.StuckStep)
		assert.Equal(t, StuckSentinel, grid.cells[1][1])
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if row != 1 || col != 1 {
					assert.Equal(t, 1, grid.cells[row][col])
				}
			}
		}
	})

	t.Run("revisit walker keeps moving and counts visits", func(t *testing.T) {
		w, err := New(Config{
			Directions: EightDirections,
			Steps:      10,
			Revisit:    true,
			Seed:       int64p(5),
		})
		require.NoError(t, err)

		grid := saturated()
		res := w.runFrom(grid, Position{Row: 1, Col: 1})

		assert.Equal(t, Completed, res.State)
		assert.Equal(t, 10, res.Steps)

		// Eight pre-marked cells plus the seeded center sum to 10; the
		// ten commits add one each.
		sum := 0
		for row := range grid.cells {
			for _, value := range grid.cells[row] {
				sum += value
			}
		}
		assert.Equal(t, 20, sum)
	})
}
