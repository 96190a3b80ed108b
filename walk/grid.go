package walk

// Cell value conventions written by the walker. Every cell starts at
// Unvisited, the starting cell is seeded with StartSeed, each commit adds
// one to the target cell, and the cell the walker occupied when it got
// stuck is overwritten with StuckSentinel. The sentinel takes precedence
// over whatever visit count the cell held.
const (
	Unvisited     = 0
	StartSeed     = 2
	StuckSentinel = 3
)

// Position is a row/column pair. It carries no bounds of its own;
// validity against a grid extent is the caller's concern.
type Position struct {
	Row int
	Col int
}

// StepAttempt pairs a candidate position with the direction that
// produced it.
type StepAttempt struct {
	Pos Position
	Dir Direction
}

// Grid is the bounded raster a walk is recorded on. The walker owns the
// grid exclusively for the duration of one run, so implementations need
// no locking.
type Grid interface {
	// Get returns the current value of the cell at (row, col).
	Get(row, col int) int

	// Set overwrites the cell at (row, col).
	Set(row, col, value int)

	// Extent returns the number of rows and columns.
	Extent() (rows, cols int)
}
