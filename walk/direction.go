package walk

import "errors"

// Direction indexes one of the fixed compass offsets a walker can take.
// Indices 0-3 are the cardinal moves; 4-7 add the diagonals.
type Direction int

// Direction indices and their row/column deltas. Rows grow northward,
// columns grow eastward.
const (
	North     Direction = iota // row +1
	East                       // col +1
	South                      // row -1
	West                       // col -1
	NorthEast                  // row +1, col +1
	SouthEast                  // row -1, col +1
	SouthWest                  // row -1, col -1
	NorthWest                  // row +1, col -1
)

const (
	// FourDirections restricts the walk to cardinal moves.
	FourDirections = 4
	// EightDirections allows cardinal and diagonal moves.
	EightDirections = 8
)

// Walk-related errors.
var (
	ErrInvalidDirection          = errors.New("direction outside the configured direction set")
	ErrUnsupportedDirectionCount = errors.New("direction count must be 4 or 8")
	ErrExhaustedDirections       = errors.New("no directions left to choose from")
	ErrNegativeStepCount         = errors.New("step count must not be negative")
	ErrEmptyGrid                 = errors.New("grid must have at least one row and one column")
)

// offsets maps a direction index to its row/column delta.
var offsets = [EightDirections]Position{
	North:     {Row: 1, Col: 0},
	East:      {Row: 0, Col: 1},
	South:     {Row: -1, Col: 0},
	West:      {Row: 0, Col: -1},
	NorthEast: {Row: 1, Col: 1},
	SouthEast: {Row: -1, Col: 1},
	SouthWest: {Row: -1, Col: -1},
	NorthWest: {Row: 1, Col: -1},
}

var directionNames = [EightDirections]string{"N", "E", "S", "W", "NE", "SE", "SW", "NW"}

// String returns the compass name of the direction.
func (d Direction) String() string {
	if d < 0 || int(d) >= EightDirections {
		return "invalid"
	}
	return directionNames[d]
}

// Offset returns the row/column delta of a direction within a direction
// set of the given size. Asking for a direction outside [0, dirCount) is
// a programming error on the caller's side and is always reported.
func Offset(d Direction, dirCount int) (Position, error) {
	if dirCount != FourDirections && dirCount != EightDirections {
		return Position{}, ErrUnsupportedDirectionCount
	}
	if d < 0 || int(d) >= dirCount {
		return Position{}, ErrInvalidDirection
	}
	return offsets[d], nil
}

// directionSet tracks the directions excluded while resolving one step.
// Directions outside the configured count are silently ignored, so the
// boundary rules written for eight directions stay correct in
// four-direction mode.
type directionSet struct {
	count int
	tried [EightDirections]bool
	size  int
}

func newDirectionSet(count int) *directionSet {
	return &directionSet{count: count}
}

func (s *directionSet) add(d Direction) {
	if d < 0 || int(d) >= s.count || s.tried[d] {
		return
	}
	s.tried[d] = true
	s.size++
}

func (s *directionSet) has(d Direction) bool {
	return d >= 0 && int(d) < s.count && s.tried[d]
}

// full reports whether every direction in the configured set is excluded,
// meaning the walker has nowhere left to go.
func (s *directionSet) full() bool {
	return s.size == s.count
}
