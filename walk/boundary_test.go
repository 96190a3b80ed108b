package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInBounds(t *testing.T) {
	assert.True(t, inBounds(Position{Row: 0, Col: 0}, 2, 2))
	assert.True(t, inBounds(Position{Row: 2, Col: 2}, 2, 2))
	assert.False(t, inBounds(Position{Row: 3, Col: 0}, 2, 2))
	assert.False(t, inBounds(Position{Row: 0, Col: -1}, 2, 2))
}

func TestForbiddenDirections(t *testing.T) {
	t.Run("crossing the north edge forbids northward moves", func(t *testing.T) {
		attempt := StepAttempt{Pos: Position{Row: 3, Col: 1}, Dir: North}
		avoid := forbiddenDirections(attempt, 2, 2)
		assert.Contains(t, avoid, North)
		assert.Contains(t, avoid, NorthEast)
		assert.Contains(t, avoid, NorthWest)
		assert.NotContains(t, avoid, South)
		assert.NotContains(t, avoid, East)
	})

	t.Run("crossing the west edge forbids westward moves", func(t *testing.T) {
		attempt := StepAttempt{Pos: Position{Row: 1, Col: -1}, Dir: West}
		avoid := forbiddenDirections(attempt, 2, 2)
		assert.Contains(t, avoid, West)
		assert.Contains(t, avoid, SouthWest)
		assert.Contains(t, avoid, NorthWest)
		assert.NotContains(t, avoid, East)
	})

	t.Run("corner overshoot forbids both edges", func(t *testing.T) {
		attempt := StepAttempt{Pos: Position{Row: 3, Col: 3}, Dir: NorthEast}
		avoid := forbiddenDirections(attempt, 2, 2)
		for _, d := range []Direction{North, NorthEast, NorthWest, East, SouthEast} {
			assert.Contains(t, avoid, d)
		}
		assert.NotContains(t, avoid, SouthWest)
	})

	t.Run("attempted direction is always forbidden", func(t *testing.T) {
		attempt := StepAttempt{Pos: Position{Row: -1, Col: 0}, Dir: South}
		avoid := forbiddenDirections(attempt, 2, 2)
		assert.Contains(t, avoid, South)
	})
}
