package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset(t *testing.T) {
	t.Run("cardinal deltas match the direction table", func(t *testing.T) {
		expected := map[Direction]Position{
			North: {Row: 1, Col: 0},
			East:  {Row: 0, Col: 1},
			South: {Row: -1, Col: 0},
			West:  {Row: 0, Col: -1},
		}
		for dir, want := range expected {
			got, err := Offset(dir, FourDirections)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("diagonal deltas match the direction table", func(t *testing.T) {
		expected := map[Direction]Position{
			NorthEast: {Row: 1, Col: 1},
			SouthEast: {Row: -1, Col: 1},
			SouthWest: {Row: -1, Col: -1},
			NorthWest: {Row: 1, Col: -1},
		}
		for dir, want := range expected {
			got, err := Offset(dir, EightDirections)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("diagonal direction is invalid in four-direction mode", func(t *testing.T) {
		_, err := Offset(NorthEast, FourDirections)
		assert.ErrorIs(t, err, ErrInvalidDirection)
	})

	t.Run("negative direction is invalid", func(t *testing.T) {
		_, err := Offset(Direction(-1), EightDirections)
		assert.ErrorIs(t, err, ErrInvalidDirection)
	})

	t.Run("direction count must be 4 or 8", func(t *testing.T) {
		_, err := Offset(North, 6)
		assert.ErrorIs(t, err, ErrUnsupportedDirectionCount)
	})
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "N", North.String())
	assert.Equal(t, "NW", NorthWest.String())
	assert.Equal(t, "invalid", Direction(8).String())
}

func TestDirectionSet(t *testing.T) {
	t.Run("fills after every cardinal direction is added", func(t *testing.T) {
		set := newDirectionSet(FourDirections)
		for _, d := range []Direction{North, East, South} {
			set.add(d)
			assert.False(t, set.full())
		}
		set.add(West)
		assert.True(t, set.full())
	})

	t.Run("ignores diagonals in four-direction mode", func(t *testing.T) {
		set := newDirectionSet(FourDirections)
		set.add(NorthEast)
		set.add(SouthWest)
		assert.False(t, set.has(NorthEast))
		assert.Equal(t, 0, set.size)
	})

	t.Run("adding a direction twice counts once", func(t *testing.T) {
		set := newDirectionSet(EightDirections)
		set.add(North)
		set.add(North)
		assert.Equal(t, 1, set.size)
		assert.True(t, set.has(North))
	})
}
