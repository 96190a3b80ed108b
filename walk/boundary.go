package walk

// inBounds reports whether pos lies inside [0, maxRow] x [0, maxCol].
func inBounds(pos Position, maxRow, maxCol int) bool {
	return pos.Row >= 0 && pos.Row <= maxRow && pos.Col >= 0 && pos.Col <= maxCol
}

// forbiddenDirections lists the directions to avoid on retry after an
// attempt landed out of bounds: the attempted direction itself plus every
// direction that would keep moving past the crossed edge. The diagonal
// entries are harmless in four-direction mode because the exclusion set
// ignores indices outside the configured count.
func forbiddenDirections(attempt StepAttempt, maxRow, maxCol int) []Direction {
	avoid := []Direction{attempt.Dir}

	if attempt.Pos.Row > maxRow {
		// No more northward moves.
		avoid = append(avoid, North, NorthEast, NorthWest)
	}
	if attempt.Pos.Row < 0 {
		// No more southward moves.
		avoid = append(avoid, South, SouthEast, SouthWest)
	}
	if attempt.Pos.Col > maxCol {
		// No more eastward moves.
		avoid = append(avoid, East, NorthEast, SouthEast)
	}
	if attempt.Pos.Col < 0 {
		// No more westward moves.
		avoid = append(avoid, West, SouthWest, NorthWest)
	}

	return avoid
}
