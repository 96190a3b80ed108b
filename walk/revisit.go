package walk

// resolveStep turns a first, unconstrained step attempt into a committed
// move or a stuck verdict. A single exclusion set accumulates both
// boundary rejections and, when revisiting is disallowed, visited-cell
// rejections, so each retry draws only from directions that can still
// succeed. The loop is bounded by the direction count: once the set is
// full the walker is stuck, which is a terminal outcome rather than an
// error.
func (w *Walker) resolveStep(grid Grid, current Position, first StepAttempt, maxRow, maxCol int) (StepAttempt, bool) {
	tried := newDirectionSet(w.directions)
	attempt := first

	for {
		in := inBounds(attempt.Pos, maxRow, maxCol)
		if in && (w.revisit || grid.Get(attempt.Pos.Row, attempt.Pos.Col) == Unvisited) {
			return attempt, false
		}

		if in {
			tried.add(attempt.Dir)
		} else {
			for _, d := range forbiddenDirections(attempt, maxRow, maxCol) {
				tried.add(d)
			}
		}

		if tried.full() {
			return attempt, true
		}

		next, err := w.takeStep(current, tried)
		if err != nil {
			// Unreachable while full() is checked first; treat as stuck.
			return attempt, true
		}
		attempt = next
	}
}
