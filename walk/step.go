package walk

// takeStep picks a direction uniformly at random among those not in
// excluded and applies its offset to current. Every call consumes exactly
// one draw from the walker's random stream. Returns
// ErrExhaustedDirections when the exclusion set covers the whole
// direction space; callers must treat that as "stuck", not as an
// internal failure.
func (w *Walker) takeStep(current Position, excluded *directionSet) (StepAttempt, error) {
	candidates := make([]Direction, 0, w.directions)
	for d := Direction(0); int(d) < w.directions; d++ {
		if excluded == nil || !excluded.has(d) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return StepAttempt{}, ErrExhaustedDirections
	}

	dir := candidates[w.rng.Intn(len(candidates))]
	delta := offsets[dir]
	return StepAttempt{
		Pos: Position{Row: current.Row + delta.Row, Col: current.Col + delta.Col},
		Dir: dir,
	}, nil
}
