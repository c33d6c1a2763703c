package engine

// accumulateScore adds this tick's time-based score and reports a
// ScoreEvent only when the displayed integer actually changes, keeping
// host traffic bounded regardless of tick rate.
func (sim *Sim) accumulateScore(tf float64) []Event {
	sim.score += tf * sim.multiplier

	shown := sim.DisplayedScore()
	if shown == sim.lastShown {
		return nil
	}
	sim.lastShown = shown
	return []Event{ScoreEvent{Score: sim.score}}
}
