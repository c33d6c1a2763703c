package engine

import "testing"

func TestScoreEventOnlyOnDisplayedChange(t *testing.T) {
	sim := newTestSim()
	startRun(sim)

	// Displayed score is floor(raw/10); at multiplier 1 a baseline frame
	// adds 1 raw point, so a score event lands roughly every 10 frames.
	events := runFrames(sim, 0, 60)

	scoreEvents := 0
	for _, ev := range events {
		if _, ok := ev.(ScoreEvent); ok {
			scoreEvents++
		}
	}
	if scoreEvents == 0 {
		t.Fatal("no score events in 60 frames")
	}
	if scoreEvents > 7 {
		t.Errorf("%d score events in 60 frames; must be rate-limited to displayed changes", scoreEvents)
	}
}

func TestScoreEventCarriesRawScore(t *testing.T) {
	sim := newTestSim()
	startRun(sim)

	for i := 0; i < 60; i++ {
		for _, ev := range sim.Step(frameTime(i)) {
			if se, ok := ev.(ScoreEvent); ok {
				if se.Score != sim.Score() {
					t.Fatalf("event score %v != raw score %v (events carry raw, not displayed)", se.Score, sim.Score())
				}
				if int(se.Score/10) != sim.DisplayedScore() {
					t.Fatalf("displayed mismatch: %v vs %d", se.Score, sim.DisplayedScore())
				}
			}
		}
	}
}

func TestMultiplierAcceleratesScore(t *testing.T) {
	sim := newTestSim()
	startRun(sim)
	sim.Step(frameTime(0))

	base := sim.Score()
	sim.accumulateScore(1)
	plain := sim.Score() - base

	sim.cleared = 5
	sim.multiplier = 1 + float64(sim.cleared)*sim.settings.BonusFactor
	base = sim.Score()
	sim.accumulateScore(1)
	boosted := sim.Score() - base

	if boosted <= plain {
		t.Errorf("cleared obstacles must boost scoring: %v vs %v", plain, boosted)
	}
	want := plain * sim.multiplier
	if diff := boosted - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("boosted rate = %v, want %v", boosted, want)
	}
}
