package engine

import (
	"testing"
	"time"
)

func TestSingleTriggerStartsFromReady(t *testing.T) {
	sim := newTestSim()
	sim.HandleTrigger(testEpoch)
	if sim.State() != StatePlaying {
		t.Errorf("state = %v, want Playing", sim.State())
	}
}

func TestDoubleTriggerStartsFromReady(t *testing.T) {
	// First trigger starts; a second inside the double window while already
	// Playing pauses. But from Ready itself, classification is irrelevant:
	// the first trigger of a pair still starts the run.
	sim := newTestSim()
	sim.HandleTrigger(testEpoch)
	if sim.State() != StatePlaying {
		t.Fatalf("state after first trigger = %v, want Playing", sim.State())
	}

	sim.HandleTrigger(testEpoch.Add(200 * time.Millisecond))
	if sim.State() != StatePaused {
		t.Errorf("state after paired trigger = %v, want Paused", sim.State())
	}
}

func TestDoubleTogglesPauseAndResume(t *testing.T) {
	sim := newTestSim()
	startRun(sim)

	base := testEpoch.Add(10 * time.Second)
	sim.HandleTrigger(base)                             // single: jump
	sim.HandleTrigger(base.Add(150 * time.Millisecond)) // double: pause
	if sim.State() != StatePaused {
		t.Fatalf("state = %v, want Paused", sim.State())
	}

	later := base.Add(5 * time.Second)
	sim.HandleTrigger(later) // single while paused: ignored
	if sim.State() != StatePaused {
		t.Fatalf("single while Paused changed state to %v", sim.State())
	}

	sim.HandleTrigger(later.Add(150 * time.Millisecond)) // double: resume
	if sim.State() != StatePlaying {
		t.Errorf("state = %v, want Playing after resume double", sim.State())
	}
}

func TestImmediateDuplicateIsNotDouble(t *testing.T) {
	sim := newTestSim()
	startRun(sim)

	base := testEpoch.Add(10 * time.Second)
	sim.HandleTrigger(base)
	// Below the lower bound: sensor bounce, classified single
	sim.HandleTrigger(base.Add(20 * time.Millisecond))
	if sim.State() != StatePlaying {
		t.Errorf("bounce trigger paused the game: state = %v", sim.State())
	}
}

func TestPauseActionIgnoredWhileReady(t *testing.T) {
	sim := newTestSim()
	sim.HandlePause()
	if sim.State() != StateReady {
		t.Errorf("pause while Ready changed state to %v", sim.State())
	}
}

func TestPauseActionIgnoredAfterGameOver(t *testing.T) {
	sim := newTestSim()
	startRun(sim)
	for i := 0; i < 100000 && sim.State() == StatePlaying; i++ {
		sim.Step(frameTime(i))
	}
	if sim.State() != StateGameOver {
		t.Fatal("expected the run to end")
	}

	sim.HandlePause()
	if sim.State() != StateGameOver {
		t.Errorf("pause after GameOver changed state to %v", sim.State())
	}
}

func TestClassifyWindowBounds(t *testing.T) {
	sim := newTestSim()

	base := testEpoch
	if got := sim.classifyTrigger(base); got != TriggerSingle {
		t.Errorf("first ever trigger = %v, want single", got)
	}
	if got := sim.classifyTrigger(base.Add(doubleWindowMinMS * time.Millisecond)); got != TriggerDouble {
		t.Errorf("trigger at lower bound = %v, want double", got)
	}
	if got := sim.classifyTrigger(base.Add(time.Second)); got != TriggerSingle {
		t.Errorf("isolated trigger = %v, want single", got)
	}
	if got := sim.classifyTrigger(base.Add(time.Second + (doubleWindowMaxMS+1)*time.Millisecond)); got != TriggerSingle {
		t.Errorf("trigger past upper bound = %v, want single", got)
	}
}
