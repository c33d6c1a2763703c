package engine

import "time"

// Double-trigger timing window. A trigger closer than the lower bound to
// its predecessor is treated as duplicate sensor noise and still counts as
// single; one inside the window is a double.
const (
	doubleWindowMinMS = 80
	doubleWindowMaxMS = 400
)

// TriggerKind is the disambiguator's verdict for one inbound trigger.
type TriggerKind int

const (
	TriggerSingle TriggerKind = iota
	TriggerDouble
)

// classifyTrigger decides single vs double from the gap to the previous
// trigger. The upstream classifier only supplies arrival times; pairing is
// the engine's job.
func (sim *Sim) classifyTrigger(at time.Time) TriggerKind {
	defer func() { sim.lastTrigger = at }()

	if sim.lastTrigger.IsZero() {
		return TriggerSingle
	}
	gap := float64(at.Sub(sim.lastTrigger)) / float64(time.Millisecond)
	if gap >= doubleWindowMinMS && gap <= doubleWindowMaxMS {
		return TriggerDouble
	}
	return TriggerSingle
}

// HandleTrigger feeds one classifier trigger through the state machine.
// Triggers with no valid transition for the current state are silently
// dropped; a noisy classifier must never corrupt run state.
//
// Any trigger starts a run from Ready or GameOver, double or not.
// Refusing a restart because two blinks landed close together reads as a
// broken game, and the classifier is at its noisiest right after
// calibration.
func (sim *Sim) HandleTrigger(at time.Time) {
	kind := sim.classifyTrigger(at)

	switch sim.state {
	case StateReady, StateGameOver:
		sim.resetRun()
		sim.state = StatePlaying

	case StatePlaying:
		if kind == TriggerDouble {
			sim.state = StatePaused
		} else if sim.player.Grounded() {
			sim.jump()
		}

	case StatePaused:
		if kind == TriggerDouble {
			sim.state = StatePlaying
		}
	}
}

// HandlePause applies an explicitly classified pause/resume action (a host
// that already disambiguated, or a keyboard). Only valid while playing or
// paused; ignored elsewhere.
func (sim *Sim) HandlePause() {
	switch sim.state {
	case StatePlaying:
		sim.state = StatePaused
	case StatePaused:
		sim.state = StatePlaying
	}
}
