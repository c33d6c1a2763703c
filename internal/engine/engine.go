package engine

import (
	"time"
)

// Engine runs the simulation on a single goroutine and routes messages
// across the host boundary. All simulation state is private to that
// goroutine; the host and engine share no mutable memory besides the
// surface handed over at INIT, which only the engine touches afterwards.
type Engine struct {
	tickRate int

	cmds   chan Command
	events chan Event
	done   chan struct{}
}

// New creates an engine. The loop does not start ticking until an InitCmd
// with a valid surface arrives.
func New(tickRate int) *Engine {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Engine{
		tickRate: tickRate,
		cmds:     make(chan Command, 64),
		events:   make(chan Event, 256),
		done:     make(chan struct{}),
	}
}

// Start launches the engine goroutine.
func (e *Engine) Start() {
	go e.run()
}

// Send delivers a command to the engine. Safe from any goroutine; a no-op
// after the engine stops.
func (e *Engine) Send(cmd Command) {
	select {
	case e.cmds <- cmd:
	case <-e.done:
	}
}

// Events returns the outbound event stream. Closed when the engine stops.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// Done is closed when the engine has fully stopped.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// run is the engine goroutine: one tick always completes before the next
// is scheduled, and commands interleave only at tick boundaries.
func (e *Engine) run() {
	defer close(e.events)

	var sim *Sim
	var ticker *time.Ticker
	var tickC <-chan time.Time

	stop := func() {
		if ticker != nil {
			ticker.Stop()
		}
		close(e.done)
	}

	for {
		select {
		case cmd := <-e.cmds:
			switch c := cmd.(type) {
			case InitCmd:
				if c.Surface == nil {
					e.emit(InitFailedEvent{Reason: "init without a drawable surface"})
					continue
				}
				if sim != nil {
					// Already initialized; a second INIT is ignored
					continue
				}
				sim = NewSim(c.Surface, c.Settings, c.Palette, c.HighScore, c.Seed)
				ticker = time.NewTicker(time.Second / time.Duration(e.tickRate))
				tickC = ticker.C

			case SettingsCmd:
				if sim == nil {
					continue
				}
				sim.ApplySettings(c.Patch)
				if c.HighScore != nil {
					sim.SetHighScore(*c.HighScore)
				}

			case InputCmd:
				if sim == nil {
					continue
				}
				at := c.At
				if at.IsZero() {
					at = time.Now()
				}
				switch c.Action {
				case ActionJump:
					sim.HandleTrigger(at)
				case ActionPause:
					sim.HandlePause()
				}
				// Unknown actions fall through silently

			case ResizeCmd:
				if sim == nil {
					continue
				}
				sim.Resize(c.Width, c.Height)

			case StopCmd:
				stop()
				return
			}

		case now := <-tickC:
			for _, ev := range sim.Step(now) {
				e.emit(ev)
			}
			e.emitFrame(FrameEvent{Frame: sim.surface.Snapshot()})
		}
	}
}

// emit delivers a semantic event, giving up only if the engine stops while
// the host is not consuming.
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	case <-e.done:
	}
}

// emitFrame delivers a frame best-effort: a slow host loses frames, never
// ticks.
func (e *Engine) emitFrame(ev FrameEvent) {
	select {
	case e.events <- ev:
	default:
	}
}
