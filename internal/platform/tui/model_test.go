package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/blink-runner/internal/core"
	"github.com/vovakirdan/blink-runner/internal/engine"
)

func newTestModel() Model {
	return NewModel(nil, Options{
		Settings: engine.DefaultSettings(),
		Palette:  core.DefaultPalette(),
		TickRate: 120,
		Seed:     1,
		Width:    40,
		Height:   12,
	})
}

// A session can end without any quit key reaching Update (dropped SSH
// connection, external kill). Close must stop the engine goroutine so the
// render loop does not keep ticking for a dead session.
func TestCloseStopsAbandonedEngine(t *testing.T) {
	m := newTestModel()

	// No quit key was ever sent; the session is simply abandoned.
	m.Close()

	select {
	case <-m.eng.Done():
	case <-time.After(time.Second):
		t.Fatal("engine still running after Close")
	}

	// The event channel drains and closes, releasing any pending reader.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-m.eng.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel not closed after Close")
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	m := newTestModel()
	m.Close()

	<-m.eng.Done()

	// A second Close after shutdown must not block or panic.
	done := make(chan struct{})
	go func() {
		m.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second Close blocked")
	}
}
