package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blink-runner/internal/core"
	"github.com/vovakirdan/blink-runner/internal/engine"
	"github.com/vovakirdan/blink-runner/internal/storage"
)

// hudRows is how many terminal rows the status line takes below the scene.
const hudRows = 1

// Options configures a runner session.
type Options struct {
	Settings engine.Settings
	Palette  core.Palette
	TickRate int   // Engine ticks per second
	Seed     int64 // 0 means time-based
	Width    int   // Terminal width in cells
	Height   int   // Terminal height in cells

	// Feed is an optional newline-delimited JSON command stream (a blink
	// classifier piping triggers over stdin). May be nil.
	Feed io.Reader
}

// engineEventMsg wraps one engine event for the Bubble Tea loop.
type engineEventMsg struct {
	ev engine.Event
}

// engineClosedMsg signals that the engine's event channel closed.
type engineClosedMsg struct{}

var (
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
	hudScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Background(lipgloss.Color("236")).
			Bold(true)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model hosting one engine instance. The engine
// runs on its own goroutine; the model only exchanges messages with it and
// renders the frame snapshots it emits.
type Model struct {
	eng   *engine.Engine
	store *storage.Store
	keys  *KeyMapper

	frame     core.Frame
	haveFrame bool
	score     int
	highScore float64
	gameOver  bool

	width      int
	height     int
	quitting   bool
	initFailed string
}

// NewModel creates a session model, starts the engine goroutine and hands
// it the render surface. The store may be nil; runs are then not persisted.
func NewModel(store *storage.Store, opts Options) Model {
	highScore := 0.0
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			highScore = hs
		}
	}

	eng := engine.New(opts.TickRate)
	eng.Start()
	eng.Send(engine.InitCmd{
		Surface:   core.NewScreen(opts.Width, opts.Height-hudRows),
		Settings:  opts.Settings,
		Palette:   opts.Palette,
		HighScore: highScore,
		Seed:      opts.Seed,
	})

	if opts.Feed != nil {
		go pumpFeed(eng, opts.Feed)
	}

	return Model{
		eng:       eng,
		store:     store,
		keys:      NewKeyMapper(),
		highScore: highScore,
		width:     opts.Width,
		height:    opts.Height,
	}
}

// pumpFeed forwards wire commands from a classifier stream to the engine.
// Malformed lines are skipped; the feed must not be able to kill a session.
func pumpFeed(eng *engine.Engine, feed io.Reader) {
	sc := bufio.NewScanner(feed)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		cmd, err := engine.DecodeCommand(line)
		if err != nil || cmd == nil {
			continue
		}
		if _, ok := cmd.(engine.InitCmd); ok {
			// The session already initialized the engine.
			continue
		}
		select {
		case <-eng.Done():
			return
		default:
			eng.Send(cmd)
		}
	}
}

// Close stops the engine goroutine. The Bubble Tea loop can exit without a
// quit key reaching Update (a dropped SSH session, an external kill), so
// whoever owns the program must call Close once it returns. Safe to call
// repeatedly and concurrently with the event loop.
func (m Model) Close() {
	m.eng.Send(engine.StopCmd{})
}

// Init starts listening for engine events.
func (m Model) Init() tea.Cmd {
	return m.waitEvent()
}

// waitEvent blocks on the next engine event and wraps it as a tea.Msg.
func (m Model) waitEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.eng.Events()
		if !ok {
			return engineClosedMsg{}
		}
		return engineEventMsg{ev: ev}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.eng.Send(engine.ResizeCmd{Width: msg.Width, Height: msg.Height - hudRows})
		return m, nil

	case engineEventMsg:
		return m.handleEvent(msg.ev)

	case engineClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.eng.Send(engine.StopCmd{})
		return m, nil
	}
	if action != "" {
		m.eng.Send(engine.InputCmd{Action: action, At: time.Now()})
	}
	return m, nil
}

// handleEvent folds one engine event into the session state.
func (m Model) handleEvent(ev engine.Event) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case engine.FrameEvent:
		m.frame = ev.Frame
		m.haveFrame = true

	case engine.ScoreEvent:
		m.score = int(ev.Score / 10)
		m.gameOver = false

	case engine.HighScoreEvent:
		m.highScore = ev.HighScore

	case engine.GameOverEvent:
		m.gameOver = true
		m.score = int(ev.Score / 10)
		if m.store != nil {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveRun(ev.Score, ev.Cleared, int(ev.Duration.Seconds()))
		}

	case engine.InitFailedEvent:
		m.initFailed = ev.Reason
		m.quitting = true
		m.eng.Send(engine.StopCmd{})
		return m, nil
	}

	return m, m.waitEvent()
}

// View renders the latest frame with a status line underneath.
func (m Model) View() string {
	if m.quitting {
		if m.initFailed != "" {
			return errStyle.Render("engine init failed: "+m.initFailed) + "\n"
		}
		return ""
	}
	if !m.haveFrame {
		return hudStyle.Render("waiting for first frame...")
	}
	return RenderFrame(m.frame) + "\n" + m.hud()
}

// hud builds the one-line status bar.
func (m Model) hud() string {
	score := hudScoreStyle.Render(fmt.Sprintf(" SCORE %d ", m.score))
	best := hudStyle.Render(fmt.Sprintf(" BEST %d ", int(m.highScore/10)))

	hint := " space: blink   p: pause   q: quit "
	if m.gameOver {
		hint = " game over. blink (space) to restart "
	}

	bar := score + best + hudStyle.Render(hint)
	pad := m.width - lipgloss.Width(bar)
	if pad > 0 {
		bar += hudStyle.Render(strings.Repeat(" ", pad))
	}
	return bar
}

// Run starts a Bubble Tea program around a fresh session model and blocks
// until it exits. The engine is stopped however the program ends.
func Run(store *storage.Store, opts Options) error {
	model := NewModel(store, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
