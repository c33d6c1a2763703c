package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blink-runner/internal/storage"
)

// maxBoardRuns caps how many runs the board loads.
const maxBoardRuns = 100

// BoardKeyMap defines the key bindings for the run board.
type BoardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel is the Bubble Tea model for the run history board.
type BoardModel struct {
	runs     []storage.RunEntry
	table    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewBoardModel creates a run board over the given store.
func NewBoardModel(store *storage.Store, width, height int) BoardModel {
	m := BoardModel{
		keys:   DefaultBoardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	if store != nil {
		if runs, err := store.TopRuns(maxBoardRuns); err == nil {
			m.runs = runs
		}
	}

	m.table = m.createTable()
	m.table.SetRows(m.rows())
	return m
}

func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Cleared", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-6),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *BoardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.runs))
	for i, run := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", int(run.Score/10)),
			fmt.Sprintf("%d", run.Cleared),
			fmt.Sprintf("%ds", run.Duration),
			run.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 6)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Blink Runner - Run History")
	body := m.table.View()
	if len(m.runs) == 0 {
		body = "No runs recorded yet."
	}
	return title + "\n\n" + body + "\n" + m.help.View(m.keys)
}

// RunBoard shows the interactive run history board and blocks until exit.
func RunBoard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewBoardModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
