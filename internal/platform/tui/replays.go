package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Browser layout constants
const (
	tableMinWidth = 50  // Minimum table width
	maxReplays    = 100 // Max replays to load
)

// BrowserKeyMap defines the key bindings for the replay browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Watch  key.Binding
	Verify key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Verify, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Watch, k.Verify, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Verify: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "verify"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the replay list.
type BrowserModel struct {
	store    *storage.Store
	game     config.FlappyConfig
	replays  []storage.ReplaySummary
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	status   string
	width    int
	height   int
	selected int64
	loadErr  error
	quitting bool
}

// NewBrowserModel creates a browser over the stored replays.
func NewBrowserModel(store *storage.Store, game config.FlappyConfig, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:  store,
		game:   game,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Recorded", Width: 14},
	}

	// Give spare width to the player column
	tableWidth := m.width - 4
	if tableWidth > tableMinWidth {
		columns[1].Width = min(12+tableWidth-tableMinWidth, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// loadReplays reads the replay list from the store.
func (m *BrowserModel) loadReplays() {
	m.replays = nil
	if m.store != nil {
		m.replays, m.loadErr = m.store.ListReplays(maxReplays)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current replays.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.RecordedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// current returns the highlighted replay, if any.
func (m BrowserModel) current() (storage.ReplaySummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.ReplaySummary{}, false
	}
	return m.replays[i], true
}

// verify re-simulates the highlighted replay and reports the outcome.
func (m *BrowserModel) verify() {
	r, ok := m.current()
	if !ok {
		return
	}
	rp, err := m.store.Replay(r.ID)
	if err != nil {
		m.status = err.Error()
		return
	}
	res, err := replay.Verify(m.game, rp)
	if err != nil {
		m.status = fmt.Sprintf("#%d does not verify: %v", r.ID, err)
		return
	}
	m.status = fmt.Sprintf("#%d verified: score %d in %d ticks", r.ID, res.Score, res.Ticks)
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Watch):
			if r, ok := m.current(); ok {
				m.selected = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Verify):
			m.verify()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("REPLAYS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.replays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		msg := "No replays recorded yet.\nFinish a game to record one!"
		if m.loadErr != nil {
			msg = "Could not load replays:\n" + m.loadErr.Error()
		}
		return emptyStyle.Render(msg)
	}

	return m.table.View()
}

// Selected returns the ID of the replay chosen for watching, or 0.
func (m BrowserModel) Selected() int64 {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunBrowser runs the replay browser. It returns the ID of the replay the
// user chose to watch, or 0 if they quit.
func RunBrowser(store *storage.Store, game config.FlappyConfig, width, height int) (int64, error) {
	p := tea.NewProgram(
		NewBrowserModel(store, game, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
