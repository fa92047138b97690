package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a Model.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; finished sessions are saved as replays
	Logger  *log.Logger
	Audio   audio.Player
	Player  string

	// Playback, when set, makes the model watch a recorded session instead
	// of taking game input.
	Playback *replay.Playback
}

// Model is the Bubble Tea model hosting one machine. It schedules ticks,
// buffers input between them and draws each produced snapshot.
type Model struct {
	opts     Options
	recorder *replay.Recorder
	machine  *flappy.Machine
	renderer *flappy.Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	clock    Clock
	input    core.InputFrame
	snap     flappy.Snapshot
	status   string
	ticking  bool
	quitting bool
}

// NewModel creates a model in the Idle state.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}

	m := Model{
		opts:     opts,
		renderer: flappy.NewRenderer(opts.Game, opts.Runtime.Seed),
		screen:   core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		ticking:  true,
	}
	m.help.Width = opts.Runtime.ScreenW

	if opts.Playback != nil {
		m.machine = opts.Playback.Machine()
	} else {
		gameOpts := []flappy.Option{
			flappy.WithLogger(opts.Logger),
			flappy.WithAudio(audio.Logged{Next: opts.Audio, Logger: opts.Logger}),
		}
		rng := rand.New(rand.NewSource(opts.Runtime.Seed))
		m.recorder = replay.NewRecorder(opts.Game, rng, opts.Player, gameOpts...)
		m.machine = m.recorder.Machine()
	}
	m.snap = m.machine.Snapshot()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	return m.handleAction(m.keys.Action(msg))
}

// handleAction routes an action: quit is handled here, restart is applied
// directly while the session is over, everything else waits for the next tick.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch {
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case a == core.ActionNone, m.opts.Playback != nil:
		return m, nil
	}

	if m.machine.State() == flappy.StateGameOver {
		if a != core.ActionRestart {
			return m, nil
		}
		m.machine.Input(core.ActionRestart)
		m.snap = m.machine.Snapshot()
		m.status = ""
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.opts.Runtime.TickInterval())
		}
		return m, nil
	}

	m.input.Push(a)
	return m, nil
}

// handleTick advances the machine by one tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.clock.start.IsZero() {
		m.clock = NewClock(t)
	}
	now := m.clock.Since(t)

	var (
		snap flappy.Snapshot
		ok   bool
	)
	if m.opts.Playback != nil {
		var err error
		snap, ok, err = m.opts.Playback.Step()
		if err != nil {
			m.opts.Logger.Error("replay playback failed", "error", err)
			m.status = err.Error()
		}
		if m.opts.Playback.Done() {
			res := m.opts.Playback.Result()
			if m.status == "" {
				m.status = fmt.Sprintf("replay ended: score %d in %d ticks", res.Score, res.Ticks)
			}
			m.ticking = false
		}
	} else {
		var rp *replay.Replay
		snap, ok, rp = m.recorder.Tick(now, m.input)
		if rp != nil {
			m.saveReplay(rp)
		}
	}
	m.input.Clear()

	if ok {
		m.renderer.Advance()
		m.snap = snap
	}

	// Nothing to simulate until restart: stop scheduling ticks
	if m.machine.State() == flappy.StateGameOver {
		m.snap = m.machine.Snapshot()
		m.ticking = false
	}
	if !m.ticking {
		return m, nil
	}
	return m, tickCmd(m.opts.Runtime.TickInterval())
}

// saveReplay stores a finished session. Storage failures never stop the game.
func (m *Model) saveReplay(rp *replay.Replay) {
	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveReplay(rp)
	if err != nil {
		m.opts.Logger.Warn("could not save replay", "error", err)
		return
	}
	m.opts.Logger.Info("replay saved", "id", id, "player", rp.Player, "score", rp.Score, "ticks", rp.Ticks)
	m.status = fmt.Sprintf("saved as replay #%d", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.screen, m.snap)

	dir := filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "screenshot saved to " + path
}

// Machine returns the machine driven by the model.
func (m Model) Machine() *flappy.Machine {
	return m.machine
}

// Ticking reports whether the tick loop is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.snap)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
