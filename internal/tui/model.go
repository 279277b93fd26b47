// Package tui provides the Bubble Tea timer interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"tomatui/internal/control"
	"tomatui/internal/timer"
)

// frameInterval is the redraw cadence. Key input arrives asynchronously
// through Bubble Tea, so frames only drive the clock display and the
// once-per-second accounting gate.
const frameInterval = 100 * time.Millisecond

// tickInterval is the minimum spacing between engine accounting steps.
const tickInterval = time.Second

// Chimer receives one signal per phase transition.
type Chimer interface {
	Chime()
}

// frameMsg asks for one render frame.
type frameMsg time.Time

// Model implements the Bubble Tea timer UI.
type Model struct {
	engine *timer.Engine
	chimer Chimer
	keys   keyMap
	help   help.Model

	width  int
	height int

	lastTick time.Time
	now      func() time.Time

	quitting bool
}

// NewModel constructs a timer TUI model around an engine. The chimer is
// called once per phase transition; it may be nil.
func NewModel(engine *timer.Engine, chimer Chimer) *Model {
	return &Model{
		engine:   engine,
		chimer:   chimer,
		keys:     defaultKeyMap(),
		help:     help.New(),
		lastTick: time.Now(),
		now:      time.Now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		m.advance()
		return m, frameTick()
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.commandFor(msg)
	if !ok {
		return m, nil
	}
	if cmd == control.CmdQuit {
		m.quitting = true
		return m, tea.Quit
	}
	control.Apply(m.engine, cmd)
	m.syncPauseHelp()
	return m, nil
}

// advance runs one engine accounting step once at least a second of real
// time has passed since the previous step. The gate is tracked apart from
// the engine's own elapsed-time baseline so the frame cadence never leaks
// into time accounting. While paused neither the gate nor the engine moves.
func (m *Model) advance() {
	if m.engine.Phase() == timer.PhasePaused {
		return
	}
	now := m.now()
	if now.Sub(m.lastTick) < tickInterval {
		return
	}
	m.lastTick = now
	if m.engine.Tick() && m.chimer != nil {
		m.chimer.Chime()
	}
}

func (m *Model) syncPauseHelp() {
	if m.engine.Phase() == timer.PhasePaused {
		m.keys.TogglePause.SetHelp("space", "resume")
		return
	}
	m.keys.TogglePause.SetHelp("space", "pause")
}
