package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tomatui/internal/control"
)

// keyMap binds terminal keys to timer commands. The adjustment pairs share
// one help entry each, mirroring the footer of the settings line.
type keyMap struct {
	TogglePause   key.Binding
	Reset         key.Binding
	IncreaseFocus key.Binding
	DecreaseFocus key.Binding
	IncreaseBreak key.Binding
	DecreaseBreak key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		TogglePause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		IncreaseFocus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f/F", "focus +/-"),
		),
		DecreaseFocus: key.NewBinding(
			key.WithKeys("F"),
		),
		IncreaseBreak: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b/B", "break +/-"),
		),
		DecreaseBreak: key.NewBinding(
			key.WithKeys("B"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// commandFor translates a key press into a timer command. The second return
// is false for keys with no binding.
func (k keyMap) commandFor(msg tea.KeyMsg) (control.Command, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return control.CmdQuit, true
	case key.Matches(msg, k.TogglePause):
		return control.CmdTogglePause, true
	case key.Matches(msg, k.Reset):
		return control.CmdReset, true
	case key.Matches(msg, k.IncreaseFocus):
		return control.CmdIncreaseFocus, true
	case key.Matches(msg, k.DecreaseFocus):
		return control.CmdDecreaseFocus, true
	case key.Matches(msg, k.IncreaseBreak):
		return control.CmdIncreaseBreak, true
	case key.Matches(msg, k.DecreaseBreak):
		return control.CmdDecreaseBreak, true
	}
	return 0, false
}

// shortHelp lists the bindings shown in the footer, in display order.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.TogglePause, k.Reset, k.IncreaseFocus, k.IncreaseBreak, k.Quit}
}
