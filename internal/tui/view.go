package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tomatui/internal/digits"
	"tomatui/internal/timer"
)

const (
	headerIdle  = "🍅 POMODORO TIMER 🍅"
	headerFlash = "🔔 NOTIFICATION! 🔔"

	focusPanelTitle  = "FOCUS TIME"
	breakPanelTitle  = "BREAK TIME"
	focusPanelMarker = "⚡"
	breakPanelMarker = "☕"
)

const (
	focusColor    = lipgloss.Color("#52C41A")
	breakColor    = lipgloss.Color("#FAAD14")
	inactiveColor = lipgloss.Color("#6E6E6E")
)

// panelChrome is the horizontal space a panel spends on border and padding.
const panelChrome = 6

var (
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	flashStyle      = headerStyle.Copy().Foreground(breakColor)
	focusTextStyle  = lipgloss.NewStyle().Foreground(focusColor).Bold(true)
	breakTextStyle  = lipgloss.NewStyle().Foreground(breakColor).Bold(true)
	inactiveStyle   = lipgloss.NewStyle().Foreground(inactiveColor)
	settingsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#13C2C2"))
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Align(lipgloss.Center)
	focusPanelStyle = panelStyle.Copy().BorderForeground(focusColor)
	breakPanelStyle = panelStyle.Copy().BorderForeground(breakColor)
	idlePanelStyle  = panelStyle.Copy().BorderForeground(inactiveColor)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.engine.Snapshot()

	header := renderHeader(snap.FlashActive)
	focus := m.renderPanel(focusPanelTitle, focusPanelMarker, snap.FocusRemaining, snap.Phase == timer.PhaseFocus, focusTextStyle, focusPanelStyle)
	brk := m.renderPanel(breakPanelTitle, breakPanelMarker, snap.BreakRemaining, snap.Phase == timer.PhaseBreak, breakTextStyle, breakPanelStyle)
	footer := m.renderFooter(snap)

	content := lipgloss.JoinVertical(lipgloss.Center, header, focus, brk, footer)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func renderHeader(flash bool) string {
	if flash {
		return flashStyle.Render(headerFlash)
	}
	return headerStyle.Render(headerIdle)
}

func (m *Model) renderPanel(title, marker string, remaining int, active bool, textStyle, boxStyle lipgloss.Style) string {
	clock := digits.FormatTime(remaining)
	rows := digits.Render(clock)
	body := strings.Join(rows, "\n")
	if m.width > 0 && runewidth.StringWidth(rows[0]) > m.width-panelChrome {
		// Not enough columns for the block glyphs.
		body = clock
	}
	if active {
		title += " " + marker
	} else {
		textStyle = inactiveStyle
		boxStyle = idlePanelStyle
	}
	return boxStyle.Render(textStyle.Render(title) + "\n\n" + textStyle.Render(body))
}

func (m *Model) renderFooter(snap timer.Snapshot) string {
	settings := fmt.Sprintf("Cycles: %d | Focus: %dmin | Break: %dmin",
		snap.TotalCycles, snap.FocusDuration/60, snap.BreakDuration/60)
	return settingsStyle.Render(settings) + "\n" + m.help.ShortHelpView(m.keys.shortHelp())
}
