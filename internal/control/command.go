// Package control defines the command vocabulary the UI applies to the
// timer engine. Key-to-command mapping lives with the UI; this package owns
// what each command does, including the one-minute floor on duration
// adjustments (the engine itself accepts any duration).
package control

import "tomatui/internal/timer"

// Command enumerates every operation the UI can request.
type Command int

const (
	// CmdQuit asks the loop to shut down. It has no engine effect.
	CmdQuit Command = iota
	// CmdTogglePause pauses a running countdown or resumes a paused one.
	CmdTogglePause
	// CmdReset restores both countdowns to their configured durations.
	CmdReset
	// CmdIncreaseFocus adds one minute to the focus duration.
	CmdIncreaseFocus
	// CmdDecreaseFocus removes one minute from the focus duration.
	CmdDecreaseFocus
	// CmdIncreaseBreak adds one minute to the break duration.
	CmdIncreaseBreak
	// CmdDecreaseBreak removes one minute from the break duration.
	CmdDecreaseBreak
)

// minMinutes is the floor applied to every duration adjustment.
const minMinutes = 1

// Apply executes cmd against the engine. Unknown commands and CmdQuit do
// nothing: process shutdown belongs to the loop, not the engine.
func Apply(e *timer.Engine, cmd Command) {
	switch cmd {
	case CmdTogglePause:
		e.TogglePause()
	case CmdReset:
		e.Reset()
	case CmdIncreaseFocus:
		e.SetFocusMinutes(clampMinutes(e.FocusMinutes() + 1))
	case CmdDecreaseFocus:
		e.SetFocusMinutes(clampMinutes(e.FocusMinutes() - 1))
	case CmdIncreaseBreak:
		e.SetBreakMinutes(clampMinutes(e.BreakMinutes() + 1))
	case CmdDecreaseBreak:
		e.SetBreakMinutes(clampMinutes(e.BreakMinutes() - 1))
	}
}

func clampMinutes(minutes int) int {
	if minutes < minMinutes {
		return minMinutes
	}
	return minutes
}
