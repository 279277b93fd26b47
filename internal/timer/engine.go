// Package timer implements the focus/break countdown state machine.
//
// An Engine is owned by a single goroutine: commands, accounting ticks and
// snapshot reads all happen on the render loop. It keeps time in whole
// seconds and reads the clock only through its injected now func, never
// through calendar time.
package timer

import "time"

// Phase identifies what the timer is currently counting down.
type Phase int

const (
	// PhaseFocus is the work interval.
	PhaseFocus Phase = iota
	// PhaseBreak is the rest interval following a completed focus interval.
	PhaseBreak
	// PhasePaused suspends the countdown without consuming time.
	PhasePaused
)

// String returns a display name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFocus:
		return "focus"
	case PhaseBreak:
		return "break"
	case PhasePaused:
		return "paused"
	}
	return "unknown"
}

// flashWindow is how long the transition flash stays active.
const flashWindow = 2 * time.Second

// Engine holds the countdown state for one focus/break timer.
//
// Durations and remaining times are whole seconds; remaining times never
// exceed their configured durations and never go negative. The engine
// accepts any configured duration, including zero: the one-minute floor is
// command-layer policy, not engine policy.
type Engine struct {
	focusRemaining int
	breakRemaining int
	focusDuration  int
	breakDuration  int
	phase          Phase
	lastUpdate     time.Time
	totalCycles    int
	flashActive    bool
	flashStarted   time.Time
	now            func() time.Time
}

// Snapshot is a consistent copy of the engine state for rendering.
type Snapshot struct {
	Phase          Phase
	FocusRemaining int
	BreakRemaining int
	FocusDuration  int
	BreakDuration  int
	TotalCycles    int
	FlashActive    bool
}

// New creates an engine counting down a fresh focus phase.
func New(focusMinutes, breakMinutes int) *Engine {
	return NewWithClock(focusMinutes, breakMinutes, time.Now)
}

// NewWithClock creates an engine that reads time from now. The clock must
// never run backwards; time.Now qualifies through its monotonic reading.
func NewWithClock(focusMinutes, breakMinutes int, now func() time.Time) *Engine {
	focusDuration := focusMinutes * 60
	breakDuration := breakMinutes * 60
	return &Engine{
		focusRemaining: focusDuration,
		breakRemaining: breakDuration,
		focusDuration:  focusDuration,
		breakDuration:  breakDuration,
		phase:          PhaseFocus,
		lastUpdate:     now(),
		now:            now,
	}
}

// Tick performs one accounting step: the whole seconds elapsed since the
// previous step are charged against the active phase. It reports whether a
// phase transition happened, which is the caller's cue to chime.
//
// Sub-second remainders are dropped on every step, never carried forward,
// so callers should tick at a cadence of one second or slower to keep the
// resulting drift negligible. While paused only the elapsed-time baseline
// moves. The transition flash is cleared here once its window has passed,
// whether or not this step transitioned.
func (e *Engine) Tick() bool {
	now := e.now()
	elapsed := int(now.Sub(e.lastUpdate) / time.Second)
	e.lastUpdate = now

	transitioned := false

	switch e.phase {
	case PhaseFocus:
		if e.focusRemaining > elapsed {
			e.focusRemaining -= elapsed
		} else {
			e.focusRemaining = 0
			e.phase = PhaseBreak
			e.totalCycles++
			transitioned = true
			e.flashActive = true
			e.flashStarted = now
		}
	case PhaseBreak:
		if e.breakRemaining > elapsed {
			e.breakRemaining -= elapsed
		} else {
			e.breakRemaining = e.breakDuration
			e.focusRemaining = e.focusDuration
			e.phase = PhaseFocus
			transitioned = true
			e.flashActive = true
			e.flashStarted = now
		}
	case PhasePaused:
	}

	if e.flashActive && now.Sub(e.flashStarted) > flashWindow {
		e.flashActive = false
	}

	return transitioned
}

// TogglePause suspends a running phase or resumes a paused one. Resuming
// always returns to the focus phase, even when the pause interrupted a
// break. The elapsed-time baseline is reset on every toggle so the paused
// interval is never charged against remaining time.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhaseFocus, PhaseBreak:
		e.phase = PhasePaused
	case PhasePaused:
		e.phase = PhaseFocus
	}
	e.lastUpdate = e.now()
}

// Reset restores both countdowns to their configured durations and returns
// to the focus phase. The cycle count is kept.
func (e *Engine) Reset() {
	e.focusRemaining = e.focusDuration
	e.breakRemaining = e.breakDuration
	e.phase = PhaseFocus
	e.lastUpdate = e.now()
	e.flashActive = false
}

// SetFocusMinutes rewrites the configured focus duration. While the focus
// phase is active its countdown restarts at the new duration; otherwise the
// running countdowns are untouched and the change applies at the next reset
// of the focus countdown.
func (e *Engine) SetFocusMinutes(minutes int) {
	e.focusDuration = minutes * 60
	if e.phase == PhaseFocus {
		e.focusRemaining = e.focusDuration
	}
}

// SetBreakMinutes rewrites the configured break duration. While the break
// phase is active its countdown restarts at the new duration; otherwise the
// running countdowns are untouched and the change applies at the next reset
// of the break countdown.
func (e *Engine) SetBreakMinutes(minutes int) {
	e.breakDuration = minutes * 60
	if e.phase == PhaseBreak {
		e.breakRemaining = e.breakDuration
	}
}

// FocusMinutes returns the configured focus duration in whole minutes.
func (e *Engine) FocusMinutes() int { return e.focusDuration / 60 }

// BreakMinutes returns the configured break duration in whole minutes.
func (e *Engine) BreakMinutes() int { return e.breakDuration / 60 }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Snapshot returns a copy of the state the renderer needs.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:          e.phase,
		FocusRemaining: e.focusRemaining,
		BreakRemaining: e.breakRemaining,
		FocusDuration:  e.focusDuration,
		BreakDuration:  e.breakDuration,
		TotalCycles:    e.totalCycles,
		FlashActive:    e.flashActive,
	}
}
