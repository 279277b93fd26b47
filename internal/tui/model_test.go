package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"tomatui/internal/timer"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingChimer struct {
	calls int
}

func (c *recordingChimer) Chime() { c.calls++ }

func newTestModel(focusMinutes, breakMinutes int) (*Model, *fakeClock, *recordingChimer) {
	clock := newFakeClock()
	chimer := &recordingChimer{}
	m := &Model{
		engine:   timer.NewWithClock(focusMinutes, breakMinutes, clock.Now),
		chimer:   chimer,
		keys:     defaultKeyMap(),
		help:     help.New(),
		lastTick: clock.Now(),
		now:      clock.Now,
	}
	return m, clock, chimer
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFrameGateSkipsSubSecondFrames(t *testing.T) {
	m, clock, _ := newTestModel(25, 5)

	for i := 0; i < 9; i++ {
		clock.Advance(100 * time.Millisecond)
		m.Update(frameMsg(clock.Now()))
	}
	if got := m.engine.Snapshot().FocusRemaining; got != 25*60 {
		t.Fatalf("expected no accounting below one second, remaining %d, got %d", 25*60, got)
	}

	clock.Advance(100 * time.Millisecond)
	m.Update(frameMsg(clock.Now()))
	if got := m.engine.Snapshot().FocusRemaining; got != 25*60-1 {
		t.Errorf("expected one second charged at the gate, remaining %d, got %d", 25*60-1, got)
	}
}

func TestFrameSchedulesNextFrame(t *testing.T) {
	m, clock, _ := newTestModel(25, 5)

	_, cmd := m.Update(frameMsg(clock.Now()))
	if cmd == nil {
		t.Fatal("expected a follow-up frame command")
	}
}

func TestTransitionDispatchesChime(t *testing.T) {
	m, clock, chimer := newTestModel(1, 5)

	clock.Advance(61 * time.Second)
	m.Update(frameMsg(clock.Now()))

	if chimer.calls != 1 {
		t.Fatalf("expected exactly one chime, got %d", chimer.calls)
	}
	if got := m.engine.Phase(); got != timer.PhaseBreak {
		t.Errorf("expected phase %v after the transition, got %v", timer.PhaseBreak, got)
	}
}

func TestFramesSkipAccountingWhilePaused(t *testing.T) {
	m, clock, chimer := newTestModel(25, 5)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	clock.Advance(5 * time.Second)
	m.Update(frameMsg(clock.Now()))

	snap := m.engine.Snapshot()
	if snap.Phase != timer.PhasePaused {
		t.Fatalf("expected phase %v, got %v", timer.PhasePaused, snap.Phase)
	}
	if snap.FocusRemaining != 25*60 {
		t.Errorf("expected paused countdown untouched at %d, got %d", 25*60, snap.FocusRemaining)
	}
	if chimer.calls != 0 {
		t.Errorf("expected no chime while paused, got %d", chimer.calls)
	}
}

func TestKeyBindingsDriveEngine(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		check func(t *testing.T, m *Model)
	}{
		{
			name: "space pauses",
			msg:  tea.KeyMsg{Type: tea.KeySpace},
			check: func(t *testing.T, m *Model) {
				if got := m.engine.Phase(); got != timer.PhasePaused {
					t.Errorf("expected phase %v, got %v", timer.PhasePaused, got)
				}
			},
		},
		{
			name: "f adds a focus minute",
			msg:  keyPress('f'),
			check: func(t *testing.T, m *Model) {
				if got := m.engine.FocusMinutes(); got != 26 {
					t.Errorf("expected 26 focus minutes, got %d", got)
				}
			},
		},
		{
			name: "F removes a focus minute",
			msg:  keyPress('F'),
			check: func(t *testing.T, m *Model) {
				if got := m.engine.FocusMinutes(); got != 24 {
					t.Errorf("expected 24 focus minutes, got %d", got)
				}
			},
		},
		{
			name: "b adds a break minute",
			msg:  keyPress('b'),
			check: func(t *testing.T, m *Model) {
				if got := m.engine.BreakMinutes(); got != 6 {
					t.Errorf("expected 6 break minutes, got %d", got)
				}
			},
		},
		{
			name: "B removes a break minute",
			msg:  keyPress('B'),
			check: func(t *testing.T, m *Model) {
				if got := m.engine.BreakMinutes(); got != 4 {
					t.Errorf("expected 4 break minutes, got %d", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel(25, 5)
			m.Update(tt.msg)
			tt.check(t, m)
		})
	}
}

func TestResetKeyRestoresCountdowns(t *testing.T) {
	m, clock, _ := newTestModel(25, 5)

	clock.Advance(90 * time.Second)
	m.Update(frameMsg(clock.Now()))
	m.Update(keyPress('r'))

	snap := m.engine.Snapshot()
	if snap.FocusRemaining != 25*60 || snap.BreakRemaining != 5*60 {
		t.Errorf("expected full countdowns after reset, got focus %d break %d", snap.FocusRemaining, snap.BreakRemaining)
	}
	if snap.Phase != timer.PhaseFocus {
		t.Errorf("expected phase %v after reset, got %v", timer.PhaseFocus, snap.Phase)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyPress('q'), {Type: tea.KeyCtrlC}} {
		m, _, _ := newTestModel(25, 5)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected a quit command for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected tea.QuitMsg for %q, got %T", msg.String(), cmd())
		}
		if out := m.View(); out != "" {
			t.Errorf("expected an empty view after quit, got %q", out)
		}
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	m, _, _ := newTestModel(25, 5)

	before := m.engine.Snapshot()
	_, cmd := m.Update(keyPress('x'))
	if cmd != nil {
		t.Error("expected no command for an unbound key")
	}
	if after := m.engine.Snapshot(); after != before {
		t.Errorf("expected no engine change, got %+v then %+v", before, after)
	}
}

func TestPauseHelpLabelFollowsState(t *testing.T) {
	m, _, _ := newTestModel(25, 5)

	if got := m.keys.TogglePause.Help().Desc; got != "pause" {
		t.Fatalf("expected initial pause label, got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if got := m.keys.TogglePause.Help().Desc; got != "resume" {
		t.Errorf("expected resume label while paused, got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if got := m.keys.TogglePause.Help().Desc; got != "pause" {
		t.Errorf("expected pause label after resuming, got %q", got)
	}
}

func TestWindowSizeIsTracked(t *testing.T) {
	m, _, _ := newTestModel(25, 5)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("expected size 120x40, got %dx%d", m.width, m.height)
	}
}
