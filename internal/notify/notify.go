// Package notify plays the phase-transition chime.
//
// Audio is strictly fire-and-forget: a failed or missing audio device
// disables the notifier and the timer carries on visual-only. Nothing in
// this package ever blocks the render loop.
package notify

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	toneFrequency = 800
	toneDuration  = 200 * time.Millisecond
	toneCount     = 3
	gapDuration   = 150 * time.Millisecond

	// toneGain scales the unit sine down to a 0.2 amplitude.
	toneGain = -0.8
)

// Notifier queues transition chimes for the speaker.
type Notifier struct {
	requests chan struct{}
	enabled  bool
}

// New initializes the speaker and starts the playback goroutine. Audio
// failure is not an error: the message goes to stderr once and the returned
// notifier stays silent. The goroutine runs for the life of the process.
func New() *Notifier {
	n := &Notifier{requests: make(chan struct{}, 4)}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logErrf("audio disabled: %v\n", err)
		return n
	}
	n.enabled = true
	go n.run()
	return n
}

// Chime requests one notification pattern. It never blocks: when the queue
// is full the request is dropped.
func (n *Notifier) Chime() {
	if !n.enabled {
		return
	}
	select {
	case n.requests <- struct{}{}:
	default:
	}
}

func (n *Notifier) run() {
	for range n.requests {
		pattern, err := chime(sampleRate)
		if err != nil {
			continue
		}
		speaker.Play(pattern)
	}
}

// chime builds the notification pattern: three short tones separated by
// brief silences.
func chime(sr beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, 2*toneCount-1)
	for i := 0; i < toneCount; i++ {
		tone, err := generators.SineTone(sr, toneFrequency)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(toneDuration), &effects.Gain{
			Streamer: tone,
			Gain:     toneGain,
		}))
		if i < toneCount-1 {
			parts = append(parts, beep.Silence(sr.N(gapDuration)))
		}
	}
	return beep.Seq(parts...), nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
