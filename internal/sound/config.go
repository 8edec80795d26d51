// Package sound plays short audio cues for calculator key presses.
package sound

import "time"

// Audio parameters for the synthesized cues.
const (
	SampleRate   = 44100
	ChannelCount = 1
	BitDepth     = 16
)

// Cue describes one synthesized tone.
type Cue struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Volume    float64 // 0..1
}

// Default cues: a short high tick for accepted commands, a lower longer
// tone when a calculation fails.
var (
	ClickCue = Cue{Frequency: 1800, Duration: 18 * time.Millisecond, Volume: 0.25}
	FailCue  = Cue{Frequency: 220, Duration: 160 * time.Millisecond, Volume: 0.35}
)
