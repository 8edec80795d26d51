package sound

import (
	"encoding/binary"
	"math"
)

// fadeSamples is the length of the linear fade at each end of a cue,
// which keeps the speaker from popping.
const fadeSamples = 64

// Synthesize renders c as signed 16-bit little-endian mono PCM at
// SampleRate.
func Synthesize(c Cue) []byte {
	n := int(c.Duration.Seconds() * SampleRate)
	if n <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, c.Volume))

	pcm := make([]byte, n*2)
	for i := 0; i < n; i++ {
		amp := vol
		if i < fadeSamples {
			amp *= float64(i) / fadeSamples
		}
		if tail := n - 1 - i; tail < fadeSamples {
			amp *= float64(tail) / fadeSamples
		}
		s := amp * math.Sin(2*math.Pi*c.Frequency*float64(i)/SampleRate)
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(s*math.MaxInt16)))
	}
	return pcm
}
