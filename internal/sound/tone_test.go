package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocalc/internal/logger"
)

func TestSynthesizeLength(t *testing.T) {
	pcm := Synthesize(Cue{Frequency: 440, Duration: 100 * time.Millisecond, Volume: 0.5})
	assert.Len(t, pcm, SampleRate/10*2)
}

func TestSynthesizeFadesAndClamps(t *testing.T) {
	pcm := Synthesize(Cue{Frequency: 1000, Duration: 50 * time.Millisecond, Volume: 3})
	require.NotEmpty(t, pcm)

	sample := func(i int) int16 { return int16(binary.LittleEndian.Uint16(pcm[i*2:])) }
	n := len(pcm) / 2

	assert.Zero(t, sample(0), "first sample should be silent")
	assert.Zero(t, sample(n-1), "last sample should be silent")
	for i := 0; i < n; i++ {
		s := sample(i)
		assert.True(t, s <= 32767 && s >= -32767, "sample %d out of range: %d", i, s)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	assert.Nil(t, Synthesize(Cue{Frequency: 440}))
}

func TestNewDisabledIsNoOp(t *testing.T) {
	fb := New(false, logger.Discard())
	fb.Click()
	fb.Fail()
	_, ok := fb.(*NoOp)
	assert.True(t, ok)
}
