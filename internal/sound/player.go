package sound

import (
	"bytes"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Compile-time interface check.
var _ domain.Feedback = (*Player)(nil)

// Player plays calculator cues through the system audio device via oto.
// A new cue cuts off the one still playing.
type Player struct {
	ctx   *oto.Context
	log   *logger.Logger
	click []byte
	fail  []byte

	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
}

// NewPlayer initializes the system audio context and pre-renders the
// cues. Returns an error if the audio device is unavailable.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{
		ctx:   ctx,
		log:   log,
		click: Synthesize(ClickCue),
		fail:  Synthesize(FailCue),
	}, nil
}

// Click plays the key press cue. It does not block.
func (p *Player) Click() { p.play(p.click) }

// Fail plays the error cue. It does not block.
func (p *Player) Fail() { p.play(p.fail) }

func (p *Player) play(pcm []byte) {
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))

	p.mu.Lock()
	prev := p.active
	p.active = player
	p.mu.Unlock()

	if prev != nil {
		prev.Pause()
		if err := prev.Close(); err != nil {
			p.log.Debug("audio player: closing previous cue: %v", err)
		}
	}
	player.Play()
}

// Stop interrupts the cue that is playing, if any. Safe to call
// concurrently and when nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.active = nil
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		_ = active.Close()
		p.log.Debug("audio player: stopped")
	}
}
