package sound

import (
	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Compile-time interface check.
var _ domain.Feedback = (*NoOp)(nil)

// NoOp is the feedback used when sound is disabled.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a silent feedback.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Click does nothing.
func (n *NoOp) Click() {}

// Fail does nothing.
func (n *NoOp) Fail() { n.log.Debug("sound off: skipping fail cue") }

// New returns an oto-backed player when enabled is true and the audio
// device opens, and a NoOp otherwise.
func New(enabled bool, log *logger.Logger) domain.Feedback {
	if !enabled {
		return NewNoOp(log)
	}
	p, err := NewPlayer(log)
	if err != nil {
		log.Warn("audio player init failed, sound disabled: %v", err)
		return NewNoOp(log)
	}
	return p
}
