package engine

import (
	"crypto/rand"
	"fmt"
	"sync/atomic"
)

var idFallback atomic.Uint64

// generateID creates a short random hex ID for sessions.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("calc-%d", idFallback.Add(1))
	}
	return fmt.Sprintf("%x", b)
}
