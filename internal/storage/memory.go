// Package storage provides calculator session persistence.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Compile-time interface check.
var _ domain.SessionStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory session store. Safe for concurrent access.
// It stores copies, so callers may keep mutating what they saved.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	log      *logger.Logger
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
		log:      log,
	}
}

// Save persists a session. Overwrites if it already exists.
func (s *MemoryStore) Save(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving session %s (state=%s, display=%q)", session.ID, session.State, session.Display)
	s.sessions[session.ID] = *session
	return nil
}

// Load retrieves a session by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		s.log.Debug("session not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return &sess, nil
}

// Delete removes a session by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sessions, id)
	s.log.Debug("deleted session %s", id)
	return nil
}

// List returns every stored session, oldest update first.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sess := sess
		out = append(out, &sess)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	s.log.Debug("listing sessions, count=%d", len(out))
	return out, nil
}
