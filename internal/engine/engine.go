// Package engine implements the calculator's expression-buffer state
// machine and a registry of independent calculator sessions.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/kr/pretty"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Engine manages calculator sessions. Each session owns one Controller;
// commands for the same session are serialized, commands for different
// sessions may run in parallel. Snapshots are written to the store after
// every command.
type Engine struct {
	store domain.SessionStore
	log   *logger.Logger
	opts  []Option

	mu   sync.Mutex
	live map[string]*slot
}

type slot struct {
	mu   sync.Mutex
	ctrl *Controller
}

// New creates an engine. opts are applied to every controller it opens.
func New(store domain.SessionStore, log *logger.Logger, opts ...Option) *Engine {
	return &Engine{
		store: store,
		log:   log,
		opts:  opts,
		live:  make(map[string]*slot),
	}
}

// Open starts a new cleared session rendering to r (which may be nil).
// Per-session opts are applied after the engine-wide ones.
func (e *Engine) Open(ctx context.Context, r domain.Renderer, opts ...Option) (*domain.Session, error) {
	all := append(append([]Option{}, e.opts...), opts...)
	ctrl := NewController(r, e.log, all...)

	id := generateID()
	snap := ctrl.Snapshot()
	snap.ID = id
	if err := e.store.Save(ctx, &snap); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	e.mu.Lock()
	e.live[id] = &slot{ctrl: ctrl}
	e.mu.Unlock()

	e.log.Debug("opened session %s", id)
	return &snap, nil
}

// Dispatch applies cmd to the session's controller and returns the
// resulting snapshot.
func (e *Engine) Dispatch(ctx context.Context, sessionID string, cmd domain.Command) (*domain.Session, error) {
	s, err := e.slot(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.ctrl.Apply(cmd)
	snap := s.ctrl.Snapshot()
	s.mu.Unlock()

	snap.ID = sessionID
	if err := e.store.Save(ctx, &snap); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	if e.log.Enabled(logger.LevelVerbose) {
		e.log.Debug("session %s after %s: %s", sessionID, cmd.Type, pretty.Sprint(snap))
	}
	return &snap, nil
}

// Snapshot returns the last stored state of a session.
func (e *Engine) Snapshot(ctx context.Context, sessionID string) (*domain.Session, error) {
	snap, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return snap, nil
}

// Sessions lists every open session.
func (e *Engine) Sessions(ctx context.Context) ([]*domain.Session, error) {
	return e.store.List(ctx)
}

// Close forgets a session.
func (e *Engine) Close(ctx context.Context, sessionID string) error {
	e.mu.Lock()
	_, ok := e.live[sessionID]
	delete(e.live, sessionID)
	e.mu.Unlock()

	if !ok {
		return domain.ErrNotFound
	}
	if err := e.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	e.log.Debug("closed session %s", sessionID)
	return nil
}

func (e *Engine) slot(id string) (*slot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.live[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
