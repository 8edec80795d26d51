package domain

import "context"

// Renderer is the display surface. Render is called synchronously after
// every buffer mutation with the text to show.
type Renderer interface {
	Render(text string)
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func(text string)

// Render calls f(text).
func (f RenderFunc) Render(text string) { f(text) }

// SessionStore keeps calculator snapshots. Implementations must be safe
// for concurrent use.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Session, error)
}

// KeyParser converts a key name (as reported by the terminal) into a
// command. ok is false for keys the calculator does not handle.
type KeyParser interface {
	Parse(key string) (cmd Command, ok bool)
}

// Feedback plays a cue for a handled command. Implementations must not
// block the caller.
type Feedback interface {
	Click()
	Fail()
}
