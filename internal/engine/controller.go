package engine

import (
	"time"
	"unicode/utf8"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/expr"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// DefaultMaxLength is the longest buffer, in characters, a controller
// accepts.
const DefaultMaxLength = 30

// Option configures a controller.
type Option func(*Controller)

// WithMaxLength caps the buffer at n characters. Values below one are
// ignored.
func WithMaxLength(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// WithPrecision sets how many significant digits a result keeps.
// Values below one are ignored.
func WithPrecision(p int) Option {
	return func(c *Controller) {
		if p > 0 {
			c.precision = p
		}
	}
}

// WithFeedback plays a cue for every command passed to Apply.
func WithFeedback(f domain.Feedback) Option {
	return func(c *Controller) {
		c.feedback = f
	}
}

// Controller owns one expression buffer and the rules for changing it.
// It is not safe for concurrent use: every call runs to completion on
// the caller's goroutine and re-renders the display before returning.
type Controller struct {
	buffer    string
	display   string
	state     domain.State
	updatedAt time.Time

	maxLength int
	precision int
	renderer  domain.Renderer
	feedback  domain.Feedback
	log       *logger.Logger
}

// NewController creates a cleared controller and renders its initial
// display. r may be nil when nothing needs to watch the display.
func NewController(r domain.Renderer, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		maxLength: DefaultMaxLength,
		precision: expr.DefaultPrecision,
		renderer:  r,
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Clear()
	return c
}

// Buffer returns the expression being built.
func (c *Controller) Buffer() string { return c.buffer }

// Display returns the text last rendered.
func (c *Controller) Display() string { return c.display }

// State returns the state machine position.
func (c *Controller) State() domain.State { return c.state }

// Snapshot copies the controller's observable state into a session.
func (c *Controller) Snapshot() domain.Session {
	return domain.Session{
		Buffer:    c.buffer,
		Display:   c.display,
		State:     c.state,
		UpdatedAt: c.updatedAt,
	}
}

// Apply runs the operation a command names. Unknown commands are ignored.
func (c *Controller) Apply(cmd domain.Command) {
	c.log.Debug("command %s %q on %q", cmd.Type, cmd.Token, c.buffer)

	var err error
	switch cmd.Type {
	case domain.CommandDigit, domain.CommandOperator, domain.CommandDot, domain.CommandParen:
		c.Append(cmd.Token)
	case domain.CommandClear:
		c.Clear()
	case domain.CommandDelete:
		c.Delete()
	case domain.CommandPercent:
		c.Percent()
	case domain.CommandCalculate:
		err = c.calculate()
	default:
		return
	}

	if c.feedback == nil {
		return
	}
	if err != nil {
		c.feedback.Fail()
	} else {
		c.feedback.Click()
	}
}

// Append adds token to the end of the buffer. It does nothing once the
// buffer is full. A lone "0" is never followed by another "0", and is
// replaced rather than extended by any other digit.
func (c *Controller) Append(token string) {
	if utf8.RuneCountInString(c.buffer)+utf8.RuneCountInString(token) > c.maxLength {
		return
	}
	if c.buffer == "0" {
		if token == "0" {
			return
		}
		if containsDigit(token) {
			c.buffer = token
			c.refresh()
			return
		}
	}
	c.buffer += token
	c.refresh()
}

// Delete removes the last character of the buffer.
func (c *Controller) Delete() {
	if c.buffer != "" {
		_, size := utf8.DecodeLastRuneInString(c.buffer)
		c.buffer = c.buffer[:len(c.buffer)-size]
	}
	c.refresh()
}

// Clear empties the buffer.
func (c *Controller) Clear() {
	c.buffer = ""
	c.refresh()
}

// Percent divides the number ending the buffer by 100. Without a
// trailing number nothing changes, the display included.
func (c *Controller) Percent() {
	out, ok := expr.Percent(c.buffer)
	if !ok {
		return
	}
	c.buffer = out
	c.refresh()
}

// Calculate evaluates the buffer and replaces it with the result. On any
// failure the display shows "Error" and the buffer is emptied.
func (c *Controller) Calculate() {
	_ = c.calculate()
}

func (c *Controller) calculate() error {
	if c.buffer == "" {
		return nil
	}

	v, err := expr.Evaluate(expr.Normalize(c.buffer))
	if err != nil {
		c.log.Debug("calculate %q: %v", c.buffer, err)
		c.fail()
		return err
	}

	c.buffer = expr.FormatResult(v, c.precision)
	c.refresh()
	return nil
}

func (c *Controller) refresh() {
	c.state = domain.StateIdle
	if c.buffer == "" {
		c.show(domain.DisplayEmpty)
	} else {
		c.show(c.buffer)
	}
}

func (c *Controller) fail() {
	c.buffer = ""
	c.state = domain.StateError
	c.show(domain.DisplayError)
}

func (c *Controller) show(text string) {
	c.display = text
	c.updatedAt = time.Now()
	if c.renderer != nil {
		c.renderer.Render(text)
	}
}

func containsDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
