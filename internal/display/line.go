package display

import (
	"fmt"
	"io"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

// Compile-time interface check.
var _ domain.Renderer = (*LineRenderer)(nil)

// LineRenderer prints each display frame on its own line. It backs the
// non-interactive commands.
type LineRenderer struct {
	w      io.Writer
	styles Styles
	prefix string
}

// NewLineRenderer creates a renderer writing to w. prefix, when set, is
// printed (dimmed) before every frame.
func NewLineRenderer(w io.Writer, styles Styles, prefix string) *LineRenderer {
	return &LineRenderer{w: w, styles: styles, prefix: prefix}
}

// Render prints text. Write errors are dropped; a renderer has no one to
// report them to.
func (r *LineRenderer) Render(text string) {
	if r.prefix != "" {
		fmt.Fprint(r.w, hintStyle.Render(r.prefix)+" ")
	}
	fmt.Fprintln(r.w, r.styles.displayText(text))
}
