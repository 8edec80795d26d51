package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottocalc/internal/config"
	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/input"
)

// ── Geometry ─────────────────────────────────────────────────────

const (
	cellWidth  = 7 // columns per keypad button
	cellHeight = 3 // rows per keypad button (one line of padding above and below)
	cellGap    = 1 // columns between buttons
)

// ── Styles ───────────────────────────────────────────────────────

// BannerStyle is the muted slate used for the startup banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#94a3b8"))

var (
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	pressedStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

// Styles holds the themed styles for the display panel and keypad.
type Styles struct {
	Panel    lipgloss.Style
	Text     lipgloss.Style
	Error    lipgloss.Style
	Digit    lipgloss.Style
	Operator lipgloss.Style
	Action   lipgloss.Style
	Equals   lipgloss.Style
}

// NewStyles builds styles from a theme.
func NewStyles(t config.Theme) Styles {
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f4f4f5")).
		Align(lipgloss.Center).
		Padding((cellHeight-1)/2, 0)

	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Align(lipgloss.Right).
			Padding(0, 1),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Display)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),
		Digit:    button.Background(lipgloss.Color(t.Digit)),
		Operator: button.Background(lipgloss.Color(t.Operator)),
		Action:   button.Background(lipgloss.Color(t.Action)),
		Equals:   button.Background(lipgloss.Color(t.Equals)),
	}
}

// buttonStyle picks the style for a keypad button.
func (s Styles) buttonStyle(b input.Button) lipgloss.Style {
	switch b.Command().Type {
	case domain.CommandCalculate:
		return s.Equals
	case domain.CommandClear, domain.CommandDelete, domain.CommandPercent:
		return s.Action
	case domain.CommandOperator, domain.CommandParen:
		return s.Operator
	default:
		return s.Digit
	}
}

// displayText styles the panel text, highlighting the error display.
func (s Styles) displayText(text string) string {
	if text == domain.DisplayError {
		return s.Error.Render(text)
	}
	return s.Text.Render(text)
}
