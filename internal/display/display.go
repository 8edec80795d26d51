// Package display provides the terminal calculator UI using Bubble Tea.
//
// The [UI] type opens one engine session, renders its display panel
// above a clickable keypad, and routes keyboard keys (through the
// domain key parser) and left mouse clicks (through the keypad layout)
// to the session as commands.
package display

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/engine"
	"github.com/hammamikhairi/ottocalc/internal/input"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// ── UI ───────────────────────────────────────────────────────────

// UI runs the calculator in the terminal.
type UI struct {
	engine *engine.Engine
	keys   domain.KeyParser
	pad    input.Keypad
	styles Styles
	log    *logger.Logger
}

// NewUI creates the display. Call Run to start.
func NewUI(eng *engine.Engine, keys domain.KeyParser, pad input.Keypad, styles Styles, log *logger.Logger) *UI {
	return &UI{
		engine: eng,
		keys:   keys,
		pad:    pad,
		styles: styles,
		log:    log,
	}
}

// Run opens a session and starts the Bubble Tea event loop. Blocks until
// the user quits or ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	scr := &screen{}
	sess, err := u.engine.Open(ctx, scr)
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	defer u.engine.Close(context.Background(), sess.ID)

	m := newModel(ctx, u.engine, sess.ID, scr, u.keys, u.pad, u.styles, u.log)
	m.width = termWidth()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancelled from outside; not a display failure.
		return nil
	}
	return err
}

// screen is the session's display surface. The controller writes to it
// synchronously from inside Update, so View always sees the latest text.
type screen struct {
	text   string
	frames int
}

func (s *screen) Render(text string) {
	s.text = text
	s.frames++
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	ctx       context.Context
	engine    *engine.Engine
	sessionID string
	screen    *screen
	keys      domain.KeyParser
	pad       input.Keypad
	styles    Styles
	log       *logger.Logger

	bindings keyMap
	help     help.Model
	pressed  string // label of the last clicked button
	width    int
}

func newModel(ctx context.Context, eng *engine.Engine, sessionID string, scr *screen,
	keys domain.KeyParser, pad input.Keypad, styles Styles, log *logger.Logger) model {
	h := help.New()
	h.Styles.ShortKey = hintStyle
	h.Styles.ShortDesc = hintStyle
	return model{
		ctx:       ctx,
		engine:    eng,
		sessionID: sessionID,
		screen:    scr,
		keys:      keys,
		pad:       pad,
		styles:    styles,
		log:       log,
		bindings:  defaultKeyMap(),
		help:      h,
	}
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle("ottocalc")
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.bindings.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.bindings.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.pressed = ""
		for _, name := range keyNames(msg) {
			if cmd, ok := m.keys.Parse(name); ok {
				m.dispatch(cmd)
			}
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if b, ok := m.buttonAt(msg.X, msg.Y); ok {
			m.pressed = b.Label
			m.dispatch(b.Command())
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *model) dispatch(cmd domain.Command) {
	if _, err := m.engine.Dispatch(m.ctx, m.sessionID, cmd); err != nil {
		m.log.Error("dispatch %s: %v", cmd.Type, err)
	}
}

// keyNames turns a key message into the key names the parser expects.
// Pasted text arrives as one message and is split into single runes.
func keyNames(msg tea.KeyMsg) []string {
	if msg.Type == tea.KeyRunes && !msg.Alt {
		names := make([]string, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			names = append(names, string(r))
		}
		return names
	}
	return []string{msg.String()}
}

// ── Layout ───────────────────────────────────────────────────────

func (m model) padWidth() int {
	cols := m.pad.Columns()
	return cols*cellWidth + (cols-1)*cellGap
}

// left is the column where the calculator starts; it is centred in the
// terminal.
func (m model) left() int {
	if w := m.padWidth(); m.width > w {
		return (m.width - w) / 2
	}
	return 0
}

func (m model) header() string {
	w := m.padWidth()
	panel := m.styles.Panel.
		Width(w - 2). // border
		Render(m.styles.displayText(m.screen.text))
	return RenderBanner(w) + "\n\n" + panel + "\n"
}

func (m model) keypad() string {
	rows := make([]string, 0, len(m.pad))
	for _, row := range m.pad {
		cells := make([]string, 0, 2*len(row))
		for i, b := range row {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", cellGap))
			}
			span := b.Width()
			label := b.Label
			if label == m.pressed {
				label = pressedStyle.Render(label)
			}
			cells = append(cells, m.styles.buttonStyle(b).
				Width(span*cellWidth+(span-1)*cellGap).
				Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// buttonAt maps a terminal cell to the keypad button drawn there.
func (m model) buttonAt(x, y int) (input.Button, bool) {
	x -= m.left()
	y -= lipgloss.Height(m.header())
	if x < 0 || y < 0 {
		return input.Button{}, false
	}
	pitch := cellWidth + cellGap
	col := x / pitch
	if x%pitch >= cellWidth {
		// The gap between two buttons belongs to a button only when a
		// wide button spans it.
		b, ok := m.pad.At(y/cellHeight, col)
		next, nok := m.pad.At(y/cellHeight, col+1)
		if !ok || !nok || b.Label != next.Label {
			return input.Button{}, false
		}
	}
	return m.pad.At(y/cellHeight, col)
}

func (m model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.keypad(),
		"",
		m.help.View(m.bindings),
	)
	return lipgloss.NewStyle().MarginLeft(m.left()).Render(body)
}
