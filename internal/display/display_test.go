package display

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocalc/internal/config"
	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/engine"
	"github.com/hammamikhairi/ottocalc/internal/input"
	"github.com/hammamikhairi/ottocalc/internal/logger"
	"github.com/hammamikhairi/ottocalc/internal/storage"
)

func setupModel(t *testing.T) model {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()
	eng := engine.New(storage.NewMemoryStore(log), log)

	scr := &screen{}
	sess, err := eng.Open(ctx, scr)
	require.NoError(t, err)

	m := newModel(ctx, eng, sess.ID, scr, input.NewKeyParser(log), input.DefaultKeypad,
		NewStyles(config.Default().Theme), log)
	m.width = 80
	return m
}

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// clickAt returns a left click on the centre of the button labelled label.
func clickAt(t *testing.T, m model, label string) tea.MouseMsg {
	t.Helper()
	top := lipgloss.Height(m.header())
	for r, row := range m.pad {
		col := 0
		for _, b := range row {
			if b.Label == label {
				return tea.MouseMsg{
					X:      m.left() + col*(cellWidth+cellGap) + cellWidth/2,
					Y:      top + r*cellHeight + cellHeight/2,
					Action: tea.MouseActionPress,
					Button: tea.MouseButtonLeft,
				}
			}
			col += b.Width()
		}
	}
	t.Fatalf("no button %q", label)
	return tea.MouseMsg{}
}

func TestKeyboardCalculates(t *testing.T) {
	m := setupModel(t)
	assert.Equal(t, "0", m.screen.text)

	m = press(t, m, runes("2"), runes("+"), runes("3"), runes("*"), runes("4"))
	assert.Equal(t, "2+3*4", m.screen.text)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "14", m.screen.text)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "1", m.screen.text)

	m = press(t, m, runes("C"))
	assert.Equal(t, "0", m.screen.text)
}

func TestPastedRunesAreSplit(t *testing.T) {
	m := setupModel(t)
	m = press(t, m, runes("10/3"), runes("="))
	assert.Equal(t, "3.33333333333", m.screen.text)
}

func TestUnknownKeysIgnored(t *testing.T) {
	m := setupModel(t)
	m = press(t, m, runes("7"), runes("x"), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "7", m.screen.text)
}

func TestQuitAndHelp(t *testing.T) {
	m := setupModel(t)

	next, cmd := m.Update(runes("?"))
	m = next.(model)
	assert.True(t, m.help.ShowAll)
	assert.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMouseClicksButtons(t *testing.T) {
	m := setupModel(t)

	for _, label := range []string{"9", "×", "(", "1", "−", "4", ")"} {
		m = press(t, m, clickAt(t, m, label))
	}
	assert.Equal(t, "9×(1−4)", m.screen.text)
	assert.Equal(t, ")", m.pressed)

	m = press(t, m, clickAt(t, m, "="))
	assert.Equal(t, "-27", m.screen.text)

	m = press(t, m, clickAt(t, m, "C"), clickAt(t, m, "5"), clickAt(t, m, "0"), clickAt(t, m, "%"))
	assert.Equal(t, "0.5", m.screen.text)

	m = press(t, m, clickAt(t, m, "⌫"))
	assert.Equal(t, "0.", m.screen.text)
}

func TestMouseOutsideKeypad(t *testing.T) {
	m := setupModel(t)
	frames := m.screen.frames

	m = press(t, m,
		tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: m.left() + cellWidth, Y: lipgloss.Height(m.header()) + 1,
			Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, // gap between C and ⌫
	)
	assert.Equal(t, frames, m.screen.frames)

	// Right clicks and releases do nothing.
	c := clickAt(t, m, "7")
	c.Button = tea.MouseButtonRight
	m = press(t, m, c)
	c = clickAt(t, m, "7")
	c.Action = tea.MouseActionRelease
	m = press(t, m, c)
	assert.Equal(t, frames, m.screen.frames)
}

func TestEqualsSpansRow(t *testing.T) {
	m := setupModel(t)
	top := lipgloss.Height(m.header())
	y := top + (len(m.pad)-1)*cellHeight + 1

	for _, x := range []int{0, cellWidth, m.padWidth() - 1} {
		b, ok := m.buttonAt(m.left()+x, y)
		require.True(t, ok, "x=%d", x)
		assert.Equal(t, "=", b.Label)
	}
}

func TestErrorDisplay(t *testing.T) {
	m := setupModel(t)
	m = press(t, m, runes("1/0"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.DisplayError, m.screen.text)
	assert.Contains(t, m.View(), "Error")
}

func TestViewShowsKeypad(t *testing.T) {
	m := setupModel(t)
	view := m.View()
	for _, label := range []string{"C", "⌫", "%", "÷", "7", "×", "−", "+", "=", "(", ")"} {
		assert.Contains(t, view, label)
	}
}

func TestLineRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewLineRenderer(&buf, NewStyles(config.Default().Theme), "")
	r.Render("12")
	r.Render(domain.DisplayError)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "12")
	assert.Contains(t, lines[1], "Error")
}

func TestRenderBanner(t *testing.T) {
	b := RenderBanner(200)
	assert.Equal(t, 4, lipgloss.Height(b))
	for _, line := range strings.Split(b, "\n") {
		assert.True(t, strings.HasPrefix(line, "     "), "line not centred: %q", line)
	}
}
