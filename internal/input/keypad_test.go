package input

import (
	"testing"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

func TestButtonCommand(t *testing.T) {
	tests := []struct {
		label     string
		wantType  domain.CommandType
		wantToken string
	}{
		{"C", domain.CommandClear, ""},
		{"⌫", domain.CommandDelete, ""},
		{"%", domain.CommandPercent, ""},
		{"=", domain.CommandCalculate, ""},
		{"÷", domain.CommandOperator, "÷"},
		{"×", domain.CommandOperator, "×"},
		{"−", domain.CommandOperator, "−"},
		{"+", domain.CommandOperator, "+"},
		{"5", domain.CommandDigit, "5"},
		{".", domain.CommandDot, "."},
		{"(", domain.CommandParen, "("},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			b, ok := DefaultKeypad.Find(tt.label)
			if !ok {
				t.Fatalf("button %q missing from keypad", tt.label)
			}
			cmd := b.Command()
			if cmd.Type != tt.wantType {
				t.Errorf("expected %s, got %s", tt.wantType, cmd.Type)
			}
			if cmd.Token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, cmd.Token)
			}
		})
	}
}

func TestKeypadAt(t *testing.T) {
	if got := DefaultKeypad.Columns(); got != 4 {
		t.Fatalf("expected 4 columns, got %d", got)
	}

	tests := []struct {
		row, col int
		want     string
	}{
		{1, 0, "7"},
		{3, 3, "+"},
		// The equals key spans the whole last row.
		{len(DefaultKeypad) - 1, 0, "="},
		{len(DefaultKeypad) - 1, 1, "="},
		{len(DefaultKeypad) - 1, 2, "="},
		{len(DefaultKeypad) - 1, 3, "="},
	}
	for _, tt := range tests {
		b, ok := DefaultKeypad.At(tt.row, tt.col)
		if !ok {
			t.Fatalf("no button at (%d,%d)", tt.row, tt.col)
		}
		if b.Label != tt.want {
			t.Errorf("at (%d,%d): expected %q, got %q", tt.row, tt.col, tt.want, b.Label)
		}
	}

	for _, pos := range [][2]int{{0, 4}, {-1, 0}, {len(DefaultKeypad), 0}} {
		if b, ok := DefaultKeypad.At(pos[0], pos[1]); ok {
			t.Errorf("expected no button at %v, got %q", pos, b.Label)
		}
	}
}

func TestUnknownActionIsIgnored(t *testing.T) {
	b := Button{Label: "?", Action: "sqrt"}
	if got := b.Command().Type; got != domain.CommandNone {
		t.Errorf("expected %s, got %s", domain.CommandNone, got)
	}
}
