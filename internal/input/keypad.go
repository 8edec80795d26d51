package input

import "github.com/hammamikhairi/ottocalc/internal/domain"

// Button is one keypad key. Exactly one of Value and Action is set:
// Value is the literal appended to the buffer, Action one of the
// domain.Action* names.
type Button struct {
	Label  string
	Value  string
	Action string
	Span   int // columns occupied; zero means one
}

// Command returns what activating the button does.
func (b Button) Command() domain.Command {
	if b.Action != "" {
		return domain.Command{Type: domain.CommandFromAction(b.Action)}
	}
	return Classify(b.Value)
}

// Width returns the number of columns the button occupies.
func (b Button) Width() int {
	if b.Span < 1 {
		return 1
	}
	return b.Span
}

func val(label string) Button { return Button{Label: label, Value: label} }

// Keypad is a grid of buttons, top row first.
type Keypad [][]Button

// DefaultKeypad is the standard layout. The multiply, divide and minus
// keys append their display glyphs; the controller normalizes them when
// calculating.
var DefaultKeypad = Keypad{
	{
		{Label: "C", Action: domain.ActionClear},
		{Label: "⌫", Action: domain.ActionDelete},
		{Label: "%", Action: domain.ActionPercent},
		val("÷"),
	},
	{val("7"), val("8"), val("9"), val("×")},
	{val("4"), val("5"), val("6"), val("−")},
	{val("1"), val("2"), val("3"), val("+")},
	{val("0"), val("."), val("("), val(")")},
	{{Label: "=", Action: domain.ActionCalculate, Span: 4}},
}

// Columns returns the width of the widest row, in button columns.
func (k Keypad) Columns() int {
	widest := 0
	for _, row := range k {
		n := 0
		for _, b := range row {
			n += b.Width()
		}
		if n > widest {
			widest = n
		}
	}
	return widest
}

// At returns the button covering grid column col of row. ok is false
// outside the keypad.
func (k Keypad) At(row, col int) (Button, bool) {
	if row < 0 || row >= len(k) || col < 0 {
		return Button{}, false
	}
	x := 0
	for _, b := range k[row] {
		x += b.Width()
		if col < x {
			return b, true
		}
	}
	return Button{}, false
}

// Find returns the button with the given label.
func (k Keypad) Find(label string) (Button, bool) {
	for _, row := range k {
		for _, b := range row {
			if b.Label == label {
				return b, true
			}
		}
	}
	return Button{}, false
}
