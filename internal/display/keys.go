package display

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the help line. Calculator keys are
// routed through the domain key parser; only quit and help are handled
// by the UI itself.
type keyMap struct {
	Digits    key.Binding
	Operators key.Binding
	Calculate key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Percent   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "number"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "/", "(", ")"),
			key.WithHelp("+-*/()", "operator"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "calculate"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operators},
		{k.Calculate, k.Percent},
		{k.Delete, k.Clear},
		{k.Help, k.Quit},
	}
}
