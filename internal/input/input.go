// Package input translates the calculator's two input surfaces, keyboard
// keys and keypad buttons, into domain commands.
package input

import "github.com/hammamikhairi/ottocalc/internal/domain"

// Classify returns the append command for a literal token: a digit, an
// operator (ASCII or keypad glyph), the decimal point or a parenthesis.
func Classify(token string) domain.Command {
	t := domain.CommandOperator
	switch token {
	case ".":
		t = domain.CommandDot
	case "(", ")":
		t = domain.CommandParen
	default:
		if isDigits(token) {
			t = domain.CommandDigit
		}
	}
	return domain.Command{Type: t, Token: token}
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
