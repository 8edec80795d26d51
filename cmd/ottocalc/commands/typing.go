package commands

import (
	"context"
	"fmt"
	"unicode"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/engine"
	"github.com/hammamikhairi/ottocalc/internal/input"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// typeText presses the key for each character of text, then "=". The
// keypad's glyph buttons stand in for ×, ÷ and −, and whitespace is
// skipped. Any other character is rejected before a key is pressed, so
// "1e5" or a stray "c" fails instead of turning into a different sum.
func typeText(ctx context.Context, eng *engine.Engine, keys *input.KeyParser, log *logger.Logger,
	sessionID, text string) (*domain.Session, error) {
	cmds, err := textCommands(keys, text)
	if err != nil {
		return nil, err
	}
	for _, cmd := range cmds {
		if _, err := eng.Dispatch(ctx, sessionID, cmd); err != nil {
			return nil, err
		}
	}
	log.Debug("typed %q as %d keys", text, len(cmds))
	return eng.Dispatch(ctx, sessionID, domain.Command{Type: domain.CommandCalculate})
}

// textCommands maps text to the keys that write it. Only keys that
// extend the expression (and "%") are accepted.
func textCommands(keys *input.KeyParser, text string) ([]domain.Command, error) {
	cmds := make([]domain.Command, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		cmd, ok := keys.Parse(string(r))
		if !ok {
			b, found := input.DefaultKeypad.Find(string(r))
			if !found {
				return nil, fmt.Errorf("%q: %w", text, &input.UnknownKeyError{Key: string(r)})
			}
			cmd = b.Command()
		}
		switch cmd.Type {
		case domain.CommandDigit, domain.CommandOperator, domain.CommandDot,
			domain.CommandParen, domain.CommandPercent:
			cmds = append(cmds, cmd)
		default:
			return nil, fmt.Errorf("%q: %w", text, &input.UnknownKeyError{Key: string(r)})
		}
	}
	return cmds, nil
}
