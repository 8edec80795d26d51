package input

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Compile-time interface check.
var _ domain.KeyParser = (*KeyParser)(nil)

// KeyParser maps key names to commands. Key names are what a browser or
// terminal reports for a key press: a single printable character, or a
// name such as "Enter" or "backspace".
type KeyParser struct {
	log   *logger.Logger
	rules []keyRule
}

type keyRule struct {
	regex *regexp.Regexp
	build func(key string) domain.Command
}

func literal(key string) domain.Command { return Classify(key) }

func action(t domain.CommandType) func(string) domain.Command {
	return func(string) domain.Command { return domain.Command{Type: t} }
}

// NewKeyParser creates the keyboard mapping.
func NewKeyParser(log *logger.Logger) *KeyParser {
	p := &KeyParser{log: log}
	p.rules = []keyRule{
		{regexp.MustCompile(`^[0-9]$`), literal},
		{regexp.MustCompile(`^[.+\-*/()]$`), literal},
		{regexp.MustCompile(`(?i)^(enter|=)$`), action(domain.CommandCalculate)},
		{regexp.MustCompile(`(?i)^backspace$`), action(domain.CommandDelete)},
		{regexp.MustCompile(`(?i)^c$`), action(domain.CommandClear)},
		{regexp.MustCompile(`^%$`), action(domain.CommandPercent)},
	}
	return p
}

// Parse converts a key name into a command. ok is false for keys the
// calculator leaves alone.
func (p *KeyParser) Parse(key string) (domain.Command, bool) {
	for _, rule := range p.rules {
		if rule.regex.MatchString(key) {
			cmd := rule.build(key)
			p.log.Debug("key %q -> %s", key, cmd.Type)
			return cmd, true
		}
	}
	p.log.Debug("key %q ignored", key)
	return domain.Command{}, false
}

// scriptAliases are spelled-out key names accepted by ParseScript, for
// shells where the operator characters are awkward to pass.
var scriptAliases = map[string]string{
	"plus":      "+",
	"minus":     "-",
	"times":     "*",
	"mul":       "*",
	"divide":    "/",
	"div":       "/",
	"dot":       ".",
	"point":     ".",
	"lparen":    "(",
	"rparen":    ")",
	"percent":   "%",
	"equals":    "=",
	"eq":        "=",
	"clear":     "c",
	"delete":    "Backspace",
	"del":       "Backspace",
	"bs":        "Backspace",
	"calculate": "Enter",
}

// ParseScript parses a key name as typed on a command line. Besides the
// names Parse understands it accepts the aliases in scriptAliases
// ("plus", "equals", ...). Unknown names return domain.ErrUnknownKey.
func (p *KeyParser) ParseScript(name string) (domain.Command, error) {
	if alias, ok := scriptAliases[strings.ToLower(name)]; ok {
		name = alias
	}
	cmd, ok := p.Parse(name)
	if !ok {
		return domain.Command{}, &UnknownKeyError{Key: name}
	}
	return cmd, nil
}

// UnknownKeyError names a key ParseScript could not map.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string { return fmt.Sprintf("unknown key %q", e.Key) }

// Unwrap lets errors.Is match domain.ErrUnknownKey.
func (e *UnknownKeyError) Unwrap() error { return domain.ErrUnknownKey }
