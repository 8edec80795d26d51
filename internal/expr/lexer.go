package expr

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokPow:
		return "'**'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}

type token struct {
	kind tokenKind
	val  float64
	pos  int
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// lex splits s into tokens. The returned slice always ends with tokEOF.
func lex(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c):
			i++

		case isDigit(c) || c == '.':
			start := i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			if i < len(s) && s[i] == '.' {
				i++
				for i < len(s) && isDigit(s[i]) {
					i++
				}
			}
			text := s[start:i]
			if text == "." {
				return nil, errors.Wrapf(domain.ErrEvaluation, "lone '.' at %d", start)
			}
			// Legacy octal and zero-prefixed decimals ("05", "08") are
			// syntax errors in the expression language being replaced.
			if len(text) > 1 && text[0] == '0' && isDigit(text[1]) {
				return nil, errors.Wrapf(domain.ErrEvaluation, "leading zero in %q at %d", text, start)
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, errors.Wrapf(domain.ErrEvaluation, "number %q at %d", text, start)
			}
			toks = append(toks, token{kind: tokNumber, val: v, pos: start})

		case c == '+' || c == '-':
			// "++" and "--" are increment/decrement in the expression
			// language being replaced; neither applies to a literal.
			if i+1 < len(s) && s[i+1] == c {
				return nil, errors.Wrapf(domain.ErrEvaluation, "%q at %d", s[i:i+2], i)
			}
			kind := tokPlus
			if c == '-' {
				kind = tokMinus
			}
			toks = append(toks, token{kind: kind, pos: i})
			i++

		case c == '*':
			if i+1 < len(s) && s[i+1] == '*' {
				toks = append(toks, token{kind: tokPow, pos: i})
				i += 2
				continue
			}
			toks = append(toks, token{kind: tokStar, pos: i})
			i++

		case c == '/':
			toks = append(toks, token{kind: tokSlash, pos: i})
			i++

		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++

		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++

		default:
			return nil, errors.Wrapf(domain.ErrInvalidExpression, "unexpected %q at %d", c, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(s)}), nil
}
