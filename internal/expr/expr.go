// Package expr evaluates the calculator's arithmetic expressions.
//
// Only the characters accepted by [Validate] are understood: digits,
// whitespace, the decimal point, parentheses and the operators
// + - * / (with ** for exponentiation). Evaluation is a hand-written
// recursive-descent pass; nothing is ever handed to a general-purpose
// interpreter.
//
// Precedence, loosest first: binary plus and minus, then multiply and
// divide, then the unary signs, then "**". Exponentiation is
// right-associative and its left operand may not carry a bare unary
// sign, so "-2**2" is rejected while "(-2)**2" is 4.
//
// Adjacent "++" or "--" without whitespace are rejected, as are numbers
// or groups written side by side ("2(3)", "1 2").
package expr

import (
	"math"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
)

// Normalize replaces the keypad's multiply, divide and minus glyphs with
// their ASCII operators.
func Normalize(s string) string {
	return glyphs.Replace(s)
}

var allowed = regexp.MustCompile(`^[\d+\-*/().\s]+$`)

// Validate reports domain.ErrInvalidExpression unless s is non-empty and
// made only of digits, whitespace and + - * / ( ) .
func Validate(s string) error {
	if !allowed.MatchString(s) {
		return errors.Wrapf(domain.ErrInvalidExpression, "%q", s)
	}
	return nil
}

// Evaluate validates and evaluates s. The error wraps
// domain.ErrInvalidExpression when s fails the allow-list and
// domain.ErrEvaluation for syntax errors and non-finite results.
func Evaluate(s string) (float64, error) {
	if err := Validate(s); err != nil {
		return 0, err
	}

	toks, err := lex(s)
	if err != nil {
		return 0, err
	}

	p := &parser{toks: toks}
	v, err := p.parse()
	if err != nil {
		return 0, err
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.Wrapf(domain.ErrEvaluation, "%s yields %v", s, v)
	}
	return v, nil
}
