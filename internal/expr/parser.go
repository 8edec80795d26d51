package expr

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) unexpected(t token) error {
	return errors.Wrapf(domain.ErrEvaluation, "unexpected %s at %d", t.kind, t.pos)
}

func (p *parser) parse() (float64, error) {
	v, err := p.additive()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, p.unexpected(t)
	}
	return v, nil
}

// additive := multiplicative (('+' | '-') multiplicative)*
func (p *parser) additive() (float64, error) {
	left, err := p.multiplicative()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.multiplicative()
		if err != nil {
			return 0, err
		}
		if op == tokPlus {
			left += right
		} else {
			left -= right
		}
	}
}

// multiplicative := exponent (('*' | '/') exponent)*
func (p *parser) multiplicative() (float64, error) {
	left, err := p.exponent()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek().kind
		if op != tokStar && op != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.exponent()
		if err != nil {
			return 0, err
		}
		if op == tokStar {
			left *= right
		} else {
			left /= right
		}
	}
}

// exponent := unary | primary ('**' exponent)?
func (p *parser) exponent() (float64, error) {
	if k := p.peek().kind; k == tokPlus || k == tokMinus {
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t := p.peek(); t.kind == tokPow {
			return 0, errors.Wrapf(domain.ErrEvaluation, "unary operator before '**' at %d needs parentheses", t.pos)
		}
		return v, nil
	}

	base, err := p.primary()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.exponent()
	if err != nil {
		return 0, err
	}
	return pow(base, exp), nil
}

// unary := ('+' | '-') unary | primary
func (p *parser) unary() (float64, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()
		return p.unary()
	case tokMinus:
		p.next()
		v, err := p.unary()
		return -v, err
	}
	return p.primary()
}

// primary := number | '(' additive ')'
func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.val, nil
	case tokLParen:
		v, err := p.additive()
		if err != nil {
			return 0, err
		}
		if c := p.next(); c.kind != tokRParen {
			return 0, p.unexpected(c)
		}
		return v, nil
	}
	return 0, p.unexpected(t)
}

// pow follows IEEE-754 pow except that an infinite exponent on a base of
// magnitude one, or a NaN exponent, yields NaN.
func pow(base, exp float64) float64 {
	if math.IsNaN(exp) {
		return math.NaN()
	}
	if math.IsInf(exp, 0) && math.Abs(base) == 1 {
		return math.NaN()
	}
	return math.Pow(base, exp)
}
