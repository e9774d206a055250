package decimal

import (
	"errors"
	"strings"
	"unicode"
)

// Context bounds the results of arithmetic operations.
// The zero value is an unbounded context, in which only [Context.Quo]
// and [Context.Pow] can fail.
//
// A context is a plain value: it is passed explicitly or bound into the
// caller's own types, and it is safe for concurrent use.
type Context struct {
	// MaxPrec is the maximum number of digits in a coefficient.
	// Results that need more digits fail with an [*OverflowError].
	// Zero means no limit.
	MaxPrec int

	// TrimSpace makes [Context.Parse] ignore leading and trailing white space.
	TrimSpace bool
}

// check returns d, or an [*OverflowError] if the coefficient of d is too long.
func (c Context) check(d Decimal) (Decimal, error) {
	if err := c.checkPrec(d.Prec()); err != nil {
		return Decimal{}, err
	}
	return d, nil
}

func (c Context) checkPrec(prec int) error {
	if c.MaxPrec > 0 && prec > c.MaxPrec {
		return &OverflowError{Prec: prec, MaxPrec: c.MaxPrec}
	}
	return nil
}

// checkRescale checks the precision of d padded to the given scale
// before the padded coefficient is computed.
func (c Context) checkRescale(d Decimal, scale int) error {
	if d.IsZero() || scale <= d.Scale() {
		return nil
	}
	return c.checkPrec(d.Prec() + scale - d.Scale())
}

// Align returns d and e rescaled to the larger of their scales by
// multiplying the coefficient of the other one by a power of ten.
// The values of d and e are not changed.
//
// Align returns an [*OverflowError] if a rescaled coefficient would have
// more than [Context.MaxPrec] digits.
func (c Context) Align(d, e Decimal) (Decimal, Decimal, error) {
	scale := max(d.Scale(), e.Scale())
	if err := c.checkRescale(d, scale); err != nil {
		return Decimal{}, Decimal{}, err
	}
	if err := c.checkRescale(e, scale); err != nil {
		return Decimal{}, Decimal{}, err
	}
	return d.Pad(scale), e.Pad(scale), nil
}

// Parse is like [Parse], but it also checks the length of the coefficient
// and, if [Context.TrimSpace] is set, ignores surrounding white space.
// Positions reported in a [*ParseError] refer to the original string.
func (c Context) Parse(s string) (Decimal, error) {
	t, offset := s, 0
	if c.TrimSpace {
		t = strings.TrimLeftFunc(s, unicode.IsSpace)
		offset = len(s) - len(t)
		t = strings.TrimRightFunc(t, unicode.IsSpace)
	}
	d, err := Parse(t)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return Decimal{}, &ParseError{Input: s, Pos: perr.Pos + offset, Msg: perr.Msg}
		}
		return Decimal{}, err
	}
	return c.check(d)
}

// Add is like [Decimal.Add], but it fails with an [*OverflowError]
// if the operands cannot be aligned or the sum is too long.
func (c Context) Add(d, e Decimal) (Decimal, error) {
	d, e, err := c.Align(d, e)
	if err != nil {
		return Decimal{}, err
	}
	return c.check(d.Add(e))
}

// Sub is like [Decimal.Sub], but it fails with an [*OverflowError]
// if the operands cannot be aligned or the difference is too long.
func (c Context) Sub(d, e Decimal) (Decimal, error) {
	return c.Add(d, e.Neg())
}

// Mul is like [Decimal.Mul], but it fails with an [*OverflowError]
// if the product is too long and with [ErrScaleRange] if its scale is
// out of range.
// A product of nonzero coefficients has at least d.Prec() + e.Prec() - 1
// digits, so products that are bound to be too long are never computed.
func (c Context) Mul(d, e Decimal) (Decimal, error) {
	if err := checkScale(d.Scale() + e.Scale()); err != nil {
		return Decimal{}, err
	}
	if !d.IsZero() && !e.IsZero() {
		if err := c.checkPrec(d.Prec() + e.Prec() - 1); err != nil {
			return Decimal{}, err
		}
	}
	return c.check(d.Mul(e))
}

// Quo is like [Decimal.Quo], but it also fails with an [*OverflowError]
// if the rounded quotient is too long.
func (c Context) Quo(d, e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	f, err := d.Quo(e, scale, mode)
	if err != nil {
		return Decimal{}, err
	}
	return c.check(f)
}

// QuoRem is like [Decimal.QuoRem], but it also fails with an [*OverflowError]
// if the quotient or the remainder is too long.
func (c Context) QuoRem(d, e Decimal) (q, r Decimal, err error) {
	q, r, err = d.QuoRem(e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	if q, err = c.check(q); err != nil {
		return Decimal{}, Decimal{}, err
	}
	if r, err = c.check(r); err != nil {
		return Decimal{}, Decimal{}, err
	}
	return q, r, nil
}

// Pow is like [Decimal.Pow], but it fails with an [*OverflowError]
// as soon as an intermediate result is too long.
func (c Context) Pow(d Decimal, exp int) (Decimal, error) {
	if c.MaxPrec == 0 {
		return d.Pow(exp)
	}
	return d.pow(exp, func(f Decimal) error {
		_, err := c.check(f)
		return err
	})
}

// Rescale is like [Decimal.Rescale], but it fails with an [*OverflowError]
// if the result is too long and with [ErrScaleRange] if scale is out of range.
func (c Context) Rescale(d Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	if err := c.checkRescale(d, scale); err != nil {
		return Decimal{}, err
	}
	return c.check(d.Rescale(scale, mode))
}
