package decimal

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a result needs more coefficient digits
	// than a [Context] allows.
	ErrOverflow = errors.New("decimal overflow")
	// ErrDivisionByZero is returned when the divisor is zero,
	// whatever the dividend is.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrMalformed is returned when a string is not a valid decimal.
	ErrMalformed = errors.New("malformed decimal")
	// ErrNegativeExponent is returned by [Decimal.Pow] for negative powers.
	ErrNegativeExponent = errors.New("negative exponent")
	// ErrScaleRange is returned when the scale of a result would be
	// outside [-MaxScale, MaxScale].
	ErrScaleRange = errors.New("scale out of range")
)

// ParseError describes a string that could not be converted to a decimal.
// It wraps [ErrMalformed].
type ParseError struct {
	Input string // the string being parsed
	Pos   int    // byte offset of the offending character
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q at position %v: %v", e.Input, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

// OverflowError describes a result that does not fit into [Context.MaxPrec]
// digits. It wraps [ErrOverflow].
type OverflowError struct {
	// Prec is a lower bound of the number of digits of the exact result.
	// Results rejected before they are computed report the bound,
	// the others report their actual length.
	Prec    int
	MaxPrec int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("result has at least %v digit(s), but at most %v digit(s) are allowed: %v", e.Prec, e.MaxPrec, ErrOverflow)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
