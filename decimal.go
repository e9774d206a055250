package decimal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Decimal type is a representation of a finite arbitrary-precision decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer indicating the position of the floating decimal point.
//   - Coefficient: an integer value of the decimal without the decimal point.
//
// The coefficient is not limited in length and the scale may be negative.
// For example, a decimal with a coefficient of 12345 and a scale of 2 represents
// the value 123.45, and a decimal with a coefficient of 12 and a scale of -3
// represents the value 12000.
// Such approach allows for multiple representations of the same numerical value.
// For example, 1, 1.0, and 1.00 all have the same value, but they
// have different scales and coefficients.
//
// Decimals are never modified in place: every operation returns a new value.
// Special values such as NaN, Infinity, or signed zeros are not supported.
type Decimal struct {
	neg   bool // indicates whether the decimal is negative
	scale int  // the position of the floating decimal point
	coef  nat  // the coefficient of the decimal
}

// MaxExponent is the largest absolute value of an exponent accepted by [Parse].
const MaxExponent = 999_999_999

// MaxScale is the largest absolute value of the scale of a decimal.
// The sum of two scales within this range always fits into an int.
const MaxScale = 1<<30 - 1

var (
	NegOne = New(-1, 0) // NegOne is the decimal -1.
	Zero   = New(0, 0)  // Zero is the decimal 0.
	One    = New(1, 0)  // One is the decimal 1.
	Two    = New(2, 0)  // Two is the decimal 2.
	Ten    = New(10, 0) // Ten is the decimal 10.
)

// checkScale returns [ErrScaleRange] if the scale is outside
// [-MaxScale, MaxScale].
func checkScale(scale int) error {
	if scale < -MaxScale || scale > MaxScale {
		return fmt.Errorf("scale %v: %w", scale, ErrScaleRange)
	}
	return nil
}

// newDecimal panics if the scale is out of range.
// Fallible operations call checkScale before they get here.
func newDecimal(neg bool, coef nat, scale int) Decimal {
	if err := checkScale(scale); err != nil {
		panic(fmt.Sprintf("decimal: %v", err))
	}
	if coef.isZero() {
		neg = false
		coef = nil
	}
	return Decimal{neg: neg, coef: coef, scale: scale}
}

func newDecimalFromFint(neg bool, coef fint, scale int) Decimal {
	return newDecimal(neg, newNat(coef), scale)
}

// New returns a decimal equal to coef / 10^scale.
// A negative scale multiplies coef by a power of ten.
// New panics if the absolute value of scale exceeds [MaxScale].
func New(coef int64, scale int) Decimal {
	neg := coef < 0
	u := uint64(coef)
	if neg {
		u = -u
	}
	return newDecimalFromFint(neg, fint(u), scale)
}

// NewFromInt64 returns a decimal with scale 0 equal to i.
func NewFromInt64(i int64) Decimal {
	return New(i, 0)
}

// Zero returns decimal with a value 0 but the same scale as d.
func (d Decimal) Zero() Decimal {
	return newDecimal(false, nil, d.Scale())
}

// One returns decimal with a value 1 but the same scale as d.
// If the scale of d is negative, the result has scale 0.
func (d Decimal) One() Decimal {
	scale := max(d.Scale(), 0)
	return newDecimal(false, nat{1}.lsh(scale), scale)
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between d and the next larger decimal value with the same scale.
func (d Decimal) ULP() Decimal {
	return New(1, d.Scale())
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// The number of digits is not limited.
// The scale of the result is the number of digits after the decimal point
// minus the exponent, so "1.50" has scale 2 and "1.5e3" has scale -2.
// Leading zeros of the integer part are removed, trailing zeros of
// the fractional part are kept.
//
// Parse returns a [*ParseError] if the string does not represent
// a valid decimal or if the exponent is out of range.
// Parse does not allow white space; see [Context.Parse].
func Parse(s string) (Decimal, error) {
	var (
		pos       int
		width     int
		neg       bool
		intStart  int
		intEnd    int
		fracStart int
		fracEnd   int
		eneg      bool
		exp       int
		epos      int
		hasexp    bool
	)

	width = len(s)
	if width == 0 {
		return Decimal{}, &ParseError{Input: s, Pos: 0, Msg: "empty string"}
	}

	// Sign
	switch s[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}

	// Integer
	intStart = pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intEnd = pos

	// Fraction
	fracStart, fracEnd = pos, pos
	if pos < width && s[pos] == '.' {
		pos++
		fracStart = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		fracEnd = pos
	}

	if intStart == intEnd && fracStart == fracEnd {
		if pos < width && s[pos] != 'e' && s[pos] != 'E' {
			return Decimal{}, invalidChar(s, pos)
		}
		return Decimal{}, &ParseError{Input: s, Pos: pos, Msg: "no coefficient digits"}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		// Sign
		if pos < width {
			switch s[pos] {
			case '-':
				eneg = true
				pos++
			case '+':
				pos++
			}
		}
		// Integer
		epos = pos
		for pos < width && isDigit(s[pos]) {
			exp = exp*10 + int(s[pos]-'0')
			if exp > MaxExponent {
				return Decimal{}, &ParseError{Input: s, Pos: epos, Msg: "exponent out of range"}
			}
			hasexp = true
			pos++
		}
		if !hasexp {
			if pos < width {
				return Decimal{}, invalidChar(s, pos)
			}
			return Decimal{}, &ParseError{Input: s, Pos: pos, Msg: "no exponent digits"}
		}
	}

	if pos != width {
		return Decimal{}, invalidChar(s, pos)
	}

	// Scale
	scale := fracEnd - fracStart
	if eneg {
		scale += exp
	} else {
		scale -= exp
	}
	if checkScale(scale) != nil {
		if !hasexp {
			epos = fracStart
		}
		return Decimal{}, &ParseError{Input: s, Pos: epos, Msg: "scale out of range"}
	}

	// Coefficient
	integer := strings.TrimLeft(s[intStart:intEnd], "0")
	fraction := s[fracStart:fracEnd]
	if len(integer) == 0 {
		fraction = strings.TrimLeft(fraction, "0")
	}
	if len(integer)+len(fraction) <= maxFintPrec {
		var coef fint
		for _, digits := range [...]string{integer, fraction} {
			for i := 0; i < len(digits); i++ {
				coef, _ = coef.fsa(1, digits[i]-'0') // at most maxFintPrec digits never overflow
			}
		}
		return newDecimalFromFint(neg, coef, scale), nil
	}
	return newDecimal(neg, natFromDigits(integer+fraction), scale), nil
}

// maxFintPrec is the number of decimal digits that always fit into a fint.
const maxFintPrec = 19

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func invalidChar(s string, pos int) *ParseError {
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return &ParseError{Input: s, Pos: pos, Msg: fmt.Sprintf("invalid character %q", r)}
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and
// has exactly [Decimal.Scale] digits after the decimal point.
// Decimals with a negative scale are written with trailing zeros.
// The string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	var b strings.Builder
	digits := d.coef.string()
	scale := d.Scale()

	// Sign
	if d.IsNeg() {
		b.WriteByte('-')
	}

	switch {
	case scale <= 0:
		b.WriteString(digits)
		if !d.IsZero() {
			b.WriteString(strings.Repeat("0", -scale))
		}
	case len(digits) > scale:
		b.WriteString(digits[:len(digits)-scale])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-scale:])
	default:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", scale-len(digits)))
		b.WriteString(digits)
	}

	return b.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb.
// The default precision is equal to the actual scale of the decimal.
// Rounding uses the [HalfEven] mode.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 'f', 'F':
		if p, ok := state.Precision(); ok {
			d = d.Rescale(p, HalfEven)
		}
	case 's', 'S', 'v', 'V', 'q', 'Q':
		// no rescaling
	default:
		fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, d.String())
		return
	}

	digits := d.Abs().String()

	// Arithmetic sign
	rsign := ""
	switch {
	case d.IsNeg():
		rsign = "-"
	case state.Flag('+'):
		rsign = "+"
	case state.Flag(' '):
		rsign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(rsign) + len(digits) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lspaces))
	b.WriteString(quote)
	b.WriteString(rsign)
	b.WriteString(strings.Repeat("0", lzeroes))
	b.WriteString(digits)
	b.WriteString(quote)
	b.WriteString(strings.Repeat(" ", tspaces))
	fmt.Fprint(state, b.String())
}

// Int64 returns the integer part of d truncated towards zero.
// The ok flag is false if the integer part does not fit into int64.
func (d Decimal) Int64() (i int64, ok bool) {
	coef, ok := d.Trunc(0).coef.fint()
	if !ok {
		return 0, false
	}
	switch {
	case d.IsNeg() && coef <= 1<<63:
		return -int64(coef-1) - 1, true
	case !d.IsNeg() && coef < 1<<63:
		return int64(coef), true
	}
	return 0, false
}

// Prec returns number of digits in the coefficient.
// The coefficient of 0 has no digits.
func (d Decimal) Prec() int {
	return d.coef.prec()
}

// Scale returns number of digits after the decimal point.
// A negative scale is the number of implied trailing zeros.
func (d Decimal) Scale() int {
	return d.scale
}

// MinScale returns the smallest non-negative scale that d can be rescaled to
// without rounding.
// Also see method [Decimal.Reduce].
func (d Decimal) MinScale() int {
	// Special case: no fractional part
	if d.Scale() <= 0 || d.IsZero() {
		return 0
	}
	// General case
	z := d.coef.ntz()
	if z > d.Scale() {
		return 0
	}
	return d.Scale() - z
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.MinScale() == 0
}

// Rescale returns d rounded or zero-padded to the given number of digits
// after the decimal point.
// The rounding is done once, on the exact value of d, using the given mode.
// Rescale panics if scale is out of range [-MaxScale, MaxScale];
// see [Context.Rescale] for a version that returns an error instead.
func (d Decimal) Rescale(scale int, mode RoundingMode) Decimal {
	if err := checkScale(scale); err != nil {
		panic(fmt.Sprintf("decimal: %v", err))
	}
	switch {
	case scale == d.Scale():
		return d
	case scale > d.Scale():
		return newDecimal(d.IsNeg(), d.coef.lsh(scale-d.Scale()), scale)
	}
	shift := d.Scale() - scale
	if coef, ok := d.coef.fint(); ok {
		return newDecimalFromFint(d.IsNeg(), coef.rsh(shift, d.IsNeg(), mode), scale)
	}
	return newDecimal(d.IsNeg(), d.coef.rsh(shift, d.IsNeg(), mode), scale)
}

// Round returns d rounded to the specified number of digits after
// the decimal point using "half to even" rule.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
func (d Decimal) Round(scale int) Decimal {
	return d.Rescale(scale, HalfEven)
}

// Quantize returns d that is rounded to the same scale as e.
// The sign and coefficient of e are ignored.
// Also see method [Decimal.Round].
func (d Decimal) Quantize(e Decimal) Decimal {
	return d.Round(e.Scale())
}

// Trunc returns d that is truncated to the specified number of digits after
// the decimal point.
func (d Decimal) Trunc(scale int) Decimal {
	return d.Rescale(scale, Truncate)
}

// Ceil returns d that is rounded up to the specified number of digits after
// the decimal point.
// Also see method [Decimal.Floor].
func (d Decimal) Ceil(scale int) Decimal {
	return d.Rescale(scale, Ceiling)
}

// Floor returns d that is rounded down to the specified number of digits after
// the decimal point.
// Also see method [Decimal.Ceil].
func (d Decimal) Floor(scale int) Decimal {
	return d.Rescale(scale, Floor)
}

// Pad returns d zero-padded to the specified number of digits after
// the decimal point.
// If the scale of d is greater than or equal to the specified scale,
// d is returned unchanged.
func (d Decimal) Pad(scale int) Decimal {
	if scale <= d.Scale() {
		return d
	}
	return d.Rescale(scale, Truncate)
}

// Reduce returns d with all trailing zeros of the fractional part removed.
// Decimals with a negative scale are brought to scale 0.
// The result is in canonical form.
func (d Decimal) Reduce() Decimal {
	return d.Rescale(d.MinScale(), Truncate)
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.IsNeg(), d.coef, d.Scale())
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.coef, d.Scale())
}

// CopySign returns d with the same sign as e.
// If e is zero, sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef.isZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.coef.isZero() && !d.neg
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef.isZero()
}

// Mul returns the exact product of d and e.
// The scale of the product is the sum of the scales of d and e.
//
// Mul panics if that sum is out of range [-MaxScale, MaxScale];
// see [Context.Mul] for a version that returns [ErrScaleRange] instead.
func (d Decimal) Mul(e Decimal) Decimal {
	f, ok := mulFint(d, e)
	if !ok {
		f = mulNat(d, e)
	}
	return f
}

func mulFint(d, e Decimal) (Decimal, bool) {
	dcoef, ok := d.coef.fint()
	if !ok {
		return Decimal{}, false
	}
	ecoef, ok := e.coef.fint()
	if !ok {
		return Decimal{}, false
	}

	// Coefficient
	dcoef, ok = dcoef.mul(ecoef)
	if !ok {
		return Decimal{}, false
	}

	// Sign
	neg := d.IsNeg() != e.IsNeg()

	// Scale
	scale := d.Scale() + e.Scale()

	return newDecimalFromFint(neg, dcoef, scale), true
}

func mulNat(d, e Decimal) Decimal {
	// Coefficient
	coef := d.coef.mul(e.coef)

	// Sign
	neg := d.IsNeg() != e.IsNeg()

	// Scale
	scale := d.Scale() + e.Scale()

	return newDecimal(neg, coef, scale)
}

// Pow returns the exact value of d raised to the non-negative power exp.
// The scale of the result is exp times the scale of d, and d^0 is 1 for
// every d, including 0.
//
// Pow returns [ErrNegativeExponent] if exp is negative and [ErrScaleRange]
// if the scale of the result is out of range [-MaxScale, MaxScale].
func (d Decimal) Pow(exp int) (Decimal, error) {
	return d.pow(exp, nil)
}

// pow computes d^exp by squaring and multiplying.
// If check is not nil, it is applied to every intermediate result.
// Every intermediate coefficient divides the final one and every intermediate
// scale lies between 0 and the final one, so a check or a scale range error
// on an intermediate result means the final one would fail too.
func (d Decimal) pow(exp int, check func(Decimal) error) (Decimal, error) {
	if exp < 0 {
		return Decimal{}, fmt.Errorf("%v^%v: %w", d, exp, ErrNegativeExponent)
	}
	mul := func(x, y Decimal) (Decimal, error) {
		if err := checkScale(x.Scale() + y.Scale()); err != nil {
			return Decimal{}, fmt.Errorf("%v^%v: %w", d, exp, err)
		}
		z := x.Mul(y)
		if check != nil {
			if err := check(z); err != nil {
				return Decimal{}, err
			}
		}
		return z, nil
	}
	var err error
	f, g := One, d
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			if f, err = mul(f, g); err != nil {
				return Decimal{}, err
			}
		}
		if e == 1 {
			break
		}
		if g, err = mul(g, g); err != nil {
			return Decimal{}, err
		}
	}
	return f, nil
}

// Add returns the exact sum of d and e.
// The scale of the sum is the larger of the scales of d and e.
func (d Decimal) Add(e Decimal) Decimal {
	f, ok := addFint(d, e)
	if !ok {
		f = addNat(d, e)
	}
	return f
}

func addFint(d, e Decimal) (Decimal, bool) {
	var (
		dcoef fint
		ecoef fint
		neg   bool
		scale int
		ok    bool
	)

	if dcoef, ok = d.coef.fint(); !ok {
		return Decimal{}, false
	}
	if ecoef, ok = e.coef.fint(); !ok {
		return Decimal{}, false
	}

	// Alignment and scale
	switch {
	case d.Scale() == e.Scale():
		scale = d.Scale()
	case e.Scale() < d.Scale():
		scale = d.Scale()
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return Decimal{}, false
		}
	case d.Scale() < e.Scale():
		scale = e.Scale()
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return Decimal{}, false
		}
	}

	// Sign
	if ecoef < dcoef {
		neg = d.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Coefficient
	if d.IsNeg() != e.IsNeg() {
		dcoef = dcoef.dist(ecoef)
	} else {
		dcoef, ok = dcoef.add(ecoef)
		if !ok {
			return Decimal{}, false
		}
	}

	return newDecimalFromFint(neg, dcoef, scale), true
}

func addNat(d, e Decimal) Decimal {
	var (
		dcoef nat
		ecoef nat
		neg   bool
		scale int
	)

	dcoef = d.coef
	ecoef = e.coef

	// Alignment and scale
	switch {
	case d.Scale() == e.Scale():
		scale = d.Scale()
	case e.Scale() < d.Scale():
		ecoef = ecoef.lsh(d.Scale() - e.Scale())
		scale = d.Scale()
	case d.Scale() < e.Scale():
		dcoef = dcoef.lsh(e.Scale() - d.Scale())
		scale = e.Scale()
	}

	// Sign
	if dcoef.cmp(ecoef) > 0 {
		neg = d.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Coefficient
	if d.IsNeg() != e.IsNeg() {
		dcoef = dcoef.dist(ecoef)
	} else {
		dcoef = dcoef.add(ecoef)
	}

	return newDecimal(neg, dcoef, scale)
}

// Sub returns the exact difference of d and e.
// The scale of the difference is the larger of the scales of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Quo returns the quotient of d and e rounded to the given number of digits
// after the decimal point using the given rounding mode.
// The quotient is computed exactly and rounded once, so the result is
// the correctly rounded value of d / e.
//
// Quo returns [ErrDivisionByZero] if e is zero, even if d is zero too,
// and [ErrScaleRange] if scale is out of range [-MaxScale, MaxScale].
func (d Decimal) Quo(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	// Special cases: zero divisor and invalid scale
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}

	// General case
	f, ok := quoFint(d, e, scale, mode)
	if !ok {
		f = quoNat(d, e, scale, mode)
	}
	return f, nil
}

func quoFint(d, e Decimal, scale int, mode RoundingMode) (Decimal, bool) {
	var (
		dcoef fint
		ecoef fint
		neg   bool
		ok    bool
	)

	if dcoef, ok = d.coef.fint(); !ok {
		return Decimal{}, false
	}
	if ecoef, ok = e.coef.fint(); !ok {
		return Decimal{}, false
	}

	// Alignment, so that the quotient of coefficients has the requested scale
	shift := scale - d.Scale() + e.Scale()
	if shift > 0 {
		dcoef, ok = dcoef.lsh(shift)
	} else {
		ecoef, ok = ecoef.lsh(-shift)
	}
	if !ok {
		return Decimal{}, false
	}

	// Sign
	neg = d.IsNeg() != e.IsNeg()

	// Coefficient
	q, r, ok := dcoef.quoRem(ecoef)
	if !ok {
		return Decimal{}, false
	}

	// Rounding
	if mode.roundUp(neg, q.isOdd(), cmpHalf(r, ecoef), r != 0) {
		q++
	}

	return newDecimalFromFint(neg, q, scale), true
}

func quoNat(d, e Decimal, scale int, mode RoundingMode) Decimal {
	var (
		dcoef nat
		ecoef nat
		neg   bool
	)

	dcoef = d.coef
	ecoef = e.coef

	// Sign
	neg = d.IsNeg() != e.IsNeg()

	// Alignment, so that the quotient of coefficients has the requested scale
	shift := scale - d.Scale() + e.Scale()
	if shift > 0 {
		dcoef = dcoef.lsh(shift)
	} else {
		// Special case: the quotient is less than 1/10 of the unit
		if ecoef.prec()-shift > dcoef.prec()+1 {
			var coef nat
			if !dcoef.isZero() && mode.roundUp(neg, false, -1, true) {
				coef = nat{1}
			}
			return newDecimal(neg, coef, scale)
		}
		ecoef = ecoef.lsh(-shift)
	}

	// Coefficient
	q, r, _ := dcoef.quoRem(ecoef)

	// Rounding
	if !r.isZero() && mode.roundUp(neg, q.isOdd(), r.add(r).cmp(ecoef), true) {
		q = q.inc()
	}

	return newDecimal(neg, q, scale)
}

// QuoRem returns the quotient q and remainder r of d and e such that
// d = q * e + r, where q is an integer truncated towards zero and r has
// the same sign as d.
//
// QuoRem returns [ErrDivisionByZero] if e is zero.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	q, err = d.Quo(e, 0, Truncate)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	r = d.Sub(e.Mul(q))
	return q, r, nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	case d.Sign() == 0:
		return 0
	}

	// General case
	r, ok := cmpFint(d, e)
	if !ok {
		r = cmpNat(d, e)
	}
	return r
}

func cmpFint(d, e Decimal) (int, bool) {
	var (
		dcoef fint
		ecoef fint
		ok    bool
	)

	if dcoef, ok = d.coef.fint(); !ok {
		return 0, false
	}
	if ecoef, ok = e.coef.fint(); !ok {
		return 0, false
	}

	// Alignment
	switch {
	case e.Scale() < d.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return 0, false
		}
	case d.Scale() < e.Scale():
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return 0, false
		}
	}

	// Comparison
	switch {
	case ecoef < dcoef:
		return d.Sign(), true
	case dcoef < ecoef:
		return -e.Sign(), true
	default:
		return 0, true
	}
}

func cmpNat(d, e Decimal) int {
	// Position of the most significant digit
	dexp := d.Prec() - d.Scale()
	eexp := e.Prec() - e.Scale()
	switch {
	case eexp < dexp:
		return d.Sign()
	case dexp < eexp:
		return -e.Sign()
	}

	// Alignment, which is bounded by the difference in precision
	dcoef := d.coef
	ecoef := e.coef
	switch {
	case e.Scale() < d.Scale():
		ecoef = ecoef.lsh(d.Scale() - e.Scale())
	case d.Scale() < e.Scale():
		dcoef = dcoef.lsh(e.Scale() - d.Scale())
	}

	// Comparison
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	default:
		return 0
	}
}

// Equal returns true if d and e are numerically equal.
// Decimals with different scales, such as 1.0 and 1.00, are equal.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// CmpTotal compares representation of d and e and returns:
//
//	-1 if d < e
//	-1 if d == e && d.scale > e.scale
//	 0 if d == e && d.scale == e.scale
//	+1 if d == e && d.scale < e.scale
//	+1 if d > e
//
// Also see method [Decimal.Cmp].
func (d Decimal) CmpTotal(e Decimal) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case e.Scale() < d.Scale():
		return -1
	case d.Scale() < e.Scale():
		return 1
	}
	return 0
}

// Max returns maximum of d and e.
// Also see method [Decimal.CmpTotal]
func (d Decimal) Max(e Decimal) Decimal {
	if d.CmpTotal(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
// Also see method [Decimal.CmpTotal]
func (d Decimal) Min(e Decimal) Decimal {
	if d.CmpTotal(e) <= 0 {
		return d
	}
	return e
}
