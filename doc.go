/*
Package decimal implements immutable arbitrary-precision decimal numbers.
It is specifically designed for financial calculations, where rounding
errors of binary floating-point numbers are unacceptable.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned integer of unlimited length representing
    the numeric value of the decimal without the decimal point.
    It is stored as a sequence of base 10^9 limbs.
  - Scale: an integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2
    represents the value 123.45.
    A negative scale stands for trailing zeros, so a coefficient of 12 with
    a scale of -3 represents the value 12000.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients.
[Decimal.Cmp] and [Decimal.Equal] compare values, while [Decimal.CmpTotal]
also takes the representation into account.

Special values such as NaN, Infinity, or negative zeros are not supported.
The scale of zero is preserved, so 0.00 + 0 = 0.00.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Context.Parse], [Decimal.String], [Decimal.Format].
  - from/to int64:
    [New], [NewFromInt64], [Decimal.Int64].

Conversions from and to float64 are deliberately absent.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    If no overflow occurs, the exact result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated using arbitrary-precision arithmetic on
    base 10^9 limbs.

It is expected that, in financial systems, the majority of arithmetic
operations will successfully compute an exact result during step 1.

[Decimal.Add], [Decimal.Sub], [Decimal.Mul] and [Decimal.Pow] are exact.
[Decimal.Quo] computes the exact quotient and rounds it once to the requested
scale, so its result is always correctly rounded.

# Context

By default, the length of a coefficient is not limited and the only
possible errors are division by zero, negative powers and scales out of
range [-MaxScale, MaxScale].
A [Context] sets an upper bound on the number of coefficient digits:

	| Attribute | Zero value | Effect of a non-zero value                          |
	| --------- | ---------- | --------------------------------------------------- |
	| MaxPrec   | 0          | results with more digits fail with an overflow      |
	| TrimSpace | false      | [Context.Parse] ignores surrounding white space     |

The context is never global: it is a plain value passed to each call.

# Rounding

Rounding is always explicit.
[Decimal.Quo] and [Decimal.Rescale] accept one of the following modes:

  - [HalfEven]: to nearest, ties to even (the default).
  - [HalfUp]: to nearest, ties away from zero.
  - [Truncate]: towards zero.
  - [Ceiling]: towards positive infinity.
  - [Floor]: towards negative infinity.

In addition, the package provides shortcuts:
[Decimal.Round], [Decimal.Quantize], [Decimal.Trunc], [Decimal.Ceil],
[Decimal.Floor].

# Errors

All methods are pure. Methods prefixed with Must panic instead of
returning an error, and so do the infallible [New], [Decimal.Mul] and
[Decimal.Rescale] family when a scale falls outside [-MaxScale, MaxScale].
Errors are returned in the following cases:

  - Division by Zero.
    [Decimal.Quo] and [Decimal.QuoRem] return [ErrDivisionByZero]
    when the divisor is 0, whatever the dividend is.

  - Invalid Operation.
    [Decimal.Pow] returns [ErrNegativeExponent] for negative powers.

  - Malformed Input.
    [Parse] returns a [*ParseError] holding the input and the position of
    the offending character. It wraps [ErrMalformed].

  - Overflow.
    Methods of [Context] return an [*OverflowError] if a result needs more
    than [Context.MaxPrec] digits. It wraps [ErrOverflow].

  - Scale Range.
    [Parse], [Decimal.Quo], [Decimal.Pow] and methods of [Context] return
    [ErrScaleRange] if the scale of a result is outside
    [-MaxScale, MaxScale].
*/
package decimal
