package decimal

import "fmt"

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal, scale int, mode RoundingMode) Decimal {
	f, err := d.Quo(e, scale, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuo(%q, %v, %v) failed: %v", d, e, scale, mode, err))
	}
	return f
}

// MustQuoRem is like [Decimal.QuoRem] but panics if computing error.
func (d Decimal) MustQuoRem(e Decimal) (Decimal, Decimal) {
	q, r, err := d.QuoRem(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuoRem(%q) failed: %v", d, e, err))
	}
	return q, r
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal) MustPow(exp int) Decimal {
	f, err := d.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("%q.MustPow(%v) failed: %v", d, exp, err))
	}
	return f
}
