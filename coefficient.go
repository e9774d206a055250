package decimal

import "math/bits"

// fint (Fast INTeger) is a coefficient of at most 19 decimal digits held in
// a uint64. Arithmetic tries fint first and falls back to [nat] as soon as
// an intermediate value does not fit.
type fint uint64

// maxFint is the largest coefficient a fint may hold.
const maxFint = 9_999_999_999_999_999_999

// pow10[x] = 10^x for every x that keeps 10^x within uint64.
var pow10 = func() (p [20]fint) {
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// add calculates x + y.
// The ok flag is false if the sum exceeds maxFint.
func (x fint) add(y fint) (z fint, ok bool) {
	z = x + y
	if z < x || z > maxFint {
		return 0, false
	}
	return z, true
}

// mul calculates x * y.
// The ok flag is false if the product exceeds maxFint.
func (x fint) mul(y fint) (z fint, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 || lo > maxFint {
		return 0, false
	}
	return fint(lo), true
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// The ok flag is false if y is zero.
func (x fint) quoRem(y fint) (q, r fint, ok bool) {
	if y == 0 {
		return 0, 0, false
	}
	return x / y, x % y, true
}

// dist calculates |x - y|.
func (x fint) dist(y fint) fint {
	if x < y {
		return y - x
	}
	return x - y
}

// lsh calculates x * 10^shift.
// The ok flag is false if the result exceeds maxFint.
func (x fint) lsh(shift int) (z fint, ok bool) {
	switch {
	case x == 0 || shift <= 0:
		return x, true
	case shift >= len(pow10):
		return 0, false
	}
	return x.mul(pow10[shift])
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	if z, ok = x.lsh(shift); !ok {
		return 0, false
	}
	return z.add(fint(b))
}

func (x fint) isOdd() bool {
	return x&1 == 1
}

// cmpHalf compares the remainder r of a division by y with y / 2
// and returns -1, 0 or +1.
func cmpHalf(r, y fint) int {
	switch h := y - r; {
	case r < h:
		return -1
	case r > h:
		return 1
	}
	return 0
}

// rsh calculates x / 10^shift rounded with the given mode.
// The neg flag is the sign of the decimal x belongs to.
func (x fint) rsh(shift int, neg bool, mode RoundingMode) fint {
	switch {
	case x == 0 || shift <= 0:
		return x
	case shift >= len(pow10):
		// x < 10^19 <= 10^shift / 2
		if mode.roundUp(neg, false, -1, true) {
			return 1
		}
		return 0
	}
	y := pow10[shift]
	q, r := x/y, x%y
	if mode.roundUp(neg, q.isOdd(), cmpHalf(r, y), r != 0) {
		q++
	}
	return q
}

// prec returns the number of decimal digits in x.
// The coefficient 0 has no digits.
func (x fint) prec() int {
	if x == 0 {
		return 0
	}
	// 1233 / 4096 approximates log10(2)
	p := bits.Len64(uint64(x)) * 1233 >> 12
	if x >= pow10[p] {
		p++
	}
	return p
}

// ntz returns the number of trailing zeros in x.
// The coefficient 0 has no trailing zeros.
func (x fint) ntz() int {
	if x == 0 {
		return 0
	}
	n := 0
	for x%limbBase == 0 {
		x /= limbBase
		n += limbDigits
	}
	for x%10 == 0 {
		x /= 10
		n++
	}
	return n
}
