package decimal

import "strings"

// nat (NATural number) is an unsigned integer of arbitrary length.
// It is stored as a little-endian sequence of base 10^9 limbs,
// so nat{5, 1} represents 1_000_000_005.
// A normalized nat has no high zero limbs; the zero value is nil.
// Functions in this file never modify their arguments.
type nat []uint32

const (
	limbDigits = 9             // number of decimal digits in a limb
	limbBase   = 1_000_000_000 // 10^limbDigits
)

// newNat converts a fint to a normalized nat.
func newNat(f fint) nat {
	var z nat
	for f > 0 {
		z = append(z, uint32(f%limbBase))
		f /= limbBase
	}
	return z
}

// norm removes high zero limbs.
func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x nat) isZero() bool {
	return len(x) == 0
}

func (x nat) isOdd() bool {
	return len(x) > 0 && x[0]&1 != 0
}

// fint converts x to a fint.
// The ok flag is false if x has more than 19 digits.
func (x nat) fint() (f fint, ok bool) {
	if len(x) > 3 {
		return 0, false
	}
	for i := len(x) - 1; i >= 0; i-- {
		f, ok = f.mul(limbBase)
		if !ok {
			return 0, false
		}
		f, ok = f.add(fint(x[i]))
		if !ok {
			return 0, false
		}
	}
	return f, true
}

// cmp compares x and y and returns -1, 0 or +1.
func (x nat) cmp(y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		carry = 0
		if s >= limbBase {
			s -= limbBase
			carry = 1
		}
		z[i] = s
	}
	z[len(x)] = carry
	return z.norm()
}

// sub calculates x - y.
// If x < y, the result is unpredictable.
func (x nat) sub(y nat) nat {
	z := make(nat, len(x))
	var borrow int64
	for i := range x {
		d := int64(x[i]) + borrow
		if i < len(y) {
			d -= int64(y[i])
		}
		borrow = 0
		if d < 0 {
			d += limbBase
			borrow = -1
		}
		z[i] = uint32(d)
	}
	return z.norm()
}

// dist calculates |x - y|.
func (x nat) dist(y nat) nat {
	if x.cmp(y) >= 0 {
		return x.sub(y)
	}
	return y.sub(x)
}

// inc calculates x + 1.
func (x nat) inc() nat {
	return x.add(nat{1})
}

// mulLimb calculates x * m, where m < limbBase.
func (x nat) mulLimb(m uint32) nat {
	if m == 0 || len(x) == 0 {
		return nil
	}
	z := make(nat, len(x)+1)
	var carry uint64
	for i := range x {
		p := uint64(x[i])*uint64(m) + carry
		z[i] = uint32(p % limbBase)
		carry = p / limbBase
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// mul calculates x * y using long multiplication.
func (x nat) mul(y nat) nat {
	switch {
	case len(x) == 0 || len(y) == 0:
		return nil
	case len(y) == 1:
		return x.mulLimb(y[0])
	case len(x) == 1:
		return y.mulLimb(x[0])
	}
	z := make(nat, len(x)+len(y))
	for i := range x {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := range y {
			p := uint64(x[i])*uint64(y[j]) + uint64(z[i+j]) + carry
			z[i+j] = uint32(p % limbBase)
			carry = p / limbBase
		}
		z[i+len(y)] = uint32(carry)
	}
	return z.norm()
}

// lsh (Left Shift) calculates x * 10^shift.
func (x nat) lsh(shift int) nat {
	if shift <= 0 || len(x) == 0 {
		return x
	}
	limbs, digits := shift/limbDigits, shift%limbDigits
	z := make(nat, limbs+len(x))
	copy(z[limbs:], x)
	if digits > 0 {
		z = z.mulLimb(uint32(pow10[digits]))
	}
	return z
}

// quoRemLimb calculates q = ⌊x / m⌋, r = x - m * q, where 0 < m < limbBase.
func (x nat) quoRemLimb(m uint32) (q nat, r uint32) {
	q = make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		n := rem*limbBase + uint64(x[i])
		q[i] = uint32(n / uint64(m))
		rem = n % uint64(m)
	}
	return q.norm(), uint32(rem)
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// The ok flag is false if y is 0.
//
// The general case is Knuth's algorithm D (TAOCP vol. 2, 4.3.1)
// in base 10^9.
func (x nat) quoRem(y nat) (q, r nat, ok bool) {
	// Special cases
	switch {
	case len(y) == 0:
		return nil, nil, false
	case x.cmp(y) < 0:
		return nil, x, true
	case len(y) == 1:
		q, rem := x.quoRemLimb(y[0])
		return q, newNat(fint(rem)), true
	}

	// Normalization: the top limb of v must be at least limbBase / 2.
	n, m := len(y), len(x)-len(y)
	f := uint32(limbBase / (uint64(y[n-1]) + 1))
	u := make(nat, len(x)+1)
	copy(u, x)
	if f > 1 {
		u = scaleLimbs(u, f)
	}
	v := y
	if f > 1 {
		v = scaleLimbs(append(nat(nil), y...), f)[:n]
	}
	vtop, vnext := uint64(v[n-1]), uint64(v[n-2])

	q = make(nat, m+1)
	for j := m; j >= 0; j-- {
		// Estimation of the quotient limb
		num := uint64(u[j+n])*limbBase + uint64(u[j+n-1])
		qhat, rhat := num/vtop, num%vtop
		for qhat >= limbBase || qhat*vnext > rhat*limbBase+uint64(u[j+n-2]) {
			qhat--
			rhat += vtop
			if rhat >= limbBase {
				break
			}
		}

		// Multiplication and subtraction
		var borrow int64
		var carry uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(v[i]) + carry
			carry = p / limbBase
			d := int64(u[i+j]) - int64(p%limbBase) + borrow
			borrow = 0
			if d < 0 {
				d += limbBase
				borrow = -1
			}
			u[i+j] = uint32(d)
		}
		top := int64(u[j+n]) - int64(carry) + borrow

		// Adding back, which is rare
		if top < 0 {
			qhat--
			var c uint32
			for i := 0; i < n; i++ {
				s := u[i+j] + v[i] + c
				c = 0
				if s >= limbBase {
					s -= limbBase
					c = 1
				}
				u[i+j] = s
			}
			top += int64(c)
		}
		u[j+n] = uint32(top)
		q[j] = uint32(qhat)
	}

	// Denormalization of the remainder
	r = u[:n].norm()
	if f > 1 {
		r, _ = r.quoRemLimb(f)
	}
	return q.norm(), r, true
}

// scaleLimbs multiplies x by f in place, where x has a spare high limb.
func scaleLimbs(x nat, f uint32) nat {
	var carry uint64
	for i := range x {
		p := uint64(x[i])*uint64(f) + carry
		x[i] = uint32(p % limbBase)
		carry = p / limbBase
	}
	return x
}

// pow10Nat returns 10^power.
func pow10Nat(power int) nat {
	return nat{1}.lsh(power)
}

// rsh (Right Shift) calculates x / 10^shift and rounds the result
// using the given rounding mode.
// The neg flag is the sign of the decimal x belongs to.
func (x nat) rsh(shift int, neg bool, mode RoundingMode) nat {
	// Special cases
	switch {
	case len(x) == 0:
		return nil
	case shift <= 0:
		return x
	case shift > x.prec():
		// Every digit is discarded and x < 10^shift / 2.
		if mode.roundUp(neg, false, -1, true) {
			return nat{1}
		}
		return nil
	}
	// General case
	y := pow10Nat(shift)
	z, r, _ := x.quoRem(y)
	if len(r) == 0 {
		return z
	}
	if mode.roundUp(neg, z.isOdd(), r.add(r).cmp(y), true) {
		z = z.inc()
	}
	return z
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x nat) prec() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*limbDigits + fint(x[len(x)-1]).prec()
}

// ntz returns number of trailing zeros in x.
// ntz assumes that 0 has no trailing zeros.
func (x nat) ntz() int {
	z := 0
	for _, l := range x {
		if l != 0 {
			return z + fint(l).ntz()
		}
		z += limbDigits
	}
	return 0
}

// string returns decimal digits of x, "0" for zero.
func (x nat) string() string {
	if len(x) == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(x) * limbDigits)
	buf := [limbDigits]byte{}
	for i := len(x) - 1; i >= 0; i-- {
		l := x[i]
		for k := limbDigits - 1; k >= 0; k-- {
			buf[k] = byte(l%10) + '0'
			l /= 10
		}
		if i == len(x)-1 {
			// Leading zeros of the top limb
			k := 0
			for k < limbDigits-1 && buf[k] == '0' {
				k++
			}
			b.Write(buf[k:])
		} else {
			b.Write(buf[:])
		}
	}
	return b.String()
}

// natFromDigits converts a string of decimal digits to a nat.
// The string must consist of ASCII digits only.
func natFromDigits(digits string) nat {
	z := make(nat, 0, len(digits)/limbDigits+1)
	for end := len(digits); end > 0; end -= limbDigits {
		start := end - limbDigits
		if start < 0 {
			start = 0
		}
		var l uint32
		for i := start; i < end; i++ {
			l = l*10 + uint32(digits[i]-'0')
		}
		z = append(z, l)
	}
	return z.norm()
}
