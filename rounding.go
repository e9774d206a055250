package decimal

import "fmt"

// RoundingMode specifies how a result is rounded when its exact value has
// more digits after the decimal point than the requested scale.
// The zero value is [HalfEven].
type RoundingMode uint8

const (
	HalfEven RoundingMode = iota // to nearest, ties to even
	HalfUp                       // to nearest, ties away from zero
	Truncate                     // towards zero
	Ceiling                      // towards positive infinity
	Floor                        // towards negative infinity
)

var roundingNames = [...]string{
	HalfEven: "half-even",
	HalfUp:   "half-up",
	Truncate: "truncate",
	Ceiling:  "ceiling",
	Floor:    "floor",
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// ParseRoundingMode converts a name such as "half-up" or "floor"
// to a rounding mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range roundingNames {
		if s == name {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown rounding mode %q", s)
}

// MarshalText implements [encoding.TextMarshaler] interface.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if int(m) >= len(roundingNames) {
		return nil, fmt.Errorf("unknown rounding mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}

// roundUp reports whether a truncated coefficient must be incremented by one
// unit in the last place.
//
//   - neg is the sign of the exact result;
//   - odd is the parity of the truncated coefficient;
//   - half is -1, 0 or +1 depending on whether the discarded part is less than,
//     equal to, or greater than half a unit;
//   - inexact is true if the discarded part is not zero.
func (m RoundingMode) roundUp(neg, odd bool, half int, inexact bool) bool {
	if !inexact {
		return false
	}
	switch m {
	case HalfUp:
		return half >= 0
	case Truncate:
		return false
	case Ceiling:
		return !neg
	case Floor:
		return neg
	default:
		return half > 0 || (half == 0 && odd)
	}
}
