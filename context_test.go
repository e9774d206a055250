package decimal

import (
	"errors"
	"strings"
	"testing"
)

func TestContext_Align(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			maxPrec      int
			d, e         string
			wantD, wantE string
		}{
			{0, "123.45", "1", "123.45", "1.00"},
			{0, "1", "123.45", "1.00", "123.45"},
			{0, "1e3", "0.5", "1000.0", "0.5"},
			{0, "0", "0.001", "0.000", "0.001"},
			{5, "123.45", "1", "123.45", "1.00"},
			{5, "0", "0.00001", "0.00000", "0.00001"},
		}
		for _, tt := range tests {
			c := Context{MaxPrec: tt.maxPrec}
			d, e := MustParse(tt.d), MustParse(tt.e)
			gotD, gotE, err := c.Align(d, e)
			if err != nil {
				t.Errorf("Align(%q, %q) failed: %v", d, e, err)
				continue
			}
			if gotD.String() != tt.wantD || gotE.String() != tt.wantE {
				t.Errorf("Align(%q, %q) = (%q, %q), want (%q, %q)", d, e, gotD, gotE, tt.wantD, tt.wantE)
			}
			if gotD.Scale() != gotE.Scale() {
				t.Errorf("Align(%q, %q) returned scales %v and %v", d, e, gotD.Scale(), gotE.Scale())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			maxPrec int
			d, e    string
		}{
			{5, "123.45", "1000"},
			{5, "0.000001", "1"},
			{5, "1e999999999", "0.1"},
		}
		for _, tt := range tests {
			c := Context{MaxPrec: tt.maxPrec}
			d, e := MustParse(tt.d), MustParse(tt.e)
			_, _, err := c.Align(d, e)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("Align(%q, %q) failed with %v, want %v", d, e, err, ErrOverflow)
			}
		}
	})
}

func TestContext_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			c    Context
			s    string
			want string
		}{
			{Context{}, "1.5", "1.5"},
			{Context{TrimSpace: true}, "  1.5 ", "1.5"},
			{Context{TrimSpace: true}, "\t-2\n", "-2"},
			{Context{MaxPrec: 3}, "0.00123", "0.00123"},
			{Context{MaxPrec: 3}, "1.23e10", "12300000000"},
		}
		for _, tt := range tests {
			got, err := tt.c.Parse(tt.s)
			if err != nil {
				t.Errorf("%+v.Parse(%q) failed: %v", tt.c, tt.s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%+v.Parse(%q) = %q, want %q", tt.c, tt.s, got, tt.want)
			}
		}
	})

	t.Run("malformed", func(t *testing.T) {
		tests := []struct {
			c       Context
			s       string
			wantPos int
		}{
			{Context{}, " 1", 0},
			{Context{}, "1 ", 1},
			{Context{TrimSpace: true}, "  1.x ", 4},
			{Context{TrimSpace: true}, "   ", 3},
			{Context{TrimSpace: true}, " 1 2 ", 2},
		}
		for _, tt := range tests {
			_, err := tt.c.Parse(tt.s)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("%+v.Parse(%q) failed with %v, want %T", tt.c, tt.s, err, perr)
				continue
			}
			if perr.Pos != tt.wantPos {
				t.Errorf("%+v.Parse(%q) failed at position %v, want %v", tt.c, tt.s, perr.Pos, tt.wantPos)
			}
			if perr.Input != tt.s {
				t.Errorf("%+v.Parse(%q) reported input %q", tt.c, tt.s, perr.Input)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("%+v.Parse(%q) failed with %v, want %v", tt.c, tt.s, err, ErrMalformed)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		c := Context{MaxPrec: 3}
		_, err := c.Parse("1234")
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("%+v.Parse(%q) failed with %v, want %v", c, "1234", err, ErrOverflow)
		}
	})
}

func TestContext_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e, wantAdd, wantSub string
		}{
			{"99999", "0", "99999", "99999"},
			{"99998", "1", "99999", "99997"},
			{"1.2", "3.45", "4.65", "-2.25"},
			{"-50000", "49999", "-1", "-99999"},
		}
		c := Context{MaxPrec: 5}
		for _, tt := range tests {
			d, e := MustParse(tt.d), MustParse(tt.e)
			got, err := c.Add(d, e)
			if err != nil || got.String() != tt.wantAdd {
				t.Errorf("Add(%q, %q) = (%q, %v), want %q", d, e, got, err, tt.wantAdd)
			}
			got, err = c.Sub(d, e)
			if err != nil || got.String() != tt.wantSub {
				t.Errorf("Sub(%q, %q) = (%q, %v), want %q", d, e, got, err, tt.wantSub)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := []struct {
			d, e string
		}{
			{"99999", "1"},
			{"-99999", "-1"},
			{"1", "0.00001"},
		}
		c := Context{MaxPrec: 5}
		for _, tt := range tests {
			d, e := MustParse(tt.d), MustParse(tt.e)
			_, err := c.Add(d, e)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("Add(%q, %q) failed with %v, want %v", d, e, err, ErrOverflow)
			}
		}
		_, err := c.Sub(MustParse("-99999"), One)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("Sub(-99999, 1) failed with %v, want %v", err, ErrOverflow)
		}
	})
}

func TestContext_Mul(t *testing.T) {
	c := Context{MaxPrec: 5}

	t.Run("success", func(t *testing.T) {
		got, err := c.Mul(MustParse("1234.5"), Two)
		if err != nil {
			t.Fatalf("Mul(1234.5, 2) failed: %v", err)
		}
		if got.String() != "2469.0" {
			t.Errorf("Mul(1234.5, 2) = %q, want %q", got, "2469.0")
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := c.Mul(MustParse("99999"), MustParse("99999"))
		if !errors.Is(err, ErrOverflow) {
			t.Fatalf("Mul(99999, 99999) failed with %v, want %v", err, ErrOverflow)
		}
		var oerr *OverflowError
		if !errors.As(err, &oerr) {
			t.Fatalf("Mul(99999, 99999) failed with %T, want %T", err, oerr)
		}
		if oerr.Prec != 9 || oerr.MaxPrec != 5 {
			t.Errorf("Mul(99999, 99999) failed with %+v, want Prec 9 and MaxPrec 5", oerr)
		}
	})

	t.Run("long operands", func(t *testing.T) {
		d := MustParse(strings.Repeat("7", 1000))
		_, err := c.Mul(d, d)
		var oerr *OverflowError
		if !errors.As(err, &oerr) {
			t.Fatalf("Mul(7...7, 7...7) failed with %v, want %T", err, oerr)
		}
		if oerr.Prec != 1999 {
			t.Errorf("Mul(7...7, 7...7) failed with %+v, want Prec 1999", oerr)
		}

		got, err := c.Mul(d, Zero)
		if err != nil || !got.IsZero() {
			t.Errorf("Mul(7...7, 0) = (%q, %v), want (0, nil)", got, err)
		}
	})

	t.Run("scale range", func(t *testing.T) {
		tests := []struct {
			d, e Decimal
		}{
			{New(1, 1<<29), New(1, 1<<29)},
			{New(1, -(1 << 29)), New(1, -(1 << 29))},
			{New(0, MaxScale), New(0, 1)},
		}
		for _, tt := range tests {
			_, err := Context{}.Mul(tt.d, tt.e)
			if !errors.Is(err, ErrScaleRange) {
				t.Errorf("Mul(%v, %v) failed with %v, want %v", tt.d.Scale(), tt.e.Scale(), err, ErrScaleRange)
			}
		}
	})

	t.Run("unbounded", func(t *testing.T) {
		got, err := Context{}.Mul(MustParse("99999"), MustParse("99999"))
		if err != nil {
			t.Fatalf("Mul(99999, 99999) failed: %v", err)
		}
		if got.String() != "9999800001" {
			t.Errorf("Mul(99999, 99999) = %q, want %q", got, "9999800001")
		}
	})
}

func TestContext_Quo(t *testing.T) {
	c := Context{MaxPrec: 3}

	got, err := c.Quo(One, MustParse("3"), 3, HalfEven)
	if err != nil {
		t.Fatalf("Quo(1, 3, 3) failed: %v", err)
	}
	if got.String() != "0.333" {
		t.Errorf("Quo(1, 3, 3) = %q, want %q", got, "0.333")
	}

	_, err = c.Quo(Two, MustParse("3"), 3, HalfEven)
	if err != nil {
		t.Errorf("Quo(2, 3, 3) failed: %v", err)
	}

	_, err = c.Quo(Ten, MustParse("3"), 3, HalfEven)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Quo(10, 3, 3) failed with %v, want %v", err, ErrOverflow)
	}

	_, err = c.Quo(One, Zero, 0, HalfEven)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Quo(1, 0, 0) failed with %v, want %v", err, ErrDivisionByZero)
	}

	for _, scale := range []int{MaxScale + 1, -MaxScale - 1} {
		_, err = c.Quo(One, Two, scale, HalfEven)
		if !errors.Is(err, ErrScaleRange) {
			t.Errorf("Quo(1, 2, %v) failed with %v, want %v", scale, err, ErrScaleRange)
		}
	}
}

func TestContext_QuoRem(t *testing.T) {
	c := Context{MaxPrec: 3}

	q, r, err := c.QuoRem(MustParse("7.5"), Two)
	if err != nil {
		t.Fatalf("QuoRem(7.5, 2) failed: %v", err)
	}
	if q.String() != "3" || r.String() != "1.5" {
		t.Errorf("QuoRem(7.5, 2) = (%q, %q), want (%q, %q)", q, r, "3", "1.5")
	}

	_, _, err = c.QuoRem(MustParse("10000"), Ten)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("QuoRem(10000, 10) failed with %v, want %v", err, ErrOverflow)
	}

	_, _, err = c.QuoRem(One, Zero)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("QuoRem(1, 0) failed with %v, want %v", err, ErrDivisionByZero)
	}
}

func TestContext_Pow(t *testing.T) {
	c := Context{MaxPrec: 5}

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			exp  int
			want string
		}{
			{"10", 4, "10000"},
			{"2", 16, "65536"},
			{"1.1", 4, "1.4641"},
			{"99999", 0, "1"},
			{"1", 1_000_000, "1"},
		}
		for _, tt := range tests {
			d := MustParse(tt.d)
			got, err := c.Pow(d, tt.exp)
			if err != nil {
				t.Errorf("Pow(%q, %v) failed: %v", d, tt.exp, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Pow(%q, %v) = %q, want %q", d, tt.exp, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			d       string
			exp     int
			wantErr error
		}{
			{"10", 5, ErrOverflow},
			{"2", 17, ErrOverflow},
			{"99999", 1 << 40, ErrOverflow},
			{"2", -1, ErrNegativeExponent},
			{"0.01", 1 << 30, ErrScaleRange},
		}
		for _, tt := range tests {
			d := MustParse(tt.d)
			_, err := c.Pow(d, tt.exp)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Pow(%q, %v) failed with %v, want %v", d, tt.exp, err, tt.wantErr)
			}
		}
	})
}

func TestContext_Rescale(t *testing.T) {
	c := Context{MaxPrec: 5}

	got, err := c.Rescale(MustParse("123.456"), 2, HalfUp)
	if err != nil {
		t.Fatalf("Rescale(123.456, 2) failed: %v", err)
	}
	if got.String() != "123.46" {
		t.Errorf("Rescale(123.456, 2) = %q, want %q", got, "123.46")
	}

	tests := []struct {
		d     string
		scale int
	}{
		{"123.45", 3},
		{"99999.5", 0},
		{"1e999999999", 0},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		_, err := c.Rescale(d, tt.scale, HalfUp)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("Rescale(%q, %v) failed with %v, want %v", d, tt.scale, err, ErrOverflow)
		}
	}

	for _, scale := range []int{MaxScale + 1, -MaxScale - 1} {
		_, err := Context{}.Rescale(One, scale, HalfUp)
		if !errors.Is(err, ErrScaleRange) {
			t.Errorf("Rescale(1, %v) failed with %v, want %v", scale, err, ErrScaleRange)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ParseError{Input: "1x", Pos: 1, Msg: "invalid character 'x'"}, `parsing "1x" at position 1: invalid character 'x'`},
		{&OverflowError{Prec: 10, MaxPrec: 5}, "result has at least 10 digit(s), but at most 5 digit(s) are allowed: decimal overflow"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	_, err := Parse("1x")
	if got, want := err.Error(), `parsing "1x" at position 1: invalid character 'x'`; got != want {
		t.Errorf("Parse(\"1x\") failed with %q, want %q", got, want)
	}
}
