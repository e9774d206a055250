package decimal

import (
	"database/sql"
	"database/sql/driver"
	"testing"
)

func TestDecimal_SQLInterfaces(t *testing.T) {
	var d any = Decimal{}
	if _, ok := d.(driver.Valuer); !ok {
		t.Errorf("%T does not implement driver.Valuer", d)
	}
	d = &Decimal{}
	if _, ok := d.(sql.Scanner); !ok {
		t.Errorf("%T does not implement sql.Scanner", d)
	}
	var n any = NullDecimal{}
	if _, ok := n.(driver.Valuer); !ok {
		t.Errorf("%T does not implement driver.Valuer", n)
	}
	n = &NullDecimal{}
	if _, ok := n.(sql.Scanner); !ok {
		t.Errorf("%T does not implement sql.Scanner", n)
	}
}

func TestDecimal_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"-12.340", "-12.340"},
			{[]byte("1e-3"), "0.001"},
			{int64(-42), "-42"},
			{"123456789012345678901234567890.5", "123456789012345678901234567890.5"},
		}
		for _, tt := range tests {
			var got Decimal
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 1.5, int32(1), "1.2.3", []byte("x")}
		for _, value := range tests {
			var d Decimal
			if err := d.Scan(value); err == nil {
				t.Errorf("Scan(%v) did not fail", value)
			}
		}
	})
}

func TestDecimal_Value(t *testing.T) {
	d := MustParse("-0.050")
	got, err := d.Value()
	if err != nil {
		t.Fatalf("%q.Value() failed: %v", d, err)
	}
	if got != "-0.050" {
		t.Errorf("%q.Value() = %v, want %q", d, got, "-0.050")
	}
}

func TestNullDecimal_Scan(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		n := NullDecimal{Decimal: One, Valid: true}
		if err := n.Scan(nil); err != nil {
			t.Fatalf("Scan(nil) failed: %v", err)
		}
		if n.Valid || !n.Decimal.IsZero() {
			t.Errorf("Scan(nil) = %+v, want null", n)
		}
		got, err := n.Value()
		if err != nil || got != nil {
			t.Errorf("Value() = (%v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		var n NullDecimal
		if err := n.Scan("3.14"); err != nil {
			t.Fatalf("Scan(%q) failed: %v", "3.14", err)
		}
		if !n.Valid || n.Decimal.String() != "3.14" {
			t.Errorf("Scan(%q) = %+v", "3.14", n)
		}
		got, err := n.Value()
		if err != nil || got != "3.14" {
			t.Errorf("Value() = (%v, %v), want (%q, nil)", got, err, "3.14")
		}
	})

	t.Run("error", func(t *testing.T) {
		n := NullDecimal{Decimal: One, Valid: true}
		if err := n.Scan("abc"); err == nil {
			t.Fatalf("Scan(%q) did not fail", "abc")
		}
		if n.Valid {
			t.Errorf("Scan(%q) left %+v valid", "abc", n)
		}
	})
}
