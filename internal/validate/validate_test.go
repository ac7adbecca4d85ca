package validate

import (
	"math"
	"strings"
	"testing"
)

func TestID(t *testing.T) {
	for _, ok := range []string{"1", "MLA123", "a_b-c", " 42 "} {
		if _, valid := ID(ok); !valid {
			t.Errorf("ID(%q) must pass", ok)
		}
	}
	for _, bad := range []string{"", "   ", "'or1=1", "a b", "../etc", strings.Repeat("x", 65)} {
		if _, valid := ID(bad); valid {
			t.Errorf("ID(%q) must fail", bad)
		}
	}
	if id, _ := ID(" 42 "); id != "42" {
		t.Errorf("ID must trim, got %q", id)
	}
}

func TestQuery(t *testing.T) {
	if got := Query("  tv  "); got != "tv" {
		t.Errorf("trim: got %q", got)
	}
	if got := Query(strings.Repeat("a", 80)); len(got) != 50 {
		t.Errorf("clamp: got len %d", len(got))
	}
	if got := Query("   "); got != "" {
		t.Errorf("whitespace only: got %q", got)
	}
}

func TestQuantity(t *testing.T) {
	cases := []struct {
		in    any
		want  int
		valid bool
	}{
		{float64(3), 3, true}, // JSON numbers arrive as float64
		{float64(0), 0, true},
		{float64(1.5), 0, false},
		{float64(-1), 0, false},
		{2, 2, true},
		{-2, 0, false},
		{" 4 ", 4, true},
		{"abc", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, c := range cases {
		got, valid := Quantity(c.in)
		if valid != c.valid || got != c.want {
			t.Errorf("Quantity(%v) = %d, %v; want %d, %v", c.in, got, valid, c.want, c.valid)
		}
	}
}

func TestPrice(t *testing.T) {
	for _, ok := range []float64{0.01, 999999} {
		if !Price(ok) {
			t.Errorf("Price(%v) must pass", ok)
		}
	}
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if Price(bad) {
			t.Errorf("Price(%v) must fail", bad)
		}
	}
}
