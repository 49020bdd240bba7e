package coerce_test

import (
	"math"
	"testing"

	"github.com/go-drift/controls/pkg/coerce"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"in range", 3, 0, 8, 3},
		{"below", -2, 0, 8, 0},
		{"above", 12, 0, 8, 8},
		{"at lower bound", 0, 0, 8, 0},
		{"at upper bound", 8, 0, 8, 8},
		{"swapped bounds", 12, 8, 0, 8},
		{"nan", math.NaN(), 0, 8, 0},
		{"positive infinity", math.Inf(1), 0, 8, 8},
		{"negative infinity", math.Inf(-1), 0, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerce.Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClampTotalAndIdempotent(t *testing.T) {
	inputs := []float64{
		math.NaN(), math.Inf(-1), -math.MaxFloat64, -1e9, -4.5, -0.0, 0, 1e-12,
		3.999, 4, 4.0001, 1e9, math.MaxFloat64, math.Inf(1),
	}
	const lo, hi = -4.0, 4.0
	for _, v := range inputs {
		got := coerce.Clamp(v, lo, hi)
		if got < lo || got > hi || got != got {
			t.Errorf("Clamp(%v) = %v, outside [%v, %v]", v, got, lo, hi)
		}
		if v >= lo && v <= hi && got != v {
			t.Errorf("Clamp(%v) = %v, want the input unchanged", v, got)
		}
		if again := coerce.Clamp(got, lo, hi); again != got {
			t.Errorf("Clamp not idempotent: %v -> %v -> %v", v, got, again)
		}
	}
}

func TestClampInts(t *testing.T) {
	for _, v := range []int{math.MinInt, -1, 0, 5, 10, 11, math.MaxInt} {
		got := coerce.Clamp(v, 0, 10)
		if got < 0 || got > 10 {
			t.Errorf("Clamp(%d) = %d", v, got)
		}
	}
}

func TestAtLeastAtMost(t *testing.T) {
	if got := coerce.AtLeast(4.0, 16); got != 16 {
		t.Errorf("AtLeast(4, 16) = %v", got)
	}
	if got := coerce.AtLeast(40.0, 16); got != 40 {
		t.Errorf("AtLeast(40, 16) = %v", got)
	}
	if got := coerce.AtLeast(math.NaN(), 16); got != 16 {
		t.Errorf("AtLeast(NaN, 16) = %v", got)
	}
	if got := coerce.AtMost(40.0, 16); got != 16 {
		t.Errorf("AtMost(40, 16) = %v", got)
	}
	if got := coerce.AtMost(-3.0, 16); got != -3 {
		t.Errorf("AtMost(-3, 16) = %v", got)
	}
}

func TestSymmetric(t *testing.T) {
	tests := []struct{ v, limit, want float64 }{
		{5, 4, 4},
		{-5, 4, -4},
		{2, 4, 2},
		{-5, -4, -4},
	}
	for _, tt := range tests {
		if got := coerce.Symmetric(tt.v, tt.limit); got != tt.want {
			t.Errorf("Symmetric(%v, %v) = %v, want %v", tt.v, tt.limit, got, tt.want)
		}
	}
}

func TestSymmetricIntegers(t *testing.T) {
	type thickness int8
	if got := coerce.Symmetric(thickness(9), 4); got != 4 {
		t.Errorf("Symmetric(9, 4) = %v, want 4", got)
	}
	if got := coerce.Symmetric(-9, -4); got != -4 {
		t.Errorf("Symmetric(-9, -4) = %v, want -4", got)
	}
}

func TestForce(t *testing.T) {
	type mode int
	const single, multiple mode = 0, 1
	if got := coerce.Force(multiple, single); got != single {
		t.Errorf("Force(multiple, single) = %v", got)
	}
	if got := coerce.Fixed(single)(multiple); got != single {
		t.Errorf("Fixed(single)(multiple) = %v", got)
	}
}

func TestCoalesce(t *testing.T) {
	if got := coerce.Coalesce("", "fallback"); got != "fallback" {
		t.Errorf("Coalesce(\"\") = %q", got)
	}
	if got := coerce.Coalesce("set", "fallback"); got != "set" {
		t.Errorf("Coalesce(\"set\") = %q", got)
	}
	if got := coerce.Coalesce(uint32(0), 0xFF00FF00); got != 0xFF00FF00 {
		t.Errorf("Coalesce(0) = %#x", got)
	}
}

func TestChain(t *testing.T) {
	fn := coerce.Chain(coerce.Range(0.0, 10.0), nil, func(v float64) float64 { return math.Round(v) })
	if got := fn(12.7); got != 10 {
		t.Errorf("chain(12.7) = %v", got)
	}
	if got := fn(3.4); got != 3 {
		t.Errorf("chain(3.4) = %v", got)
	}
}
