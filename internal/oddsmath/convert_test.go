package oddsmath

import (
	"math"
	"testing"
)

func TestCentsToProbability(t *testing.T) {
	tests := []struct {
		name  string
		cents *float64
		want  *float64
	}{
		{"nil stays nil", nil, nil},
		{"mid price", ptr(35), ptr(0.35)},
		{"full price", ptr(100), ptr(1.0)},
		{"zero", ptr(0), ptr(0.0)},
		{"sub-cent rounds", ptr(33.333), ptr(0.33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CentsToProbability(tt.cents)
			if !floatPtrEq(got, tt.want) {
				t.Errorf("CentsToProbability(%v) = %v, want %v", deref(tt.cents), deref(got), deref(tt.want))
			}
		})
	}
}

func TestCentsToProbabilityIdempotentRounding(t *testing.T) {
	// Converting already-round cents twice must not drift
	v := 65.0
	first := CentsToProbability(&v)
	scaled := *first * 100
	second := CentsToProbability(&scaled)
	if *first != *second {
		t.Errorf("rounding drifted: %v vs %v", *first, *second)
	}
}

func TestAmericanToProbability(t *testing.T) {
	cases := []struct {
		name string
		odds int
		want float64
	}{
		{"favorite -150", -150, 0.6},
		{"underdog +200", 200, 1.0 / 3.0},
		{"even -100", -100, 0.5},
		{"even +100", 100, 0.5},
		{"heavy favorite -400", -400, 0.8},
		{"longshot +900", 900, 0.1},
		{"zero sentinel", 0, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := AmericanToProbability(tt.odds)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AmericanToProbability(%d) = %v, want %v", tt.odds, got, tt.want)
			}
		})
	}
}

func TestAmericanToProbabilityBounds(t *testing.T) {
	// Any non-zero odds must land strictly inside (0, 1)
	for _, odds := range []int{-100000, -110, -101, 101, 110, 100000} {
		p := AmericanToProbability(odds)
		if p <= 0 || p >= 1 {
			t.Errorf("AmericanToProbability(%d) = %v, out of (0,1)", odds, p)
		}
	}
}

func TestComplement(t *testing.T) {
	if got := Complement(nil); got != nil {
		t.Errorf("Complement(nil) = %v, want nil", *got)
	}

	p := 0.35
	got := Complement(&p)
	if got == nil || *got != 0.65 {
		t.Errorf("Complement(0.35) = %v, want 0.65", deref(got))
	}

	// Complement of a complement round-trips at two decimals
	back := Complement(got)
	if back == nil || *back != 0.35 {
		t.Errorf("double complement = %v, want 0.35", deref(back))
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.345, 0.35},
		{0.344999, 0.34},
		{1.005, 1.0}, // binary representation of 1.005 is just below
		{0, 0},
	}
	for _, tt := range cases {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func ptr(v float64) *float64 { return &v }

func deref(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
