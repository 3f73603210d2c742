package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		value, min, max, want float64
	}{
		{value: 0.5, min: 0, max: 1, want: 0.5},
		{value: -2, min: 0, max: 1, want: 0},
		{value: 3, min: 0, max: 1, want: 1},
		{value: 0.5, min: 1, max: 0, want: 0.5}, // swapped bounds
	} {
		if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Fatal("expected near equality")
	}
	if NearlyEqual(1, 1.1, 1e-12) {
		t.Fatal("expected inequality")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zero equality with default epsilon")
	}
}

func TestPitchToHz(t *testing.T) {
	if got := PitchToHz(0); math.Abs(got-FreqC4) > 1e-9 {
		t.Fatalf("PitchToHz(0) = %v, want %v", got, FreqC4)
	}
	if got := PitchToHz(12); math.Abs(got-2*FreqC4) > 1e-9 {
		t.Fatalf("PitchToHz(12) = %v, want %v", got, 2*FreqC4)
	}
	if got := PitchToHz(-12); math.Abs(got-FreqC4/2) > 1e-9 {
		t.Fatalf("PitchToHz(-12) = %v, want %v", got, FreqC4/2)
	}
	// A4 is nine semitones above C4.
	if got := PitchToHz(9); math.Abs(got-440) > 0.01 {
		t.Fatalf("PitchToHz(9) = %v, want 440", got)
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if got := LinearPowerToDB(1); got != 0 {
		t.Fatalf("LinearPowerToDB(1) = %v, want 0", got)
	}
	if got := LinearPowerToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearPowerToDB(0) = %v, want -Inf", got)
	}
	if got := LinearPowerToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearPowerToDB(-1) = %v, want NaN", got)
	}
	if got := LinearPowerToDB(10); math.Abs(got-10) > 1e-12 {
		t.Fatalf("LinearPowerToDB(10) = %v, want 10", got)
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-40); got != 0 {
		t.Fatalf("FlushDenormals(1e-40) = %v, want 0", got)
	}
	if got := FlushDenormals(0.5); got != 0.5 {
		t.Fatalf("FlushDenormals(0.5) = %v, want 0.5", got)
	}
}
