package interp

import "testing"

func TestLinear2(t *testing.T) {
	if got := Linear2(2, 4, 0.25); got != 2.5 {
		t.Fatalf("Linear2(2, 4, 0.25) = %v, want 2.5", got)
	}
	if got := Linear2(1, 1, 0.7); got != 1 {
		t.Fatalf("Linear2 on constant = %v, want 1", got)
	}
}

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		got := Hermite4(tc.t, xm1, x0, x1, x2)
		if diff := got - tc.w; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestHermite4InterpolatesEndpoints(t *testing.T) {
	xm1, x0, x1, x2 := 0.3, -0.7, 0.9, 0.1
	if got := Hermite4(0, xm1, x0, x1, x2); got != x0 {
		t.Fatalf("t=0: got %v want %v", got, x0)
	}
	got := Hermite4(1, xm1, x0, x1, x2)
	if diff := got - x1; diff < -1e-12 || diff > 1e-12 {
		t.Fatalf("t=1: got %v want %v", got, x1)
	}
}
