package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff failed: %v", err)
	}
	if d != 1 {
		t.Errorf("got %v, want 1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestMaxImagAbs(t *testing.T) {
	got := MaxImagAbs([]complex128{complex(1, -0.5), complex(2, 0.25)})
	if got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}

	if MaxImagAbs(nil) != 0 {
		t.Error("empty slice should yield 0")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(4, 2)
	want := []float64{0, 0, 1, 0}
	for i := range want {
		if imp[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, imp[i], want[i])
		}
	}

	// Out-of-range positions produce silence.
	for _, v := range Impulse(4, 7) {
		if v != 0 {
			t.Fatal("out-of-range impulse should be all zeros")
		}
	}
}

func TestRealParts(t *testing.T) {
	got := RealParts([]complex128{complex(1, 9), complex(-2, 3)})
	RequireSliceNearlyEqual(t, got, []float64{1, -2}, 0)
}
