package analytic

import (
	"errors"
	"math"
	"testing"
)

func TestSignalEmpty(t *testing.T) {
	_, err := Signal(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Signal(nil): got %v, want ErrEmptyInput", err)
	}
}

func TestSignalRealPartIdentity(t *testing.T) {
	for _, n := range []int{16, 63, 128, 255} {
		signal := make([]float64, n)
		for i := range signal {
			signal[i] = math.Cos(2*math.Pi*5*float64(i)/float64(n)) * math.Exp(-float64(i)/float64(n))
		}

		a, err := Signal(signal)
		if err != nil {
			t.Fatalf("n=%d: Signal failed: %v", n, err)
		}

		for i := range signal {
			if math.Abs(real(a[i])-signal[i]) > 1e-9 {
				t.Fatalf("n=%d index %d: real part %v, want %v", n, i, real(a[i]), signal[i])
			}
		}
	}
}

func TestEnvelopeOfModulatedCosine(t *testing.T) {
	// A cosine carrier under a slow raised-cosine envelope. Away from the
	// edges the analytic envelope should follow the modulation envelope.
	const n = 512

	signal := make([]float64, n)
	envelope := make([]float64, n)
	for i := range signal {
		envelope[i] = 1 + 0.5*math.Cos(2*math.Pi*2*float64(i)/float64(n))
		signal[i] = envelope[i] * math.Cos(2*math.Pi*64*float64(i)/float64(n))
	}

	got, err := Envelope(signal)
	if err != nil {
		t.Fatalf("Envelope failed: %v", err)
	}

	for i := n / 8; i < 7*n/8; i++ {
		if math.Abs(got[i]-envelope[i]) > 0.02 {
			t.Fatalf("index %d: envelope %v, want %v", i, got[i], envelope[i])
		}
	}
}

func TestEnvelopeQuadratureSine(t *testing.T) {
	// For a pure sinusoid the envelope is the constant amplitude.
	const n = 256
	const amp = 0.75

	signal := make([]float64, n)
	for i := range signal {
		signal[i] = amp * math.Sin(2*math.Pi*16*float64(i)/float64(n))
	}

	env, err := Envelope(signal)
	if err != nil {
		t.Fatalf("Envelope failed: %v", err)
	}

	for i, v := range env {
		if math.Abs(v-amp) > 1e-9 {
			t.Fatalf("index %d: envelope %v, want %v", i, v, amp)
		}
	}
}

func TestPeak(t *testing.T) {
	a := []complex128{complex(1, 0), complex(0, -3), complex(2, 0)}

	idx, amp, phase := Peak(a)
	if idx != 1 {
		t.Errorf("index: got %d, want 1", idx)
	}
	if math.Abs(amp-3) > 1e-12 {
		t.Errorf("amplitude: got %v, want 3", amp)
	}
	if math.Abs(phase-(-math.Pi/2)) > 1e-12 {
		t.Errorf("phase: got %v, want %v", phase, -math.Pi/2)
	}
}

func TestPeakEmpty(t *testing.T) {
	idx, amp, phase := Peak(nil)
	if idx != -1 || amp != 0 || phase != 0 {
		t.Errorf("Peak(nil): got (%d, %v, %v), want (-1, 0, 0)", idx, amp, phase)
	}
}

func TestPeakFirstOfTies(t *testing.T) {
	a := []complex128{complex(2, 0), complex(-2, 0)}
	idx, _, _ := Peak(a)
	if idx != 0 {
		t.Errorf("tie should keep the first index: got %d", idx)
	}
}
