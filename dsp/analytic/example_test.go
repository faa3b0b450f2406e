package analytic_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-clean/dsp/analytic"
)

func ExampleEnvelope() {
	// A pure sinusoid has a constant envelope equal to its amplitude.
	const n = 64

	signal := make([]float64, n)
	for i := range signal {
		signal[i] = 0.5 * math.Sin(2*math.Pi*8*float64(i)/n)
	}

	env, err := analytic.Envelope(signal)
	if err != nil {
		panic(err)
	}

	fmt.Printf("envelope at 0: %.3f\n", env[0])
	fmt.Printf("envelope at %d: %.3f\n", n/2, env[n/2])

	// Output:
	// envelope at 0: 0.500
	// envelope at 32: 0.500
}

func ExamplePeak() {
	a := []complex128{complex(1, 0), complex(0, 2), complex(-0.5, 0)}

	idx, amp, phase := analytic.Peak(a)
	fmt.Printf("index %d, amplitude %.1f, phase %.2f\n", idx, amp, phase)

	// Output:
	// index 1, amplitude 2.0, phase 1.57
}
