package spectral

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// Errors returned by transform functions.
var (
	ErrEmptyInput      = errors.New("spectral: input must not be empty")
	ErrLengthMismatch  = errors.New("spectral: input length does not match transform length")
	ErrInvalidLength   = errors.New("spectral: length must be > 0")
	ErrInvalidInterval = errors.New("spectral: sample interval must be > 0")
)

// Transform wraps an FFT plan for a fixed signal length.
//
// A Transform is cheap to reuse across calls of the same length; the plan is
// created once. It is not safe for concurrent use because the backend plan
// carries scratch state.
type Transform struct {
	n    int
	plan *algofft.Plan[complex128]
}

// NewTransform creates a transform for signals of the given length.
// Arbitrary lengths are supported, including odd and prime sizes.
func NewTransform(n int) (*Transform, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	return &Transform{n: n, plan: plan}, nil
}

// Len returns the transform length.
func (t *Transform) Len() int {
	return t.n
}

// Forward computes the complex spectrum of a real time-domain signal.
// Bin 0 is the DC bin; the layout follows the standard DFT convention.
func (t *Transform) Forward(signal []float64) ([]complex128, error) {
	if len(signal) != t.n {
		return nil, ErrLengthMismatch
	}

	src := make([]complex128, t.n)
	for i, v := range signal {
		src[i] = complex(v, 0)
	}

	return t.ForwardComplex(src)
}

// ForwardComplex computes the complex-to-complex forward transform.
func (t *Transform) ForwardComplex(src []complex128) ([]complex128, error) {
	if len(src) != t.n {
		return nil, ErrLengthMismatch
	}

	dst := make([]complex128, t.n)
	err := t.plan.Forward(dst, src)
	if err != nil {
		return nil, fmt.Errorf("spectral: forward FFT failed: %w", err)
	}

	return dst, nil
}

// Inverse computes the complex-to-complex inverse transform.
// The result carries the 1/N normalization, so Inverse(Forward(x)) == x up
// to numerical noise. Callers expecting a real signal should take the real
// part; the imaginary residue is numerical only for Hermitian spectra.
func (t *Transform) Inverse(spectrum []complex128) ([]complex128, error) {
	if len(spectrum) != t.n {
		return nil, ErrLengthMismatch
	}

	dst := make([]complex128, t.n)
	err := t.plan.Inverse(dst, spectrum)
	if err != nil {
		return nil, fmt.Errorf("spectral: inverse FFT failed: %w", err)
	}

	return dst, nil
}

// InverseReal computes the inverse transform and discards the imaginary
// part. This is the common path for residues and reconstructed components,
// whose spectra are Hermitian up to numerical noise.
func (t *Transform) InverseReal(spectrum []complex128) ([]float64, error) {
	c, err := t.Inverse(spectrum)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}

	return out, nil
}

// FreqBins returns the DFT sample frequencies for a transform of length n
// with sample interval deltaT, in the standard layout: bin k maps to
// k/(n*deltaT) for k below the Nyquist bin and to the corresponding
// negative frequency thereafter.
func FreqBins(n int, deltaT float64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	if deltaT <= 0 {
		return nil, ErrInvalidInterval
	}

	out := make([]float64, n)
	step := 1 / (float64(n) * deltaT)

	// Positive frequencies occupy bins [0, (n-1)/2]; the remainder are the
	// negative frequencies counted up from -floor(n/2).
	posCount := (n-1)/2 + 1
	for k := 0; k < posCount; k++ {
		out[k] = float64(k) * step
	}
	for k := posCount; k < n; k++ {
		out[k] = float64(k-n) * step
	}

	return out, nil
}

// HalfLength returns the number of non-negative-frequency bins of an
// n-point spectrum: n/2+1 for even n (Nyquist bin included), (n+1)/2 for
// odd n (no Nyquist bin).
func HalfLength(n int) int {
	if n <= 0 {
		return 0
	}
	if n%2 == 0 {
		return n/2 + 1
	}
	return (n + 1) / 2
}
