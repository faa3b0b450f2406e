package analytic

import (
	"errors"
	"math/cmplx"

	"github.com/cwbudde/algo-clean/dsp/spectral"
)

// ErrEmptyInput is returned when the input signal is empty.
var ErrEmptyInput = errors.New("analytic: input signal must not be empty")

// Signal computes the analytic signal of a real time-domain signal.
//
// In the frequency domain the negative-frequency bins are zeroed, the
// strictly positive bins doubled, and the DC bin (plus the Nyquist bin for
// even lengths) left unscaled. The real part of the result equals the input
// up to numerical noise; the magnitude is the envelope.
func Signal(realSignal []float64) ([]complex128, error) {
	if len(realSignal) == 0 {
		return nil, ErrEmptyInput
	}

	tr, err := spectral.NewTransform(len(realSignal))
	if err != nil {
		return nil, err
	}

	spec, err := tr.Forward(realSignal)
	if err != nil {
		return nil, err
	}

	applyHilbertWeights(spec)

	return tr.Inverse(spec)
}

// SignalFromSpectrum computes the analytic signal from an already-computed
// spectrum, reusing the caller's transform. The spectrum is not modified.
func SignalFromSpectrum(tr *spectral.Transform, spec []complex128) ([]complex128, error) {
	weighted := make([]complex128, len(spec))
	copy(weighted, spec)
	applyHilbertWeights(weighted)

	return tr.Inverse(weighted)
}

// applyHilbertWeights scales spectrum bins in place for the analytic-signal
// construction: DC and Nyquist (even n) unscaled, strictly positive
// frequencies doubled, negative frequencies zeroed.
func applyHilbertWeights(spec []complex128) {
	n := len(spec)
	half := spectral.HalfLength(n)

	upperPositive := half
	if n%2 == 0 {
		// Bin n/2 is the Nyquist bin and keeps unit weight.
		upperPositive = half - 1
	}

	for k := 1; k < upperPositive; k++ {
		spec[k] *= 2
	}
	for k := half; k < n; k++ {
		spec[k] = 0
	}
}

// Envelope returns the instantaneous envelope of a real signal, the
// magnitude of its analytic signal.
func Envelope(realSignal []float64) ([]float64, error) {
	a, err := Signal(realSignal)
	if err != nil {
		return nil, err
	}

	return spectral.Magnitude(a), nil
}

// Peak locates the envelope maximum of an analytic signal. It returns the
// sample index of the maximum magnitude together with the magnitude
// (envelope amplitude) and angle (instantaneous phase) at that index.
// An empty input yields index -1.
func Peak(a []complex128) (index int, amplitude, phase float64) {
	if len(a) == 0 {
		return -1, 0, 0
	}

	index = 0
	amplitude = cmplx.Abs(a[0])
	for i, c := range a[1:] {
		m := cmplx.Abs(c)
		if m > amplitude {
			amplitude = m
			index = i + 1
		}
	}

	return index, amplitude, cmplx.Phase(a[index])
}
