package wavepacket

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-clean/dsp/analytic"
	"github.com/cwbudde/algo-clean/dsp/spectral"
)

// Defaults applied when the corresponding Decomposer field is zero.
const (
	DefaultThreshold     = 0.4
	DefaultMaxIterations = 64
)

// Errors returned by decomposition functions.
var (
	ErrEmptyInput       = errors.New("wavepacket: signals must not be empty")
	ErrLengthMismatch   = errors.New("wavepacket: measured and reference signals must have equal length")
	ErrInvalidDeltaT    = errors.New("wavepacket: sample interval must be > 0")
	ErrInvalidThreshold = errors.New("wavepacket: threshold must be > 0")
	ErrNoConvergence    = errors.New("wavepacket: iteration limit exceeded before reaching the stop threshold")
)

// Decomposer holds the decomposition parameters.
//
// DeltaT is the shared sample interval of the measured and reference
// signals. Threshold is the stop level as a fraction of the strongest
// extracted amplitude; zero selects DefaultThreshold. MaxIterations bounds
// the number of extraction iterations as a guard against inputs whose
// residue never decays; zero selects DefaultMaxIterations. The guard does
// not alter results for well-behaved inputs.
type Decomposer struct {
	DeltaT        float64
	Threshold     float64
	MaxIterations int
}

// Component is one extracted wave packet.
//
// Delay is relative to the reference pulse's envelope peak and may be
// negative. Phase is reported as the raw offset peakPhase - refPhase + 2*pi
// and is not wrapped into a canonical range. The waveform is nominally
// real-valued; its imaginary part is numerical residue only.
type Component struct {
	Amplitude float64
	Delay     float64
	Phase     float64
	Waveform  []complex128
}

// Result holds the extracted wave packets as four parallel sequences of
// equal length, ordered by extraction. The first entry is the globally
// dominant packet of the measured signal; later entries are only bounded by
// the per-iteration threshold test, not guaranteed strictly decreasing.
type Result struct {
	Amplitudes []float64
	Delays     []float64
	Phases     []float64
	Components [][]complex128
}

// Len returns the number of extracted components.
func (r Result) Len() int {
	return len(r.Amplitudes)
}

// Component returns the i-th extracted packet as a single value.
func (r Result) Component(i int) Component {
	return Component{
		Amplitude: r.Amplitudes[i],
		Delay:     r.Delays[i],
		Phase:     r.Phases[i],
		Waveform:  r.Components[i],
	}
}

// Reconstruct sums the real parts of all extracted components. The sum
// approximates the measured signal minus the final (unextracted) residue.
func (r Result) Reconstruct() []float64 {
	if r.Len() == 0 {
		return nil
	}

	out := make([]float64, len(r.Components[0]))
	for _, comp := range r.Components {
		for i, v := range comp {
			out[i] += real(v)
		}
	}
	return out
}

// Validate checks the Decomposer parameters.
func (d *Decomposer) Validate() error {
	if d.DeltaT <= 0 {
		return ErrInvalidDeltaT
	}
	if d.Threshold < 0 {
		return ErrInvalidThreshold
	}
	if d.MaxIterations < 0 {
		return fmt.Errorf("wavepacket: max iterations must be >= 0: %d", d.MaxIterations)
	}
	return nil
}

func (d *Decomposer) threshold() float64 {
	if d.Threshold == 0 {
		return DefaultThreshold
	}
	return d.Threshold
}

func (d *Decomposer) maxIterations() int {
	if d.MaxIterations == 0 {
		return DefaultMaxIterations
	}
	return d.MaxIterations
}

// Decompose is a one-shot decomposition with the package defaults for
// anything not given. A threshold of zero selects DefaultThreshold.
func Decompose(measured, reference []float64, deltaT, threshold float64) (Result, error) {
	d := Decomposer{DeltaT: deltaT, Threshold: threshold}
	return d.Decompose(measured, reference)
}

// Decompose extracts the individual wave packets of measured, assuming it
// is a superposition of scaled, delayed, phase-shifted copies of reference.
// Both signals must share the decomposer's sample interval.
//
// The first extraction always runs; the stop test is evaluated on each
// just-extracted amplitude, and the entry that triggers the stop is
// excluded from the result. A threshold >= 1 therefore yields an empty
// result. Precondition violations and ErrNoConvergence return no partial
// result.
func (d *Decomposer) Decompose(measured, reference []float64) (Result, error) {
	err := d.Validate()
	if err != nil {
		return Result{}, err
	}

	if len(measured) == 0 || len(reference) == 0 {
		return Result{}, ErrEmptyInput
	}
	if len(measured) != len(reference) {
		return Result{}, ErrLengthMismatch
	}

	n := len(measured)

	tr, err := spectral.NewTransform(n)
	if err != nil {
		return Result{}, err
	}

	freq, err := spectral.FreqBins(n, d.DeltaT)
	if err != nil {
		return Result{}, err
	}

	refSpectrum, err := tr.Forward(reference)
	if err != nil {
		return Result{}, err
	}

	refAnalytic, err := analytic.SignalFromSpectrum(tr, refSpectrum)
	if err != nil {
		return Result{}, err
	}

	refIndex, _, refPhase := analytic.Peak(refAnalytic)

	residue, err := tr.Forward(measured)
	if err != nil {
		return Result{}, err
	}

	threshold := d.threshold()
	maxIterations := d.maxIterations()

	var (
		amplitudes   []float64
		delays       []float64
		phases       []float64
		components   [][]complex128
		maxAmplitude float64
	)

	for {
		r, err := tr.InverseReal(residue)
		if err != nil {
			return Result{}, err
		}

		rSpectrum, err := tr.Forward(r)
		if err != nil {
			return Result{}, err
		}

		rAnalytic, err := analytic.SignalFromSpectrum(tr, rSpectrum)
		if err != nil {
			return Result{}, err
		}

		peakIndex, amplitude, peakPhase := analytic.Peak(rAnalytic)

		delay := float64(peakIndex-refIndex) * d.DeltaT
		phase := peakPhase - refPhase + 2*math.Pi

		amplitudes = append(amplitudes, amplitude)
		delays = append(delays, delay)
		phases = append(phases, phase)

		reconstructed := reconstructSpectrum(refSpectrum, freq, amplitude, delay, phase)

		component, err := tr.Inverse(reconstructed)
		if err != nil {
			return Result{}, err
		}
		components = append(components, component)

		for k := range residue {
			residue[k] -= reconstructed[k]
		}

		if len(amplitudes) == 1 {
			maxAmplitude = amplitude
		}

		if amplitude <= threshold*maxAmplitude {
			break
		}
		if len(amplitudes) >= maxIterations {
			return Result{}, ErrNoConvergence
		}
	}

	// The extraction that triggered the stop is below threshold and is
	// dropped from all four sequences.
	last := len(amplitudes) - 1

	return Result{
		Amplitudes: amplitudes[:last],
		Delays:     delays[:last],
		Phases:     phases[:last],
		Components: components[:last],
	}, nil
}

// reconstructSpectrum builds the full Hermitian-symmetric spectrum of one
// wave packet: the reference spectrum scaled by amplitude, delayed, and
// phase-shifted on the non-negative-frequency bins, mirrored conjugated
// into the negative-frequency bins so the time-domain packet is real.
func reconstructSpectrum(refSpectrum []complex128, freq []float64, amplitude, delay, phase float64) []complex128 {
	n := len(refSpectrum)
	half := spectral.HalfLength(n)

	out := make([]complex128, n)
	for k := 0; k < half; k++ {
		rotation := cmplx.Exp(complex(0, -2*math.Pi*freq[k]*delay+phase))
		out[k] = complex(amplitude, 0) * refSpectrum[k] * rotation
	}

	// Mirror covers both parities: bin n-j is the source of bin j, which
	// for even n leaves DC and the Nyquist bin unpaired and for odd n
	// leaves only DC unpaired.
	for j := half; j < n; j++ {
		out[j] = cmplx.Conj(out[n-j])
	}

	return out
}
