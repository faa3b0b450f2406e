package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Errors returned by signal generation functions.
var (
	ErrEmptyInput     = errors.New("signal: input must not be empty")
	ErrLengthMismatch = errors.New("signal: signals must have equal length")
)

// Burst describes a Gaussian-modulated sinusoid, the usual model of an
// ultrasonic excitation pulse.
//
// The envelope is a Gaussian centered at Center seconds with standard
// deviation Cycles/(2*CenterFreq), so the burst spans roughly Cycles
// carrier periods between its half-amplitude points.
type Burst struct {
	CenterFreq float64 // carrier frequency in Hz
	Cycles     float64 // approximate carrier cycles under the envelope
	Amplitude  float64 // peak envelope amplitude
	Center     float64 // envelope peak position in seconds
	DeltaT     float64 // sample interval in seconds
	Samples    int     // trace length in samples
}

// Validate checks that the Burst parameters are valid.
func (b *Burst) Validate() error {
	if b.CenterFreq <= 0 {
		return fmt.Errorf("signal: burst center frequency must be > 0: %f", b.CenterFreq)
	}
	if b.Cycles <= 0 {
		return fmt.Errorf("signal: burst cycles must be > 0: %f", b.Cycles)
	}
	if b.DeltaT <= 0 {
		return fmt.Errorf("signal: burst sample interval must be > 0: %f", b.DeltaT)
	}
	if b.Samples <= 0 {
		return fmt.Errorf("signal: burst sample count must be > 0: %d", b.Samples)
	}
	return nil
}

// Generate creates the tone-burst trace:
//
//	x(t) = A * exp(-(t-t0)^2 / (2*sigma^2)) * cos(2*pi*f*(t-t0))
//
// with sigma = Cycles/(2*CenterFreq). The cosine phase is zero at the
// envelope peak, so the envelope maximum and the carrier maximum coincide.
func (b *Burst) Generate() ([]float64, error) {
	err := b.Validate()
	if err != nil {
		return nil, err
	}

	sigma := b.Cycles / (2 * b.CenterFreq)
	out := make([]float64, b.Samples)

	for i := range out {
		t := float64(i)*b.DeltaT - b.Center
		env := math.Exp(-t * t / (2 * sigma * sigma))
		out[i] = b.Amplitude * env * math.Cos(2*math.Pi*b.CenterFreq*t)
	}

	return out, nil
}

// DelayedCopy returns signal shifted by offset samples and scaled.
// Samples shifted in from outside the trace are zero; a negative offset
// shifts toward the start. The input is not modified.
func DelayedCopy(signal []float64, offset int, scale float64) []float64 {
	out := make([]float64, len(signal))
	for i := range signal {
		j := i - offset
		if j >= 0 && j < len(signal) {
			out[i] = scale * signal[j]
		}
	}
	return out
}

// Superpose sums equal-length signals into a new slice.
func Superpose(signals ...[]float64) ([]float64, error) {
	if len(signals) == 0 || len(signals[0]) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(signals[0])
	for _, s := range signals[1:] {
		if len(s) != n {
			return nil, ErrLengthMismatch
		}
	}

	out := make([]float64, n)
	for _, s := range signals {
		for i, v := range s {
			out[i] += v
		}
	}
	return out, nil
}

// Sine generates a sine wave sampled at interval deltaT.
func Sine(freqHz, amplitude, deltaT float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}
	if deltaT <= 0 {
		return nil, fmt.Errorf("signal: sine sample interval must be > 0: %f", deltaT)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz * deltaT
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func WhiteNoise(seed int64, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
