// Package spectral provides the discrete Fourier transform plumbing used by
// the wave-packet decomposition: a plan-backed forward/inverse transform
// pair for a fixed signal length, the DFT frequency-bin layout, and
// magnitude extraction from complex bins.
//
// The package does not implement the FFT itself. Transforms are delegated to
// the algo-fft backend, which supports arbitrary (including odd) lengths.
package spectral
