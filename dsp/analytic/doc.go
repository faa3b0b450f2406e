// Package analytic computes the analytic signal of a real-valued signal via
// the Hilbert-transform construction in the frequency domain.
//
// The magnitude of the analytic signal is the instantaneous envelope and its
// angle the instantaneous phase. The package is used to locate the dominant
// wave packet in a signal and read off its amplitude and phase.
package analytic
