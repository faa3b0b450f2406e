// Package wavepacket separates a measured signal into individual wave
// packets using the CLEAN algorithm.
//
// The measured signal is modeled as a sum of scaled, time-delayed,
// phase-shifted copies of a known reference waveform (the transmitted
// pulse). Each iteration locates the dominant packet in the residual
// spectrum via the analytic-signal envelope, estimates its amplitude, delay,
// and phase relative to the reference pulse, synthesizes its spectrum, and
// subtracts it from the residue. The search stops once the dominant
// remaining packet falls below a threshold fraction of the strongest packet
// found.
//
// References:
//
//	Gough, P.T., 1994. A fast spectral estimation algorithm based on the
//	FFT. IEEE Transactions on Signal Processing 42, 1317-1322.
//
//	Holmes, C., Drinkwater, B.W., Wilcox, P.D., 2005. Post-processing of
//	the full matrix of ultrasonic transmit-receive array data for
//	non-destructive evaluation. NDT & E International 38, 701-711.
package wavepacket
