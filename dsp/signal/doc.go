// Package signal generates deterministic test and excitation signals for
// wave-packet analysis: Gaussian-modulated tone bursts, delayed and scaled
// copies, superpositions, sinusoids, and seeded noise.
package signal
