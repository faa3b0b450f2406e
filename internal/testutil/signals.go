package testutil

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// RealParts extracts the real part of each element of a complex slice.
func RealParts(data []complex128) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = real(v)
	}
	return out
}
