package dualtree

import (
	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns the per-entry complex magnitudes of a coefficient
// list. The magnitude of a dual-tree coefficient is approximately
// shift-invariant, which makes it the quantity of choice for envelope
// and ridge analysis.
func Magnitude(coeffs [][]complex128) [][]float64 {
	return envelope(coeffs, vecmath.Magnitude)
}

// Power returns the per-entry squared magnitudes of a coefficient list.
func Power(coeffs [][]complex128) [][]float64 {
	return envelope(coeffs, vecmath.Power)
}

func envelope(coeffs [][]complex128, fn func(dst, re, im []float64)) [][]float64 {
	out := make([][]float64, len(coeffs))
	for k, entry := range coeffs {
		re := make([]float64, len(entry))
		im := make([]float64, len(entry))
		for i, c := range entry {
			re[i] = real(c)
			im[i] = imag(c)
		}
		dst := make([]float64, len(entry))
		fn(dst, re, im)
		out[k] = dst
	}
	return out
}
