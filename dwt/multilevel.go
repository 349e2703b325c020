package dwt

import (
	"fmt"
	"math"
	"slices"
)

// MaxLevel returns the deepest decomposition level for which the
// coarsest approximation still spans at least one full filter:
// floor(log2(dataLen / (filterLen - 1))). Returns 0 when the filter
// does not fit the data at all.
func MaxLevel(dataLen, filterLen int) int {
	if filterLen < 2 || dataLen < filterLen-1 {
		return 0
	}
	v := math.Log2(float64(dataLen) / float64(filterLen-1))
	if v < 1 {
		return 0
	}
	return int(v)
}

// Decompose computes a multilevel analysis. The result is ordered
// [cA_n, cD_n, cD_n-1, ..., cD_1]: the coarsest approximation first,
// then detail bands from coarsest to finest. Level 0 returns the input
// as a single-entry list.
func Decompose(data []float64, w Wavelet, mode Mode, level int) ([][]float64, error) {
	if level < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	approx := slices.Clone(data)
	details := make([][]float64, 0, level)
	for l := 0; l < level; l++ {
		a, d, err := Transform(approx, w, mode)
		if err != nil {
			return nil, err
		}
		approx = a
		details = append(details, d)
	}
	coeffs := make([][]float64, 0, level+1)
	coeffs = append(coeffs, approx)
	for i := len(details) - 1; i >= 0; i-- {
		coeffs = append(coeffs, details[i])
	}
	return coeffs, nil
}

// Reconstruct inverts Decompose. A single-entry list is the level-0
// identity. When a reconstructed approximation band comes out one
// sample longer than the next detail band (even/odd length drift), its
// trailing boundary sample is dropped before the bands are combined.
func Reconstruct(coeffs [][]float64, w Wavelet, mode Mode) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrTooFewCoefficients
	}
	approx := slices.Clone(coeffs[0])
	for _, detail := range coeffs[1:] {
		if len(approx) == len(detail)+1 {
			approx = approx[:len(approx)-1]
		}
		rec, err := Inverse(approx, detail, w, mode)
		if err != nil {
			return nil, err
		}
		approx = rec
	}
	return approx, nil
}
