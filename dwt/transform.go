package dwt

import "fmt"

// DecLen returns the coefficient length per band produced by one
// analysis level on n samples with filterLen-tap filters.
func DecLen(n, filterLen int) int {
	return (n + filterLen - 1) / 2
}

// Transform computes one analysis level: the signal is extended
// according to mode, filtered with the decomposition pair, and
// decimated by two. Both outputs have length DecLen(len(data), w.Len()).
func Transform(data []float64, w Wavelet, mode Mode) (approx, detail []float64, err error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if w.Len() == 0 {
		return nil, nil, fmt.Errorf("%w: zero-length filters", ErrInvalidFilterBank)
	}
	filterLen := w.Len()
	out := DecLen(len(data), filterLen)
	approx = make([]float64, out)
	detail = make([]float64, out)
	for i := 0; i < out; i++ {
		base := 2*i + 1
		var lo, hi float64
		for j := 0; j < filterLen; j++ {
			x := extAt(data, base-j, mode)
			lo += w.decLo[j] * x
			hi += w.decHi[j] * x
		}
		approx[i] = lo
		detail[i] = hi
	}
	return approx, detail, nil
}

// Inverse computes one synthesis level from equally long approximation
// and detail coefficients. The output has length 2*len(approx)-L+2 and
// reconstructs the Transform input exactly (up to the trailing boundary
// sample when the input length was odd).
//
// The mode parameter mirrors the Transform signature; the synthesis
// trim window does not depend on it.
func Inverse(approx, detail []float64, w Wavelet, mode Mode) ([]float64, error) {
	_ = mode
	la := len(approx)
	if la == 0 || len(detail) != la {
		return nil, fmt.Errorf("%w: %d approximation vs %d detail samples",
			ErrCoefficientMismatch, la, len(detail))
	}
	filterLen := w.Len()
	out := 2*la - filterLen + 2
	if out < 1 {
		return nil, fmt.Errorf("%w: %d coefficients with %d-tap filters",
			ErrInvalidSize, la, filterLen)
	}
	rec := make([]float64, out)
	for i := 0; i < la; i++ {
		off := 2*i - (filterLen - 2)
		a := approx[i]
		d := detail[i]
		for j := 0; j < filterLen; j++ {
			pos := off + j
			if pos >= 0 && pos < out {
				rec[pos] += a*w.recLo[j] + d*w.recHi[j]
			}
		}
	}
	return rec, nil
}
