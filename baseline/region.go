package baseline

import "fmt"

// Region addresses samples known a priori to be pure background. It is
// either a single index or a contiguous half-open range; every
// iteration of the estimator overwrites the addressed samples with
// their original values.
type Region struct {
	start int
	end   int
}

// Index addresses the single sample at i.
func Index(i int) Region {
	return Region{start: i, end: i + 1}
}

// Span addresses the half-open range [start, end).
func Span(start, end int) Region {
	return Region{start: start, end: end}
}

// validate reports whether the region fits a signal of n samples.
func (r Region) validate(n int) error {
	if r.start < 0 || r.end > n || r.start >= r.end {
		return fmt.Errorf("%w: [%d, %d) against %d samples", ErrRegionOutOfRange, r.start, r.end, n)
	}
	return nil
}

// apply copies the addressed samples from src into dst.
func (r Region) apply(dst, src []float64) {
	copy(dst[r.start:r.end], src[r.start:r.end])
}
