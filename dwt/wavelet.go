package dwt

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned by the transform and registry functions.
var (
	ErrUnknownWavelet      = errors.New("dwt: unknown wavelet")
	ErrInvalidFilterBank   = errors.New("dwt: invalid filter bank")
	ErrEmptyInput          = errors.New("dwt: empty input")
	ErrInvalidLevel        = errors.New("dwt: invalid decomposition level")
	ErrTooFewCoefficients  = errors.New("dwt: coefficient list too short")
	ErrCoefficientMismatch = errors.New("dwt: approximation/detail length mismatch")
	ErrInvalidSize         = errors.New("dwt: invalid transform size")
)

// Wavelet is a four-filter bank: decomposition low/high-pass and
// reconstruction low/high-pass taps of one shared length.
//
// A Wavelet is immutable once built. Constructors copy their inputs and
// accessors return fresh copies, so two transforms can never alias each
// other's filters.
type Wavelet struct {
	name  string
	decLo []float64
	decHi []float64
	recLo []float64
	recHi []float64
}

// New builds a wavelet from explicit filter taps. All four filters must
// share one non-zero length.
func New(name string, decLo, decHi, recLo, recHi []float64) (Wavelet, error) {
	n := len(decLo)
	if n == 0 || len(decHi) != n || len(recLo) != n || len(recHi) != n {
		return Wavelet{}, fmt.Errorf("%w: filter lengths %d/%d/%d/%d",
			ErrInvalidFilterBank, len(decLo), len(decHi), len(recLo), len(recHi))
	}
	return Wavelet{
		name:  name,
		decLo: slices.Clone(decLo),
		decHi: slices.Clone(decHi),
		recLo: slices.Clone(recLo),
		recHi: slices.Clone(recHi),
	}, nil
}

// NewOrthogonal builds an orthogonal wavelet from its scaling filter
// (the reconstruction low-pass taps, in natural order). The remaining
// filters follow from the quadrature-mirror relations:
//
//	decLo[n] = recLo[L-1-n]
//	decHi[n] = (-1)^(n+1) * recLo[n]
//	recHi[n] = (-1)^n     * decLo[n]
//
// The scaling filter should be orthonormal (unit energy, taps summing
// to sqrt(2)) for the transform to preserve energy; this is not
// enforced here.
func NewOrthogonal(name string, recLo []float64) (Wavelet, error) {
	n := len(recLo)
	if n == 0 {
		return Wavelet{}, fmt.Errorf("%w: empty scaling filter", ErrInvalidFilterBank)
	}
	decLo := make([]float64, n)
	decHi := make([]float64, n)
	recHi := make([]float64, n)
	for i, c := range recLo {
		decLo[n-1-i] = c
		if i%2 == 0 {
			decHi[i] = -c
		} else {
			decHi[i] = c
		}
	}
	for i, c := range decLo {
		if i%2 == 0 {
			recHi[i] = c
		} else {
			recHi[i] = -c
		}
	}
	return New(name, decLo, decHi, recLo, recHi)
}

// Name returns the identifier the wavelet was built with.
func (w Wavelet) Name() string { return w.name }

// Len returns the filter length shared by all four filters.
func (w Wavelet) Len() int { return len(w.decLo) }

// DecLo returns a copy of the decomposition low-pass taps.
func (w Wavelet) DecLo() []float64 { return slices.Clone(w.decLo) }

// DecHi returns a copy of the decomposition high-pass taps.
func (w Wavelet) DecHi() []float64 { return slices.Clone(w.decHi) }

// RecLo returns a copy of the reconstruction low-pass taps.
func (w Wavelet) RecLo() []float64 { return slices.Clone(w.recLo) }

// RecHi returns a copy of the reconstruction high-pass taps.
func (w Wavelet) RecHi() []float64 { return slices.Clone(w.recHi) }
