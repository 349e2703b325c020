package dualtree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-wavelet/dwt"
)

// Errors returned by the dual-tree transform functions.
var (
	ErrEmptyInput         = errors.New("dualtree: empty input")
	ErrInvalidLevel       = errors.New("dualtree: invalid decomposition level")
	ErrTooFewCoefficients = errors.New("dualtree: coefficient list too short (minimum 1 entry required)")
	ErrUnknownWavelet     = errors.New("dualtree: unknown dual-tree wavelet")
)

// qshiftALowpass holds Kingsbury's 10-tap quarter-shift low-pass filter
// (only six taps are non-zero). Tree B uses the time reverse, which
// places its delay a quarter sample off tree A's.
var qshiftALowpass = []float64{
	0.03516384,
	0,
	-0.08832942,
	0.23389032,
	0.76027237,
	0.58751830,
	0,
	-0.11430184,
	0,
	0,
}

// Filters resolves a steady-state dual-tree wavelet name into the
// tree-A (real part) and tree-B (imaginary part) filter banks.
// Recognized names: "qshift_a". Matching is case-insensitive.
func Filters(name string) (treeA, treeB dwt.Wavelet, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "qshift_a":
		n := len(qshiftALowpass)
		reversed := make([]float64, n)
		for i, c := range qshiftALowpass {
			reversed[n-1-i] = c
		}
		treeA, err = dwt.NewOrthogonal("qshift_a:a", qshiftALowpass)
		if err != nil {
			return dwt.Wavelet{}, dwt.Wavelet{}, err
		}
		treeB, err = dwt.NewOrthogonal("qshift_a:b", reversed)
		if err != nil {
			return dwt.Wavelet{}, dwt.Wavelet{}, err
		}
		return treeA, treeB, nil
	}
	return dwt.Wavelet{}, dwt.Wavelet{}, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
}
