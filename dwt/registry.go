package dwt

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Registry of built-in wavelets. Only filters with exactly reproducible
// taps are included: Haar and db2 from closed forms, db3/db4 from the
// published orthonormal coefficients, and bior2.2 (the CDF 5/3 pair
// used by JPEG2000) from its rational-times-sqrt(2) taps.

// daubechies2 returns the 4-tap Daubechies scaling filter in closed form.
func daubechies2() []float64 {
	s3 := math.Sqrt(3)
	d := 4 * math.Sqrt2
	return []float64{(1 + s3) / d, (3 + s3) / d, (3 - s3) / d, (1 - s3) / d}
}

var daubechies3 = []float64{
	0.3326705529509569,
	0.8068915093133388,
	0.4598775021193313,
	-0.13501102001039084,
	-0.08544127388224149,
	0.035226291882100656,
}

var daubechies4 = []float64{
	0.23037781330885523,
	0.7148465705525415,
	0.6308807679295904,
	-0.02798376941698385,
	-0.18703481171888114,
	0.030841381835986965,
	0.032883011666982945,
	-0.010597401784997278,
}

// biorthogonal22 returns the CDF 5/3 filter bank in the conventional
// 6-tap layout (leading zero on the analysis low-pass).
func biorthogonal22() Wavelet {
	s := math.Sqrt2
	w, _ := New("bior2.2",
		[]float64{0, -s / 8, s / 4, 3 * s / 4, s / 4, -s / 8},
		[]float64{0, s / 4, -s / 2, s / 4, 0, 0},
		[]float64{0, s / 4, s / 2, s / 4, 0, 0},
		[]float64{0, s / 8, s / 4, -3 * s / 4, s / 4, s / 8},
	)
	return w
}

func haar() Wavelet {
	s := math.Sqrt2 / 2
	w, _ := NewOrthogonal("haar", []float64{s, s})
	return w
}

// Lookup resolves a wavelet family name into its filter bank.
// Recognized names: "haar" (alias "db1"), "db2", "db3", "db4",
// "bior2.2". Matching is case-insensitive.
func Lookup(name string) (Wavelet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "haar", "db1":
		return haar(), nil
	case "db2":
		return NewOrthogonal("db2", daubechies2())
	case "db3":
		return NewOrthogonal("db3", daubechies3)
	case "db4":
		return NewOrthogonal("db4", daubechies4)
	case "bior2.2":
		return biorthogonal22(), nil
	}
	return Wavelet{}, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
}

// Names returns the registry wavelet names in sorted order.
func Names() []string {
	names := []string{"haar", "db1", "db2", "db3", "db4", "bior2.2"}
	sort.Strings(names)
	return names
}
