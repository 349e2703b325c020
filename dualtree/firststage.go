package dualtree

import "github.com/cwbudde/algo-wavelet/dwt"

// FirstStage derives the two first-stage filter banks of the dual-tree
// transform from a single base wavelet. Both banks are padded by two
// zero taps so their relative offsets keep each tree exactly
// invertible:
//
//   - tree 1 centers the base taps (one leading and one trailing zero);
//   - tree 2 delays the decomposition filters by one further sample
//     (two leading zeros) and advances the reconstruction filters by
//     one (two trailing zeros).
//
// Tree 2's decomposition filters are therefore the one-sample right
// shift of tree 1's, which is what staggers the two trees' sampling
// grids at the finest level. Shifting the reconstruction filters the
// same way instead would delay tree 2's output by two samples and break
// the reconstruction; the opposite shift restores a zero net delay.
//
// Both banks keep the base wavelet's name for identification only.
func FirstStage(w dwt.Wavelet) (tree1, tree2 dwt.Wavelet, err error) {
	pad := func(taps []float64, lead int) []float64 {
		out := make([]float64, len(taps)+2)
		copy(out[lead:], taps)
		return out
	}

	tree1, err = dwt.New(w.Name(),
		pad(w.DecLo(), 1),
		pad(w.DecHi(), 1),
		pad(w.RecLo(), 1),
		pad(w.RecHi(), 1),
	)
	if err != nil {
		return dwt.Wavelet{}, dwt.Wavelet{}, err
	}
	tree2, err = dwt.New(w.Name(),
		pad(w.DecLo(), 2),
		pad(w.DecHi(), 2),
		pad(w.RecLo(), 0),
		pad(w.RecHi(), 0),
	)
	if err != nil {
		return dwt.Wavelet{}, dwt.Wavelet{}, err
	}
	return tree1, tree2, nil
}
