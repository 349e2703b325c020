// Package dwt provides the single-tree discrete wavelet transform.
//
// The package operates on real-valued 1D signals and follows the usual
// decimated filter-bank formulation: one analysis level splits a signal
// into approximation (low-pass) and detail (high-pass) coefficients of
// length floor((n + L - 1)/2) each, where L is the filter length. The
// synthesis step is a perfect-reconstruction inverse for every wavelet
// in the registry, for any signal length and both extension modes.
//
// Available building blocks:
//
//   - [Wavelet]:     immutable four-filter bank, built directly or via [Lookup]
//   - [Transform]:   one analysis level (approx, detail)
//   - [Inverse]:     one synthesis level
//   - [Decompose]:   multilevel analysis, coefficients ordered [cA_n, cD_n, ..., cD_1]
//   - [Reconstruct]: multilevel synthesis
//   - [MaxLevel]:    deepest useful decomposition level for a data/filter length
//
// Boundary handling defaults to half-sample symmetric extension
// ([ModeSymmetric]); [ModeZero] is available for workloads that prefer
// zero padding. Both modes reconstruct exactly because analysis keeps
// the partially overlapping boundary coefficients.
//
// Basic usage:
//
//	w, _ := dwt.Lookup("db2")
//	approx, detail, _ := dwt.Transform(signal, w, dwt.ModeSymmetric)
//	back, _ := dwt.Inverse(approx, detail, w, dwt.ModeSymmetric)
package dwt
