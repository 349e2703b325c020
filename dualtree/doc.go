// Package dualtree implements the 1D dual-tree complex wavelet
// transform (DT-CWT).
//
// The transform runs two parallel real-valued wavelet trees whose
// filters are offset from each other by roughly half a sample. Tree A
// supplies the real part and tree B the imaginary part of each complex
// coefficient, which makes the combined transform approximately
// shift-invariant while every individual tree remains a standard
// perfect-reconstruction decomposition.
//
// Each tree uses two filter banks: a first-stage wavelet at the finest
// level ([FirstStage] derives the per-tree pair from any registry
// wavelet) and a steady-state quarter-shift wavelet at all coarser
// levels ([Filters] resolves the per-tree pair by name).
//
//	coeffs, _ := dualtree.Analyze(signal, dualtree.WithLevel(4))
//	back, _ := dualtree.Synthesize(coeffs)
//
// Coefficient lists are ordered [cA_n, cD_n, ..., cD_1] like the dwt
// package, with complex-valued entries. Synthesis averages the two tree
// reconstructions, which cancels the aliasing either tree would show on
// modified coefficients.
package dualtree
