// Package baseline estimates the slowly varying background of a 1D
// signal with an iterative dual-tree wavelet scheme.
//
// One iteration smooths the working signal by an approximation-only
// wavelet reconstruction and then clamps the working signal down to
// that smooth candidate wherever it exceeds it. Repeating the step
// pulls sharp peaks toward the background envelope while leaving
// slowly varying structure in place. Samples known to be pure
// background can be pinned to their original values, and a mask forces
// the final estimate to zero at invalid samples.
package baseline
