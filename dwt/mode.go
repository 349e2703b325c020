package dwt

// Mode selects how a finite signal is extended past its edges before
// filtering.
type Mode int

const (
	// ModeSymmetric mirrors the signal about its edges with half-sample
	// symmetry: ... x1 x0 | x0 x1 ... xn-1 | xn-1 xn-2 ...
	// This is the default mode throughout the module.
	ModeSymmetric Mode = iota

	// ModeZero treats every sample beyond the edges as zero.
	ModeZero
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSymmetric:
		return "symmetric"
	case ModeZero:
		return "zero"
	}
	return "unknown"
}

// extAt returns the extended-signal sample at position t, which may lie
// outside [0, len(data)). Symmetric extension folds repeatedly, so it
// stays valid for filters longer than the signal.
func extAt(data []float64, t int, mode Mode) float64 {
	n := len(data)
	if t >= 0 && t < n {
		return data[t]
	}
	if mode == ModeZero {
		return 0
	}
	p := 2 * n
	t %= p
	if t < 0 {
		t += p
	}
	if t >= n {
		t = p - 1 - t
	}
	return data[t]
}
