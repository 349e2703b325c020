package dualtree

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dwt"
)

// banks bundles the four resolved filter banks of one transform call.
type banks struct {
	steadyA dwt.Wavelet // steady-state, tree A (real part)
	steadyB dwt.Wavelet // steady-state, tree B (imaginary part)
	first1  dwt.Wavelet // first stage, tree 1
	first2  dwt.Wavelet // first stage, tree 2 (shifted)

	// widest filter among the steady-state pair and the unpadded
	// first-stage wavelet; governs the maximum level.
	maxFilterLen int
}

func resolveBanks(cfg config) (banks, error) {
	steadyA, steadyB, err := Filters(cfg.wavelet)
	if err != nil {
		return banks{}, err
	}
	first, err := dwt.Lookup(cfg.firstStage)
	if err != nil {
		return banks{}, err
	}
	first1, first2, err := FirstStage(first)
	if err != nil {
		return banks{}, err
	}
	widest := steadyA.Len()
	if steadyB.Len() > widest {
		widest = steadyB.Len()
	}
	if first.Len() > widest {
		widest = first.Len()
	}
	return banks{
		steadyA:      steadyA,
		steadyB:      steadyB,
		first1:       first1,
		first2:       first2,
		maxFilterLen: widest,
	}, nil
}

// MaxLevel returns the deepest decomposition level supported for a
// signal of dataLen samples under the configured wavelets. This is the
// ceiling that explicit levels are clamped against by callers.
func MaxLevel(dataLen int, opts ...Option) (int, error) {
	cfg := applyOptions(opts)
	b, err := resolveBanks(cfg)
	if err != nil {
		return 0, err
	}
	return dwt.MaxLevel(dataLen, b.maxFilterLen), nil
}

// Analyze computes the multilevel 1D dual-tree complex wavelet
// transform. The result has level+1 entries ordered
// [cA_n, cD_n, ..., cD_1]; tree A fills the real parts and tree B the
// imaginary parts. Level 0 returns the input as a single complex entry.
func Analyze(data []float64, opts ...Option) ([][]complex128, error) {
	cfg := applyOptions(opts)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if cfg.level < LevelMax {
		return nil, fmt.Errorf("%w: %d (must be a nonnegative integer)", ErrInvalidLevel, cfg.level)
	}
	b, err := resolveBanks(cfg)
	if err != nil {
		return nil, err
	}

	level := cfg.level
	if level == LevelMax {
		level = dwt.MaxLevel(len(data), b.maxFilterLen)
	}
	if level == 0 {
		entry := make([]complex128, len(data))
		for i, v := range data {
			entry[i] = complex(v, 0)
		}
		return [][]complex128{entry}, nil
	}

	re, err := analyzeTree(data, b.first1, b.steadyA, level, cfg.mode)
	if err != nil {
		return nil, err
	}
	im, err := analyzeTree(data, b.first2, b.steadyB, level, cfg.mode)
	if err != nil {
		return nil, err
	}

	coeffs := make([][]complex128, len(re))
	for k := range re {
		entry := make([]complex128, len(re[k]))
		for i := range entry {
			entry[i] = complex(re[k][i], im[k][i])
		}
		coeffs[k] = entry
	}
	return coeffs, nil
}

// Synthesize inverts Analyze. A single-entry list is the level-0
// identity (real parts are returned unchanged). Otherwise the two trees
// are reconstructed independently and averaged.
func Synthesize(coeffs [][]complex128, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)
	if len(coeffs) == 0 {
		return nil, ErrTooFewCoefficients
	}
	if len(coeffs) == 1 {
		out := make([]float64, len(coeffs[0]))
		for i, c := range coeffs[0] {
			out[i] = real(c)
		}
		return out, nil
	}
	b, err := resolveBanks(cfg)
	if err != nil {
		return nil, err
	}

	re := make([][]float64, len(coeffs))
	im := make([][]float64, len(coeffs))
	for k, entry := range coeffs {
		re[k] = make([]float64, len(entry))
		im[k] = make([]float64, len(entry))
		for i, c := range entry {
			re[k][i] = real(c)
			im[k][i] = imag(c)
		}
	}

	recA, err := synthesizeTree(re, b.first1, b.steadyA, cfg.mode)
	if err != nil {
		return nil, err
	}
	recB, err := synthesizeTree(im, b.first2, b.steadyB, cfg.mode)
	if err != nil {
		return nil, err
	}
	if len(recA) != len(recB) {
		return nil, fmt.Errorf("dualtree: tree reconstructions disagree (%d vs %d samples)",
			len(recA), len(recB))
	}

	// Averaging the two trees cancels the aliasing either tree picks up
	// on its own when coefficients have been modified.
	out := make([]float64, len(recA))
	for i := range out {
		out[i] = 0.5 * (recA[i] + recB[i])
	}
	return out, nil
}

// analyzeTree runs one real-valued tree: a single first-stage split,
// then a multilevel decomposition of the approximation band with the
// steady-state wavelet. The first-stage detail becomes the finest band.
func analyzeTree(data []float64, first, steady dwt.Wavelet, level int, mode dwt.Mode) ([][]float64, error) {
	approx, detail, err := dwt.Transform(data, first, mode)
	if err != nil {
		return nil, err
	}
	coeffs, err := dwt.Decompose(approx, steady, mode, level-1)
	if err != nil {
		return nil, err
	}
	return append(coeffs, detail), nil
}

// synthesizeTree inverts analyzeTree. The late-stage reconstruction can
// come out one sample longer than the first-stage detail band when a
// band length was odd; the trailing boundary sample is dropped before
// the final first-stage inverse.
func synthesizeTree(coeffs [][]float64, first, steady dwt.Wavelet, mode dwt.Mode) ([]float64, error) {
	late := coeffs[:len(coeffs)-1]
	detail := coeffs[len(coeffs)-1]

	approx, err := dwt.Reconstruct(late, steady, mode)
	if err != nil {
		return nil, err
	}
	if len(approx) == len(detail)+1 {
		approx = approx[:len(approx)-1]
	}
	return dwt.Inverse(approx, detail, first, mode)
}
