package baseline

import "github.com/cwbudde/algo-wavelet/dualtree"

// transformOptions translates the shared wavelet configuration into
// dual-tree options, leaving the level for the caller to resolve.
func transformOptions(cfg config) []dualtree.Option {
	return []dualtree.Option{
		dualtree.WithFirstStage(cfg.firstStage),
		dualtree.WithWavelet(cfg.wavelet),
		dualtree.WithMode(cfg.mode),
	}
}

// resolveLevel clamps the configured level against the supported
// maximum for a signal of n samples, firing the advisory callback on
// clamp. Negative levels other than LevelMax pass through unresolved
// and are rejected by the transform.
func resolveLevel(cfg config, n int) (int, error) {
	max, err := dualtree.MaxLevel(n, transformOptions(cfg)...)
	if err != nil {
		return 0, err
	}
	level := cfg.level
	switch {
	case level == LevelMax:
		level = max
	case level > max:
		if cfg.notice != nil {
			cfg.notice(level, max)
		}
		level = max
	}
	return level, nil
}

// ApproxReconstruct returns the approximation-only dual-tree
// reconstruction of data: the signal is analyzed, every detail band is
// zeroed, and the result is synthesized back. The output always has
// the same length as the input; a reconstruction that comes out longer
// is truncated and one that comes out shorter is zero-padded. A mask
// set with WithMask is accepted for interface symmetry with Baseline
// but is not applied here.
func ApproxReconstruct(data []float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	level, err := resolveLevel(cfg, len(data))
	if err != nil {
		return nil, err
	}

	dtOpts := append(transformOptions(cfg), dualtree.WithLevel(level))
	coeffs, err := dualtree.Analyze(data, dtOpts...)
	if err != nil {
		return nil, err
	}
	for k := 1; k < len(coeffs); k++ {
		for i := range coeffs[k] {
			coeffs[k][i] = 0
		}
	}
	rec, err := dualtree.Synthesize(coeffs, dtOpts...)
	if err != nil {
		return nil, err
	}

	switch {
	case len(rec) == len(data):
		return rec, nil
	case len(rec) > len(data):
		return rec[:len(data)], nil
	default:
		out := make([]float64, len(data))
		copy(out, rec)
		return out, nil
	}
}

// ApproxReconstruct2D is the 2D counterpart of ApproxReconstruct. The
// 2D dual-tree transform is not implemented; the call always fails
// with ErrNotImplemented.
func ApproxReconstruct2D(data [][]float64, opts ...Option) ([][]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	return nil, ErrNotImplemented
}
