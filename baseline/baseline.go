package baseline

import "slices"

// Baseline estimates the background of data by maxIter rounds of
// approximation-only reconstruction and clamping. Each round pins the
// declared background regions back to their original values, smooths
// the working signal with ApproxReconstruct, and pulls the working
// signal down to the smooth candidate wherever it exceeds it. There is
// no convergence check; the loop always runs exactly maxIter times.
// After the loop the estimate is forced to zero at masked samples.
func Baseline(data []float64, maxIter int, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if maxIter <= 0 {
		return nil, ErrInvalidIterations
	}
	if cfg.mask != nil && len(cfg.mask) != len(data) {
		return nil, ErrMaskLength
	}
	for _, r := range cfg.regions {
		if err := r.validate(len(data)); err != nil {
			return nil, err
		}
	}

	signal := slices.Clone(data)
	var background []float64
	for iter := 0; iter < maxIter; iter++ {
		for _, r := range cfg.regions {
			r.apply(signal, data)
		}
		var err error
		background, err = ApproxReconstruct(signal, opts...)
		if err != nil {
			return nil, err
		}
		for i := range signal {
			if signal[i] > background[i] {
				signal[i] = background[i]
			}
		}
	}

	for i, masked := range cfg.mask {
		if masked {
			background[i] = 0
		}
	}
	return background, nil
}

// Baseline2D is the 2D counterpart of Baseline. It accepts the input
// but surfaces the missing 2D transform from ApproxReconstruct2D.
func Baseline2D(data [][]float64, maxIter int, opts ...Option) ([][]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if maxIter <= 0 {
		return nil, ErrInvalidIterations
	}
	if _, err := ApproxReconstruct2D(data, opts...); err != nil {
		return nil, err
	}
	return nil, ErrNotImplemented
}
