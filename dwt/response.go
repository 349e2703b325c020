package dwt

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FrequencyResponse evaluates the complex frequency response of a
// filter by zero-padded FFT. size must be a power of two and at least
// len(taps); bin k corresponds to the normalized frequency k/size.
func FrequencyResponse(taps []float64, size int) ([]complex128, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyInput
	}
	if size < len(taps) || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: FFT size %d for %d taps (power of two >= tap count required)",
			ErrInvalidSize, size, len(taps))
	}
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, err
	}
	buf := make([]complex128, size)
	for i, t := range taps {
		buf[i] = complex(t, 0)
	}
	if err := plan.Forward(buf, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
