package baseline_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/baseline"
)

func ExampleBaseline() {
	// A flat background with one sharp peak on top.
	data := make([]float64, 256)
	for i := range data {
		d := float64(i - 128)
		data[i] = 1 + 6*math.Exp(-d*d/18)
	}
	estimate, err := baseline.Baseline(data, 10)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(estimate))
	// Output: 256
}

func ExampleApproxReconstruct() {
	data := make([]float64, 128)
	smooth, err := baseline.ApproxReconstruct(data, baseline.WithLevel(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d %.1f\n", len(smooth), smooth[0])
	// Output: 128 0.0
}
