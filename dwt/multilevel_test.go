package dwt

import (
	"errors"
	"math"
	"testing"
)

func TestMaxLevel(t *testing.T) {
	tests := []struct {
		dataLen   int
		filterLen int
		want      int
	}{
		{1024, 2, 10},
		{100, 10, 3}, // 100/9 = 11.1 -> floor(log2) = 3
		{1000, 8, 7},
		{72, 10, 3},
		{9, 10, 0},
		{5, 10, 0},
		{0, 2, 0},
		{16, 1, 0},
	}

	for _, tt := range tests {
		if got := MaxLevel(tt.dataLen, tt.filterLen); got != tt.want {
			t.Errorf("MaxLevel(%d, %d) = %d, expected %d",
				tt.dataLen, tt.filterLen, got, tt.want)
		}
	}
}

func TestDecomposeShape(t *testing.T) {
	w, _ := Lookup("db2")
	data := testSine(100)

	for level := 0; level <= 4; level++ {
		coeffs, err := Decompose(data, w, ModeSymmetric, level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if len(coeffs) != level+1 {
			t.Fatalf("level %d: %d entries, expected %d", level, len(coeffs), level+1)
		}

		// Bands are ordered coarsest first; the finest detail band is
		// the longest and sits last.
		for i := 1; i < len(coeffs)-1; i++ {
			if len(coeffs[i]) > len(coeffs[i+1]) {
				t.Errorf("level %d: band %d longer than band %d", level, i, i+1)
			}
		}
	}
}

func TestDecomposeLevelZeroIdentity(t *testing.T) {
	w, _ := Lookup("haar")
	data := []float64{1, 2, 3}

	coeffs, err := Decompose(data, w, ModeSymmetric, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coeffs) != 1 {
		t.Fatalf("%d entries, expected 1", len(coeffs))
	}
	rec, err := Reconstruct(coeffs, w, ModeSymmetric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range data {
		if rec[i] != data[i] {
			t.Errorf("rec[%d] = %v, expected %v", i, rec[i], data[i])
		}
	}
}

func TestMultilevelRoundTrip(t *testing.T) {
	for name, tol := range roundTripTol {
		w, err := Lookup(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, n := range []int{64, 100, 101} {
			data := testSine(n)
			maxLevel := MaxLevel(n, w.Len())

			for level := 1; level <= maxLevel; level++ {
				coeffs, err := Decompose(data, w, ModeSymmetric, level)
				if err != nil {
					t.Fatalf("%s n=%d level=%d: decompose: %v", name, n, level, err)
				}
				rec, err := Reconstruct(coeffs, w, ModeSymmetric)
				if err != nil {
					t.Fatalf("%s n=%d level=%d: reconstruct: %v", name, n, level, err)
				}
				if len(rec) < n {
					t.Fatalf("%s n=%d level=%d: reconstruction too short (%d)", name, n, level, len(rec))
				}
				for i := 0; i < n; i++ {
					if math.Abs(rec[i]-data[i]) > tol {
						t.Fatalf("%s n=%d level=%d: rec[%d] = %v, expected %v",
							name, n, level, i, rec[i], data[i])
					}
				}
			}
		}
	}
}

func TestDecomposeErrors(t *testing.T) {
	w, _ := Lookup("haar")

	_, err := Decompose([]float64{1, 2}, w, ModeSymmetric, -1)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}

	_, err = Decompose(nil, w, ModeSymmetric, 1)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Reconstruct(nil, w, ModeSymmetric)
	if !errors.Is(err, ErrTooFewCoefficients) {
		t.Errorf("expected ErrTooFewCoefficients, got %v", err)
	}

	_, err = Reconstruct([][]float64{{1, 2, 3, 4}, {1}}, w, ModeSymmetric)
	if !errors.Is(err, ErrCoefficientMismatch) {
		t.Errorf("expected ErrCoefficientMismatch, got %v", err)
	}
}
