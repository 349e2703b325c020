package dwt

import (
	"errors"
	"math"
	"testing"
)

// Hand-computed Haar analysis of [1 2 3 4] with symmetric extension:
// cA[i] = (x[2i] + x[2i+1])/sqrt(2), cD[i] = (x[2i] - x[2i+1])/sqrt(2).
func TestTransformHaarVectors(t *testing.T) {
	w, _ := Lookup("haar")
	data := []float64{1, 2, 3, 4}

	approx, detail, err := Transform(data, w, ModeSymmetric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := math.Sqrt2 / 2
	wantA := []float64{3 * s, 7 * s}
	wantD := []float64{-s, -s}
	if len(approx) != 2 || len(detail) != 2 {
		t.Fatalf("lengths = %d/%d, expected 2/2", len(approx), len(detail))
	}
	for i := range wantA {
		if math.Abs(approx[i]-wantA[i]) > 1e-12 {
			t.Errorf("approx[%d] = %v, expected %v", i, approx[i], wantA[i])
		}
		if math.Abs(detail[i]-wantD[i]) > 1e-12 {
			t.Errorf("detail[%d] = %v, expected %v", i, detail[i], wantD[i])
		}
	}
}

func TestTransformOutputLength(t *testing.T) {
	tests := []struct {
		n       int
		wavelet string
		want    int
	}{
		{4, "haar", 2},
		{5, "haar", 3},
		{100, "db2", 51},
		{101, "db2", 52},
		{100, "bior2.2", 52},
		{3, "db4", 5}, // filter longer than the signal
	}

	for _, tt := range tests {
		w, err := Lookup(tt.wavelet)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data := make([]float64, tt.n)
		approx, detail, err := Transform(data, w, ModeSymmetric)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(approx) != tt.want || len(detail) != tt.want {
			t.Errorf("n=%d %s: lengths %d/%d, expected %d",
				tt.n, tt.wavelet, len(approx), len(detail), tt.want)
		}
	}
}

// roundTripTol holds per-wavelet reconstruction tolerances. Closed-form
// filters reconstruct to machine precision; db3/db4 carry published
// constants with finite precision.
var roundTripTol = map[string]float64{
	"haar":    1e-10,
	"db2":     1e-10,
	"bior2.2": 1e-10,
	"db3":     1e-6,
	"db4":     1e-6,
}

func testSine(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(0.01 * float64(i))
	}
	return out
}

func TestSingleLevelRoundTrip(t *testing.T) {
	for name, tol := range roundTripTol {
		for _, mode := range []Mode{ModeSymmetric, ModeZero} {
			for _, n := range []int{16, 17, 100, 101, 5} {
				w, err := Lookup(name)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				data := testSine(n)

				approx, detail, err := Transform(data, w, mode)
				if err != nil {
					t.Fatalf("%s n=%d: transform: %v", name, n, err)
				}
				rec, err := Inverse(approx, detail, w, mode)
				if err != nil {
					t.Fatalf("%s n=%d: inverse: %v", name, n, err)
				}

				// Odd input lengths reconstruct with one extra
				// boundary sample at the end.
				if len(rec) != n && len(rec) != n+1 {
					t.Fatalf("%s n=%d mode=%v: reconstruction length %d", name, n, mode, len(rec))
				}
				for i := 0; i < n; i++ {
					if math.Abs(rec[i]-data[i]) > tol {
						t.Fatalf("%s n=%d mode=%v: rec[%d] = %v, expected %v",
							name, n, mode, i, rec[i], data[i])
					}
				}
			}
		}
	}
}

func TestTransformErrors(t *testing.T) {
	w, _ := Lookup("haar")

	_, _, err := Transform(nil, w, ModeSymmetric)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Inverse([]float64{1, 2}, []float64{1}, w, ModeSymmetric)
	if !errors.Is(err, ErrCoefficientMismatch) {
		t.Errorf("expected ErrCoefficientMismatch, got %v", err)
	}

	_, err = Inverse(nil, nil, w, ModeSymmetric)
	if !errors.Is(err, ErrCoefficientMismatch) {
		t.Errorf("expected ErrCoefficientMismatch, got %v", err)
	}
}

func TestExtAtSymmetric(t *testing.T) {
	data := []float64{1, 2, 3}

	tests := []struct {
		t    int
		want float64
	}{
		{-1, 1}, // half-sample mirror: edge repeats
		{-2, 2},
		{-3, 3},
		{3, 3},
		{4, 2},
		{5, 1},
		{6, 1}, // second fold
		{0, 1},
		{2, 3},
	}
	for _, tt := range tests {
		if got := extAt(data, tt.t, ModeSymmetric); got != tt.want {
			t.Errorf("extAt(%d) = %v, expected %v", tt.t, got, tt.want)
		}
	}

	if got := extAt(data, -1, ModeZero); got != 0 {
		t.Errorf("zero mode extAt(-1) = %v, expected 0", got)
	}
}
