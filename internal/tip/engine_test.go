package tip

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestComputeBoundaryScenarios(t *testing.T) {
	tests := []struct {
		name    string
		compute func() float64
		want    float64
	}{
		{name: "tip 15% of 100", compute: func() float64 { return ComputeTip(100, 15) }, want: 15},
		{name: "total 15% of 100", compute: func() float64 { return ComputeTotal(100, 15, 0) }, want: 115},
		{name: "split 10% of 100 by 2", compute: func() float64 { return ComputeSplit(100, 10, 2, 0) }, want: 55},
		{name: "total with tax", compute: func() float64 { return ComputeTotal(100, 15, 10) }, want: 125},
		{name: "split with tax", compute: func() float64 { return ComputeSplit(100, 10, 2, 10) }, want: 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.compute(); !approxEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestComputeRelations(t *testing.T) {
	bills := []float64{0, 0.01, 12.5, 100, 9999999}
	percents := []float64{0, 10, 15, 18.5, 30, 250}
	taxes := []float64{0, 0.99, 10}
	people := []float64{1, 2, 3, 7}

	for _, b := range bills {
		if got := ComputeTip(b, 0); got != 0 {
			t.Fatalf("ComputeTip(%v, 0) = %v, want 0", b, got)
		}
		for _, p := range percents {
			tip := ComputeTip(b, p)
			if tip < 0 {
				t.Fatalf("ComputeTip(%v, %v) = %v, want non-negative", b, p, tip)
			}
			for _, tax := range taxes {
				total := ComputeTotal(b, p, tax)
				if !approxEqual(total, tip+b+tax) {
					t.Fatalf("ComputeTotal(%v, %v, %v) = %v, want %v", b, p, tax, total, tip+b+tax)
				}
				if got := ComputeSplit(b, p, 1, tax); got != total {
					t.Fatalf("ComputeSplit with one person = %v, want %v", got, total)
				}
				for _, n := range people {
					if got := ComputeSplit(b, p, n, tax); !approxEqual(got, total/n) {
						t.Fatalf("ComputeSplit(%v, %v, %v, %v) = %v, want %v", b, p, n, tax, got, total/n)
					}
				}
			}
		}
	}
}

func TestComputeOverflowsOnlyPastFloatRange(t *testing.T) {
	if got := ComputeTotal(1e308, 100, 0); !math.IsInf(got, 1) {
		t.Fatalf("expected raw engine total to overflow, got %v", got)
	}
}
