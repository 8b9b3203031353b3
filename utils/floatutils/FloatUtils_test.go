package floatutils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestArgmaxTies(t *testing.T) {
	tests := []struct {
		values []float64
		max    int
		min    int
	}{
		{[]float64{0, 0, 0, 0}, 0, 0},
		{[]float64{1, 3, 3, -1}, 1, 3},
		{[]float64{-2, -2, 5, 5}, 2, 0},
		{[]float64{7}, 0, 0},
	}

	for _, test := range tests {
		if got := Argmax(test.values); got != test.max {
			t.Errorf("argmax(%v): expected %v, got %v", test.values, test.max,
				got)
		}
		if got := Argmin(test.values); got != test.min {
			t.Errorf("argmin(%v): expected %v, got %v", test.values, test.min,
				got)
		}
	}
}

func TestTopTwo(t *testing.T) {
	tests := []struct {
		values        []float64
		first, second int
	}{
		{[]float64{1, 3, 3}, 1, 2},
		{[]float64{5, 1, 4, 2}, 0, 2},
		{[]float64{0, 0, 0}, 0, 1},
		{[]float64{-1, math.Inf(1), 2}, 1, 2},
		{[]float64{9}, 0, 0},
	}

	for _, test := range tests {
		first, second := TopTwo(test.values)
		if first != test.first || second != test.second {
			t.Errorf("topTwo(%v): expected (%v, %v), got (%v, %v)",
				test.values, test.first, test.second, first, second)
		}
	}
}

func TestIntervals(t *testing.T) {
	unit := r1.Interval{Min: 0, Max: 1}

	for _, v := range []float64{0, 0.5, 1} {
		if !InInterval(v, unit) {
			t.Errorf("%v should be in %v", v, unit)
		}
	}
	for _, v := range []float64{-1e-9, 1.0000001, math.NaN()} {
		if InInterval(v, unit) {
			t.Errorf("%v should not be in %v", v, unit)
		}
	}

	if InHalfOpen(0, unit) {
		t.Error("0 should not be in (0, 1]")
	}
	if !InHalfOpen(1, unit) {
		t.Error("1 should be in (0, 1]")
	}
}
