// Package floatutils provides utilities for working with floats
package floatutils

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

// Argmax returns the index of the maximum value in a slice of float64.
// If multiple equal maximum values exist, the lowest index is returned.
func Argmax(values []float64) int {
	return floats.MaxIdx(values)
}

// Argmin returns the index of the minimum value in a slice of float64.
// If multiple equal minimum values exist, the lowest index is returned.
func Argmin(values []float64) int {
	return floats.MinIdx(values)
}

// TopTwo returns the indices of the largest and second largest values
// in a slice of float64. Ties are broken towards the lowest index, so
// for values {1, 3, 3} TopTwo returns (1, 2). If the slice has a single
// element, both indices are 0.
func TopTwo(values []float64) (first, second int) {
	first = Argmax(values)
	if len(values) == 1 {
		return first, first
	}

	second = -1
	for i, value := range values {
		if i == first {
			continue
		}
		if second < 0 || value > values[second] {
			second = i
		}
	}
	return first, second
}

// InInterval returns whether value lies in the closed interval
// [interval.Min, interval.Max]
func InInterval(value float64, interval r1.Interval) bool {
	return value >= interval.Min && value <= interval.Max
}

// InHalfOpen returns whether value lies in the interval
// (interval.Min, interval.Max]
func InHalfOpen(value float64, interval r1.Interval) bool {
	return value > interval.Min && value <= interval.Max
}
