// Package intutils provides utilities for working with integers
package intutils

// Min calculates and returns the minimum integer in a list
func Min(ints ...int) int {
	min := ints[0]
	for _, val := range ints {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum int in a list
func Max(ints ...int) int {
	max := ints[0]
	for _, val := range ints {
		if val > max {
			max = val
		}
	}
	return max
}

// Clip clips an integer to within a minimum and maximum value.
// If the integer exceeds max, then the function returns the max
// If min exceeds the integer, then the function returns the min
func Clip(value, min, max int) int {
	return Max(Min(value, max), min)
}
