package util

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x. For floating-point NaN the result is
// NaN, since NaN compares false against every bound.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
