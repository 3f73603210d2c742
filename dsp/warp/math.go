//go:build !fastmath

package warp

import "math"

// shapeTanh computes tanh(x) for the asymmetric bend mode.
func shapeTanh(x float64) float64 {
	return math.Tanh(x)
}
