//go:build fastmath

package warp

import (
	"github.com/meko-christian/algo-approx"
)

// shapeTanh computes tanh(x) via the exponential identity
// tanh(x) = 1 - 2/(e^(2x) + 1) using the fast exp approximation.
// Saturates outside |x| > 3 where tanh is within 1e-2 of ±1.
func shapeTanh(x float64) float64 {
	if x > 3 {
		return 1
	}

	if x < -3 {
		return -1
	}

	return 1 - 2/(approx.FastExp(2*x)+1)
}
