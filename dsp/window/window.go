// Package window provides the analysis windows used by spectral
// measurement: periodic (FFT-form) Hann and Blackman.
package window

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeHann Type = iota
	TypeBlackman
)

// ErrUnknownType indicates an unrecognized window type.
var ErrUnknownType = errors.New("window: unknown type")

// Generate returns size periodic window coefficients.
func Generate(t Type, size int) ([]float64, error) {
	if size <= 0 {
		return nil, errors.New("window: size must be > 0")
	}

	out := make([]float64, size)
	n := float64(size)

	switch t {
	case TypeHann:
		for i := range out {
			out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/n)
		}
	case TypeBlackman:
		for i := range out {
			x := 2 * math.Pi * float64(i) / n
			out[i] = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
		}
	default:
		return nil, ErrUnknownType
	}

	return out, nil
}

// Apply multiplies buf in place by the window of type t.
func Apply(t Type, buf []float64) error {
	coeffs, err := Generate(t, len(buf))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}
