// Package alias measures how much of a signal's spectral energy sits above
// a cutoff frequency. It exists to verify band-limiting: render a segment
// at a known fundamental, measure, and assert the above-cutoff ratio stays
// under a threshold.
package alias

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/window"
)

// Config controls a measurement.
type Config struct {
	// SampleRate of the analyzed signal in Hz.
	SampleRate float64
	// CutoffHz divides the spectrum; energy at or above it counts as
	// high-band energy.
	CutoffHz float64
	// Window applied before the FFT. Defaults to Hann.
	Window window.Type
}

// Result holds integrated spectral power on both sides of the cutoff.
type Result struct {
	TotalPower float64
	HighPower  float64
}

// RatioDB returns the high-band share of total power in dB. A fully
// band-limited signal approaches -Inf.
func (r Result) RatioDB() float64 {
	if r.TotalPower <= 0 {
		return core.LinearPowerToDB(0)
	}

	return core.LinearPowerToDB(r.HighPower / r.TotalPower)
}

// Measure windows signal, transforms it, and integrates power below and
// above cfg.CutoffHz. Only non-negative-frequency bins contribute.
func Measure(signal []float64, cfg Config) (Result, error) {
	if len(signal) < 2 {
		return Result{}, fmt.Errorf("alias: signal too short: %d", len(signal))
	}
	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("alias: sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.CutoffHz <= 0 || cfg.CutoffHz >= cfg.SampleRate/2 {
		return Result{}, fmt.Errorf("alias: cutoff must be in (0, nyquist): %f", cfg.CutoffHz)
	}

	coeffs, err := window.Generate(cfg.Window, len(signal))
	if err != nil {
		return Result{}, err
	}

	fftSize := nextPow2(len(signal))

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("alias: creating FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("alias: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	binHz := cfg.SampleRate / float64(fftSize)
	cutoffBin := int(cfg.CutoffHz / binHz)

	var res Result
	res.TotalPower = vecmath.Sum(power)
	if cutoffBin < bins {
		res.HighPower = vecmath.Sum(power[cutoffBin:])
	}

	return res, nil
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
