package warp

import (
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/interp"
)

// Mode selects the warp transfer function.
type Mode int

const (
	ModePhaseDistort Mode = iota
	ModeBendAsym
	ModeMirror
	ModeFold
	ModeSyncLike
)

// bypassEpsilon is the amount below which a slot is treated as off.
const bypassEpsilon = 1e-4

// ValidMode reports whether mode is a known warp mode.
func ValidMode(mode Mode) bool {
	return mode >= ModePhaseDistort && mode <= ModeSyncLike
}

// Shape applies one warp operator to a sample at the given oscillator
// phase and blends the result with the dry sample by amount in [0, 1].
// Amounts below the bypass epsilon return sample unchanged.
func Shape(mode Mode, sample, phase, amount float64) float64 {
	if amount < bypassEpsilon {
		return sample
	}

	warped := sample

	switch mode {
	case ModePhaseDistort:
		k := 0.5 + amount*1.5
		warped = math.Sin(2*math.Pi*math.Pow(phase, k)) * 0.9
	case ModeBendAsym:
		warped = shapeTanh(sample * (1 + amount*3))
	case ModeMirror:
		s := math.Abs(sample)
		if phase > 0.5 {
			s = -s
		}
		warped = s*(1-amount) + sample*amount
	case ModeFold:
		s := sample
		for s > 1 {
			s = 2 - s
		}
		for s < -1 {
			s = -2 - s
		}
		warped = interp.Linear2(sample, s, amount)
	case ModeSyncLike:
		mult := 1 + amount*7
		p := phase * mult
		p -= math.Floor(p)
		warped = math.Sin(2*math.Pi*p) * 0.9
	}

	return interp.Linear2(sample, warped, amount)
}
