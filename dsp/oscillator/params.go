package oscillator

import (
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
	"github.com/cwbudde/algo-wavetable/dsp/warp"
)

// Params is the full per-sample parameter surface. All CV fields are
// additive modulation inputs normalized to [-1, 1]; they are attenuated by
// 0.5 and the sums clamped to each parameter's documented range, never
// rejected. Out-of-range base values are clamped the same way.
type Params struct {
	// Pitch is the coarse offset from C4 in semitones, [-48, 48].
	Pitch float64
	// FineCents is the fine offset in cents, [-50, 50].
	FineCents float64
	// PitchCV is an additive pitch modulation in semitones.
	PitchCV float64
	// FMDepth scales FMInput into pitch, [-1, 1]; full depth spans
	// +/-12 semitones for a full-scale input.
	FMDepth float64
	// FMInput is the linear FM signal in [-1, 1].
	FMInput float64

	// FramePosA/B are the bank frame positions in [0, 1].
	FramePosA   float64
	FramePosACV float64
	FramePosB   float64
	FramePosBCV float64

	// Crossfade blends bank A (0) to bank B (1).
	Crossfade   float64
	CrossfadeCV float64

	WarpAMode   warp.Mode
	WarpAAmount float64
	WarpACV     float64
	WarpBMode   warp.Mode
	WarpBAmount float64
	WarpBCV     float64

	// Voices is the unison voice count, clamped to [1, 4].
	Voices int
	// Detune is the unison detune depth in [0, 1]; 1 spreads the outer
	// voices by +/-45 cents at four voices.
	Detune float64
	// Spread is the stereo spread in [0, 1].
	Spread float64

	Quality wavetable.Quality

	// Level is the output level in [0, 1].
	Level float64

	// SyncPhase is the phase all voices jump to on a sync trigger, [0, 1).
	SyncPhase float64
	// Sync is the hard-sync gate signal; a rising edge through the
	// trigger thresholds resets every voice to SyncPhase.
	Sync float64
}

// DefaultParams returns a neutral single-voice parameter set.
func DefaultParams() Params {
	return Params{
		Crossfade: 0.5,
		Voices:    1,
		Detune:    0.2,
		Spread:    0.5,
		Quality:   wavetable.QualityMedium,
		Level:     0.8,
	}
}
