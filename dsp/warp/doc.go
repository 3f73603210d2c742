// Package warp provides the nonlinear and phase-domain operators applied
// after wavetable lookup. Two warp slots run in series in the oscillator;
// each blends a warped candidate with the dry sample by its amount.
//
// Modes:
//   - [ModePhaseDistort]: re-exponentiates phase before sine resynthesis
//   - [ModeBendAsym]:     tanh soft clip with amount-scaled drive
//   - [ModeMirror]:       half-cycle rectification blend
//   - [ModeFold]:         reflective wavefolding into [-1, 1]
//   - [ModeSyncLike]:     phase multiplication approximating hard sync
//
// Amounts below a small epsilon bypass the mode computation entirely, so a
// disabled slot costs nothing and is bit-exact transparent.
package warp
