// Package oscillator renders band-limited stereo audio from two wavetable
// banks: 1-4 detuned unison voices, dual-bank crossfade, two serial warp
// slots, stereo spread, and a final soft clip. The per-sample path does not
// allocate, block, or take locks, so it is safe to drive from a real-time
// audio callback.
package oscillator
