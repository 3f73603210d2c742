// Package wavetable implements a mip-mapped dual-bank wavetable: table
// construction from procedural generation or an imported mono waveform,
// per-frame mip pyramids that bound harmonic content as pitch rises, and a
// frequency-adaptive band-limited sampler.
//
// Layout: a [Table] holds NumFrames frames, each with MipLevels
// progressively smoothed copies of TableSize samples, in one contiguous
// allocation. Tables are immutable once built. A [Bank] publishes a Table
// through an atomic pointer so a real-time reader never blocks while a
// loader rebuilds: readers either see the previous fully built table or,
// before the first publish, silence.
//
// Common workflows:
//   - Generate(ShapeClassic) / Generate(ShapeFormant)
//   - ImportFrames(mono)
//   - NewBank() + (*Bank).Import / (*Bank).Publish
//   - (*Table).Sample / package-level Sample on a Bank
package wavetable
