// Package interp provides the fractional interpolation primitives used by
// the wavetable sampler.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// The wavetable sampler selects between them per read based on its quality
// tier.
package interp
