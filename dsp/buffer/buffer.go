// Package buffer provides a reusable stereo block buffer and pool for
// allocation-friendly block rendering. The oscillator writes into raw
// []float64 pairs; Stereo is an optional convenience that keeps the two
// channels sized together and reusable across callbacks.
package buffer

// Stereo holds paired left/right sample buffers of equal length.
type Stereo struct {
	L []float64
	R []float64
}

// NewStereo returns a zeroed stereo buffer of the given length.
func NewStereo(length int) *Stereo {
	s := &Stereo{}
	s.Resize(length)
	return s
}

// Len returns the per-channel sample count.
func (s *Stereo) Len() int { return len(s.L) }

// Resize adjusts both channels to length, reusing capacity when possible.
// Grown regions are not cleared; call Zero when a clean buffer is needed.
func (s *Stereo) Resize(length int) {
	if length < 0 {
		length = 0
	}

	if cap(s.L) < length {
		s.L = make([]float64, length)
		s.R = make([]float64, length)
		return
	}

	s.L = s.L[:length]
	s.R = s.R[:length]
}

// Zero clears both channels.
func (s *Stereo) Zero() {
	for i := range s.L {
		s.L[i] = 0
		s.R[i] = 0
	}
}
