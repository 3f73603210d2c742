package wavetable

import "github.com/cwbudde/algo-wavetable/dsp/interp"

// ImportFrames converts an arbitrary-length mono waveform into a full
// Table: NumFrames contiguous segments each resampled to TableSize by
// linear interpolation, then peak-normalized as a whole.
//
// Inputs shorter than NumFrames*TableSize are stretched in one piece into
// the full grid instead of being segmented. Inputs whose segments already
// hold exactly TableSize samples are copied verbatim, so a grid-sized
// import reproduces its input exactly (up to normalization).
func ImportFrames(mono []float64) (*Table, error) {
	if len(mono) == 0 {
		return nil, ErrEmptyImport
	}

	want := NumFrames * TableSize
	level0 := make([]float64, want)

	if len(mono) >= want {
		perFrame := len(mono) / NumFrames
		for f := 0; f < NumFrames; f++ {
			dst := level0[f*TableSize : (f+1)*TableSize]
			start := f * perFrame
			if perFrame == TableSize {
				copy(dst, mono[start:start+TableSize])
				continue
			}
			resampleSegment(dst, mono, start, perFrame)
		}
	} else {
		stretch(level0, mono)
	}

	normalizePeak(level0)

	return BuildTable(level0)
}

// resampleSegment fills dst from src[start:start+length] by linear
// interpolation over fractional source indices.
func resampleSegment(dst, src []float64, start, length int) {
	for s := range dst {
		t := float64(s) / float64(len(dst)) * float64(length-1)
		i0 := start + int(t)
		if i0 < 0 {
			i0 = 0
		}
		if i0 >= len(src) {
			i0 = len(src) - 1
		}
		i1 := i0 + 1
		if i1 >= len(src) {
			i1 = len(src) - 1
		}
		frac := t - float64(int(t))
		dst[s] = interp.Linear2(src[i0], src[i1], frac)
	}
}

// stretch linearly resamples the whole of src into dst.
func stretch(dst, src []float64) {
	for i := range dst {
		t := float64(i) / float64(len(dst)) * float64(len(src))
		i0 := int(t)
		if i0 >= len(src) {
			i0 = len(src) - 1
		}
		i1 := i0 + 1
		if i1 >= len(src) {
			i1 = len(src) - 1
		}
		frac := t - float64(i0)
		dst[i] = interp.Linear2(src[i0], src[i1], frac)
	}
}
