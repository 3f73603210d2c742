package wavetable

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// TableSize is the sample count of one waveform cycle.
	TableSize = 2048
	// NumFrames is the number of morphable frames per table.
	NumFrames = 64
	// MipLevels is the number of smoothed copies kept per frame.
	MipLevels = 10
)

// minPeak is the normalization floor that guards against silent input.
const minPeak = 1e-4

var (
	// ErrLevelData indicates level-0 frame data of the wrong length.
	ErrLevelData = errors.New("wavetable: level-0 data must be NumFrames*TableSize samples")
	// ErrEmptyImport indicates an empty import buffer.
	ErrEmptyImport = errors.New("wavetable: import input is empty")
)

// Table is one immutable bank of frames with their mip pyramids.
//
// Storage is a single contiguous buffer of NumFrames*MipLevels*TableSize
// samples; frame rows are sliced out once per read so the per-sample path
// indexes a plain []float64.
type Table struct {
	data []float64
}

// BuildTable copies level0 (NumFrames*TableSize samples, frame-major) into
// a new Table and derives the remaining mip levels. level0 is expected to
// be normalized already; BuildTable does not rescale it.
func BuildTable(level0 []float64) (*Table, error) {
	if len(level0) != NumFrames*TableSize {
		return nil, ErrLevelData
	}

	t := &Table{data: make([]float64, NumFrames*MipLevels*TableSize)}
	for f := 0; f < NumFrames; f++ {
		copy(t.row(f, 0), level0[f*TableSize:(f+1)*TableSize])
		t.buildMips(f)
	}

	return t, nil
}

// row returns the TableSize-long slice for one frame at one mip level.
func (t *Table) row(frame, mip int) []float64 {
	base := (frame*MipLevels + mip) * TableSize
	return t.data[base : base+TableSize]
}

// buildMips derives levels 1..MipLevels-1 for one frame from its level 0.
//
// Each level k averages the two level-0 samples step/2 away on either side,
// step = 2^k, with circular indexing since the cycle is periodic. This is a
// deliberately soft box filter; the sampler compensates by always rounding
// mip selection toward more smoothing than strictly required.
func (t *Table) buildMips(frame int) {
	src := t.row(frame, 0)
	for mip := 1; mip < MipLevels; mip++ {
		step := 1 << mip
		dst := t.row(frame, mip)
		for s := 0; s < TableSize; s++ {
			sum := 0.0
			n := 0
			for k := s - step/2; k <= s+step/2; k += step {
				idx := ((k % TableSize) + TableSize) % TableSize
				sum += src[idx]
				n++
			}
			dst[s] = sum / float64(n)
		}
	}
}

// normalizePeak scales buf in place so its absolute peak is 1, with a small
// floor so silence stays silent instead of dividing by zero. Scaling by an
// exact 1.0 leaves an already normalized buffer bit-identical.
func normalizePeak(buf []float64) {
	peak := vecmath.MaxAbs(buf)
	if peak < minPeak {
		peak = minPeak
	}

	vecmath.ScaleBlockInPlace(buf, 1/peak)
}
