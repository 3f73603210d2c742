package wavetable

import "github.com/cwbudde/algo-wavetable/dsp/interp"

// Quality selects the sampler's interpolation/anti-aliasing trade-off.
type Quality int

const (
	// QualityLow biases mip selection two levels smoother and uses
	// bilinear interpolation. Cheapest, dullest.
	QualityLow Quality = iota
	// QualityMedium uses the computed mip level with bilinear interpolation.
	QualityMedium
	// QualityHigh uses cubic Hermite interpolation along the sample axis.
	QualityHigh
)

// mipBase is the normalized cycle frequency below which level 0 is used;
// each subsequent level doubles the threshold.
const mipBase = 32

// MipLevel returns the mip index for a fundamental of freqHz played at
// sampleRate. Selection is monotonic non-decreasing in frequency.
func MipLevel(freqHz, sampleRate float64, q Quality) int {
	fc := freqHz / sampleRate * TableSize

	mip := 0
	for mip < MipLevels-1 && fc >= float64(int(mipBase)<<mip) {
		mip++
	}

	if q == QualityLow {
		mip += 2
		if mip > MipLevels-1 {
			mip = MipLevels - 1
		}
	}

	return mip
}

// Sample reads the table at framePos in [0,1] and phase in [0,1), band
// limited for a fundamental of freqHz at sampleRate.
func (t *Table) Sample(framePos, phase, freqHz, sampleRate float64, q Quality) float64 {
	return t.SampleAtMip(framePos, phase, MipLevel(freqHz, sampleRate, q), q)
}

// SampleAtMip reads the table at an explicit mip level. Interpolation is
// bilinear across (frame, sample); QualityHigh upgrades the sample axis to
// cubic Hermite before the linear frame blend.
func (t *Table) SampleAtMip(framePos, phase float64, mip int, q Quality) float64 {
	fIdx := framePos * float64(NumFrames-1)
	f0 := int(fIdx)
	if f0 < 0 {
		f0 = 0
	}
	if f0 > NumFrames-2 {
		f0 = NumFrames - 2
	}
	fracF := fIdx - float64(f0)

	pos := phase * TableSize
	s0 := int(pos)
	frac := pos - float64(s0)
	s0 = ((s0 % TableSize) + TableSize) % TableSize
	s1 := (s0 + 1) % TableSize

	row0 := t.row(f0, mip)
	row1 := t.row(f0+1, mip)

	if q == QualityHigh {
		sm1 := (s0 - 1 + TableSize) % TableSize
		sp2 := (s1 + 1) % TableSize
		v0 := interp.Hermite4(frac, row0[sm1], row0[s0], row0[s1], row0[sp2])
		v1 := interp.Hermite4(frac, row1[sm1], row1[s0], row1[s1], row1[sp2])
		return interp.Linear2(v0, v1, fracF)
	}

	v0 := interp.Linear2(row0[s0], row0[s1], frac)
	v1 := interp.Linear2(row1[s0], row1[s1], frac)

	return interp.Linear2(v0, v1, fracF)
}

// Sample reads bank at framePos/phase band limited for freqHz, or returns
// silence if the bank has not published a table yet. This is the sole
// cross-thread contract between loader and audio path.
func Sample(b *Bank, framePos, phase, freqHz, sampleRate float64, q Quality) float64 {
	t := b.Snapshot()
	if t == nil {
		return 0
	}

	return t.Sample(framePos, phase, freqHz, sampleRate, q)
}
