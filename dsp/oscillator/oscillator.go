package oscillator

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/dsp/interp"
	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
	"github.com/cwbudde/algo-wavetable/dsp/warp"
)

const (
	// MaxVoices is the unison voice ceiling.
	MaxVoices = 4

	minFreqHz = 1.0
	maxFreqHz = 20000.0

	// cvAttenuation scales normalized CV inputs before summing into
	// their base parameters.
	cvAttenuation = 0.5

	// detuneRangeCents is the per-unit-offset detune span at full depth.
	detuneRangeCents = 30.0

	// outputDrive is the gain into the final soft clip; it sets how hard
	// full-level unison sums lean on the saturation curve.
	outputDrive = 5.0
)

// Oscillator drives 1-4 unison voices through two wavetable banks, the
// warp chain, and a stereo pan/mix stage.
type Oscillator struct {
	cfg core.ProcessorConfig

	bankA *wavetable.Bank
	bankB *wavetable.Bank

	phases [MaxVoices]float64
	sync   schmittTrigger
}

// New creates an oscillator reading from bankA and bankB.
func New(bankA, bankB *wavetable.Bank, opts ...core.ProcessorOption) (*Oscillator, error) {
	if bankA == nil || bankB == nil {
		return nil, fmt.Errorf("oscillator banks must be non-nil: %p, %p", bankA, bankB)
	}

	return &Oscillator{
		cfg:   core.ApplyProcessorOptions(opts...),
		bankA: bankA,
		bankB: bankB,
		sync:  newSchmittTrigger(),
	}, nil
}

// SampleRate returns the configured sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.cfg.SampleRate }

// BankA returns the first wavetable bank.
func (o *Oscillator) BankA() *wavetable.Bank { return o.bankA }

// BankB returns the second wavetable bank.
func (o *Oscillator) BankB() *wavetable.Bank { return o.bankB }

// Reset zeroes all voice phases and re-arms the sync trigger.
func (o *Oscillator) Reset() {
	o.phases = [MaxVoices]float64{}
	o.sync = newSchmittTrigger()
}

// ProcessSample renders one stereo sample pair. Voice phase updates, bank
// reads, and warp application are strictly sequential per voice, so output
// is deterministic given the parameter history.
func (o *Oscillator) ProcessSample(p Params) (left, right float64) {
	pitch := p.PitchCV + p.Pitch + p.FineCents/100 + p.FMInput*p.FMDepth*12
	freq := core.Clamp(core.PitchToHz(pitch), minFreqHz, maxFreqHz)

	posA := core.Clamp(p.FramePosA+p.FramePosACV*cvAttenuation, 0, 1)
	posB := core.Clamp(p.FramePosB+p.FramePosBCV*cvAttenuation, 0, 1)
	xfade := core.Clamp(p.Crossfade+p.CrossfadeCV*cvAttenuation, 0, 1)
	warpAAmt := core.Clamp(p.WarpAAmount+p.WarpACV*cvAttenuation, 0, 1)
	warpBAmt := core.Clamp(p.WarpBAmount+p.WarpBCV*cvAttenuation, 0, 1)

	voices := p.Voices
	if voices < 1 {
		voices = 1
	}
	if voices > MaxVoices {
		voices = MaxVoices
	}

	detune := core.Clamp(p.Detune, 0, 1)
	spread := core.Clamp(p.Spread, 0, 1)
	level := core.Clamp(p.Level, 0, 1)
	quality := p.Quality
	if quality < wavetable.QualityLow {
		quality = wavetable.QualityLow
	}
	if quality > wavetable.QualityHigh {
		quality = wavetable.QualityHigh
	}
	syncPhase := core.Clamp(p.SyncPhase, 0, 1)

	fired := o.sync.process(p.Sync)

	sampleTime := 1 / o.cfg.SampleRate
	invVoices := 1 / float64(voices)
	center := float64(voices-1) * 0.5

	for v := 0; v < voices; v++ {
		cents := (float64(v) - center) * detune * detuneRangeCents
		vFreq := freq * math.Pow(2, cents/1200)

		if fired {
			o.phases[v] = syncPhase
		} else {
			o.phases[v] += vFreq * sampleTime
			if o.phases[v] >= 1 {
				o.phases[v] -= 1
			}
			if o.phases[v] < 0 {
				o.phases[v] += 1
			}
		}
		phase := o.phases[v]

		sA := wavetable.Sample(o.bankA, posA, phase, vFreq, o.cfg.SampleRate, quality)
		sB := wavetable.Sample(o.bankB, posB, phase, vFreq, o.cfg.SampleRate, quality)
		base := interp.Linear2(sA, sB, xfade)

		base = warp.Shape(p.WarpAMode, base, phase, warpAAmt)
		base = warp.Shape(p.WarpBMode, base, phase, warpBAmt)

		pan := 0.0
		if voices > 1 {
			pan = (float64(v)/float64(voices-1) - 0.5) * 2 * spread
		}
		left += base * (1 - pan) * invVoices
		right += base * (1 + pan) * invVoices
	}

	left = softClip(left * level * outputDrive)
	right = softClip(right * level * outputDrive)

	return left, right
}

// ProcessBlock renders len(left) stereo samples with a fixed parameter
// set. The two output slices must have equal length.
func (o *Oscillator) ProcessBlock(p Params, left, right []float64) error {
	if len(left) != len(right) {
		return fmt.Errorf("oscillator output length mismatch: %d vs %d", len(left), len(right))
	}

	for i := range left {
		left[i], right[i] = o.ProcessSample(p)
	}

	return nil
}

// softClip bounds x smoothly without hard clipping artifacts.
func softClip(x float64) float64 {
	return x / (1 + math.Abs(x))
}
