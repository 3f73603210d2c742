package alias

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavetable/dsp/window"
)

func sineAtBin(bin, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * float64(bin) * float64(i) / float64(size))
	}
	return out
}

func TestMeasureLowSineStaysBelowCutoff(t *testing.T) {
	// Bin 64 of a 2048-point frame at 2048 Hz sits at 64 Hz, far below
	// the 512 Hz cutoff. Hann leakage decays fast enough that the
	// high-band share stays deep under -40 dB.
	res, err := Measure(sineAtBin(64, 2048), Config{
		SampleRate: 2048,
		CutoffHz:   512,
		Window:     window.TypeHann,
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	if ratio := res.RatioDB(); ratio > -40 {
		t.Fatalf("RatioDB() = %v, want < -40 dB", ratio)
	}
	if res.TotalPower <= 0 {
		t.Fatalf("TotalPower = %v, want > 0", res.TotalPower)
	}
}

func TestMeasureHighSineDominatesHighBand(t *testing.T) {
	res, err := Measure(sineAtBin(600, 2048), Config{
		SampleRate: 2048,
		CutoffHz:   512,
		Window:     window.TypeHann,
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	if ratio := res.RatioDB(); ratio < -1 {
		t.Fatalf("RatioDB() = %v, want near 0 dB for an above-cutoff tone", ratio)
	}
}

func TestMeasureBlackmanWindow(t *testing.T) {
	res, err := Measure(sineAtBin(32, 1024), Config{
		SampleRate: 1024,
		CutoffHz:   256,
		Window:     window.TypeBlackman,
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if ratio := res.RatioDB(); ratio > -60 {
		t.Fatalf("RatioDB() = %v, want < -60 dB with Blackman sidelobes", ratio)
	}
}

func TestMeasureValidation(t *testing.T) {
	good := Config{SampleRate: 48000, CutoffHz: 20000}

	if _, err := Measure([]float64{1}, good); err == nil {
		t.Fatal("short signal must fail")
	}
	if _, err := Measure(make([]float64, 64), Config{SampleRate: 0, CutoffHz: 100}); err == nil {
		t.Fatal("zero sample rate must fail")
	}
	if _, err := Measure(make([]float64, 64), Config{SampleRate: 48000, CutoffHz: 0}); err == nil {
		t.Fatal("zero cutoff must fail")
	}
	if _, err := Measure(make([]float64, 64), Config{SampleRate: 48000, CutoffHz: 24000}); err == nil {
		t.Fatal("cutoff at nyquist must fail")
	}
	if _, err := Measure(make([]float64, 64), Config{SampleRate: 48000, CutoffHz: 100, Window: window.Type(9)}); err == nil {
		t.Fatal("unknown window must fail")
	}
}

func TestRatioDBOnSilence(t *testing.T) {
	res, err := Measure(make([]float64, 256), Config{SampleRate: 48000, CutoffHz: 12000})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if ratio := res.RatioDB(); !math.IsInf(ratio, -1) {
		t.Fatalf("RatioDB() on silence = %v, want -Inf", ratio)
	}
}
