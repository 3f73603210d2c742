package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions()
	if cfg.SampleRate != 48000 || cfg.BlockSize != 1024 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(44100), WithBlockSize(256))
	if cfg.SampleRate != 44100 || cfg.BlockSize != 256 {
		t.Fatalf("options not applied: %+v", cfg)
	}

	// Invalid values keep defaults.
	cfg = ApplyProcessorOptions(WithSampleRate(-1), WithBlockSize(0), nil)
	if cfg.SampleRate != 48000 || cfg.BlockSize != 1024 {
		t.Fatalf("invalid options should keep defaults: %+v", cfg)
	}
}
