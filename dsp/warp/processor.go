package warp

import (
	"fmt"
	"math"
)

const (
	defaultWarpMode   = ModePhaseDistort
	defaultWarpAmount = 0.0
)

// Option mutates warp construction parameters.
type Option func(*config) error

type config struct {
	mode   Mode
	amount float64
}

func defaultConfig() config {
	return config{
		mode:   defaultWarpMode,
		amount: defaultWarpAmount,
	}
}

// WithMode selects the warp transfer mode.
func WithMode(mode Mode) Option {
	return func(cfg *config) error {
		if !ValidMode(mode) {
			return fmt.Errorf("warp mode is invalid: %d", mode)
		}
		cfg.mode = mode
		return nil
	}
}

// WithAmount sets the wet amount in [0, 1].
func WithAmount(amount float64) Option {
	return func(cfg *config) error {
		if amount < 0 || amount > 1 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return fmt.Errorf("warp amount must be in [0, 1]: %f", amount)
		}
		cfg.amount = amount
		return nil
	}
}

// Processor is a single configured warp slot.
type Processor struct {
	mode   Mode
	amount float64
}

// NewProcessor creates a warp slot with validated options.
func NewProcessor(opts ...Option) (*Processor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	return &Processor{mode: cfg.mode, amount: cfg.amount}, nil
}

// SetMode sets the warp transfer mode.
func (p *Processor) SetMode(mode Mode) error {
	if !ValidMode(mode) {
		return fmt.Errorf("warp mode is invalid: %d", mode)
	}

	p.mode = mode

	return nil
}

// SetAmount sets the wet amount in [0, 1].
func (p *Processor) SetAmount(amount float64) error {
	if amount < 0 || amount > 1 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("warp amount must be in [0, 1]: %f", amount)
	}

	p.amount = amount

	return nil
}

// Mode returns the active transfer mode.
func (p *Processor) Mode() Mode { return p.mode }

// Amount returns the wet amount in [0, 1].
func (p *Processor) Amount() float64 { return p.amount }

// ProcessSample warps one sample at the given oscillator phase.
func (p *Processor) ProcessSample(sample, phase float64) float64 {
	return Shape(p.mode, sample, phase, p.amount)
}

// ProcessInPlace warps buf in place using per-sample phases. The two
// slices must have equal length.
func (p *Processor) ProcessInPlace(buf, phases []float64) error {
	if len(buf) != len(phases) {
		return fmt.Errorf("warp buffer/phase length mismatch: %d vs %d", len(buf), len(phases))
	}

	for i := range buf {
		buf[i] = Shape(p.mode, buf[i], phases[i], p.amount)
	}

	return nil
}
