package wavetable

import (
	"sync"
	"testing"
)

func TestNewBankNotReady(t *testing.T) {
	b := NewBank()
	if b.Ready() {
		t.Fatal("new bank must not be ready")
	}
	if b.Snapshot() != nil {
		t.Fatal("new bank must have no snapshot")
	}
	if got := Sample(b, 0.5, 0.25, 440, 48000, QualityMedium); got != 0 {
		t.Fatalf("unready bank sample = %v, want 0", got)
	}
}

func TestNewDefaultBankReady(t *testing.T) {
	b := NewDefaultBank(ShapeClassic)
	if !b.Ready() {
		t.Fatal("default bank must be ready")
	}
}

func TestBankImportPublishes(t *testing.T) {
	b := NewBank()

	mono := make([]float64, NumFrames*TableSize)
	mono[0] = 1

	if err := b.Import(mono); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !b.Ready() {
		t.Fatal("bank must be ready after import")
	}
}

func TestBankImportFailureLeavesTable(t *testing.T) {
	b := NewDefaultBank(ShapeFormant)
	before := b.Snapshot()

	if err := b.Import(nil); err == nil {
		t.Fatal("Import(nil) must fail")
	}

	if b.Snapshot() != before {
		t.Fatal("failed import must not replace the published table")
	}
}

func TestBankPublishNilIgnored(t *testing.T) {
	b := NewDefaultBank(ShapeClassic)
	before := b.Snapshot()

	b.Publish(nil)

	if b.Snapshot() != before {
		t.Fatal("publishing nil must be ignored")
	}
}

func TestBankConcurrentReadDuringImport(t *testing.T) {
	b := NewDefaultBank(ShapeClassic)

	mono := make([]float64, NumFrames*TableSize)
	for i := range mono {
		mono[i] = float64(i%100)/50 - 1
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		phase := 0.0
		for {
			select {
			case <-stop:
				return
			default:
			}
			v := Sample(b, 0.3, phase, 440, 48000, QualityHigh)
			if v < -1.05 || v > 1.05 {
				t.Errorf("concurrent read out of range: %v", v)
				return
			}
			phase += 0.01
			if phase >= 1 {
				phase -= 1
			}
		}
	}()

	for i := 0; i < 4; i++ {
		if err := b.Import(mono); err != nil {
			t.Errorf("Import() error = %v", err)
		}
	}

	close(stop)
	wg.Wait()
}
