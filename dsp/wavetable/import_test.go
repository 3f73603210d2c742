package wavetable

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavetable/internal/testutil"
)

func TestImportFramesIdentity(t *testing.T) {
	// A grid-sized input with peak exactly 1 must come back bit-identical.
	mono := make([]float64, NumFrames*TableSize)
	for i := range mono {
		mono[i] = 0.8 * math.Sin(2*math.Pi*float64(i)/511)
	}
	mono[123] = 1

	tbl, err := ImportFrames(mono)
	if err != nil {
		t.Fatalf("ImportFrames() error = %v", err)
	}

	for f := 0; f < NumFrames; f++ {
		testutil.RequireSliceNearlyEqual(t, tbl.row(f, 0), mono[f*TableSize:(f+1)*TableSize], 0)
	}
}

func TestImportFramesEmptyInput(t *testing.T) {
	if _, err := ImportFrames(nil); err != ErrEmptyImport {
		t.Fatalf("ImportFrames(nil) error = %v, want %v", err, ErrEmptyImport)
	}
	if _, err := ImportFrames([]float64{}); err != ErrEmptyImport {
		t.Fatalf("ImportFrames(empty) error = %v, want %v", err, ErrEmptyImport)
	}
}

func TestImportFramesStretchesShortInput(t *testing.T) {
	mono := make([]float64, 1000)
	for i := range mono {
		mono[i] = float64(i) / float64(len(mono)-1)
	}

	tbl, err := ImportFrames(mono)
	if err != nil {
		t.Fatalf("ImportFrames() error = %v", err)
	}

	first := tbl.row(0, 0)
	last := tbl.row(NumFrames-1, 0)

	testutil.RequireFinite(t, first)
	testutil.RequireFinite(t, last)

	// The stretched ramp keeps its endpoints and its normalized peak.
	if first[0] != 0 {
		t.Fatalf("start of stretched ramp: got %v, want 0", first[0])
	}
	if diff := math.Abs(last[TableSize-1] - 1); diff > 1e-9 {
		t.Fatalf("end of stretched ramp: got %v, want 1", last[TableSize-1])
	}

	for s := 1; s < TableSize; s++ {
		if first[s] < first[s-1] {
			t.Fatalf("stretched ramp not monotonic at %d: %v < %v", s, first[s], first[s-1])
		}
	}
}

func TestImportFramesResamplesLongInput(t *testing.T) {
	mono := make([]float64, 2*NumFrames*TableSize)
	for i := range mono {
		mono[i] = 0.5
	}

	tbl, err := ImportFrames(mono)
	if err != nil {
		t.Fatalf("ImportFrames() error = %v", err)
	}

	// A constant input normalizes to a constant 1.
	for f := 0; f < NumFrames; f += 9 {
		row := tbl.row(f, 0)
		for s := 0; s < TableSize; s += 101 {
			if diff := math.Abs(row[s] - 1); diff > 1e-12 {
				t.Fatalf("frame %d sample %d: got %v, want 1", f, s, row[s])
			}
		}
	}
}
