package wavetable

import (
	"sync"
	"sync/atomic"
)

// Bank is the unit of hot-swappable table state. A loader publishes fully
// built Tables through an atomic pointer; the audio thread only ever
// dereferences a published Table and never takes a lock.
//
// A rebuild that fails leaves the previously published Table in place, so
// readers never observe partial data. Before the first publish the bank is
// not ready and sampling it yields silence.
type Bank struct {
	table atomic.Pointer[Table]

	// mu serializes loaders. The audio path never acquires it; a second
	// import issued while one is running blocks the loader goroutine only.
	mu sync.Mutex
}

// NewBank returns an empty, not-ready bank.
func NewBank() *Bank {
	return &Bank{}
}

// NewDefaultBank returns a bank pre-populated with the procedural table
// for shape.
func NewDefaultBank(shape Shape) *Bank {
	b := &Bank{}
	b.table.Store(Generate(shape))
	return b
}

// Ready reports whether a table has been published.
func (b *Bank) Ready() bool {
	return b.table.Load() != nil
}

// Snapshot returns the currently published table, or nil before the first
// publish. The returned Table is immutable and safe to read concurrently.
func (b *Bank) Snapshot() *Table {
	return b.table.Load()
}

// Publish atomically replaces the bank's table. A nil table is ignored.
func (b *Bank) Publish(t *Table) {
	if t == nil {
		return
	}
	b.table.Store(t)
}

// Import builds a table from mono off the audio path and publishes it on
// success. On error the previously published table is left untouched.
func (b *Bank) Import(mono []float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, err := ImportFrames(mono)
	if err != nil {
		return err
	}

	b.table.Store(t)

	return nil
}

// LoadDefault regenerates and publishes the procedural table for shape.
func (b *Bank) LoadDefault(shape Shape) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.table.Store(Generate(shape))
}
