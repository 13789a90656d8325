// Package scratch provides reusable single-element buffers for returning
// array-shaped field values without allocating on the per-document path.
//
// A Buffers value belongs to exactly one goroutine at a time. Slices returned
// by Float32 and Float64 alias the buffer and are overwritten by the next call.
package scratch

import "sync"

// Buffers holds one float32 slot and one float64 slot.
type Buffers struct {
	floats  [1]float32
	doubles [1]float64
}

// buffersPool is the global pool of Buffers objects.
var buffersPool = sync.Pool{
	New: func() any {
		return new(Buffers)
	},
}

// Get retrieves Buffers from the pool. Call Put when done.
func Get() *Buffers {
	return buffersPool.Get().(*Buffers)
}

// Put returns b to the pool. The caller must not use b, or any slice obtained
// from it, afterwards.
func Put(b *Buffers) {
	if b == nil {
		return
	}
	b.Reset()
	buffersPool.Put(b)
}

// Reset zeroes both slots.
func (b *Buffers) Reset() {
	b.floats[0] = 0
	b.doubles[0] = 0
}

// Float32 stores v in the float32 slot and returns it as a 1-element slice.
func (b *Buffers) Float32(v float32) []float32 {
	b.floats[0] = v
	return b.floats[:]
}

// Float64 stores v in the float64 slot and returns it as a 1-element slice.
func (b *Buffers) Float64(v float64) []float64 {
	b.doubles[0] = v
	return b.doubles[:]
}
