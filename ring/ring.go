// Package ring implements a fixed-capacity sliding window over the most
// recent audio samples.
package ring

import "sync"

// Buffer holds the last Size() samples written to it, in circular order.
// It starts zero-filled, so a snapshot is well-defined before the first
// write ever lands.
//
// Write and WriteBlock are meant to be called from the capture callback;
// Snapshot from the transform stage. Both sides share one short-held mutex.
type Buffer struct {
	mu   sync.Mutex
	data []float64
	pos  int // next write index, which is also the oldest sample
}

// New returns a zero-filled buffer of the given capacity.
func New(size int) *Buffer {
	return &Buffer{data: make([]float64, size)}
}

// Size returns the buffer capacity.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Write stores one sample at the cursor and advances it.
func (b *Buffer) Write(s float64) {
	b.mu.Lock()
	b.data[b.pos] = s
	b.pos = (b.pos + 1) % len(b.data)
	b.mu.Unlock()
}

// WriteBlock stores a whole block under a single lock acquisition, wrapping
// at the end of the buffer. A block longer than the buffer keeps only its
// trailing Size() samples.
func (b *Buffer) WriteBlock(block []float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.data)
	if len(block) >= n {
		copy(b.data, block[len(block)-n:])
		b.pos = 0
		return
	}

	head := copy(b.data[b.pos:], block)
	if head < len(block) {
		copy(b.data, block[head:])
	}
	b.pos = (b.pos + len(block)) % n
}

// Snapshot copies the last Size() samples into dst in chronological order,
// oldest first. It holds the same lock as the writers, so it never observes
// a partially written block.
func (b *Buffer) Snapshot(dst []float64) {
	b.mu.Lock()
	n := copy(dst, b.data[b.pos:])
	copy(dst[n:], b.data[:b.pos])
	b.mu.Unlock()
}
