package apu

import "sync/atomic"

// RingBuffer is a lock-free single-producer/single-consumer queue of
// interleaved stereo int16 sample pairs. The APU's HandleUpdate is the
// sole producer; whatever audio frontend drains Apu.Ring() is the sole
// consumer (cmd/gosnes does not drain it) — nothing in the example corpus supplies a ring
// buffer library, so this is implemented directly against sync/atomic
// rather than invented as a third-party dependency (spec.md §9, DESIGN.md
// stdlib justification).
type RingBuffer struct {
	buf  []int16 // power-of-two capacity, 2 int16s (L,R) per sample
	mask uint32

	head atomic.Uint32 // next write index, producer-owned
	tail atomic.Uint32 // next read index, consumer-owned
}

// NewRingBuffer returns a ring buffer holding capacitySamples stereo
// samples; capacitySamples is rounded up to the next power of two.
func NewRingBuffer(capacitySamples int) *RingBuffer {
	n := 1
	for n < capacitySamples {
		n <<= 1
	}
	return &RingBuffer{buf: make([]int16, n*2), mask: uint32(n - 1)}
}

// Push writes one stereo sample pair, dropping it if the buffer is full
// rather than blocking the CPU thread.
func (r *RingBuffer) Push(left, right int16) bool {
	head := r.head.Load()
	tail := r.tail.Load()
	if head-tail > r.mask {
		return false
	}
	idx := (head & r.mask) * 2
	r.buf[idx] = left
	r.buf[idx+1] = right
	r.head.Store(head + 1)
	return true
}

// Pop reads one stereo sample pair, reporting false if none is available.
func (r *RingBuffer) Pop() (left, right int16, ok bool) {
	tail := r.tail.Load()
	head := r.head.Load()
	if tail == head {
		return 0, 0, false
	}
	idx := (tail & r.mask) * 2
	left, right = r.buf[idx], r.buf[idx+1]
	r.tail.Store(tail + 1)
	return left, right, true
}

// Available reports how many stereo samples are queued for the consumer.
func (r *RingBuffer) Available() int {
	return int(r.head.Load() - r.tail.Load())
}
