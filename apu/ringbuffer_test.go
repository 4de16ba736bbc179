package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBufferRoundsCapacityUpToPowerOfTwo(t *testing.T) {
	r := NewRingBuffer(5)
	assert.Equal(t, uint32(7), r.mask, "5 rounds up to 8, mask is 8-1")
}

func TestRingBufferPushPopOrder(t *testing.T) {
	r := NewRingBuffer(4)
	require.True(t, r.Push(1, -1))
	require.True(t, r.Push(2, -2))

	l, right, ok := r.Pop()
	require.True(t, ok)
	assert.Equal(t, int16(1), l)
	assert.Equal(t, int16(-1), right)

	l, right, ok = r.Pop()
	require.True(t, ok)
	assert.Equal(t, int16(2), l)
	assert.Equal(t, int16(-2), right)
}

func TestRingBufferPopEmptyReportsFalse(t *testing.T) {
	r := NewRingBuffer(4)
	_, _, ok := r.Pop()
	assert.False(t, ok)
}

func TestRingBufferPushDropsWhenFull(t *testing.T) {
	r := NewRingBuffer(2)
	require.True(t, r.Push(1, 1))
	require.True(t, r.Push(2, 2))
	assert.False(t, r.Push(3, 3), "capacity is full, producer must not overwrite unread samples")
	assert.Equal(t, 2, r.Available())
}

func TestRingBufferAvailableTracksPendingSamples(t *testing.T) {
	r := NewRingBuffer(4)
	assert.Equal(t, 0, r.Available())
	r.Push(1, 1)
	r.Push(2, 2)
	assert.Equal(t, 2, r.Available())
	r.Pop()
	assert.Equal(t, 1, r.Available())
}
