package statgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewBounds(t *testing.T) {
	a := newArena(64)

	s := view[uint64](a, 0, 8)
	assert.Len(t, s, 8)

	// Views alias the arena storage.
	s[3] = 0xdeadbeef
	assert.Equal(t, uint64(0xdeadbeef), view[uint64](a, 24, 1)[0])

	assert.Panics(t, func() { view[uint64](a, 64, 1) }) // past the end
	assert.Panics(t, func() { view[uint64](a, 0, 9) })  // too long
	assert.Panics(t, func() { view[uint64](a, -8, 1) }) // negative
	assert.Panics(t, func() { view[uint64](a, 4, 1) })  // misaligned
}

func TestArenaReset(t *testing.T) {
	a := newArena(32)
	view[uint64](a, 0, 4)[2] = 77

	a.Reset()

	for _, v := range view[uint64](a, 0, 4) {
		assert.Zero(t, v)
	}
	assert.Equal(t, 32, a.Capacity())
}

func TestArenaZeroInitialized(t *testing.T) {
	a := newArena(128)
	for _, b := range a.Bytes() {
		assert.Zero(t, b)
	}
}
