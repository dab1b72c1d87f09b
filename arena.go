package statgo

import (
	"fmt"
	"unsafe"
)

// Arena is one fixed-capacity, zero-initialized byte block holding the
// values of every counter for a single run or execution context. Arenas are
// created by a Registry and share that registry's layout: a counter resolves
// its storage as arena base + the counter's fixed offset.
//
// A single arena is single-writer by design. Parallelism comes from one
// arena per execution context, not from locking.
type Arena struct {
	buf []byte
}

func newArena(capacity int) *Arena {
	// The runtime aligns allocations of 8 bytes and up to 8, and the
	// registry rounds its capacity to a multiple of 8, so typed views at
	// registry-issued offsets are always properly aligned.
	return &Arena{buf: make([]byte, capacity)}
}

// Capacity returns the fixed size of the arena in bytes.
func (a *Arena) Capacity() int { return len(a.buf) }

// Bytes returns the arena's backing storage. The slice aliases the arena;
// it exists for snapshot I/O and must not be resized or retained past the
// arena's lifetime.
func (a *Arena) Bytes() []byte { return a.buf }

// Reset zeroes every counter value in the arena, making it reusable as a
// fresh measurement interval or scratch target.
func (a *Arena) Reset() { clear(a.buf) }

// view reinterprets n elements of type T starting at byte offset off.
// Offsets issued by a Registry are always aligned and inside the capacity
// ceiling; the checks guard the unsafe reinterpretation against a corrupted
// or foreign offset.
func view[T Value](a *Arena, off, n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	end := off + n*size
	if off < 0 || end > len(a.buf) || off%size != 0 {
		panic(fmt.Sprintf("statgo: view [%d:%d) invalid for arena of capacity %d", off, end, len(a.buf)))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.buf[off])), n)
}
