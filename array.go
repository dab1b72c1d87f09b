package statgo

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/statgo/emit"
)

// Array is a fixed-length vector of counters occupying contiguous bytes at
// a single offset: element i lives at offset + i*sizeof(T). Typical use is
// histograms and per-class event counts.
type Array[T Value] struct {
	name   string
	offset int
	count  int
	parent *Group
	target *Arena
}

// NewArray declares an array counter of n elements under parent, reserving
// n*sizeof(T) contiguous bytes in the parent's registry. Like a scalar
// counter, it captures the parent's current target arena.
func NewArray[T Value](name string, parent *Group, n int) *Array[T] {
	if n <= 0 {
		panic(fmt.Sprintf("statgo: array %q must have a positive length, got %d", name, n))
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	arr := &Array[T]{
		name:   name,
		offset: parent.registry.reserve(name, size*n, size),
		count:  n,
		parent: parent,
		target: parent.target,
	}
	parent.addLeaf(arr)
	return arr
}

// Name returns the array's reporting name.
func (r *Array[T]) Name() string { return r.name }

// Offset returns the array's fixed byte offset within any arena.
func (r *Array[T]) Offset() int { return r.offset }

// Size returns the array's total byte footprint.
func (r *Array[T]) Size() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * r.count
}

// Len returns the fixed element count.
func (r *Array[T]) Len() int { return r.count }

// SetTarget rebinds the arena element access resolves against.
func (r *Array[T]) SetTarget(a *Arena) { r.target = a }

// Target returns the array's current target arena (nil if unset).
func (r *Array[T]) Target() *Arena { return r.target }

func (r *Array[T]) slot(a *Arena, i int) *T {
	if a == nil {
		panic(&NoTargetError{Counter: r.name})
	}
	if i < 0 || i >= r.count {
		panic(&IndexError{Counter: r.name, Index: i, Len: r.count})
	}
	return &view[T](a, r.offset, r.count)[i]
}

// At returns element i in the target arena.
func (r *Array[T]) At(i int) T { return *r.slot(r.target, i) }

// AtIn returns element i in a.
func (r *Array[T]) AtIn(a *Arena, i int) T { return *r.slot(a, i) }

// SetAt stores v at element i in the target arena.
func (r *Array[T]) SetAt(i int, v T) { *r.slot(r.target, i) = v }

// SetAtIn stores v at element i in a.
func (r *Array[T]) SetAtIn(a *Arena, i int, v T) { *r.slot(a, i) = v }

// AddAt adds v to element i in the target arena and returns the new value.
func (r *Array[T]) AddAt(i int, v T) T { s := r.slot(r.target, i); *s += v; return *s }

// AddAtIn adds v to element i in a.
func (r *Array[T]) AddAtIn(a *Arena, i int, v T) T { s := r.slot(a, i); *s += v; return *s }

// IncAt adds one to element i in the target arena.
func (r *Array[T]) IncAt(i int) T { s := r.slot(r.target, i); *s++; return *s }

// IncAtIn adds one to element i in a.
func (r *Array[T]) IncAtIn(a *Arena, i int) T { s := r.slot(a, i); *s++; return *s }

// Values returns a copy of all elements read from the target arena.
func (r *Array[T]) Values() []T { return r.ValuesIn(r.target) }

// ValuesIn returns a copy of all elements read from a, in index order.
func (r *Array[T]) ValuesIn(a *Arena) []T {
	if a == nil {
		panic(&NoTargetError{Counter: r.name})
	}
	out := make([]T, r.count)
	copy(out, view[T](a, r.offset, r.count))
	return out
}

// leaf implementation.

func (r *Array[T]) leafName() string   { return r.name }
func (r *Array[T]) leafOffset() int    { return r.offset }
func (r *Array[T]) leafSize() int      { return r.Size() }
func (r *Array[T]) setTarget(a *Arena) { r.target = a }

func (r *Array[T]) dump(e emit.Emitter, a *Arena) {
	if a == nil {
		panic(&NoTargetError{Counter: r.name})
	}
	e.Key(r.name)
	e.BeginSeq()
	for _, v := range view[T](a, r.offset, r.count) {
		e.Value(v)
	}
	e.EndSeq()
}

func (r *Array[T]) mergeInto(dst, src *Arena) {
	d := view[T](dst, r.offset, r.count)
	s := view[T](src, r.offset, r.count)
	for i := range d {
		d[i] += s[i]
	}
}
