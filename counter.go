package statgo

import (
	"unsafe"

	"github.com/hupe1980/statgo/emit"
)

// Value is the closed set of numeric types a counter can store. All members
// are fixed-size, so a counter's byte footprint is known at declaration
// time, and all support += for arena-to-arena merging.
type Value interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Counter is a scalar performance counter: a typed view over a fixed byte
// offset, resolved at call time against whichever arena is its current
// target. The offset is assigned once at declaration and never changes; the
// target arena may be swapped any number of times.
//
// Arithmetic requires a target arena (set directly or inherited from the
// parent group) and panics with *NoTargetError otherwise.
type Counter[T Value] struct {
	name   string
	offset int
	parent *Group
	target *Arena
}

// NewCounter declares a scalar counter named name under parent, reserving
// the next free offset in the parent's registry. The counter captures the
// parent's current target arena as its initial target; if the parent's
// target changes later via SetTargetArena, the counter follows.
func NewCounter[T Value](name string, parent *Group) *Counter[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	c := &Counter[T]{
		name:   name,
		offset: parent.registry.reserve(name, size, size),
		parent: parent,
		target: parent.target,
	}
	parent.addLeaf(c)
	return c
}

// Name returns the counter's reporting name.
func (c *Counter[T]) Name() string { return c.name }

// Offset returns the counter's fixed byte offset within any arena.
func (c *Counter[T]) Offset() int { return c.offset }

// Size returns the counter's byte footprint.
func (c *Counter[T]) Size() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SetTarget rebinds the arena the counter's arithmetic resolves against.
// O(1), no allocation.
func (c *Counter[T]) SetTarget(a *Arena) { c.target = a }

// Target returns the counter's current target arena (nil if unset).
func (c *Counter[T]) Target() *Arena { return c.target }

// slot resolves the counter's storage in a. a==nil means arithmetic was
// attempted before any target arena was set.
func (c *Counter[T]) slot(a *Arena) *T {
	if a == nil {
		panic(&NoTargetError{Counter: c.name})
	}
	return &view[T](a, c.offset, 1)[0]
}

// Inc adds one to the counter in its target arena and returns the new value.
func (c *Counter[T]) Inc() T { s := c.slot(c.target); *s++; return *s }

// Dec subtracts one from the counter in its target arena.
func (c *Counter[T]) Dec() T { s := c.slot(c.target); *s--; return *s }

// Add adds v to the counter in its target arena and returns the new value.
func (c *Counter[T]) Add(v T) T { s := c.slot(c.target); *s += v; return *s }

// Sub subtracts v from the counter in its target arena.
func (c *Counter[T]) Sub(v T) T { s := c.slot(c.target); *s -= v; return *s }

// Mul multiplies the counter in its target arena by v.
func (c *Counter[T]) Mul(v T) T { s := c.slot(c.target); *s *= v; return *s }

// Div divides the counter in its target arena by v.
func (c *Counter[T]) Div(v T) T { s := c.slot(c.target); *s /= v; return *s }

// IncIn adds one to the counter in a instead of the counter's target,
// without mutating the target. Like the other ...In forms, it supports
// updating another context's arena in passing:
//
//	misses.IncIn(kernelArena)
func (c *Counter[T]) IncIn(a *Arena) T { s := c.slot(a); *s++; return *s }

// DecIn subtracts one from the counter in a.
func (c *Counter[T]) DecIn(a *Arena) T { s := c.slot(a); *s--; return *s }

// AddIn adds v to the counter in a.
func (c *Counter[T]) AddIn(a *Arena, v T) T { s := c.slot(a); *s += v; return *s }

// SubIn subtracts v from the counter in a.
func (c *Counter[T]) SubIn(a *Arena, v T) T { s := c.slot(a); *s -= v; return *s }

// MulIn multiplies the counter in a by v.
func (c *Counter[T]) MulIn(a *Arena, v T) T { s := c.slot(a); *s *= v; return *s }

// DivIn divides the counter in a by v.
func (c *Counter[T]) DivIn(a *Arena, v T) T { s := c.slot(a); *s /= v; return *s }

// AddCounter adds o's value (read from o's target arena) to c.
func (c *Counter[T]) AddCounter(o *Counter[T]) T { return c.Add(o.Value()) }

// SubCounter subtracts o's value from c.
func (c *Counter[T]) SubCounter(o *Counter[T]) T { return c.Sub(o.Value()) }

// MulCounter multiplies c by o's value.
func (c *Counter[T]) MulCounter(o *Counter[T]) T { return c.Mul(o.Value()) }

// DivCounter divides c by o's value.
func (c *Counter[T]) DivCounter(o *Counter[T]) T { return c.Div(o.Value()) }

// Value returns the counter's value in its target arena.
func (c *Counter[T]) Value() T { return *c.slot(c.target) }

// ValueIn returns the counter's value in a.
func (c *Counter[T]) ValueIn(a *Arena) T { return *c.slot(a) }

// Set stores v in the counter's target arena.
func (c *Counter[T]) Set(v T) { *c.slot(c.target) = v }

// SetIn stores v in a.
func (c *Counter[T]) SetIn(a *Arena, v T) { *c.slot(a) = v }

// leaf implementation. Dumps always read from the supplied arena so that
// rendering is independent of runtime target state.

func (c *Counter[T]) leafName() string   { return c.name }
func (c *Counter[T]) leafOffset() int    { return c.offset }
func (c *Counter[T]) leafSize() int      { return c.Size() }
func (c *Counter[T]) setTarget(a *Arena) { c.target = a }

func (c *Counter[T]) dump(e emit.Emitter, a *Arena) {
	e.Key(c.name)
	e.Value(*c.slot(a))
}

func (c *Counter[T]) mergeInto(dst, src *Arena) {
	*c.slot(dst) += *c.slot(src)
}
