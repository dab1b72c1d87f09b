package statgo

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
	"time"

	"github.com/hupe1980/statgo/emit"
)

// DefaultCapacity is the arena capacity ceiling used when WithCapacity is
// not given. 10 KiB is generous for a few hundred counters; the ceiling is
// a static upper bound, chosen so arenas can be allocated before the last
// counter is declared.
const DefaultCapacity = 10 * 1024

// Registry owns an independent counter tree and the offset-allocation
// cursor that lays counters out inside arenas. Inject one into every
// counter-owning component; unit tests can instantiate as many independent
// registries as they need.
//
// Declaration (NewGroup, NewCounter, NewArray) is expected to happen during
// a single-threaded initialization phase. The cursor is not synchronized.
type Registry struct {
	root     *Group
	cursor   int
	capacity int
	logger   *Logger
	metrics  MetricsCollector
}

// New creates an empty registry with its offset cursor at zero.
func New(optFns ...Option) *Registry {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	r := &Registry{
		capacity: o.capacity,
		logger:   o.logger,
		metrics:  o.metrics,
	}
	r.root = &Group{registry: r}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry { return New() })

// Default returns the process-wide registry. Counters declared at package
// scope typically attach here; code that needs isolation (tests, embedded
// use) should create its own registry with New.
func Default() *Registry { return defaultRegistry() }

// Root returns the synthetic root group. It has no name and contributes no
// key to dumps; top-level groups attach beneath it.
func (r *Registry) Root() *Group { return r.root }

// NewGroup creates a top-level group under the registry root.
func (r *Registry) NewGroup(name string) *Group {
	return NewGroup(name, r.root)
}

// Capacity returns the configured arena capacity ceiling in bytes.
func (r *Registry) Capacity() int { return r.capacity }

// HighWater returns the number of arena bytes consumed by the counters
// declared so far, including alignment padding.
func (r *Registry) HighWater() int { return r.cursor }

// reserve hands out the next free offset for size bytes aligned to align.
// The cursor is monotonic for the lifetime of the registry; offsets are
// never reused, so distinct counters never overlap. Exceeding the capacity
// ceiling is a fatal configuration error.
func (r *Registry) reserve(name string, size, align int) int {
	off := (r.cursor + align - 1) &^ (align - 1)
	if off+size > r.capacity {
		panic(&CapacityError{Counter: name, Need: size, Offset: off, Capacity: r.capacity})
	}
	r.cursor = off + size
	return off
}

// NewArena allocates a zero-initialized arena sized to the capacity
// ceiling, not to the current high-water offset: more counters may still be
// declared after some arenas already exist.
func (r *Registry) NewArena() *Arena {
	a := newArena(r.capacity)
	r.metrics.RecordArenaAlloc(r.capacity)
	r.logger.Debug("arena allocated", "capacity", r.capacity, "high_water", r.cursor)
	return a
}

// DestroyArena detaches the arena's storage. The caller must guarantee no
// counter will resolve against it afterward; any later access panics.
func (r *Registry) DestroyArena(a *Arena) {
	a.buf = nil
	r.metrics.RecordArenaDestroy()
}

// Dump renders the whole counter tree to e, reading values from a, and
// flushes the emitter. The returned error is the emitter's: the registry
// itself has no failure mode here.
func (r *Registry) Dump(e emit.Emitter, a *Arena) error {
	start := time.Now()
	r.root.Dump(e, a)
	err := e.Flush()
	r.metrics.RecordDump(e.Name(), time.Since(start), err)
	if err != nil {
		r.logger.Error("dump failed", "format", e.Name(), "error", err)
	}
	return err
}

// Merge adds every counter value in src into dst, leaf by leaf, in
// registration order. src is not modified.
func (r *Registry) Merge(dst, src *Arena) {
	start := time.Now()
	r.root.Merge(dst, src)
	r.metrics.RecordMerge(time.Since(start))
}

// LayoutSignature returns a stable hash of the registry's counter layout:
// every leaf's full path, byte offset, and size, in registration order. Two
// registries with equal signatures lay out their arenas identically, which
// is what the snapshot package checks before loading persisted values.
func (r *Registry) LayoutSignature() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	var walk func(g *Group)
	walk = func(g *Group) {
		_, _ = h.Write([]byte(g.name))
		_, _ = h.Write([]byte{'/'})
		for _, l := range g.leaves {
			_, _ = h.Write([]byte(l.leafName()))
			binary.LittleEndian.PutUint32(buf[0:4], uint32(l.leafOffset()))
			binary.LittleEndian.PutUint32(buf[4:8], uint32(l.leafSize()))
			_, _ = h.Write(buf[:])
		}
		for _, c := range g.children {
			walk(c)
		}
	}
	walk(r.root)
	return h.Sum64()
}
