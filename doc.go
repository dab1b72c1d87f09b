// Package statgo provides a hierarchical performance-counter registry for
// simulators and other measurement-heavy programs.
//
// Counters are declared once, at initialization time, but store their values
// in relocatable fixed-size byte blocks called arenas. Every counter owns a
// fixed byte offset handed out by a Registry; its storage address is always
// the target arena's base plus that offset. Swapping the target arena is O(1),
// so the same counter declarations can serve many execution contexts (one
// arena per simulated core, one for whole-run totals, one for snapshots).
//
// # Quick Start
//
//	reg := statgo.New()
//
//	cache := reg.NewGroup("cache")
//	hits := statgo.NewCounter[uint64]("hits", cache)
//	hist := statgo.NewArray[uint64]("latency_hist", cache, 4)
//
//	run := reg.NewArena()
//	cache.SetTargetArena(run)
//
//	hits.Inc()
//	hist.AddAt(2, 7)
//
//	reg.Dump(emit.Text(os.Stdout), run)
//
// # Arenas and Merging
//
// Arenas are interchangeable: a counter can update one context's arena
// without losing its own default via the ...In forms:
//
//	hits.IncIn(kernelArena)
//
// Whole trees of counters are summed arena-to-arena:
//
//	reg.Merge(total, perCore) // total += perCore, leaf by leaf
//
// # Dump Formats
//
// Dumps are driven by the registry tree in registration order and are
// deterministic. Two emitters ship with the library: a plain-text renderer
// and a YAML renderer (package emit). The snapshot package persists raw
// arena values with compression and integrity checks.
//
// # Concurrency Model
//
// The registry is a passive data structure; safety is by convention, not
// locking. Declare all counters during a single-threaded initialization
// phase. At steady state, give each execution context its own arena and
// route the context's counters there exclusively. Counter arithmetic carries
// no synchronization, no error returns, and no allocation: misuse (no target
// arena, index out of range, over-capacity declaration) panics with a typed
// error rather than silently corrupting adjacent counters.
package statgo
