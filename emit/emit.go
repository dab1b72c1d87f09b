// Package emit centralizes dump rendering for the counter registry.
//
// The registry drives an Emitter through an opaque grammar — keys, scalar
// values, and begin/end pairs for mappings and sequences — mirroring the
// shape of the counter tree exactly. Two renderers ship with the package:
// plain text and YAML.
package emit

import "io"

// Emitter renders one dump of the counter tree. Implementations buffer
// internally and report the first I/O or encoding error from Flush; the
// registry core itself has no output failure mode.
//
// Emitters are not safe for concurrent use. Drive one emitter from one dump
// at a time.
type Emitter interface {
	// Key announces the name of the next value, sequence, or mapping.
	Key(name string)

	// Value emits a scalar, either standalone under the pending key or as
	// the next element of an open sequence.
	Value(v any)

	// BeginMap opens a nested mapping under the pending key. The first
	// BeginMap opens the document itself and needs no key.
	BeginMap()

	// EndMap closes the innermost mapping.
	EndMap()

	// BeginSeq opens a sequence under the pending key. Sequences hold
	// scalars only and render inline (flow style).
	BeginSeq()

	// EndSeq closes the innermost sequence.
	EndSeq()

	// Flush writes buffered output to the underlying writer and returns
	// the first error encountered while emitting.
	Flush() error

	// Name returns the emitter's stable format name ("text", "yaml").
	Name() string
}

// ByName returns a built-in emitter writing to w by its stable name.
func ByName(name string, w io.Writer) (Emitter, bool) {
	switch name {
	case "text":
		return Text(w), true
	case "yaml":
		return YAML(w), true
	default:
		return nil, false
	}
}
