package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextOptions configures the plain-text emitter.
type TextOptions struct {
	// Indent is the number of spaces per nesting level. Default: 2.
	Indent int
}

// Text creates a plain-text emitter writing to w.
//
// Scalars render as "name: value", arrays as "name: v0 v1 ... vN-1", one
// line each. Every group contributes a "name:" heading line and indents its
// subtree one level, so output mirrors the tree shape:
//
//	cache:
//	  hits: 3
//	  latency_hist: 0 0 7 0
func Text(w io.Writer, optFns ...func(*TextOptions)) Emitter {
	opts := TextOptions{Indent: 2}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Indent <= 0 {
		opts.Indent = 2
	}
	return &textEmitter{w: bufio.NewWriter(w), step: opts.Indent}
}

type textEmitter struct {
	w      *bufio.Writer
	err    error
	step   int
	depth  int
	key    string
	hasKey bool
	inSeq  bool
	seq    []string
	// headed records, per open mapping, whether it printed a heading line
	// and indented. The document mapping has no key and prints nothing.
	headed []bool
}

func (e *textEmitter) Key(name string) {
	e.key = name
	e.hasKey = true
}

func (e *textEmitter) Value(v any) {
	if e.inSeq {
		e.seq = append(e.seq, fmt.Sprint(v))
		return
	}
	e.line(fmt.Sprintf("%s: %v", e.key, v))
	e.hasKey = false
}

func (e *textEmitter) BeginMap() {
	if e.hasKey {
		e.line(e.key + ":")
		e.hasKey = false
		e.depth++
		e.headed = append(e.headed, true)
		return
	}
	e.headed = append(e.headed, false)
}

func (e *textEmitter) EndMap() {
	if n := len(e.headed); n > 0 {
		if e.headed[n-1] {
			e.depth--
		}
		e.headed = e.headed[:n-1]
	}
}

func (e *textEmitter) BeginSeq() {
	e.inSeq = true
	e.seq = e.seq[:0]
}

func (e *textEmitter) EndSeq() {
	e.inSeq = false
	e.line(fmt.Sprintf("%s: %s", e.key, strings.Join(e.seq, " ")))
	e.hasKey = false
}

func (e *textEmitter) Flush() error {
	if err := e.w.Flush(); err != nil && e.err == nil {
		e.err = err
	}
	return e.err
}

// Name returns "text".
func (e *textEmitter) Name() string { return "text" }

func (e *textEmitter) line(s string) {
	if e.err != nil {
		return
	}
	for i := 0; i < e.depth*e.step; i++ {
		if err := e.w.WriteByte(' '); err != nil {
			e.err = err
			return
		}
	}
	if _, err := e.w.WriteString(s); err != nil {
		e.err = err
		return
	}
	if err := e.w.WriteByte('\n'); err != nil {
		e.err = err
	}
}
