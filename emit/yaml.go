package emit

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAML creates a YAML emitter writing to w.
//
// The dump renders as nested mappings keyed by group and counter names, in
// registration order. Array counters render as flow-style sequences:
//
//	cache:
//	  hits: 3
//	  latency_hist: [0, 0, 7, 0]
//
// The emitter builds a yaml.Node document during the dump and encodes it on
// Flush, which keeps key order exactly as emitted (plain map marshalling
// would sort keys).
func YAML(w io.Writer) Emitter {
	return &yamlEmitter{w: w}
}

type yamlEmitter struct {
	w     io.Writer
	doc   *yaml.Node
	stack []*yaml.Node
	key   string
	err   error
}

func (e *yamlEmitter) Key(name string) {
	e.key = name
}

func (e *yamlEmitter) Value(v any) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		if e.err == nil {
			e.err = err
		}
		return
	}
	e.attach(n)
}

func (e *yamlEmitter) BeginMap() {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	e.attach(n)
	e.stack = append(e.stack, n)
}

func (e *yamlEmitter) EndMap() {
	if len(e.stack) > 0 {
		e.stack = e.stack[:len(e.stack)-1]
	}
}

func (e *yamlEmitter) BeginSeq() {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	e.attach(n)
	e.stack = append(e.stack, n)
}

func (e *yamlEmitter) EndSeq() {
	e.EndMap()
}

func (e *yamlEmitter) Flush() error {
	if e.err != nil {
		return e.err
	}
	if e.doc == nil {
		return nil
	}
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	err := enc.Encode(e.doc)
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	if e.err == nil {
		e.err = err
	}
	return e.err
}

// Name returns "yaml".
func (e *yamlEmitter) Name() string { return "yaml" }

// attach places n into the innermost open container: keyed into a mapping,
// appended to a sequence, or as the document root when nothing is open.
func (e *yamlEmitter) attach(n *yaml.Node) {
	if len(e.stack) == 0 {
		e.doc = n
		return
	}
	cur := e.stack[len(e.stack)-1]
	if cur.Kind == yaml.MappingNode {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key}
		cur.Content = append(cur.Content, k, n)
		return
	}
	cur.Content = append(cur.Content, n)
}
