package statgo

import (
	"github.com/hupe1980/statgo/emit"
)

// leaf is the closed set of counter kinds a group can hold. Counter and
// Array implement it for every Value instantiation; dump and merge dispatch
// through it during tree traversal.
type leaf interface {
	leafName() string
	leafOffset() int
	leafSize() int
	setTarget(a *Arena)
	dump(e emit.Emitter, a *Arena)
	mergeInto(dst, src *Arena)
}

// Group is a named node in the registry tree. It owns leaf counters and
// child groups for hierarchical reporting. Registration order is
// append-only and is the canonical dump and merge order.
//
// Sibling names are not checked for uniqueness; duplicates render as
// duplicate keys in structured output.
type Group struct {
	name     string
	registry *Registry
	parent   *Group
	children []*Group
	leaves   []leaf
	target   *Arena
}

// NewGroup creates a group named name under parent. The new group inherits
// the parent's current target arena at construction time.
//
// Top-level groups are created with Registry.NewGroup.
func NewGroup(name string, parent *Group) *Group {
	if parent == nil {
		panic("statgo: NewGroup requires a parent; use Registry.NewGroup for top-level groups")
	}
	g := &Group{
		name:     name,
		registry: parent.registry,
		parent:   parent,
		target:   parent.target,
	}
	parent.children = append(parent.children, g)
	return g
}

// Name returns the group's reporting name.
func (g *Group) Name() string { return g.name }

// Parent returns the group's parent, or nil for the registry root.
func (g *Group) Parent() *Group { return g.parent }

// Registry returns the registry this group belongs to.
func (g *Group) Registry() *Registry { return g.registry }

// Target returns the group's current default arena (nil if unset).
func (g *Group) Target() *Arena { return g.target }

func (g *Group) addLeaf(l leaf) {
	g.leaves = append(g.leaves, l)
}

// SetTargetArena sets the default arena for this group and, recursively,
// for every descendant group and leaf reachable at the time of the call.
// Counters and groups declared afterwards are not set retroactively: they
// capture their parent's target at their own construction time.
func (g *Group) SetTargetArena(a *Arena) {
	g.target = a
	for _, l := range g.leaves {
		l.setTarget(a)
	}
	for _, c := range g.children {
		c.SetTargetArena(a)
	}
}

// Dump renders this subtree to e, reading every value from a. Traversal is
// depth-first, pre-order: the group's key, then its leaves in registration
// order, then its children in registration order. The caller remains
// responsible for flushing the emitter; Registry.Dump does both.
func (g *Group) Dump(e emit.Emitter, a *Arena) {
	if g.name != "" {
		e.Key(g.name)
	}
	e.BeginMap()
	for _, l := range g.leaves {
		l.dump(e, a)
	}
	for _, c := range g.children {
		c.Dump(e, a)
	}
	e.EndMap()
}

// Merge adds every counter value under this subtree in src into dst,
// element-wise for arrays, visiting leaves in the same order as Dump.
// src is not modified.
func (g *Group) Merge(dst, src *Arena) {
	for _, l := range g.leaves {
		l.mergeInto(dst, src)
	}
	for _, c := range g.children {
		c.Merge(dst, src)
	}
}
