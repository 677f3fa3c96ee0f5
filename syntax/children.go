// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "log"

// A slot is one named child position of a node: absent, a single node,
// or an ordered sequence. The distinction between an absent single
// child (nil) and an empty sequence is significant and preserved.
type slot struct {
	name string
	n    Node
	seq  []Node
	many bool
}

// one declares a single-child slot. n may be nil (optional child).
func one(name string, n Node) slot {
	return slot{name: name, n: n}
}

// many declares a sequence slot. The nodes are copied on store.
func many(name string, nodes []Node) slot {
	return slot{name: name, seq: normalize(nodes), many: true}
}

func normalize(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return out
}

// slots is the embeddable named-slot child table. The slot set is fixed
// at construction and never grows.
type slots struct {
	node
	owner    Node
	children []slot
}

// initSlots establishes the slot table of owner and adopts every child.
func (s *slots) initSlots(owner Node, children ...slot) {
	s.owner = owner
	s.children = children
	for _, c := range children {
		if c.n != nil {
			c.n.setParent(owner)
		}
		for _, n := range c.seq {
			n.setParent(owner)
		}
	}
}

func (s *slots) slot(name string) *slot {
	for i := range s.children {
		if s.children[i].name == name {
			return &s.children[i]
		}
	}
	log.Panicf("syntax: %s has no child slot %q", s.kind, name)
	panic("unreachable")
}

// Child returns the single child in the named slot, or nil if absent.
func (s *slots) Child(name string) Node {
	c := s.slot(name)
	if c.many {
		log.Panicf("syntax: %s slot %q holds a sequence", s.kind, name)
	}
	return c.n
}

// Children returns the sequence in the named slot.
func (s *slots) Children(name string) []Node {
	c := s.slot(name)
	if !c.many {
		log.Panicf("syntax: %s slot %q holds a single child", s.kind, name)
	}
	return c.seq
}

// SetChild stores n in the named single-child slot and adopts it.
func (s *slots) SetChild(name string, n Node) {
	c := s.slot(name)
	if c.many {
		log.Panicf("syntax: %s slot %q holds a sequence", s.kind, name)
	}
	c.n = n
	if n != nil {
		n.setParent(s.owner)
	}
}

// SetChildren stores the sequence in the named slot and adopts each node.
func (s *slots) SetChildren(name string, nodes []Node) {
	c := s.slot(name)
	if !c.many {
		log.Panicf("syntax: %s slot %q holds a single child", s.kind, name)
	}
	c.seq = normalize(nodes)
	for _, n := range c.seq {
		n.setParent(s.owner)
	}
}

func (s *slots) VisitableChildren() []Node {
	var result []Node
	for i := range s.children {
		c := &s.children[i]
		if c.many {
			result = append(result, c.seq...)
		} else if c.n != nil {
			result = append(result, c.n)
		}
	}
	return result
}

// SameScopeChildren is VisitableChildren minus the "body" slot.
// Scope-bearing kinds with non-default signature-level children
// (functions, lambdas, classes) shadow this method.
func (s *slots) SameScopeChildren() []Node {
	var result []Node
	for i := range s.children {
		c := &s.children[i]
		if c.name == "body" {
			continue
		}
		if c.many {
			result = append(result, c.seq...)
		} else if c.n != nil {
			result = append(result, c.n)
		}
	}
	return result
}

func (s *slots) ReplaceChild(old, new Node) {
	for i := range s.children {
		c := &s.children[i]
		if c.many {
			for j, n := range c.seq {
				if n == old {
					seq := normalize(c.seq)
					seq[j] = new
					c.seq = seq
					new.setParent(old.Parent())
					return
				}
			}
		} else if c.n == old && old != nil {
			c.n = new
			new.setParent(old.Parent())
			return
		}
	}
	log.Panicf("syntax: replaceChild: %s is not a child of %s", old.Kind(), s.kind)
}

// exprNodes converts an expression slice for storage in a sequence slot.
func exprNodes(exprs []Expr) []Node {
	out := make([]Node, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}

func stmtNodes(stmts []Stmt) []Node {
	out := make([]Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}

func targetNodes(targets []Target) []Node {
	out := make([]Node, len(targets))
	for i, t := range targets {
		out[i] = t
	}
	return out
}
