// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides the analysis tree of a Python module: typed
// nodes with parent back-references and named child slots, the variable
// model shared with the resolver, and deterministic per-scope code names.
//
// Trees are constructed bottom-up by an external parser and rewritten in
// place by later passes through ReplaceChild. A tree is confined to one
// goroutine; independent module trees may be processed concurrently.
package syntax

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// A Node is a node in an analysis tree.
//
// Every node except a module has exactly one parent at any time:
// insertion into a slot sets it, ReplaceChild re-points it with the swap.
type Node interface {
	// Kind returns the tag identifying the concrete variant.
	Kind() Kind

	// Position returns the node's source location.
	Position() Position

	// Parent returns the owning parent node, or nil for a module.
	// It panics if called on a non-module node that has not been
	// inserted into a tree: that is an internal-consistency defect
	// of the producing pass.
	Parent() Node

	// VisitableChildren returns every non-absent child in slot
	// declaration order, flattening sequence slots.
	VisitableChildren() []Node

	// SameScopeChildren is VisitableChildren without the node's body,
	// for traversals that must not descend into a nested scope's
	// statements while still visiting its signature-level children.
	SameScopeChildren() []Node

	// ReplaceChild substitutes new for old at old's exact slot position
	// and re-points new's parent. It panics if old is not a direct
	// child of the node. This is the only sanctioned shape mutation
	// after construction.
	ReplaceChild(old, new Node)

	parentOrNil() Node
	setParent(Node)
}

// A Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// An Expr is an expression node.
type Expr interface {
	Node
	expr()
}

// A Target is an assignment-target node.
type Target interface {
	Node
	target()
}

// node is the embeddable base of every concrete variant.
type node struct {
	kind   Kind
	pos    Position
	parent Node
}

func (n *node) Kind() Kind         { return n.kind }
func (n *node) Position() Position { return n.pos }

func (n *node) Parent() Node {
	if n.parent == nil && !n.kind.IsModule() {
		log.Panicf("syntax: %s node at %s has no parent", n.kind, n.pos)
	}
	return n.parent
}

func (n *node) parentOrNil() Node { return n.parent }
func (n *node) setParent(p Node)  { n.parent = p }
func (n *node) String() string    { return n.kind.String() }

// leaf is the base of variants without child nodes.
type leaf struct {
	node
}

func (l *leaf) VisitableChildren() []Node { return nil }
func (l *leaf) SameScopeChildren() []Node { return nil }

func (l *leaf) ReplaceChild(old, new Node) {
	log.Panicf("syntax: replaceChild: %s has no children", l.kind)
}

// Visit calls f for n and then for each visitable child, depth-first in
// pre-order, left to right. There is no short-circuit: a visitor wanting
// early termination must signal it out of band.
func Visit(n Node, f func(Node)) {
	f(n)
	for _, c := range n.VisitableChildren() {
		Visit(c, f)
	}
}

// Replace substitutes new for n at n's position in its parent.
func Replace(n, new Node) {
	n.Parent().ReplaceChild(n, new)
}

// Dump writes an indented rendering of the tree rooted at n to w,
// one node per line.
func Dump(w io.Writer, n Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n Node, depth int) {
	line := n.Kind().String()
	if d := detail(n); d != "" {
		line += " " + d
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), line)
	for _, c := range n.VisitableChildren() {
		dump(w, c, depth+1)
	}
}

func detail(n Node) string {
	switch n := n.(type) {
	case *Module:
		return n.Name()
	case *DefStmt:
		return n.Name()
	case *ClassStmt:
		return n.Name()
	case *VarRef:
		return n.Name()
	case *VarTarget:
		return n.Name()
	case *ConstantExpr:
		return fmt.Sprintf("%v", n.Value())
	case *AttrExpr:
		return n.AttrName()
	case *AttrTarget:
		return n.AttrName()
	case *BinaryExpr:
		return n.Operator()
	case *UnaryExpr:
		return n.Operator()
	case *InplaceAssignStmt:
		return n.Operator()
	}
	return ""
}

// A NamedEntity is a node carrying a source-level identifier
// (modules, function and class definitions).
type NamedEntity interface {
	Node
	Name() string
}

// niceName returns the name used for n in qualified full names:
// the identifier for named entities, a fixed placeholder for
// anonymous scopes.
func niceName(n Node) (string, bool) {
	switch n := n.(type) {
	case *Module:
		return n.Name(), true
	case *DefStmt:
		return n.Name(), true
	case *ClassStmt:
		return n.Name(), true
	case *LambdaExpr:
		return "lambda", true
	case *GeneratorExpr:
		return "genexpr", true
	case *ListComp:
		return "listcomp", true
	case *SetComp:
		return "setcomp", true
	case *DictComp:
		return "dictcomp", true
	}
	return "", false
}

// FullName returns the qualified name of n, computed by joining the
// names of its named ancestors with "__", outermost first.
func FullName(n Node) string {
	name, ok := niceName(n)
	if !ok {
		log.Panicf("syntax: %s node has no name", n.Kind())
	}
	for p := n.parentOrNil(); p != nil; p = p.parentOrNil() {
		if outer, ok := niceName(p); ok {
			name = outer + "__" + name
		}
	}
	return name
}
