// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve binds the names of an analysis tree to variables.
//
// Resolution is a two-phase walk over each scope region. The first
// phase collects every name the region assigns, creating variables in
// the scope's table; the second resolves references, so that a name
// referenced before a later assignment in the same function still
// binds locally. Nested scopes are processed after their enclosing
// region, which guarantees the enclosing table is complete before any
// closure is taken.
//
// Resolution attaches variables to VarRef and VarTarget nodes in
// place and reports semantic errors of the input program, such as
// assigning to a name already captured from an enclosing scope.
package resolve

import (
	"fmt"

	"go.pyast.net/syntax"
)

// An Error describes one semantic error found during resolution.
type Error struct {
	Pos syntax.Position
	Msg string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// An ErrorList is a non-empty list of resolver errors.
type ErrorList []Error

func (e ErrorList) Error() string { return e[0].Error() }

// Tree resolves all names of the module's tree. If the module's
// program text is semantically invalid, it returns an ErrorList with
// at least one element.
func Tree(m *syntax.Module) error {
	r := &resolver{}
	r.scope(m)
	if len(r.errors) > 0 {
		return r.errors
	}
	return nil
}

type resolver struct {
	errors ErrorList
}

func (r *resolver) errorf(pos syntax.Position, format string, args ...interface{}) {
	r.errors = append(r.errors, Error{pos, fmt.Sprintf(format, args...)})
}

// scope resolves the region owned by s, then the nested scopes found
// in it.
func (r *resolver) scope(s syntax.Scope) {
	var nested []syntax.Scope
	roots := regionRoots(s)

	// Comprehension loop targets are bound before anything else in the
	// region. List-comprehension targets were already bound while the
	// enclosing region collected its assignments, so for them this
	// finds the memoized binding.
	if c, ok := s.(interface{ Targets() []syntax.Node }); ok {
		for _, t := range c.Targets() {
			r.bindTarget(s, t)
		}
	}

	// Global declarations take effect for the whole region, even for
	// assignments textually before them, so they are applied first:
	// registering the module's own variable in this scope's table makes
	// every later lookup of the name find it.
	for _, root := range roots {
		r.walkRegion(s, root, func(n syntax.Node) {
			if g, ok := n.(*syntax.GlobalStmt); ok {
				mod := ParentModule(s)
				for _, name := range g.Names() {
					s.RegisterProvidedVariable(mod.ProvidedVariable(name))
				}
			}
		})
	}

	for _, root := range roots {
		r.walkRegion(s, root, func(n syntax.Node) {
			r.bind(s, n, &nested)
		})
	}
	for _, root := range roots {
		r.walkRegion(s, root, func(n syntax.Node) {
			if ref, ok := n.(*syntax.VarRef); ok {
				ref.SetVariable(s.VariableForReference(ref.Name()))
			}
		})
	}

	for _, ns := range nested {
		r.scope(ns)
	}
}

// walkRegion visits the nodes of s's region under root in pre-order.
// A nested scope node is visited itself, but of its children only the
// ones evaluated in s's region are descended into.
func (r *resolver) walkRegion(s syntax.Scope, root syntax.Node, f func(syntax.Node)) {
	f(root)
	if nested, ok := root.(syntax.Scope); ok {
		for _, c := range outerChildren(nested) {
			r.walkRegion(s, c, f)
		}
		return
	}
	for _, c := range root.VisitableChildren() {
		r.walkRegion(s, c, f)
	}
}

// bind processes one region node in the assignment-collection phase.
func (r *resolver) bind(s syntax.Scope, n syntax.Node, nested *[]syntax.Scope) {
	switch n := n.(type) {
	case *syntax.AssignStmt:
		for _, t := range n.Targets() {
			r.bindTarget(s, t)
		}
	case *syntax.InplaceAssignStmt:
		r.bindTarget(s, n.Target())
	case *syntax.ForStmt:
		r.bindTarget(s, n.Target())
	case *syntax.WithStmt:
		if t := n.Target(); t != nil {
			r.bindTarget(s, t)
		}
	case *syntax.TryExceptStmt:
		for _, h := range n.Handlers() {
			if h.Target != nil {
				r.bindTarget(s, h.Target)
			}
		}
	case *syntax.ImportStmt:
		for _, spec := range n.Imports() {
			r.bindName(s, spec.LocalName(), n.Position())
		}
	case *syntax.ImportFromStmt:
		for _, name := range n.Imports() {
			if name == "*" {
				// A star import defeats static binding of the scope.
				if m, ok := s.(interface{ MarkAsLocalsDict() }); ok {
					m.MarkAsLocalsDict()
				}
				continue
			}
			r.bindName(s, name, n.Position())
		}
	case *syntax.ExecStmt:
		if m, ok := s.(interface{ MarkAsLocalsDict() }); ok {
			m.MarkAsLocalsDict()
		}
	case *syntax.YieldExpr:
		if g, ok := s.(interface{ MarkAsGenerator() }); ok {
			g.MarkAsGenerator()
		}
	case *syntax.DefStmt:
		if v := r.bindName(s, n.Name(), n.Position()); v != nil {
			n.SetTargetVariable(v)
		}
		*nested = append(*nested, n)
	case *syntax.ClassStmt:
		if v := r.bindName(s, n.Name(), n.Position()); v != nil {
			n.SetTargetVariable(v)
		}
		*nested = append(*nested, n)
	case *syntax.LambdaExpr:
		*nested = append(*nested, n)
	case *syntax.GeneratorExpr:
		*nested = append(*nested, n)
	case *syntax.ListComp:
		// The loop targets leak into this region, so they are bound
		// together with the region's own assignments; a reference later
		// in the region then sees the leaked name like any other local.
		for _, t := range n.Targets() {
			r.bindTarget(n, t)
		}
		*nested = append(*nested, n)
	case *syntax.SetComp:
		*nested = append(*nested, n)
	case *syntax.DictComp:
		*nested = append(*nested, n)
	}
}

// bindTarget binds the names of a target tree in s. Attribute,
// subscript and slice targets bind no name; their operand expressions
// are resolved as ordinary references.
func (r *resolver) bindTarget(s syntax.Scope, t syntax.Node) {
	switch t := t.(type) {
	case *syntax.VarTarget:
		if v := r.bindName(s, t.Name(), t.Position()); v != nil {
			t.SetVariable(v)
		}
	case *syntax.TupleTarget:
		for _, e := range t.Elements() {
			r.bindTarget(s, e)
		}
	}
}

func (r *resolver) bindName(s syntax.Scope, name string, pos syntax.Position) *syntax.Variable {
	v, err := s.VariableForAssignment(name)
	if err != nil {
		r.errorf(pos, "%v", err)
		return nil
	}
	return v
}
