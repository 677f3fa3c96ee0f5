// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import "go.pyast.net/syntax"

// outerChildren returns the children of a scope node that are
// evaluated in the enclosing scope, not the node's own: function and
// lambda default expressions, function and class decorators, class
// base expressions, and the first iterated source of a comprehension
// or generator expression.
func outerChildren(s syntax.Scope) []syntax.Node {
	switch s := s.(type) {
	case *syntax.DefStmt:
		return append(append([]syntax.Node(nil), s.Defaults()...), s.Decorators()...)
	case *syntax.LambdaExpr:
		return s.Defaults()
	case *syntax.ClassStmt:
		return append(append([]syntax.Node(nil), s.Bases()...), s.Decorators()...)
	}
	if c, ok := s.(interface{ Sources() []syntax.Node }); ok {
		if sources := c.Sources(); len(sources) > 0 {
			return sources[:1]
		}
	}
	return nil
}

// regionRoots returns the children of s that start s's own region:
// every visitable child that is not an outer child.
func regionRoots(s syntax.Scope) []syntax.Node {
	outer := outerChildren(s)
	var roots []syntax.Node
children:
	for _, c := range s.VisitableChildren() {
		for _, o := range outer {
			if c == o {
				continue children
			}
		}
		roots = append(roots, c)
	}
	return roots
}

// EnclosingScope returns the scope whose region contains n, or nil if
// n is a module. A node in an outer-child position of a scope node,
// such as a default expression of a function, belongs to the region
// enclosing that scope, not to the scope itself.
func EnclosingScope(n syntax.Node) syntax.Scope {
	for {
		p := n.Parent()
		if p == nil {
			return nil
		}
		if s, ok := p.(syntax.Scope); ok && !isOuterChild(s, n) {
			return s
		}
		n = p
	}
}

func isOuterChild(s syntax.Scope, n syntax.Node) bool {
	for _, c := range outerChildren(s) {
		if c == n {
			return true
		}
	}
	return false
}

// ParentModule returns the module at the root of n's tree. For scope
// nodes it follows the provider chain, so it works on a scope that has
// not been inserted into a tree yet.
func ParentModule(n syntax.Node) *syntax.Module {
	for {
		if m, ok := n.(*syntax.Module); ok {
			return m
		}
		if s, ok := n.(syntax.Scope); ok && s.Provider() != nil {
			n = s.Provider()
			continue
		}
		n = n.Parent()
	}
}
