// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"
	"log"
)

// Code names are the deterministic, source-text-independent symbols
// assigned to scope-bearing nodes for use in generated target code.
//
// The name of a module is a fixed transform of the module name. Any
// other scope finds its anchor, the nearest ancestor that is itself a
// scope, takes a sequence number unique among the anchor's direct
// scope descendants of the same kind, and composes
//
//	<prefix>_<uid>[_<identifier>]_of_<anchor code name>
//
// Code names are memoized on first request; they are globally unique
// and byte-identical across runs as long as scopes are requested in a
// stable order (construction order).

// CodeName returns the scope's generated symbol, computing it at most once.
func (s *scope) CodeName() string {
	if s.codeName != "" {
		return s.codeName
	}
	if s.owner.Kind().IsModule() {
		s.codeName = "module_" + s.owner.ScopeName()
		return s.codeName
	}

	var anchor Scope
	for p := s.owner.parentOrNil(); p != nil; p = p.parentOrNil() {
		if sc, ok := p.(Scope); ok {
			anchor = sc
			break
		}
	}
	if anchor == nil {
		log.Panicf("syntax: %s scope is not part of a module tree", s.owner.Kind())
	}

	name := fmt.Sprintf("_%d", anchor.childUID(s.owner))
	if named, ok := s.owner.(NamedEntity); ok {
		name += "_" + named.Name()
	}
	s.codeName = fmt.Sprintf("%s%s_of_%s", s.codePrefix, name, anchor.CodeName())
	return s.codeName
}

// childUID returns the next sequence number for a direct scope
// descendant of n's kind, starting at 1.
func (s *scope) childUID(n Node) int {
	if s.uids == nil {
		s.uids = make(map[Kind]int)
	}
	s.uids[n.Kind()]++
	return s.uids[n.Kind()]
}
