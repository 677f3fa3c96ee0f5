// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"log"
	"sort"
)

// A Scope is a scope-bearing node: one that owns a table of variables
// its descendants can draw from. Modules, functions, lambdas, classes,
// generator expressions and comprehensions are scopes.
//
// The provider side is the memoized table: ProvidedVariable creates a
// variable on first request via a kind-specific strategy and returns the
// identical object thereafter. The consumer side records which variables
// were pulled from enclosing scopes (taken) and which of those require a
// capture cell (closure; module variables are excluded).
type Scope interface {
	Node

	// ScopeName returns the identifier of a named scope, or a fixed
	// placeholder such as "lambda" for anonymous ones.
	ScopeName() string

	// EarlyClosure reports whether references in this scope may be
	// resolved immediately as they are encountered. Function, lambda
	// and generator scopes are late binders: a name referenced before
	// a later assignment in the same scope is still a local, so their
	// free references must not be resolved until the scope's complete
	// local set is known.
	EarlyClosure() bool

	// CodeName returns the scope's deterministic generated symbol.
	CodeName() string

	// Provider returns the lexically enclosing scope recorded at
	// construction, or nil for a module.
	Provider() Scope

	HasProvidedVariable(name string) bool
	ProvidedVariable(name string) *Variable
	RegisterProvidedVariable(v *Variable)

	// ProvidedVariables returns the table in insertion order.
	ProvidedVariables() []*Variable

	// TakenVariable returns the variable previously resolved through
	// this scope under name, if any.
	TakenVariable(name string) (*Variable, bool)

	// ClosureVariables returns the closure set sorted by variable
	// name, making capture-cell lists deterministic and independent
	// of visitation order.
	ClosureVariables() []*Variable

	// VariableForReference resolves a name read in this scope:
	// the scope's own table first, else the enclosing provider chain,
	// wrapping non-module results in a closure reference and
	// memoizing the outcome.
	VariableForReference(name string) *Variable

	// VariableForAssignment resolves a name written in this scope.
	// Module and class scopes always bind locally. Function-like
	// scopes reuse a previously taken module variable, report a
	// *BindingConflictError for a previously taken capture, and
	// otherwise materialize a fresh local.
	VariableForAssignment(name string) (*Variable, error)

	variableForClosure(name string) *Variable
	childUID(n Node) int
}

// scope is the embeddable provider/consumer state of scope-bearing nodes.
type scope struct {
	owner      Scope
	provider   Scope // nil for modules
	codePrefix string
	early      bool
	newVar     func(name string) *Variable

	vars  map[string]*Variable
	order []string // table insertion order

	taken   map[string]*Variable
	closure map[string]*Variable

	uids     map[Kind]int
	codeName string
}

func (s *scope) initScope(owner Scope, provider Scope, prefix string, early bool, newVar func(string) *Variable) {
	s.owner = owner
	s.provider = provider
	s.codePrefix = prefix
	s.early = early
	s.newVar = newVar
	s.vars = make(map[string]*Variable)
	s.taken = make(map[string]*Variable)
	s.closure = make(map[string]*Variable)
}

func (s *scope) EarlyClosure() bool { return s.early }
func (s *scope) Provider() Scope    { return s.provider }

func (s *scope) HasProvidedVariable(name string) bool {
	_, ok := s.vars[name]
	return ok
}

func (s *scope) ProvidedVariable(name string) *Variable {
	if v, ok := s.vars[name]; ok {
		return v
	}
	v := s.newVar(name)
	s.RegisterProvidedVariable(v)
	return v
}

func (s *scope) RegisterProvidedVariable(v *Variable) {
	if v == nil {
		log.Panicf("syntax: %s: registering nil variable", s.owner.Kind())
	}
	name := v.Name()
	if _, ok := s.vars[name]; !ok {
		s.order = append(s.order, name)
	}
	s.vars[name] = v
}

func (s *scope) ProvidedVariables() []*Variable {
	result := make([]*Variable, len(s.order))
	for i, name := range s.order {
		result[i] = s.vars[name]
	}
	return result
}

func (s *scope) TakenVariable(name string) (*Variable, bool) {
	v, ok := s.taken[name]
	return v, ok
}

func (s *scope) ClosureVariables() []*Variable {
	result := make([]*Variable, 0, len(s.closure))
	for _, v := range s.closure {
		result = append(result, v)
	}
	// Sorted by name at read time, not at insertion time.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// closureVariable pulls name from the enclosing provider chain,
// wrapping non-module results and recording the take. The result is
// memoized per name so repeated takes return the identical variable.
func (s *scope) closureVariable(name string) *Variable {
	if v, ok := s.taken[name]; ok {
		return v
	}
	if s.provider == nil {
		log.Panicf("syntax: %s has no enclosing scope to take %q from", s.owner.Kind(), name)
	}
	v := s.provider.variableForClosure(name)
	if v == nil {
		log.Panicf("syntax: no enclosing scope provides %q", name)
	}
	if !v.IsModuleVariable() {
		v = newClosureReference(s.owner, v)
		s.closure[name] = v
	}
	s.taken[name] = v
	return v
}

// referenceOrClosure implements VariableForReference for function-like
// scopes: own table first, else take from enclosing scopes and register
// the result so a second reference reuses it without re-delegating.
func (s *scope) referenceOrClosure(name string) *Variable {
	if v, ok := s.vars[name]; ok {
		return v
	}
	v := s.closureVariable(name)
	s.RegisterProvidedVariable(v)
	return v
}

// assignLate implements VariableForAssignment for late-binding scopes.
func (s *scope) assignLate(name string) (*Variable, error) {
	if v, ok := s.taken[name]; ok {
		// A prior reference pulled this name from an enclosing scope.
		// Assignment may bind to it only if it is a module global
		// (declared-global semantics); a captured outer local cannot
		// also be locally assigned.
		if v.IsModuleVariable() {
			return v, nil
		}
		return nil, &BindingConflictError{Name: name, Scope: s.owner}
	}
	return s.ProvidedVariable(name), nil
}
