// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"log"
	"strings"
)

// A Module is the root of an analysis tree. There is no other possible
// root; many modules form a forest. A package init module is a Module
// with KindPackage.
//
// The module registry supplies the dotted name and package path at
// construction. Modules provide module variables and resolve references
// eagerly: their name set needs no capture timing.
type Module struct {
	slots
	scope
	name string
	pkg  string // dotted package path, empty for a top-level module
	doc  string
}

func NewModule(name, pkg string, pos Position) *Module {
	return newModule(KindModule, name, pkg, pos)
}

// NewPackage returns the init module of a package.
func NewPackage(name, pkg string, pos Position) *Module {
	return newModule(KindPackage, name, pkg, pos)
}

func newModule(kind Kind, name, pkg string, pos Position) *Module {
	if name == "" || strings.ContainsAny(name, ". ") {
		log.Panicf("syntax: invalid module name %q", name)
	}
	m := &Module{name: name, pkg: pkg}
	m.node = node{kind: kind, pos: pos}
	m.initSlots(m, one("frame", nil))
	m.initScope(m, nil, "module", true, func(name string) *Variable {
		return newModuleVariable(m, name)
	})
	return m
}

// Name returns the module's own (undotted) name.
func (m *Module) Name() string { return m.name }

// Package returns the dotted package path, or "" for a top-level module.
func (m *Module) Package() string { return m.pkg }

// FullName returns the dotted module name including the package path.
func (m *Module) FullName() string {
	if m.pkg != "" {
		return m.pkg + "." + m.name
	}
	return m.name
}

// Filename returns the source file the module was parsed from.
func (m *Module) Filename() string { return m.pos.Path }

func (m *Module) Doc() string       { return m.doc }
func (m *Module) SetDoc(doc string) { m.doc = doc }

// Body returns the module's statement sequence, nil before SetBody.
func (m *Module) Body() Node { return m.Child("frame") }

func (m *Module) SetBody(body *StmtSequence) {
	if body == nil {
		m.SetChild("frame", nil)
		return
	}
	m.SetChild("frame", body)
}

func (m *Module) ScopeName() string { return m.name }

func (m *Module) VariableForReference(name string) *Variable {
	return m.ProvidedVariable(name)
}

func (m *Module) VariableForAssignment(name string) (*Variable, error) {
	return m.ProvidedVariable(name), nil
}

func (m *Module) variableForClosure(name string) *Variable {
	return m.ProvidedVariable(name)
}
