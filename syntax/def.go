// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Params describes the parameter list of a function-like scope.
// Parameter variables are registered in the scope's table at
// construction, before any body statement is attached.
type Params struct {
	Names       []string // positional parameters, in declaration order
	ListStarArg string   // *args name, "" if absent
	DictStarArg string   // **kwargs name, "" if absent
}

// AllNames returns every parameter name in binding order.
func (p Params) AllNames() []string {
	names := append([]string(nil), p.Names...)
	if p.ListStarArg != "" {
		names = append(names, p.ListStarArg)
	}
	if p.DictStarArg != "" {
		names = append(names, p.DictStarArg)
	}
	return names
}

func registerParams(s Scope, p Params) {
	for _, name := range p.AllNames() {
		s.RegisterProvidedVariable(newParameterVariable(s, name))
	}
}

// A DefStmt is a function definition. It binds its name in the
// enclosing scope and owns a late-binding local scope: references in
// the body are not resolved against enclosing scopes until the body's
// complete assignment set is known.
//
// Defaults and decorators are evaluated in the enclosing scope, so
// they are the statement's only same-scope children.
type DefStmt struct {
	slots
	scope
	name       string
	doc        string
	params     Params
	targetVar  *Variable
	generator  bool
	localsDict bool
}

func NewDefStmt(provider Scope, name, doc string, params Params, defaults, decorators []Expr, pos Position) *DefStmt {
	d := &DefStmt{name: name, doc: doc, params: params}
	d.node = node{kind: KindDefStmt, pos: pos}
	d.initSlots(d,
		one("body", nil),
		many("defaults", exprNodes(defaults)),
		many("decorators", exprNodes(decorators)),
	)
	d.initScope(d, provider, "function", false, func(name string) *Variable {
		return newLocalVariable(d, name)
	})
	registerParams(d, params)
	return d
}

func (d *DefStmt) Name() string      { return d.name }
func (d *DefStmt) ScopeName() string { return d.name }
func (d *DefStmt) Doc() string       { return d.doc }
func (d *DefStmt) Params() Params    { return d.params }

func (d *DefStmt) Body() Node                 { return d.Child("body") }
func (d *DefStmt) SetBody(body *StmtSequence) { d.SetChild("body", seqOrNil(body)) }
func (d *DefStmt) Defaults() []Node           { return d.Children("defaults") }
func (d *DefStmt) Decorators() []Node         { return d.Children("decorators") }

// TargetVariable returns the enclosing-scope variable the function
// name is bound to, nil until resolution.
func (d *DefStmt) TargetVariable() *Variable     { return d.targetVar }
func (d *DefStmt) SetTargetVariable(v *Variable) { d.targetVar = v }

func (d *DefStmt) MarkAsGenerator()  { d.generator = true }
func (d *DefStmt) IsGenerator() bool { return d.generator }

// MarkAsLocalsDict records that the function needs its locals as a
// dictionary, as an exec statement in the body forces.
func (d *DefStmt) MarkAsLocalsDict()   { d.localsDict = true }
func (d *DefStmt) HasLocalsDict() bool { return d.localsDict }

// LocalVariables returns the function's own locals, parameters included.
func (d *DefStmt) LocalVariables() []*Variable {
	var result []*Variable
	for _, v := range d.ProvidedVariables() {
		if v.IsLocalVariable() {
			result = append(result, v)
		}
	}
	return result
}

// UserLocalVariables returns the locals assigned in the body,
// excluding parameters.
func (d *DefStmt) UserLocalVariables() []*Variable {
	var result []*Variable
	for _, v := range d.ProvidedVariables() {
		if v.IsLocalVariable() && !v.IsParameterVariable() {
			result = append(result, v)
		}
	}
	return result
}

func (d *DefStmt) VariableForReference(name string) *Variable {
	return d.referenceOrClosure(name)
}

func (d *DefStmt) VariableForAssignment(name string) (*Variable, error) {
	return d.assignLate(name)
}

func (d *DefStmt) variableForClosure(name string) *Variable {
	return d.referenceOrClosure(name)
}

// A ClassStmt is a class definition. The class body is an early-binding
// scope with its own variable table, but that table is invisible to
// closures: a function nested in the body takes names from the scopes
// enclosing the class, never from the class itself.
type ClassStmt struct {
	slots
	scope
	name       string
	doc        string
	targetVar  *Variable
	localsDict bool
}

func NewClassStmt(provider Scope, name, doc string, bases, decorators []Expr, pos Position) *ClassStmt {
	c := &ClassStmt{name: name, doc: doc}
	c.node = node{kind: KindClassStmt, pos: pos}
	c.initSlots(c,
		one("body", nil),
		many("bases", exprNodes(bases)),
		many("decorators", exprNodes(decorators)),
	)
	c.initScope(c, provider, "class", true, func(name string) *Variable {
		return newClassVariable(c, name)
	})
	return c
}

func (c *ClassStmt) Name() string      { return c.name }
func (c *ClassStmt) ScopeName() string { return c.name }
func (c *ClassStmt) Doc() string       { return c.doc }

func (c *ClassStmt) Body() Node                 { return c.Child("body") }
func (c *ClassStmt) SetBody(body *StmtSequence) { c.SetChild("body", seqOrNil(body)) }
func (c *ClassStmt) Bases() []Node              { return c.Children("bases") }
func (c *ClassStmt) Decorators() []Node         { return c.Children("decorators") }

func (c *ClassStmt) TargetVariable() *Variable     { return c.targetVar }
func (c *ClassStmt) SetTargetVariable(v *Variable) { c.targetVar = v }

func (c *ClassStmt) MarkAsLocalsDict()   { c.localsDict = true }
func (c *ClassStmt) HasLocalsDict() bool { return c.localsDict }

// ClassVariables returns the attributes bound in the class body.
func (c *ClassStmt) ClassVariables() []*Variable {
	var result []*Variable
	for _, v := range c.ProvidedVariables() {
		if v.IsClassVariable() {
			result = append(result, v)
		}
	}
	return result
}

// Each assignment in a class body binds a fresh class variable,
// shadowing any earlier binding of the same name. A reference sees
// the latest binding, or takes the name from enclosing scopes.
func (c *ClassStmt) VariableForAssignment(name string) (*Variable, error) {
	v := newClassVariable(c, name)
	c.RegisterProvidedVariable(v)
	return v, nil
}

func (c *ClassStmt) VariableForReference(name string) *Variable {
	if c.HasProvidedVariable(name) {
		return c.ProvidedVariable(name)
	}
	return c.closureVariable(name)
}

// variableForClosure bypasses the class table entirely.
func (c *ClassStmt) variableForClosure(name string) *Variable {
	return c.Provider().variableForClosure(name)
}
