// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "log"

func (*VarTarget) target()       {}
func (*AttrTarget) target()      {}
func (*SubscriptTarget) target() {}
func (*SliceTarget) target()     {}
func (*TupleTarget) target()     {}

// A VarTarget binds a name. Resolution attaches the Variable.
type VarTarget struct {
	leaf
	name     string
	variable *Variable
}

func NewVarTarget(name string, pos Position) *VarTarget {
	n := &VarTarget{name: name}
	n.node = node{kind: KindVarTarget, pos: pos}
	return n
}

func (n *VarTarget) Name() string { return n.name }

// Variable returns the bound variable, nil before resolution.
func (n *VarTarget) Variable() *Variable { return n.variable }

func (n *VarTarget) SetVariable(v *Variable) {
	if v == nil {
		log.Panicf("syntax: binding %q to a nil variable", n.name)
	}
	n.variable = v
}

// An AttrTarget assigns to an attribute: expression.attr = ...
type AttrTarget struct {
	slots
	attr string
}

func NewAttrTarget(expression Expr, attr string, pos Position) *AttrTarget {
	n := &AttrTarget{attr: attr}
	n.node = node{kind: KindAttrTarget, pos: pos}
	n.initSlots(n, one("expression", expression))
	return n
}

func (n *AttrTarget) Expression() Node { return n.Child("expression") }
func (n *AttrTarget) AttrName() string { return n.attr }

// A SubscriptTarget assigns to a subscript: expression[subscript] = ...
type SubscriptTarget struct {
	slots
}

func NewSubscriptTarget(expression, subscript Expr, pos Position) *SubscriptTarget {
	n := &SubscriptTarget{}
	n.node = node{kind: KindSubscriptTarget, pos: pos}
	n.initSlots(n,
		one("expression", expression),
		one("subscript", subscript),
	)
	return n
}

func (n *SubscriptTarget) Expression() Node { return n.Child("expression") }
func (n *SubscriptTarget) Subscript() Node  { return n.Child("subscript") }

// A SliceTarget assigns to a simple slice: expression[lower:upper] = ...
// Either bound may be nil.
type SliceTarget struct {
	slots
}

func NewSliceTarget(expression, lower, upper Expr, pos Position) *SliceTarget {
	n := &SliceTarget{}
	n.node = node{kind: KindSliceTarget, pos: pos}
	n.initSlots(n,
		one("expression", expression),
		one("lower", lower),
		one("upper", upper),
	)
	return n
}

func (n *SliceTarget) Expression() Node { return n.Child("expression") }
func (n *SliceTarget) Lower() Node      { return n.Child("lower") }
func (n *SliceTarget) Upper() Node      { return n.Child("upper") }

// A TupleTarget unpacks into element targets: a, (b, c) = ...
type TupleTarget struct {
	slots
}

func NewTupleTarget(elements []Target, pos Position) *TupleTarget {
	n := &TupleTarget{}
	n.node = node{kind: KindTupleTarget, pos: pos}
	n.initSlots(n, many("elements", targetNodes(elements)))
	return n
}

func (n *TupleTarget) Elements() []Node { return n.Children("elements") }

// TargetVariables returns the variables a target tree binds by name,
// in target order. Attribute, subscript and slice targets bind none.
func TargetVariables(t Target) []*Variable {
	var result []*Variable
	Visit(t, func(n Node) {
		if v, ok := n.(*VarTarget); ok && v.variable != nil {
			result = append(result, v.variable)
		}
	})
	return result
}
