// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "log"

func (*VarRef) expr()        {}
func (*YieldExpr) expr()     {}
func (*LambdaExpr) expr()    {}
func (*GeneratorExpr) expr() {}
func (*ListComp) expr()      {}
func (*SetComp) expr()       {}
func (*DictComp) expr()      {}
func (*DictPair) expr()      {}
func (*CallExpr) expr()      {}
func (*BinaryExpr) expr()    {}
func (*UnaryExpr) expr()     {}
func (*CompareExpr) expr()   {}
func (*CondExpr) expr()      {}
func (*OrExpr) expr()        {}
func (*AndExpr) expr()       {}
func (*NotExpr) expr()       {}
func (*SequenceExpr) expr()  {}
func (*DictExpr) expr()      {}
func (*SetExpr) expr()       {}
func (*AttrExpr) expr()      {}
func (*IndexExpr) expr()     {}
func (*SliceExpr) expr()     {}
func (*SliceObjExpr) expr()  {}

// A VarRef is a read of a name. Resolution attaches the Variable.
type VarRef struct {
	leaf
	name     string
	variable *Variable
}

func NewVarRef(name string, pos Position) *VarRef {
	n := &VarRef{name: name}
	n.node = node{kind: KindVarRef, pos: pos}
	return n
}

func (n *VarRef) Name() string { return n.name }

// Variable returns the resolved variable, nil before resolution.
func (n *VarRef) Variable() *Variable { return n.variable }

func (n *VarRef) SetVariable(v *Variable) {
	if v == nil {
		log.Panicf("syntax: resolving %q to a nil variable", n.name)
	}
	n.variable = v
}

// A YieldExpr suspends the enclosing generator.
type YieldExpr struct {
	slots
}

func NewYieldExpr(expression Expr, pos Position) *YieldExpr {
	n := &YieldExpr{}
	n.node = node{kind: KindYieldExpr, pos: pos}
	n.initSlots(n, one("expression", expression))
	return n
}

func (n *YieldExpr) Expression() Node { return n.Child("expression") }

// A LambdaExpr is an anonymous function of a single expression body.
// Its scope behaves exactly like a DefStmt scope; only the defaults
// are evaluated in the enclosing scope.
type LambdaExpr struct {
	slots
	scope
	params    Params
	generator bool
}

func NewLambdaExpr(provider Scope, params Params, defaults []Expr, pos Position) *LambdaExpr {
	n := &LambdaExpr{params: params}
	n.node = node{kind: KindLambdaExpr, pos: pos}
	n.initSlots(n,
		one("body", nil),
		many("defaults", exprNodes(defaults)),
	)
	n.initScope(n, provider, "lambda", false, func(name string) *Variable {
		return newLocalVariable(n, name)
	})
	registerParams(n, params)
	return n
}

func (n *LambdaExpr) ScopeName() string { return "lambda" }
func (n *LambdaExpr) Params() Params    { return n.params }

func (n *LambdaExpr) Body() Node        { return n.Child("body") }
func (n *LambdaExpr) SetBody(body Expr) { n.SetChild("body", body) }
func (n *LambdaExpr) Defaults() []Node  { return n.Children("defaults") }

func (n *LambdaExpr) MarkAsGenerator()  { n.generator = true }
func (n *LambdaExpr) IsGenerator() bool { return n.generator }

func (n *LambdaExpr) UserLocalVariables() []*Variable {
	var result []*Variable
	for _, v := range n.ProvidedVariables() {
		if v.IsLocalVariable() && !v.IsParameterVariable() {
			result = append(result, v)
		}
	}
	return result
}

func (n *LambdaExpr) VariableForReference(name string) *Variable {
	return n.referenceOrClosure(name)
}

func (n *LambdaExpr) VariableForAssignment(name string) (*Variable, error) {
	return n.assignLate(name)
}

func (n *LambdaExpr) variableForClosure(name string) *Variable {
	return n.referenceOrClosure(name)
}

// contraction is the shared shape of generator expressions and
// comprehensions: a body, N iterated sources, N loop targets and any
// number of filter conditions. The children are attached one group at
// a time as the builder works through the clauses, so all slots start
// empty.
type contraction struct {
	slots
	scope
}

func (n *contraction) initContraction(owner Scope, provider Scope, prefix string, early bool, newVar func(string) *Variable) {
	n.initSlots(owner,
		one("body", nil),
		many("conditions", nil),
		many("sources", nil),
		many("targets", nil),
	)
	n.initScope(owner, provider, prefix, early, newVar)
}

func (n *contraction) Body() Node         { return n.Child("body") }
func (n *contraction) SetBody(body Expr)  { n.SetChild("body", body) }
func (n *contraction) Conditions() []Node { return n.Children("conditions") }
func (n *contraction) Sources() []Node    { return n.Children("sources") }
func (n *contraction) Targets() []Node    { return n.Children("targets") }

func (n *contraction) SetConditions(conditions []Expr) {
	n.SetChildren("conditions", exprNodes(conditions))
}

func (n *contraction) SetSources(sources []Expr) {
	n.SetChildren("sources", exprNodes(sources))
}

// SetTargets attaches the loop targets. It may be called once.
func (n *contraction) SetTargets(targets []Target) {
	if len(n.Children("targets")) != 0 {
		log.Panicf("syntax: %s targets attached twice", n.slots.owner.Kind())
	}
	n.SetChildren("targets", targetNodes(targets))
}

func (n *contraction) VariableForReference(name string) *Variable {
	return n.referenceOrClosure(name)
}

func (n *contraction) VariableForAssignment(name string) (*Variable, error) {
	return n.ProvidedVariable(name), nil
}

func (n *contraction) variableForClosure(name string) *Variable {
	return n.referenceOrClosure(name)
}

// A GeneratorExpr is a generator expression. Unlike comprehensions its
// body runs lazily, after enclosing locals may have been rebound, so
// its scope is a late binder.
type GeneratorExpr struct {
	contraction
}

func NewGeneratorExpr(provider Scope, pos Position) *GeneratorExpr {
	n := &GeneratorExpr{}
	n.node = node{kind: KindGeneratorExpr, pos: pos}
	n.initContraction(n, provider, "genexpr", false, func(name string) *Variable {
		return newLocalVariable(n, name)
	})
	return n
}

func (n *GeneratorExpr) ScopeName() string { return "genexpr" }

// A ListComp is a list comprehension. Its loop targets leak: assigning
// a target name binds the name in the enclosing scope, and the
// comprehension uses that binding through a closure reference.
type ListComp struct {
	contraction
}

func NewListComp(provider Scope, pos Position) *ListComp {
	n := &ListComp{}
	n.node = node{kind: KindListComp, pos: pos}
	n.initContraction(n, provider, "listcomp", true, func(name string) *Variable {
		return n.closureVariable(name)
	})
	return n
}

func (n *ListComp) ScopeName() string { return "listcomp" }

// VariableForAssignment binds the name in the enclosing scope first:
// list comprehension targets leak into the scope the comprehension
// appears in, and the comprehension reaches the binding through a
// closure reference.
func (n *ListComp) VariableForAssignment(name string) (*Variable, error) {
	if !n.HasProvidedVariable(name) {
		if _, err := n.Provider().VariableForAssignment(name); err != nil {
			return nil, err
		}
	}
	return n.ProvidedVariable(name), nil
}

// A SetComp is a set comprehension. Its loop targets are scope-local.
type SetComp struct {
	contraction
}

func NewSetComp(provider Scope, pos Position) *SetComp {
	n := &SetComp{}
	n.node = node{kind: KindSetComp, pos: pos}
	n.initContraction(n, provider, "setcomp", true, func(name string) *Variable {
		return newLocalVariable(n, name)
	})
	return n
}

func (n *SetComp) ScopeName() string { return "setcomp" }

// A DictComp is a dict comprehension; its body is a DictPair.
type DictComp struct {
	contraction
}

func NewDictComp(provider Scope, pos Position) *DictComp {
	n := &DictComp{}
	n.node = node{kind: KindDictComp, pos: pos}
	n.initContraction(n, provider, "dictcomp", true, func(name string) *Variable {
		return newLocalVariable(n, name)
	})
	return n
}

func (n *DictComp) ScopeName() string { return "dictcomp" }

// A DictPair is the key/value body of a dict comprehension.
type DictPair struct {
	slots
}

func NewDictPair(key, value Expr, pos Position) *DictPair {
	n := &DictPair{}
	n.node = node{kind: KindDictPair, pos: pos}
	n.initSlots(n,
		one("key", key),
		one("value", value),
	)
	return n
}

func (n *DictPair) Key() Node   { return n.Child("key") }
func (n *DictPair) Value() Node { return n.Child("value") }

// A CallExpr is a function call with positional, named, *list and
// **dict arguments. The names of the named arguments parallel the
// named-argument slot.
type CallExpr struct {
	slots
	namedArgNames []string
}

// NamedArg is one keyword argument of a call.
type NamedArg struct {
	Name  string
	Value Expr
}

func NewCallExpr(called Expr, positional []Expr, named []NamedArg, listStarArg, dictStarArg Expr, pos Position) *CallExpr {
	n := &CallExpr{}
	n.node = node{kind: KindCallExpr, pos: pos}
	names := make([]string, len(named))
	values := make([]Node, len(named))
	for i, arg := range named {
		names[i] = arg.Name
		values[i] = arg.Value
	}
	n.namedArgNames = names
	n.initSlots(n,
		one("called", called),
		many("positional_args", exprNodes(positional)),
		many("named_args", values),
		one("list_star_arg", listStarArg),
		one("dict_star_arg", dictStarArg),
	)
	return n
}

func (n *CallExpr) Called() Node           { return n.Child("called") }
func (n *CallExpr) PositionalArgs() []Node { return n.Children("positional_args") }
func (n *CallExpr) ListStarArg() Node      { return n.Child("list_star_arg") }
func (n *CallExpr) DictStarArg() Node      { return n.Child("dict_star_arg") }

func (n *CallExpr) NamedArgs() []NamedArg {
	values := n.Children("named_args")
	result := make([]NamedArg, len(values))
	for i, v := range values {
		result[i] = NamedArg{Name: n.namedArgNames[i], Value: v.(Expr)}
	}
	return result
}

// IsEmptyCall reports whether the call passes no arguments at all.
func (n *CallExpr) IsEmptyCall() bool {
	return len(n.PositionalArgs()) == 0 && len(n.namedArgNames) == 0 &&
		n.ListStarArg() == nil && n.DictStarArg() == nil
}

// HasOnlyPositionalArgs reports whether the call can be compiled as a
// plain argument-tuple call.
func (n *CallExpr) HasOnlyPositionalArgs() bool {
	return len(n.namedArgNames) == 0 && n.ListStarArg() == nil && n.DictStarArg() == nil
}

// A BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	slots
	operator string
}

func NewBinaryExpr(operator string, left, right Expr, pos Position) *BinaryExpr {
	n := &BinaryExpr{operator: operator}
	n.node = node{kind: KindBinaryExpr, pos: pos}
	n.initSlots(n, many("operands", []Node{left, right}))
	return n
}

func (n *BinaryExpr) Operator() string { return n.operator }
func (n *BinaryExpr) Operands() []Node { return n.Children("operands") }

// A UnaryExpr applies a unary operator to one operand.
type UnaryExpr struct {
	slots
	operator string
}

func NewUnaryExpr(operator string, operand Expr, pos Position) *UnaryExpr {
	n := &UnaryExpr{operator: operator}
	n.node = node{kind: KindUnaryExpr, pos: pos}
	n.initSlots(n, many("operands", []Node{operand}))
	return n
}

func (n *UnaryExpr) Operator() string { return n.operator }
func (n *UnaryExpr) Operands() []Node { return n.Children("operands") }

// A CompareExpr is a chained comparison: N+1 operands joined by N
// comparator strings, as in a < b <= c.
type CompareExpr struct {
	slots
	comparators []string
}

func NewCompareExpr(comparators []string, operands []Expr, pos Position) *CompareExpr {
	if len(operands) != len(comparators)+1 {
		log.Panicf("syntax: comparison with %d comparators and %d operands",
			len(comparators), len(operands))
	}
	n := &CompareExpr{comparators: append([]string(nil), comparators...)}
	n.node = node{kind: KindCompareExpr, pos: pos}
	n.initSlots(n, many("operands", exprNodes(operands)))
	return n
}

func (n *CompareExpr) Comparators() []string { return n.comparators }
func (n *CompareExpr) Operands() []Node      { return n.Children("operands") }

// A CondExpr is the ternary expression: yes if condition else no.
type CondExpr struct {
	slots
}

func NewCondExpr(condition, yes, no Expr, pos Position) *CondExpr {
	n := &CondExpr{}
	n.node = node{kind: KindCondExpr, pos: pos}
	n.initSlots(n,
		one("condition", condition),
		one("expression_yes", yes),
		one("expression_no", no),
	)
	return n
}

func (n *CondExpr) Condition() Node     { return n.Child("condition") }
func (n *CondExpr) ExpressionYes() Node { return n.Child("expression_yes") }
func (n *CondExpr) ExpressionNo() Node  { return n.Child("expression_no") }

// An OrExpr short-circuits over two or more operands.
type OrExpr struct {
	slots
}

func NewOrExpr(expressions []Expr, pos Position) *OrExpr {
	if len(expressions) < 2 {
		log.Panicf("syntax: or expression with %d operands", len(expressions))
	}
	n := &OrExpr{}
	n.node = node{kind: KindOrExpr, pos: pos}
	n.initSlots(n, many("expressions", exprNodes(expressions)))
	return n
}

func (n *OrExpr) Expressions() []Node { return n.Children("expressions") }

// An AndExpr short-circuits over two or more operands.
type AndExpr struct {
	slots
}

func NewAndExpr(expressions []Expr, pos Position) *AndExpr {
	if len(expressions) < 2 {
		log.Panicf("syntax: and expression with %d operands", len(expressions))
	}
	n := &AndExpr{}
	n.node = node{kind: KindAndExpr, pos: pos}
	n.initSlots(n, many("expressions", exprNodes(expressions)))
	return n
}

func (n *AndExpr) Expressions() []Node { return n.Children("expressions") }

// A NotExpr is boolean negation.
type NotExpr struct {
	slots
}

func NewNotExpr(expression Expr, pos Position) *NotExpr {
	n := &NotExpr{}
	n.node = node{kind: KindNotExpr, pos: pos}
	n.initSlots(n, one("expression", expression))
	return n
}

func (n *NotExpr) Expression() Node { return n.Child("expression") }

// A SeqKind distinguishes the sequence display variants.
type SeqKind uint8

const (
	TupleSeq SeqKind = iota
	ListSeq
)

func (k SeqKind) String() string {
	if k == TupleSeq {
		return "tuple"
	}
	return "list"
}

// A SequenceExpr is a tuple or list display of non-constant elements.
type SequenceExpr struct {
	slots
	seqKind SeqKind
}

func NewSequenceExpr(seqKind SeqKind, elements []Expr, pos Position) *SequenceExpr {
	n := &SequenceExpr{seqKind: seqKind}
	n.node = node{kind: KindSequenceExpr, pos: pos}
	n.initSlots(n, many("elements", exprNodes(elements)))
	return n
}

func (n *SequenceExpr) SeqKind() SeqKind { return n.seqKind }
func (n *SequenceExpr) Elements() []Node { return n.Children("elements") }

// A DictExpr is a dict display; keys and values are parallel sequences.
type DictExpr struct {
	slots
}

func NewDictExpr(keys, values []Expr, pos Position) *DictExpr {
	if len(keys) != len(values) {
		log.Panicf("syntax: dict display with %d keys and %d values", len(keys), len(values))
	}
	n := &DictExpr{}
	n.node = node{kind: KindDictExpr, pos: pos}
	n.initSlots(n,
		many("keys", exprNodes(keys)),
		many("values", exprNodes(values)),
	)
	return n
}

func (n *DictExpr) Keys() []Node   { return n.Children("keys") }
func (n *DictExpr) Values() []Node { return n.Children("values") }

// A SetExpr is a set display.
type SetExpr struct {
	slots
}

func NewSetExpr(values []Expr, pos Position) *SetExpr {
	n := &SetExpr{}
	n.node = node{kind: KindSetExpr, pos: pos}
	n.initSlots(n, many("values", exprNodes(values)))
	return n
}

func (n *SetExpr) Values() []Node { return n.Children("values") }

// An AttrExpr is an attribute lookup: expression.attr.
type AttrExpr struct {
	slots
	attr string
}

func NewAttrExpr(expression Expr, attr string, pos Position) *AttrExpr {
	n := &AttrExpr{attr: attr}
	n.node = node{kind: KindAttrExpr, pos: pos}
	n.initSlots(n, one("expression", expression))
	return n
}

func (n *AttrExpr) Expression() Node { return n.Child("expression") }
func (n *AttrExpr) AttrName() string { return n.attr }

// An IndexExpr is a subscript lookup: expression[subscript].
type IndexExpr struct {
	slots
}

func NewIndexExpr(expression, subscript Expr, pos Position) *IndexExpr {
	n := &IndexExpr{}
	n.node = node{kind: KindIndexExpr, pos: pos}
	n.initSlots(n,
		one("expression", expression),
		one("subscript", subscript),
	)
	return n
}

func (n *IndexExpr) Expression() Node { return n.Child("expression") }
func (n *IndexExpr) Subscript() Node  { return n.Child("subscript") }

// A SliceExpr is a simple two-bound slice: expression[lower:upper].
// Either bound may be nil.
type SliceExpr struct {
	slots
}

func NewSliceExpr(expression, lower, upper Expr, pos Position) *SliceExpr {
	n := &SliceExpr{}
	n.node = node{kind: KindSliceExpr, pos: pos}
	n.initSlots(n,
		one("expression", expression),
		one("lower", lower),
		one("upper", upper),
	)
	return n
}

func (n *SliceExpr) Expression() Node { return n.Child("expression") }
func (n *SliceExpr) Lower() Node      { return n.Child("lower") }
func (n *SliceExpr) Upper() Node      { return n.Child("upper") }

// A SliceObjExpr is an explicit slice object with an optional step,
// used where a simple slice cannot express the subscript.
type SliceObjExpr struct {
	slots
}

func NewSliceObjExpr(lower, upper, step Expr, pos Position) *SliceObjExpr {
	n := &SliceObjExpr{}
	n.node = node{kind: KindSliceObjExpr, pos: pos}
	n.initSlots(n,
		one("lower", lower),
		one("upper", upper),
		one("step", step),
	)
	return n
}

func (n *SliceObjExpr) Lower() Node { return n.Child("lower") }
func (n *SliceObjExpr) Upper() Node { return n.Child("upper") }
func (n *SliceObjExpr) Step() Node  { return n.Child("step") }
