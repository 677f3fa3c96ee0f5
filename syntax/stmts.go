// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"log"
	"strings"
)

func (*StmtSequence) stmt()      {}
func (*AssignStmt) stmt()        {}
func (*InplaceAssignStmt) stmt() {}
func (*ExprStmt) stmt()          {}
func (*PrintStmt) stmt()         {}
func (*ReturnStmt) stmt()        {}
func (*AssertStmt) stmt()        {}
func (*WithStmt) stmt()          {}
func (*ForStmt) stmt()           {}
func (*WhileStmt) stmt()         {}
func (*IfStmt) stmt()            {}
func (*TryFinallyStmt) stmt()    {}
func (*TryExceptStmt) stmt()     {}
func (*RaiseStmt) stmt()         {}
func (*ContinueStmt) stmt()      {}
func (*BreakStmt) stmt()         {}
func (*PassStmt) stmt()          {}
func (*ImportStmt) stmt()        {}
func (*ImportFromStmt) stmt()    {}
func (*ExecStmt) stmt()          {}
func (*GlobalStmt) stmt()        {}
func (*DefStmt) stmt()           {}
func (*ClassStmt) stmt()         {}

// A StmtSequence is an ordered block of statements, used as the body of
// modules, loops, and definitions. Sequences may nest.
type StmtSequence struct {
	slots
}

func NewStmtSequence(stmts []Stmt, pos Position) *StmtSequence {
	n := &StmtSequence{}
	n.node = node{kind: KindStmtSequence, pos: pos}
	n.initSlots(n, many("statements", stmtNodes(stmts)))
	return n
}

func (n *StmtSequence) Statements() []Node { return n.Children("statements") }

// An AssignStmt assigns one expression to one or more targets:
// a = b = expr.
type AssignStmt struct {
	slots
}

func NewAssignStmt(targets []Target, source Expr, pos Position) *AssignStmt {
	n := &AssignStmt{}
	n.node = node{kind: KindAssignStmt, pos: pos}
	n.initSlots(n,
		one("source", source),
		many("targets", targetNodes(targets)),
	)
	return n
}

func (n *AssignStmt) Source() Node    { return n.Child("source") }
func (n *AssignStmt) Targets() []Node { return n.Children("targets") }

// An InplaceAssignStmt is an augmented assignment: target op= expression.
type InplaceAssignStmt struct {
	slots
	operator string
}

func NewInplaceAssignStmt(target Target, operator string, expression Expr, pos Position) *InplaceAssignStmt {
	n := &InplaceAssignStmt{operator: operator}
	n.node = node{kind: KindInplaceAssignStmt, pos: pos}
	n.initSlots(n,
		one("expression", expression),
		one("target", target),
	)
	return n
}

func (n *InplaceAssignStmt) Operator() string { return n.operator }
func (n *InplaceAssignStmt) Target() Node     { return n.Child("target") }
func (n *InplaceAssignStmt) Expression() Node { return n.Child("expression") }

// An ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	slots
}

func NewExprStmt(expression Expr, pos Position) *ExprStmt {
	n := &ExprStmt{}
	n.node = node{kind: KindExprStmt, pos: pos}
	n.initSlots(n, one("expression", expression))
	return n
}

func (n *ExprStmt) Expression() Node { return n.Child("expression") }

// A PrintStmt prints values, optionally redirected: print >>dest, values.
type PrintStmt struct {
	slots
	newline bool
}

func NewPrintStmt(dest Expr, values []Expr, newline bool, pos Position) *PrintStmt {
	n := &PrintStmt{newline: newline}
	n.node = node{kind: KindPrintStmt, pos: pos}
	n.initSlots(n,
		many("values", exprNodes(values)),
		one("dest", dest),
	)
	return n
}

func (n *PrintStmt) IsNewlinePrint() bool { return n.newline }
func (n *PrintStmt) Destination() Node    { return n.Child("dest") }
func (n *PrintStmt) Values() []Node       { return n.Children("values") }

// A ReturnStmt returns from a function; its expression may be nil.
type ReturnStmt struct {
	slots
}

func NewReturnStmt(expression Expr, pos Position) *ReturnStmt {
	n := &ReturnStmt{}
	n.node = node{kind: KindReturnStmt, pos: pos}
	n.initSlots(n, one("expression", expression))
	return n
}

func (n *ReturnStmt) Expression() Node { return n.Child("expression") }

// An AssertStmt checks a condition; failure may carry an argument.
type AssertStmt struct {
	slots
}

func NewAssertStmt(expression, failure Expr, pos Position) *AssertStmt {
	n := &AssertStmt{}
	n.node = node{kind: KindAssertStmt, pos: pos}
	n.initSlots(n,
		one("expression", expression),
		one("failure", failure),
	)
	return n
}

func (n *AssertStmt) Expression() Node { return n.Child("expression") }
func (n *AssertStmt) Argument() Node   { return n.Child("failure") }

// A WithStmt is a context-manager block; its target may be nil.
type WithStmt struct {
	slots
}

func NewWithStmt(expression Expr, target Target, body *StmtSequence, pos Position) *WithStmt {
	n := &WithStmt{}
	n.node = node{kind: KindWithStmt, pos: pos}
	n.initSlots(n,
		one("expression", expression),
		one("target", target),
		one("frame", seqOrNil(body)),
	)
	return n
}

func (n *WithStmt) Expression() Node { return n.Child("expression") }
func (n *WithStmt) Target() Node     { return n.Child("target") }
func (n *WithStmt) Body() Node       { return n.Child("frame") }

// breakContinue marks loops and branch statements that must realize
// break/continue as an exception because a try/finally intervenes.
type breakContinue struct {
	exception bool
}

func (b *breakContinue) MarkAsExceptionBreakContinue()     { b.exception = true }
func (b *breakContinue) NeedsExceptionBreakContinue() bool { return b.exception }

// A ForStmt iterates an expression: for target in iterated: frame else: else.
type ForStmt struct {
	slots
	breakContinue
}

func NewForStmt(iterated Expr, target Target, body, noBreak *StmtSequence, pos Position) *ForStmt {
	n := &ForStmt{}
	n.node = node{kind: KindForStmt, pos: pos}
	n.initSlots(n,
		one("iterated", iterated),
		one("target", target),
		one("else", seqOrNil(noBreak)),
		one("frame", seqOrNil(body)),
	)
	return n
}

func (n *ForStmt) Iterated() Node { return n.Child("iterated") }
func (n *ForStmt) Target() Node   { return n.Child("target") }
func (n *ForStmt) Body() Node     { return n.Child("frame") }
func (n *ForStmt) NoBreak() Node  { return n.Child("else") }

// A WhileStmt loops on a condition.
type WhileStmt struct {
	slots
	breakContinue
}

func NewWhileStmt(condition Expr, body, noEnter *StmtSequence, pos Position) *WhileStmt {
	n := &WhileStmt{}
	n.node = node{kind: KindWhileStmt, pos: pos}
	n.initSlots(n,
		one("condition", condition),
		one("else", seqOrNil(noEnter)),
		one("frame", seqOrNil(body)),
	)
	return n
}

func (n *WhileStmt) Condition() Node { return n.Child("condition") }
func (n *WhileStmt) Body() Node      { return n.Child("frame") }
func (n *WhileStmt) NoEnter() Node   { return n.Child("else") }

// An IfStmt holds parallel condition/branch pairs; a trailing branch
// without a condition is the else block.
type IfStmt struct {
	slots
}

func NewIfStmt(conditions []Expr, branches []*StmtSequence, pos Position) *IfStmt {
	if len(branches) != len(conditions) && len(branches) != len(conditions)+1 {
		log.Panicf("syntax: if statement with %d conditions and %d branches",
			len(conditions), len(branches))
	}
	n := &IfStmt{}
	n.node = node{kind: KindIfStmt, pos: pos}
	bs := make([]Node, len(branches))
	for i, b := range branches {
		bs[i] = b
	}
	n.initSlots(n,
		many("conditions", exprNodes(conditions)),
		many("branches", bs),
	)
	return n
}

func (n *IfStmt) Conditions() []Node { return n.Children("conditions") }
func (n *IfStmt) Branches() []Node   { return n.Children("branches") }

// A TryFinallyStmt runs the final block on every exit from the tried block.
type TryFinallyStmt struct {
	slots
}

func NewTryFinallyStmt(tried, final *StmtSequence, pos Position) *TryFinallyStmt {
	n := &TryFinallyStmt{}
	n.node = node{kind: KindTryFinallyStmt, pos: pos}
	n.initSlots(n,
		one("tried", seqOrNil(tried)),
		one("final", seqOrNil(final)),
	)
	return n
}

func (n *TryFinallyStmt) Tried() Node { return n.Child("tried") }
func (n *TryFinallyStmt) Final() Node { return n.Child("final") }

// An ExceptHandler is one catch clause of a TryExceptStmt: an optional
// exception-type filter, an optional bound-name target, and a body.
type ExceptHandler struct {
	Catcher Expr   // may be nil: catch-all
	Target  Target // may be nil: exception not bound
	Body    *StmtSequence
}

// A TryExceptStmt holds one shared try block, N parallel catch clauses,
// and an optional else block run only if no exception occurred.
//
// The handlers are parallel lists rather than slots, so the statement
// implements child traversal and replacement itself.
type TryExceptStmt struct {
	node
	tried    Node
	noRaise  Node // may be nil
	handlers []ExceptHandler
}

func NewTryExceptStmt(tried *StmtSequence, handlers []ExceptHandler, noRaise *StmtSequence, pos Position) *TryExceptStmt {
	n := &TryExceptStmt{tried: tried, handlers: append([]ExceptHandler(nil), handlers...)}
	n.node = node{kind: KindTryExceptStmt, pos: pos}
	tried.setParent(n)
	if noRaise != nil {
		n.noRaise = noRaise
		noRaise.setParent(n)
	}
	for _, h := range handlers {
		if h.Catcher != nil {
			h.Catcher.setParent(n)
		}
		if h.Target != nil {
			h.Target.setParent(n)
		}
		if h.Body == nil {
			log.Panicf("syntax: except handler without a body")
		}
		h.Body.setParent(n)
	}
	return n
}

func (n *TryExceptStmt) Tried() Node               { return n.tried }
func (n *TryExceptStmt) NoRaise() Node             { return n.noRaise }
func (n *TryExceptStmt) Handlers() []ExceptHandler { return n.handlers }

func (n *TryExceptStmt) VisitableChildren() []Node {
	result := []Node{n.tried}
	for _, h := range n.handlers {
		if h.Catcher != nil {
			result = append(result, h.Catcher)
		}
		if h.Target != nil {
			result = append(result, h.Target)
		}
		result = append(result, h.Body)
	}
	if n.noRaise != nil {
		result = append(result, n.noRaise)
	}
	return result
}

func (n *TryExceptStmt) SameScopeChildren() []Node { return n.VisitableChildren() }

func (n *TryExceptStmt) ReplaceChild(old, new Node) {
	switch {
	case old == n.tried:
		n.tried = new
	case old == n.noRaise:
		n.noRaise = new
	default:
		for i := range n.handlers {
			h := &n.handlers[i]
			if Node(h.Catcher) == old && h.Catcher != nil {
				h.Catcher = new.(Expr)
			} else if Node(h.Target) == old && h.Target != nil {
				h.Target = new.(Target)
			} else if Node(h.Body) == old {
				h.Body = new.(*StmtSequence)
			} else {
				continue
			}
			new.setParent(old.Parent())
			return
		}
		log.Panicf("syntax: replaceChild: %s is not a child of %s", old.Kind(), n.kind)
	}
	new.setParent(old.Parent())
}

// A RaiseStmt raises an exception; type, value and traceback are all
// optional, but a later operand requires the earlier ones.
type RaiseStmt struct {
	slots
}

func NewRaiseStmt(excType, value, trace Expr, pos Position) *RaiseStmt {
	n := &RaiseStmt{}
	n.node = node{kind: KindRaiseStmt, pos: pos}
	n.initSlots(n,
		one("type", excType),
		one("value", value),
		one("trace", trace),
	)
	return n
}

func (n *RaiseStmt) ExceptionType() Node  { return n.Child("type") }
func (n *RaiseStmt) ExceptionValue() Node { return n.Child("value") }
func (n *RaiseStmt) ExceptionTrace() Node { return n.Child("trace") }

// A ContinueStmt continues the enclosing loop.
type ContinueStmt struct {
	leaf
	breakContinue
}

func NewContinueStmt(pos Position) *ContinueStmt {
	n := &ContinueStmt{}
	n.node = node{kind: KindContinueStmt, pos: pos}
	return n
}

// A BreakStmt breaks the enclosing loop.
type BreakStmt struct {
	leaf
	breakContinue
}

func NewBreakStmt(pos Position) *BreakStmt {
	n := &BreakStmt{}
	n.node = node{kind: KindBreakStmt, pos: pos}
	return n
}

// A PassStmt does nothing.
type PassStmt struct {
	leaf
}

func NewPassStmt(pos Position) *PassStmt {
	n := &PassStmt{}
	n.node = node{kind: KindPassStmt, pos: pos}
	return n
}

// An ImportSpec names one module imported by an ImportStmt:
// "import name" or "import name as target".
type ImportSpec struct {
	ModuleName string
	Target     string // local name bound, defaults to ModuleName
	Package    string // dotted package the module was found in
	Filename   string // resolved source file, empty if not found
}

// LocalName returns the name the import binds: the explicit target,
// or the first component of a dotted module name.
func (s ImportSpec) LocalName() string {
	if s.Target != "" {
		return s.Target
	}
	name := s.ModuleName
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}

// An ImportStmt imports one or more whole modules.
type ImportStmt struct {
	leaf
	specs []ImportSpec
}

func NewImportStmt(specs []ImportSpec, pos Position) *ImportStmt {
	n := &ImportStmt{specs: append([]ImportSpec(nil), specs...)}
	n.node = node{kind: KindImportStmt, pos: pos}
	return n
}

func (n *ImportStmt) Imports() []ImportSpec { return n.specs }

// ModuleFilenames returns the resolved filenames of the imported
// modules, omitting modules that were not found.
func (n *ImportStmt) ModuleFilenames() []string {
	var result []string
	for _, spec := range n.specs {
		if spec.Filename != "" {
			result = append(result, spec.Filename)
		}
	}
	return result
}

// An ImportFromStmt imports names from a module into the given scope:
// from module import a, b.
type ImportFromStmt struct {
	leaf
	target     Scope
	moduleName string
	pkg        string
	filename   string
	imports    []string
}

func NewImportFromStmt(target Scope, moduleName, pkg, filename string, imports []string, pos Position) *ImportFromStmt {
	n := &ImportFromStmt{
		target:     target,
		moduleName: moduleName,
		pkg:        pkg,
		filename:   filename,
		imports:    append([]string(nil), imports...),
	}
	n.node = node{kind: KindImportFromStmt, pos: pos}
	return n
}

func (n *ImportFromStmt) Target() Scope      { return n.target }
func (n *ImportFromStmt) ModuleName() string { return n.moduleName }
func (n *ImportFromStmt) Package() string    { return n.pkg }
func (n *ImportFromStmt) Imports() []string  { return n.imports }

// An ExecStmt executes dynamically compiled code:
// exec source in globals, locals.
type ExecStmt struct {
	slots
}

func NewExecStmt(source, globals, locals Expr, pos Position) *ExecStmt {
	n := &ExecStmt{}
	n.node = node{kind: KindExecStmt, pos: pos}
	n.initSlots(n,
		one("globals", globals),
		one("locals", locals),
		one("source", source),
	)
	return n
}

func (n *ExecStmt) Source() Node { return n.Child("source") }

// Locals returns the locals operand, collapsing a None constant to nil.
func (n *ExecStmt) Locals() Node {
	return noneToNil(n.Child("locals"))
}

// Globals returns the globals operand. If locals was absent, a None
// constant collapses to nil here as well.
func (n *ExecStmt) Globals() Node {
	if n.Locals() == nil {
		return noneToNil(n.Child("globals"))
	}
	return n.Child("globals")
}

func noneToNil(n Node) Node {
	if c, ok := n.(*ConstantExpr); ok && c.IsNone() {
		return nil
	}
	return n
}

// A GlobalStmt declares names to be module globals within its scope.
type GlobalStmt struct {
	leaf
	names []string
}

func NewGlobalStmt(names []string, pos Position) *GlobalStmt {
	n := &GlobalStmt{names: append([]string(nil), names...)}
	n.node = node{kind: KindGlobalStmt, pos: pos}
	return n
}

func (n *GlobalStmt) Names() []string { return n.names }

func seqOrNil(s *StmtSequence) Node {
	if s == nil {
		return nil
	}
	return s
}
