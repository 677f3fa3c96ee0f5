// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "testing"

var noPos = MakePosition("test.py", 1, 1)

func TestChildSlots(t *testing.T) {
	source := NewConstantExpr(int64(1), noPos)
	target := NewVarTarget("x", noPos)
	assign := NewAssignStmt([]Target{target}, source, noPos)

	if got := assign.Source(); got != Node(source) {
		t.Errorf("Source() = %v, want %v", got, source)
	}
	if got := assign.Targets(); len(got) != 1 || got[0] != Node(target) {
		t.Errorf("Targets() = %v, want [%v]", got, target)
	}
	if got := source.Parent(); got != Node(assign) {
		t.Errorf("source.Parent() = %v, want %v", got, assign)
	}
	if got := target.Parent(); got != Node(assign) {
		t.Errorf("target.Parent() = %v, want %v", got, assign)
	}
}

func TestOptionalChildStaysNil(t *testing.T) {
	ret := NewReturnStmt(nil, noPos)
	if got := ret.Expression(); got != nil {
		t.Errorf("Expression() = %v, want nil", got)
	}
	if got := ret.VisitableChildren(); len(got) != 0 {
		t.Errorf("VisitableChildren() = %v, want none", got)
	}
}

func TestVisitableChildrenOrder(t *testing.T) {
	cond := NewConstantExpr(true, noPos)
	body := NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)
	loop := NewWhileStmt(cond, body, nil, noPos)

	got := loop.VisitableChildren()
	want := []Node{cond, body}
	if len(got) != len(want) {
		t.Fatalf("VisitableChildren() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VisitableChildren()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReplaceChild(t *testing.T) {
	old := NewConstantExpr(int64(1), noPos)
	target := NewVarTarget("x", noPos)
	assign := NewAssignStmt([]Target{target}, old, noPos)

	new1 := NewConstantExpr(int64(2), noPos)
	Replace(old, new1)
	if got := assign.Source(); got != Node(new1) {
		t.Errorf("after Replace, Source() = %v, want %v", got, new1)
	}
	if got := new1.Parent(); got != Node(assign) {
		t.Errorf("replacement parent = %v, want %v", got, assign)
	}

	// Replacement inside a sequence slot keeps the position.
	a := NewVarTarget("a", noPos)
	b := NewVarTarget("b", noPos)
	multi := NewAssignStmt([]Target{a, b}, NewConstantExpr(None, noPos), noPos)
	c := NewVarTarget("c", noPos)
	multi.ReplaceChild(b, c)
	targets := multi.Targets()
	if targets[0] != Node(a) || targets[1] != Node(c) {
		t.Errorf("after ReplaceChild, Targets() = %v, want [%v %v]", targets, a, c)
	}
}

func TestReplaceChildPanicsOnStranger(t *testing.T) {
	assign := NewAssignStmt(
		[]Target{NewVarTarget("x", noPos)},
		NewConstantExpr(int64(1), noPos),
		noPos,
	)
	stranger := NewConstantExpr(int64(9), noPos)

	defer func() {
		if recover() == nil {
			t.Error("ReplaceChild of a non-child did not panic")
		}
	}()
	assign.ReplaceChild(stranger, NewConstantExpr(int64(0), noPos))
}

func TestSameScopeChildrenSkipsBody(t *testing.T) {
	m := NewModule("m", "", noPos)
	def := NewDefStmt(m, "f", "", Params{Names: []string{"a"}},
		[]Expr{NewConstantExpr(int64(1), noPos)},
		[]Expr{NewVarRef("deco", noPos)},
		noPos)
	def.SetBody(NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos))

	got := def.SameScopeChildren()
	if len(got) != 2 {
		t.Fatalf("SameScopeChildren() = %v, want defaults and decorators only", got)
	}
	if got[0].Kind() != KindConstantExpr || got[1].Kind() != KindVarRef {
		t.Errorf("SameScopeChildren() = %v, want [ConstantExpr VarRef]", got)
	}

	// A loop body is not a scope boundary and stays visible.
	loop := NewForStmt(
		NewVarRef("seq", noPos),
		NewVarTarget("x", noPos),
		NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos),
		nil,
		noPos,
	)
	found := false
	for _, c := range loop.SameScopeChildren() {
		if c == loop.Body() {
			found = true
		}
	}
	if !found {
		t.Errorf("SameScopeChildren() of a for loop omits the loop body")
	}
}

func TestVisitOrder(t *testing.T) {
	cond := NewConstantExpr(true, noPos)
	then := NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)
	ifStmt := NewIfStmt([]Expr{cond}, []*StmtSequence{then}, noPos)

	var kinds []Kind
	Visit(ifStmt, func(n Node) { kinds = append(kinds, n.Kind()) })

	want := []Kind{KindIfStmt, KindConstantExpr, KindStmtSequence, KindPassStmt}
	if len(kinds) != len(want) {
		t.Fatalf("Visit order %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Visit order %v, want %v", kinds, want)
			break
		}
	}
}

func TestTryExceptChildren(t *testing.T) {
	tried := NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)
	catcher := NewVarRef("ValueError", noPos)
	bound := NewVarTarget("e", noPos)
	handler := NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)
	noRaise := NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)

	try := NewTryExceptStmt(tried, []ExceptHandler{
		{Catcher: catcher, Target: bound, Body: handler},
	}, noRaise, noPos)

	got := try.VisitableChildren()
	want := []Node{tried, catcher, bound, handler, noRaise}
	if len(got) != len(want) {
		t.Fatalf("VisitableChildren() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VisitableChildren()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	replacement := NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)
	try.ReplaceChild(handler, replacement)
	if try.Handlers()[0].Body != replacement {
		t.Errorf("handler body not replaced")
	}
	if replacement.Parent() != Node(try) {
		t.Errorf("replacement parent = %v, want %v", replacement.Parent(), try)
	}
}

func TestTryExceptHandlersDetached(t *testing.T) {
	tried := NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)
	body := NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)
	handlers := []ExceptHandler{
		{Catcher: NewVarRef("ValueError", noPos), Body: body},
	}
	try := NewTryExceptStmt(tried, handlers, nil, noPos)

	// Mutating the caller's slice must not reach into the statement.
	handlers[0].Body = NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos)
	if got := try.Handlers()[0].Body; got != body {
		t.Errorf("handler body = %v, want the one given at construction", got)
	}
}

func TestListCompTargetsAttachOnce(t *testing.T) {
	m := NewModule("m", "", noPos)
	comp := NewListComp(m, noPos)
	comp.SetTargets([]Target{NewVarTarget("x", noPos)})

	defer func() {
		if recover() == nil {
			t.Error("second SetTargets did not panic")
		}
	}()
	comp.SetTargets([]Target{NewVarTarget("y", noPos)})
}

func TestExecNoneCollapse(t *testing.T) {
	source := NewConstantExpr("code", noPos)
	exec := NewExecStmt(source,
		NewConstantExpr(None, noPos),
		NewConstantExpr(None, noPos),
		noPos)

	if got := exec.Locals(); got != nil {
		t.Errorf("Locals() = %v, want nil for a None operand", got)
	}
	if got := exec.Globals(); got != nil {
		t.Errorf("Globals() = %v, want nil for a None operand", got)
	}

	globals := NewVarRef("g", noPos)
	locals := NewVarRef("l", noPos)
	exec2 := NewExecStmt(NewConstantExpr("code", noPos), globals, locals, noPos)
	if exec2.Globals() != Node(globals) || exec2.Locals() != Node(locals) {
		t.Errorf("explicit exec operands collapsed")
	}
}
