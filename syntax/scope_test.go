// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "testing"

func TestProvidedVariableMemoized(t *testing.T) {
	m := NewModule("m", "", noPos)
	a := m.ProvidedVariable("a")
	if got := m.ProvidedVariable("a"); got != a {
		t.Errorf("second ProvidedVariable(a) = %p, want identical %p", got, a)
	}
	if !a.IsModuleVariable() {
		t.Errorf("module-provided variable is %v, want module kind", a.VarKind())
	}
	if got := m.VariableForReference("a"); got != a {
		t.Errorf("VariableForReference(a) = %v, want the provided variable", got)
	}
}

func TestFunctionClosure(t *testing.T) {
	m := NewModule("m", "", noPos)
	f := NewDefStmt(m, "f", "", Params{Names: []string{"x"}}, nil, nil, noPos)
	g := NewDefStmt(f, "g", "", Params{}, nil, nil, noPos)

	v := g.VariableForReference("x")
	if !v.IsClosureReference() {
		t.Fatalf("reference to outer local = %v, want closure reference", v)
	}
	ref := v.Referenced()
	if !ref.IsParameterVariable() || ref.Owner() != Scope(f) {
		t.Errorf("closure target = %v owned by %v, want parameter of f", ref, ref.Owner())
	}
	if got := g.VariableForReference("x"); got != v {
		t.Errorf("second reference = %p, want identical %p", got, v)
	}

	closure := g.ClosureVariables()
	if len(closure) != 1 || closure[0] != v {
		t.Errorf("ClosureVariables() = %v, want [%v]", closure, v)
	}
	if taken, ok := g.TakenVariable("x"); !ok || taken != v {
		t.Errorf("TakenVariable(x) = %v, %v, want the closure reference", taken, ok)
	}
}

func TestModuleGlobalNotClosedOver(t *testing.T) {
	m := NewModule("m", "", noPos)
	f := NewDefStmt(m, "f", "", Params{}, nil, nil, noPos)

	v := f.VariableForReference("limit")
	if v.IsClosureReference() || !v.IsModuleVariable() {
		t.Errorf("reference through to module = %v, want the bare module variable", v)
	}
	if got := f.ClosureVariables(); len(got) != 0 {
		t.Errorf("ClosureVariables() = %v, want none for a module global", got)
	}
}

func TestClosureVariablesSorted(t *testing.T) {
	m := NewModule("m", "", noPos)
	f := NewDefStmt(m, "f", "", Params{Names: []string{"zeta", "alpha", "mid"}}, nil, nil, noPos)
	g := NewDefStmt(f, "g", "", Params{}, nil, nil, noPos)

	g.VariableForReference("zeta")
	g.VariableForReference("alpha")
	g.VariableForReference("mid")

	got := g.ClosureVariables()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("ClosureVariables() has %d entries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name() != name {
			t.Errorf("ClosureVariables()[%d] = %q, want %q", i, got[i].Name(), name)
		}
	}
}

func TestAssignmentConflict(t *testing.T) {
	m := NewModule("m", "", noPos)
	outer := NewDefStmt(m, "outer", "", Params{Names: []string{"x"}}, nil, nil, noPos)
	inner := NewDefStmt(outer, "inner", "", Params{}, nil, nil, noPos)

	inner.VariableForReference("x") // capture first

	_, err := inner.VariableForAssignment("x")
	conflict, ok := err.(*BindingConflictError)
	if !ok {
		t.Fatalf("VariableForAssignment(x) error = %v, want *BindingConflictError", err)
	}
	if conflict.Name != "x" || conflict.Scope != Scope(inner) {
		t.Errorf("conflict = %+v, want name x in inner", conflict)
	}
}

func TestAssignmentReusesTakenGlobal(t *testing.T) {
	m := NewModule("m", "", noPos)
	f := NewDefStmt(m, "f", "", Params{}, nil, nil, noPos)

	ref := f.VariableForReference("count") // pulls the module variable
	v, err := f.VariableForAssignment("count")
	if err != nil {
		t.Fatalf("VariableForAssignment(count) failed: %v", err)
	}
	if v != ref || !v.IsModuleVariable() {
		t.Errorf("assignment after global take = %v, want the taken module variable", v)
	}
}

func TestDeferredLocalBinding(t *testing.T) {
	// The name is assigned after being referenced in source order; the
	// scope is a late binder, so provided-table lookups never fall back
	// early. Assignment first, then reference, both see the same local.
	m := NewModule("m", "", noPos)
	f := NewDefStmt(m, "f", "", Params{}, nil, nil, noPos)

	assigned, err := f.VariableForAssignment("tmp")
	if err != nil {
		t.Fatalf("VariableForAssignment(tmp) failed: %v", err)
	}
	if !assigned.IsLocalVariable() || assigned.IsParameterVariable() {
		t.Errorf("assigned variable = %v, want plain local", assigned)
	}
	if got := f.VariableForReference("tmp"); got != assigned {
		t.Errorf("reference = %v, want the assigned local", got)
	}

	locals := f.UserLocalVariables()
	if len(locals) != 1 || locals[0] != assigned {
		t.Errorf("UserLocalVariables() = %v, want [%v]", locals, assigned)
	}
}

func TestClassScopeSkippedByClosures(t *testing.T) {
	m := NewModule("m", "", noPos)
	cls := NewClassStmt(m, "C", "", nil, nil, noPos)

	attr, err := cls.VariableForAssignment("attr")
	if err != nil {
		t.Fatalf("class assignment failed: %v", err)
	}
	if !attr.IsClassVariable() {
		t.Errorf("class assignment = %v, want class variable", attr)
	}
	if got := cls.VariableForReference("attr"); got != attr {
		t.Errorf("class reference = %v, want the class variable", got)
	}

	// A method does not see the class attribute; the name resolves
	// through to the module.
	method := NewDefStmt(cls, "method", "", Params{}, nil, nil, noPos)
	v := method.VariableForReference("attr")
	if !v.IsModuleVariable() {
		t.Errorf("method reference to class attribute = %v, want module variable", v)
	}
}

func TestClassReassignmentShadows(t *testing.T) {
	m := NewModule("m", "", noPos)
	cls := NewClassStmt(m, "C", "", nil, nil, noPos)

	first, _ := cls.VariableForAssignment("attr")
	second, _ := cls.VariableForAssignment("attr")
	if first == second {
		t.Fatalf("re-assignment returned the first binding")
	}
	if got := cls.VariableForReference("attr"); got != second {
		t.Errorf("reference = %v, want the latest binding %v", got, second)
	}
	if got := cls.ClassVariables(); len(got) != 1 {
		t.Errorf("ClassVariables() = %v, want single entry per name", got)
	}
}

func TestListCompTargetLeaks(t *testing.T) {
	m := NewModule("m", "", noPos)
	f := NewDefStmt(m, "f", "", Params{}, nil, nil, noPos)
	comp := NewListComp(f, noPos)

	v, err := comp.VariableForAssignment("i")
	if err != nil {
		t.Fatalf("comprehension target binding failed: %v", err)
	}
	if !v.IsClosureReference() {
		t.Fatalf("comprehension target = %v, want closure reference", v)
	}
	if ref := v.Referenced(); !ref.IsLocalVariable() || ref.Owner() != Scope(f) {
		t.Errorf("leaked binding = %v owned by %v, want local of f", ref, ref.Owner())
	}
	// The enclosing function sees the leaked name afterwards.
	if got := f.VariableForReference("i"); got != v.Referenced() {
		t.Errorf("enclosing reference = %v, want the leaked local", got)
	}
}

func TestSetCompTargetLocal(t *testing.T) {
	m := NewModule("m", "", noPos)
	f := NewDefStmt(m, "f", "", Params{}, nil, nil, noPos)
	comp := NewSetComp(f, noPos)

	v, err := comp.VariableForAssignment("i")
	if err != nil {
		t.Fatalf("comprehension target binding failed: %v", err)
	}
	if !v.IsLocalVariable() || v.Owner() != Scope(comp) {
		t.Errorf("set comprehension target = %v, want local of the comprehension", v)
	}
	if f.HasProvidedVariable("i") {
		t.Errorf("set comprehension target leaked into the enclosing scope")
	}
}
