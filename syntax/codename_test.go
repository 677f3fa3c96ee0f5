// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "testing"

// buildNested returns a module with two sibling functions, the first
// containing one nested function and one lambda.
func buildNested(t *testing.T) (m *Module, f, g, h *DefStmt, lam *LambdaExpr) {
	t.Helper()

	m = NewModule("m", "", noPos)
	f = NewDefStmt(m, "f", "", Params{}, nil, nil, noPos)
	g = NewDefStmt(m, "g", "", Params{}, nil, nil, noPos)
	h = NewDefStmt(f, "h", "", Params{}, nil, nil, noPos)
	lam = NewLambdaExpr(f, Params{}, nil, noPos)
	lam.SetBody(NewConstantExpr(None, noPos))

	h.SetBody(NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos))
	f.SetBody(NewStmtSequence([]Stmt{
		h,
		NewExprStmt(lam, noPos),
	}, noPos))
	g.SetBody(NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos))
	m.SetBody(NewStmtSequence([]Stmt{f, g}, noPos))
	return m, f, g, h, lam
}

func TestCodeNames(t *testing.T) {
	m, f, g, h, lam := buildNested(t)

	for _, test := range []struct {
		scope Scope
		want  string
	}{
		{m, "module_m"},
		{f, "function_1_f_of_module_m"},
		{g, "function_2_g_of_module_m"},
		{h, "function_1_h_of_function_1_f_of_module_m"},
		{lam, "lambda_1_of_function_1_f_of_module_m"},
	} {
		if got := test.scope.CodeName(); got != test.want {
			t.Errorf("CodeName() = %q, want %q", got, test.want)
		}
	}
}

func TestCodeNameMemoized(t *testing.T) {
	_, f, _, _, _ := buildNested(t)

	first := f.CodeName()
	if second := f.CodeName(); second != first {
		t.Errorf("repeated CodeName() = %q, want %q", second, first)
	}
}

func TestCodeNameUIDsPerKind(t *testing.T) {
	// Functions and classes number independently under one anchor.
	m := NewModule("m", "", noPos)
	f := NewDefStmt(m, "f", "", Params{}, nil, nil, noPos)
	c := NewClassStmt(m, "C", "", nil, nil, noPos)
	f.SetBody(NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos))
	c.SetBody(NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos))
	m.SetBody(NewStmtSequence([]Stmt{f, c}, noPos))

	if got, want := f.CodeName(), "function_1_f_of_module_m"; got != want {
		t.Errorf("CodeName() = %q, want %q", got, want)
	}
	if got, want := c.CodeName(), "class_1_C_of_module_m"; got != want {
		t.Errorf("CodeName() = %q, want %q", got, want)
	}
}

func TestCodeNamesStableAcrossRebuilds(t *testing.T) {
	_, f1, g1, h1, _ := buildNested(t)
	_, f2, g2, h2, _ := buildNested(t)

	for _, pair := range [][2]Scope{{f1, f2}, {g1, g2}, {h1, h2}} {
		if a, b := pair[0].CodeName(), pair[1].CodeName(); a != b {
			t.Errorf("code name differs across identical builds: %q vs %q", a, b)
		}
	}
}

func TestFullName(t *testing.T) {
	m := NewModule("m", "", noPos)
	cls := NewClassStmt(m, "C", "", nil, nil, noPos)
	method := NewDefStmt(cls, "method", "", Params{}, nil, nil, noPos)
	method.SetBody(NewStmtSequence([]Stmt{NewPassStmt(noPos)}, noPos))
	cls.SetBody(NewStmtSequence([]Stmt{method}, noPos))
	m.SetBody(NewStmtSequence([]Stmt{cls}, noPos))

	if got, want := FullName(method), "m__C__method"; got != want {
		t.Errorf("FullName(method) = %q, want %q", got, want)
	}
	if got, want := FullName(m), "m"; got != want {
		t.Errorf("FullName(module) = %q, want %q", got, want)
	}
}
