// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "testing"

func TestKindFamilies(t *testing.T) {
	for _, test := range []struct {
		kind      Kind
		module    bool
		statement bool
		expr      bool
		builtin   bool
		target    bool
	}{
		{KindModule, true, false, false, false, false},
		{KindPackage, true, false, false, false, false},
		{KindStmtSequence, false, false, false, false, false},
		{KindAssignStmt, false, true, false, false, false},
		{KindDefStmt, false, true, false, false, false},
		{KindConstantExpr, false, false, true, false, false},
		{KindLambdaExpr, false, false, true, false, false},
		{KindLenExpr, false, false, true, true, false},
		{KindImportExpr, false, false, true, true, false},
		{KindVarTarget, false, false, false, false, true},
		{KindTupleTarget, false, false, false, false, true},
	} {
		if got := test.kind.IsModule(); got != test.module {
			t.Errorf("%s.IsModule() = %t, want %t", test.kind, got, test.module)
		}
		if got := test.kind.IsStatement(); got != test.statement {
			t.Errorf("%s.IsStatement() = %t, want %t", test.kind, got, test.statement)
		}
		if got := test.kind.IsExpression(); got != test.expr {
			t.Errorf("%s.IsExpression() = %t, want %t", test.kind, got, test.expr)
		}
		if got := test.kind.IsBuiltinCall(); got != test.builtin {
			t.Errorf("%s.IsBuiltinCall() = %t, want %t", test.kind, got, test.builtin)
		}
		if got := test.kind.IsAssignTarget(); got != test.target {
			t.Errorf("%s.IsAssignTarget() = %t, want %t", test.kind, got, test.target)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if got := KindInvalid.String(); got != "invalid" {
		t.Errorf("KindInvalid.String() = %q, want %q", got, "invalid")
	}
	seen := make(map[string]bool)
	for k := KindModule; k < numKinds; k++ {
		name := k.String()
		if name == "" || name == "invalid" {
			t.Errorf("kind %d has no registered name", k)
		}
		if seen[name] {
			t.Errorf("duplicate kind name %q", name)
		}
		seen[name] = true
	}
}
