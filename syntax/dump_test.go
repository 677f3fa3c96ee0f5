// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "os"

func ExampleDump() {
	pos := MakePosition("demo.py", 1, 1)
	m := NewModule("demo", "", pos)
	m.SetBody(NewStmtSequence([]Stmt{
		NewAssignStmt(
			[]Target{NewVarTarget("x", pos)},
			NewConstantExpr(int64(5), pos),
			pos,
		),
		NewPrintStmt(nil, []Expr{NewVarRef("x", pos)}, true, pos),
	}, pos))

	Dump(os.Stdout, m)
	// Output:
	// Module demo
	//   StmtSequence
	//     AssignStmt
	//       ConstantExpr 5
	//       VarTarget x
	//     PrintStmt
	//       VarRef x
}
