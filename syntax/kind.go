// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "log"

// A Kind identifies the concrete variant of a node.
// The set of kinds is closed: all variants are registered in this file,
// and the registration table is checked for consistency at init time.
type Kind uint8

const (
	KindInvalid Kind = iota

	// modules
	KindModule
	KindPackage

	// statements
	KindStmtSequence
	KindAssignStmt
	KindInplaceAssignStmt
	KindExprStmt
	KindPrintStmt
	KindReturnStmt
	KindAssertStmt
	KindWithStmt
	KindForStmt
	KindWhileStmt
	KindIfStmt
	KindTryFinallyStmt
	KindTryExceptStmt
	KindRaiseStmt
	KindContinueStmt
	KindBreakStmt
	KindPassStmt
	KindImportStmt
	KindImportFromStmt
	KindExecStmt
	KindGlobalStmt
	KindDefStmt
	KindClassStmt

	// expressions
	KindConstantExpr
	KindVarRef
	KindYieldExpr
	KindLambdaExpr
	KindGeneratorExpr
	KindListComp
	KindSetComp
	KindDictComp
	KindDictPair
	KindCallExpr
	KindBinaryExpr
	KindUnaryExpr
	KindCompareExpr
	KindCondExpr
	KindOrExpr
	KindAndExpr
	KindNotExpr
	KindSequenceExpr
	KindDictExpr
	KindSetExpr
	KindAttrExpr
	KindIndexExpr
	KindSliceExpr
	KindSliceObjExpr

	// builtin calls
	KindImportExpr
	KindGlobalsExpr
	KindLocalsExpr
	KindDirExpr
	KindVarsExpr
	KindEvalExpr
	KindOpenExpr
	KindChrExpr
	KindOrdExpr
	KindType1Expr
	KindType3Expr
	KindRangeExpr
	KindLenExpr

	// assignment targets
	KindVarTarget
	KindAttrTarget
	KindSubscriptTarget
	KindSliceTarget
	KindTupleTarget

	numKinds
)

// A family groups kinds for the coarse Is* predicates.
type family uint8

const (
	familyHelper family = iota // sequences, dict pairs
	familyModule
	familyStatement
	familyExpression
	familyTarget
)

type kindInfo struct {
	name    string
	fam     family
	builtin bool // builtin-call sub-family of expressions
}

var kinds = [numKinds]kindInfo{
	KindModule:  {name: "Module", fam: familyModule},
	KindPackage: {name: "Package", fam: familyModule},

	KindStmtSequence:      {name: "StmtSequence", fam: familyHelper},
	KindAssignStmt:        {name: "AssignStmt", fam: familyStatement},
	KindInplaceAssignStmt: {name: "InplaceAssignStmt", fam: familyStatement},
	KindExprStmt:          {name: "ExprStmt", fam: familyStatement},
	KindPrintStmt:         {name: "PrintStmt", fam: familyStatement},
	KindReturnStmt:        {name: "ReturnStmt", fam: familyStatement},
	KindAssertStmt:        {name: "AssertStmt", fam: familyStatement},
	KindWithStmt:          {name: "WithStmt", fam: familyStatement},
	KindForStmt:           {name: "ForStmt", fam: familyStatement},
	KindWhileStmt:         {name: "WhileStmt", fam: familyStatement},
	KindIfStmt:            {name: "IfStmt", fam: familyStatement},
	KindTryFinallyStmt:    {name: "TryFinallyStmt", fam: familyStatement},
	KindTryExceptStmt:     {name: "TryExceptStmt", fam: familyStatement},
	KindRaiseStmt:         {name: "RaiseStmt", fam: familyStatement},
	KindContinueStmt:      {name: "ContinueStmt", fam: familyStatement},
	KindBreakStmt:         {name: "BreakStmt", fam: familyStatement},
	KindPassStmt:          {name: "PassStmt", fam: familyStatement},
	KindImportStmt:        {name: "ImportStmt", fam: familyStatement},
	KindImportFromStmt:    {name: "ImportFromStmt", fam: familyStatement},
	KindExecStmt:          {name: "ExecStmt", fam: familyStatement},
	KindGlobalStmt:        {name: "GlobalStmt", fam: familyStatement},
	KindDefStmt:           {name: "DefStmt", fam: familyStatement},
	KindClassStmt:         {name: "ClassStmt", fam: familyStatement},

	KindConstantExpr:  {name: "ConstantExpr", fam: familyExpression},
	KindVarRef:        {name: "VarRef", fam: familyExpression},
	KindYieldExpr:     {name: "YieldExpr", fam: familyExpression},
	KindLambdaExpr:    {name: "LambdaExpr", fam: familyExpression},
	KindGeneratorExpr: {name: "GeneratorExpr", fam: familyExpression},
	KindListComp:      {name: "ListComp", fam: familyExpression},
	KindSetComp:       {name: "SetComp", fam: familyExpression},
	KindDictComp:      {name: "DictComp", fam: familyExpression},
	KindDictPair:      {name: "DictPair", fam: familyHelper},
	KindCallExpr:      {name: "CallExpr", fam: familyExpression},
	KindBinaryExpr:    {name: "BinaryExpr", fam: familyExpression},
	KindUnaryExpr:     {name: "UnaryExpr", fam: familyExpression},
	KindCompareExpr:   {name: "CompareExpr", fam: familyExpression},
	KindCondExpr:      {name: "CondExpr", fam: familyExpression},
	KindOrExpr:        {name: "OrExpr", fam: familyExpression},
	KindAndExpr:       {name: "AndExpr", fam: familyExpression},
	KindNotExpr:       {name: "NotExpr", fam: familyExpression},
	KindSequenceExpr:  {name: "SequenceExpr", fam: familyExpression},
	KindDictExpr:      {name: "DictExpr", fam: familyExpression},
	KindSetExpr:       {name: "SetExpr", fam: familyExpression},
	KindAttrExpr:      {name: "AttrExpr", fam: familyExpression},
	KindIndexExpr:     {name: "IndexExpr", fam: familyExpression},
	KindSliceExpr:     {name: "SliceExpr", fam: familyExpression},
	KindSliceObjExpr:  {name: "SliceObjExpr", fam: familyExpression},

	KindImportExpr:  {name: "ImportExpr", fam: familyExpression, builtin: true},
	KindGlobalsExpr: {name: "GlobalsExpr", fam: familyExpression, builtin: true},
	KindLocalsExpr:  {name: "LocalsExpr", fam: familyExpression, builtin: true},
	KindDirExpr:     {name: "DirExpr", fam: familyExpression, builtin: true},
	KindVarsExpr:    {name: "VarsExpr", fam: familyExpression, builtin: true},
	KindEvalExpr:    {name: "EvalExpr", fam: familyExpression, builtin: true},
	KindOpenExpr:    {name: "OpenExpr", fam: familyExpression, builtin: true},
	KindChrExpr:     {name: "ChrExpr", fam: familyExpression, builtin: true},
	KindOrdExpr:     {name: "OrdExpr", fam: familyExpression, builtin: true},
	KindType1Expr:   {name: "Type1Expr", fam: familyExpression, builtin: true},
	KindType3Expr:   {name: "Type3Expr", fam: familyExpression, builtin: true},
	KindRangeExpr:   {name: "RangeExpr", fam: familyExpression, builtin: true},
	KindLenExpr:     {name: "LenExpr", fam: familyExpression, builtin: true},

	KindVarTarget:       {name: "VarTarget", fam: familyTarget},
	KindAttrTarget:      {name: "AttrTarget", fam: familyTarget},
	KindSubscriptTarget: {name: "SubscriptTarget", fam: familyTarget},
	KindSliceTarget:     {name: "SliceTarget", fam: familyTarget},
	KindTupleTarget:     {name: "TupleTarget", fam: familyTarget},
}

func init() {
	seen := make(map[string]Kind, numKinds)
	for k := Kind(1); k < numKinds; k++ {
		name := kinds[k].name
		if name == "" {
			log.Panicf("syntax: kind %d is not registered", k)
		}
		if prev, ok := seen[name]; ok {
			log.Panicf("syntax: duplicate kind tag %q (%d and %d)", name, prev, k)
		}
		seen[name] = k
	}
}

func (k Kind) String() string {
	if k == KindInvalid || k >= numKinds {
		return "invalid"
	}
	return kinds[k].name
}

// IsModule reports whether k is a module or package.
func (k Kind) IsModule() bool { return kinds[k].fam == familyModule }

// IsStatement reports whether k is a statement variant.
func (k Kind) IsStatement() bool { return kinds[k].fam == familyStatement }

// IsExpression reports whether k is an expression variant,
// including the builtin-call sub-family.
func (k Kind) IsExpression() bool { return kinds[k].fam == familyExpression }

// IsBuiltinCall reports whether k is a builtin-call expression.
func (k Kind) IsBuiltinCall() bool { return kinds[k].builtin }

// IsAssignTarget reports whether k is an assignment-target variant.
func (k Kind) IsAssignTarget() bool { return kinds[k].fam == familyTarget }
