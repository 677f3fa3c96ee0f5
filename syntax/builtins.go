// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// The builtin-call expressions are produced by recognizing calls to
// unshadowed builtin names during tree building. Each stands for one
// builtin with a fixed signature; calls that do not match the signature
// stay plain CallExpr nodes.

func (*ImportExpr) expr()  {}
func (*GlobalsExpr) expr() {}
func (*LocalsExpr) expr()  {}
func (*DirExpr) expr()     {}
func (*VarsExpr) expr()    {}
func (*EvalExpr) expr()    {}
func (*OpenExpr) expr()    {}
func (*ChrExpr) expr()     {}
func (*OrdExpr) expr()     {}
func (*Type1Expr) expr()   {}
func (*Type3Expr) expr()   {}
func (*RangeExpr) expr()   {}
func (*LenExpr) expr()     {}

// An ImportExpr is a resolved __import__ of a single module.
type ImportExpr struct {
	leaf
	moduleName string
	filename   string // resolved source file, "" if not found
	pkg        *Module
}

func NewImportExpr(moduleName, filename string, pkg *Module, pos Position) *ImportExpr {
	n := &ImportExpr{moduleName: moduleName, filename: filename, pkg: pkg}
	n.node = node{kind: KindImportExpr, pos: pos}
	return n
}

func (n *ImportExpr) ModuleName() string { return n.moduleName }
func (n *ImportExpr) Filename() string   { return n.filename }

// ModulePackage returns the package init module the import was found
// through, or nil for a top-level module.
func (n *ImportExpr) ModulePackage() *Module { return n.pkg }

// A GlobalsExpr is a globals() call.
type GlobalsExpr struct {
	leaf
}

func NewGlobalsExpr(pos Position) *GlobalsExpr {
	n := &GlobalsExpr{}
	n.node = node{kind: KindGlobalsExpr, pos: pos}
	return n
}

// A LocalsExpr is a locals() call.
type LocalsExpr struct {
	leaf
}

func NewLocalsExpr(pos Position) *LocalsExpr {
	n := &LocalsExpr{}
	n.node = node{kind: KindLocalsExpr, pos: pos}
	return n
}

// A DirExpr is an argumentless dir() call.
type DirExpr struct {
	leaf
}

func NewDirExpr(pos Position) *DirExpr {
	n := &DirExpr{}
	n.node = node{kind: KindDirExpr, pos: pos}
	return n
}

// A VarsExpr is a vars(source) call.
type VarsExpr struct {
	slots
}

func NewVarsExpr(source Expr, pos Position) *VarsExpr {
	n := &VarsExpr{}
	n.node = node{kind: KindVarsExpr, pos: pos}
	n.initSlots(n, one("source", source))
	return n
}

func (n *VarsExpr) Source() Node { return n.Child("source") }

// An EvalExpr is an eval(source, globals, locals) call.
type EvalExpr struct {
	slots
}

func NewEvalExpr(source, globals, locals Expr, pos Position) *EvalExpr {
	n := &EvalExpr{}
	n.node = node{kind: KindEvalExpr, pos: pos}
	n.initSlots(n,
		one("source", source),
		one("globals", globals),
		one("locals", locals),
	)
	return n
}

func (n *EvalExpr) Source() Node  { return n.Child("source") }
func (n *EvalExpr) Globals() Node { return n.Child("globals") }
func (n *EvalExpr) Locals() Node  { return n.Child("locals") }

// An OpenExpr is an open(filename, mode, buffering) call.
type OpenExpr struct {
	slots
}

func NewOpenExpr(filename, mode, buffering Expr, pos Position) *OpenExpr {
	n := &OpenExpr{}
	n.node = node{kind: KindOpenExpr, pos: pos}
	n.initSlots(n,
		one("filename", filename),
		one("mode", mode),
		one("buffering", buffering),
	)
	return n
}

func (n *OpenExpr) Filename() Node  { return n.Child("filename") }
func (n *OpenExpr) Mode() Node      { return n.Child("mode") }
func (n *OpenExpr) Buffering() Node { return n.Child("buffering") }

// A ChrExpr is a chr(value) call.
type ChrExpr struct {
	slots
}

func NewChrExpr(value Expr, pos Position) *ChrExpr {
	n := &ChrExpr{}
	n.node = node{kind: KindChrExpr, pos: pos}
	n.initSlots(n, one("value", value))
	return n
}

func (n *ChrExpr) Value() Node { return n.Child("value") }

// An OrdExpr is an ord(value) call.
type OrdExpr struct {
	slots
}

func NewOrdExpr(value Expr, pos Position) *OrdExpr {
	n := &OrdExpr{}
	n.node = node{kind: KindOrdExpr, pos: pos}
	n.initSlots(n, one("value", value))
	return n
}

func (n *OrdExpr) Value() Node { return n.Child("value") }

// A Type1Expr is a single-argument type(value) call.
type Type1Expr struct {
	slots
}

func NewType1Expr(value Expr, pos Position) *Type1Expr {
	n := &Type1Expr{}
	n.node = node{kind: KindType1Expr, pos: pos}
	n.initSlots(n, one("value", value))
	return n
}

func (n *Type1Expr) Value() Node { return n.Child("value") }

// A Type3Expr is a three-argument type(name, bases, dict) call.
type Type3Expr struct {
	slots
}

func NewType3Expr(typeName, bases, dict Expr, pos Position) *Type3Expr {
	n := &Type3Expr{}
	n.node = node{kind: KindType3Expr, pos: pos}
	n.initSlots(n,
		one("type_name", typeName),
		one("bases", bases),
		one("dict", dict),
	)
	return n
}

func (n *Type3Expr) TypeName() Node { return n.Child("type_name") }
func (n *Type3Expr) Bases() Node    { return n.Child("bases") }
func (n *Type3Expr) Dict() Node     { return n.Child("dict") }

// A RangeExpr is a range(low, high, step) call; high and step may be nil.
type RangeExpr struct {
	slots
}

func NewRangeExpr(low, high, step Expr, pos Position) *RangeExpr {
	n := &RangeExpr{}
	n.node = node{kind: KindRangeExpr, pos: pos}
	n.initSlots(n,
		one("low", low),
		one("high", high),
		one("step", step),
	)
	return n
}

func (n *RangeExpr) Low() Node  { return n.Child("low") }
func (n *RangeExpr) High() Node { return n.Child("high") }
func (n *RangeExpr) Step() Node { return n.Child("step") }

// A LenExpr is a len(value) call.
type LenExpr struct {
	slots
}

func NewLenExpr(value Expr, pos Position) *LenExpr {
	n := &LenExpr{}
	n.node = node{kind: KindLenExpr, pos: pos}
	n.initSlots(n, one("value", value))
	return n
}

func (n *LenExpr) Value() Node { return n.Child("value") }
