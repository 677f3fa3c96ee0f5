// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines resolver data types referenced by the syntax tree.
// They are produced by scope providers during name resolution and read
// back by code generation.

import "fmt"

// VarKind discriminates the variants of Variable.
type VarKind uint8

const (
	// ModuleVar is a module-global variable: one per name per module,
	// alive for the module's lifetime.
	ModuleVar VarKind = iota

	// LocalVar is owned by a function, lambda, generator or
	// comprehension scope, alive for one activation of that scope.
	// A parameter is a local additionally bound by call arguments.
	LocalVar

	// ClassVar is owned by a class body. Class variables are not
	// closed over by nested functions.
	ClassVar

	// ClosureRef binds an inner scope to a variable of an enclosing
	// non-module scope. Its presence in a scope's closure set marks
	// that a capture cell must be allocated.
	ClosureRef
)

var varKindNames = [...]string{
	ModuleVar:  "module",
	LocalVar:   "local",
	ClassVar:   "class",
	ClosureRef: "closure",
}

func (k VarKind) String() string { return varKindNames[k] }

// A Variable is a resolved named storage location. Within one provider's
// table variable names are unique, and repeated lookups of the same name
// return the identical Variable.
type Variable struct {
	kind      VarKind
	owner     Scope // defining scope; for ClosureRef, the taking scope
	name      string
	parameter bool      // LocalVar bound by call arguments
	ref       *Variable // ClosureRef target
}

func newModuleVariable(owner Scope, name string) *Variable {
	return &Variable{kind: ModuleVar, owner: owner, name: name}
}

func newLocalVariable(owner Scope, name string) *Variable {
	return &Variable{kind: LocalVar, owner: owner, name: name}
}

func newParameterVariable(owner Scope, name string) *Variable {
	return &Variable{kind: LocalVar, owner: owner, name: name, parameter: true}
}

func newClassVariable(owner Scope, name string) *Variable {
	return &Variable{kind: ClassVar, owner: owner, name: name}
}

func newClosureReference(taker Scope, v *Variable) *Variable {
	return &Variable{kind: ClosureRef, owner: taker, name: v.name, ref: v}
}

// Name returns the source-level name of the variable.
func (v *Variable) Name() string { return v.name }

// Owner returns the scope that defines the variable; for a closure
// reference it is the scope doing the taking.
func (v *Variable) Owner() Scope { return v.owner }

// VarKind returns the variant of the variable itself; a closure
// reference reports ClosureRef regardless of its target.
func (v *Variable) VarKind() VarKind { return v.kind }

// Referenced returns the variable a closure reference stands for,
// following chains through intervening scopes; for any other kind it
// returns v itself.
func (v *Variable) Referenced() *Variable {
	for v.kind == ClosureRef {
		v = v.ref
	}
	return v
}

// IsModuleVariable reports whether v ultimately denotes a module global.
func (v *Variable) IsModuleVariable() bool { return v.Referenced().kind == ModuleVar }

// IsLocalVariable reports whether v is a local of its owning scope.
func (v *Variable) IsLocalVariable() bool { return v.kind == LocalVar }

// IsParameterVariable reports whether v is a local bound by call arguments.
func (v *Variable) IsParameterVariable() bool { return v.kind == LocalVar && v.parameter }

// IsClassVariable reports whether v is owned by a class body.
func (v *Variable) IsClassVariable() bool { return v.kind == ClassVar }

// IsClosureReference reports whether v is a capture of an enclosing
// scope's variable.
func (v *Variable) IsClosureReference() bool { return v.kind == ClosureRef }

func (v *Variable) String() string {
	return fmt.Sprintf("<%s variable %q>", v.kind, v.name)
}

// A BindingConflictError reports an assignment to a name that an
// unqualified scope has already captured from an enclosing non-module
// scope. It is a semantic error of the input program, reportable to the
// user, not an internal defect.
type BindingConflictError struct {
	Name  string
	Scope Scope
}

func (e *BindingConflictError) Error() string {
	return fmt.Sprintf("cannot assign to %s: already captured from an enclosing scope", e.Name)
}
