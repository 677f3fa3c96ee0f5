// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"log"
	"math/big"
)

// A Value is the representation of a constant: one of
//
//	NoneType, EllipsisType
//	bool, int64, *big.Int, float64, complex128
//	string
//	Tuple, List, Set, FrozenSet, Dict
//
// Anything else stored in a ConstantExpr is an internal defect.
type Value interface{}

// NoneType is the type of the None singleton.
type NoneType struct{}

// None is the sole value of NoneType.
var None NoneType

// EllipsisType is the type of the Ellipsis singleton.
type EllipsisType struct{}

// Ellipsis is the sole value of EllipsisType.
var Ellipsis EllipsisType

// Tuple, List, Set and FrozenSet are ordered element containers.
type (
	Tuple     []Value
	List      []Value
	Set       []Value
	FrozenSet []Value
)

// A DictItem is one key/value pair of a Dict.
type DictItem struct {
	Key, Value Value
}

// Dict is an ordered list of key/value pairs.
type Dict []DictItem

// IsMutableValue reports whether a constant value is mutable.
//
// Dicts, lists and sets are mutable; strings, numbers, booleans and
// None are not. A tuple or frozenset is mutable iff any element is.
// The Ellipsis singleton is deliberately classified as mutable so that
// it is never treated as shareable by constant deduplication.
//
// Later passes rely on this classification for safe constant pooling;
// it is exact, not an approximation.
func IsMutableValue(v Value) bool {
	switch v := v.(type) {
	case NoneType, bool, string, int, int64, *big.Int, float64, complex128:
		return false
	case EllipsisType:
		return true
	case List, Dict, Set:
		return true
	case Tuple:
		for _, elem := range v {
			if IsMutableValue(elem) {
				return true
			}
		}
		return false
	case FrozenSet:
		for _, elem := range v {
			if IsMutableValue(elem) {
				return true
			}
		}
		return false
	}
	log.Panicf("syntax: malformed constant value %T", v)
	panic("unreachable")
}

// A ConstantExpr is a reference to a constant value.
type ConstantExpr struct {
	leaf
	value Value
}

func NewConstantExpr(value Value, pos Position) *ConstantExpr {
	n := &ConstantExpr{value: value}
	n.node = node{kind: KindConstantExpr, pos: pos}
	return n
}

func (*ConstantExpr) expr() {}

// Value returns the constant's value.
func (e *ConstantExpr) Value() Value { return e.value }

// IsMutable reports whether the constant is mutable (see IsMutableValue).
func (e *ConstantExpr) IsMutable() bool { return IsMutableValue(e.value) }

// IsNumber reports whether the constant is numeric (including bool).
func (e *ConstantExpr) IsNumber() bool {
	switch e.value.(type) {
	case bool, int, int64, *big.Int, float64:
		return true
	}
	return false
}

// IsIterable reports whether the constant is an iterable container or string.
func (e *ConstantExpr) IsIterable() bool {
	switch e.value.(type) {
	case string, Tuple, List, Set, FrozenSet, Dict:
		return true
	}
	return false
}

// IsBool reports whether the constant is a boolean.
func (e *ConstantExpr) IsBool() bool {
	_, ok := e.value.(bool)
	return ok
}

// IsNone reports whether the constant is None.
func (e *ConstantExpr) IsNone() bool {
	_, ok := e.value.(NoneType)
	return ok
}
