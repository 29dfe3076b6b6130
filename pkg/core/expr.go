// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package core

import (
	"fmt"
	"math/big"
	"strings"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
)

// Expr is a node in the hash-consed symbolic expression DAG. Gazer models
// every expression kind as one tagged-variant struct rather than a Go type
// per kind, following the closed-hierarchy design of the algebra it
// implements: the Kind field selects which of the immediate fields and how
// many operands are meaningful, and both the builder and the evaluator
// dispatch on it via an exhaustive switch. Once interned via a Context, an
// *Expr is immutable and its identity is canonical: two expressions are
// structurally equal iff they are the same pointer.
type Expr struct {
	kind     Kind
	typ      *Type
	operands []*Expr

	// immediate literal/attribute payload; only the field(s) relevant to
	// kind are populated.
	boolVal   bool
	intVal    *big.Int
	bv        *bitset.BitSet
	realVal   *big.Rat
	floatBits *big.Int
	variable  *Variable
	extractHi uint32
	extractLo uint32
	round     RoundingMode
}

// Kind returns which operation this node performs.
func (e *Expr) Kind() Kind { return e.kind }

// Type returns this node's result type.
func (e *Expr) Type() *Type { return e.typ }

// Operands returns this node's children, in evaluation order. Leaf kinds
// return nil.
func (e *Expr) Operands() []*Expr { return e.operands }

// Operand returns the i'th child. Panics if out of range.
func (e *Expr) Operand(i int) *Expr { return e.operands[i] }

// Arity returns the number of operands.
func (e *Expr) Arity() int { return len(e.operands) }

// BoolValue returns the literal value of a KindBoolLit node.
func (e *Expr) BoolValue() bool {
	if e.kind != KindBoolLit {
		panic(fmt.Sprintf("BoolValue() called on %s", e.kind))
	}

	return e.boolVal
}

// IntValue returns the literal value of a KindIntLit node.
func (e *Expr) IntValue() *big.Int {
	if e.kind != KindIntLit {
		panic(fmt.Sprintf("IntValue() called on %s", e.kind))
	}

	return e.intVal
}

// BvValue returns the literal bits of a KindBvLit node, normalized modulo
// 2^width and stored little-endian by bit index.
func (e *Expr) BvValue() *bitset.BitSet {
	if e.kind != KindBvLit {
		panic(fmt.Sprintf("BvValue() called on %s", e.kind))
	}

	return e.bv
}

// RealValue returns the literal value of a KindRealLit node.
func (e *Expr) RealValue() *big.Rat {
	if e.kind != KindRealLit {
		panic(fmt.Sprintf("RealValue() called on %s", e.kind))
	}

	return e.realVal
}

// FloatBits returns the raw IEEE bit pattern of a KindFloatLit node.
func (e *Expr) FloatBits() *big.Int {
	if e.kind != KindFloatLit {
		panic(fmt.Sprintf("FloatBits() called on %s", e.kind))
	}

	return e.floatBits
}

// Variable returns the referenced Variable of a KindVarRef node.
func (e *Expr) Variable() *Variable {
	if e.kind != KindVarRef {
		panic(fmt.Sprintf("Variable() called on %s", e.kind))
	}

	return e.variable
}

// ExtractBounds returns the inclusive high and low bit indices of a
// KindExtract node.
func (e *Expr) ExtractBounds() (hi, lo uint32) {
	if e.kind != KindExtract {
		panic(fmt.Sprintf("ExtractBounds() called on %s", e.kind))
	}

	return e.extractHi, e.extractLo
}

// RoundingMode returns the rounding attribute of a floating-point operation
// or cast node.
func (e *Expr) RoundingMode() RoundingMode {
	switch e.kind {
	case KindFAdd, KindFSub, KindFMul, KindFDiv, KindFCast,
		KindSignedToFp, KindUnsignedToFp, KindFpToSigned, KindFpToUnsigned:
		return e.round
	default:
		panic(fmt.Sprintf("RoundingMode() called on %s", e.kind))
	}
}

// String renders a compact s-expression-like view of this node, primarily
// for diagnostics and test failure messages.
func (e *Expr) String() string {
	switch e.kind {
	case KindVarRef:
		return e.variable.Name()
	case KindUndef:
		return fmt.Sprintf("undef:%s", e.typ)
	case KindBoolLit:
		return fmt.Sprintf("%t", e.boolVal)
	case KindIntLit:
		return e.intVal.String()
	case KindBvLit:
		return fmt.Sprintf("#x%s:%s", e.bv.DumpAsBits(), e.typ)
	case KindFloatLit:
		return fmt.Sprintf("%s:%s", e.floatBits, e.typ)
	case KindRealLit:
		return e.realVal.RatString()
	default:
		parts := make([]string, len(e.operands))
		for i, op := range e.operands {
			parts[i] = op.String()
		}

		return fmt.Sprintf("(%s %s)", e.kind, strings.Join(parts, " "))
	}
}

// Hash implements hash.Hasher[*Expr] for use with an intern table. It
// combines the kind, the type identity, operand identities, and any
// immediate payload; since interning is bottom-up, operand pointers are
// always already canonical by the time a parent is hashed.
func (e *Expr) Hash() uint64 {
	const prime = 1099511628211

	h := uint64(e.kind) + 1

	if e.typ != nil {
		h = h*prime ^ ptrHash(e.typ)
	}

	for _, op := range e.operands {
		h = h*prime ^ ptrHash(op)
	}

	switch e.kind {
	case KindBoolLit:
		if e.boolVal {
			h = h*prime ^ 1
		}
	case KindIntLit:
		h = h*prime ^ bigIntHash(e.intVal)
	case KindBvLit:
		h = h*prime ^ bitsetHash(e.bv)
	case KindRealLit:
		h = h*prime ^ bigIntHash(e.realVal.Num())
		h = h*prime ^ bigIntHash(e.realVal.Denom())
	case KindFloatLit:
		h = h*prime ^ bigIntHash(e.floatBits)
	case KindVarRef:
		h = h*prime ^ uint64(e.variable.id)
	case KindExtract:
		h = h*prime ^ uint64(e.extractHi)<<32 ^ uint64(e.extractLo)
	}

	switch e.kind {
	case KindFAdd, KindFSub, KindFMul, KindFDiv, KindFCast,
		KindSignedToFp, KindUnsignedToFp, KindFpToSigned, KindFpToUnsigned:
		h = h*prime ^ uint64(e.round)
	}

	return h
}

// Equals implements hash.Hasher[*Expr]: structural equality by kind, type,
// operand identity, and immediate payload.
func (e *Expr) Equals(other *Expr) bool {
	if e == other {
		return true
	}

	if e.kind != other.kind || e.typ != other.typ || len(e.operands) != len(other.operands) {
		return false
	}

	for i := range e.operands {
		if e.operands[i] != other.operands[i] {
			return false
		}
	}

	switch e.kind {
	case KindBoolLit:
		return e.boolVal == other.boolVal
	case KindIntLit:
		return e.intVal.Cmp(other.intVal) == 0
	case KindBvLit:
		return e.bv.Equal(other.bv)
	case KindRealLit:
		return e.realVal.Cmp(other.realVal) == 0
	case KindFloatLit:
		return e.floatBits.Cmp(other.floatBits) == 0
	case KindVarRef:
		return e.variable == other.variable
	case KindExtract:
		if e.extractHi != other.extractHi || e.extractLo != other.extractLo {
			return false
		}
	}

	switch e.kind {
	case KindFAdd, KindFSub, KindFMul, KindFDiv, KindFCast,
		KindSignedToFp, KindUnsignedToFp, KindFpToSigned, KindFpToUnsigned:
		return e.round == other.round
	}

	return true
}

// ptrHash derives a hash contribution from a pointer's identity. Types and
// operands are themselves interned/unique, so their address is a stable
// proxy for structural identity within one Context's lifetime.
func ptrHash[T any](p *T) uint64 {
	return uint64(uintptr(unsafe.Pointer(p)))
}

func bigIntHash(v *big.Int) uint64 {
	bytes := v.Bytes()

	var h uint64 = 14695981039346656037

	for _, b := range bytes {
		h ^= uint64(b)
		h *= 1099511628211
	}

	if v.Sign() < 0 {
		h ^= 0xff
	}

	return h
}

func bitsetHash(b *bitset.BitSet) uint64 {
	var h uint64 = 14695981039346656037

	words := b.Bytes()
	for _, w := range words {
		h ^= w
		h *= 1099511628211
	}

	return h
}
