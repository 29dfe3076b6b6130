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

// InternExpr is the sole allocator for non-leaf nodes whose result type is
// fully determined by their operand types: arithmetic, bitwise, comparison,
// boolean connectives, float predicates, and array reads/writes. Extract,
// ZExt/SExt, Select, float arithmetic, and the float conversions have
// dedicated constructors below that validate their own contract and call
// intern directly.
//
//nolint:cyclop
func (c *Context) InternExpr(kind Kind, operands ...*Expr) *Expr {
	switch kind {
	case KindAdd, KindSub, KindMul:
		requireArity(kind, operands, 2)
		t := requireSameType(kind, operands)
		requireOneOf(kind, t, c.intType, isBv)

		return c.intern(&Expr{kind: kind, typ: t, operands: operands})

	case KindDiv, KindMod, KindRem:
		requireArity(kind, operands, 2)
		requireExactType(kind, operands[0], c.intType)
		requireExactType(kind, operands[1], c.intType)

		return c.intern(&Expr{kind: kind, typ: c.intType, operands: operands})

	case KindBvSDiv, KindBvUDiv, KindBvSRem, KindBvURem,
		KindShl, KindLShr, KindAShr, KindBvAnd, KindBvOr, KindBvXor:
		requireArity(kind, operands, 2)
		t := requireSameType(kind, operands)
		requireKind(kind, t, TypeBv)

		return c.intern(&Expr{kind: kind, typ: t, operands: operands})

	case KindNot:
		requireArity(kind, operands, 1)
		requireExactType(kind, operands[0], c.boolType)

		return c.intern(&Expr{kind: kind, typ: c.boolType, operands: operands})

	case KindAnd, KindOr:
		if len(operands) < 2 {
			failContract(ArityMismatch, "%s requires at least 2 operands, got %d", kind, len(operands))
		}

		for _, op := range operands {
			requireExactType(kind, op, c.boolType)
		}

		return c.intern(&Expr{kind: kind, typ: c.boolType, operands: operands})

	case KindXor, KindImply:
		requireArity(kind, operands, 2)
		requireExactType(kind, operands[0], c.boolType)
		requireExactType(kind, operands[1], c.boolType)

		return c.intern(&Expr{kind: kind, typ: c.boolType, operands: operands})

	case KindEq, KindNotEq:
		requireArity(kind, operands, 2)
		requireSameType(kind, operands)

		return c.intern(&Expr{kind: kind, typ: c.boolType, operands: operands})

	case KindLt, KindLtEq, KindGt, KindGtEq:
		requireArity(kind, operands, 2)
		requireExactType(kind, operands[0], c.intType)
		requireExactType(kind, operands[1], c.intType)

		return c.intern(&Expr{kind: kind, typ: c.boolType, operands: operands})

	case KindBvSLt, KindBvSLtEq, KindBvSGt, KindBvSGtEq,
		KindBvULt, KindBvULtEq, KindBvUGt, KindBvUGtEq:
		requireArity(kind, operands, 2)
		t := requireSameType(kind, operands)
		requireKind(kind, t, TypeBv)

		return c.intern(&Expr{kind: kind, typ: c.boolType, operands: operands})

	case KindFEq, KindFGt, KindFGtEq, KindFLt, KindFLtEq:
		requireArity(kind, operands, 2)
		t := requireSameType(kind, operands)
		requireKind(kind, t, TypeFloat)

		return c.intern(&Expr{kind: kind, typ: c.boolType, operands: operands})

	case KindFIsNan, KindFIsInf:
		requireArity(kind, operands, 1)
		requireKind(kind, operands[0].typ, TypeFloat)

		return c.intern(&Expr{kind: kind, typ: c.boolType, operands: operands})

	case KindArrayRead:
		requireArity(kind, operands, 2)
		requireKind(kind, operands[0].typ, TypeArray)

		arr := operands[0].typ
		if operands[1].typ != arr.index {
			failContract(TypeMismatch, "%s: index has type %s, array expects %s", kind, operands[1].typ, arr.index)
		}

		return c.intern(&Expr{kind: kind, typ: arr.elem, operands: operands})

	case KindArrayWrite:
		requireArity(kind, operands, 3)
		requireKind(kind, operands[0].typ, TypeArray)

		arr := operands[0].typ
		if operands[1].typ != arr.index {
			failContract(TypeMismatch, "%s: index has type %s, array expects %s", kind, operands[1].typ, arr.index)
		}

		if operands[2].typ != arr.elem {
			failContract(TypeMismatch, "%s: value has type %s, array expects %s", kind, operands[2].typ, arr.elem)
		}

		return c.intern(&Expr{kind: kind, typ: arr, operands: operands})

	default:
		failContract(ArityMismatch, "InternExpr does not handle %s; use its dedicated constructor", kind)
		return nil
	}
}

// Extract slices the inclusive bit range [lo,hi] out of a
// bitvector operand, producing a Bv(hi-lo+1) result.
func (c *Context) Extract(operand *Expr, hi, lo uint32) *Expr {
	requireKind(KindExtract, operand.typ, TypeBv)

	if hi < lo {
		failContract(ArityMismatch, "Extract: hi (%d) must be >= lo (%d)", hi, lo)
	}

	if hi >= operand.typ.width {
		failContract(ArityMismatch, "Extract: hi (%d) out of range for Bv%d", hi, operand.typ.width)
	}

	typ := c.BvType(hi - lo + 1)

	return c.intern(&Expr{kind: KindExtract, typ: typ, operands: []*Expr{operand}, extractHi: hi, extractLo: lo})
}

// ZExt zero-extends a bitvector operand to width, which must be strictly
// greater than the operand's current width.
func (c *Context) ZExt(operand *Expr, width uint32) *Expr {
	return c.extend(KindZExt, operand, width)
}

// SExt sign-extends a bitvector operand to width, which must be strictly
// greater than the operand's current width.
func (c *Context) SExt(operand *Expr, width uint32) *Expr {
	return c.extend(KindSExt, operand, width)
}

func (c *Context) extend(kind Kind, operand *Expr, width uint32) *Expr {
	requireKind(kind, operand.typ, TypeBv)

	if width <= operand.typ.width {
		failContract(TypeMismatch, "%s: target width %d must exceed source width %d", kind, width, operand.typ.width)
	}

	typ := c.BvType(width)

	return c.intern(&Expr{kind: kind, typ: typ, operands: []*Expr{operand}})
}

// Select is the ternary conditional: cond must be Bool, t and f must share
// a type, which becomes the result type.
func (c *Context) Select(cond, t, f *Expr) *Expr {
	requireExactType(KindSelect, cond, c.boolType)

	if t.typ != f.typ {
		failContract(TypeMismatch, "Select: branches have differing types %s and %s", t.typ, f.typ)
	}

	return c.intern(&Expr{kind: KindSelect, typ: t.typ, operands: []*Expr{cond, t, f}})
}

// FloatArith builds an FAdd/FSub/FMul/FDiv node; both operands must share a
// Float type, which becomes the result type.
func (c *Context) FloatArith(kind Kind, a, b *Expr, round RoundingMode) *Expr {
	switch kind {
	case KindFAdd, KindFSub, KindFMul, KindFDiv:
	default:
		failContract(ArityMismatch, "FloatArith does not accept %s", kind)
	}

	t := requireSameType(kind, []*Expr{a, b})
	requireKind(kind, t, TypeFloat)

	return c.intern(&Expr{kind: kind, typ: t, operands: []*Expr{a, b}, round: round})
}

// FCast converts a Float operand to a different Float variant.
func (c *Context) FCast(operand *Expr, variant FloatVariant, round RoundingMode) *Expr {
	requireKind(KindFCast, operand.typ, TypeFloat)

	typ := c.FloatType(variant)

	return c.intern(&Expr{kind: KindFCast, typ: typ, operands: []*Expr{operand}, round: round})
}

// SignedToFp converts a signed-interpreted Bv operand to Float(variant).
func (c *Context) SignedToFp(operand *Expr, variant FloatVariant, round RoundingMode) *Expr {
	return c.bvToFp(KindSignedToFp, operand, variant, round)
}

// UnsignedToFp converts an unsigned-interpreted Bv operand to
// Float(variant).
func (c *Context) UnsignedToFp(operand *Expr, variant FloatVariant, round RoundingMode) *Expr {
	return c.bvToFp(KindUnsignedToFp, operand, variant, round)
}

func (c *Context) bvToFp(kind Kind, operand *Expr, variant FloatVariant, round RoundingMode) *Expr {
	requireKind(kind, operand.typ, TypeBv)

	typ := c.FloatType(variant)

	return c.intern(&Expr{kind: kind, typ: typ, operands: []*Expr{operand}, round: round})
}

// FpToSigned converts a Float operand to a signed-interpreted Bv(width).
func (c *Context) FpToSigned(operand *Expr, width uint32, round RoundingMode) *Expr {
	return c.fpToBv(KindFpToSigned, operand, width, round)
}

// FpToUnsigned converts a Float operand to an unsigned-interpreted
// Bv(width).
func (c *Context) FpToUnsigned(operand *Expr, width uint32, round RoundingMode) *Expr {
	return c.fpToBv(KindFpToUnsigned, operand, width, round)
}

func (c *Context) fpToBv(kind Kind, operand *Expr, width uint32, round RoundingMode) *Expr {
	requireKind(kind, operand.typ, TypeFloat)

	typ := c.BvType(width)

	return c.intern(&Expr{kind: kind, typ: typ, operands: []*Expr{operand}, round: round})
}

func requireArity(kind Kind, operands []*Expr, n int) {
	if len(operands) != n {
		failContract(ArityMismatch, "%s requires %d operand(s), got %d", kind, n, len(operands))
	}
}

func requireKind(kind Kind, t *Type, want TypeKind) {
	if t == nil || t.kind != want {
		failContract(TypeMismatch, "%s requires a %s operand, got %s", kind, want, t)
	}
}

func requireExactType(kind Kind, e *Expr, want *Type) {
	if e.typ != want {
		failContract(TypeMismatch, "%s requires type %s, got %s", kind, want, e.typ)
	}
}

// requireSameType asserts all operands share one type and returns it.
func requireSameType(kind Kind, operands []*Expr) *Type {
	t := operands[0].typ

	for _, op := range operands[1:] {
		if op.typ != t {
			failContract(TypeMismatch, "%s: operands have differing types %s and %s", kind, t, op.typ)
		}
	}

	return t
}

// requireOneOf asserts t is either the given singleton type or satisfies
// the predicate (used for Int-or-Bv polymorphic arithmetic).
func requireOneOf(kind Kind, t *Type, singleton *Type, pred func(*Type) bool) {
	if t == singleton || pred(t) {
		return
	}

	failContract(TypeMismatch, "%s requires Int or Bv, got %s", kind, t)
}

func isBv(t *Type) bool { return t.kind == TypeBv }
