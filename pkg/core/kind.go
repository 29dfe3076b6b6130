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

// Kind identifies what an Expr node computes. Gazer models the whole
// expression algebra as a single tagged-variant struct rather than one Go
// type per kind; the builder and the evaluator both dispatch on Kind via an
// exhaustive switch.
type Kind uint8

const (
	// KindVarRef is a reference to a Variable's canonical leaf node.
	KindVarRef Kind = iota
	// KindUndef represents an unconstrained value of some type.
	KindUndef
	// KindBoolLit is a boolean literal.
	KindBoolLit
	// KindIntLit is a mathematical integer literal.
	KindIntLit
	// KindBvLit is a fixed-width bitvector literal.
	KindBvLit
	// KindFloatLit is an IEEE floating-point literal.
	KindFloatLit
	// KindRealLit is a rational literal.
	KindRealLit

	// KindZExt zero-extends a bitvector.
	KindZExt
	// KindSExt sign-extends a bitvector.
	KindSExt
	// KindExtract extracts a bitslice of a bitvector.
	KindExtract

	// KindAdd is addition, polymorphic over Int and Bv.
	KindAdd
	// KindSub is subtraction, polymorphic over Int and Bv.
	KindSub
	// KindMul is multiplication, polymorphic over Int and Bv.
	KindMul
	// KindDiv is Int-only division, truncating toward zero.
	KindDiv
	// KindMod is Int-only floored modulo.
	KindMod
	// KindRem is Int-only truncated remainder.
	KindRem
	// KindBvSDiv is Bv-only signed division.
	KindBvSDiv
	// KindBvUDiv is Bv-only unsigned division.
	KindBvUDiv
	// KindBvSRem is Bv-only signed remainder.
	KindBvSRem
	// KindBvURem is Bv-only unsigned remainder.
	KindBvURem
	// KindShl is a left shift.
	KindShl
	// KindLShr is a logical (unsigned) right shift.
	KindLShr
	// KindAShr is an arithmetic (signed) right shift.
	KindAShr
	// KindBvAnd is bitwise AND.
	KindBvAnd
	// KindBvOr is bitwise OR.
	KindBvOr
	// KindBvXor is bitwise XOR.
	KindBvXor

	// KindNot is boolean negation.
	KindNot
	// KindAnd is variadic boolean conjunction (arity >= 2 once built).
	KindAnd
	// KindOr is variadic boolean disjunction (arity >= 2 once built).
	KindOr
	// KindXor is boolean exclusive-or.
	KindXor
	// KindImply is boolean implication.
	KindImply

	// KindEq is polymorphic structural equality.
	KindEq
	// KindNotEq is polymorphic structural inequality.
	KindNotEq
	// KindLt is Int-only less-than.
	KindLt
	// KindLtEq is Int-only less-than-or-equal.
	KindLtEq
	// KindGt is Int-only greater-than.
	KindGt
	// KindGtEq is Int-only greater-than-or-equal.
	KindGtEq
	// KindBvSLt is Bv-only signed less-than.
	KindBvSLt
	// KindBvSLtEq is Bv-only signed less-than-or-equal.
	KindBvSLtEq
	// KindBvSGt is Bv-only signed greater-than.
	KindBvSGt
	// KindBvSGtEq is Bv-only signed greater-than-or-equal.
	KindBvSGtEq
	// KindBvULt is Bv-only unsigned less-than.
	KindBvULt
	// KindBvULtEq is Bv-only unsigned less-than-or-equal.
	KindBvULtEq
	// KindBvUGt is Bv-only unsigned greater-than.
	KindBvUGt
	// KindBvUGtEq is Bv-only unsigned greater-than-or-equal.
	KindBvUGtEq

	// KindFAdd is floating-point addition.
	KindFAdd
	// KindFSub is floating-point subtraction.
	KindFSub
	// KindFMul is floating-point multiplication.
	KindFMul
	// KindFDiv is floating-point division.
	KindFDiv
	// KindFIsNan tests for NaN.
	KindFIsNan
	// KindFIsInf tests for infinity.
	KindFIsInf
	// KindFCast converts between floating-point variants.
	KindFCast
	// KindSignedToFp converts a signed bitvector to floating-point.
	KindSignedToFp
	// KindUnsignedToFp converts an unsigned bitvector to floating-point.
	KindUnsignedToFp
	// KindFpToSigned converts floating-point to a signed bitvector.
	KindFpToSigned
	// KindFpToUnsigned converts floating-point to an unsigned bitvector.
	KindFpToUnsigned
	// KindFEq is floating-point equality.
	KindFEq
	// KindFGt is floating-point greater-than.
	KindFGt
	// KindFGtEq is floating-point greater-than-or-equal.
	KindFGtEq
	// KindFLt is floating-point less-than.
	KindFLt
	// KindFLtEq is floating-point less-than-or-equal.
	KindFLtEq

	// KindSelect is the ternary conditional.
	KindSelect

	// KindArrayRead reads an array at an index.
	KindArrayRead
	// KindArrayWrite writes an array at an index.
	KindArrayWrite
)

//nolint:cyclop
func (k Kind) String() string {
	switch k {
	case KindVarRef:
		return "VarRef"
	case KindUndef:
		return "Undef"
	case KindBoolLit:
		return "BoolLit"
	case KindIntLit:
		return "IntLit"
	case KindBvLit:
		return "BvLit"
	case KindFloatLit:
		return "FloatLit"
	case KindRealLit:
		return "RealLit"
	case KindZExt:
		return "ZExt"
	case KindSExt:
		return "SExt"
	case KindExtract:
		return "Extract"
	case KindAdd:
		return "Add"
	case KindSub:
		return "Sub"
	case KindMul:
		return "Mul"
	case KindDiv:
		return "Div"
	case KindMod:
		return "Mod"
	case KindRem:
		return "Rem"
	case KindBvSDiv:
		return "BvSDiv"
	case KindBvUDiv:
		return "BvUDiv"
	case KindBvSRem:
		return "BvSRem"
	case KindBvURem:
		return "BvURem"
	case KindShl:
		return "Shl"
	case KindLShr:
		return "LShr"
	case KindAShr:
		return "AShr"
	case KindBvAnd:
		return "BvAnd"
	case KindBvOr:
		return "BvOr"
	case KindBvXor:
		return "BvXor"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindXor:
		return "Xor"
	case KindImply:
		return "Imply"
	case KindEq:
		return "Eq"
	case KindNotEq:
		return "NotEq"
	case KindLt:
		return "Lt"
	case KindLtEq:
		return "LtEq"
	case KindGt:
		return "Gt"
	case KindGtEq:
		return "GtEq"
	case KindBvSLt:
		return "BvSLt"
	case KindBvSLtEq:
		return "BvSLtEq"
	case KindBvSGt:
		return "BvSGt"
	case KindBvSGtEq:
		return "BvSGtEq"
	case KindBvULt:
		return "BvULt"
	case KindBvULtEq:
		return "BvULtEq"
	case KindBvUGt:
		return "BvUGt"
	case KindBvUGtEq:
		return "BvUGtEq"
	case KindFAdd:
		return "FAdd"
	case KindFSub:
		return "FSub"
	case KindFMul:
		return "FMul"
	case KindFDiv:
		return "FDiv"
	case KindFIsNan:
		return "FIsNan"
	case KindFIsInf:
		return "FIsInf"
	case KindFCast:
		return "FCast"
	case KindSignedToFp:
		return "SignedToFp"
	case KindUnsignedToFp:
		return "UnsignedToFp"
	case KindFpToSigned:
		return "FpToSigned"
	case KindFpToUnsigned:
		return "FpToUnsigned"
	case KindFEq:
		return "FEq"
	case KindFGt:
		return "FGt"
	case KindFGtEq:
		return "FGtEq"
	case KindFLt:
		return "FLt"
	case KindFLtEq:
		return "FLtEq"
	case KindSelect:
		return "Select"
	case KindArrayRead:
		return "ArrayRead"
	case KindArrayWrite:
		return "ArrayWrite"
	default:
		return "UnknownKind"
	}
}

// IsLeaf identifies kinds which never carry operands.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindVarRef, KindUndef, KindBoolLit, KindIntLit, KindBvLit, KindFloatLit, KindRealLit:
		return true
	default:
		return false
	}
}

// RoundingMode mirrors llvm::APFloat::roundingMode: the handful of IEEE-754
// rounding attributes a float operation or cast may be parametrized by.
type RoundingMode uint8

const (
	// RoundNearestEven rounds to the nearest value, ties to even.
	RoundNearestEven RoundingMode = iota
	// RoundNearestAway rounds to the nearest value, ties away from zero.
	RoundNearestAway
	// RoundTowardPositive rounds toward positive infinity.
	RoundTowardPositive
	// RoundTowardNegative rounds toward negative infinity.
	RoundTowardNegative
	// RoundTowardZero rounds toward zero.
	RoundTowardZero
)
