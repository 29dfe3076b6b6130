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

// Package builder provides the expression construction interface clients
// should depend on rather than calling Context directly: one constructor
// per expression Kind, available in a trivial flavour (no rewriting) and a
// folding flavour (applies the algebraic simplification rules of
// FoldingExprBuilder).
package builder

import (
	"math/big"

	"github.com/gazer-verify/gazer/pkg/core"
)

// Builder is the construction interface for the expression DAG. Both
// TrivialBuilder and FoldingBuilder satisfy it; clients should depend only
// on this interface so they can be pointed at either implementation.
type Builder interface {
	BoolLit(v bool) *core.Expr
	IntLit(v *big.Int) *core.Expr
	BvLit(width uint32, v *big.Int) *core.Expr
	RealLit(v *big.Rat) *core.Expr
	FloatLit(variant core.FloatVariant, bits *big.Int) *core.Expr
	Undef(typ *core.Type) *core.Expr
	VarRef(v *core.Variable) *core.Expr

	ZExt(operand *core.Expr, width uint32) *core.Expr
	SExt(operand *core.Expr, width uint32) *core.Expr
	Extract(operand *core.Expr, hi, lo uint32) *core.Expr

	Add(a, b *core.Expr) *core.Expr
	Sub(a, b *core.Expr) *core.Expr
	Mul(a, b *core.Expr) *core.Expr
	Div(a, b *core.Expr) *core.Expr
	Mod(a, b *core.Expr) *core.Expr
	Rem(a, b *core.Expr) *core.Expr
	BvSDiv(a, b *core.Expr) *core.Expr
	BvUDiv(a, b *core.Expr) *core.Expr
	BvSRem(a, b *core.Expr) *core.Expr
	BvURem(a, b *core.Expr) *core.Expr
	Shl(a, b *core.Expr) *core.Expr
	LShr(a, b *core.Expr) *core.Expr
	AShr(a, b *core.Expr) *core.Expr
	BvAnd(a, b *core.Expr) *core.Expr
	BvOr(a, b *core.Expr) *core.Expr
	BvXor(a, b *core.Expr) *core.Expr

	Not(a *core.Expr) *core.Expr
	And(operands ...*core.Expr) *core.Expr
	Or(operands ...*core.Expr) *core.Expr
	Xor(a, b *core.Expr) *core.Expr
	Imply(a, b *core.Expr) *core.Expr

	Eq(a, b *core.Expr) *core.Expr
	NotEq(a, b *core.Expr) *core.Expr
	Lt(a, b *core.Expr) *core.Expr
	LtEq(a, b *core.Expr) *core.Expr
	Gt(a, b *core.Expr) *core.Expr
	GtEq(a, b *core.Expr) *core.Expr
	BvSLt(a, b *core.Expr) *core.Expr
	BvSLtEq(a, b *core.Expr) *core.Expr
	BvSGt(a, b *core.Expr) *core.Expr
	BvSGtEq(a, b *core.Expr) *core.Expr
	BvULt(a, b *core.Expr) *core.Expr
	BvULtEq(a, b *core.Expr) *core.Expr
	BvUGt(a, b *core.Expr) *core.Expr
	BvUGtEq(a, b *core.Expr) *core.Expr

	FAdd(a, b *core.Expr, round core.RoundingMode) *core.Expr
	FSub(a, b *core.Expr, round core.RoundingMode) *core.Expr
	FMul(a, b *core.Expr, round core.RoundingMode) *core.Expr
	FDiv(a, b *core.Expr, round core.RoundingMode) *core.Expr
	FIsNan(a *core.Expr) *core.Expr
	FIsInf(a *core.Expr) *core.Expr
	FCast(a *core.Expr, variant core.FloatVariant, round core.RoundingMode) *core.Expr
	SignedToFp(a *core.Expr, variant core.FloatVariant, round core.RoundingMode) *core.Expr
	UnsignedToFp(a *core.Expr, variant core.FloatVariant, round core.RoundingMode) *core.Expr
	FpToSigned(a *core.Expr, width uint32, round core.RoundingMode) *core.Expr
	FpToUnsigned(a *core.Expr, width uint32, round core.RoundingMode) *core.Expr
	FEq(a, b *core.Expr) *core.Expr
	FGt(a, b *core.Expr) *core.Expr
	FGtEq(a, b *core.Expr) *core.Expr
	FLt(a, b *core.Expr) *core.Expr
	FLtEq(a, b *core.Expr) *core.Expr

	Select(cond, t, f *core.Expr) *core.Expr

	ArrayRead(arr, idx *core.Expr) *core.Expr
	ArrayWrite(arr, idx, val *core.Expr) *core.Expr
}
