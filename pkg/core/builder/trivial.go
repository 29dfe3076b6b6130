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
package builder

import (
	"math/big"

	"github.com/gazer-verify/gazer/pkg/core"
)

// TrivialBuilder constructs nodes by delegating straight to a Context's
// interning methods: no rewriting, no constant folding.
type TrivialBuilder struct {
	Ctx *core.Context
}

// NewTrivialBuilder wraps ctx in a non-folding Builder.
func NewTrivialBuilder(ctx *core.Context) *TrivialBuilder {
	return &TrivialBuilder{Ctx: ctx}
}

func (b *TrivialBuilder) BoolLit(v bool) *core.Expr { return b.Ctx.BoolLit(v) }
func (b *TrivialBuilder) IntLit(v *big.Int) *core.Expr { return b.Ctx.IntLit(v) }
func (b *TrivialBuilder) BvLit(width uint32, v *big.Int) *core.Expr { return b.Ctx.BvLit(width, v) }
func (b *TrivialBuilder) RealLit(v *big.Rat) *core.Expr { return b.Ctx.RealLit(v) }

func (b *TrivialBuilder) FloatLit(variant core.FloatVariant, bits *big.Int) *core.Expr {
	return b.Ctx.FloatLit(variant, bits)
}

func (b *TrivialBuilder) Undef(typ *core.Type) *core.Expr    { return b.Ctx.Undef(typ) }
func (b *TrivialBuilder) VarRef(v *core.Variable) *core.Expr { return b.Ctx.VarRef(v) }

func (b *TrivialBuilder) ZExt(operand *core.Expr, width uint32) *core.Expr {
	return b.Ctx.ZExt(operand, width)
}

func (b *TrivialBuilder) SExt(operand *core.Expr, width uint32) *core.Expr {
	return b.Ctx.SExt(operand, width)
}

func (b *TrivialBuilder) Extract(operand *core.Expr, hi, lo uint32) *core.Expr {
	return b.Ctx.Extract(operand, hi, lo)
}

func (b *TrivialBuilder) Add(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindAdd, a, c) }
func (b *TrivialBuilder) Sub(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindSub, a, c) }
func (b *TrivialBuilder) Mul(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindMul, a, c) }
func (b *TrivialBuilder) Div(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindDiv, a, c) }
func (b *TrivialBuilder) Mod(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindMod, a, c) }
func (b *TrivialBuilder) Rem(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindRem, a, c) }

func (b *TrivialBuilder) BvSDiv(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvSDiv, a, c)
}

func (b *TrivialBuilder) BvUDiv(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvUDiv, a, c)
}

func (b *TrivialBuilder) BvSRem(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvSRem, a, c)
}

func (b *TrivialBuilder) BvURem(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvURem, a, c)
}

func (b *TrivialBuilder) Shl(a, c *core.Expr) *core.Expr  { return b.Ctx.InternExpr(core.KindShl, a, c) }
func (b *TrivialBuilder) LShr(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindLShr, a, c) }
func (b *TrivialBuilder) AShr(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindAShr, a, c) }

func (b *TrivialBuilder) BvAnd(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvAnd, a, c)
}

func (b *TrivialBuilder) BvOr(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvOr, a, c)
}

func (b *TrivialBuilder) BvXor(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvXor, a, c)
}

func (b *TrivialBuilder) Not(a *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindNot, a) }

func (b *TrivialBuilder) And(operands ...*core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindAnd, operands...)
}

func (b *TrivialBuilder) Or(operands ...*core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindOr, operands...)
}

func (b *TrivialBuilder) Xor(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindXor, a, c) }

func (b *TrivialBuilder) Imply(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindImply, a, c)
}

func (b *TrivialBuilder) Eq(a, c *core.Expr) *core.Expr  { return b.Ctx.InternExpr(core.KindEq, a, c) }
func (b *TrivialBuilder) NotEq(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindNotEq, a, c)
}
func (b *TrivialBuilder) Lt(a, c *core.Expr) *core.Expr   { return b.Ctx.InternExpr(core.KindLt, a, c) }
func (b *TrivialBuilder) LtEq(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindLtEq, a, c) }
func (b *TrivialBuilder) Gt(a, c *core.Expr) *core.Expr   { return b.Ctx.InternExpr(core.KindGt, a, c) }
func (b *TrivialBuilder) GtEq(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindGtEq, a, c) }

func (b *TrivialBuilder) BvSLt(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvSLt, a, c)
}

func (b *TrivialBuilder) BvSLtEq(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvSLtEq, a, c)
}

func (b *TrivialBuilder) BvSGt(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvSGt, a, c)
}

func (b *TrivialBuilder) BvSGtEq(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvSGtEq, a, c)
}

func (b *TrivialBuilder) BvULt(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvULt, a, c)
}

func (b *TrivialBuilder) BvULtEq(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvULtEq, a, c)
}

func (b *TrivialBuilder) BvUGt(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvUGt, a, c)
}

func (b *TrivialBuilder) BvUGtEq(a, c *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindBvUGtEq, a, c)
}

func (b *TrivialBuilder) FAdd(a, c *core.Expr, round core.RoundingMode) *core.Expr {
	return b.Ctx.FloatArith(core.KindFAdd, a, c, round)
}

func (b *TrivialBuilder) FSub(a, c *core.Expr, round core.RoundingMode) *core.Expr {
	return b.Ctx.FloatArith(core.KindFSub, a, c, round)
}

func (b *TrivialBuilder) FMul(a, c *core.Expr, round core.RoundingMode) *core.Expr {
	return b.Ctx.FloatArith(core.KindFMul, a, c, round)
}

func (b *TrivialBuilder) FDiv(a, c *core.Expr, round core.RoundingMode) *core.Expr {
	return b.Ctx.FloatArith(core.KindFDiv, a, c, round)
}

func (b *TrivialBuilder) FIsNan(a *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindFIsNan, a) }
func (b *TrivialBuilder) FIsInf(a *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindFIsInf, a) }

func (b *TrivialBuilder) FCast(a *core.Expr, variant core.FloatVariant, round core.RoundingMode) *core.Expr {
	return b.Ctx.FCast(a, variant, round)
}

func (b *TrivialBuilder) SignedToFp(a *core.Expr, variant core.FloatVariant, round core.RoundingMode) *core.Expr {
	return b.Ctx.SignedToFp(a, variant, round)
}

func (b *TrivialBuilder) UnsignedToFp(a *core.Expr, variant core.FloatVariant, round core.RoundingMode) *core.Expr {
	return b.Ctx.UnsignedToFp(a, variant, round)
}

func (b *TrivialBuilder) FpToSigned(a *core.Expr, width uint32, round core.RoundingMode) *core.Expr {
	return b.Ctx.FpToSigned(a, width, round)
}

func (b *TrivialBuilder) FpToUnsigned(a *core.Expr, width uint32, round core.RoundingMode) *core.Expr {
	return b.Ctx.FpToUnsigned(a, width, round)
}

func (b *TrivialBuilder) FEq(a, c *core.Expr) *core.Expr   { return b.Ctx.InternExpr(core.KindFEq, a, c) }
func (b *TrivialBuilder) FGt(a, c *core.Expr) *core.Expr   { return b.Ctx.InternExpr(core.KindFGt, a, c) }
func (b *TrivialBuilder) FGtEq(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindFGtEq, a, c) }
func (b *TrivialBuilder) FLt(a, c *core.Expr) *core.Expr   { return b.Ctx.InternExpr(core.KindFLt, a, c) }
func (b *TrivialBuilder) FLtEq(a, c *core.Expr) *core.Expr { return b.Ctx.InternExpr(core.KindFLtEq, a, c) }

func (b *TrivialBuilder) Select(cond, t, f *core.Expr) *core.Expr { return b.Ctx.Select(cond, t, f) }

func (b *TrivialBuilder) ArrayRead(arr, idx *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindArrayRead, arr, idx)
}

func (b *TrivialBuilder) ArrayWrite(arr, idx, val *core.Expr) *core.Expr {
	return b.Ctx.InternExpr(core.KindArrayWrite, arr, idx, val)
}
