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
	"math/big"
	"math/bits"
)

// Evaluator reduces a sub-DAG to a literal under a Valuation. It never
// panics: every failure mode is a typed *EvaluationError. A fresh Evaluator
// should be used per Eval call tree that wants its own memoization scope,
// though reusing one across calls sharing a Valuation is safe and only
// improves cache hit rate.
type Evaluator struct {
	ctx    *Context
	val    *Valuation
	strict bool
	memo   map[*Expr]*Expr
}

// NewEvaluator constructs an Evaluator over ctx and val. When strict is
// true, referencing a Variable absent from val fails with
// EvalUndefinedVariable instead of silently producing Undef.
func NewEvaluator(ctx *Context, val *Valuation, strict bool) *Evaluator {
	return &Evaluator{ctx: ctx, val: val, strict: strict, memo: make(map[*Expr]*Expr)}
}

// Eval reduces e to a literal (or to Undef, or to e itself for nodes the
// evaluator declines to reduce) under the Evaluator's Valuation.
func (ev *Evaluator) Eval(e *Expr) (*Expr, error) {
	if cached, ok := ev.memo[e]; ok {
		return cached, nil
	}

	result, err := ev.eval(e)
	if err != nil {
		return nil, err
	}

	ev.memo[e] = result

	return result, nil
}

//nolint:cyclop
func (ev *Evaluator) eval(e *Expr) (*Expr, error) {
	switch e.kind {
	case KindVarRef:
		if lit, ok := ev.val.Lookup(e.variable); ok {
			return lit, nil
		}

		if ev.strict {
			return nil, newEvalError(EvalUndefinedVariable, "variable %q has no assignment", e.variable.Name())
		}

		return ev.ctx.Undef(e.typ), nil

	case KindBoolLit, KindIntLit, KindBvLit, KindFloatLit, KindRealLit:
		return e, nil

	case KindUndef:
		return nil, newEvalError(EvalUndef, "Undef encountered at a required-definite position")

	case KindNot:
		v, err := ev.evalBool(e.operands[0])
		if err != nil {
			return nil, err
		}

		return ev.ctx.BoolLit(!v), nil

	case KindAnd, KindOr:
		return ev.evalAndOr(e)

	case KindXor:
		a, err := ev.evalBool(e.operands[0])
		if err != nil {
			return nil, err
		}

		b, err := ev.evalBool(e.operands[1])
		if err != nil {
			return nil, err
		}

		return ev.ctx.BoolLit(a != b), nil

	case KindImply:
		a, err := ev.evalBool(e.operands[0])
		if err != nil {
			return nil, err
		}

		if !a {
			return ev.ctx.BoolLit(true), nil
		}

		b, err := ev.evalBool(e.operands[1])
		if err != nil {
			return nil, err
		}

		return ev.ctx.BoolLit(b), nil

	case KindSelect:
		cond, err := ev.evalBool(e.operands[0])
		if err != nil {
			return nil, err
		}

		if cond {
			return ev.Eval(e.operands[1])
		}

		return ev.Eval(e.operands[2])

	case KindEq, KindNotEq:
		return ev.evalEq(e)

	case KindAdd, KindSub, KindMul:
		if e.typ.kind == TypeBv {
			return ev.evalBvOp(e)
		}

		return ev.evalIntOp(e)

	case KindDiv, KindMod, KindRem, KindLt, KindLtEq, KindGt, KindGtEq:
		return ev.evalIntOp(e)

	case KindBvSDiv, KindBvUDiv, KindBvSRem, KindBvURem,
		KindShl, KindLShr, KindAShr, KindBvAnd, KindBvOr, KindBvXor,
		KindBvSLt, KindBvSLtEq, KindBvSGt, KindBvSGtEq,
		KindBvULt, KindBvULtEq, KindBvUGt, KindBvUGtEq:
		return ev.evalBvOp(e)

	case KindZExt, KindSExt, KindExtract:
		return ev.evalBvCast(e)

	default:
		// Floating-point and array operations are permitted to stay
		// symbolic: the evaluator is not required to reduce them.
		return e, nil
	}
}

func (ev *Evaluator) evalBool(e *Expr) (bool, error) {
	r, err := ev.Eval(e)
	if err != nil {
		return false, err
	}

	if r.kind != KindBoolLit {
		return false, newEvalError(EvalNonLiteralOperand, "expected Bool literal, got %s", r)
	}

	return r.boolVal, nil
}

func (ev *Evaluator) evalInt(e *Expr) (*big.Int, error) {
	r, err := ev.Eval(e)
	if err != nil {
		return nil, err
	}

	if r.kind != KindIntLit {
		return nil, newEvalError(EvalNonLiteralOperand, "expected Int literal, got %s", r)
	}

	return r.intVal, nil
}

func (ev *Evaluator) evalAndOr(e *Expr) (*Expr, error) {
	identity := e.kind == KindAnd

	result := identity

	for _, op := range e.operands {
		v, err := ev.evalBool(op)
		if err != nil {
			return nil, err
		}

		if e.kind == KindAnd {
			result = result && v
		} else {
			result = result || v
		}
	}

	return ev.ctx.BoolLit(result), nil
}

func (ev *Evaluator) evalEq(e *Expr) (*Expr, error) {
	a, err := ev.Eval(e.operands[0])
	if err != nil {
		return nil, err
	}

	b, err := ev.Eval(e.operands[1])
	if err != nil {
		return nil, err
	}

	eq := literalEquals(a, b)
	if e.kind == KindNotEq {
		eq = !eq
	}

	return ev.ctx.BoolLit(eq), nil
}

// literalEquals compares two reduced literals by value, including Bv
// width, per spec.md §4.2's "structural value equality on literals".
func literalEquals(a, b *Expr) bool {
	if a.kind != b.kind || a.typ != b.typ {
		return false
	}

	switch a.kind {
	case KindBoolLit:
		return a.boolVal == b.boolVal
	case KindIntLit:
		return a.intVal.Cmp(b.intVal) == 0
	case KindBvLit:
		return a.bv.Equal(b.bv)
	case KindRealLit:
		return a.realVal.Cmp(b.realVal) == 0
	case KindFloatLit:
		return a.floatBits.Cmp(b.floatBits) == 0
	default:
		return a == b
	}
}

//nolint:cyclop
func (ev *Evaluator) evalIntOp(e *Expr) (*Expr, error) {
	a, err := ev.evalInt(e.operands[0])
	if err != nil {
		return nil, err
	}

	b, err := ev.evalInt(e.operands[1])
	if err != nil {
		return nil, err
	}

	switch e.kind {
	case KindAdd:
		return ev.ctx.IntLit(new(big.Int).Add(a, b)), nil
	case KindSub:
		return ev.ctx.IntLit(new(big.Int).Sub(a, b)), nil
	case KindMul:
		return ev.ctx.IntLit(new(big.Int).Mul(a, b)), nil
	case KindDiv:
		if b.Sign() == 0 {
			return nil, newEvalError(EvalDivByZero, "Div by zero")
		}

		q := new(big.Int)
		q.Quo(a, b)

		return ev.ctx.IntLit(q), nil
	case KindMod:
		// Floored modulo: result takes the sign of the divisor.
		if b.Sign() == 0 {
			return nil, newEvalError(EvalDivByZero, "Mod by zero")
		}

		m := new(big.Int).Mod(a, b)
		if m.Sign() != 0 && (m.Sign() < 0) != (b.Sign() < 0) {
			m.Add(m, b)
		}

		return ev.ctx.IntLit(m), nil
	case KindRem:
		// Truncated remainder: result takes the sign of the dividend,
		// matching Go's native %.
		if b.Sign() == 0 {
			return nil, newEvalError(EvalDivByZero, "Rem by zero")
		}

		r := new(big.Int)
		r.Rem(a, b)

		return ev.ctx.IntLit(r), nil
	case KindLt:
		return ev.ctx.BoolLit(a.Cmp(b) < 0), nil
	case KindLtEq:
		return ev.ctx.BoolLit(a.Cmp(b) <= 0), nil
	case KindGt:
		return ev.ctx.BoolLit(a.Cmp(b) > 0), nil
	case KindGtEq:
		return ev.ctx.BoolLit(a.Cmp(b) >= 0), nil
	default:
		return nil, newEvalError(EvalUnsupported, "%s is not an Int op", e.kind)
	}
}

//nolint:cyclop
func (ev *Evaluator) evalBvOp(e *Expr) (*Expr, error) {
	width := e.operands[0].typ.width

	a, err := ev.evalBvAsInt(e.operands[0])
	if err != nil {
		return nil, err
	}

	b, err := ev.evalBvAsInt(e.operands[1])
	if err != nil {
		return nil, err
	}

	mod := bvModulus(width)

	switch e.kind {
	case KindAdd:
		return ev.ctx.BvLit(width, new(big.Int).Add(a, b)), nil
	case KindSub:
		return ev.ctx.BvLit(width, new(big.Int).Sub(a, b)), nil
	case KindMul:
		return ev.ctx.BvLit(width, new(big.Int).Mul(a, b)), nil
	case KindBvAnd:
		return ev.ctx.BvLit(width, new(big.Int).And(a, b)), nil
	case KindBvOr:
		return ev.ctx.BvLit(width, new(big.Int).Or(a, b)), nil
	case KindBvXor:
		return ev.ctx.BvLit(width, new(big.Int).Xor(a, b)), nil
	case KindShl:
		shift := shiftAmount(b, width)
		return ev.ctx.BvLit(width, new(big.Int).Lsh(a, shift)), nil
	case KindLShr:
		shift := shiftAmount(b, width)
		return ev.ctx.BvLit(width, new(big.Int).Rsh(a, shift)), nil
	case KindAShr:
		shift := shiftAmount(b, width)
		signed := toSigned(a, width)
		signed.Rsh(signed, shift)

		return ev.ctx.BvLit(width, signed), nil
	case KindBvUDiv:
		if b.Sign() == 0 {
			return nil, newEvalError(EvalDivByZero, "BvUDiv by zero")
		}

		return ev.ctx.BvLit(width, new(big.Int).Quo(a, b)), nil
	case KindBvURem:
		if b.Sign() == 0 {
			return nil, newEvalError(EvalDivByZero, "BvURem by zero")
		}

		return ev.ctx.BvLit(width, new(big.Int).Rem(a, b)), nil
	case KindBvSDiv:
		sa, sb := toSigned(a, width), toSigned(b, width)
		if sb.Sign() == 0 {
			return nil, newEvalError(EvalDivByZero, "BvSDiv by zero")
		}

		q := new(big.Int).Quo(sa, sb)

		return ev.ctx.BvLit(width, new(big.Int).Mod(q, mod)), nil
	case KindBvSRem:
		sa, sb := toSigned(a, width), toSigned(b, width)
		if sb.Sign() == 0 {
			return nil, newEvalError(EvalDivByZero, "BvSRem by zero")
		}

		r := new(big.Int).Rem(sa, sb)

		return ev.ctx.BvLit(width, new(big.Int).Mod(r, mod)), nil
	case KindBvULt:
		return ev.ctx.BoolLit(a.Cmp(b) < 0), nil
	case KindBvULtEq:
		return ev.ctx.BoolLit(a.Cmp(b) <= 0), nil
	case KindBvUGt:
		return ev.ctx.BoolLit(a.Cmp(b) > 0), nil
	case KindBvUGtEq:
		return ev.ctx.BoolLit(a.Cmp(b) >= 0), nil
	case KindBvSLt:
		return ev.ctx.BoolLit(toSigned(a, width).Cmp(toSigned(b, width)) < 0), nil
	case KindBvSLtEq:
		return ev.ctx.BoolLit(toSigned(a, width).Cmp(toSigned(b, width)) <= 0), nil
	case KindBvSGt:
		return ev.ctx.BoolLit(toSigned(a, width).Cmp(toSigned(b, width)) > 0), nil
	case KindBvSGtEq:
		return ev.ctx.BoolLit(toSigned(a, width).Cmp(toSigned(b, width)) >= 0), nil
	default:
		return nil, newEvalError(EvalUnsupported, "%s is not a Bv op", e.kind)
	}
}

func (ev *Evaluator) evalBvCast(e *Expr) (*Expr, error) {
	src := e.operands[0]

	a, err := ev.evalBvAsInt(src)
	if err != nil {
		return nil, err
	}

	switch e.kind {
	case KindZExt:
		return ev.ctx.BvLit(e.typ.width, a), nil
	case KindSExt:
		return ev.ctx.BvLit(e.typ.width, toSigned(a, src.typ.width)), nil
	case KindExtract:
		shifted := new(big.Int).Rsh(a, uint(e.extractLo))
		return ev.ctx.BvLit(e.typ.width, shifted), nil
	default:
		return nil, newEvalError(EvalUnsupported, "%s is not a Bv cast", e.kind)
	}
}

func (ev *Evaluator) evalBvAsInt(e *Expr) (*big.Int, error) {
	r, err := ev.Eval(e)
	if err != nil {
		return nil, err
	}

	if r.kind != KindBvLit {
		return nil, newEvalError(EvalNonLiteralOperand, "expected Bv literal, got %s", r)
	}

	v := new(big.Int)
	for i, ok := r.bv.NextSet(0); ok; i, ok = r.bv.NextSet(i + 1) {
		v.SetBit(v, int(i), 1)
	}

	return v, nil
}

func bvModulus(width uint32) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(width))
}

// shiftAmount uses only the low ceil(log2(width)) bits of the shift
// operand, per spec.md §4.2. For a non-power-of-two width the masked amount
// can still reach width; such a shift moves every bit out.
func shiftAmount(b *big.Int, width uint32) uint {
	n := uint(bits.Len32(width - 1))
	low := new(big.Int).And(b, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), n), big.NewInt(1)))

	if low.Uint64() >= uint64(width) {
		return uint(width)
	}

	return uint(low.Uint64())
}

// toSigned reinterprets an unsigned width-bit value as two's-complement
// signed.
func toSigned(v *big.Int, width uint32) *big.Int {
	signed := new(big.Int).Set(v)

	if v.Bit(int(width-1)) == 1 {
		signed.Sub(signed, bvModulus(width))
	}

	return signed
}
