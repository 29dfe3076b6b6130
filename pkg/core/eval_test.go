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
	"testing"
)

func TestEvalVarRefFromValuation(t *testing.T) {
	ctx := NewContext()
	x := ctx.NewVariable("x", ctx.IntType())

	val := NewValuation()
	val.Assign(x, ctx.IntLit(big.NewInt(5)))

	ev := NewEvaluator(ctx, val, false)

	r, err := ev.Eval(ctx.VarRef(x))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.IntValue().Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("expected 5, got %s", r)
	}
}

func TestEvalVarRefMissingNonStrictYieldsUndef(t *testing.T) {
	ctx := NewContext()
	x := ctx.NewVariable("x", ctx.IntType())

	ev := NewEvaluator(ctx, NewValuation(), false)

	r, err := ev.Eval(ctx.VarRef(x))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Kind() != KindUndef {
		t.Fatalf("expected Undef, got %s", r)
	}
}

func TestEvalVarRefMissingStrictFails(t *testing.T) {
	ctx := NewContext()
	x := ctx.NewVariable("x", ctx.IntType())

	ev := NewEvaluator(ctx, NewValuation(), true)

	_, err := ev.Eval(ctx.VarRef(x))

	evalErr, ok := err.(*EvaluationError)
	if !ok || evalErr.Kind != EvalUndefinedVariable {
		t.Fatalf("expected EvalUndefinedVariable, got %v", err)
	}
}

func TestEvalIntArithmetic(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	sum := ctx.InternExpr(KindAdd, ctx.IntLit(big.NewInt(3)), ctx.IntLit(big.NewInt(4)))

	r, err := ev.Eval(sum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.IntValue().Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("expected 7, got %s", r)
	}
}

func TestEvalIntModIsFloored(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	// -7 mod 3 is 2 under floored semantics (sign of divisor).
	expr := ctx.InternExpr(KindMod, ctx.IntLit(big.NewInt(-7)), ctx.IntLit(big.NewInt(3)))

	r, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.IntValue().Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("expected 2, got %s", r)
	}
}

func TestEvalIntRemIsTruncated(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	// -7 rem 3 is -1 under truncated semantics (sign of dividend).
	expr := ctx.InternExpr(KindRem, ctx.IntLit(big.NewInt(-7)), ctx.IntLit(big.NewInt(3)))

	r, err := ev.Eval(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.IntValue().Cmp(big.NewInt(-1)) != 0 {
		t.Fatalf("expected -1, got %s", r)
	}
}

func TestEvalDivByZero(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	expr := ctx.InternExpr(KindDiv, ctx.IntLit(big.NewInt(1)), ctx.IntLit(big.NewInt(0)))

	_, err := ev.Eval(expr)

	evalErr, ok := err.(*EvaluationError)
	if !ok || evalErr.Kind != EvalDivByZero {
		t.Fatalf("expected EvalDivByZero, got %v", err)
	}
}

func TestEvalBvSignedVsUnsignedComparison(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	// 0xFF as Bv8 is -1 signed, 255 unsigned.
	allOnes := ctx.BvLit(8, big.NewInt(0xFF))
	one := ctx.BvLit(8, big.NewInt(1))

	signedLt := ctx.InternExpr(KindBvSLt, allOnes, one)

	r, err := ev.Eval(signedLt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !r.BoolValue() {
		t.Fatalf("expected 0xFF <s 1 to be true (0xFF is -1 signed)")
	}

	unsignedLt := ctx.InternExpr(KindBvULt, allOnes, one)

	r, err = ev.Eval(unsignedLt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.BoolValue() {
		t.Fatalf("expected 0xFF <u 1 to be false (255 is not < 1)")
	}
}

func TestEvalAShrSignExtends(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	negOne := ctx.BvLit(8, big.NewInt(-1)) // 0xFF
	two := ctx.BvLit(8, big.NewInt(2))

	shifted := ctx.InternExpr(KindAShr, negOne, two)

	r, err := ev.Eval(shifted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// -1 >>s 2 is still -1 (0xFF) under arithmetic shift.
	want := ctx.BvLit(8, big.NewInt(-1))
	if r != want {
		t.Fatalf("expected 0xFF, got %s", r)
	}
}

func TestEvalSelect(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	sel := ctx.Select(ctx.BoolLit(true), ctx.IntLit(big.NewInt(1)), ctx.IntLit(big.NewInt(2)))

	r, err := ev.Eval(sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.IntValue().Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("expected 1, got %s", r)
	}
}

func TestEvalEqStructural(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	a := ctx.BvLit(8, big.NewInt(1))

	eq := ctx.InternExpr(KindEq, a, a)

	r, err := ev.Eval(eq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !r.BoolValue() {
		t.Fatalf("expected a == a to be true")
	}
}

func TestEvalUndefAtRequiredPositionFails(t *testing.T) {
	ctx := NewContext()
	ev := NewEvaluator(ctx, NewValuation(), false)

	u := ctx.Undef(ctx.IntType())
	expr := ctx.InternExpr(KindAdd, u, ctx.IntLit(big.NewInt(1)))

	_, err := ev.Eval(expr)

	evalErr, ok := err.(*EvaluationError)
	if !ok || evalErr.Kind != EvalUndef {
		t.Fatalf("expected EvalUndef, got %v", err)
	}
}
