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
	"testing"

	"github.com/gazer-verify/gazer/pkg/core"
)

func TestFoldingConstantArithmetic(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	sum := fb.Add(fb.IntLit(big.NewInt(3)), fb.IntLit(big.NewInt(4)))

	if sum.Kind() != core.KindIntLit || sum.IntValue().Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("expected folded literal 7, got %s", sum)
	}
}

func TestFoldingNotNot(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	x := ctx.NewVariable("x", ctx.BoolType())
	vx := fb.VarRef(x)

	r := fb.Not(fb.Not(vx))
	if r != vx {
		t.Fatalf("expected Not(Not(x)) to fold to x, got %s", r)
	}
}

func TestFoldingNotEqDualizesBvULt(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	x := ctx.NewVariable("x", ctx.BvType(8))
	y := ctx.NewVariable("y", ctx.BvType(8))
	vx, vy := fb.VarRef(x), fb.VarRef(y)

	r := fb.Not(fb.BvULt(vx, vy))
	if r.Kind() != core.KindBvUGtEq {
		t.Fatalf("expected Not(BvULt(x,y)) to fold to BvUGtEq(x,y), got %s", r)
	}
}

func TestFoldingAndDropsTrueAndShortCircuitsOnFalse(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	x := ctx.NewVariable("x", ctx.BoolType())
	vx := fb.VarRef(x)

	r := fb.And(fb.BoolLit(true), vx)
	if r != vx {
		t.Fatalf("expected And(True, x) to fold to x, got %s", r)
	}

	r = fb.And(vx, fb.BoolLit(false))
	if r.Kind() != core.KindBoolLit || r.BoolValue() {
		t.Fatalf("expected And(x, False) to fold to False, got %s", r)
	}
}

func TestFoldingAndContradictionNotX(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	x := ctx.NewVariable("x", ctx.BoolType())
	vx := fb.VarRef(x)

	r := fb.And(vx, fb.Not(vx))
	if r.Kind() != core.KindBoolLit || r.BoolValue() {
		t.Fatalf("expected And(x, Not(x)) to fold to False, got %s", r)
	}
}

func TestFoldingAndDistributesOverOr(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	a := fb.VarRef(ctx.NewVariable("a", ctx.BoolType()))
	b := fb.VarRef(ctx.NewVariable("b", ctx.BoolType()))
	c := fb.VarRef(ctx.NewVariable("c", ctx.BoolType()))

	r := fb.And(fb.Or(a, b), fb.Or(a, c))

	want := fb.And(a, fb.Or(b, c))
	if r != want {
		t.Fatalf("expected And(Or(a,b),Or(a,c)) to fold to And(a,Or(b,c)); got %s want %s", r, want)
	}
}

func TestFoldingEqIdentity(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	x := fb.VarRef(ctx.NewVariable("x", ctx.IntType()))

	r := fb.Eq(x, x)
	if r.Kind() != core.KindBoolLit || !r.BoolValue() {
		t.Fatalf("expected Eq(x,x) to fold to True, got %s", r)
	}
}

func TestFoldingEqSelectBranch(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	cond := fb.VarRef(ctx.NewVariable("cond", ctx.BoolType()))
	e1 := fb.IntLit(big.NewInt(1))
	e2 := fb.IntLit(big.NewInt(2))

	sel := fb.Select(cond, e1, e2)

	r := fb.Eq(sel, e1)
	if r != cond {
		t.Fatalf("expected Eq(Select(cond,e1,e2),e1) to fold to cond, got %s", r)
	}

	r = fb.Eq(sel, e2)
	if r.Kind() != core.KindNot || r.Operand(0) != cond {
		t.Fatalf("expected Eq(Select(cond,e1,e2),e2) to fold to Not(cond), got %s", r)
	}
}

func TestFoldingSelectConstantCondition(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	a := fb.IntLit(big.NewInt(1))
	b := fb.IntLit(big.NewInt(2))

	if r := fb.Select(fb.BoolLit(true), a, b); r != a {
		t.Fatalf("expected Select(True,a,b) to fold to a, got %s", r)
	}

	if r := fb.Select(fb.BoolLit(false), a, b); r != b {
		t.Fatalf("expected Select(False,a,b) to fold to b, got %s", r)
	}
}

func TestFoldingSelectBooleanBranchesBecomeAndOr(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	cond := fb.VarRef(ctx.NewVariable("cond", ctx.BoolType()))
	e := fb.VarRef(ctx.NewVariable("e", ctx.BoolType()))

	r := fb.Select(cond, e, fb.BoolLit(false))
	if r.Kind() != core.KindAnd {
		t.Fatalf("expected Select(c,e,False) to fold to And(c,e), got %s", r)
	}
}

func TestFoldingExtractBvSRemSExtRule(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	x := fb.VarRef(ctx.NewVariable("x", ctx.BvType(8)))
	y := fb.VarRef(ctx.NewVariable("y", ctx.BvType(8)))

	srem := fb.BvSRem(fb.SExt(x, 16), fb.SExt(y, 16))

	r := fb.Extract(srem, 7, 0)
	if r.Kind() != core.KindBvSRem || r.Operand(0) != x || r.Operand(1) != y {
		t.Fatalf("expected Extract(BvSRem(SExt x,SExt y),7,0) to fold to BvSRem(x,y), got %s", r)
	}
}

func TestFoldingSignedCompareAddRewriteNotAppliedToUnsigned(t *testing.T) {
	ctx := core.NewContext()
	fb := NewFoldingBuilder(ctx)

	x := fb.VarRef(ctx.NewVariable("x", ctx.BvType(8)))
	c1 := fb.BvLit(8, big.NewInt(3))
	c2 := fb.BvLit(8, big.NewInt(10))

	sum := fb.Add(c1, x)

	signed := fb.BvSLt(sum, c2)
	if signed.Kind() != core.KindBvSLt || signed.Operand(0) != x {
		t.Fatalf("expected BvSLt(Add(c1,x),c2) to rewrite to BvSLt(x,c2-c1), got %s", signed)
	}

	unsigned := fb.BvULt(sum, c2)
	if unsigned.Operand(0) != sum {
		t.Fatalf("unsigned comparison must NOT apply the Add(c1,x) rewrite, got %s", unsigned)
	}
}
