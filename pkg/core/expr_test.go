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

func TestLiteralInterning(t *testing.T) {
	ctx := NewContext()

	a := ctx.IntLit(big.NewInt(42))
	b := ctx.IntLit(big.NewInt(42))
	c := ctx.IntLit(big.NewInt(43))

	if a != b {
		t.Fatalf("equal Int literals must intern to the same node")
	}

	if a == c {
		t.Fatalf("distinct Int literals must not share identity")
	}
}

func TestBvLitNormalizesModWidth(t *testing.T) {
	ctx := NewContext()

	a := ctx.BvLit(8, big.NewInt(257)) // 257 mod 256 == 1
	b := ctx.BvLit(8, big.NewInt(1))

	if a != b {
		t.Fatalf("BvLit must normalize modulo 2^width")
	}
}

func TestInternExprStructuralSharing(t *testing.T) {
	ctx := NewContext()

	x := ctx.NewVariable("x", ctx.IntType())
	vx := ctx.VarRef(x)

	one := ctx.IntLit(big.NewInt(1))

	a := ctx.InternExpr(KindAdd, vx, one)
	b := ctx.InternExpr(KindAdd, vx, one)

	if a != b {
		t.Fatalf("InternExpr must return the canonical node for structurally equal inputs")
	}
}

func TestInternExprTypeMismatchPanics(t *testing.T) {
	ctx := NewContext()

	defer func() {
		e := recover()

		ce, ok := e.(*ContractError)
		if !ok {
			t.Fatalf("expected *ContractError panic, got %v", e)
		}

		if ce.Kind != TypeMismatch {
			t.Fatalf("expected TypeMismatch, got %s", ce.Kind)
		}
	}()

	ctx.InternExpr(KindAdd, ctx.IntLit(big.NewInt(1)), ctx.BoolLit(true))
}

func TestInternExprArityMismatchPanics(t *testing.T) {
	ctx := NewContext()

	defer func() {
		e := recover()

		ce, ok := e.(*ContractError)
		if !ok {
			t.Fatalf("expected *ContractError panic, got %v", e)
		}

		if ce.Kind != ArityMismatch {
			t.Fatalf("expected ArityMismatch, got %s", ce.Kind)
		}
	}()

	ctx.InternExpr(KindAdd, ctx.IntLit(big.NewInt(1)))
}

func TestNewVariableNameCollisionPanics(t *testing.T) {
	ctx := NewContext()
	ctx.NewVariable("x", ctx.IntType())

	defer func() {
		e := recover()

		ce, ok := e.(*ContractError)
		if !ok {
			t.Fatalf("expected *ContractError panic, got %v", e)
		}

		if ce.Kind != NameCollision {
			t.Fatalf("expected NameCollision, got %s", ce.Kind)
		}
	}()

	ctx.NewVariable("x", ctx.BoolType())
}

func TestExtractBoundsAndWidth(t *testing.T) {
	ctx := NewContext()

	x := ctx.NewVariable("x", ctx.BvType(32))
	vx := ctx.VarRef(x)

	e := ctx.Extract(vx, 15, 8)

	if e.Type().Width() != 8 {
		t.Fatalf("Extract(15,8) should produce Bv8, got %s", e.Type())
	}

	hi, lo := e.ExtractBounds()
	if hi != 15 || lo != 8 {
		t.Fatalf("unexpected extract bounds (%d,%d)", hi, lo)
	}
}

func TestZExtRequiresWiderTarget(t *testing.T) {
	ctx := NewContext()

	x := ctx.NewVariable("x", ctx.BvType(32))
	vx := ctx.VarRef(x)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic zero-extending to a narrower or equal width")
		}
	}()

	ctx.ZExt(vx, 32)
}

func TestSelectRequiresMatchingBranchTypes(t *testing.T) {
	ctx := NewContext()

	cond := ctx.BoolLit(true)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on mismatched Select branch types")
		}
	}()

	ctx.Select(cond, ctx.IntLit(big.NewInt(1)), ctx.BoolLit(false))
}

func TestArrayReadWriteTypes(t *testing.T) {
	ctx := NewContext()

	idx := ctx.BvType(32)
	elem := ctx.IntType()
	arrType := ctx.ArrayType(idx, elem)

	arr := ctx.NewVariable("arr", arrType)
	varr := ctx.VarRef(arr)

	i := ctx.BvLit(32, big.NewInt(0))
	v := ctx.IntLit(big.NewInt(7))

	written := ctx.InternExpr(KindArrayWrite, varr, i, v)
	if written.Type() != arrType {
		t.Fatalf("ArrayWrite must preserve the array type")
	}

	read := ctx.InternExpr(KindArrayRead, written, i)
	if read.Type() != elem {
		t.Fatalf("ArrayRead must produce the element type")
	}
}
