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

import "testing"

func TestBvTypeInterning(t *testing.T) {
	ctx := NewContext()

	a := ctx.BvType(32)
	b := ctx.BvType(32)
	c := ctx.BvType(64)

	if a != b {
		t.Fatalf("BvType(32) called twice should return identical pointer")
	}

	if a == c {
		t.Fatalf("BvType(32) and BvType(64) must be distinct")
	}

	if a.Width() != 32 {
		t.Fatalf("expected width 32, got %d", a.Width())
	}
}

func TestArrayTypeInterning(t *testing.T) {
	ctx := NewContext()

	idx := ctx.BvType(32)
	elem := ctx.boolType

	a := ctx.ArrayType(idx, elem)
	b := ctx.ArrayType(idx, elem)

	if a != b {
		t.Fatalf("ArrayType called twice with the same parameters should return identical pointer")
	}

	if a.IndexType() != idx || a.ElemType() != elem {
		t.Fatalf("ArrayType parameters not preserved")
	}
}

func TestSimpleTypeSingletons(t *testing.T) {
	ctx := NewContext()

	if ctx.BoolType() != ctx.BoolType() || ctx.IntType() != ctx.IntType() || ctx.RealType() != ctx.RealType() {
		t.Fatalf("simple types must be singletons")
	}

	if ctx.FloatType(FloatSingle) != ctx.FloatType(FloatSingle) {
		t.Fatalf("FloatType(variant) must be a singleton per variant")
	}

	if ctx.FloatType(FloatSingle) == ctx.FloatType(FloatDouble) {
		t.Fatalf("distinct float variants must be distinct types")
	}
}

func TestWidthPanicsOnNonBv(t *testing.T) {
	ctx := NewContext()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic calling Width() on Bool type")
		}
	}()

	ctx.BoolType().Width()
}
