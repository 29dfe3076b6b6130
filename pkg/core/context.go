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

// Package core implements Gazer's hash-consed symbolic expression DAG: a
// closed algebra of Bool/Int/Bv/Float/Real/Array types, a single
// tagged-variant Expr representation, a Context owning all interning, and
// an Evaluator reducing ground (variable-free) expressions to literals.
package core

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/atomic"

	"github.com/gazer-verify/gazer/pkg/util/collection/hash"
)

// Context owns every interned Type and Expr, plus variable allocation. All
// Expr/Type identity comparisons (==) are only meaningful for pointers that
// came from the same Context.
type Context struct {
	boolType  *Type
	intType   *Type
	realType  *Type
	bvTypes   map[uint32]*Type
	fltTypes  [4]*Type
	arrTypes  map[arrayTypeKey]*Type
	exprs     *hash.InternTable[*Expr]
	nextVarID atomic.Uint64
	varNames  map[string]*Variable
}

// NewContext constructs an empty Context with its simple-type singletons
// pre-populated.
func NewContext() *Context {
	ctx := &Context{
		boolType: &Type{kind: TypeBool},
		intType:  &Type{kind: TypeInt},
		realType: &Type{kind: TypeReal},
		bvTypes:  make(map[uint32]*Type),
		arrTypes: make(map[arrayTypeKey]*Type),
		exprs:    hash.NewInternTable[*Expr](1024),
		varNames: make(map[string]*Variable),
	}

	for v := FloatHalf; v <= FloatQuad; v++ {
		ctx.fltTypes[v] = &Type{kind: TypeFloat, variant: v, width: v.Width()}
	}

	return ctx
}

// BoolType returns the canonical Bool type.
func (c *Context) BoolType() *Type { return c.boolType }

// IntType returns the canonical Int type.
func (c *Context) IntType() *Type { return c.intType }

// RealType returns the canonical Real type.
func (c *Context) RealType() *Type { return c.realType }

// BvType returns the canonical Bv(width) type, interning it if this is the
// first request for that width. Panics if width is zero.
func (c *Context) BvType(width uint32) *Type {
	if width == 0 {
		failContract(ArityMismatch, "Bv width must be positive, got 0")
	}

	if t, ok := c.bvTypes[width]; ok {
		return t
	}

	t := &Type{kind: TypeBv, width: width}
	c.bvTypes[width] = t

	return t
}

// FloatType returns the canonical Float(variant) type.
func (c *Context) FloatType(variant FloatVariant) *Type {
	if variant > FloatQuad {
		failContract(TypeMismatch, "unknown float variant %d", variant)
	}

	return c.fltTypes[variant]
}

// ArrayType returns the canonical Array(index,elem) type, interning it on
// first request for that parameter pair. index and elem must themselves be
// canonical types from this Context.
func (c *Context) ArrayType(index, elem *Type) *Type {
	key := arrayTypeKey{index: index, elem: elem}
	if t, ok := c.arrTypes[key]; ok {
		return t
	}

	t := &Type{kind: TypeArray, index: index, elem: elem}
	c.arrTypes[key] = t

	return t
}

// intern finds or inserts the canonical node structurally equal to e.
func (c *Context) intern(e *Expr) *Expr {
	canonical, _ := c.exprs.Intern(e)
	return canonical
}

// leaf builds and interns a leaf (operand-free) node; shared by every
// literal constructor and by VarRef allocation.
func (c *Context) leaf(e *Expr) *Expr {
	return c.intern(e)
}

// BoolLit returns the canonical Bool literal for v.
func (c *Context) BoolLit(v bool) *Expr {
	return c.leaf(&Expr{kind: KindBoolLit, typ: c.boolType, boolVal: v})
}

// IntLit returns the canonical Int literal for v.
func (c *Context) IntLit(v *big.Int) *Expr {
	return c.leaf(&Expr{kind: KindIntLit, typ: c.intType, intVal: new(big.Int).Set(v)})
}

// BvLit returns the canonical Bv(width) literal holding v normalized modulo
// 2^width.
func (c *Context) BvLit(width uint32, v *big.Int) *Expr {
	typ := c.BvType(width)

	mod := new(big.Int).Mod(v, new(big.Int).Lsh(big.NewInt(1), uint(width)))

	bits := bitset.New(uint(width))
	for i := uint32(0); i < width; i++ {
		if mod.Bit(int(i)) == 1 {
			bits.Set(uint(i))
		}
	}

	return c.leaf(&Expr{kind: KindBvLit, typ: typ, bv: bits})
}

// RealLit returns the canonical Real literal for v.
func (c *Context) RealLit(v *big.Rat) *Expr {
	return c.leaf(&Expr{kind: KindRealLit, typ: c.realType, realVal: new(big.Rat).Set(v)})
}

// FloatLit returns the canonical Float(variant) literal with the given raw
// IEEE bit pattern.
func (c *Context) FloatLit(variant FloatVariant, bits *big.Int) *Expr {
	typ := c.FloatType(variant)
	return c.leaf(&Expr{kind: KindFloatLit, typ: typ, floatBits: new(big.Int).Set(bits)})
}

// Undef returns the canonical unconstrained-value node of typ.
func (c *Context) Undef(typ *Type) *Expr {
	return c.leaf(&Expr{kind: KindUndef, typ: typ})
}

// NewVariable allocates a fresh Variable directly against the Context's own
// symbol namespace (uninterpreted symbols introduced outside any CFA, e.g.
// by a parser or a test) and interns its VarRef leaf. Panics with
// *ContractError{NameCollision} if name was already used by a prior call on
// this Context. CFA-scoped variables (inputs/outputs/locals) do not go
// through this namespace; see NewScopedVariable.
func (c *Context) NewVariable(name string, typ *Type) *Variable {
	if _, exists := c.varNames[name]; exists {
		failContract(NameCollision, "variable %q already declared in this context", name)
	}

	v := c.NewScopedVariable(name, typ)
	c.varNames[name] = v

	return v
}

// NewScopedVariable allocates a fresh Variable and interns its VarRef leaf
// without registering it in the Context's own symbol namespace. A caller
// that maintains its own scope-local uniqueness check — pkg/automaton's Cfa,
// checking across its inputs/outputs/locals — calls this instead of
// NewVariable, so that distinct CFAs in the same Context may each declare a
// variable under the same name.
func (c *Context) NewScopedVariable(name string, typ *Type) *Variable {
	v := &Variable{id: c.nextVarID.Inc(), name: name, typ: typ}
	c.leaf(&Expr{kind: KindVarRef, typ: typ, variable: v})

	return v
}

// VarRef returns the canonical VarRef leaf for v.
func (c *Context) VarRef(v *Variable) *Expr {
	return c.leaf(&Expr{kind: KindVarRef, typ: v.typ, variable: v})
}
