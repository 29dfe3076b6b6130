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

import "fmt"

// TypeKind identifies which branch of the closed type algebra a Type
// belongs to.
type TypeKind uint8

const (
	// TypeBool is the boolean type.
	TypeBool TypeKind = iota
	// TypeInt is the unbounded mathematical integer type.
	TypeInt
	// TypeReal is the rational type.
	TypeReal
	// TypeBv is a fixed-width bitvector type, parametrized by width.
	TypeBv
	// TypeFloat is an IEEE floating-point type, parametrized by variant.
	TypeFloat
	// TypeArray is an array type, parametrized by index and element type.
	TypeArray
)

func (k TypeKind) String() string {
	switch k {
	case TypeBool:
		return "Bool"
	case TypeInt:
		return "Int"
	case TypeReal:
		return "Real"
	case TypeBv:
		return "Bv"
	case TypeFloat:
		return "Float"
	case TypeArray:
		return "Array"
	default:
		return "UnknownType"
	}
}

// FloatVariant enumerates the IEEE floating-point formats Gazer recognizes.
type FloatVariant uint8

const (
	// FloatHalf is a 16-bit float.
	FloatHalf FloatVariant = iota
	// FloatSingle is a 32-bit float.
	FloatSingle
	// FloatDouble is a 64-bit float.
	FloatDouble
	// FloatQuad is a 128-bit float.
	FloatQuad
)

// Width returns the bit width of the raw representation of this variant.
func (v FloatVariant) Width() uint32 {
	switch v {
	case FloatHalf:
		return 16
	case FloatSingle:
		return 32
	case FloatDouble:
		return 64
	case FloatQuad:
		return 128
	default:
		panic(fmt.Sprintf("unknown float variant %d", v))
	}
}

func (v FloatVariant) String() string {
	switch v {
	case FloatHalf:
		return "half"
	case FloatSingle:
		return "single"
	case FloatDouble:
		return "double"
	case FloatQuad:
		return "quad"
	default:
		return "unknown-variant"
	}
}

// Type is a member of Gazer's closed type algebra. Types are interned per
// Context: equality is pointer identity. Bool, Int, Real, and the four
// Float variants are singletons; Bv and Array are keyed by their
// parameters.
type Type struct {
	kind    TypeKind
	width   uint32
	variant FloatVariant
	index   *Type
	elem    *Type
}

// Kind returns which branch of the type algebra this Type belongs to.
func (t *Type) Kind() TypeKind { return t.kind }

// IsBool reports whether this is the boolean type.
func (t *Type) IsBool() bool { return t.kind == TypeBool }

// IsInt reports whether this is the integer type.
func (t *Type) IsInt() bool { return t.kind == TypeInt }

// IsReal reports whether this is the rational type.
func (t *Type) IsReal() bool { return t.kind == TypeReal }

// IsBv reports whether this is a bitvector type.
func (t *Type) IsBv() bool { return t.kind == TypeBv }

// IsFloat reports whether this is a floating-point type.
func (t *Type) IsFloat() bool { return t.kind == TypeFloat }

// IsArray reports whether this is an array type.
func (t *Type) IsArray() bool { return t.kind == TypeArray }

// Width returns the bitvector width. Panics if this is not a Bv type.
func (t *Type) Width() uint32 {
	if t.kind != TypeBv {
		panic(fmt.Sprintf("Width() called on non-Bv type %s", t))
	}

	return t.width
}

// Variant returns the floating-point variant. Panics if this is not a
// Float type.
func (t *Type) Variant() FloatVariant {
	if t.kind != TypeFloat {
		panic(fmt.Sprintf("Variant() called on non-Float type %s", t))
	}

	return t.variant
}

// IndexType returns the array's index type. Panics if this is not an Array
// type.
func (t *Type) IndexType() *Type {
	if t.kind != TypeArray {
		panic(fmt.Sprintf("IndexType() called on non-Array type %s", t))
	}

	return t.index
}

// ElemType returns the array's element type. Panics if this is not an
// Array type.
func (t *Type) ElemType() *Type {
	if t.kind != TypeArray {
		panic(fmt.Sprintf("ElemType() called on non-Array type %s", t))
	}

	return t.elem
}

// String renders a human-readable description of this type, e.g. "Bv32" or
// "Array(Bv32,Bool)".
func (t *Type) String() string {
	switch t.kind {
	case TypeBool, TypeInt, TypeReal:
		return t.kind.String()
	case TypeBv:
		return fmt.Sprintf("Bv%d", t.width)
	case TypeFloat:
		return fmt.Sprintf("Float(%s)", t.variant)
	case TypeArray:
		return fmt.Sprintf("Array(%s,%s)", t.index, t.elem)
	default:
		return "UnknownType"
	}
}

// arrayTypeKey is the interning key for Array types: comparable as a plain
// struct since index/elem are themselves already-canonical Type pointers.
type arrayTypeKey struct {
	index *Type
	elem  *Type
}
