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

// Package sexpr implements Gazer's S-expression IO: a two-variant value
// type (Atom/List), a recursive-descent parser, and a canonical printer.
package sexpr

import "strings"

// Value is an S-expression: either an Atom or a List of zero or more
// Values. Equality between Values is structural, not identity-based —
// unlike pkg/core, this package does not intern.
type Value interface {
	// IsAtom reports whether this Value is an Atom.
	IsAtom() bool
	// IsList reports whether this Value is a List.
	IsList() bool
	// Equal reports whether this Value is structurally equal to other.
	Equal(other Value) bool
	// String renders this Value in canonical form.
	String() string
}

// Atom is a terminating, non-empty run of non-paren, non-whitespace
// characters.
type Atom string

var _ Value = Atom("")

// IsAtom always returns true.
func (a Atom) IsAtom() bool { return true }

// IsList always returns false.
func (a Atom) IsList() bool { return false }

// Equal reports whether other is an Atom holding the same text.
func (a Atom) Equal(other Value) bool {
	o, ok := other.(Atom)
	return ok && a == o
}

// String returns the atom's text verbatim.
func (a Atom) String() string { return string(a) }

// List is a sequence of zero or more Values.
type List struct {
	Elements []Value
}

var _ Value = (*List)(nil)

// NewList constructs a List from its elements.
func NewList(elements ...Value) *List {
	return &List{Elements: elements}
}

// IsList always returns true.
func (l *List) IsList() bool { return true }

// IsAtom always returns false.
func (l *List) IsAtom() bool { return false }

// Len returns the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get returns the i'th element.
func (l *List) Get(i int) Value { return l.Elements[i] }

// Equal reports whether other is a List of the same length whose elements
// are pairwise Equal, in order.
func (l *List) Equal(other Value) bool {
	o, ok := other.(*List)
	if !ok || len(l.Elements) != len(o.Elements) {
		return false
	}

	for i, e := range l.Elements {
		if !e.Equal(o.Elements[i]) {
			return false
		}
	}

	return true
}

// String renders this list as "(e1 e2 ... en)", single-space separated,
// with no trailing space.
func (l *List) String() string {
	var b strings.Builder

	b.WriteByte('(')

	for i, e := range l.Elements {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(e.String())
	}

	b.WriteByte(')')

	return b.String()
}
