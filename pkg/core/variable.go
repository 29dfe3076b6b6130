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

// Variable names a typed storage location: a CFA input, local, or an
// uninterpreted symbol introduced directly against a Context. Variables are
// allocated once (via Context.NewVariable or Context.NewScopedVariable) and
// never interned by value:
// two variables of the same name and type are still distinct unless they
// are literally the same *Variable, matching how the automaton model treats
// shadowing across nested scopes.
type Variable struct {
	id   uint64
	name string
	typ  *Type
}

// ID returns this variable's Context-unique allocation sequence number.
func (v *Variable) ID() uint64 { return v.id }

// Name returns this variable's declared name.
func (v *Variable) Name() string { return v.name }

// Type returns this variable's declared type.
func (v *Variable) Type() *Type { return v.typ }

// String returns the variable's name.
func (v *Variable) String() string { return v.name }
