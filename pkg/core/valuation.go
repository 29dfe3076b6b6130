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

// Valuation assigns literal Expr values to Variables, typically produced by
// a solver model. Evaluator consults it to resolve KindVarRef leaves.
type Valuation struct {
	values map[*Variable]*Expr
}

// NewValuation constructs an empty Valuation.
func NewValuation() *Valuation {
	return &Valuation{values: make(map[*Variable]*Expr)}
}

// Assign records v := literal. literal's type must match v's; neither
// Assign nor the evaluator checks this, since Valuation itself has no
// Context to validate against.
func (val *Valuation) Assign(v *Variable, literal *Expr) {
	val.values[v] = literal
}

// Lookup returns the assigned literal for v, if any.
func (val *Valuation) Lookup(v *Variable) (*Expr, bool) {
	e, ok := val.values[v]
	return e, ok
}

// Variables returns every variable this valuation assigns.
func (val *Valuation) Variables() []*Variable {
	vs := make([]*Variable, 0, len(val.values))
	for v := range val.values {
		vs = append(vs, v)
	}

	return vs
}
