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
package automaton

import (
	"fmt"
	"strings"

	"github.com/gazer-verify/gazer/pkg/core"
)

// TransitionKind distinguishes an ordinary variable-assignment edge from a
// call into another Cfa.
type TransitionKind uint8

const (
	// AssignTransitionKind carries an ordered list of variable
	// assignments.
	AssignTransitionKind TransitionKind = iota
	// CallTransitionKind carries a callee Cfa reference plus input/output
	// bindings.
	CallTransitionKind
)

func (k TransitionKind) String() string {
	if k == CallTransitionKind {
		return "call"
	}

	return "assign"
}

// Assignment binds a variable to a value expression of the same type,
// evaluated in the scope the assignment occurs.
type Assignment struct {
	Variable *core.Variable
	Value    *core.Expr
}

// InputBinding evaluates a caller-scope expression and passes it as the
// argument for one of the callee's input variables.
type InputBinding struct {
	CalleeInput *core.Variable
	Value       *core.Expr
}

// OutputBinding exposes one of the callee's output variables, after the
// call, through a variable in the caller's own scope.
type OutputBinding struct {
	CallerVar    *core.Variable
	CalleeOutput *core.Variable
}

// Transition is a directed, guarded edge of a Cfa: either an Assign edge
// (a list of assignments) or a Call edge (a callee reference with bindings).
// A Transition holds its source, target and callee directly; locations
// refer to it only by id, so disconnecting it removes that id from both
// endpoints' adjacency lists and marks its state.
type Transition struct {
	id     uint32
	source *Location
	target *Location
	guard  *core.Expr
	kind   TransitionKind
	state  ElementState

	assignments []Assignment

	callee  *Cfa
	inputs  []InputBinding
	outputs []OutputBinding
}

// ID returns this transition's Cfa-unique, monotonically allocated id.
func (t *Transition) ID() uint32 { return t.id }

// Source returns this transition's origin location.
func (t *Transition) Source() *Location { return t.source }

// Target returns this transition's destination location.
func (t *Transition) Target() *Location { return t.target }

// Guard returns this transition's boolean guard expression (BoolLit(true)
// when the caller omitted one).
func (t *Transition) Guard() *core.Expr { return t.guard }

// Kind reports whether this is an Assign or Call edge.
func (t *Transition) Kind() TransitionKind { return t.kind }

// IsAssign reports whether this is an Assign edge.
func (t *Transition) IsAssign() bool { return t.kind == AssignTransitionKind }

// IsCall reports whether this is a Call edge.
func (t *Transition) IsCall() bool { return t.kind == CallTransitionKind }

// State returns this transition's lifecycle state (shares the Location
// state machine: Live, Disconnected, Reclaimed).
func (t *Transition) State() ElementState { return t.state }

// Assignments returns the ordered assignments of an Assign edge. Panics if
// called on a Call edge.
func (t *Transition) Assignments() []Assignment {
	if t.kind != AssignTransitionKind {
		panic("Assignments() called on a Call transition")
	}

	return t.assignments
}

// AddAssignment appends an assignment to an Assign edge, mirroring the
// original AssignTransition::addAssignment.
func (t *Transition) AddAssignment(a Assignment) {
	if t.kind != AssignTransitionKind {
		panic("AddAssignment() called on a Call transition")
	}

	t.assignments = append(t.assignments, a)
}

// Callee returns the called Cfa of a Call edge. Panics if called on an
// Assign edge.
func (t *Transition) Callee() *Cfa {
	if t.kind != CallTransitionKind {
		panic("Callee() called on an Assign transition")
	}

	return t.callee
}

// InputBindings returns the ordered input bindings of a Call edge.
func (t *Transition) InputBindings() []InputBinding {
	if t.kind != CallTransitionKind {
		panic("InputBindings() called on an Assign transition")
	}

	return t.inputs
}

// OutputBindings returns the ordered output bindings of a Call edge.
func (t *Transition) OutputBindings() []OutputBinding {
	if t.kind != CallTransitionKind {
		panic("OutputBindings() called on an Assign transition")
	}

	return t.outputs
}

func (t *Transition) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s -> %s", t.source, t.target)

	if t.guard.Kind() != core.KindBoolLit || !t.guard.BoolValue() {
		fmt.Fprintf(&b, " [%s]", t.guard)
	}

	switch t.kind {
	case AssignTransitionKind:
		for _, a := range t.assignments {
			fmt.Fprintf(&b, " %s:=%s", a.Variable.Name(), a.Value)
		}
	case CallTransitionKind:
		fmt.Fprintf(&b, " call %s(", t.callee.Name())

		for i, in := range t.inputs {
			if i > 0 {
				b.WriteString(", ")
			}

			fmt.Fprintf(&b, "%s:=%s", in.CalleeInput.Name(), in.Value)
		}

		b.WriteString(") -> {")

		for i, out := range t.outputs {
			if i > 0 {
				b.WriteString(", ")
			}

			fmt.Fprintf(&b, "%s<=%s", out.CallerVar.Name(), out.CalleeOutput.Name())
		}

		b.WriteString("}")
	}

	return b.String()
}
