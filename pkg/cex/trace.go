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
package cex

import (
	"github.com/gazer-verify/gazer/pkg/automaton"
	"github.com/gazer-verify/gazer/pkg/core"
)

// Assignment pairs a variable with the literal it held on the edge
// entering the state it's attached to.
type Assignment struct {
	Variable *core.Variable
	Value    *core.Expr
}

// Trace is a linear counterexample: a sequence of original-program
// locations, each paired with the assignments observed on the edge
// entering it. States[0] has no incoming edge in the trace and so always
// carries a nil Actions entry.
type Trace struct {
	States  []*automaton.Location
	Actions [][]Assignment
}

// PredecessorMap partially maps a Location to an expression whose
// evaluation under the model yields the id of its predecessor in the
// counterexample.
type PredecessorMap map[*automaton.Location]*core.Expr

// InlineTracking records, for a bounded model checker that inlines calls,
// which locations and variables in the unrolled CFA correspond to which
// locations and variables in the original, pre-inlining CFA. A Walk called
// with a nil InlineTracking reports unrolled identities verbatim.
type InlineTracking struct {
	Locations map[*automaton.Location]*automaton.Location
	Variables map[*core.Variable]*core.Variable
}

func (t *InlineTracking) originalLocation(loc *automaton.Location) *automaton.Location {
	if t == nil {
		return loc
	}

	if orig, ok := t.Locations[loc]; ok {
		return orig
	}

	return loc
}

func (t *InlineTracking) originalVariable(v *core.Variable) *core.Variable {
	if t == nil {
		return v
	}

	if orig, ok := t.Variables[v]; ok {
		return orig
	}

	return v
}

// Walk reconstructs a linear Trace by following predecessors backward from
// errorLoc to the initial state, then reversing the result. val supplies
// the solver model used to resolve both predecessor-expressions and
// assignment values; a variable absent from val evaluates to Undef rather
// than failing, though an operation applied to that Undef does fail. Fails
// with a *TraceError of the matching TraceErrorKind on a non-Int
// predecessor literal, an unresolvable predecessor id, a missing matching
// edge, or a Call edge where an Assign edge was required; an assignment
// value that fails to evaluate is reported as BadPredecessor.
func Walk(
	cfa *automaton.Cfa, errorLoc *automaton.Location,
	predecessors PredecessorMap, val *core.Valuation, inline *InlineTracking,
) (*Trace, error) {
	ev := core.NewEvaluator(cfa.Context(), val, false)

	var statesRev []*automaton.Location

	var actionsRev [][]Assignment

	current := errorLoc

	for {
		predExpr, ok := predecessors[current]
		if !ok {
			statesRev = append(statesRev, inline.originalLocation(current))
			actionsRev = append(actionsRev, nil)

			break
		}

		predLoc, err := resolvePredecessor(cfa, ev, predExpr)
		if err != nil {
			return nil, err
		}

		edge, err := findEdge(current, predLoc)
		if err != nil {
			return nil, err
		}

		if edge.IsCall() {
			return nil, fail(UnexpectedCall, "edge %s entering location %s is a Call edge", edge, current)
		}

		acts, err := evalAssignments(ev, edge.Assignments(), inline)
		if err != nil {
			return nil, err
		}

		statesRev = append(statesRev, inline.originalLocation(current))
		actionsRev = append(actionsRev, acts)

		current = predLoc
	}

	reverseLocations(statesRev)
	reverseActions(actionsRev)

	return &Trace{States: statesRev, Actions: actionsRev}, nil
}

func resolvePredecessor(cfa *automaton.Cfa, ev *core.Evaluator, predExpr *core.Expr) (*automaton.Location, error) {
	lit, err := ev.Eval(predExpr)
	if err != nil {
		return nil, fail(BadPredecessor, "predecessor expression failed to evaluate: %v", err)
	}

	if lit.Kind() != core.KindIntLit {
		return nil, fail(BadPredecessor, "predecessor expression evaluated to %s, expected an Int literal", lit)
	}

	id := lit.IntValue()
	if !id.IsUint64() {
		return nil, fail(BadPredecessor, "predecessor id %s does not fit a location id", id)
	}

	predLoc := cfa.FindLocationByID(uint32(id.Uint64()))
	if predLoc == nil {
		return nil, fail(MissingLocation, "no location with id %s in this Cfa", id)
	}

	return predLoc, nil
}

func findEdge(current, predLoc *automaton.Location) (*automaton.Transition, error) {
	for _, e := range current.Incoming() {
		if e.Source() == predLoc {
			return e, nil
		}
	}

	return nil, fail(NoEdge, "no live edge from %s to %s", predLoc, current)
}

func evalAssignments(ev *core.Evaluator, assignments []automaton.Assignment, inline *InlineTracking) ([]Assignment, error) {
	acts := make([]Assignment, 0, len(assignments))

	for _, a := range assignments {
		v, err := ev.Eval(a.Value)
		if err != nil {
			return nil, fail(BadPredecessor, "assignment to %s failed to evaluate: %v", a.Variable.Name(), err)
		}

		acts = append(acts, Assignment{Variable: inline.originalVariable(a.Variable), Value: v})
	}

	return acts, nil
}

func reverseLocations(s []*automaton.Location) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseActions(s [][]Assignment) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
