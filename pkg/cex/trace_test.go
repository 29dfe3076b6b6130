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
	"math/big"
	"testing"

	"github.com/gazer-verify/gazer/pkg/automaton"
	"github.com/gazer-verify/gazer/pkg/core"
	"github.com/gazer-verify/gazer/pkg/core/builder"
)

// buildLinearCfa constructs the three-location 0->1->2 scenario: y:=7 on the
// first edge, y:=y+1 on the second, with location 2 as the error.
func buildLinearCfa(t *testing.T) (*automaton.Cfa, *automaton.Location, *automaton.Location, *automaton.Location, *core.Variable) {
	t.Helper()

	ctx := core.NewContext()
	b := builder.NewTrivialBuilder(ctx)
	sys := automaton.NewAutomataSystem(ctx)
	cfa := sys.CreateCfa("main")

	y := cfa.CreateLocal("y", ctx.IntType())

	l0 := cfa.Entry()
	l1 := cfa.CreateLocation()
	l2 := cfa.CreateErrorLocation()

	cfa.CreateAssignTransition(l0, l1, nil, []automaton.Assignment{
		{Variable: y, Value: b.IntLit(big.NewInt(7))},
	})
	cfa.CreateAssignTransition(l1, l2, nil, []automaton.Assignment{
		{Variable: y, Value: b.Add(b.VarRef(y), b.IntLit(big.NewInt(1)))},
	})

	return cfa, l0, l1, l2, y
}

func TestWalkReconstructsLinearTrace(t *testing.T) {
	cfa, l0, l1, l2, y := buildLinearCfa(t)

	predecessors := PredecessorMap{
		l2: cfa.Context().IntLit(big.NewInt(int64(l1.ID()))),
		l1: cfa.Context().IntLit(big.NewInt(int64(l0.ID()))),
	}

	val := core.NewValuation()
	val.Assign(y, cfa.Context().IntLit(big.NewInt(7)))

	trace, err := Walk(cfa, l2, predecessors, val, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStates := []*automaton.Location{l0, l1, l2}
	if len(trace.States) != len(wantStates) {
		t.Fatalf("expected %d states, got %d", len(wantStates), len(trace.States))
	}

	for i, s := range wantStates {
		if trace.States[i] != s {
			t.Fatalf("state %d: expected %s, got %s", i, s, trace.States[i])
		}
	}

	if trace.Actions[0] != nil {
		t.Fatalf("expected no actions entering the initial state, got %v", trace.Actions[0])
	}

	if len(trace.Actions[1]) != 1 || trace.Actions[1][0].Variable != y || trace.Actions[1][0].Value.IntValue().Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("expected y:=7 entering state 1, got %v", trace.Actions[1])
	}

	if len(trace.Actions[2]) != 1 || trace.Actions[2][0].Variable != y || trace.Actions[2][0].Value.IntValue().Cmp(big.NewInt(8)) != 0 {
		t.Fatalf("expected y:=8 entering state 2, got %v", trace.Actions[2])
	}
}

func TestWalkBadPredecessorNonIntLiteral(t *testing.T) {
	cfa, _, _, l2, _ := buildLinearCfa(t)

	predecessors := PredecessorMap{
		l2: cfa.Context().BoolLit(true),
	}

	_, err := Walk(cfa, l2, predecessors, core.NewValuation(), nil)

	te, ok := err.(*TraceError)
	if !ok || te.Kind != BadPredecessor {
		t.Fatalf("expected BadPredecessor error, got %v", err)
	}
}

func TestWalkMissingLocation(t *testing.T) {
	cfa, _, _, l2, _ := buildLinearCfa(t)

	predecessors := PredecessorMap{
		l2: cfa.Context().IntLit(big.NewInt(99)),
	}

	_, err := Walk(cfa, l2, predecessors, core.NewValuation(), nil)

	te, ok := err.(*TraceError)
	if !ok || te.Kind != MissingLocation {
		t.Fatalf("expected MissingLocation error, got %v", err)
	}
}

func TestWalkNoMatchingEdge(t *testing.T) {
	cfa, l0, _, l2, _ := buildLinearCfa(t)

	// l0's id as l2's predecessor: there is no direct edge l0->l2.
	predecessors := PredecessorMap{
		l2: cfa.Context().IntLit(big.NewInt(int64(l0.ID()))),
	}

	_, err := Walk(cfa, l2, predecessors, core.NewValuation(), nil)

	te, ok := err.(*TraceError)
	if !ok || te.Kind != NoEdge {
		t.Fatalf("expected NoEdge error, got %v", err)
	}
}

func TestWalkUnexpectedCallEdge(t *testing.T) {
	ctx := core.NewContext()
	sys := automaton.NewAutomataSystem(ctx)

	callee := sys.CreateCfa("callee")

	caller := sys.CreateCfa("caller")
	l0 := caller.Entry()
	l1 := caller.Exit()

	caller.CreateCallTransition(l0, l1, nil, callee, nil, nil)

	predecessors := PredecessorMap{
		l1: ctx.IntLit(big.NewInt(int64(l0.ID()))),
	}

	_, err := Walk(caller, l1, predecessors, core.NewValuation(), nil)

	te, ok := err.(*TraceError)
	if !ok || te.Kind != UnexpectedCall {
		t.Fatalf("expected UnexpectedCall error, got %v", err)
	}
}

func TestWalkAppliesInlineTracking(t *testing.T) {
	cfa, l0, l1, l2, y := buildLinearCfa(t)

	origLoc := &automaton.Location{} // stand-in for a pre-inlining location
	origVar := cfa.Context().NewScopedVariable("y_orig", cfa.Context().IntType())

	inline := &InlineTracking{
		Locations: map[*automaton.Location]*automaton.Location{l1: origLoc},
		Variables: map[*core.Variable]*core.Variable{y: origVar},
	}

	predecessors := PredecessorMap{
		l2: cfa.Context().IntLit(big.NewInt(int64(l1.ID()))),
		l1: cfa.Context().IntLit(big.NewInt(int64(l0.ID()))),
	}

	val := core.NewValuation()
	val.Assign(y, cfa.Context().IntLit(big.NewInt(7)))

	trace, err := Walk(cfa, l2, predecessors, val, inline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trace.States[1] != origLoc {
		t.Fatalf("expected inlined location l1 to be reported as its original, got %v", trace.States[1])
	}

	if trace.States[0] != l0 {
		t.Fatalf("expected untracked location l0 to be reported verbatim")
	}

	if trace.Actions[1][0].Variable != origVar {
		t.Fatalf("expected inlined variable y to be reported as y_orig")
	}
}
