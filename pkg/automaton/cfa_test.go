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
	"math/big"
	"testing"

	"github.com/gazer-verify/gazer/pkg/core"
)

func checkOk(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestCfaRoundTrip exercises spec scenario S.5: build L0(entry) -[true]-> L1
// -[g]-> L2(exit) {x:=1}, disconnect L0->L1, then remove unreachable
// locations; only L0 and L2 should remain.
func TestCfaRoundTrip(t *testing.T) {
	ctx := core.NewContext()
	sys := NewAutomataSystem(ctx)
	cfa := sys.CreateCfa("main")

	l0 := cfa.Entry()
	l1 := cfa.CreateLocation()
	l2 := cfa.Exit()

	x := cfa.CreateLocal("x", ctx.IntType())
	g := cfa.CreateLocal("g", ctx.BoolType())

	e01 := cfa.CreateAssignTransition(l0, l1, nil, nil)
	cfa.CreateAssignTransition(l1, l2, ctx.VarRef(g), []Assignment{
		{Variable: x, Value: ctx.IntLit(big.NewInt(1))},
	})

	checkOk(t, cfa.CheckConsistency())

	cfa.DisconnectEdge(e01)
	cfa.RemoveUnreachableLocations()

	if cfa.FindLocationByID(l0.ID()) == nil {
		t.Fatalf("expected entry location L0 to survive")
	}

	if cfa.FindLocationByID(l2.ID()) != nil && l2.State() != Live {
		t.Fatalf("expected exit location L2 to remain live")
	}

	if got := cfa.FindLocationByID(l1.ID()); got != nil {
		t.Fatalf("expected unreachable location L1 to be reclaimed, found %v", got)
	}

	if cfa.NumLocations() != 2 {
		t.Fatalf("expected exactly 2 surviving locations, got %d", cfa.NumLocations())
	}

	checkOk(t, cfa.CheckConsistency())
}

func TestCfaExitSurvivesEvenWhenUnreachable(t *testing.T) {
	ctx := core.NewContext()
	sys := NewAutomataSystem(ctx)
	cfa := sys.CreateCfa("main")

	// No edges at all: exit is unreachable from entry, but must still
	// survive RemoveUnreachableLocations per the spec's open-question
	// resolution.
	cfa.RemoveUnreachableLocations()

	if cfa.FindLocationByID(cfa.Exit().ID()) == nil {
		t.Fatalf("expected exit location to survive despite being unreachable")
	}
}

func TestCreateInputLocalNameCollision(t *testing.T) {
	ctx := core.NewContext()
	sys := NewAutomataSystem(ctx)
	cfa := sys.CreateCfa("main")

	cfa.CreateInput("x", ctx.IntType())

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on duplicate variable name")
		}

		ce, ok := r.(*core.ContractError)
		if !ok || ce.Kind != core.NameCollision {
			t.Fatalf("expected *core.ContractError{NameCollision}, got %v", r)
		}
	}()

	cfa.CreateLocal("x", ctx.BoolType())
}

func TestTwoCfasMayReuseVariableNames(t *testing.T) {
	ctx := core.NewContext()
	sys := NewAutomataSystem(ctx)

	a := sys.CreateCfa("a")
	b := sys.CreateCfa("b")

	// Must not panic: variable scoping is per-Cfa, not global to the
	// Context.
	a.CreateLocal("tmp", ctx.IntType())
	b.CreateLocal("tmp", ctx.IntType())
}

func TestAddOutputRequiresPriorDeclaration(t *testing.T) {
	ctx := core.NewContext()
	sys := NewAutomataSystem(ctx)
	cfaA := sys.CreateCfa("a")
	cfaB := sys.CreateCfa("b")

	foreign := cfaB.CreateLocal("y", ctx.IntType())

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic adding a foreign variable as output")
		}
	}()

	cfaA.AddOutput(foreign)
}

func TestCreateCallTransitionBindingArity(t *testing.T) {
	ctx := core.NewContext()
	sys := NewAutomataSystem(ctx)

	callee := sys.CreateCfa("callee")
	in := callee.CreateInput("n", ctx.IntType())
	out := callee.CreateLocal("r", ctx.IntType())
	callee.AddOutput(out)

	caller := sys.CreateCfa("caller")
	l0 := caller.Entry()
	l1 := caller.Exit()
	result := caller.CreateLocal("result", ctx.IntType())

	call := caller.CreateCallTransition(l0, l1, nil, callee,
		[]InputBinding{{CalleeInput: in, Value: ctx.IntLit(big.NewInt(5))}},
		[]OutputBinding{{CallerVar: result, CalleeOutput: out}},
	)

	if !call.IsCall() || call.Callee() != callee {
		t.Fatalf("expected a Call transition referencing callee")
	}

	checkOk(t, caller.CheckConsistency())

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on arity mismatch")
		}
	}()

	caller.CreateCallTransition(l0, l1, nil, callee, nil, nil)
}

// TestClearDisconnectedElementsPreservesSurvivingEdgeIdentity reproduces the
// gazer demo scenario: a lower-id transition is disconnected while two
// higher-id transitions stay live. ClearDisconnectedElements must not let
// the surviving transitions' stable ids drift out of sync with how they're
// looked up, or CheckConsistency and Incoming/Outgoing resolve the wrong
// edge (or panic) afterward.
func TestClearDisconnectedElementsPreservesSurvivingEdgeIdentity(t *testing.T) {
	ctx := core.NewContext()
	sys := NewAutomataSystem(ctx)
	cfa := sys.CreateCfa("main")

	y := cfa.CreateLocal("y", ctx.IntType())

	l0 := cfa.Entry()
	l1 := cfa.CreateLocation()
	l2 := cfa.Exit()
	dead := cfa.CreateLocation()

	deadEdge := cfa.CreateAssignTransition(l0, dead, ctx.BoolLit(false), nil)
	e01 := cfa.CreateAssignTransition(l0, l1, nil, []Assignment{
		{Variable: y, Value: ctx.IntLit(big.NewInt(7))},
	})
	e12 := cfa.CreateAssignTransition(l1, l2, nil, []Assignment{
		{Variable: y, Value: ctx.IntLit(big.NewInt(8))},
	})

	cfa.DisconnectEdge(deadEdge)
	cfa.RemoveUnreachableLocations()

	checkOk(t, cfa.CheckConsistency())

	out := l0.Outgoing()
	if len(out) != 1 || out[0] != e01 {
		t.Fatalf("expected l0's sole surviving outgoing edge to be e01, got %v", out)
	}

	in := l2.Incoming()
	if len(in) != 1 || in[0] != e12 {
		t.Fatalf("expected l2's sole incoming edge to be e12, got %v", in)
	}
}

func TestDisconnectEdgeIsIdempotent(t *testing.T) {
	ctx := core.NewContext()
	sys := NewAutomataSystem(ctx)
	cfa := sys.CreateCfa("main")

	l1 := cfa.CreateLocation()
	e := cfa.CreateAssignTransition(cfa.Entry(), l1, nil, nil)

	cfa.DisconnectEdge(e)
	cfa.DisconnectEdge(e) // must not panic or double-remove

	if e.State() != Disconnected {
		t.Fatalf("expected edge to remain Disconnected")
	}

	if cfa.Entry().NumOutgoing() != 0 {
		t.Fatalf("expected entry to have no outgoing edges after disconnect")
	}
}
