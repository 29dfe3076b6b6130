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
	"strconv"

	"go.uber.org/atomic"

	"github.com/gazer-verify/gazer/pkg/core"
)

// Cfa is a control flow automaton: a named procedure with typed input,
// output, and local variables, a set of locations (two of which, entry and
// exit, are fixed sentinels), and a set of guarded Assign/Call transitions.
// Locations and transitions live in Cfa-level arenas indexed by their id;
// Location.incoming/outgoing hold only ids into the transition arena, never
// pointers, so disconnection never has to chase a graph of pointers.
type Cfa struct {
	ctx    *core.Context
	parent *AutomataSystem
	name   string

	locations      []*Location
	locationByID   map[uint32]*Location
	nextLocationID atomic.Uint32

	transitions      []*Transition
	transitionByID   map[uint32]*Transition
	nextTransitionID atomic.Uint32

	entry *Location
	exit  *Location

	errorCodes map[*Location]*core.Expr

	inputs  []*core.Variable
	outputs []*core.Variable
	locals  []*core.Variable
	names   map[string]*core.Variable
}

func newCfa(ctx *core.Context, parent *AutomataSystem, name string) *Cfa {
	c := &Cfa{
		ctx:            ctx,
		parent:         parent,
		name:           name,
		locationByID:   make(map[uint32]*Location),
		transitionByID: make(map[uint32]*Transition),
		errorCodes:     make(map[*Location]*core.Expr),
		names:          make(map[string]*core.Variable),
	}

	c.entry = c.createLocationKind(StateLocation)
	c.exit = c.createLocationKind(StateLocation)

	return c
}

// Name returns this Cfa's name, unique within its AutomataSystem.
func (c *Cfa) Name() string { return c.name }

// Context returns the Context this Cfa's variables and expressions belong
// to.
func (c *Cfa) Context() *core.Context { return c.ctx }

// Entry returns the fixed entry location.
func (c *Cfa) Entry() *Location { return c.entry }

// Exit returns the fixed exit location.
func (c *Cfa) Exit() *Location { return c.exit }

// Locations returns every location in this Cfa, live or not, in allocation
// order.
func (c *Cfa) Locations() []*Location { return c.locations }

// Transitions returns every transition in this Cfa, live or not, in
// allocation order.
func (c *Cfa) Transitions() []*Transition { return c.transitions }

// Inputs returns the input variables, in declaration order.
func (c *Cfa) Inputs() []*core.Variable { return c.inputs }

// Outputs returns the output variables, in declaration order.
func (c *Cfa) Outputs() []*core.Variable { return c.outputs }

// Locals returns the local variables, in declaration order.
func (c *Cfa) Locals() []*core.Variable { return c.locals }

// NumLocations returns the total number of locations, live or not.
func (c *Cfa) NumLocations() int { return len(c.locations) }

// NumTransitions returns the total number of transitions, live or not.
func (c *Cfa) NumTransitions() int { return len(c.transitions) }

// CreateLocation allocates a fresh State location with the next id.
func (c *Cfa) CreateLocation() *Location {
	return c.createLocationKind(StateLocation)
}

// CreateErrorLocation allocates a fresh Error location with the next id. Its
// error-code expression is unset until AddErrorCode is called; per the
// failure semantics, a location may remain without one (a
// non-differentiated error).
func (c *Cfa) CreateErrorLocation() *Location {
	return c.createLocationKind(ErrorLocation)
}

func (c *Cfa) createLocationKind(kind LocationKind) *Location {
	loc := &Location{
		id:   c.nextLocationID.Inc() - 1,
		kind: kind,
		cfa:  c,
	}

	c.locations = append(c.locations, loc)
	c.locationByID[loc.id] = loc

	return loc
}

// AddErrorCode binds an Int or Bv error-code expression to an error
// location. Panics with *core.ContractError{TypeMismatch} if loc is not an
// Error location or typ is neither Int nor Bv.
func (c *Cfa) AddErrorCode(loc *Location, errorCode *core.Expr) {
	if !loc.IsError() {
		panic(&core.ContractError{Kind: core.TypeMismatch, Message: "AddErrorCode: location is not an Error location"})
	}

	typ := errorCode.Type()
	if typ.Kind() != core.TypeInt && typ.Kind() != core.TypeBv {
		panic(&core.ContractError{Kind: core.TypeMismatch, Message: "AddErrorCode: error-code expression must be Int or Bv"})
	}

	c.errorCodes[loc] = errorCode
}

// ErrorCode returns the error-code expression bound to loc, or nil if none
// was ever bound.
func (c *Cfa) ErrorCode(loc *Location) *core.Expr {
	return c.errorCodes[loc]
}

// CreateAssignTransition creates a guarded Assign edge from src to tgt. A
// nil guard is treated as BoolLit(true). Registers the edge in
// src.outgoing and tgt.incoming.
func (c *Cfa) CreateAssignTransition(
	src, tgt *Location, guard *core.Expr, assignments []Assignment,
) *Transition {
	c.requireOwnLocation(src, "CreateAssignTransition source")
	c.requireOwnLocation(tgt, "CreateAssignTransition target")
	guard = c.normalizeGuard(guard)

	for _, a := range assignments {
		if a.Variable.Type() != a.Value.Type() {
			panic(&core.ContractError{
				Kind:    core.TypeMismatch,
				Message: "assignment to " + a.Variable.Name() + " has mismatched value type",
			})
		}
	}

	t := &Transition{
		id:          c.nextTransitionID.Inc() - 1,
		source:      src,
		target:      tgt,
		guard:       guard,
		kind:        AssignTransitionKind,
		assignments: append([]Assignment{}, assignments...),
	}

	return c.registerTransition(t)
}

// CreateCallTransition creates a guarded Call edge from src to tgt invoking
// callee. callee must belong to the same AutomataSystem. Input bindings
// must cover exactly callee.Inputs() (by arity and type); output bindings'
// callee-side variables must be members of callee.Outputs().
func (c *Cfa) CreateCallTransition(
	src, tgt *Location, guard *core.Expr, callee *Cfa,
	inputs []InputBinding, outputs []OutputBinding,
) *Transition {
	c.requireOwnLocation(src, "CreateCallTransition source")
	c.requireOwnLocation(tgt, "CreateCallTransition target")

	if callee.parent != c.parent {
		panic(&core.ContractError{Kind: core.TypeMismatch, Message: "call callee must belong to the same automata system"})
	}

	guard = c.normalizeGuard(guard)

	if len(inputs) != len(callee.inputs) {
		panic(&core.ContractError{
			Kind:    core.ArityMismatch,
			Message: "call to " + callee.name + " expected " + strconv.Itoa(len(callee.inputs)) + " input bindings",
		})
	}

	for i, in := range inputs {
		if in.CalleeInput != callee.inputs[i] {
			panic(&core.ContractError{Kind: core.TypeMismatch, Message: "input binding does not match callee's input at this position"})
		}

		if in.CalleeInput.Type() != in.Value.Type() {
			panic(&core.ContractError{Kind: core.TypeMismatch, Message: "input binding value type does not match callee input type"})
		}
	}

	for _, out := range outputs {
		if !callee.isOutput(out.CalleeOutput) {
			panic(&core.ContractError{Kind: core.TypeMismatch, Message: "output binding's callee variable is not one of callee's outputs"})
		}

		if out.CallerVar.Type() != out.CalleeOutput.Type() {
			panic(&core.ContractError{Kind: core.TypeMismatch, Message: "output binding type mismatch"})
		}
	}

	t := &Transition{
		id:      c.nextTransitionID.Inc() - 1,
		source:  src,
		target:  tgt,
		guard:   guard,
		kind:    CallTransitionKind,
		callee:  callee,
		inputs:  append([]InputBinding{}, inputs...),
		outputs: append([]OutputBinding{}, outputs...),
	}

	return c.registerTransition(t)
}

func (c *Cfa) normalizeGuard(guard *core.Expr) *core.Expr {
	if guard == nil {
		return c.ctx.BoolLit(true)
	}

	if guard.Type() != c.ctx.BoolType() {
		panic(&core.ContractError{Kind: core.TypeMismatch, Message: "transition guard must be Bool"})
	}

	return guard
}

func (c *Cfa) registerTransition(t *Transition) *Transition {
	c.transitions = append(c.transitions, t)
	c.transitionByID[t.id] = t
	t.source.addOutgoing(t.id)
	t.target.addIncoming(t.id)

	return t
}

func (c *Cfa) requireOwnLocation(loc *Location, op string) {
	if loc.cfa != c {
		panic(&core.ContractError{Kind: core.TypeMismatch, Message: op + ": location does not belong to this Cfa"})
	}
}

// CreateInput declares a fresh input variable. name must be unique among
// this Cfa's inputs, outputs, and locals.
func (c *Cfa) CreateInput(name string, typ *core.Type) *core.Variable {
	v := c.declareVariable(name, typ)
	c.inputs = append(c.inputs, v)

	return v
}

// CreateLocal declares a fresh local variable. name must be unique among
// this Cfa's inputs, outputs, and locals.
func (c *Cfa) CreateLocal(name string, typ *core.Type) *core.Variable {
	v := c.declareVariable(name, typ)
	c.locals = append(c.locals, v)

	return v
}

func (c *Cfa) declareVariable(name string, typ *core.Type) *core.Variable {
	if _, exists := c.names[name]; exists {
		panic(&core.ContractError{Kind: core.NameCollision, Message: "variable " + name + " already declared in Cfa " + c.name})
	}

	v := c.ctx.NewScopedVariable(name, typ)
	c.names[name] = v

	return v
}

// AddOutput marks an already-declared variable (input or local) as an
// output. Panics with *core.ContractError{TypeMismatch} if var was not
// first declared in this Cfa via CreateInput/CreateLocal.
func (c *Cfa) AddOutput(v *core.Variable) {
	if c.names[v.Name()] != v {
		panic(&core.ContractError{Kind: core.TypeMismatch, Message: "AddOutput: variable " + v.Name() + " was not declared in this Cfa"})
	}

	if c.isOutput(v) {
		return
	}

	c.outputs = append(c.outputs, v)
}

func (c *Cfa) isOutput(v *core.Variable) bool {
	for _, o := range c.outputs {
		if o == v {
			return true
		}
	}

	return false
}

// InputNumber returns v's positional index among this Cfa's inputs.
// Returns -1 if v is not an input.
func (c *Cfa) InputNumber(v *core.Variable) int { return indexOf(c.inputs, v) }

// OutputNumber returns v's positional index among this Cfa's outputs.
// Returns -1 if v is not an output.
func (c *Cfa) OutputNumber(v *core.Variable) int { return indexOf(c.outputs, v) }

func indexOf(vars []*core.Variable, v *core.Variable) int {
	for i, c := range vars {
		if c == v {
			return i
		}
	}

	return -1
}

// FindLocationByID returns the location with the given id, or nil if none
// exists (including a previously-reclaimed id).
func (c *Cfa) FindLocationByID(id uint32) *Location { return c.locationByID[id] }

// RemoveLocalsIf removes every local variable satisfying pred. Removed
// variables remain valid *core.Variable values (existing expressions
// referencing them are untouched); they simply stop appearing in Locals().
func (c *Cfa) RemoveLocalsIf(pred func(*core.Variable) bool) {
	kept := c.locals[:0]

	for _, v := range c.locals {
		if pred(v) {
			delete(c.names, v.Name())
		} else {
			kept = append(kept, v)
		}
	}

	c.locals = kept
}

func (c *Cfa) resolveEdges(ids []uint32) []*Transition {
	out := make([]*Transition, len(ids))
	for i, id := range ids {
		out[i] = c.transitionByID[id]
	}

	return out
}
