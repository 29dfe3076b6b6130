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

import "github.com/gazer-verify/gazer/pkg/core"

// AutomataSystem owns a Context and a set of uniquely-named Cfas, plus a
// single (mutable) pointer to the main entry-point Cfa. The system grows
// monotonically: no Cfa may be removed once added.
type AutomataSystem struct {
	ctx     *core.Context
	cfas    []*Cfa
	byName  map[string]*Cfa
	mainCfa *Cfa
}

// NewAutomataSystem constructs an empty system over ctx.
func NewAutomataSystem(ctx *core.Context) *AutomataSystem {
	return &AutomataSystem{ctx: ctx, byName: make(map[string]*Cfa)}
}

// Context returns the Context shared by every Cfa in this system.
func (s *AutomataSystem) Context() *core.Context { return s.ctx }

// CreateCfa allocates a fresh, empty Cfa named name. Panics with
// *core.ContractError{NameCollision} if name is already in use.
func (s *AutomataSystem) CreateCfa(name string) *Cfa {
	if _, exists := s.byName[name]; exists {
		panic(&core.ContractError{Kind: core.NameCollision, Message: "Cfa named " + name + " already exists in this system"})
	}

	c := newCfa(s.ctx, s, name)
	s.cfas = append(s.cfas, c)
	s.byName[name] = c

	return c
}

// GetByName returns the Cfa named name, or nil if none exists.
func (s *AutomataSystem) GetByName(name string) *Cfa { return s.byName[name] }

// Cfas returns every Cfa in this system, in creation order.
func (s *AutomataSystem) Cfas() []*Cfa { return s.cfas }

// NumAutomata returns the number of Cfas in this system.
func (s *AutomataSystem) NumAutomata() int { return len(s.cfas) }

// Main returns the designated main Cfa, or nil if SetMain has never been
// called.
func (s *AutomataSystem) Main() *Cfa { return s.mainCfa }

// SetMain designates c as the system's main entry point. c must already
// belong to this system.
func (s *AutomataSystem) SetMain(c *Cfa) {
	if c.parent != s {
		panic(&core.ContractError{Kind: core.TypeMismatch, Message: "SetMain: Cfa does not belong to this system"})
	}

	s.mainCfa = c
}
