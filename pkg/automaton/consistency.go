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

	"go.uber.org/multierr"

	"github.com/gazer-verify/gazer/pkg/core"
)

// CheckConsistency verifies every adjacency and scope invariant a Cfa is
// supposed to maintain at all times, returning every violation it finds
// rather than stopping at the first (Testable Properties, property 6). A
// nil result means the Cfa is consistent.
func (c *Cfa) CheckConsistency() error {
	var err error

	for _, loc := range c.locations {
		if loc.state != Live {
			continue
		}

		for _, id := range loc.outgoing {
			t := c.transitionByID[id]
			if t == nil || t.state != Live {
				err = multierr.Append(err, fmt.Errorf("location %s has disconnected edge %d in its outgoing list", loc, id))
				continue
			}

			if t.source != loc {
				err = multierr.Append(err, fmt.Errorf("edge %d listed in %s's outgoing but has source %s", id, loc, t.source))
			}
		}

		for _, id := range loc.incoming {
			t := c.transitionByID[id]
			if t == nil || t.state != Live {
				err = multierr.Append(err, fmt.Errorf("location %s has disconnected edge %d in its incoming list", loc, id))
				continue
			}

			if t.target != loc {
				err = multierr.Append(err, fmt.Errorf("edge %d listed in %s's incoming but has target %s", id, loc, t.target))
			}
		}
	}

	for _, t := range c.transitions {
		if t.state != Live {
			continue
		}

		if !containsEdge(t.source.outgoing, t.id) {
			err = multierr.Append(err, fmt.Errorf("edge %d has source %s but is absent from its outgoing list", t.id, t.source))
		}

		if !containsEdge(t.target.incoming, t.id) {
			err = multierr.Append(err, fmt.Errorf("edge %d has target %s but is absent from its incoming list", t.id, t.target))
		}

		if t.source.cfa != c || t.target.cfa != c {
			err = multierr.Append(err, fmt.Errorf("edge %d crosses Cfa boundaries", t.id))
		}
	}

	err = multierr.Append(err, c.checkScopeDisjointness())

	return err
}

func containsEdge(ids []uint32, id uint32) bool {
	for _, e := range ids {
		if e == id {
			return true
		}
	}

	return false
}

func (c *Cfa) checkScopeDisjointness() error {
	var err error

	seen := make(map[*core.Variable]string, len(c.inputs)+len(c.locals))

	for _, v := range c.inputs {
		if prior, dup := seen[v]; dup {
			err = multierr.Append(err, fmt.Errorf("variable %s declared in both %s and input scope", v.Name(), prior))
		}

		seen[v] = "input"
	}

	for _, v := range c.locals {
		if prior, dup := seen[v]; dup {
			err = multierr.Append(err, fmt.Errorf("variable %s declared in both %s and local scope", v.Name(), prior))
		}

		seen[v] = "local"
	}

	for _, v := range c.outputs {
		if indexOf(c.inputs, v) < 0 && indexOf(c.locals, v) < 0 {
			err = multierr.Append(err, fmt.Errorf("output variable %s is not among this Cfa's declared inputs or locals", v.Name()))
		}
	}

	return err
}
