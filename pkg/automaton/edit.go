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

// DisconnectEdge removes e from its endpoints' adjacency lists and marks it
// Disconnected. Idempotent: disconnecting an already-disconnected edge is a
// no-op. The Transition's storage is not freed until
// ClearDisconnectedElements runs.
func (c *Cfa) DisconnectEdge(e *Transition) {
	if e.state != Live {
		return
	}

	e.source.removeOutgoing(e.id)
	e.target.removeIncoming(e.id)
	e.state = Disconnected
}

// DisconnectLocation removes loc from the location table's active set and
// disconnects every edge still attached to it. Idempotent.
func (c *Cfa) DisconnectLocation(loc *Location) {
	if loc.state != Live {
		return
	}

	for _, id := range append([]uint32{}, loc.outgoing...) {
		c.DisconnectEdge(c.transitionByID[id])
	}

	for _, id := range append([]uint32{}, loc.incoming...) {
		c.DisconnectEdge(c.transitionByID[id])
	}

	loc.state = Disconnected
}

// ClearDisconnectedElements bulk-reclaims every Disconnected location and
// transition: dropped from the Cfa's arenas and the id→Location table,
// transitioning Disconnected → Reclaimed. Live elements are untouched.
func (c *Cfa) ClearDisconnectedElements() {
	liveLocations := c.locations[:0]

	for _, loc := range c.locations {
		if loc.state == Disconnected {
			loc.state = Reclaimed
			delete(c.locationByID, loc.id)
		} else {
			liveLocations = append(liveLocations, loc)
		}
	}

	c.locations = liveLocations

	liveTransitions := c.transitions[:0]

	for _, t := range c.transitions {
		if t.state == Disconnected {
			t.state = Reclaimed
			delete(c.transitionByID, t.id)
		} else {
			liveTransitions = append(liveTransitions, t)
		}
	}

	c.transitions = liveTransitions
}

// RemoveUnreachableLocations disconnects every location not forward-
// reachable from Entry along live edges, except Exit (which is always
// preserved regardless of reachability — see SPEC_FULL.md §9), then calls
// ClearDisconnectedElements.
func (c *Cfa) RemoveUnreachableLocations() {
	reached := make(map[*Location]bool, len(c.locations))

	queue := []*Location{c.entry}
	reached[c.entry] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, id := range cur.outgoing {
			t := c.transitionByID[id]
			if !reached[t.target] {
				reached[t.target] = true
				queue = append(queue, t.target)
			}
		}
	}

	for _, loc := range c.locations {
		if loc.state == Live && !reached[loc] && loc != c.exit {
			c.DisconnectLocation(loc)
		}
	}

	c.ClearDisconnectedElements()
}
