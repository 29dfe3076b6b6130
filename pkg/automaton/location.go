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

// Package automaton implements Gazer's control-flow-automaton data model: a
// Cfa owns its locations and transitions in stable-index arenas (no
// parent/child back-pointers beyond the adjacency lists themselves), and an
// AutomataSystem owns a set of uniquely-named Cfas plus a designated main
// entry point.
package automaton

import "fmt"

// LocationKind distinguishes ordinary control-flow locations from error
// locations.
type LocationKind uint8

const (
	// StateLocation is an ordinary control-flow location.
	StateLocation LocationKind = iota
	// ErrorLocation signals a reachable error condition.
	ErrorLocation
)

func (k LocationKind) String() string {
	if k == ErrorLocation {
		return "error"
	}

	return "state"
}

// ElementState is a Location's or Transition's position in the shared
// lifecycle state machine: Live elements participate in the Cfa's
// adjacency; Disconnected elements have been dropped from adjacency but
// still occupy a slot; Reclaimed elements have been bulk-removed by
// ClearDisconnectedElements and must never be referenced again.
type ElementState uint8

const (
	// Live is the initial state: the element participates in adjacency
	// and can gain/lose edges.
	Live ElementState = iota
	// Disconnected means the element has been unlinked from adjacency but
	// its slot (and id) has not yet been reclaimed.
	Disconnected
	// Reclaimed is terminal: the element has been dropped from the Cfa's
	// arena by ClearDisconnectedElements.
	Reclaimed
)

// Location is a single control-flow point in a Cfa. Its id is unique and
// monotonic within its owning Cfa; entry and exit are ordinary locations
// distinguished only by the Cfa's own entry/exit pointers, not by any field
// here.
type Location struct {
	id    uint32
	kind  LocationKind
	cfa   *Cfa
	state ElementState

	// incoming/outgoing hold transition ids (stable indices into the
	// owning Cfa's transition arena), preserving insertion order.
	incoming []uint32
	outgoing []uint32
}

// ID returns this location's Cfa-unique, monotonically allocated id.
func (l *Location) ID() uint32 { return l.id }

// Kind reports whether this is a State or Error location.
func (l *Location) Kind() LocationKind { return l.kind }

// IsError reports whether this is an error location.
func (l *Location) IsError() bool { return l.kind == ErrorLocation }

// Automaton returns the Cfa this location belongs to.
func (l *Location) Automaton() *Cfa { return l.cfa }

// State returns this location's lifecycle state.
func (l *Location) State() ElementState { return l.state }

// NumIncoming returns the number of live incoming edges.
func (l *Location) NumIncoming() int { return len(l.incoming) }

// NumOutgoing returns the number of live outgoing edges.
func (l *Location) NumOutgoing() int { return len(l.outgoing) }

// Incoming returns the transitions entering this location, in insertion
// order.
func (l *Location) Incoming() []*Transition {
	return l.cfa.resolveEdges(l.incoming)
}

// Outgoing returns the transitions leaving this location, in insertion
// order.
func (l *Location) Outgoing() []*Transition {
	return l.cfa.resolveEdges(l.outgoing)
}

func (l *Location) String() string {
	switch {
	case l.cfa.entry == l:
		return fmt.Sprintf("entry(%d)", l.id)
	case l.cfa.exit == l:
		return fmt.Sprintf("exit(%d)", l.id)
	default:
		return fmt.Sprintf("$%d", l.id)
	}
}

func (l *Location) addIncoming(edgeID uint32) { l.incoming = append(l.incoming, edgeID) }
func (l *Location) addOutgoing(edgeID uint32) { l.outgoing = append(l.outgoing, edgeID) }

func (l *Location) removeIncoming(edgeID uint32) {
	l.incoming = removeUint32(l.incoming, edgeID)
}

func (l *Location) removeOutgoing(edgeID uint32) {
	l.outgoing = removeUint32(l.outgoing, edgeID)
}

func removeUint32(s []uint32, v uint32) []uint32 {
	out := s[:0]

	for _, e := range s {
		if e != v {
			out = append(out, e)
		}
	}

	return out
}
