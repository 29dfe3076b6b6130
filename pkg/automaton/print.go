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

// String renders a plain-text dump of this Cfa: its declaration line, its
// locations in id order, then its live edges in insertion order. Traversal
// order follows the original CfaPrinter's Cfa::print (entry first is
// implicit in id order since Entry/Exit are always allocated first).
func (c *Cfa) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "procedure %s(", c.name)
	writeVarList(&b, c.inputs)
	b.WriteString(") -> (")
	writeVarList(&b, c.outputs)
	b.WriteString(")\n{\n")

	for _, v := range c.locals {
		fmt.Fprintf(&b, "    var %s : %s\n", v.Name(), v.Type())
	}

	b.WriteString("\n")

	for _, loc := range c.locations {
		if loc.state != Live {
			continue
		}

		fmt.Fprintf(&b, "    loc $%d", loc.id)

		if loc.IsError() {
			b.WriteString(" error")
		}

		if loc == c.entry {
			b.WriteString(" entry")
		}

		if loc == c.exit {
			b.WriteString(" final")
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")

	for _, t := range c.transitions {
		if t.state != Live {
			continue
		}

		fmt.Fprintf(&b, "    transition %s\n", t)
	}

	b.WriteString("}\n")

	return b.String()
}

func writeVarList(b *strings.Builder, vars []*core.Variable) {
	for i, v := range vars {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(b, "%s : %s", v.Name(), v.Type())
	}
}

// String renders every Cfa in the system, separated by blank lines, in
// creation order.
func (s *AutomataSystem) String() string {
	var b strings.Builder

	for _, c := range s.cfas {
		b.WriteString(c.String())
		b.WriteString("\n")
	}

	return b.String()
}
