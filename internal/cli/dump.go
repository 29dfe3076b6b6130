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
package cli

import (
	"fmt"
	"math/big"

	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gazer-verify/gazer/pkg/automaton"
	"github.com/gazer-verify/gazer/pkg/core"
	"github.com/gazer-verify/gazer/pkg/core/builder"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a JSON summary of a CFA's locations and transitions.",
	Run: func(cmd *cobra.Command, args []string) {
		cfa := sampleCfa()

		summary, err := json.MarshalIndent(summarizeCfa(cfa), "", "  ")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(string(summary))
	},
}

// cfaSummary is the JSON shape dump emits: one entry per live location, one
// per live transition, named by id rather than by their internal pointer
// representation.
type cfaSummary struct {
	Name        string              `json:"name"`
	Inputs      []string            `json:"inputs"`
	Outputs     []string            `json:"outputs"`
	Locals      []string            `json:"locals"`
	Locations   []locationSummary   `json:"locations"`
	Transitions []transitionSummary `json:"transitions"`
}

type locationSummary struct {
	ID    uint32 `json:"id"`
	Kind  string `json:"kind"`
	Entry bool   `json:"entry"`
	Exit  bool   `json:"exit"`
}

type transitionSummary struct {
	ID     uint32 `json:"id"`
	Source uint32 `json:"source"`
	Target uint32 `json:"target"`
	Guard  string `json:"guard"`
	Kind   string `json:"kind"`
}

func summarizeCfa(cfa *automaton.Cfa) cfaSummary {
	s := cfaSummary{
		Name:    cfa.Name(),
		Inputs:  variableNames(cfa.Inputs()),
		Outputs: variableNames(cfa.Outputs()),
		Locals:  variableNames(cfa.Locals()),
	}

	for _, loc := range cfa.Locations() {
		if loc.State() != automaton.Live {
			continue
		}

		s.Locations = append(s.Locations, locationSummary{
			ID:    loc.ID(),
			Kind:  loc.Kind().String(),
			Entry: loc == cfa.Entry(),
			Exit:  loc == cfa.Exit(),
		})
	}

	for _, t := range cfa.Transitions() {
		if t.State() != automaton.Live {
			continue
		}

		s.Transitions = append(s.Transitions, transitionSummary{
			ID:     t.ID(),
			Source: t.Source().ID(),
			Target: t.Target().ID(),
			Guard:  t.Guard().String(),
			Kind:   t.Kind().String(),
		})
	}

	return s
}

func variableNames(vars []*core.Variable) []string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name()
	}

	return names
}

func sampleCfa() *automaton.Cfa {
	ctx := core.NewContext()
	b := builder.NewFoldingBuilder(ctx)
	sys := automaton.NewAutomataSystem(ctx)
	cfa := sys.CreateCfa("main")

	y := cfa.CreateLocal("y", ctx.IntType())

	l1 := cfa.CreateLocation()
	l2 := cfa.CreateErrorLocation()

	cfa.CreateAssignTransition(cfa.Entry(), l1, nil, []automaton.Assignment{
		{Variable: y, Value: b.IntLit(big.NewInt(7))},
	})
	cfa.CreateAssignTransition(l1, l2, nil, []automaton.Assignment{
		{Variable: y, Value: b.Add(b.VarRef(y), b.IntLit(big.NewInt(1)))},
	})

	return cfa
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
