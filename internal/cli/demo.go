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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gazer-verify/gazer/pkg/automaton"
	"github.com/gazer-verify/gazer/pkg/cex"
	"github.com/gazer-verify/gazer/pkg/core"
	"github.com/gazer-verify/gazer/pkg/core/builder"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a small CFA, prune it, then reconstruct a counterexample trace across it.",
	Run: func(cmd *cobra.Command, args []string) {
		runDemo()
	},
}

// runDemo builds a CFA with a three-location path to its error location and
// one dead branch off entry, prunes the dead
// branch with RemoveUnreachableLocations, then walks a counterexample back
// from its error location with cex.Walk.
func runDemo() {
	ctx := core.NewContext()
	b := builder.NewFoldingBuilder(ctx)
	sys := automaton.NewAutomataSystem(ctx)
	cfa := sys.CreateCfa("main")
	sys.SetMain(cfa)

	y := cfa.CreateLocal("y", ctx.IntType())

	l0 := cfa.Entry()
	l1 := cfa.CreateLocation()
	l2 := cfa.CreateErrorLocation()

	dead := cfa.CreateLocation()
	deadEdge := cfa.CreateAssignTransition(l0, dead, b.BoolLit(false), nil)

	cfa.CreateAssignTransition(l0, l1, nil, []automaton.Assignment{
		{Variable: y, Value: b.IntLit(big.NewInt(7))},
	})
	cfa.CreateAssignTransition(l1, l2, nil, []automaton.Assignment{
		{Variable: y, Value: b.Add(b.VarRef(y), b.IntLit(big.NewInt(1)))},
	})

	log.Debugf("disconnecting dead edge %s before pruning", deadEdge)
	cfa.DisconnectEdge(deadEdge)
	cfa.RemoveUnreachableLocations()

	if err := cfa.CheckConsistency(); err != nil {
		log.Fatalf("pruned Cfa failed its consistency check: %v", err)
	}

	fmt.Print(cfa.String())

	predecessors := cex.PredecessorMap{
		l2: ctx.IntLit(big.NewInt(int64(l1.ID()))),
		l1: ctx.IntLit(big.NewInt(int64(l0.ID()))),
	}

	val := core.NewValuation()
	val.Assign(y, ctx.IntLit(big.NewInt(7)))

	trace, err := cex.Walk(cfa, l2, predecessors, val, nil)
	if err != nil {
		log.Fatalf("trace reconstruction failed: %v", err)
	}

	fmt.Println("counterexample trace:")

	for i, state := range trace.States {
		fmt.Printf("  %s %v\n", state, trace.Actions[i])
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
