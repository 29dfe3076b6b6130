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

// Package cli implements gazer's cobra command tree: small demos that
// exercise pkg/core, pkg/automaton, pkg/sexpr and pkg/cex end to end
// without attempting to be a full verification front-end.
package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled in when building with make; left blank under "go run".
var Version string

var rootCmd = &cobra.Command{
	Use:   "gazer",
	Short: "A software model-checking frontend toolbox.",
	Long:  "gazer builds and inspects symbolic expression DAGs and control-flow automata for bounded model checking frontends.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		if getFlag(cmd, "no-color") || !term.IsTerminal(int(os.Stdout.Fd())) {
			log.SetFormatter(&log.TextFormatter{DisableColors: true})
		}
	},
}

// Execute runs the root command. Called once by cmd/gazer's main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("json", false, "accepted for all subcommands; no subcommand reads it (dump always emits JSON)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable coloured log output")
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}
