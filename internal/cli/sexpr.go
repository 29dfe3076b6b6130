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
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gazer-verify/gazer/pkg/sexpr"
)

var sexprCmd = &cobra.Command{
	Use:   "sexpr",
	Short: "Parse an S-expression and print it back in canonical form.",
	Run: func(cmd *cobra.Command, args []string) {
		text, err := readSexprInput(cmd)
		if err != nil {
			log.Fatal(err)
		}

		values, err := sexpr.ParseAll(text)
		if err != nil {
			log.Fatal(err)
		}

		for _, v := range values {
			fmt.Println(v.String())
		}
	},
}

func readSexprInput(cmd *cobra.Command) (string, error) {
	filename, err := cmd.Flags().GetString("file")
	if err != nil {
		return "", err
	}

	if filename == "" {
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}

		return string(bytes), nil
	}

	bytes, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

func init() {
	sexprCmd.Flags().String("file", "", "read the S-expression from a file instead of stdin")
	rootCmd.AddCommand(sexprCmd)
}
