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

// Package cex reconstructs a linear counterexample trace from a bounded
// model checker's predecessor map and solver valuation, walking a CFA
// backward from its error location and reversing the result.
package cex

import "fmt"

// TraceErrorKind classifies why trace reconstruction failed.
type TraceErrorKind uint8

const (
	// BadPredecessor means the predecessor expression for a location did
	// not evaluate to an Int literal, or an assignment value on the traced
	// edge failed to evaluate.
	BadPredecessor TraceErrorKind = iota
	// MissingLocation means the predecessor id does not resolve to any
	// location in the CFA.
	MissingLocation
	// NoEdge means no live incoming edge has the resolved predecessor as
	// its source.
	NoEdge
	// UnexpectedCall means the matching edge is a Call edge; the BMC
	// engine is required to pre-inline Call edges before handing the trace
	// to this walker.
	UnexpectedCall
)

func (k TraceErrorKind) String() string {
	switch k {
	case BadPredecessor:
		return "bad predecessor"
	case MissingLocation:
		return "missing location"
	case NoEdge:
		return "no matching edge"
	case UnexpectedCall:
		return "unexpected call edge"
	default:
		return "trace error"
	}
}

// TraceError reports a fatal failure while walking a counterexample trace.
type TraceError struct {
	Kind    TraceErrorKind
	Message string
}

// Error implements the error interface.
func (e *TraceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func fail(kind TraceErrorKind, format string, args ...any) *TraceError {
	return &TraceError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
