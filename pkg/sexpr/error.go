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
package sexpr

import "fmt"

// SyntaxErrorKind classifies why parsing failed.
type SyntaxErrorKind uint8

const (
	// UnbalancedParen means a ')' was seen with no matching '('. Input that
	// ends with unclosed lists is reported as UnexpectedEOF.
	UnbalancedParen SyntaxErrorKind = iota
	// UnexpectedEOF means the input ended in the middle of a list.
	UnexpectedEOF
	// EmptyInput means the input held no token at all.
	EmptyInput
	// TrailingInput means more than one top-level Value was found where
	// Parse expected exactly one.
	TrailingInput
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case UnbalancedParen:
		return "unbalanced paren"
	case UnexpectedEOF:
		return "unexpected end-of-file"
	case EmptyInput:
		return "empty input"
	case TrailingInput:
		return "trailing input"
	default:
		return "syntax error"
	}
}

// SyntaxError is a structured parse error: the rune offset at which
// parsing failed, and the kind of failure. Mirrors the teacher's
// SyntaxError shape (position + message) simplified to the two fields
// spec.md's ParseError requires.
type SyntaxError struct {
	Position int
	Kind     SyntaxErrorKind
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d: %s", e.Position, e.Kind)
}
