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
package core

import "fmt"

// ContractErrorKind classifies a fatal precondition violation. These are
// never returned as errors: a violation is a programmer error, so Gazer
// panics with a *ContractError value instead (see SPEC_FULL.md §3).
type ContractErrorKind uint8

const (
	// TypeMismatch indicates an operand or assignment's type did not
	// satisfy a kind's precondition.
	TypeMismatch ContractErrorKind = iota
	// ArityMismatch indicates an operand count did not satisfy a kind's
	// precondition.
	ArityMismatch
	// NameCollision indicates a duplicate name inside a single scope.
	NameCollision
)

func (k ContractErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case NameCollision:
		return "NameCollision"
	default:
		return "UnknownContractError"
	}
}

// ContractError is panicked by InternExpr and related constructors when a
// caller violates a documented precondition.
type ContractError struct {
	Kind    ContractErrorKind
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func failContract(kind ContractErrorKind, format string, args ...any) {
	panic(&ContractError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// EvaluationErrorKind classifies a recoverable failure of the Evaluator.
type EvaluationErrorKind uint8

const (
	// EvalUndef indicates the evaluator encountered Undef at a position
	// requiring a definite literal.
	EvalUndef EvaluationErrorKind = iota
	// EvalDivByZero indicates a division, modulo, or remainder by zero.
	EvalDivByZero
	// EvalNonLiteralOperand indicates an operand did not reduce to a
	// literal where one was required.
	EvalNonLiteralOperand
	// EvalUnsupported indicates the evaluator does not (and, per the
	// spec, need not) handle this node.
	EvalUnsupported
	// EvalUndefinedVariable indicates a strict-mode evaluation referenced
	// a variable absent from the valuation.
	EvalUndefinedVariable
)

func (k EvaluationErrorKind) String() string {
	switch k {
	case EvalUndef:
		return "Undef"
	case EvalDivByZero:
		return "DivByZero"
	case EvalNonLiteralOperand:
		return "NonLiteralOperand"
	case EvalUnsupported:
		return "Unsupported"
	case EvalUndefinedVariable:
		return "UndefinedVariable"
	default:
		return "UnknownEvaluationError"
	}
}

// EvaluationError is returned by Evaluator.Eval.
type EvaluationError struct {
	Kind    EvaluationErrorKind
	Message string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error (%s): %s", e.Kind, e.Message)
}

func newEvalError(kind EvaluationErrorKind, format string, args ...any) *EvaluationError {
	return &EvaluationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
