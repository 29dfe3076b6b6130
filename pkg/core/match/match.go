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

// Package match implements a small combinator library for recognizing
// shapes within the expression DAG, in the spirit of LLVM's PatternMatch.h:
// a Pattern either matches an *core.Expr and stages output bindings, or
// fails leaving every output slot untouched.
package match

import (
	"math/big"

	"github.com/gazer-verify/gazer/pkg/core"
)

// state accumulates binding closures during a single top-level Match call.
// Closures only run once the whole pattern has matched, so a partially
// matched pattern never has a visible side effect.
type state struct {
	pending []func()
}

func (st *state) bind(f func()) {
	st.pending = append(st.pending, f)
}

func (st *state) commit() {
	for _, f := range st.pending {
		f()
	}
}

// Pattern recognizes a shape rooted at e, staging bindings into st on
// success. Callers should not construct Pattern values directly; use the
// combinators below.
type Pattern func(e *core.Expr, st *state) bool

// Match attempts pattern against e, committing its bindings and returning
// true on success. On failure no output slot is written.
func Match(e *core.Expr, pattern Pattern) bool {
	st := &state{}
	if pattern(e, st) {
		st.commit()
		return true
	}

	return false
}

// UnordMatch matches the ordered pair (lhs, rhs) against (pL, pR); failing
// that, it tries (rhs, lhs) against (pL, pR) — pL is free to bind either
// operand of a commutative pair. Bindings from whichever order succeeded
// are committed; the other attempt has no visible effect.
func UnordMatch(lhs, rhs *core.Expr, pL, pR Pattern) bool {
	st := &state{}
	if pL(lhs, st) && pR(rhs, st) {
		st.commit()
		return true
	}

	st = &state{}
	if pL(rhs, st) && pR(lhs, st) {
		st.commit()
		return true
	}

	return false
}

// MExpr matches any expression, binding it to *out.
func MExpr(out **core.Expr) Pattern {
	return func(e *core.Expr, st *state) bool {
		st.bind(func() { *out = e })
		return true
	}
}

// MSpecific matches only the exact node identity x.
func MSpecific(x *core.Expr) Pattern {
	return func(e *core.Expr, _ *state) bool { return e == x }
}

// MBoolLit matches a KindBoolLit node, binding its value to *out.
func MBoolLit(out *bool) Pattern {
	return func(e *core.Expr, st *state) bool {
		if e.Kind() != core.KindBoolLit {
			return false
		}

		st.bind(func() { *out = e.BoolValue() })

		return true
	}
}

// MBv matches a KindBvLit node, binding its unsigned numeric value to *imm.
func MBv(imm **big.Int) Pattern {
	return func(e *core.Expr, st *state) bool {
		if e.Kind() != core.KindBvLit {
			return false
		}

		st.bind(func() { *imm = bvAsBigInt(e) })

		return true
	}
}

// MInt matches a KindIntLit node, binding its value to *imm.
func MInt(imm **big.Int) Pattern {
	return func(e *core.Expr, st *state) bool {
		if e.Kind() != core.KindIntLit {
			return false
		}

		st.bind(func() { *imm = e.IntValue() })

		return true
	}
}

// MOp matches a node of the given kind with exactly len(children) operands,
// each matching the corresponding child pattern in order.
func MOp(kind core.Kind, children ...Pattern) Pattern {
	return func(e *core.Expr, st *state) bool {
		if e.Kind() != kind || e.Arity() != len(children) {
			return false
		}

		for i, child := range children {
			if !child(e.Operand(i), st) {
				return false
			}
		}

		return true
	}
}

// The following are convenience wrappers around MOp for the kinds the
// folding builder's rewrite rules match against most often.
func MNot(a Pattern) Pattern          { return MOp(core.KindNot, a) }
func MEq(a, b Pattern) Pattern        { return MOp(core.KindEq, a, b) }
func MNotEq(a, b Pattern) Pattern     { return MOp(core.KindNotEq, a, b) }
func MAdd(a, b Pattern) Pattern       { return MOp(core.KindAdd, a, b) }
func MAnd(a, b Pattern) Pattern       { return MOp(core.KindAnd, a, b) }
func MOr(a, b Pattern) Pattern        { return MOp(core.KindOr, a, b) }
func MXor(a, b Pattern) Pattern       { return MOp(core.KindXor, a, b) }
func MSelect(c, t, f Pattern) Pattern { return MOp(core.KindSelect, c, t, f) }
func MZExt(a Pattern) Pattern         { return MOp(core.KindZExt, a) }
func MSExt(a Pattern) Pattern         { return MOp(core.KindSExt, a) }
func MBvSRem(a, b Pattern) Pattern    { return MOp(core.KindBvSRem, a, b) }
func MBvULt(a, b Pattern) Pattern     { return MOp(core.KindBvULt, a, b) }
func MBvSLt(a, b Pattern) Pattern     { return MOp(core.KindBvSLt, a, b) }
func MLt(a, b Pattern) Pattern        { return MOp(core.KindLt, a, b) }

func bvAsBigInt(e *core.Expr) *big.Int {
	v := new(big.Int)

	bs := e.BvValue()
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		v.SetBit(v, int(i), 1)
	}

	return v
}
