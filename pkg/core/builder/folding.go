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
package builder

import (
	"math/big"

	"github.com/gazer-verify/gazer/pkg/core"
	"github.com/gazer-verify/gazer/pkg/core/match"
)

// FoldingBuilder applies the algebraic simplification rules of
// FoldingExprBuilder on top of TrivialBuilder's raw interning: boolean
// algebra normalization, equality/select rewrites, the signed-comparison
// Add rewrite, and literal constant folding. Every rule preserves semantic
// equivalence; none depends on variable naming or source position.
type FoldingBuilder struct {
	*TrivialBuilder
}

// NewFoldingBuilder wraps ctx in a folding Builder.
func NewFoldingBuilder(ctx *core.Context) *FoldingBuilder {
	return &FoldingBuilder{TrivialBuilder: NewTrivialBuilder(ctx)}
}

func isLiteralKind(k core.Kind) bool {
	switch k {
	case core.KindBoolLit, core.KindIntLit, core.KindBvLit, core.KindFloatLit, core.KindRealLit:
		return true
	default:
		return false
	}
}

// fold evaluates e if every operand is a literal, returning the reduced
// literal; otherwise (including on an evaluation error such as division by
// zero) it returns e unchanged, staying symbolic.
func (fb *FoldingBuilder) fold(e *core.Expr) *core.Expr {
	for _, op := range e.Operands() {
		if !isLiteralKind(op.Kind()) {
			return e
		}
	}

	ev := core.NewEvaluator(fb.Ctx, core.NewValuation(), false)

	r, err := ev.Eval(e)
	if err != nil || !isLiteralKind(r.Kind()) {
		return e
	}

	return r
}

func (fb *FoldingBuilder) Add(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.Add(a, c)) }
func (fb *FoldingBuilder) Sub(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.Sub(a, c)) }
func (fb *FoldingBuilder) Mul(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.Mul(a, c)) }
func (fb *FoldingBuilder) Div(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.Div(a, c)) }
func (fb *FoldingBuilder) Mod(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.Mod(a, c)) }
func (fb *FoldingBuilder) Rem(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.Rem(a, c)) }

func (fb *FoldingBuilder) BvSDiv(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvSDiv(a, c))
}

func (fb *FoldingBuilder) BvUDiv(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvUDiv(a, c))
}

func (fb *FoldingBuilder) BvSRem(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvSRem(a, c))
}

func (fb *FoldingBuilder) BvURem(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvURem(a, c))
}

func (fb *FoldingBuilder) Shl(a, c *core.Expr) *core.Expr  { return fb.fold(fb.TrivialBuilder.Shl(a, c)) }
func (fb *FoldingBuilder) LShr(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.LShr(a, c)) }
func (fb *FoldingBuilder) AShr(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.AShr(a, c)) }

func (fb *FoldingBuilder) BvAnd(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvAnd(a, c))
}

func (fb *FoldingBuilder) BvOr(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvOr(a, c))
}

func (fb *FoldingBuilder) BvXor(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvXor(a, c))
}

func (fb *FoldingBuilder) Lt(a, c *core.Expr) *core.Expr   { return fb.fold(fb.TrivialBuilder.Lt(a, c)) }
func (fb *FoldingBuilder) LtEq(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.LtEq(a, c)) }
func (fb *FoldingBuilder) Gt(a, c *core.Expr) *core.Expr   { return fb.fold(fb.TrivialBuilder.Gt(a, c)) }
func (fb *FoldingBuilder) GtEq(a, c *core.Expr) *core.Expr { return fb.fold(fb.TrivialBuilder.GtEq(a, c)) }

func (fb *FoldingBuilder) BvULt(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvULt(a, c))
}

func (fb *FoldingBuilder) BvULtEq(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvULtEq(a, c))
}

func (fb *FoldingBuilder) BvUGt(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvUGt(a, c))
}

func (fb *FoldingBuilder) BvUGtEq(a, c *core.Expr) *core.Expr {
	return fb.fold(fb.TrivialBuilder.BvUGtEq(a, c))
}

// Signed Bv comparisons additionally rewrite CMP(Add(c1,x), c2) to
// CMP(x, c2-c1), folding the new right-hand constant. This is NOT valid
// for the unsigned comparisons (BvULt and friends, above) since subtracting
// c1 from c2 can underflow.
func (fb *FoldingBuilder) BvSLt(a, c *core.Expr) *core.Expr {
	return fb.signedCmp(core.KindBvSLt, a, c)
}

func (fb *FoldingBuilder) BvSLtEq(a, c *core.Expr) *core.Expr {
	return fb.signedCmp(core.KindBvSLtEq, a, c)
}

func (fb *FoldingBuilder) BvSGt(a, c *core.Expr) *core.Expr {
	return fb.signedCmp(core.KindBvSGt, a, c)
}

func (fb *FoldingBuilder) BvSGtEq(a, c *core.Expr) *core.Expr {
	return fb.signedCmp(core.KindBvSGtEq, a, c)
}

func (fb *FoldingBuilder) signedCmp(kind core.Kind, a, c *core.Expr) *core.Expr {
	if x, newC, ok := fb.addConstRewrite(a, c); ok {
		return fb.Ctx.InternExpr(kind, x, newC)
	}

	return fb.fold(fb.Ctx.InternExpr(kind, a, c))
}

// addConstRewrite recognizes CMP(Add(c1, x), c2) with c1, c2 both BvLit,
// returning (x, c2-c1).
func (fb *FoldingBuilder) addConstRewrite(a, c *core.Expr) (*core.Expr, *core.Expr, bool) {
	if a.Kind() != core.KindAdd {
		return nil, nil, false
	}

	c2, ok := bvLitValue(c)
	if !ok {
		return nil, nil, false
	}

	var c1 *big.Int

	var x *core.Expr

	if !match.UnordMatch(a.Operand(0), a.Operand(1), match.MBv(&c1), match.MExpr(&x)) {
		return nil, nil, false
	}

	newC := new(big.Int).Sub(c2, c1)

	return x, fb.Ctx.BvLit(c.Type().Width(), newC), true
}

// ZExt and SExt fold over literal operands; constructing a narrower target
// than the source is still rejected by TrivialBuilder/Context before fold
// ever sees the node.
func (fb *FoldingBuilder) ZExt(operand *core.Expr, width uint32) *core.Expr {
	return fb.fold(fb.TrivialBuilder.ZExt(operand, width))
}

func (fb *FoldingBuilder) SExt(operand *core.Expr, width uint32) *core.Expr {
	return fb.fold(fb.TrivialBuilder.SExt(operand, width))
}

// Extract applies the Extract(BvSRem(SExt(x),SExt(y)), 0, w) rewrite before
// falling back to plain folding/interning.
func (fb *FoldingBuilder) Extract(operand *core.Expr, hi, lo uint32) *core.Expr {
	if lo == 0 && operand.Kind() == core.KindBvSRem {
		lhs, rhs := operand.Operand(0), operand.Operand(1)
		if lhs.Kind() == core.KindSExt && rhs.Kind() == core.KindSExt {
			x, y := lhs.Operand(0), rhs.Operand(0)
			if x.Type().Width() == y.Type().Width() && hi-lo+1 == x.Type().Width() {
				return fb.BvSRem(x, y)
			}
		}
	}

	return fb.fold(fb.TrivialBuilder.Extract(operand, hi, lo))
}

// Not applies Not(Not(x))→x, the Eq/NotEq dualization, and the comparison
// dualizations, before falling back to constant folding and interning.
func (fb *FoldingBuilder) Not(a *core.Expr) *core.Expr {
	if a.Kind() == core.KindBoolLit {
		return fb.BoolLit(!a.BoolValue())
	}

	if a.Kind() == core.KindNot {
		return a.Operand(0)
	}

	var x, y *core.Expr
	if match.Match(a, match.MEq(match.MExpr(&x), match.MExpr(&y))) {
		return fb.NotEq(x, y)
	}

	if match.Match(a, match.MNotEq(match.MExpr(&x), match.MExpr(&y))) {
		return fb.Eq(x, y)
	}

	if dual, ok := dualComparison(a.Kind()); ok {
		return fb.Ctx.InternExpr(dual, a.Operand(0), a.Operand(1))
	}

	return fb.TrivialBuilder.Not(a)
}

// dualComparison returns the negated comparison kind for every strict
// comparison Not() dualizes directly (BvULt/BvSLt/Lt and their siblings).
func dualComparison(k core.Kind) (core.Kind, bool) {
	switch k {
	case core.KindBvULt:
		return core.KindBvUGtEq, true
	case core.KindBvULtEq:
		return core.KindBvUGt, true
	case core.KindBvUGt:
		return core.KindBvULtEq, true
	case core.KindBvUGtEq:
		return core.KindBvULt, true
	case core.KindBvSLt:
		return core.KindBvSGtEq, true
	case core.KindBvSLtEq:
		return core.KindBvSGt, true
	case core.KindBvSGt:
		return core.KindBvSLtEq, true
	case core.KindBvSGtEq:
		return core.KindBvSLt, true
	case core.KindLt:
		return core.KindGtEq, true
	case core.KindLtEq:
		return core.KindGt, true
	case core.KindGt:
		return core.KindLtEq, true
	case core.KindGtEq:
		return core.KindLt, true
	default:
		return 0, false
	}
}

// complementaryPair reports whether a and b are a boolean-contradictory
// pair: x and Not(x), or Eq(p,q) and NotEq(p,q).
func complementaryPair(a, b *core.Expr) bool {
	if a.Kind() == core.KindNot && a.Operand(0) == b {
		return true
	}

	if b.Kind() == core.KindNot && b.Operand(0) == a {
		return true
	}

	if a.Kind() == core.KindEq && b.Kind() == core.KindNotEq &&
		a.Operand(0) == b.Operand(0) && a.Operand(1) == b.Operand(1) {
		return true
	}

	if a.Kind() == core.KindNotEq && b.Kind() == core.KindEq &&
		a.Operand(0) == b.Operand(0) && a.Operand(1) == b.Operand(1) {
		return true
	}

	return false
}

func flattenBool(kind core.Kind, operands []*core.Expr) []*core.Expr {
	out := make([]*core.Expr, 0, len(operands))

	for _, op := range operands {
		if op.Kind() == kind {
			out = append(out, flattenBool(kind, op.Operands())...)
		} else {
			out = append(out, op)
		}
	}

	return out
}

// And flattens nested And, drops True, short-circuits on False, dedups,
// detects contradictory pairs, and applies the Or/Or distribution rule.
func (fb *FoldingBuilder) And(operands ...*core.Expr) *core.Expr {
	return fb.conjunctionLike(core.KindAnd, operands)
}

// Or is the dual of And.
func (fb *FoldingBuilder) Or(operands ...*core.Expr) *core.Expr {
	return fb.conjunctionLike(core.KindOr, operands)
}

func (fb *FoldingBuilder) conjunctionLike(kind core.Kind, operands []*core.Expr) *core.Expr {
	identity, absorbing := true, false
	if kind == core.KindOr {
		identity, absorbing = false, true
	}

	flat := flattenBool(kind, operands)

	seen := make(map[*core.Expr]bool, len(flat))
	result := make([]*core.Expr, 0, len(flat))

	for _, op := range flat {
		if op.Kind() == core.KindBoolLit {
			if op.BoolValue() == absorbing {
				return fb.BoolLit(absorbing)
			}

			continue // this is the identity literal; drop it
		}

		if seen[op] {
			continue
		}

		seen[op] = true

		result = append(result, op)
	}

	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if complementaryPair(result[i], result[j]) {
				return fb.BoolLit(absorbing)
			}
		}
	}

	if len(result) == 2 && result[0].Kind() == dualKind(kind) && result[1].Kind() == dualKind(kind) {
		if rewritten, ok := fb.distribute(kind, result[0], result[1]); ok {
			return rewritten
		}
	}

	switch len(result) {
	case 0:
		return fb.BoolLit(identity)
	case 1:
		return result[0]
	default:
		if kind == core.KindAnd {
			return fb.TrivialBuilder.And(result...)
		}

		return fb.TrivialBuilder.Or(result...)
	}
}

// dualKind returns Or for And and vice versa: the distribution rule
// And(Or(a,b), Or(a,c)) → And(a, Or(b,c)) looks for the OTHER connective
// nested inside.
func dualKind(kind core.Kind) core.Kind {
	if kind == core.KindAnd {
		return core.KindOr
	}

	return core.KindAnd
}

// distribute implements And(Or(a,b), Or(a,c)) → And(a, Or(b,c)) and its Or
// dual Or(And(a,b), And(a,c)) → Or(a, And(b,c)).
func (fb *FoldingBuilder) distribute(kind core.Kind, n1, n2 *core.Expr) (*core.Expr, bool) {
	if n1.Arity() != 2 || n2.Arity() != 2 {
		return nil, false
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if n1.Operand(i) != n2.Operand(j) {
				continue
			}

			common := n1.Operand(i)
			rest1 := n1.Operand(1 - i)
			rest2 := n2.Operand(1 - j)

			if kind == core.KindAnd {
				return fb.And(common, fb.Or(rest1, rest2)), true
			}

			return fb.Or(common, fb.And(rest1, rest2)), true
		}
	}

	return nil, false
}

// Xor applies Xor(True,x)→Not(x), Xor(False,x)→x (and the symmetric forms),
// then falls back to interning (both operands are otherwise left symbolic;
// there is no constant-folding case not already covered by a BoolLit
// operand).
func (fb *FoldingBuilder) Xor(a, c *core.Expr) *core.Expr {
	if a.Kind() == core.KindBoolLit {
		if a.BoolValue() {
			return fb.Not(c)
		}

		return c
	}

	if c.Kind() == core.KindBoolLit {
		if c.BoolValue() {
			return fb.Not(a)
		}

		return a
	}

	return fb.TrivialBuilder.Xor(a, c)
}

func bvLitValue(e *core.Expr) (*big.Int, bool) {
	if e.Kind() != core.KindBvLit {
		return nil, false
	}

	v := new(big.Int)

	bs := e.BvValue()
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		v.SetBit(v, int(i), 1)
	}

	return v, true
}

// Eq and NotEq share their rewrite logic; isEq distinguishes the two at the
// leaves of the rule tree.
func (fb *FoldingBuilder) Eq(a, c *core.Expr) *core.Expr    { return fb.eqNotEq(true, a, c) }
func (fb *FoldingBuilder) NotEq(a, c *core.Expr) *core.Expr { return fb.eqNotEq(false, a, c) }

//nolint:cyclop
func (fb *FoldingBuilder) eqNotEq(isEq bool, a, c *core.Expr) *core.Expr {
	if a == c {
		return fb.BoolLit(isEq)
	}

	if lit, other, ok := boolLitAndOther(a, c); ok {
		if lit == isEq {
			return other
		}

		return fb.Not(other)
	}

	// When cond is itself NotEq(x1,x2), the cond/Not(cond) results below
	// dualize further through Not's own Eq/NotEq rule, which is what
	// produces the NotEq(Select(NotEq(x1,x2),e1,e2), e3) rewrite.
	if sel, other, ok := selectAndBranch(a, c); ok {
		cond, e1, e2 := sel.Operand(0), sel.Operand(1), sel.Operand(2)
		if other == e1 {
			if isEq {
				return cond
			}

			return fb.Not(cond)
		}

		if other == e2 {
			if isEq {
				return fb.Not(cond)
			}

			return cond
		}
	}

	if zext, lit, ok := zextAndBvLit(a, c); ok {
		width := zext.Operand(0).Type().Width()
		bound := new(big.Int).Lsh(big.NewInt(1), uint(width))

		if lit.Cmp(bound) < 0 {
			truncated := fb.Ctx.BvLit(width, lit)
			return fb.eqNotEq(isEq, zext.Operand(0), truncated)
		}
	}

	if isEq {
		return fb.fold(fb.TrivialBuilder.Eq(a, c))
	}

	return fb.fold(fb.TrivialBuilder.NotEq(a, c))
}

// boolLitAndOther recognizes Eq/NotEq(BoolLit b, x) in either operand
// order, returning b's value and x.
func boolLitAndOther(a, c *core.Expr) (bool, *core.Expr, bool) {
	if a.Kind() == core.KindBoolLit {
		return a.BoolValue(), c, true
	}

	if c.Kind() == core.KindBoolLit {
		return c.BoolValue(), a, true
	}

	return false, nil, false
}

// selectAndBranch recognizes Eq/NotEq(Select(c,e1,e2), other) in either
// operand order.
func selectAndBranch(a, c *core.Expr) (sel, other *core.Expr, ok bool) {
	if a.Kind() == core.KindSelect {
		return a, c, true
	}

	if c.Kind() == core.KindSelect {
		return c, a, true
	}

	return nil, nil, false
}

// zextAndBvLit recognizes Eq/NotEq(ZExt(e1), BvLit k) in either operand
// order.
func zextAndBvLit(a, c *core.Expr) (zext *core.Expr, lit *big.Int, ok bool) {
	if a.Kind() == core.KindZExt {
		if v, isLit := bvLitValue(c); isLit {
			return a, v, true
		}
	}

	if c.Kind() == core.KindZExt {
		if v, isLit := bvLitValue(a); isLit {
			return c, v, true
		}
	}

	return nil, nil, false
}

// Select applies the constant-condition, identical-branch, boolean-branch,
// negated-condition, and nested-select rewrites before falling back to
// interning.
//
//nolint:cyclop
func (fb *FoldingBuilder) Select(cond, t, f *core.Expr) *core.Expr {
	if cond.Kind() == core.KindBoolLit {
		if cond.BoolValue() {
			return t
		}

		return f
	}

	if t == f {
		return t
	}

	if cond.Kind() == core.KindNot {
		return fb.Select(cond.Operand(0), f, t)
	}

	if t.Type() == fb.Ctx.BoolType() {
		switch {
		case f.Kind() == core.KindBoolLit && !f.BoolValue():
			return fb.And(cond, t)
		case f.Kind() == core.KindBoolLit && f.BoolValue():
			return fb.Or(fb.Not(cond), t)
		case t.Kind() == core.KindBoolLit && t.BoolValue():
			return fb.Or(cond, f)
		case t.Kind() == core.KindBoolLit && !t.BoolValue():
			return fb.And(fb.Not(cond), f)
		}
	}

	if t.Kind() == core.KindSelect && t.Operand(0) == cond {
		t = t.Operand(1)
	}

	if f.Kind() == core.KindSelect && f.Operand(0) == cond {
		f = f.Operand(2)
	}

	if t == f {
		return t
	}

	if t.Kind() == core.KindSelect {
		c2, a2, b2 := t.Operand(0), t.Operand(1), t.Operand(2)

		switch {
		case a2 == f:
			return fb.Select(fb.And(cond, fb.Not(c2)), b2, f)
		case b2 == f:
			return fb.Select(fb.And(cond, c2), a2, f)
		}
	}

	if f.Kind() == core.KindSelect {
		c2, a2, b2 := f.Operand(0), f.Operand(1), f.Operand(2)
		if a2 == t {
			return fb.Select(fb.Or(cond, c2), t, b2)
		}
	}

	return fb.TrivialBuilder.Select(cond, t, f)
}
