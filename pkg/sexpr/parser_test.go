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

import "testing"

func mustParse(t *testing.T, s string) Value {
	t.Helper()

	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}

	return v
}

func TestParseAtom(t *testing.T) {
	v := mustParse(t, "foo")

	a, ok := v.(Atom)
	if !ok || a != "foo" {
		t.Fatalf("expected Atom(foo), got %v", v)
	}
}

func TestParseNestedList(t *testing.T) {
	v := mustParse(t, "(assert (= x 1))")

	want := NewList(Atom("assert"), NewList(Atom("="), Atom("x"), Atom("1")))
	if !v.Equal(want) {
		t.Fatalf("got %s, want %s", v, want)
	}
}

func TestParseWhitespace(t *testing.T) {
	v := mustParse(t, "  (a   b\n\tc)  ")

	want := NewList(Atom("a"), Atom("b"), Atom("c"))
	if !v.Equal(want) {
		t.Fatalf("got %s, want %s", v, want)
	}
}

func TestParseEmptyList(t *testing.T) {
	v := mustParse(t, "()")

	l, ok := v.(*List)
	if !ok || l.Len() != 0 {
		t.Fatalf("expected empty list, got %v", v)
	}
}

func TestParseEmptyInputFails(t *testing.T) {
	_, err := Parse("   ")

	se, ok := err.(*SyntaxError)
	if !ok || se.Kind != EmptyInput {
		t.Fatalf("expected EmptyInput error, got %v", err)
	}
}

func TestParseUnbalancedCloseFails(t *testing.T) {
	_, err := Parse(")")

	se, ok := err.(*SyntaxError)
	if !ok || se.Kind != UnbalancedParen {
		t.Fatalf("expected UnbalancedParen error, got %v", err)
	}
}

func TestParseUnterminatedListFails(t *testing.T) {
	_, err := Parse("(a (b)")

	se, ok := err.(*SyntaxError)
	if !ok || se.Kind != UnexpectedEOF {
		t.Fatalf("expected UnexpectedEOF error, got %v", err)
	}
}

func TestParseTrailingInputFails(t *testing.T) {
	_, err := Parse("(a) (b)")

	se, ok := err.(*SyntaxError)
	if !ok || se.Kind != TrailingInput {
		t.Fatalf("expected TrailingInput error, got %v", err)
	}
}

func TestParseAllReadsMultipleTopLevelValues(t *testing.T) {
	vs, err := ParseAll("(a) (b) c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vs) != 3 {
		t.Fatalf("expected 3 top-level values, got %d", len(vs))
	}

	if !vs[2].Equal(Atom("c")) {
		t.Fatalf("expected third value to be Atom(c), got %v", vs[2])
	}
}

func TestCanonicalPrintRoundTrip(t *testing.T) {
	inputs := []string{
		"foo",
		"(a b c)",
		"(assert (= x 1))",
		"()",
	}

	for _, in := range inputs {
		v := mustParse(t, in)

		reparsed, err := Parse(v.String())
		if err != nil {
			t.Fatalf("re-parsing canonical form of %q failed: %v", in, err)
		}

		if !v.Equal(reparsed) {
			t.Fatalf("round trip mismatch for %q: %s != %s", in, v, reparsed)
		}
	}
}

func TestListEqualityIsStructuralNotIdentity(t *testing.T) {
	a := mustParse(t, "(x y)")
	b := mustParse(t, "(x y)")

	if a.(*List) == b.(*List) {
		t.Fatalf("expected distinct Parse calls to produce distinct *List values")
	}

	if !a.Equal(b) {
		t.Fatalf("expected structurally equal lists to compare Equal")
	}
}
