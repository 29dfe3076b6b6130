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

// Parse reads exactly one Value from s, failing if s holds no token at all
// or holds more than one top-level Value.
func Parse(s string) (Value, error) {
	p := newParser(s)

	v, err := p.parse()
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, &SyntaxError{Position: p.index, Kind: EmptyInput}
	}

	if p.next() != nil {
		return nil, &SyntaxError{Position: p.index, Kind: TrailingInput}
	}

	return v, nil
}

// ParseAll reads zero or more top-level Values from s, stopping at the
// first malformed one. Independent trailing failures are not aggregated:
// the parser is inherently sequential, so multierr buys nothing here — the
// first error always ends the stream.
func ParseAll(s string) ([]Value, error) {
	var values []Value

	p := newParser(s)

	for {
		v, err := p.parse()
		if err != nil {
			return values, err
		}

		if v == nil {
			return values, nil
		}

		values = append(values, v)
	}
}

// parser is a recursive-descent parser over a rune slice, mirroring the
// teacher's Parser shape (text/index, Next/Lookahead/parseSymbol).
type parser struct {
	text  []rune
	index int
}

func newParser(s string) *parser {
	return &parser{text: []rune(s)}
}

// parse reads the next top-level Value, or returns (nil, nil) at EOF.
func (p *parser) parse() (Value, error) {
	tok := p.next()

	switch {
	case tok == nil:
		return nil, nil
	case len(tok) == 1 && tok[0] == ')':
		p.index--
		return nil, &SyntaxError{Position: p.index, Kind: UnbalancedParen}
	case len(tok) == 1 && tok[0] == '(':
		return p.parseList()
	default:
		return Atom(string(tok)), nil
	}
}

func (p *parser) parseList() (Value, error) {
	var elements []Value

	for c := p.lookahead(0); c == nil || *c != ')'; c = p.lookahead(0) {
		elem, err := p.parse()
		if err != nil {
			return nil, err
		}

		if elem == nil {
			return nil, &SyntaxError{Position: p.index, Kind: UnexpectedEOF}
		}

		elements = append(elements, elem)
	}

	p.next() // consume ')'

	return &List{Elements: elements}, nil
}

// next extracts the next token: a single paren, or a maximal run of
// non-paren non-whitespace runes. Returns nil at EOF.
func (p *parser) next() []rune {
	if p.index == len(p.text) {
		return nil
	}

	switch p.text[p.index] {
	case '(', ')':
		p.index++
		return p.text[p.index-1 : p.index]
	case ' ', '\t', '\n', '\r':
		p.index++
		return p.next()
	}

	return p.parseAtom()
}

// lookahead skips whitespace and reports the next paren character without
// consuming it, or nil if the next non-whitespace rune isn't a paren.
func (p *parser) lookahead(i int) *rune {
	pos := p.index + i

	if pos >= len(p.text) {
		return nil
	}

	switch p.text[pos] {
	case '(', ')':
		return &p.text[pos]
	case ' ', '\t', '\n', '\r':
		return p.lookahead(i + 1)
	default:
		return nil
	}
}

func (p *parser) parseAtom() []rune {
	start := p.index
	end := len(p.text)

	for j := start; j < end; j++ {
		switch p.text[j] {
		case '(', ')', ' ', '\t', '\n', '\r':
			end = j
		default:
			continue
		}

		break
	}

	tok := p.text[start:end]
	p.index = end

	return tok
}
