//  Copyright (c) 2017 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rangeexpr parses the small bracket notation the range
// subcommand accepts for describing a half-open-or-closed word interval,
// e.g. "[aardvark,zebra)" or "(foo,]" for an unbounded-above range.
//
// Grounded on CyberCzar01-LABS_4's internal/interpreter/parser.go: the
// same participle.MustBuild[T]-plus-struct-tags shape, adapted from that
// package's statement grammar to a one-production interval grammar, with
// a custom lexer (words in this package may contain arbitrary runes a
// bare Ident token would reject).
package rangeexpr

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Punct", Pattern: `[\[\(\)\],]`},
	{Name: "Word", Pattern: `[^\[\(\),\]]+`},
})

// Expr is the parsed form of one range expression: an opening bracket, an
// optional low bound, a comma, an optional high bound, and a closing
// bracket. A missing bound means "unbounded on that side".
type Expr struct {
	Open  string `parser:"@('['|'(')"`
	Low   string `parser:"@Word?"`
	Comma string `parser:"','"`
	High  string `parser:"@Word?"`
	Close string `parser:"@(']'|')')"`
}

var exprParser = participle.MustBuild[Expr](participle.Lexer(rangeLexer))

// Parse parses s into an Expr, or returns an error describing the first
// point at which s failed to match the grammar.
func Parse(s string) (*Expr, error) {
	e, err := exprParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("rangeexpr: %w", err)
	}
	if e.Open != "[" && e.Open != "(" {
		return nil, fmt.Errorf("rangeexpr: invalid opening bracket %q", e.Open)
	}
	if e.Close != "]" && e.Close != ")" {
		return nil, fmt.Errorf("rangeexpr: invalid closing bracket %q", e.Close)
	}
	return e, nil
}

// LowInclusive reports whether the parsed low bound (if any) is itself a
// member of the interval.
func (e *Expr) LowInclusive() bool { return e.Open == "[" }

// HighInclusive reports whether the parsed high bound (if any) is itself
// a member of the interval.
func (e *Expr) HighInclusive() bool { return e.Close == "]" }

// Bounds returns the parsed low and high bound strings, nil where absent.
func (e *Expr) Bounds() (low, high *string) {
	if e.Low != "" {
		low = &e.Low
	}
	if e.High != "" {
		high = &e.High
	}
	return low, high
}
