// Copyright (c) 2017 Couchbase, Inc.
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

// Package lexicon implements an immutable, sorted set of words over an
// arbitrary totally-ordered symbol type, stored as a minimal acyclic
// deterministic finite automaton (MADFA).
//
// A Lexicon is built incrementally from a lexicographically sorted,
// duplicate-free stream of words using a Builder. The Builder collapses
// shared prefixes and suffixes as it goes, so the resulting automaton
// is minimal: no two states accept the same right-language.
//
// Once built, a Lexicon supports membership tests, ordered enumeration
// (whole-set or prefix-restricted), range projection, longest-prefix
// matching at an arbitrary offset, and single-word insertion/removal
// (both of which return a new Lexicon; a Lexicon is never mutated in
// place).
package lexicon
