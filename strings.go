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

package lexicon

// Word converts a string to the []rune word most callers mean when they
// write a Lexicon of text: Go ranges over strings by rune, and comparing
// []rune slices lexicographically agrees with comparing the strings they
// came from.
func Word(s string) []rune {
	return []rune(s)
}

// WordString renders a []rune word back to a string, the inverse of Word.
func WordString(w []rune) string {
	return string(w)
}

// FromStrings builds a *Lexicon[rune] from an arbitrary (possibly unsorted,
// possibly duplicated) list of strings, via FromSeq. It is the ergonomic
// entry point for the common case of a text dictionary.
func FromStrings(words ...string) (*Lexicon[rune], error) {
	ws := make([][]rune, len(words))
	for i, w := range words {
		ws[i] = Word(w)
	}
	return FromSeq[rune](ws, nil, nil)
}
