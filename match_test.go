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

import "testing"

func TestIndexOfScenarios(t *testing.T) {
	tests := []struct {
		desc    string
		words   []string
		input   string
		start   int
		wantEnd int
		wantOK  bool
	}{
		// S5
		{"longest match at start", []string{"a", "aa", "b"}, "a", 0, 1, true},
		// S6
		{"longest of several prefixes", []string{"a", "aaa", "ab"}, "aaaaa", 0, 3, true},
		// S7
		{"match from an offset", []string{"a", "aa", "aaa"}, "baab", 1, 3, true},
		// S8
		{"no match from an offset", []string{"a", "aa", "ab"}, "bbb", 1, 0, false},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			lex := mustLexicon(t, test.words...)
			end, ok := lex.IndexOf(Word(test.input), test.start)
			if ok != test.wantOK || (ok && end != test.wantEnd) {
				t.Errorf("wanted (%d, %v), got (%d, %v)", test.wantEnd, test.wantOK, end, ok)
			}
		})
	}
}

func TestIndexOfStartAtEndOfInput(t *testing.T) {
	lex := mustLexicon(t, "a")
	if _, ok := lex.IndexOf(Word("a"), 1); ok {
		t.Errorf("expected no match when start == len(input)")
	}
}

func TestIndexOfStartBeyondInput(t *testing.T) {
	lex := mustLexicon(t, "a")
	if _, ok := lex.IndexOf(Word("a"), 5); ok {
		t.Errorf("expected no match when start > len(input)")
	}
}

func TestLookupComposesIndexOf(t *testing.T) {
	lex := mustLexicon(t, "a", "aa", "aaa")
	match, ok := lex.Lookup(Word("baab"), 1)
	if !ok {
		t.Fatalf("expected a match")
	}
	if WordString(match) != "aa" {
		t.Errorf("wanted \"aa\", got %q", WordString(match))
	}
}

func TestLookupNoMatch(t *testing.T) {
	lex := mustLexicon(t, "a", "aa", "ab")
	if _, ok := lex.Lookup(Word("bbb"), 1); ok {
		t.Errorf("expected no match")
	}
}

// P9: lookup's result is the unique longest member matching at start, and
// indexOf agrees with it.
func TestLookupIsLongestAndUnique(t *testing.T) {
	lex := mustLexicon(t, "a", "ab", "abc", "abcd")
	match, ok := lex.Lookup(Word("abcde"), 0)
	if !ok {
		t.Fatalf("expected a match")
	}
	if WordString(match) != "abcd" {
		t.Errorf("wanted \"abcd\", got %q", WordString(match))
	}
	end, ok := lex.IndexOf(Word("abcde"), 0)
	if !ok || end != len(match) {
		t.Errorf("wanted end %d, got %d (ok=%v)", len(match), end, ok)
	}
}
