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

import (
	"errors"
	"testing"
)

func TestCommonPrefixLenRunes(t *testing.T) {
	tests := []struct {
		desc string
		a    []rune
		b    []rune
		want int
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, Word("anything"), 0},
		{"b nil", Word("anything"), nil, 0},
		{"identical", Word("anything"), Word("anything"), 8},
		{"a prefix of b", Word("any"), Word("anything"), 3},
		{"b prefix of a", Word("anything"), Word("any"), 3},
		{"diverge mid-word", Word("anywhere"), Word("anything"), 3},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			got := commonPrefixLen(test.a, test.b)
			if got != test.want {
				t.Errorf("wanted: %d, got: %d", test.want, got)
			}
		})
	}
}

func TestBuilderRejectsEmptyWord(t *testing.T) {
	b := NewBuilder[rune](nil, nil)
	if err := b.Add(nil); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("wanted ErrEmptyWord, got %v", err)
	}
}

func TestBuilderRejectsOutOfOrder(t *testing.T) {
	b := NewBuilder[rune](nil, nil)
	if err := b.Add(Word("jul")); err != nil {
		t.Fatalf("got error inserting word: %v", err)
	}
	if err := b.Add(Word("abc")); !errors.Is(err, ErrOrderViolation) {
		t.Errorf("wanted ErrOrderViolation, got %v", err)
	}
}

func TestBuilderSimpleSharedFinal(t *testing.T) {
	// matches S2: Lexicon("a","b","c").length() == 2.
	lex, err := FromSortedSeq[rune]([][]rune{Word("a"), Word("b"), Word("c")}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lex.Length(); got != 2 {
		t.Errorf("wanted length 2, got %d", got)
	}
	if got := lex.Size(); got != 3 {
		t.Errorf("wanted size 3, got %d", got)
	}
}

func TestBuilderSharedPrefixAndSuffix(t *testing.T) {
	// matches S3: Lexicon("aaa","aba","aca").length() == 4.
	lex, err := FromSortedSeq[rune]([][]rune{Word("aaa"), Word("aba"), Word("aca")}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lex.Length(); got != 4 {
		t.Errorf("wanted length 4, got %d", got)
	}
}

func TestBuilderOverlappingPrefix(t *testing.T) {
	// matches S4: Lexicon("a","aaa").length() == 4, .contains("aa") == false.
	lex, err := FromSortedSeq[rune]([][]rune{Word("a"), Word("aaa")}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lex.Length(); got != 4 {
		t.Errorf("wanted length 4, got %d", got)
	}
	if lex.Contains(Word("aa")) {
		t.Errorf("expected \"aa\" not to be a member")
	}
}

func TestBuilderEmptyLexicon(t *testing.T) {
	// matches S1: Lexicon().size(), .length() == 0, 0.
	lex := Empty[rune]()
	if lex.Size() != 0 {
		t.Errorf("wanted size 0, got %d", lex.Size())
	}
	if lex.Length() != 0 {
		t.Errorf("wanted length 0, got %d", lex.Length())
	}
}

func TestBuilderFinishTwicePanics(t *testing.T) {
	b := NewBuilder[rune](nil, nil)
	_ = b.Add(Word("a"))
	b.Finish()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic calling Finish twice")
		}
	}()
	b.Finish()
}

func TestBuilderAddAfterFinishPanics(t *testing.T) {
	b := NewBuilder[rune](nil, nil)
	_ = b.Add(Word("a"))
	b.Finish()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic calling Add on a finished Builder")
		}
	}()
	_ = b.Add(Word("b"))
}

func TestBuilderThousandWords(t *testing.T) {
	words := make([][]rune, 0, 1000)
	for i := 0; i < 1000; i++ {
		words = append(words, Word(spell(i)))
	}
	lex, err := FromSeq[rune](words, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lex.Size(); got != 1000 {
		t.Errorf("wanted size 1000, got %d", got)
	}
	for _, w := range words {
		if !lex.Contains(w) {
			t.Errorf("expected lexicon to contain %q", string(w))
		}
		if lex.Contains(append(append([]rune{}, w...), '0')) {
			t.Errorf("expected lexicon not to contain %q", string(w)+"0")
		}
	}
}

// spell renders i using a small fixed alphabet so that the resulting
// thousand words share plenty of prefixes and suffixes, exercising the
// Builder's merge path the way a natural-language wordlist would.
func spell(i int) string {
	digits := "abcdefghij"
	if i == 0 {
		return "a"
	}
	var out []byte
	for i > 0 {
		out = append([]byte{digits[i%10]}, out...)
		i /= 10
	}
	return string(out)
}
