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

package lexicon_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/madfa/lexicon"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PropertySuite exercises P1-P10 against one fixed word set plus a
// handful of randomly shuffled/duplicated derivatives, following the
// suite.Suite/SetupTest shape of katalvlaran-lvlath's AdjacencySuite.
type PropertySuite struct {
	suite.Suite
	words []string
	lex   *lexicon.Lexicon[rune]
}

func (s *PropertySuite) SetupTest() {
	s.words = []string{
		"a", "ab", "abc", "abd", "b", "banana", "band", "bandana",
		"c", "car", "cart", "cat", "dog", "do",
	}
	lex, err := lexicon.FromStrings(s.words...)
	s.Require().NoError(err)
	s.lex = lex
}

// P1: contains matches set membership.
func (s *PropertySuite) TestContainsMatchesSet() {
	require := require.New(s.T())
	set := make(map[string]bool, len(s.words))
	for _, w := range s.words {
		set[w] = true
	}
	for _, w := range s.words {
		require.True(s.lex.Contains(lexicon.Word(w)))
	}
	for _, absent := range []string{"x", "ba", "bandanas", "carts"} {
		require.False(s.lex.Contains(lexicon.Word(absent)), absent)
		require.False(set[absent])
	}
}

// P2: iteration yields the sorted, deduplicated members.
func (s *PropertySuite) TestIterationIsSortedAndDeduplicated() {
	require := require.New(s.T())
	sorted := append([]string(nil), s.words...)
	sort.Strings(sorted)

	var got []string
	it := s.lex.Iterator()
	for {
		w, err := it.Next()
		if err != nil {
			break
		}
		got = append(got, lexicon.WordString(w))
	}
	require.Equal(sorted, got)
}

// P3: size equals the distinct word count.
func (s *PropertySuite) TestSizeEqualsDistinctCount() {
	require := require.New(s.T())
	distinct := map[string]bool{}
	for _, w := range s.words {
		distinct[w] = true
	}
	require.Equal(len(distinct), s.lex.Size())
}

// P4: construction is independent of input order and multiplicity.
func (s *PropertySuite) TestOrderAndMultiplicityIndependence() {
	require := require.New(s.T())
	r := rand.New(rand.NewSource(7))

	for trial := 0; trial < 5; trial++ {
		shuffled := append([]string(nil), s.words...)
		shuffled = append(shuffled, s.words...) // duplicate every word once
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		other, err := lexicon.FromStrings(shuffled...)
		require.NoError(err)
		require.True(s.lex.Equal(other), "trial %d", trial)
	}
}

// P5: minimality surrogate -- equal word sets give equal state counts,
// independent of which (sorted, deduplicated) order built them.
func (s *PropertySuite) TestMinimalitySurrogate() {
	require := require.New(s.T())
	sorted := append([]string(nil), s.words...)
	sort.Strings(sorted)

	wordsA := make([][]rune, len(sorted))
	for i, w := range sorted {
		wordsA[i] = lexicon.Word(w)
	}
	a, err := lexicon.FromSortedSeq[rune](dedupSorted(wordsA), nil, nil)
	require.NoError(err)
	require.Equal(s.lex.Length(), a.Length())
}

// P6: insert grows size by at most one and the result contains w.
func (s *PropertySuite) TestInsertGrowsByAtMostOne() {
	require := require.New(s.T())
	for _, w := range []string{"zzz", "a", "cartwheel"} {
		before := s.lex.Size()
		alreadyPresent := s.lex.Contains(lexicon.Word(w))

		grown, err := s.lex.Insert(lexicon.Word(w))
		require.NoError(err)
		require.True(grown.Contains(lexicon.Word(w)))

		wantSize := before
		if !alreadyPresent {
			wantSize++
		}
		require.Equal(wantSize, grown.Size())
	}
}

// P7: remove shrinks size by at most one and the result lacks w.
func (s *PropertySuite) TestRemoveShrinksByAtMostOne() {
	require := require.New(s.T())
	for _, w := range []string{"zzz", "a", "cat"} {
		before := s.lex.Size()
		present := s.lex.Contains(lexicon.Word(w))

		shrunk, err := s.lex.Remove(lexicon.Word(w))
		require.NoError(err)
		require.False(shrunk.Contains(lexicon.Word(w)))

		wantSize := before
		if present {
			wantSize--
		}
		require.Equal(wantSize, shrunk.Size())
	}
}

// P8: inserting then removing an absent word is a value no-op.
func (s *PropertySuite) TestInsertThenRemoveIsNoOp() {
	require := require.New(s.T())
	for _, w := range []string{"zzz", "qqq", "mno"} {
		require.False(s.lex.Contains(lexicon.Word(w)))
		grown, err := s.lex.Insert(lexicon.Word(w))
		require.NoError(err)
		back, err := grown.Remove(lexicon.Word(w))
		require.NoError(err)
		require.True(s.lex.Equal(back))
	}
}

// P9: lookup's match is the unique longest one, and indexOf agrees.
func (s *PropertySuite) TestLookupIsLongestAndAgreesWithIndexOf() {
	require := require.New(s.T())
	input := lexicon.Word("bandanaband")
	match, ok := s.lex.Lookup(input, 0)
	require.True(ok)
	require.Equal("bandana", lexicon.WordString(match))

	end, ok := s.lex.IndexOf(input, 0)
	require.True(ok)
	require.Equal(len(match), end)

	for _, longer := range []string{"bandanab", "bandanaband"} {
		require.False(s.lex.Contains(lexicon.Word(longer)), longer)
	}
}

// P10: prefix iteration yields exactly the members starting with p.
func (s *PropertySuite) TestPrefixIterationMatchesFilter() {
	require := require.New(s.T())
	var want []string
	for _, w := range s.words {
		if len(w) >= 3 && w[:3] == "ban" {
			want = append(want, w)
		}
	}
	sort.Strings(want)

	got := s.lex.IteratorPrefix(lexicon.Word("ban")).ToSlice()
	var gotStrings []string
	for _, w := range got {
		gotStrings = append(gotStrings, lexicon.WordString(w))
	}
	require.Equal(want, gotStrings)
}

func dedupSorted(words [][]rune) [][]rune {
	out := words[:0]
	for i, w := range words {
		if i > 0 && string(out[len(out)-1]) == string(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
