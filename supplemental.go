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

// Match is one result of PrefixesOf: a member word that is a prefix of the
// scanned input, together with its ordinal rank among all member words.
type Match[T Symbol] struct {
	Word  []T
	Index int
}

// PrefixesOf returns every member word of l that is a prefix of input, in
// ascending (and therefore increasing-length) order. Unlike IndexOf, which
// reports only the longest such prefix, PrefixesOf reports all of them --
// useful for a tokenizer that wants every dictionary entry overlapping a
// scan position.
//
// Grounded on smhanov/dawg's FindAllPrefixesOf: this implementation keeps
// its per-step "check final before transitioning" shape, generalized from
// FindAllPrefixesOf's byte/rune walk to a generic symbol walk, and adds
// each match's WordNumber-style ordinal rank via the same skip bookkeeping
// smhanov/dawg's calculateSkipped computes.
func (l *Lexicon[T]) PrefixesOf(input []T) []Match[T] {
	l.ensureSkip()

	var results []Match[T]
	state := int32(rootNode)
	rank := 0

	if l.store.isFinal(int(state)) {
		results = append(results, Match[T]{Word: nil, Index: rank})
	}

	for i, sym := range input {
		child, ok := l.store.transitionFor(int(state), sym)
		if !ok {
			break
		}
		rank += l.skipFor(state, sym)
		state = child
		if l.store.isFinal(int(state)) {
			word := make([]T, i+1)
			copy(word, input[:i+1])
			results = append(results, Match[T]{Word: word, Index: rank})
		}
	}

	return results
}

// WordNumber returns the ordinal rank of w among l's sorted member words
// (0-indexed), or ok=false if w is not a member.
//
// Grounded on smhanov/dawg's IndexOf, which accumulates a "skipped" counter
// of how many earlier final states were passed over along the walk; the
// per-edge skip counts backing that accumulation are computed once, at
// first use, by skipFor/ensureSkip (smhanov/dawg's calculateSkipped).
func (l *Lexicon[T]) WordNumber(w []T) (int, bool) {
	if len(w) == 0 {
		return 0, false
	}
	l.ensureSkip()

	state := int32(rootNode)
	rank := 0
	for _, sym := range w {
		child, ok := l.store.transitionFor(int(state), sym)
		if !ok {
			return 0, false
		}
		rank += l.skipFor(state, sym)
		state = child
	}
	if !l.store.isFinal(int(state)) {
		return 0, false
	}
	return rank, true
}

// skipFor returns, for the edge state--sym-->, the number of words accepted
// from state that sort before any word continuing through that edge (state
// itself if final, plus the words through its earlier edges). Summing these
// along a path from the start state gives a word's rank. ensureSkip must
// have already run.
func (l *Lexicon[T]) skipFor(state int32, sym T) int {
	skips := l.edgeSkip[state]
	edges := l.store.transitionsOf(int(state))
	for i, e := range edges {
		if e.sym == sym {
			return int(skips[i])
		}
	}
	return 0
}

// ensureSkip computes, once per Lexicon, the number of final states
// reachable strictly before each outgoing edge of each state -- the
// bookkeeping WordNumber and PrefixesOf's ranks are built from.
//
// This mirrors smhanov/dawg's calculateSkipped, including its recursive
// shape: the automaton is acyclic, so recursion terminates, and depth is
// bounded by the length of the longest member word (the same bound the
// rest of this package's explicit-stack traversals exist to avoid
// overflowing on, but which a one-time, lazily-computed annotation pass
// can reasonably inherit from its source algorithm).
func (l *Lexicon[T]) ensureSkip() {
	l.skipOnce.Do(func() {
		n := l.store.stateCount()
		if n == 0 {
			return
		}
		l.edgeSkip = make([][]int32, n)
		reach := make([]int32, n)
		done := make([]bool, n)

		var compute func(state int32) int32
		compute = func(state int32) int32 {
			if done[state] {
				return reach[state]
			}
			done[state] = true

			var total int32
			if l.store.isFinal(int(state)) {
				total = 1
			}
			edges := l.store.transitionsOf(int(state))
			skips := make([]int32, len(edges))
			for i, e := range edges {
				skips[i] = total
				total += compute(e.child)
			}
			l.edgeSkip[state] = skips
			reach[state] = total
			return total
		}
		compute(rootNode)
	})
}
