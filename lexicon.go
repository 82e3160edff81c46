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
	"sort"
	"sync"
)

// Lexicon is an immutable, sorted set of non-empty words over T, stored as
// a minimal acyclic deterministic finite automaton. Lexicons are value
// types: every modifier (Insert, Remove) returns a new Lexicon rather than
// mutating the receiver.
type Lexicon[T Symbol] struct {
	store *store[T]

	// rootEdges is a cached view of state 0's sorted outgoing transitions,
	// per §3's "cached lazy view of the start state's sorted outgoing
	// transitions". It is filled in once at construction (nil for an empty
	// store); Iterator and DOT read the store directly and do not use it.
	rootEdges []edge[T]

	size int

	// Lazily-computed rank bookkeeping for PrefixesOf/WordNumber (see
	// supplemental.go). Populated at most once per Lexicon.
	skipOnce sync.Once
	edgeSkip [][]int32
}

func newLexicon[T Symbol](st *store[T]) *Lexicon[T] {
	l := &Lexicon[T]{store: st}
	if st.stateCount() > 0 {
		l.rootEdges = st.transitionsOf(rootNode)
	}
	total := 0
	for i := 0; i < st.stateCount(); i++ {
		total += st.finalCount(i)
	}
	l.size = total
	return l
}

// Empty returns the Lexicon containing no words.
func Empty[T Symbol]() *Lexicon[T] {
	return newLexicon[T](newStore[T](0))
}

// FromSortedSeq builds a Lexicon from words, which MUST already be sorted
// in strictly ascending order with no duplicates. It is an error to
// violate that precondition (ErrOrderViolation) or to include an empty
// word (ErrEmptyWord). opts and hasher may both be nil.
func FromSortedSeq[T Symbol](words [][]T, opts *BuilderOpts, hasher Hasher[T]) (*Lexicon[T], error) {
	b := NewBuilder[T](opts, hasher)
	for _, w := range words {
		if err := b.Add(w); err != nil {
			return nil, err
		}
	}
	return b.Finish(), nil
}

// FromSeq builds a Lexicon from an arbitrary (possibly unsorted, possibly
// duplicated) slice of words. It sorts and deduplicates before handing the
// result to a Builder. An empty word anywhere in words is rejected with
// ErrEmptyWord. opts and hasher may both be nil.
func FromSeq[T Symbol](words [][]T, opts *BuilderOpts, hasher Hasher[T]) (*Lexicon[T], error) {
	for _, w := range words {
		if len(w) == 0 {
			return nil, ErrEmptyWord
		}
	}

	sorted := make([][]T, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return lessWords(sorted[i], sorted[j]) })

	deduped := sorted[:0]
	for i, w := range sorted {
		if i > 0 && equalWords(deduped[len(deduped)-1], w) {
			continue
		}
		deduped = append(deduped, w)
	}

	return FromSortedSeq[T](deduped, opts, hasher)
}

// RawTransition is one outgoing edge of a state, as handed to FromRaw:
// follow Sym, land on Child.
type RawTransition[T Symbol] struct {
	Sym   T
	Child int32
}

// FromRaw builds a Lexicon directly from a flat (transitions, finalCounts)
// tuple, one entry of each per state, state 0 being the start state. This
// is the constructor diskstore.go's Open rebuilds onto, and is exported so
// that callers who already hold an automaton in this shape (e.g. decoded
// from a foreign format) need not round-trip it through the Builder.
//
// transitions[i] may list its edges in any order: each edge is inserted at
// its sorted position by Sym, and a repeated Sym overwrites the earlier
// edge. Child indices are not validated. len(transitions) and len(finalCounts) must agree, one entry
// per state; otherwise ErrDimensionMismatch is returned and construction is
// rejected outright.
func FromRaw[T Symbol](transitions [][]RawTransition[T], finalCounts []int32) (*Lexicon[T], error) {
	if len(transitions) != len(finalCounts) {
		return nil, ErrDimensionMismatch
	}

	st := newStore[T](len(transitions))
	for range transitions {
		st.appendNode()
	}
	for state, edges := range transitions {
		for _, e := range edges {
			st.setTransition(state, e.Sym, e.Child)
		}
		if finalCounts[state] > 0 {
			st.incrementFinal(state, int(finalCounts[state]))
		}
	}
	return newLexicon[T](st), nil
}

// Contains reports whether w is a member of the Lexicon. The empty
// sequence is never a member (I5).
func (l *Lexicon[T]) Contains(w []T) bool {
	if len(w) == 0 {
		return false
	}
	state := rootNode
	for _, sym := range w {
		child, ok := l.store.transitionFor(state, sym)
		if !ok {
			return false
		}
		state = int(child)
	}
	return l.store.isFinal(state)
}

// Size returns the number of words in the Lexicon (Σ final_count).
func (l *Lexicon[T]) Size() int {
	return l.size
}

// Length returns the number of states in the underlying automaton. This is
// a diagnostic/testing quantity, NOT the number of words.
func (l *Lexicon[T]) Length() int {
	return l.store.stateCount()
}

// Equal reports whether l and other accept exactly the same set of words.
// Because both automata are minimal (I4), equal word-sets imply isomorphic
// automata, so a lock-step walk from both start states suffices; there is
// no need for a general graph-isomorphism search.
func (l *Lexicon[T]) Equal(other *Lexicon[T]) bool {
	if l.Size() != other.Size() || l.Length() != other.Length() {
		return false
	}
	if l.store.stateCount() == 0 {
		return other.store.stateCount() == 0
	}
	return equalStates(l.store, other.store, rootNode, rootNode)
}

func equalStates[T Symbol](a, b *store[T], sa, sb int) bool {
	if a.isFinal(sa) != b.isFinal(sb) {
		return false
	}
	if a.finalCount(sa) != b.finalCount(sb) {
		return false
	}
	ea, eb := a.transitionsOf(sa), b.transitionsOf(sb)
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i].sym != eb[i].sym {
			return false
		}
		if !equalStates(a, b, int(ea[i].child), int(eb[i].child)) {
			return false
		}
	}
	return true
}

// Insert returns a new Lexicon containing every word in l plus w. If w is
// already a member, l itself is returned unchanged (value-equal, and in
// this implementation also identity-equal).
func (l *Lexicon[T]) Insert(w []T) (*Lexicon[T], error) {
	if len(w) == 0 {
		return nil, ErrEmptyWord
	}
	if l.Contains(w) {
		return l, nil
	}
	words := l.collectWords()
	words = insertSorted(words, w)
	return FromSortedSeq[T](words, nil, nil)
}

// Remove returns a new Lexicon containing every word in l except w. If w
// is not a member, l itself is returned unchanged.
func (l *Lexicon[T]) Remove(w []T) (*Lexicon[T], error) {
	if !l.Contains(w) {
		return l, nil
	}
	words := l.collectWords()
	out := words[:0]
	for _, word := range words {
		if !equalWords(word, w) {
			out = append(out, word)
		}
	}
	return FromSortedSeq[T](out, nil, nil)
}

// collectWords returns every member word, in ascending order, as a fresh
// slice suitable for handing to FromSortedSeq (e.g. after splicing in or
// filtering out one word).
func (l *Lexicon[T]) collectWords() [][]T {
	words := make([][]T, 0, l.Size())
	it := l.Iterator()
	for {
		w, err := it.Next()
		if err != nil {
			break
		}
		cp := make([]T, len(w))
		copy(cp, w)
		words = append(words, cp)
	}
	return words
}

// insertSorted splices w into its sorted position among words, which MUST
// already be sorted ascending and MUST NOT already contain w.
func insertSorted[T Symbol](words [][]T, w []T) [][]T {
	i := sort.Search(len(words), func(i int) bool { return !lessWords(words[i], w) })
	words = append(words, nil)
	copy(words[i+1:], words[i:])
	words[i] = w
	return words
}
