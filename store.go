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

	"github.com/willf/bitset"
)

// rootNode is the index of the start state, matching the teacher's constant
// of the same name (builder.go's predecessor, couchbase/vellum's root is
// implicit in *builderState; smhanov/dawg names this exact constant).
const rootNode = 0

// edge is one outgoing transition of a state: follow sym, land on child.
type edge[T Symbol] struct {
	sym   T
	child int32
}

// node is the per-state record kept in a store. Edges are kept sorted by
// symbol so that lookups are O(log k) via binary search and so that
// enumeration in ascending symbol order (required by §4.1) is a plain
// linear scan.
type node[T Symbol] struct {
	edges []edge[T]
}

// store is the automaton store (C1): a flat, index-addressed slice of
// states. It knows nothing about minimisation or construction order; it
// just holds states and answers structural questions about them.
//
// finalBits/finalCounts mirror each other: finalBits.Test(i) is the fast
// is-final predicate, and finalCounts[i] is only meaningful where that bit
// is set. Keeping a bitset alongside the dense count slice gives the store
// the compact physical layout §4.1 invites without complicating the count
// bookkeeping the Builder needs for merges.
type store[T Symbol] struct {
	nodes       []node[T]
	finalBits   *bitset.BitSet
	finalCounts []int32
}

func newStore[T Symbol](sizeHint int) *store[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &store[T]{
		nodes:       make([]node[T], 0, sizeHint),
		finalBits:   bitset.New(uint(sizeHint)),
		finalCounts: make([]int32, 0, sizeHint),
	}
}

// stateCount returns the number of states currently in the store (C4's
// Length()).
func (s *store[T]) stateCount() int {
	return len(s.nodes)
}

// transitionsOf returns the outgoing edges of state, in ascending symbol
// order. The returned slice must not be mutated by the caller.
func (s *store[T]) transitionsOf(state int) []edge[T] {
	return s.nodes[state].edges
}

// isFinal reports whether state is final (final_count > 0).
func (s *store[T]) isFinal(state int) bool {
	return s.finalBits.Test(uint(state))
}

// finalCount returns the final_count of state, 0 if it is not final.
func (s *store[T]) finalCount(state int) int {
	if !s.isFinal(state) {
		return 0
	}
	return int(s.finalCounts[state])
}

// transitionFor returns the child reached from state by sym, if any.
func (s *store[T]) transitionFor(state int, sym T) (int32, bool) {
	if state >= len(s.nodes) {
		return 0, false
	}
	edges := s.nodes[state].edges
	i := sort.Search(len(edges), func(i int) bool { return !less(edges[i].sym, sym) })
	if i < len(edges) && edges[i].sym == sym {
		return edges[i].child, true
	}
	return 0, false
}

// --- construction-only mutators. Only *Builder[T] and FromRaw call these. ---

// appendNode adds a new, childless, non-final state and returns its index.
func (s *store[T]) appendNode() int32 {
	idx := int32(len(s.nodes))
	s.nodes = append(s.nodes, node[T]{})
	s.finalCounts = append(s.finalCounts, 0)
	return idx
}

// setTransition inserts or overwrites the transition state--sym-->child,
// keeping the state's edge slice sorted by symbol.
func (s *store[T]) setTransition(state int, sym T, child int32) {
	edges := s.nodes[state].edges
	i := sort.Search(len(edges), func(i int) bool { return !less(edges[i].sym, sym) })
	if i < len(edges) && edges[i].sym == sym {
		edges[i].child = child
		return
	}
	edges = append(edges, edge[T]{})
	copy(edges[i+1:], edges[i:])
	edges[i] = edge[T]{sym: sym, child: child}
	s.nodes[state].edges = edges
}

// incrementFinal marks state final (if not already) and adds delta to its
// final_count.
func (s *store[T]) incrementFinal(state int, delta int) {
	s.finalBits.Set(uint(state))
	s.finalCounts[state] += int32(delta)
}

// truncateLast removes the highest-indexed state from the store. The caller
// must guarantee expect is that highest index and that no remaining state
// holds a transition into it (the Builder's merge-or-register procedure
// guarantees this: only a freshly-created, not-yet-registered state on the
// latest insertion chain is ever truncated).
func (s *store[T]) truncateLast(expect int32) {
	last := int32(len(s.nodes)) - 1
	if expect != last {
		panic("lexicon: truncateLast called on a non-terminal state index")
	}
	s.nodes = s.nodes[:last]
	s.finalCounts = s.finalCounts[:last]
	s.finalBits.Clear(uint(last))
}

// statesEqual reports whether a and b have identical right-language
// signatures: same final bit, same (symbol, child) pairs in the same
// order. This is the full-value comparison the registry falls back on
// whenever two states land in the same signature bucket, so that a hash
// collision never merges two states with different right-languages.
func (s *store[T]) statesEqual(a, b int32) bool {
	if a == b {
		return true
	}
	if s.isFinal(int(a)) != s.isFinal(int(b)) {
		return false
	}
	ea := s.nodes[a].edges
	eb := s.nodes[b].edges
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i].sym != eb[i].sym || ea[i].child != eb[i].child {
			return false
		}
	}
	return true
}
