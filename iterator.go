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

// frame is one level of the Iterator's explicit traversal stack: the state
// entered at this depth, the index of the next outgoing edge to explore,
// and whether this state's own finality has already been checked (and, if
// final, already emitted).
type frame[T Symbol] struct {
	state   int32
	idx     int
	checked bool
}

// Iterator produces the member words of a Lexicon in ascending order via
// an explicit-stack depth-first traversal: at each state, children are
// visited in ascending symbol order, and a state's own word is emitted (if
// final) before its children are explored. The explicit stack avoids the
// unbounded recursion the reference algorithm uses, per §9 ("word lengths
// are data-driven and may reach thousands").
//
// Shape grounded on the teacher's fst_iterator.go (statesStack/keysStack),
// simplified from a byte-keyed value-bearing FST iterator down to a
// generic-symbol membership-only one: Lexicon words carry no payload, so
// there is no valsStack to thread alongside the symbol stack.
//
// An Iterator borrows read-only from its Lexicon, is not restartable, and
// is not safe to share across goroutines (Next mutates its own cursor).
// Independent iterators over the same Lexicon are safe to use concurrently.
type Iterator[T Symbol] struct {
	store     *store[T]
	stack     []frame[T]
	word      []T
	started   bool
	exhausted bool
}

// Iterator returns an Iterator over every member word of l, in ascending
// order.
func (l *Lexicon[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{store: l.store}
}

// IteratorPrefix returns an Iterator over every member word of l that
// begins with prefix, in ascending order. If no member begins with prefix
// (including the case where prefix itself cannot be walked), the returned
// Iterator is immediately exhausted. IteratorPrefix(nil) is equivalent to
// Iterator().
func (l *Lexicon[T]) IteratorPrefix(prefix []T) *Iterator[T] {
	state := int32(rootNode)
	if l.store.stateCount() == 0 {
		return &Iterator[T]{store: l.store, started: true, exhausted: true}
	}
	for _, sym := range prefix {
		child, ok := l.store.transitionFor(int(state), sym)
		if !ok {
			return &Iterator[T]{store: l.store, started: true, exhausted: true}
		}
		state = child
	}
	word := make([]T, len(prefix))
	copy(word, prefix)
	return &Iterator[T]{
		store:   l.store,
		stack:   []frame[T]{{state: state}},
		word:    word,
		started: true,
	}
}

// Next advances the iterator and returns the next member word. It returns
// ErrIteratorDone once exhausted. The returned slice is only valid until
// the next call to Next; callers that need to keep it must copy it.
func (it *Iterator[T]) Next() ([]T, error) {
	if !it.started {
		it.started = true
		if it.store.stateCount() == 0 {
			it.exhausted = true
		} else {
			it.stack = []frame[T]{{state: rootNode}}
		}
	}
	if it.exhausted {
		return nil, ErrIteratorDone
	}

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if !top.checked {
			top.checked = true
			if it.store.isFinal(int(top.state)) {
				return it.word, nil
			}
		}

		edges := it.store.transitionsOf(int(top.state))
		if top.idx < len(edges) {
			e := edges[top.idx]
			top.idx++
			it.word = append(it.word, e.sym)
			it.stack = append(it.stack, frame[T]{state: e.child})
			continue
		}

		it.stack = it.stack[:len(it.stack)-1]
		if len(it.word) > 0 {
			it.word = it.word[:len(it.word)-1]
		}
	}

	it.exhausted = true
	return nil, ErrIteratorDone
}

// ToSlice drains the iterator and returns every remaining word as a fresh,
// independently-owned slice of slices. Intended for tests and small
// Lexicons; large enumerations should use Next directly.
func (it *Iterator[T]) ToSlice() [][]T {
	var out [][]T
	for {
		w, err := it.Next()
		if err != nil {
			return out
		}
		cp := make([]T, len(w))
		copy(cp, w)
		out = append(out, cp)
	}
}
