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

// IndexOf scans input starting at start, walking the automaton one symbol
// at a time, and returns the largest end such that input[start:end] is a
// member word. It implements the Scanning/Matched/Halted state machine of
// §4.4: at each step the current state's finality is checked (recording a
// candidate match) before attempting the next transition, so the result is
// the longest match, not the first one found. If no member word starts at
// start, ok is false.
//
// start may equal len(input) (returns false). start beyond len(input) is
// treated as no-match rather than raising, per §7's forgiving-input
// allowance.
func (l *Lexicon[T]) IndexOf(input []T, start int) (end int, ok bool) {
	if start > len(input) {
		return 0, false
	}

	state := rootNode
	matched := false
	matchEnd := 0

	pos := start
	for {
		if l.store.isFinal(state) {
			matched = true
			matchEnd = pos
		}
		if pos >= len(input) {
			break
		}
		child, exists := l.store.transitionFor(state, input[pos])
		if !exists {
			break
		}
		state = int(child)
		pos++
	}

	if !matched {
		return 0, false
	}
	return matchEnd, true
}

// Lookup composes IndexOf with slicing: it returns the longest member word
// of l found starting at position start in input, or ok=false if none
// exists.
func (l *Lexicon[T]) Lookup(input []T, start int) (match []T, ok bool) {
	end, found := l.IndexOf(input, start)
	if !found {
		return nil, false
	}
	return input[start:end], true
}
