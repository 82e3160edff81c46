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

// fnvOffset64/fnvPrime64 are the FNV-1a constants, used the same way the
// teacher's registry.hash uses them (couchbase/vellum's registry.go).
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// signatureOf computes the right-language signature of state: one bit for
// finality, folded with the (ordinal(sym), child) pairs of its outgoing
// edges in ascending symbol order (they are already stored that way). Two
// states produced during a single build with equal right-languages have
// equal signatures, PROVIDED children are only ever signed after they are
// themselves frozen (see builder.go's replaceOrRegister, which processes
// the pending chain deepest-first). The converse does not hold for every
// pair of states, since the signature is a 64-bit hash; the registry
// confirms each signature match with statesEqual.
func (s *store[T]) signatureOf(state int32, hasher Hasher[T]) uint64 {
	h := fnvOffset64
	var final uint64
	if s.isFinal(int(state)) {
		final = 1
	}
	h = (h ^ final) * fnvPrime64
	for _, e := range s.nodes[state].edges {
		h = (h ^ hasher(e.sym)) * fnvPrime64
		h = (h ^ uint64(e.child)) * fnvPrime64
	}
	return h
}
