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

// registry maps right-language signatures to the state(s) already known to
// carry them. It is consulted by the Builder's replaceOrRegister procedure
// to decide whether a freshly-frozen state is a duplicate of one already
// minimised, or a new representative.
//
// Shape is grounded on the teacher's registry/registryCache
// (couchbase/vellum's registry.go): a hash bucket holding a short list of
// candidates, each verified by full structural comparison rather than by
// hash alone. Unlike the teacher, the bucket lists here never evict: the
// teacher trades a bounded memory footprint for an approximately-minimal
// automaton (its RegistryTableSize/RegistryMRUSize options), which is the
// right tradeoff for a byte-oriented FST holding millions of keys, but I4
// in this specification requires the automaton be *exactly* minimal after
// every Builder operation, so correctness rules out silently forgetting a
// registered state. See DESIGN.md.
type registry[T Symbol] struct {
	store   *store[T]
	hasher  Hasher[T]
	buckets map[uint64][]int32
	sigOf   map[int32]uint64
}

func newRegistry[T Symbol](s *store[T], hasher Hasher[T]) *registry[T] {
	return &registry[T]{
		store:   s,
		hasher:  hasher,
		buckets: make(map[uint64][]int32),
		sigOf:   make(map[int32]uint64),
	}
}

// entryForSig looks up an existing state equivalent to (but distinct from)
// candidate under signature sig. It never trusts the hash match alone: it
// calls store.statesEqual on every candidate in the bucket before reporting
// a hit, so a signature collision between non-equivalent states can never
// cause an incorrect merge.
func (r *registry[T]) entryForSig(candidate int32, sig uint64) (int32, bool) {
	for _, other := range r.buckets[sig] {
		if other != candidate && r.store.statesEqual(other, candidate) {
			return other, true
		}
	}
	return 0, false
}

// register records state as the representative of its current signature.
// Called exactly once per state, at the moment the Builder freezes it (see
// builder.go) -- a state's outgoing edges never change again after that
// point, so there is no risk of the registered signature going stale.
func (r *registry[T]) register(state int32, sig uint64) {
	r.buckets[sig] = append(r.buckets[sig], state)
	r.sigOf[state] = sig
}

// unregister removes state from the registry. Used only when a merge
// deletes state outright (it was the highest-indexed, losing side of a
// merge) so that a future, unrelated state reusing the same index is never
// confused with it.
func (r *registry[T]) unregister(state int32) {
	sig, ok := r.sigOf[state]
	if !ok {
		return
	}
	delete(r.sigOf, state)
	bucket := r.buckets[sig]
	for i, s := range bucket {
		if s == state {
			bucket[i] = bucket[len(bucket)-1]
			r.buckets[sig] = bucket[:len(bucket)-1]
			break
		}
	}
}
