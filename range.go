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

// Range returns a new Lexicon containing exactly the members w of l with
// from <= w < until. Either bound may be nil (absent). Semantics are
// defined purely in terms of set membership (§4.4).
//
// The traversal enumerates from the first member word, passing over every
// word below from one at a time (there is no seek to from), then stops as
// soon as a word reaches or exceeds until -- words are visited in
// ascending order, so that is the first word outside the upper bound, and
// no further enumeration is needed.
func (l *Lexicon[T]) Range(from, until []T) (*Lexicon[T], error) {
	var words [][]T

	it := l.Iterator()
	for {
		w, err := it.Next()
		if err != nil {
			break
		}
		if from != nil && lessWords(w, from) {
			continue
		}
		if until != nil && !lessWords(w, until) {
			break
		}
		cp := make([]T, len(w))
		copy(cp, w)
		words = append(words, cp)
	}

	return FromSortedSeq[T](words, nil, nil)
}
