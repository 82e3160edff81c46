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

import "errors"

// Sentinel errors returned by the builder and by Lexicon constructors.
var (
	// ErrOrderViolation is returned when a word fed to the Builder (directly,
	// or through FromSortedSeq) is not strictly greater than the previously
	// added word. The Builder's state is undefined after this error.
	ErrOrderViolation = errors.New("lexicon: words must be added in strictly ascending order")

	// ErrEmptyWord is returned when the empty sequence is added to a Builder
	// or passed to a Lexicon constructor or to Insert. The empty word can
	// never be a member (see invariant I5); Remove treats it as an absent
	// word and returns the Lexicon unchanged.
	ErrEmptyWord = errors.New("lexicon: the empty word is not a valid member")

	// ErrDimensionMismatch is returned by constructors that take parallel
	// lists (e.g. transitions and final counts) of unequal length.
	ErrDimensionMismatch = errors.New("lexicon: mismatched list lengths")

	// ErrIteratorDone is returned by Iterator.Next once the iteration has
	// been exhausted.
	ErrIteratorDone = errors.New("lexicon: iterator exhausted")
)
