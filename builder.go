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

// BuilderOpts holds Builder tunables. The zero value is the same as
// defaultBuilderOpts (NewBuilder's nil-opts path). Shape and defaulting pattern follow the teacher's
// BuilderOpts / defaultBuilderOpts (couchbase/vellum's builder.go).
type BuilderOpts struct {
	// SizeHint pre-reserves backing storage for this many states, per
	// §4.3's "Size hint" paragraph. Zero means no hint.
	SizeHint int
}

var defaultBuilderOpts = &BuilderOpts{
	SizeHint: 0,
}

// pendingEdge is one (parent, symbol, child) triple on the chain of states
// most recently created for the word currently being inserted. The Builder
// keeps these in an explicit stack (named and shaped after the teacher's
// sibling pack repo smhanov/dawg's uncheckedNodes, since the spec mandates
// an explicit stack of triples rather than the implicit recursion the
// teacher itself uses in builderState.lastTransition()).
type pendingEdge[T Symbol] struct {
	parent int32
	sym    T
	child  int32
}

// Builder performs the online MADFA construction of §4.3: it absorbs one
// sorted word at a time, freezing and deduplicating states as soon as it is
// safe to do so, and never revisiting a frozen state's outgoing edges.
//
// A Builder is single-threaded and not shared. Once Finish is called its
// internal buffers are discarded; the returned Lexicon owns its own store.
type Builder[T Symbol] struct {
	store    *store[T]
	registry *registry[T]
	hasher   Hasher[T]

	lastWord []T
	hasLast  bool
	pending  []pendingEdge[T]

	finished bool
}

// NewBuilder creates a Builder. opts may be nil to accept defaults. hasher
// may be nil to accept DefaultHasher[T](), suitable for every built-in
// ordered type.
func NewBuilder[T Symbol](opts *BuilderOpts, hasher Hasher[T]) *Builder[T] {
	if opts == nil {
		opts = defaultBuilderOpts
	}
	if hasher == nil {
		hasher = DefaultHasher[T]()
	}
	st := newStore[T](opts.SizeHint)
	return &Builder[T]{
		store:    st,
		registry: newRegistry[T](st, hasher),
		hasher:   hasher,
	}
}

// Add absorbs one word. Words must be added in strictly ascending
// lexicographic order with no duplicates and must not be empty; violating
// either reports ErrOrderViolation or ErrEmptyWord, after which the
// Builder's state is undefined (per §4.3's precondition contract).
func (b *Builder[T]) Add(word []T) error {
	if b.finished {
		panic("lexicon: Add called on a finished Builder")
	}
	if len(word) == 0 {
		return ErrEmptyWord
	}
	if b.hasLast && !lessWords(b.lastWord, word) {
		return ErrOrderViolation
	}

	if b.store.stateCount() == 0 {
		b.store.appendNode() // state 0, the start state
	}

	commonLen := commonPrefixLen(b.lastWord, word)

	// Freeze everything below the shared prefix: those states' right
	// languages can never grow again now that a word diverging earlier
	// has arrived.
	b.replaceOrRegister(commonLen)

	var parent int32 = rootNode
	if len(b.pending) > 0 {
		parent = b.pending[len(b.pending)-1].child
	}

	for _, sym := range word[commonLen:] {
		child := b.store.appendNode()
		b.store.setTransition(int(parent), sym, child)
		b.pending = append(b.pending, pendingEdge[T]{parent: parent, sym: sym, child: child})
		parent = child
	}

	b.store.incrementFinal(int(parent), 1)

	b.lastWord = word
	b.hasLast = true
	return nil
}

// replaceOrRegister walks the pending chain from its tail down to (and
// including) index downTo, merging each freshly-created state with an
// already-registered equivalent where one exists, or registering it as a
// new representative otherwise. It is the "replace-or-register" procedure
// of §4.3, grounded on smhanov/dawg's minimize(downTo).
func (b *Builder[T]) replaceOrRegister(downTo int) {
	for i := len(b.pending) - 1; i >= downTo; i-- {
		e := b.pending[i]
		sig := b.store.signatureOf(e.child, b.hasher)

		if equiv, found := b.registry.entryForSig(e.child, sig); found {
			// Merge: redirect the parent's edge, fold the final count into
			// the survivor, and drop the now-unreachable duplicate. e.child
			// is guaranteed to be the highest-indexed state: it belongs to
			// the previous word's suffix chain and has not yet been
			// registered, and every deeper state on that chain has already
			// been merged away (a deeper state that got registered instead
			// would be pointed to only by e.child, making e.child unique).
			delta := b.store.finalCount(int(e.child))
			b.store.setTransition(int(e.parent), e.sym, equiv)
			if delta > 0 {
				b.store.incrementFinal(int(equiv), delta)
			}
			b.registry.unregister(e.child)
			b.store.truncateLast(e.child)
		} else {
			b.registry.register(e.child, sig)
		}
	}
	b.pending = b.pending[:downTo]
}

// Finish runs replace-or-register one last time, rooted at the start
// state, so every still-dangling state from the final word gets minimised,
// then detaches and returns the resulting Lexicon. The Builder must not be
// used again afterwards.
func (b *Builder[T]) Finish() *Lexicon[T] {
	if b.finished {
		panic("lexicon: Finish called twice on the same Builder")
	}
	b.replaceOrRegister(0)
	b.finished = true

	st := b.store
	b.store = nil
	b.registry = nil
	b.pending = nil
	b.lastWord = nil

	return newLexicon(st)
}
