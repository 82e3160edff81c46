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
	"bytes"
	"encoding/gob"
	"os"

	"github.com/blevesearch/mmap-go"
)

// persistedEdge/persistedState/persistedLexicon are the gob-encodable
// shadow of store/node: the (transitions, final_counts) tuple §6 requires
// Save/Open to round-trip. This wire format is specific to this package
// and makes no claim of compatibility with any other implementation's
// on-disk layout (an explicit Non-goal).
type persistedEdge[T Symbol] struct {
	Sym   T
	Child int32
}

type persistedState[T Symbol] struct {
	Edges      []persistedEdge[T]
	Final      bool
	FinalCount int32
}

type persistedLexicon[T Symbol] struct {
	States []persistedState[T]
}

// Save persists l to path.
func (l *Lexicon[T]) Save(path string) error {
	pl := persistedLexicon[T]{States: make([]persistedState[T], l.store.stateCount())}
	for i := 0; i < l.store.stateCount(); i++ {
		edges := l.store.transitionsOf(i)
		pe := make([]persistedEdge[T], len(edges))
		for j, e := range edges {
			pe[j] = persistedEdge[T]{Sym: e.sym, Child: e.child}
		}
		pl.States[i] = persistedState[T]{
			Edges:      pe,
			Final:      l.store.isFinal(i),
			FinalCount: int32(l.store.finalCount(i)),
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gob.NewEncoder(f).Encode(pl)
}

// Open loads a Lexicon previously written by Save. The backing file is
// memory-mapped rather than read in one large read(2) call, so the OS can
// page it in on demand -- the same overall shape as the teacher's
// FST.newFST/decoder split (fst.go), adapted from the teacher's own
// bit-packed, lazily-decoded layout to a gob envelope that is fully
// decoded once, immediately after being mapped.
func Open[T Symbol](path string) (*Lexicon[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mapped, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mapped.Unmap()

	var pl persistedLexicon[T]
	if err := gob.NewDecoder(bytes.NewReader(mapped)).Decode(&pl); err != nil {
		return nil, err
	}

	transitions := make([][]RawTransition[T], len(pl.States))
	finalCounts := make([]int32, len(pl.States))
	for i, ps := range pl.States {
		edges := make([]RawTransition[T], len(ps.Edges))
		for j, pe := range ps.Edges {
			edges[j] = RawTransition[T]{Sym: pe.Sym, Child: pe.Child}
		}
		transitions[i] = edges
		if ps.Final {
			finalCounts[i] = ps.FinalCount
		}
	}

	return FromRaw[T](transitions, finalCounts)
}
