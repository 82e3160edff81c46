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
	"fmt"
	"hash/fnv"
	"math"

	"golang.org/x/exp/constraints"
)

// Symbol is the constraint satisfied by the element type of a word.
// It must be totally ordered; ordering and equality are both derived
// from the same underlying comparison operators.
type Symbol interface {
	constraints.Ordered
}

// Hasher reduces a symbol to a stable, collision-prone-but-bounded ordinal
// used to build a state's right-language signature (see signature.go).
// Two equal symbols MUST hash identically; unequal symbols SHOULD hash
// differently, but the registry never trusts a hash match alone (it always
// falls back to comparing full symbol values).
type Hasher[T Symbol] func(T) uint64

// DefaultHasher returns a Hasher appropriate for any built-in ordered type.
// Numeric types are reduced via their bit pattern; strings are reduced via
// FNV-1a over their bytes.
func DefaultHasher[T Symbol]() Hasher[T] {
	return func(v T) uint64 {
		switch x := any(v).(type) {
		case int:
			return uint64(x)
		case int8:
			return uint64(x)
		case int16:
			return uint64(x)
		case int32:
			return uint64(uint32(x))
		case int64:
			return uint64(x)
		case uint:
			return uint64(x)
		case uint8:
			return uint64(x)
		case uint16:
			return uint64(x)
		case uint32:
			return uint64(x)
		case uint64:
			return x
		case uintptr:
			return uint64(x)
		case float32:
			return uint64(math.Float32bits(x))
		case float64:
			return math.Float64bits(x)
		case string:
			h := fnv.New64a()
			_, _ = h.Write([]byte(x))
			return h.Sum64()
		default:
			// Unreachable for any type satisfying constraints.Ordered, but
			// kept as a defined fallback rather than a panic.
			return 0
		}
	}
}

// DefaultFormatter returns a human-readable rendering of a symbol, used by
// DOT export. Runes and bytes render as the character they represent;
// strings render as-is; every other ordered type falls back to fmt.Sprint.
func DefaultFormatter[T Symbol]() func(T) string {
	return func(v T) string {
		switch x := any(v).(type) {
		case int32: // rune
			return string(rune(x))
		case uint8: // byte
			return string(rune(x))
		case string:
			return x
		default:
			return fmt.Sprint(x)
		}
	}
}

// less reports whether a is strictly less than b.
func less[T Symbol](a, b T) bool {
	return a < b
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen[T Symbol](a, b []T) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// lessWords reports whether a sorts strictly before b under the
// sequence-derived lexicographic order (shorter prefix < longer extension).
func lessWords[T Symbol](a, b []T) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return less(a[i], b[i])
		}
	}
	return len(a) < len(b)
}

// equalWords reports whether a and b contain the same symbols in the same
// order.
func equalWords[T Symbol](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
