// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package hash provides a generic, collision-tolerant hash table used to
// intern (hash-cons) immutable values: a bucket-on-collision map keyed by a
// caller-supplied Hash()/Equals() pair, not by a raw hash digest alone.
package hash

// Hasher provides a generic definition of a hashing function suitable for use
// within the intern table. Two values which are Equals must produce the same
// Hash, but two values with the same Hash need not be Equals: collisions are
// resolved by a linear scan of the bucket, never by discarding one of the
// colliding values.
type Hasher[T any] interface {
	// Equals checks whether two items represent the same value.
	Equals(T) bool
	// Hash returns a hashcode used only for bucket placement.
	Hash() uint64
}

// InternTable hash-conses values of type T: calling Intern with two
// structurally-equal values (per Hasher.Equals) always returns the same,
// single stored instance. This is the generic machinery behind expression
// interning; it does not itself know anything about expressions.
type InternTable[T Hasher[T]] struct {
	buckets map[uint64][]T
}

// NewInternTable constructs an empty intern table with the given initial
// bucket capacity hint.
func NewInternTable[T Hasher[T]](capacity uint) *InternTable[T] {
	return &InternTable[T]{buckets: make(map[uint64][]T, capacity)}
}

// Intern returns the canonical stored value structurally equal to item,
// inserting item itself and returning it if no such value exists yet. The
// returned bool is true when an existing value was found (item was not
// inserted).
func (t *InternTable[T]) Intern(item T) (T, bool) {
	h := item.Hash()
	bucket := t.buckets[h]
	//
	for _, candidate := range bucket {
		if candidate.Equals(item) {
			return candidate, true
		}
	}
	// No structural match: item becomes the canonical instance.
	t.buckets[h] = append(bucket, item)
	//
	return item, false
}

// Size returns the number of distinct values currently interned.
func (t *InternTable[T]) Size() uint {
	var count uint
	for _, bucket := range t.buckets {
		count += uint(len(bucket))
	}

	return count
}

// MaxBucket returns the size of the largest bucket, useful for diagnosing a
// degenerate hash function.
func (t *InternTable[T]) MaxBucket() uint {
	var m uint
	for _, bucket := range t.buckets {
		if uint(len(bucket)) > m {
			m = uint(len(bucket))
		}
	}

	return m
}
