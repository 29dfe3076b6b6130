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
package hash

import "testing"

// intKey is a minimal Hasher[T] used purely to exercise InternTable; it
// deliberately collides every value onto hash 0 so collision handling is
// exercised regardless of map iteration order.
type intKey struct {
	value int
}

func (k intKey) Equals(other intKey) bool { return k.value == other.value }
func (k intKey) Hash() uint64             { return 0 }

func TestInternTable_SameValueSameIdentity(t *testing.T) {
	table := NewInternTable[intKey](4)

	a, existedA := table.Intern(intKey{1})
	b, existedB := table.Intern(intKey{1})

	if existedA {
		t.Fatalf("first Intern of a fresh value should not report pre-existing")
	}

	if !existedB {
		t.Fatalf("second Intern of an equal value should report pre-existing")
	}

	if a != b {
		t.Fatalf("expected canonical identity, got %v and %v", a, b)
	}
}

func TestInternTable_DistinctValuesDistinctIdentity(t *testing.T) {
	table := NewInternTable[intKey](4)

	a, _ := table.Intern(intKey{1})
	b, _ := table.Intern(intKey{2})

	if a == b {
		t.Fatalf("distinct values must not be interned to the same identity")
	}

	if table.Size() != 2 {
		t.Fatalf("expected 2 distinct values, got %d", table.Size())
	}
}

func TestInternTable_CollisionHandledByBucket(t *testing.T) {
	table := NewInternTable[intKey](1)

	for i := 0; i < 8; i++ {
		table.Intern(intKey{i})
	}

	if table.Size() != 8 {
		t.Fatalf("expected 8 distinct values despite hash collisions, got %d", table.Size())
	}

	if table.MaxBucket() != 8 {
		t.Fatalf("expected single bucket of size 8, got %d", table.MaxBucket())
	}
}
