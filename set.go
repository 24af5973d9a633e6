// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package set23 implements an ordered set of unique items backed by a 2-3
// tree. Items live in the leaves in ascending order; every interior node has
// two or three children and all leaves are at the same depth, so insertion,
// deletion and lookup take O(log n).
package set23

import (
	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/set23/internal/tree23"
)

// Set is an ordered set of unique items. Two items a and b are considered
// equal if neither less(a, b) nor less(b, a).
//
// A Set is not safe for concurrent mutation, nor for mutation concurrent
// with iteration.
type Set[T any] struct {
	t tree23.Tree[T]
}

// MakeSet constructs an empty Set ordered by less, which must be a strict
// weak order.
func MakeSet[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{t: tree23.MakeTree(less)}
}

// MakeOrderedSet constructs an empty Set ordered by the < operator.
func MakeOrderedSet[T constraints.Ordered]() *Set[T] {
	return MakeSet(Less[T])
}

// Less is the default order for types supporting the < operator.
func Less[T constraints.Ordered](a, b T) bool { return a < b }

// FromSlice constructs a Set holding the distinct items of items.
func FromSlice[T any](less func(a, b T) bool, items []T) *Set[T] {
	s := MakeSet(less)
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Of constructs a Set holding the distinct items passed.
func Of[T any](less func(a, b T) bool, items ...T) *Set[T] {
	return FromSlice(less, items)
}

// FromRange constructs a Set holding the items in [first, last), which must
// be positions of the same Set with first not after last.
func FromRange[T any](less func(a, b T) bool, first, last Iterator[T]) *Set[T] {
	s := MakeSet(less)
	for it := first; !it.Equal(last); it.Next() {
		s.Insert(it.Cur())
	}
	return s
}

// Clone returns a deep copy of the Set. Mutations of either Set are not
// visible in the other.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{t: s.t.Clone()}
}

// Assign replaces the contents of s with a deep copy of o. Assigning a Set
// to itself is a no-op.
func (s *Set[T]) Assign(o *Set[T]) {
	if s == o {
		return
	}
	s.t.Reset()
	s.t = o.t.Clone()
}

// Insert adds item to the Set. If an equal item is already present the Set
// is unchanged and Insert returns false.
func (s *Set[T]) Insert(item T) (inserted bool) {
	return s.t.Insert(item)
}

// Erase removes the item equal to item. If there is none the Set is
// unchanged and Erase returns false.
func (s *Set[T]) Erase(item T) (erased bool) {
	return s.t.Delete(item)
}

// Reset removes all items from the Set.
func (s *Set[T]) Reset() {
	s.t.Reset()
}

// Len returns the number of items in the Set.
func (s *Set[T]) Len() int { return s.t.Len() }

// Empty returns true if the Set holds no items.
func (s *Set[T]) Empty() bool { return s.t.Len() == 0 }

// Height returns the number of levels of the underlying tree.
func (s *Set[T]) Height() int { return s.t.Height() }

// Contains returns true if an item equal to item is in the Set.
func (s *Set[T]) Contains(item T) bool {
	it := s.Find(item)
	return it.Valid()
}

// Find returns an Iterator positioned at the item equal to item, or End if
// there is none.
func (s *Set[T]) Find(item T) Iterator[T] {
	return Iterator[T]{s.t.Find(item)}
}

// LowerBound returns an Iterator positioned at the smallest item not less
// than item, or End if there is none.
func (s *Set[T]) LowerBound(item T) Iterator[T] {
	return Iterator[T]{s.t.LowerBound(item)}
}

// Begin returns an Iterator positioned at the smallest item, or End if the
// Set is empty.
func (s *Set[T]) Begin() Iterator[T] {
	it := s.t.MakeIter()
	it.First()
	return Iterator[T]{it}
}

// End returns the Iterator positioned one past the largest item.
func (s *Set[T]) End() Iterator[T] {
	return Iterator[T]{s.t.MakeIter()}
}

// Min returns the smallest item, if any.
func (s *Set[T]) Min() g.Option[T] {
	if it := s.Begin(); it.Valid() {
		return g.Some(it.Cur())
	}
	return g.None[T]()
}

// Max returns the largest item, if any.
func (s *Set[T]) Max() g.Option[T] {
	it := s.End()
	it.Prev()
	if it.Valid() {
		return g.Some(it.Cur())
	}
	return g.None[T]()
}

// Ascend calls f for every item in ascending order until f returns false.
func (s *Set[T]) Ascend(f func(item T) bool) {
	for it := s.Begin(); it.Valid(); it.Next() {
		if !f(it.Cur()) {
			return
		}
	}
}

// Descend calls f for every item in descending order until f returns false.
func (s *Set[T]) Descend(f func(item T) bool) {
	it := s.End()
	for it.Prev(); it.Valid(); it.Prev() {
		if !f(it.Cur()) {
			return
		}
	}
}

// Verify checks the structural invariants of the underlying tree.
func (s *Set[T]) Verify() error { return s.t.Verify() }

// String returns the tree structure in a Newick-like format.
func (s *Set[T]) String() string { return s.t.String() }
