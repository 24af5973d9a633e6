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

package set23

import "github.com/ajwerner/set23/internal/tree23"

// Iterator is a bidirectional position within a Set: either an item or the
// end. It is invalidated by any Insert or Erase on the Set.
type Iterator[T any] struct {
	it tree23.Iterator[T]
}

// Next moves to the following item, or to the end after the largest item.
func (it *Iterator[T]) Next() { it.it.Next() }

// Prev moves to the preceding item. From the end it moves to the largest
// item; from the smallest item it moves to the end.
func (it *Iterator[T]) Prev() { it.it.Prev() }

// Valid returns false at the end.
func (it *Iterator[T]) Valid() bool { return it.it.Valid() }

// Cur returns the current item. It panics at the end.
func (it *Iterator[T]) Cur() T { return it.it.Cur() }

// Equal reports whether it and o are both at the end, or are positions in
// the same Set at equal items.
func (it *Iterator[T]) Equal(o Iterator[T]) bool { return it.it.Equal(&o.it) }
