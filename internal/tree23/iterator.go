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

package tree23

import "github.com/anacrolix/missinggo/v2/panicif"

// Iterator is a position within a Tree: either a leaf or the end. Iterators
// follow parent links between leaves and carry no stack, so copies are
// independent.
type Iterator[T any] struct {
	t    *Tree[T]
	leaf nodeID
}

// First seeks to the smallest item in the tree.
func (i *Iterator[T]) First() {
	i.leaf = nilNode
	if i.t.root == nilNode {
		return
	}
	i.leaf = i.t.leftmost(i.t.root)
}

// Last seeks to the largest item in the tree.
func (i *Iterator[T]) Last() {
	i.leaf = nilNode
	if i.t.root == nilNode {
		return
	}
	i.leaf = i.t.rightmost(i.t.root)
}

// Next positions the Iterator at the item immediately following its
// current position, or at the end if there is none. Next at the end is a
// no-op.
func (i *Iterator[T]) Next() {
	if i.leaf == nilNode {
		return
	}
	i.leaf = i.t.successor(i.leaf)
}

// Prev positions the Iterator at the item immediately preceding its current
// position. From the end it moves to the largest item; from the smallest
// item it moves to the end.
func (i *Iterator[T]) Prev() {
	if i.leaf == nilNode {
		i.Last()
		return
	}
	i.leaf = i.t.predecessor(i.leaf)
}

// Valid returns whether the Iterator is positioned at an item.
func (i *Iterator[T]) Valid() bool {
	return i.leaf != nilNode
}

// Cur returns the item at the Iterator's current position. It panics if the
// Iterator is not valid.
func (i *Iterator[T]) Cur() T {
	panicif.False(i.Valid())
	return i.t.a.at(i.leaf).max
}

// Equal reports whether both iterators are at the end, or both belong to
// the same tree and are positioned at equal items.
func (i *Iterator[T]) Equal(o *Iterator[T]) bool {
	if !i.Valid() || !o.Valid() {
		return i.Valid() == o.Valid()
	}
	return i.t == o.t && i.t.cfg.Equal(i.Cur(), o.Cur())
}

func (t *Tree[T]) leftmost(id nodeID) nodeID {
	for n := t.a.at(id); !n.isLeaf(); n = t.a.at(id) {
		id = n.children[0]
	}
	return id
}

func (t *Tree[T]) rightmost(id nodeID) nodeID {
	for n := t.a.at(id); !n.isLeaf(); n = t.a.at(id) {
		id = n.children[n.count-1]
	}
	return id
}

// successor walks up from id until some ancestor has a next sibling and
// returns the leftmost leaf below that sibling.
func (t *Tree[T]) successor(id nodeID) nodeID {
	for {
		parent := t.a.at(id).parent
		if parent == nilNode {
			return nilNode
		}
		p := t.a.at(parent)
		if i := p.indexOf(id); i < int(p.count)-1 {
			return t.leftmost(p.children[i+1])
		}
		id = parent
	}
}

func (t *Tree[T]) predecessor(id nodeID) nodeID {
	for {
		parent := t.a.at(id).parent
		if parent == nilNode {
			return nilNode
		}
		p := t.a.at(parent)
		if i := p.indexOf(id); i > 0 {
			return t.rightmost(p.children[i-1])
		}
		id = parent
	}
}
