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

// LowLevelIterator is exposed to developers within this module for use
// implementing searches that need per-node information such as subtree
// sizes. Unlike an Iterator, it may rest on an interior node; once it has
// descended to a leaf it can be converted back with Iterator.
type LowLevelIterator[T any] Iterator[T]

// LowLevel converts an iterator to a LowLevelIterator. Given this package
// is internal, callers outside of this module cannot construct a
// LowLevelIterator.
func LowLevel[T any](it *Iterator[T]) *LowLevelIterator[T] {
	return (*LowLevelIterator[T])(it)
}

// Iterator converts the LowLevelIterator back. It is illegal to call unless
// the current node is a leaf or the end.
func (i *LowLevelIterator[T]) Iterator() *Iterator[T] {
	panicif.True(i.leaf != nilNode && !i.IsLeaf())
	return (*Iterator[T])(i)
}

// Config returns the Tree's config.
func (i *LowLevelIterator[T]) Config() *Config[T] {
	return &i.t.cfg
}

// SeekRoot moves to the root of the tree. The iterator is at the end if the
// tree is empty.
func (i *LowLevelIterator[T]) SeekRoot() {
	i.leaf = i.t.root
}

// SeekEnd moves to the end.
func (i *LowLevelIterator[T]) SeekEnd() {
	i.leaf = nilNode
}

// AtEnd returns true if the iterator does not rest on a node.
func (i *LowLevelIterator[T]) AtEnd() bool {
	return i.leaf == nilNode
}

// IsLeaf returns true if the current node is a leaf.
func (i *LowLevelIterator[T]) IsLeaf() bool {
	return i.t.a.at(i.leaf).isLeaf()
}

// Count returns the number of children of the current node.
func (i *LowLevelIterator[T]) Count() int {
	return int(i.t.a.at(i.leaf).count)
}

// Size returns the number of items beneath the current node.
func (i *LowLevelIterator[T]) Size() int {
	return i.t.a.at(i.leaf).size
}

// ChildSize returns the number of items beneath the child at position c.
func (i *LowLevelIterator[T]) ChildSize(c int) int {
	return i.t.a.at(i.child(c)).size
}

// ChildMax returns the largest item beneath the child at position c.
func (i *LowLevelIterator[T]) ChildMax(c int) T {
	return i.t.a.at(i.child(c)).max
}

// Descend moves to the child at position c.
func (i *LowLevelIterator[T]) Descend(c int) {
	i.leaf = i.child(c)
}

// Ascend moves to the parent of the current node. It moves to the end when
// called at the root.
func (i *LowLevelIterator[T]) Ascend() {
	i.leaf = i.t.a.at(i.leaf).parent
}

func (i *LowLevelIterator[T]) child(c int) nodeID {
	n := i.t.a.at(i.leaf)
	panicif.True(c < 0 || c >= int(n.count))
	return n.children[c]
}
