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

import "strings"

// Tree is a 2-3 tree holding unique items in its leaves. Every interior node
// has two or three children and every leaf sits at the same depth.
//
// Write operations are not safe for concurrent use. Read operations may run
// concurrently with each other.
type Tree[T any] struct {
	root   nodeID
	length int
	a      arena[T]
	cfg    Config[T]
}

// MakeTree constructs an empty Tree ordered by less.
func MakeTree[T any](less func(a, b T) bool) Tree[T] {
	return Tree[T]{cfg: MakeConfig(less)}
}

// Config returns the Tree's config.
func (t *Tree[T]) Config() *Config[T] { return &t.cfg }

// Insert adds item to the tree unless an equal item is present. It returns
// whether the tree changed.
func (t *Tree[T]) Insert(item T) (inserted bool) {
	if t.root == nilNode {
		t.root = t.a.newLeaf(item)
		t.length++
		return true
	}
	found := t.findNode(item)
	if t.cfg.Equal(t.a.at(found).max, item) {
		return false
	}
	leaf := t.a.newLeaf(item)
	if parent := t.a.at(found).parent; parent == nilNode {
		t.newRoot(found, leaf)
	} else {
		t.attach(parent, leaf)
		t.updateKeys(parent)
		t.split(parent)
	}
	t.length++
	return true
}

// Delete removes the item equal to item, if any. It returns whether the tree
// changed.
func (t *Tree[T]) Delete(item T) (deleted bool) {
	if t.root == nilNode {
		return false
	}
	found := t.findNode(item)
	if !t.cfg.Equal(t.a.at(found).max, item) {
		return false
	}
	t.length--
	parent := t.a.at(found).parent
	if parent == nilNode {
		t.Reset()
		return true
	}
	p := t.a.at(parent)
	p.removeAt(p.indexOf(found))
	t.a.release(found)
	t.updateKeys(parent)
	t.fixChildren(parent)
	return true
}

// Find returns an iterator positioned at the item equal to item, or an
// invalid iterator if there is none.
func (t *Tree[T]) Find(item T) Iterator[T] {
	it := t.MakeIter()
	if t.root == nilNode {
		return it
	}
	if found := t.findNode(item); t.cfg.Equal(t.a.at(found).max, item) {
		it.leaf = found
	}
	return it
}

// LowerBound returns an iterator positioned at the smallest item not less
// than item, or an invalid iterator if every item is less.
func (t *Tree[T]) LowerBound(item T) Iterator[T] {
	it := t.MakeIter()
	if t.root == nilNode {
		return it
	}
	if found := t.findNode(item); !t.cfg.less(t.a.at(found).max, item) {
		it.leaf = found
	}
	return it
}

// MakeIter returns a new Iterator positioned at the end. It is not safe to
// continue using an Iterator after modifications are made to the tree.
func (t *Tree[T]) MakeIter() Iterator[T] {
	return Iterator[T]{t: t}
}

// Len returns the number of items currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Height returns the number of levels in the tree, counting the leaves.
func (t *Tree[T]) Height() int {
	if t.root == nilNode {
		return 0
	}
	h := 1
	for n := t.a.at(t.root); !n.isLeaf(); n = t.a.at(n.children[0]) {
		h++
	}
	return h
}

// Reset removes all items from the tree and releases its nodes.
func (t *Tree[T]) Reset() {
	t.a.reset()
	t.root = nilNode
	t.length = 0
}

// Clone returns a deep copy of the tree. Mutations of either tree are not
// visible in the other.
func (t *Tree[T]) Clone() Tree[T] {
	return Tree[T]{
		root:   t.root,
		length: t.length,
		a:      t.a.clone(),
		cfg:    t.cfg,
	}
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[T]) String() string {
	if t.root == nilNode {
		return ";"
	}
	var b strings.Builder
	t.writeString(&b, t.root)
	b.WriteString(";")
	return b.String()
}
