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

import (
	"fmt"
	"strings"
)

// maxChildren is the number of children a node may hold transiently,
// between attaching a new child and splitting.
const maxChildren = 4

type node[T any] struct {
	parent   nodeID
	count    int8
	children [maxChildren]nodeID
	// keys[i] is a copy of the max of children[i]; only the first count-1
	// entries are meaningful.
	keys [maxChildren - 1]T
	// max is the largest item in the subtree. For a leaf it is the item.
	max T
	// size is the number of leaves in the subtree.
	size int
}

func (n *node[T]) isLeaf() bool {
	return n.count == 0
}

// indexOf returns the position of child among n's children, or -1.
func (n *node[T]) indexOf(child nodeID) int {
	for i := 0; i < int(n.count); i++ {
		if n.children[i] == child {
			return i
		}
	}
	return -1
}

func (n *node[T]) pushBack(child nodeID) {
	n.children[n.count] = child
	n.count++
}

func (n *node[T]) removeAt(index int) nodeID {
	child := n.children[index]
	copy(n.children[index:n.count-1], n.children[index+1:n.count])
	n.count--
	n.children[n.count] = nilNode
	return child
}

// findNode descends from the root to the leaf closest to item: the leftmost
// leaf whose item is not less than item, or the rightmost leaf if every item
// is less. The tree must not be empty.
func (t *Tree[T]) findNode(item T) nodeID {
	id := t.root
	for {
		n := t.a.at(id)
		switch n.count {
		case 0:
			return id
		case 2:
			if t.cfg.less(n.keys[0], item) {
				id = n.children[1]
			} else {
				id = n.children[0]
			}
		default:
			if t.cfg.less(n.keys[1], item) {
				id = n.children[2]
			} else if t.cfg.less(n.keys[0], item) {
				id = n.children[1]
			} else {
				id = n.children[0]
			}
		}
	}
}

// refresh recomputes the keys, max and size of a single interior node from
// its children.
func (t *Tree[T]) refresh(id nodeID) {
	n := t.a.at(id)
	if n.isLeaf() {
		return
	}
	var zero T
	n.size = 0
	for i := 0; i < int(n.count); i++ {
		c := t.a.at(n.children[i])
		n.size += c.size
		if i < int(n.count)-1 {
			n.keys[i] = c.max
		}
	}
	for i := int(n.count) - 1; i < len(n.keys); i++ {
		n.keys[i] = zero
	}
	n.max = t.a.at(n.children[n.count-1]).max
}

// updateKeys refreshes id and every ancestor of id up to the root. It must
// run after any change to the children of id.
func (t *Tree[T]) updateKeys(id nodeID) {
	for id != nilNode {
		t.refresh(id)
		id = t.a.at(id).parent
	}
}

// sortChildren restores ascending order of children by max after a single
// child was appended at the back.
func (t *Tree[T]) sortChildren(id nodeID) {
	n := t.a.at(id)
	for i := int(n.count) - 2; i >= 0; i-- {
		l, r := n.children[i], n.children[i+1]
		if t.cfg.less(t.a.at(r).max, t.a.at(l).max) {
			n.children[i], n.children[i+1] = r, l
		}
	}
}

// attach appends child to parent and re-sorts parent's children. Keys are
// not updated.
func (t *Tree[T]) attach(parent, child nodeID) {
	t.a.at(parent).pushBack(child)
	t.a.at(child).parent = parent
	t.sortChildren(parent)
}

// newRoot installs a fresh root above left and right, growing the tree by
// one level.
func (t *Tree[T]) newRoot(left, right nodeID) {
	r := t.a.newInterior()
	t.attach(r, left)
	t.attach(r, right)
	t.refresh(r)
	t.root = r
}

// split repairs an overflowing node by moving its two rightmost children
// into a new sibling, walking up while ancestors overflow in turn.
//
// Before:
//
//	    +---------+
//	    |    p    |
//	    +----|----+
//	         |
//	   +-----------+
//	   |  a b c d  |
//	   +-----------+
//
// After:
//
//	    +---------+
//	    |    p    |
//	    +---/-\---+
//	       /   \
//	+-------+ +-------+
//	|  a b  | |  c d  |
//	+-------+ +-------+
func (t *Tree[T]) split(id nodeID) {
	for id != nilNode && t.a.at(id).count == maxChildren {
		sib := t.a.newInterior()
		n, s := t.a.at(id), t.a.at(sib)
		s.children[0], s.children[1] = n.children[2], n.children[3]
		s.count = 2
		n.children[2], n.children[3] = nilNode, nilNode
		n.count = 2
		t.a.at(s.children[0]).parent = sib
		t.a.at(s.children[1]).parent = sib
		t.refresh(id)
		t.refresh(sib)
		parent := n.parent
		if parent == nilNode {
			t.newRoot(id, sib)
			return
		}
		t.attach(parent, sib)
		t.updateKeys(parent)
		id = parent
	}
}

// findBrother returns the sibling that absorbs the remaining child of an
// underflowing node: the left neighbour if id is rightmost, otherwise the
// right neighbour.
func (t *Tree[T]) findBrother(id nodeID) nodeID {
	p := t.a.at(t.a.at(id).parent)
	i := p.indexOf(id)
	if i == int(p.count)-1 {
		return p.children[i-1]
	}
	return p.children[i+1]
}

// fixChildren repairs an underflowing node by grafting its only child onto a
// brother and removing it, walking up while ancestors underflow in turn. When
// the root is left with a single child, that child becomes the root.
//
// Before:
//
//	       +-----------+
//	       |     p     |
//	       +---/---\---+
//	          /     \
//	   +-------+   +-------+
//	   |   a   |   |  b c  |
//	   +-------+   +-------+
//
// After:
//
//	       +-----------+
//	       |     p     |
//	       +-----|-----+
//	             |
//	       +-----------+
//	       |   a b c   |
//	       +-----------+
func (t *Tree[T]) fixChildren(id nodeID) {
	for {
		n := t.a.at(id)
		if n.count >= 2 {
			return
		}
		parent := n.parent
		if parent == nilNode {
			child := n.children[0]
			t.a.release(id)
			t.a.at(child).parent = nilNode
			t.root = child
			return
		}
		brother := t.findBrother(id)
		orphan := n.children[0]
		t.a.at(parent).removeAt(t.a.at(parent).indexOf(id))
		t.a.release(id)
		t.updateKeys(parent)
		t.attach(brother, orphan)
		t.updateKeys(brother)
		t.split(brother)
		id = parent
	}
}

func (t *Tree[T]) writeString(b *strings.Builder, id nodeID) {
	n := t.a.at(id)
	if n.isLeaf() {
		fmt.Fprintf(b, "%v", n.max)
		return
	}
	b.WriteString("(")
	for i := 0; i < int(n.count); i++ {
		if i > 0 {
			b.WriteString(",")
		}
		t.writeString(b, n.children[i])
	}
	b.WriteString(")")
}
