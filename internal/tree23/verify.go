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

import "github.com/pkg/errors"

// Verify checks the structural invariants of the tree: uniform leaf depth,
// two or three children per interior node sorted by max, consistent parent
// links, keys, maxima and sizes, strictly ascending items and an item count
// matching the number of leaves. It returns an error describing the first
// violation found.
func (t *Tree[T]) Verify() error {
	if t.root == nilNode {
		if t.length != 0 {
			return errors.Errorf("empty tree reports length %d", t.length)
		}
		return nil
	}
	if p := t.a.at(t.root).parent; p != nilNode {
		return errors.Errorf("root %d has parent %d", t.root, p)
	}
	s := verifyState{leafDepth: -1}
	if err := t.verifyNode(t.root, 0, &s); err != nil {
		return errors.Wrap(err, "verifying tree")
	}
	if s.leaves != t.length {
		return errors.Errorf("tree has %d leaves but reports length %d", s.leaves, t.length)
	}
	if live := t.a.live(); live != s.nodes {
		return errors.Errorf("arena holds %d live nodes, %d reachable", live, s.nodes)
	}
	it := t.MakeIter()
	it.First()
	prev := it
	for it.Next(); it.Valid(); it.Next() {
		if !t.cfg.less(prev.Cur(), it.Cur()) {
			return errors.Errorf("items out of order: %v then %v", prev.Cur(), it.Cur())
		}
		prev = it
	}
	return nil
}

type verifyState struct {
	leafDepth int
	leaves    int
	nodes     int
}

func (t *Tree[T]) verifyNode(id nodeID, depth int, s *verifyState) error {
	n := t.a.at(id)
	s.nodes++
	if n.isLeaf() {
		if s.leafDepth == -1 {
			s.leafDepth = depth
		} else if s.leafDepth != depth {
			return errors.Errorf("leaf %v at depth %d, expected %d", n.max, depth, s.leafDepth)
		}
		if n.size != 1 {
			return errors.Errorf("leaf %v has size %d", n.max, n.size)
		}
		s.leaves++
		return nil
	}
	if n.count < 2 || n.count > 3 {
		return errors.Errorf("node %d has %d children", id, n.count)
	}
	size := 0
	for i := 0; i < int(n.count); i++ {
		c := t.a.at(n.children[i])
		if c.parent != id {
			return errors.Errorf("child %d of node %d points to parent %d", n.children[i], id, c.parent)
		}
		if i > 0 && !t.cfg.less(t.a.at(n.children[i-1]).max, c.max) {
			return errors.Errorf("children %d and %d of node %d out of order", i-1, i, id)
		}
		if i < int(n.count)-1 && !t.cfg.Equal(n.keys[i], c.max) {
			return errors.Errorf("key %d of node %d is %v, child max is %v", i, id, n.keys[i], c.max)
		}
		size += c.size
		if err := t.verifyNode(n.children[i], depth+1, s); err != nil {
			return errors.Wrapf(err, "child %d of node %d", i, id)
		}
	}
	if last := t.a.at(n.children[n.count-1]).max; !t.cfg.Equal(n.max, last) {
		return errors.Errorf("node %d has max %v, rightmost child max is %v", id, n.max, last)
	}
	if n.size != size {
		return errors.Errorf("node %d has size %d, children hold %d", id, n.size, size)
	}
	return nil
}
