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

// nodeID addresses a node within an arena. The zero value is the nil handle.
type nodeID int32

const nilNode nodeID = 0

// arena owns every node of a Tree. Children and parents refer to each other
// by nodeID so that growing the backing slice never leaves a dangling link.
//
// Pointers returned by at are only valid until the next call to alloc.
type arena[T any] struct {
	nodes []node[T]
	free  []nodeID
}

func (a *arena[T]) at(id nodeID) *node[T] {
	return &a.nodes[id]
}

func (a *arena[T]) alloc() nodeID {
	if len(a.nodes) == 0 {
		// Slot 0 backs nilNode and is never handed out.
		a.nodes = append(a.nodes, node[T]{})
	}
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		return id
	}
	a.nodes = append(a.nodes, node[T]{})
	return nodeID(len(a.nodes) - 1)
}

func (a *arena[T]) newLeaf(item T) nodeID {
	id := a.alloc()
	n := a.at(id)
	n.max = item
	n.size = 1
	return id
}

func (a *arena[T]) newInterior() nodeID {
	return a.alloc()
}

// release clears the node so that it does not retain items and puts its
// handle on the free list.
func (a *arena[T]) release(id nodeID) {
	*a.at(id) = node[T]{}
	a.free = append(a.free, id)
}

func (a *arena[T]) live() int {
	if len(a.nodes) == 0 {
		return 0
	}
	return len(a.nodes) - 1 - len(a.free)
}

func (a *arena[T]) reset() {
	a.nodes = nil
	a.free = nil
}

// clone copies every node. Handles are positions, so parent and child links
// in the copy refer to the copy.
func (a *arena[T]) clone() arena[T] {
	var c arena[T]
	if a.nodes != nil {
		c.nodes = make([]node[T], len(a.nodes))
		copy(c.nodes, a.nodes)
	}
	if a.free != nil {
		c.free = make([]nodeID, len(a.free))
		copy(c.free, a.free)
	}
	return c
}
