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

// Config is used to configure the tree. It consists of the strict weak order
// used to place elements. It is shared by every iterator of a Tree.
type Config[T any] struct {
	less func(a, b T) bool
}

// MakeConfig constructs a Config from a strict weak order.
func MakeConfig[T any](less func(a, b T) bool) Config[T] {
	return Config[T]{less: less}
}

// Less reports whether a orders before b.
func (c *Config[T]) Less(a, b T) bool { return c.less(a, b) }

// Equal reports whether neither of a and b orders before the other.
func (c *Config[T]) Equal(a, b T) bool {
	return !c.less(a, b) && !c.less(b, a)
}
