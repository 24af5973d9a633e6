// Package orderstat provides an ordered set that also answers order
// statistic queries: the i-th smallest item and the rank of an item.
package orderstat

import (
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/set23/internal/tree23"
)

type OrderStatSet[T any] struct {
	t tree23.Tree[T]
}

func MakeOrderStatSet[T any](less func(a, b T) bool) *OrderStatSet[T] {
	return &OrderStatSet[T]{t: tree23.MakeTree(less)}
}

func MakeOrdered[T constraints.Ordered]() *OrderStatSet[T] {
	return MakeOrderStatSet(func(a, b T) bool { return a < b })
}

func (t *OrderStatSet[T]) Insert(v T) bool { return t.t.Insert(v) }

func (t *OrderStatSet[T]) Erase(v T) (removed bool) { return t.t.Delete(v) }

func (t *OrderStatSet[T]) Len() int { return t.t.Len() }

func (t *OrderStatSet[T]) Verify() error { return t.t.Verify() }

// Rank returns the number of items less than v.
func (t *OrderStatSet[T]) Rank(v T) int {
	it := t.t.MakeIter()
	return rank(tree23.LowLevel(&it), v)
}

type OrderStatIterator[T any] struct {
	it tree23.Iterator[T]
}

func (t *OrderStatSet[T]) MakeIter() OrderStatIterator[T] {
	return OrderStatIterator[T]{
		it: t.t.MakeIter(),
	}
}

// Nth positions the iterator at the i-th smallest item, counting from zero.
// The iterator is invalid if i is out of range.
func (it *OrderStatIterator[T]) Nth(i int) {
	nth(tree23.LowLevel(&it.it), i)
}

func (it *OrderStatIterator[T]) First()      { it.it.First() }
func (it *OrderStatIterator[T]) Last()       { it.it.Last() }
func (it *OrderStatIterator[T]) Next()       { it.it.Next() }
func (it *OrderStatIterator[T]) Prev()       { it.it.Prev() }
func (it *OrderStatIterator[T]) Valid() bool { return it.it.Valid() }
func (it *OrderStatIterator[T]) Cur() T      { return it.it.Cur() }
