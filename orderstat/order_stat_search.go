package orderstat

import "github.com/ajwerner/set23/internal/tree23"

// nth descends to the i-th leaf, skipping children whose subtrees lie
// entirely before it.
func nth[T any](ll *tree23.LowLevelIterator[T], i int) {
	ll.SeekRoot()
	if ll.AtEnd() {
		return
	}
	if i < 0 || i >= ll.Size() {
		ll.SeekEnd()
		return
	}
	for !ll.IsLeaf() {
		c := 0
		for ; c < ll.Count()-1; c++ {
			size := ll.ChildSize(c)
			if i < size {
				break
			}
			i -= size
		}
		ll.Descend(c)
	}
}

// rank sums the sizes of the subtrees whose items are all less than v along
// the descent path.
func rank[T any](ll *tree23.LowLevelIterator[T], v T) int {
	ll.SeekRoot()
	if ll.AtEnd() {
		return 0
	}
	cfg := ll.Config()
	n := 0
	for !ll.IsLeaf() {
		c := 0
		for ; c < ll.Count()-1; c++ {
			if !cfg.Less(ll.ChildMax(c), v) {
				break
			}
			n += ll.ChildSize(c)
		}
		ll.Descend(c)
	}
	if it := ll.Iterator(); cfg.Less(it.Cur(), v) {
		n++
	}
	return n
}
