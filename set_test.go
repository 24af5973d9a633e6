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

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/anacrolix/multiless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](s *Set[T]) []T {
	var out []T
	for it := s.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Cur())
	}
	return out
}

func steps[T any](s *Set[T]) int {
	n := 0
	end := s.End()
	for it := s.Begin(); !it.Equal(end); it.Next() {
		n++
	}
	return n
}

func TestSet(t *testing.T) {
	s := MakeOrderedSet[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 2, 6} {
		require.True(t, s.Insert(v))
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, collect(s))
	require.Equal(t, 8, s.Len())
	require.NoError(t, s.Verify())

	it := s.Find(4)
	require.True(t, it.Valid())
	require.Equal(t, 4, it.Cur())
	it = s.Find(9)
	require.True(t, it.Equal(s.End()))

	require.True(t, s.Erase(4))
	it = s.LowerBound(4)
	require.Equal(t, 5, it.Cur())
	it = s.LowerBound(9)
	require.False(t, it.Valid())
	require.NoError(t, s.Verify())
}

func TestEmpty(t *testing.T) {
	s := MakeOrderedSet[string]()
	require.True(t, s.Empty())
	require.False(t, s.Erase("a"))
	require.Equal(t, 0, s.Len())
	begin := s.Begin()
	require.True(t, begin.Equal(s.End()))
	it := s.Find("a")
	require.False(t, it.Valid())
	it = s.LowerBound("a")
	require.False(t, it.Valid())
	require.False(t, s.Min().Ok)
	require.False(t, s.Max().Ok)
	end := s.End()
	end.Prev()
	require.False(t, end.Valid())
	require.NoError(t, s.Verify())
}

func TestIdempotence(t *testing.T) {
	s := Of(Less[int], 1, 2, 3, 4, 5, 6, 7)
	before := s.String()
	require.False(t, s.Insert(3))
	require.Equal(t, before, s.String())

	require.True(t, s.Erase(3))
	afterOnce := s.String()
	require.False(t, s.Erase(3))
	require.Equal(t, afterOnce, s.String())
	require.Equal(t, 6, s.Len())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		n := rng.Intn(500)
		in := make([]int, n)
		seen := make(map[int]bool)
		for i := range in {
			in[i] = rng.Intn(200)
			seen[in[i]] = true
		}
		s := FromSlice(Less[int], in)
		require.NoError(t, s.Verify())
		require.Equal(t, len(seen), s.Len())
		require.Equal(t, s.Len(), steps(s))
		got := collect(s)
		for i := 1; i < len(got); i++ {
			require.Less(t, got[i-1], got[i])
		}
		for _, v := range got {
			require.True(t, seen[v])
		}
	}
}

func TestStructureIndependentOfOrder(t *testing.T) {
	items := rand.Perm(300)
	a := FromSlice(Less[int], items)
	rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	b := FromSlice(Less[int], items)
	require.Equal(t, collect(a), collect(b))
	require.NoError(t, a.Verify())
	require.NoError(t, b.Verify())
}

func TestInsertErase(t *testing.T) {
	t.Parallel()
	const N = 1000
	s := MakeOrderedSet[int]()
	inserted := 0
	for _, v := range rand.Perm(N) {
		require.True(t, s.Insert(v))
		inserted++
		require.Equal(t, inserted, s.Len())
	}
	require.NoError(t, s.Verify())
	for i, v := range rand.Perm(N) {
		require.True(t, s.Erase(v))
		require.False(t, s.Contains(v))
		require.Equal(t, N-i-1, s.Len())
		if i%97 == 0 {
			require.NoError(t, s.Verify())
			require.Equal(t, s.Len(), steps(s))
		}
	}
	require.True(t, s.Empty())
	require.Equal(t, 0, s.Height())
}

func TestCopyIndependence(t *testing.T) {
	orig := Of(Less[int], 1, 2, 3, 4, 5)
	cp := orig.Clone()
	cp.Insert(6)
	cp.Erase(1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(orig))
	assert.Equal(t, []int{2, 3, 4, 5, 6}, collect(cp))

	orig.Erase(3)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, collect(cp))

	other := MakeOrderedSet[int]()
	other.Insert(100)
	other.Assign(orig)
	assert.Equal(t, []int{1, 2, 4, 5}, collect(other))
	orig.Insert(3)
	assert.Equal(t, []int{1, 2, 4, 5}, collect(other))
	require.NoError(t, other.Verify())

	other.Assign(other)
	assert.Equal(t, []int{1, 2, 4, 5}, collect(other))
}

func TestIteratorEquality(t *testing.T) {
	a := Of(Less[int], 1, 2, 3)
	b := a.Clone()

	x, y := a.Find(2), a.LowerBound(2)
	require.True(t, x.Equal(y))
	z := b.Find(2)
	require.False(t, x.Equal(z), "iterators of different sets")
	end := b.End()
	endA := a.End()
	require.True(t, endA.Equal(end))
	require.False(t, x.Equal(end))
}

func TestBidirectional(t *testing.T) {
	s := FromSlice(Less[int], rand.Perm(100))
	it := s.End()
	it.Prev()
	require.Equal(t, 99, it.Cur())
	for exp := 98; exp >= 0; exp-- {
		it.Prev()
		require.Equal(t, exp, it.Cur())
	}
	it.Prev()
	require.False(t, it.Valid())

	it = s.Find(50)
	it.Next()
	it.Prev()
	require.Equal(t, 50, it.Cur())

	var desc []int
	s.Descend(func(v int) bool {
		desc = append(desc, v)
		return len(desc) < 3
	})
	require.Equal(t, []int{99, 98, 97}, desc)
	var asc []int
	s.Ascend(func(v int) bool {
		asc = append(asc, v)
		return v < 2
	})
	require.Equal(t, []int{0, 1, 2}, asc)
	require.Equal(t, 0, s.Min().Value)
	require.Equal(t, 99, s.Max().Value)
}

func TestFromRange(t *testing.T) {
	src := Of(Less[int], 1, 3, 5, 7, 9)
	s := FromRange(Less[int], src.LowerBound(2), src.Find(9))
	require.Equal(t, []int{3, 5, 7}, collect(s))
	all := FromRange(Less[int], src.Begin(), src.End())
	require.Equal(t, collect(src), collect(all))
	none := FromRange(Less[int], src.End(), src.End())
	require.True(t, none.Empty())
}

func TestEndPanics(t *testing.T) {
	s := Of(Less[int], 1)
	it := s.End()
	require.Panics(t, func() { it.Cur() })
}

type person struct {
	last, first string
	age         int
}

func personLess(a, b person) bool {
	return multiless.New().
		Cmp(strings.Compare(a.last, b.last)).
		Cmp(strings.Compare(a.first, b.first)).
		Less()
}

func TestCustomOrder(t *testing.T) {
	s := Of(personLess,
		person{"Turing", "Alan", 41},
		person{"Hopper", "Grace", 85},
		person{"Lovelace", "Ada", 36},
		// Equal under the order: ignored.
		person{"Hopper", "Grace", 1},
	)
	require.Equal(t, 3, s.Len())
	it := s.Find(person{last: "Hopper", first: "Grace"})
	require.Equal(t, 85, it.Cur().age)
	var names []string
	s.Ascend(func(p person) bool {
		names = append(names, p.first)
		return true
	})
	require.Equal(t, []string{"Grace", "Ada", "Alan"}, names)
}
