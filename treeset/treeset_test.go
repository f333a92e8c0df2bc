package treeset

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"go.lepak.sg/containers/allocator"
	"go.lepak.sg/containers/functional"
	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/vector"
)

func items[T any](s *Set[T]) []T {
	return iterator.Collect[T](s.Begin(), s.End())
}

func TestSet_Insert(t *testing.T) {
	s := NewOrdered[int]()
	assert.True(t, s.Empty())

	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		_, ok := s.Insert(v)
		assert.True(t, ok)
	}
	it, ok := s.Insert(4)
	assert.False(t, ok)
	assert.Equal(t, 4, it.Get())

	assert.Equal(t, 7, s.Len())
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, items(s))
	assert.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, iterator.Collect[int](s.RBegin(), s.REnd()))
	require.NoError(t, s.Verify())

	assert.Equal(t, 6, s.InsertHint(s.End(), 6).Get())
	assert.Equal(t, 8, s.Len())
}

func TestSet_SmallScenario(t *testing.T) {
	s := NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		s.Insert(v)
		require.NoError(t, s.Verify())
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, items(s))
}

func TestSet_Lookup(t *testing.T) {
	s := FromRange[int](iterator.SliceBegin([]int{10, 20, 30}), iterator.SliceEnd([]int{10, 20, 30}), functional.Less[int])

	assert.Equal(t, 1, s.Count(20))
	assert.Equal(t, 0, s.Count(25))
	assert.True(t, s.Contains(30))
	assert.True(t, s.Find(25).Equal(s.End()))
	assert.Equal(t, 20, s.LowerBound(15).Get())
	assert.Equal(t, 30, s.UpperBound(20).Get())

	first, last := s.EqualRange(25)
	assert.True(t, first.Equal(last))
	assert.Equal(t, 30, first.Get())
}

func TestSet_Erase(t *testing.T) {
	s := NewOrdered[int]()
	InsertRange[int](s, iterator.SliceBegin([]int{1, 2, 3, 4, 5, 6, 7, 8}), iterator.SliceEnd([]int{1, 2, 3, 4, 5, 6, 7, 8}))

	assert.Equal(t, 1, s.EraseKey(4))
	assert.Equal(t, 0, s.EraseKey(4))

	next := s.Erase(s.Find(2))
	assert.Equal(t, 3, next.Get())

	last := s.EraseRange(s.Find(3), s.Find(7))
	assert.Equal(t, 7, last.Get())
	assert.Equal(t, []int{1, 7, 8}, items(s))
	require.NoError(t, s.Verify())

	s.EraseRange(s.Begin(), s.End())
	assert.True(t, s.Empty())

	s.Insert(1)
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSet_CustomOrder(t *testing.T) {
	s := New[string](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	s.Insert("b")
	s.Insert("A")
	_, ok := s.Insert("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "b"}, items(s))
	assert.True(t, s.KeyComp()("a", "B"))
	assert.True(t, s.ValueComp()("a", "B"))
}

func TestSet_CloneAssignSwap(t *testing.T) {
	a := NewOrdered[int]()
	a.Insert(1)
	a.Insert(2)

	c := a.Clone()
	c.Insert(3)
	assert.Equal(t, []int{1, 2}, items(a))
	assert.Equal(t, []int{1, 2, 3}, items(c))

	b := New[int](functional.Greater[int])
	b.Assign(c)
	b.Insert(0)
	assert.Equal(t, []int{0, 1, 2, 3}, items(b))
	b.Assign(b)
	assert.Equal(t, 4, b.Len())

	a.Swap(b)
	assert.Equal(t, []int{0, 1, 2, 3}, items(a))
	assert.Equal(t, []int{1, 2}, items(b))
}

func TestSet_Compare(t *testing.T) {
	of := func(vs ...int) *Set[int] {
		s := NewOrdered[int]()
		for _, v := range vs {
			s.Insert(v)
		}
		return s
	}

	assert.True(t, Equal(of(3, 1, 2), of(1, 2, 3)))
	assert.False(t, Equal(of(1, 2), of(1, 2, 3)))
	assert.True(t, Less(of(1, 2), of(1, 2, 3)))
	assert.True(t, Less(of(1, 2, 3), of(1, 3)))
	assert.False(t, Less(of(1, 3), of(1, 3)))
	assert.True(t, EqualFunc(of(1, 2), of(11, 12), func(a, b int) bool { return a%10 == b%10 }))
	assert.False(t, LessFunc(of(1), of(2), func(a, b int) bool { return false }))
}

func TestSet_Allocator(t *testing.T) {
	a := allocator.NewBounded[int](10)
	s := NewWithAllocator[int](functional.Less[int], a)
	assert.Equal(t, 10, s.MaxSize())
	assert.Same(t, a, s.Allocator())

	for i := 0; i < 10; i++ {
		s.Insert(i)
	}
	assert.Panics(t, func() { s.Insert(10) })

	// the clone shares the allocator, which is full
	assert.Panics(t, func() { s.Clone() })
}

func TestSet_FromVector(t *testing.T) {
	v := vector.Of(5, 1, 5, 3)
	s := FromRange[int](v.Begin(), v.End(), functional.Less[int])
	assert.Equal(t, []int{1, 3, 5}, items(s))

	back := vector.FromRange[int](s.Begin(), s.End())
	assert.Equal(t, []int{1, 3, 5}, back.Data())
}

func TestSet_String(t *testing.T) {
	s := NewOrdered[int]()
	s.Insert(2)
	s.Insert(1)
	assert.Equal(t, "[1 2]", s.String())
}

// TestSet_AgainstBTree checks random operations against google/btree.
func TestSet_AgainstBTree(t *testing.T) {
	rd := rand.New(rand.NewSource(42))
	s := NewOrdered[int]()
	ref := btree.NewOrderedG[int](8)

	for i := 0; i < 5000; i++ {
		k := rd.Intn(1000)
		if rd.Intn(3) == 0 {
			_, found := ref.Delete(k)
			require.Equal(t, found, s.EraseKey(k) == 1)
		} else {
			ref.ReplaceOrInsert(k)
			s.Insert(k)
		}
	}
	require.NoError(t, s.Verify())

	var want []int
	ref.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	require.True(t, slices.IsSorted(want))
	assert.Equal(t, want, items(s))
	assert.Equal(t, ref.Len(), s.Len())
}

func TestSet_AssignOutOfMemory(t *testing.T) {
	a := allocator.NewBounded[int](6)
	dst := NewWithAllocator[int](functional.Less[int], a)
	dst.Insert(100)
	dst.Insert(200)
	src := NewWithAllocator[int](functional.Less[int], a)
	src.Insert(1)
	src.Insert(2)
	src.Insert(3)

	// one slot is left: the copy gets part way and fails
	assert.Panics(t, func() { dst.Assign(src) })
	assert.Equal(t, []int{100, 200}, items(dst))
	require.NoError(t, dst.Verify())

	dst.Clear()
	src.Clear()
	for i := 0; i < 6; i++ {
		dst.Insert(i)
	}
	assert.Equal(t, 6, dst.Len())
}
