package iterator

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.lepak.sg/containers/testutils"
)

// list is a minimal forward-only iterator over a linked list, standing
// in for any iterator that does not report its own category.
type list struct {
	v    int
	next *list
}

type listIter struct{ at *list }

func (l listIter) Get() int { return l.at.v }
func (l listIter) Next() listIter { return listIter{l.at.next} }
func (l listIter) Equal(o listIter) bool { return l.at == o.at }
func (l listIter) Category() Category { return ForwardCategory }

func newList(vs ...int) (first, last listIter) {
	var head *list
	for i := len(vs) - 1; i >= 0; i-- {
		head = &list{v: vs[i], next: head}
	}
	return listIter{head}, listIter{}
}

// bareIter reports no category at all.
type bareIter struct{ i int }

func (b bareIter) Get() int { return b.i }
func (b bareIter) Next() bareIter { return bareIter{b.i + 1} }
func (b bareIter) Equal(o bareIter) bool { return b.i == o.i }

func TestCategory_Includes(t *testing.T) {
	assert.True(t, RandomAccessCategory.Includes(BidirectionalCategory))
	assert.True(t, BidirectionalCategory.Includes(InputCategory))
	assert.True(t, ForwardCategory.Includes(ForwardCategory))
	assert.False(t, ForwardCategory.Includes(BidirectionalCategory))
	assert.Equal(t, "random-access", RandomAccessCategory.String())
}

func TestTraitsOf(t *testing.T) {
	s := []string{"a", "b"}

	tr := TraitsOf[string](SliceBegin(s))
	assert.Equal(t, RandomAccessCategory, tr.Category)
	assert.Equal(t, reflect.TypeOf(""), tr.Value)
	assert.Equal(t, reflect.TypeOf(0), tr.Difference)
	assert.Equal(t, reflect.TypeOf((*string)(nil)), tr.Pointer)

	first, _ := newList(1)
	tr = TraitsOf[int](first)
	assert.Equal(t, ForwardCategory, tr.Category)
	assert.Nil(t, tr.Pointer)

	assert.Equal(t, InputCategory, CategoryOf[int](bareIter{}))
}

func TestDistance(t *testing.T) {
	s := []int{10, 20, 30, 40, 50}
	assert.Equal(t, 5, Distance[int](SliceBegin(s), SliceEnd(s)))
	assert.Equal(t, 0, Distance[int](SliceEnd(s), SliceEnd(s)))

	first, last := newList(1, 2, 3)
	assert.Equal(t, 3, Distance[int](first, last))

	assert.Equal(t, 4, Distance[int](bareIter{2}, bareIter{6}))
}

func TestAdvance(t *testing.T) {
	s := []int{10, 20, 30, 40, 50}
	assert.Equal(t, 40, Advance[int](SliceBegin(s), 3).Get())
	assert.Equal(t, 20, Advance[int](SliceEnd(s), -4).Get())

	first, _ := newList(1, 2, 3)
	assert.Equal(t, 3, Advance[int](first, 2).Get())

	assert.Panics(t, func() {
		Advance[int](first, -1)
	})
}

func TestReverse(t *testing.T) {
	s := []int{10, 20, 30, 40, 50}
	rbegin := NewReverse[int](SliceEnd(s))
	rend := NewReverse[int](SliceBegin(s))

	assert.Equal(t, []int{50, 40, 30, 20, 10}, Collect[int](rbegin, rend))
	assert.Equal(t, 5, Distance[int](rbegin, rend))
	assert.Equal(t, RandomAccessCategory, rbegin.Category())

	// base refers to the element after the one the reverse iterator reads
	it := rbegin.Next()
	assert.Equal(t, 40, it.Get())
	assert.Equal(t, 50, it.Base().Get())
	assert.True(t, it.Prev().Equal(rbegin))

	assert.Equal(t, 20, rbegin.Advance(3).Get())
	assert.True(t, rbegin.Less(it))
	assert.False(t, it.Less(rbegin))

	*rbegin.Ptr() = 55
	assert.Equal(t, 55, s[4])
}

func TestRange(t *testing.T) {
	tests := []struct {
		name string
		s    []int
	}{
		{"empty", nil},
		{"one", []int{1}},
		{"many", []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRange[int](SliceBegin(tt.s), SliceEnd(tt.s))
			assert.Equal(t, tt.s, testutils.Collect[int](r))
			// stays exhausted
			assert.False(t, r.Next())
		})
	}

	var nilRange *Range[int, Slice[int]]
	assert.False(t, nilRange.Next())
}

func TestCollect_InputOnly(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, Collect[int](bareIter{3}, bareIter{6}))
	assert.Nil(t, Collect[int](bareIter{3}, bareIter{3}))
}
