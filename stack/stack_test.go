package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.lepak.sg/containers/vector"
)

func TestStack(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Top())

	s.Pop()
	assert.Equal(t, 2, s.Top())
	assert.Equal(t, []int{1, 2}, s.Container().Data())

	s.Pop()
	s.Pop()
	assert.True(t, s.Empty())

	// popping an empty vector-backed stack does nothing
	s.Pop()
	assert.Equal(t, 0, s.Len())
}

func TestNewWith(t *testing.T) {
	s := NewWith[string](vector.Of("a", "b"))
	assert.Equal(t, "b", s.Top())
	s.Push("c")
	assert.Equal(t, "c", s.Top())
	assert.Equal(t, 3, s.Len())
}

// list is a minimal singly linked container whose back is its head.
type list struct {
	head *elem
	n    int
}

type elem struct {
	v    int
	next *elem
}

func (l *list) PushBack(v int) {
	l.head = &elem{v: v, next: l.head}
	l.n++
}

func (l *list) PopBack() {
	if l.head != nil {
		l.head = l.head.next
		l.n--
	}
}

func (l *list) Back() int { return l.head.v }

func (l *list) Len() int { return l.n }

func (l *list) Empty() bool { return l.n == 0 }

func TestStack_CustomContainer(t *testing.T) {
	s := NewWith[int](&list{})
	for i := 0; i < 5; i++ {
		s.Push(i)
	}

	var popped []int
	for !s.Empty() {
		popped = append(popped, s.Top())
		s.Pop()
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, popped)
}

func TestStack_Compare(t *testing.T) {
	of := func(vs ...int) *Stack[int, *vector.Vector[int]] {
		return NewWith[int](vector.Of(vs...))
	}

	tests := []struct {
		name       string
		a, b       *Stack[int, *vector.Vector[int]]
		equal      bool
		less, more bool
	}{
		{"equal", of(1, 2), of(1, 2), true, false, false},
		{"shorter", of(1), of(1, 2), false, true, false},
		{"bigger", of(3), of(1, 2), false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b, vector.Equal[int]))
			assert.Equal(t, !tt.equal, NotEqual(tt.a, tt.b, vector.Equal[int]))
			assert.Equal(t, tt.less, Less(tt.a, tt.b, vector.Less[int]))
			assert.Equal(t, tt.more, Greater(tt.a, tt.b, vector.Less[int]))
			assert.Equal(t, !tt.more, LessEqual(tt.a, tt.b, vector.Less[int]))
			assert.Equal(t, !tt.less, GreaterEqual(tt.a, tt.b, vector.Less[int]))
		})
	}
}
