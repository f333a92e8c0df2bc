// Package stack provides Stack, a last-in first-out adapter over any
// container that can add and remove at its back.
package stack

import "go.lepak.sg/containers/vector"

// Container is what a Stack needs from its underlying container.
// *vector.Vector satisfies it.
type Container[T any] interface {
	PushBack(v T)
	PopBack()
	Back() T
	Len() int
	Empty() bool
}

var _ Container[int] = (*vector.Vector[int])(nil)

// Stack is a LIFO stack. The top of the stack is the back of the
// container.
type Stack[T any, C Container[T]] struct {
	c C
}

// New returns an empty stack backed by a Vector.
func New[T any]() *Stack[T, *vector.Vector[T]] {
	return NewWith[T](vector.New[T]())
}

// NewWith returns a stack that uses c, which may already hold values.
// The last value of c is the top of the stack.
func NewWith[T any, C Container[T]](c C) *Stack[T, C] {
	return &Stack[T, C]{c: c}
}

// Push puts v on top of the stack.
func (s *Stack[T, C]) Push(v T) { s.c.PushBack(v) }

// Pop removes the top value. What happens when s is empty depends on
// the container; Vector does nothing.
func (s *Stack[T, C]) Pop() { s.c.PopBack() }

// Top returns the top value. s must not be empty.
func (s *Stack[T, C]) Top() T { return s.c.Back() }

func (s *Stack[T, C]) Len() int { return s.c.Len() }

func (s *Stack[T, C]) Empty() bool { return s.c.Empty() }

// Container returns the underlying container.
func (s *Stack[T, C]) Container() C { return s.c }

// The comparisons below compare the underlying containers with the
// given function, for example:
//
//	stack.Equal(a, b, vector.Equal[int])

func Equal[T any, C Container[T]](a, b *Stack[T, C], eq func(x, y C) bool) bool {
	return eq(a.c, b.c)
}

func NotEqual[T any, C Container[T]](a, b *Stack[T, C], eq func(x, y C) bool) bool {
	return !eq(a.c, b.c)
}

func Less[T any, C Container[T]](a, b *Stack[T, C], less func(x, y C) bool) bool {
	return less(a.c, b.c)
}

func LessEqual[T any, C Container[T]](a, b *Stack[T, C], less func(x, y C) bool) bool {
	return !less(b.c, a.c)
}

func Greater[T any, C Container[T]](a, b *Stack[T, C], less func(x, y C) bool) bool {
	return less(b.c, a.c)
}

func GreaterEqual[T any, C Container[T]](a, b *Stack[T, C], less func(x, y C) bool) bool {
	return !less(a.c, b.c)
}
