package vector

import "go.lepak.sg/containers/iterator"

var _ iterator.RandomAccess[int, Iterator[int]] = Iterator[int]{}

// Iterator is a random-access position in a Vector. It holds an index,
// so it survives reallocation, but inserting or erasing before it
// changes the element it refers to.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

func (it Iterator[T]) Get() T { return it.v.buf[it.i] }

func (it Iterator[T]) Ptr() *T { return &it.v.buf[it.i] }

func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{v: it.v, i: it.i + 1} }

func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{v: it.v, i: it.i - 1} }

func (it Iterator[T]) Advance(n int) Iterator[T] { return Iterator[T]{v: it.v, i: it.i + n} }

func (it Iterator[T]) Sub(o Iterator[T]) int { return it.i - o.i }

func (it Iterator[T]) Less(o Iterator[T]) bool { return it.i < o.i }

// Equal reports whether it and o are the same position in the same Vector.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.v == o.v && it.i == o.i }

func (it Iterator[T]) Category() iterator.Category { return iterator.RandomAccessCategory }

// Index returns the position of it from the front of its Vector.
func (it Iterator[T]) Index() int { return it.i }
