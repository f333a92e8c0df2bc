package rbtree

import "go.lepak.sg/containers/iterator"

var _ iterator.Bidirectional[int, Iterator[int]] = Iterator[int]{}

// Iterator is a position in a Tree: a value, End, or a search position
// returned by Locate.
//
// Iterators stay valid until the value they refer to is removed. Note
// that Erase may remove a different node than the one it is given; see
// Tree.Erase.
type Iterator[T any] struct {
	n *node[T]
}

// Get returns the value at it, which must be Valid.
func (it Iterator[T]) Get() T { return *it.n.value() }

// Ptr returns a pointer to the value at it, which must be Valid.
// The value must not be changed in a way that changes its order.
func (it Iterator[T]) Ptr() *T { return it.n.value() }

// Next moves to the next value. Next from the greatest value is End;
// Next from End stays at End.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{n: it.n.next()} }

// Prev moves to the previous value. Prev from End is the greatest value.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{n: it.n.prev()} }

func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.n == o.n }

// Valid reports whether it refers to a value.
func (it Iterator[T]) Valid() bool { return it.n != nil && !it.n.isNull }

func (it Iterator[T]) Category() iterator.Category { return iterator.BidirectionalCategory }
