// Package treeset provides Set, an ordered set of unique values backed
// by a red-black tree.
package treeset

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"go.lepak.sg/containers/algorithm"
	"go.lepak.sg/containers/allocator"
	"go.lepak.sg/containers/functional"
	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/rbtree"
)

// Set is an ordered set. Values are unique under the set's ordering:
// inserting a value equivalent to one already present does nothing.
//
// Iterators are rbtree iterators and stay valid until the value they
// refer to is erased. Values must not be changed through Ptr in a way
// that changes their order.
//
// Sets must be created with one of the constructors.
type Set[T any] struct {
	tree *rbtree.Tree[T]
}

// New returns an empty set ordered by less.
func New[T any](less functional.LessFunc[T]) *Set[T] {
	return &Set[T]{tree: rbtree.New[T](less)}
}

// NewOrdered returns an empty set in the natural order of T.
func NewOrdered[T constraints.Ordered]() *Set[T] {
	return New[T](functional.Less[T])
}

// NewWithAllocator returns an empty set ordered by less, storing its
// values in memory from a.
func NewWithAllocator[T any](less functional.LessFunc[T], a allocator.Allocator[T]) *Set[T] {
	return &Set[T]{tree: rbtree.NewWithAllocator[T](less, a)}
}

// FromRange returns a set ordered by less holding the values of
// [first, last).
func FromRange[T any, I iterator.Input[T, I]](first, last I, less functional.LessFunc[T]) *Set[T] {
	s := New[T](less)
	InsertRange[T](s, first, last)
	return s
}

// Clone returns a copy of s with the same ordering and allocator.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{tree: s.tree.Clone()}
}

// Assign replaces the contents of s with a copy of the contents of o,
// including its ordering and allocator. If the copy cannot be
// allocated, the contents of s are left as they were.
func (s *Set[T]) Assign(o *Set[T]) {
	if s == o {
		return
	}
	c := o.tree.Clone()
	s.tree.Clear()
	s.tree = c
}

func (s *Set[T]) Begin() rbtree.Iterator[T] { return s.tree.Begin() }

func (s *Set[T]) End() rbtree.Iterator[T] { return s.tree.End() }

func (s *Set[T]) RBegin() iterator.Reverse[T, rbtree.Iterator[T]] {
	return iterator.NewReverse[T](s.tree.End())
}

func (s *Set[T]) REnd() iterator.Reverse[T, rbtree.Iterator[T]] {
	return iterator.NewReverse[T](s.tree.Begin())
}

func (s *Set[T]) Len() int { return s.tree.Len() }

func (s *Set[T]) Empty() bool { return s.tree.Len() == 0 }

// MaxSize is the most values the allocator can provide.
func (s *Set[T]) MaxSize() int { return s.tree.Allocator().MaxSize() }

// Insert adds v if no equivalent value is present. It returns an
// iterator to the value equivalent to v and whether v was added.
func (s *Set[T]) Insert(v T) (rbtree.Iterator[T], bool) {
	return s.tree.Insert(v)
}

// InsertHint is Insert, for callers that have a position near v.
// The hint is not used.
func (s *Set[T]) InsertHint(_ rbtree.Iterator[T], v T) rbtree.Iterator[T] {
	it, _ := s.tree.Insert(v)
	return it
}

// InsertRange inserts each value of [first, last).
func InsertRange[T any, I iterator.Input[T, I]](s *Set[T], first, last I) {
	for ; !first.Equal(last); first = first.Next() {
		s.tree.Insert(first.Get())
	}
}

// Erase removes the value at pos and returns the position after it.
func (s *Set[T]) Erase(pos rbtree.Iterator[T]) rbtree.Iterator[T] {
	return s.tree.Erase(pos)
}

// EraseKey removes the value equivalent to v and returns the number of
// values removed, which is 0 or 1.
func (s *Set[T]) EraseKey(v T) int {
	if s.tree.Delete(v) {
		return 1
	}
	return 0
}

// EraseRange removes the values of [first, last) and returns last.
func (s *Set[T]) EraseRange(first, last rbtree.Iterator[T]) rbtree.Iterator[T] {
	for !first.Equal(last) {
		first = s.tree.Erase(first)
	}
	return last
}

func (s *Set[T]) Find(v T) rbtree.Iterator[T] { return s.tree.Find(v) }

// Count returns the number of values equivalent to v, which is 0 or 1.
func (s *Set[T]) Count(v T) int {
	if s.tree.Find(v).Valid() {
		return 1
	}
	return 0
}

func (s *Set[T]) Contains(v T) bool { return s.tree.Find(v).Valid() }

func (s *Set[T]) LowerBound(v T) rbtree.Iterator[T] { return s.tree.LowerBound(v) }

func (s *Set[T]) UpperBound(v T) rbtree.Iterator[T] { return s.tree.UpperBound(v) }

func (s *Set[T]) EqualRange(v T) (first, last rbtree.Iterator[T]) { return s.tree.EqualRange(v) }

// Swap exchanges the contents of s and o.
func (s *Set[T]) Swap(o *Set[T]) { s.tree, o.tree = o.tree, s.tree }

func (s *Set[T]) Clear() { s.tree.Clear() }

// KeyComp returns the ordering of s.
func (s *Set[T]) KeyComp() functional.LessFunc[T] { return s.tree.LessFunc() }

// ValueComp is KeyComp: in a set, the value is the key.
func (s *Set[T]) ValueComp() functional.LessFunc[T] { return s.tree.LessFunc() }

func (s *Set[T]) Allocator() allocator.Allocator[T] { return s.tree.Allocator() }

// Verify checks the invariants of the underlying tree.
func (s *Set[T]) Verify() error { return s.tree.Verify() }

func (s *Set[T]) String() string {
	return fmt.Sprint(iterator.Collect[T](s.Begin(), s.End()))
}

// EqualFunc reports whether a and b have the same length and eq holds
// for each pair of values, taken in order.
func EqualFunc[T any](a, b *Set[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return algorithm.EqualFunc[T, T](a.Begin(), a.End(), b.Begin(), eq)
}

// LessFunc reports whether a orders before b lexicographically, with
// values ordered by less.
func LessFunc[T any](a, b *Set[T], less func(x, y T) bool) bool {
	return algorithm.LexicographicalCompareFunc[T](a.Begin(), a.End(), b.Begin(), b.End(), less)
}

func Equal[T comparable](a, b *Set[T]) bool {
	return EqualFunc(a, b, functional.EqualTo[T])
}

func Less[T constraints.Ordered](a, b *Set[T]) bool {
	return LessFunc(a, b, functional.Less[T])
}
