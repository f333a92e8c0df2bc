// Package vector provides Vector, a growable contiguous array.
package vector

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"go.lepak.sg/containers"
	"go.lepak.sg/containers/allocator"
	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/typetraits"
)

// Vector is a dynamic array. Elements live in a single buffer obtained
// from its allocator; len(buf) is the capacity and the first size slots
// hold live elements.
//
// The zero Vector is empty and ready to use, with the heap allocator.
// Vector is not safe for concurrent use.
//
// Appending is amortized O(1): when the buffer is full its capacity is
// doubled, or grown to exactly the needed size if that is larger.
// Growing replaces the buffer, which invalidates pointers obtained from
// Ptr and Data, but not iterators, which hold an index.
type Vector[T any] struct {
	buf   []T
	size  int
	alloc allocator.Allocator[T]
}

// New returns an empty Vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithAllocator returns an empty Vector that obtains storage from a.
func NewWithAllocator[T any](a allocator.Allocator[T]) *Vector[T] {
	return &Vector[T]{alloc: a}
}

// NewN returns a Vector holding n copies of val, with capacity n.
// n may be any integer type.
// It panics if n is negative.
func NewN[T any, N typetraits.Integral](n N, val T) *Vector[T] {
	mustNotBeNegative("vector.NewN", int(n))
	v := &Vector[T]{}
	v.AssignN(int(n), val)
	return v
}

func mustNotBeNegative(op string, n int) {
	if n < 0 {
		panic(errors.Newf("%s: negative length %d", op, n))
	}
}

// Of returns a Vector holding vals, in order.
func Of[T any](vals ...T) *Vector[T] {
	return FromRange[T](iterator.SliceBegin(vals), iterator.SliceEnd(vals))
}

// FromRange returns a Vector holding the elements of [first, last).
func FromRange[T any, I iterator.Input[T, I]](first, last I) *Vector[T] {
	v := &Vector[T]{}
	AssignRange[T](v, first, last)
	return v
}

// Clone returns a copy of v with the same allocator and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{alloc: v.alloc}
	if len(v.buf) > 0 {
		c.reallocate(len(v.buf))
	}
	a := c.allocator()
	for i := 0; i < v.size; i++ {
		a.Construct(&c.buf[i], v.buf[i])
	}
	c.size = v.size
	return c
}

// Assign replaces the contents of v with a copy of the contents of o.
func (v *Vector[T]) Assign(o *Vector[T]) {
	if v == o {
		return
	}
	AssignRange[T](v, o.Begin(), o.End())
}

func (v *Vector[T]) allocator() allocator.Allocator[T] {
	if v.alloc == nil {
		v.alloc = allocator.Std[T]{}
	}
	return v.alloc
}

// Allocator returns the allocator v obtains storage from.
func (v *Vector[T]) Allocator() allocator.Allocator[T] {
	return v.allocator()
}

// reallocate moves the live elements into a new buffer of newCap slots.
// Elements beyond newCap are dropped.
func (v *Vector[T]) reallocate(newCap int) {
	a := v.allocator()

	var nb []T
	if newCap > 0 {
		nb = a.Allocate(newCap)
	}
	for i := 0; i < v.size; i++ {
		if i < newCap {
			a.Construct(&nb[i], v.buf[i])
		}
		a.Destroy(&v.buf[i])
	}
	if v.buf != nil {
		a.Deallocate(v.buf, len(v.buf))
	}

	v.buf = nb
	if v.size > newCap {
		v.size = newCap
	}
}

// grow makes room for n elements.
func (v *Vector[T]) grow(n int) {
	if n <= len(v.buf) {
		return
	}
	v.reallocate(max(2*len(v.buf), n))
}

// shift moves count elements starting at src to start at dst. It copies
// from the back when moving towards higher indices so that no source
// slot is overwritten before it is read.
// Slots left behind are not cleared.
func (v *Vector[T]) shift(dst, src, count int) {
	a := v.allocator()
	switch {
	case dst > src:
		for i := count - 1; i >= 0; i-- {
			a.Construct(&v.buf[dst+i], v.buf[src+i])
		}
	case dst < src:
		for i := 0; i < count; i++ {
			a.Construct(&v.buf[dst+i], v.buf[src+i])
		}
	}
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v}
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, i: v.size}
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() iterator.Reverse[T, Iterator[T]] {
	return iterator.NewReverse[T](v.End())
}

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T]) REnd() iterator.Reverse[T, Iterator[T]] {
	return iterator.NewReverse[T](v.Begin())
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements v can hold without reallocating.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Empty reports whether v has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// MaxSize is the most elements the allocator can provide.
func (v *Vector[T]) MaxSize() int {
	return v.allocator().MaxSize()
}

// Resize changes the number of elements to n, dropping elements from
// the back or appending copies of val. It panics if n is negative.
func (v *Vector[T]) Resize(n int, val T) {
	mustNotBeNegative("vector.Resize", n)
	a := v.allocator()
	v.grow(n)
	for i := n; i < v.size; i++ {
		a.Destroy(&v.buf[i])
	}
	for i := v.size; i < n; i++ {
		a.Construct(&v.buf[i], val)
	}
	v.size = n
}

// Reserve ensures the capacity is at least n. It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.buf) {
		return
	}
	v.reallocate(n)
}

// ShrinkToFit reduces the capacity to the number of elements.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) == v.size {
		return
	}
	v.reallocate(v.size)
}

// Get returns the element at i. i is not checked against Len.
func (v *Vector[T]) Get(i int) T {
	return v.buf[i]
}

// Ptr returns a pointer to the element at i. It is valid until
// the buffer is reallocated. i is not checked against Len.
func (v *Vector[T]) Ptr(i int) *T {
	return &v.buf[i]
}

// Set replaces the element at i. i is not checked against Len.
func (v *Vector[T]) Set(i int, val T) {
	v.buf[i] = val
}

// At returns the element at i, or an error wrapping
// containers.ErrOutOfRange if i is not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, containers.OutOfRange("vector.At", "index %d (size %d)", i, v.size)
	}
	return v.buf[i], nil
}

// Front returns the first element. v must not be empty.
func (v *Vector[T]) Front() T {
	return v.buf[0]
}

// Back returns the last element. v must not be empty.
func (v *Vector[T]) Back() T {
	return v.buf[v.size-1]
}

// Data returns the live elements. The slice aliases the buffer and is
// valid until it is reallocated.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// AssignN replaces the contents of v with n copies of val.
// It panics if n is negative.
func (v *Vector[T]) AssignN(n int, val T) {
	mustNotBeNegative("vector.AssignN", n)
	v.Clear()
	if n > len(v.buf) {
		v.reallocate(n)
	}
	a := v.allocator()
	for i := 0; i < n; i++ {
		a.Construct(&v.buf[i], val)
	}
	v.size = n
}

// AssignRange replaces the contents of v with the elements of
// [first, last). The range must not refer into v.
func AssignRange[T any, I iterator.Input[T, I]](v *Vector[T], first, last I) {
	if !iterator.CategoryOf[T](first).Includes(iterator.ForwardCategory) {
		// single pass: we can only learn the length by reading
		s := iterator.Collect[T](first, last)
		AssignRange[T](v, iterator.SliceBegin(s), iterator.SliceEnd(s))
		return
	}

	n := iterator.Distance[T](first, last)
	v.Clear()
	if n > len(v.buf) {
		v.reallocate(n)
	}
	a := v.allocator()
	for i := 0; !first.Equal(last); first, i = first.Next(), i+1 {
		a.Construct(&v.buf[i], first.Get())
	}
	v.size = n
}

// PushBack appends val.
func (v *Vector[T]) PushBack(val T) {
	if v.size == len(v.buf) {
		v.reallocate(max(2*len(v.buf), 1))
	}
	v.allocator().Construct(&v.buf[v.size], val)
	v.size++
}

// PopBack removes the last element. It does nothing if v is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.allocator().Destroy(&v.buf[v.size])
}

// Insert inserts val before pos and returns an iterator to it.
func (v *Vector[T]) Insert(pos Iterator[T], val T) Iterator[T] {
	return v.InsertN(pos, 1, val)
}

// InsertN inserts n copies of val before pos and returns an iterator
// to the first of them.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, val T) Iterator[T] {
	idx := pos.i
	if n <= 0 {
		return Iterator[T]{v: v, i: idx}
	}

	v.grow(v.size + n)
	v.shift(idx+n, idx, v.size-idx)
	a := v.allocator()
	for i := idx; i < idx+n; i++ {
		a.Construct(&v.buf[i], val)
	}
	v.size += n

	return Iterator[T]{v: v, i: idx}
}

// InsertRange inserts the elements of [first, last) before pos and
// returns an iterator to the first inserted element.
// The range must not refer into v.
func InsertRange[T any, I iterator.Input[T, I]](v *Vector[T], pos Iterator[T], first, last I) Iterator[T] {
	if !iterator.CategoryOf[T](first).Includes(iterator.ForwardCategory) {
		s := iterator.Collect[T](first, last)
		return InsertRange[T](v, pos, iterator.SliceBegin(s), iterator.SliceEnd(s))
	}

	idx := pos.i
	n := iterator.Distance[T](first, last)
	if n <= 0 {
		return Iterator[T]{v: v, i: idx}
	}

	v.grow(v.size + n)
	v.shift(idx+n, idx, v.size-idx)
	a := v.allocator()
	for i := idx; !first.Equal(last); first, i = first.Next(), i+1 {
		a.Construct(&v.buf[i], first.Get())
	}
	v.size += n

	return Iterator[T]{v: v, i: idx}
}

// Erase removes the element at pos and returns an iterator to the
// element that followed it.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes the elements of [first, last) and returns an
// iterator to the element that followed them.
// The capacity is unchanged.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	n := last.i - first.i
	if n <= 0 {
		return first
	}

	v.shift(first.i, last.i, v.size-last.i)
	a := v.allocator()
	for i := v.size - n; i < v.size; i++ {
		a.Destroy(&v.buf[i])
	}
	v.size -= n

	return Iterator[T]{v: v, i: first.i}
}

// Swap exchanges the contents, capacity and allocator of v and o.
func (v *Vector[T]) Swap(o *Vector[T]) {
	*v, *o = *o, *v
}

// Clear removes all elements. The capacity is unchanged.
func (v *Vector[T]) Clear() {
	a := v.allocator()
	for i := 0; i < v.size; i++ {
		a.Destroy(&v.buf[i])
	}
	v.size = 0
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}
