// Package rbtree implements a red-black tree holding unique values
// under a caller-supplied ordering. It is the engine behind the
// treemap and treeset packages.
package rbtree

import (
	"math/bits"

	"go.lepak.sg/containers/allocator"
	"go.lepak.sg/containers/functional"
	"go.lepak.sg/containers/iterator"
)

// Tree is a red-black tree. It is not safe for concurrent use.
//
// Trees must be created with New or NewWithAllocator. Tree should not
// be copied by value; use Clone.
//
// Invariants, which Verify checks:
//   - At any node N, values in N's left subtree order before N's value
//     and values in its right subtree order after it. No two values
//     are equivalent.
//   - Every path from the root to a sentinel passes through the same
//     number of black nodes.
//   - A red node never has a red parent.
//   - The root is black.
type Tree[T any] struct {
	// root is nil when the tree is empty.
	root *node[T]
	// end is the parent of root and the past-the-end position.
	end  *node[T]
	size int

	less  functional.LessFunc[T]
	alloc allocator.Allocator[T]
}

// New returns an empty tree ordered by less.
func New[T any](less functional.LessFunc[T]) *Tree[T] {
	return NewWithAllocator[T](less, nil)
}

// NewWithAllocator returns an empty tree ordered by less. Storage for
// each value is obtained from a, one element per node; nil means the
// heap allocator.
func NewWithAllocator[T any](less functional.LessFunc[T], a allocator.Allocator[T]) *Tree[T] {
	if a == nil {
		a = allocator.Std[T]{}
	}
	return &Tree[T]{
		end:   sentinel[T](),
		less:  less,
		alloc: a,
	}
}

// newNode returns a red node holding v, with no children.
func (t *Tree[T]) newNode(v T) *node[T] {
	slot := t.alloc.Allocate(1)
	t.alloc.Construct(&slot[0], v)
	return &node[T]{slot: slot, color: red}
}

func (t *Tree[T]) free(n *node[T]) {
	t.alloc.Destroy(&n.slot[0])
	t.alloc.Deallocate(n.slot, 1)
	n.slot = nil
}

// LessFunc returns the ordering of t.
func (t *Tree[T]) LessFunc() functional.LessFunc[T] {
	return t.less
}

// Allocator returns the allocator t obtains storage from.
func (t *Tree[T]) Allocator() allocator.Allocator[T] {
	return t.alloc
}

// Len returns the number of values in t.
func (t *Tree[T]) Len() int {
	return t.size
}

// locate searches for v. It returns the node holding a value
// equivalent to v if there is one. Otherwise it returns the sentinel
// where v would be inserted, or end if the tree is empty.
func (t *Tree[T]) locate(v T) *node[T] {
	if t.root == nil {
		return t.end
	}

	n := t.root
	for !n.isNull {
		switch t.less.Order(v, *n.value()) {
		case functional.Before:
			n = n.left
		case functional.After:
			n = n.right
		case functional.Same:
			return n
		default:
			panic("unreachable")
		}
	}
	return n
}

// Locate is Find, except that on a miss it returns the position v would
// be inserted at instead of End. That position is not Valid, but Next
// from it gives the first value after v.
func (t *Tree[T]) Locate(v T) Iterator[T] {
	return Iterator[T]{n: t.locate(v)}
}

// Find returns an iterator to the value equivalent to v, or End.
func (t *Tree[T]) Find(v T) Iterator[T] {
	n := t.locate(v)
	if n.isNull {
		return t.End()
	}
	return Iterator[T]{n: n}
}

// Insert inserts v if no equivalent value is present. It returns an
// iterator to the value in the tree equivalent to v, and whether v was
// inserted.
func (t *Tree[T]) Insert(v T) (Iterator[T], bool) {
	at := t.locate(v)
	if !at.isNull {
		return Iterator[T]{n: at}, false
	}

	n := t.newNode(v)
	n.setLeft(sentinel[T]())
	n.setRight(sentinel[T]())

	if at == t.end {
		t.end.setLeft(n)
		t.root = n
	} else {
		t.replaceChild(at, n)
	}
	t.size++

	t.insertFixup(n)

	return Iterator[T]{n: n}, true
}

// Delete removes the value equivalent to v, and reports whether there
// was one.
func (t *Tree[T]) Delete(v T) bool {
	n := t.locate(v)
	if n.isNull {
		return false
	}
	t.erase(n)
	return true
}

// Erase removes the value at it, which must be Valid, and returns an
// iterator to the value that followed it.
//
// A node with two children is not unlinked; it takes its
// predecessor's value and the predecessor's node is removed instead.
// Iterators to that predecessor become invalid.
func (t *Tree[T]) Erase(it Iterator[T]) Iterator[T] {
	next := it.n.next()
	t.erase(it.n)
	return Iterator[T]{n: next}
}

func (t *Tree[T]) erase(n *node[T]) {
	if !n.left.isNull && !n.right.isNull {
		pred := n.left.max()
		*n.value() = *pred.value()
		n = pred
	}

	// n now has at most one real child, which takes its place.
	// A leaf is replaced by its left sentinel.
	child := n.left
	if n.left.isNull && !n.right.isNull {
		child = n.right
	}

	removed := n.color
	t.free(n)
	t.size--

	if t.size == 0 {
		t.root = nil
		t.end.left = nil
		return
	}

	t.replaceChild(n, child)
	t.deleteFixup(child, removed)
}

// Clear removes every value from t.
func (t *Tree[T]) Clear() {
	if t.root != nil {
		t.freeAll(t.root)
	}
	t.root = nil
	t.end.left = nil
	t.size = 0
}

func (t *Tree[T]) freeAll(n *node[T]) {
	if n.isNull {
		return
	}
	t.freeAll(n.left)
	t.freeAll(n.right)
	t.free(n)
}

// Clone returns a copy of t with the same shape, ordering and
// allocator. If the allocator panics part way through, the slots taken
// for the copy are given back before the panic continues.
func (t *Tree[T]) Clone() *Tree[T] {
	c := NewWithAllocator[T](t.less, t.alloc)
	if t.root == nil {
		return c
	}

	var made []*node[T]
	defer func() {
		if r := recover(); r != nil {
			for _, n := range made {
				c.free(n)
			}
			panic(r)
		}
	}()

	c.end.setLeft(c.copyNode(t.root, &made))
	c.root = c.end.left
	c.size = t.size
	return c
}

func (t *Tree[T]) copyNode(n *node[T], made *[]*node[T]) *node[T] {
	if n.isNull {
		return sentinel[T]()
	}
	m := t.newNode(*n.value())
	*made = append(*made, m)
	m.color = n.color
	m.setLeft(t.copyNode(n.left, made))
	m.setRight(t.copyNode(n.right, made))
	return m
}

// Swap exchanges the contents of t and o. Iterators keep referring to
// the same values, which now belong to the other tree.
func (t *Tree[T]) Swap(o *Tree[T]) {
	*t, *o = *o, *t
}

// Min returns an iterator to the least value, or End if t is empty.
func (t *Tree[T]) Min() Iterator[T] {
	if t.root == nil {
		return t.End()
	}
	return Iterator[T]{n: t.root.min()}
}

// Max returns an iterator to the greatest value, or End if t is empty.
func (t *Tree[T]) Max() Iterator[T] {
	if t.root == nil {
		return t.End()
	}
	return Iterator[T]{n: t.root.max()}
}

// Begin is Min.
func (t *Tree[T]) Begin() Iterator[T] {
	return t.Min()
}

// End returns the past-the-end iterator.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{n: t.end}
}

// LowerBound returns an iterator to the first value not before v,
// or End.
func (t *Tree[T]) LowerBound(v T) Iterator[T] {
	res := t.end
	for n := t.root; n != nil && !n.isNull; {
		if t.less(*n.value(), v) {
			n = n.right
		} else {
			res, n = n, n.left
		}
	}
	return Iterator[T]{n: res}
}

// UpperBound returns an iterator to the first value after v, or End.
func (t *Tree[T]) UpperBound(v T) Iterator[T] {
	res := t.end
	for n := t.root; n != nil && !n.isNull; {
		if t.less(v, *n.value()) {
			res, n = n, n.left
		} else {
			n = n.right
		}
	}
	return Iterator[T]{n: res}
}

// EqualRange returns the range of values equivalent to v. Since values
// are unique it holds one value or none; when there is none, both
// iterators are the position of the first value after v.
func (t *Tree[T]) EqualRange(v T) (first, last Iterator[T]) {
	return t.LowerBound(v), t.UpperBound(v)
}

// Walk applies f to each value in order.
// If f returns false, the walk is stopped early.
func (t *Tree[T]) Walk(f func(v T) bool) {
	if t.root == nil {
		return
	}
	t.walk(t.root, f)
}

func (t *Tree[T]) walk(n *node[T], f func(v T) bool) bool {
	if !n.left.isNull {
		if !t.walk(n.left, f) {
			return false
		}
	}

	if !f(*n.value()) {
		return false
	}

	if !n.right.isNull {
		if !t.walk(n.right, f) {
			return false
		}
	}

	return true
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for v := range co.Items() {
//		... do stuff with v ...
//		if v meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// The goroutine exits when either Stop is called or the iteration is
// finished. The tree must not be modified until then.
func (t *Tree[T]) InOrderCoroutine() iterator.CoIterator[T] {
	return iterator.CoIterate[T](iterator.NewRange[T](t.Begin(), t.End()))
}

// Height returns the number of nodes on the longest path from the root,
// and the least height any binary tree holding Len values could have.
func (t *Tree[T]) Height() (actual, ideal int) {
	return t.height(t.root), bits.Len(uint(t.size))
}

func (t *Tree[T]) height(n *node[T]) int {
	if n == nil || n.isNull {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}
