// Package treemap provides Map, an ordered map backed by a red-black
// tree.
package treemap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"go.lepak.sg/containers"
	"go.lepak.sg/containers/algorithm"
	"go.lepak.sg/containers/allocator"
	"go.lepak.sg/containers/functional"
	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/pair"
	"go.lepak.sg/containers/rbtree"
)

// Map is an ordered map from K to V. Entries are pairs ordered by their
// key; keys are unique under the map's ordering.
//
// Iterators are rbtree iterators over entries. They stay valid until the
// entry they refer to is erased, but erasing an entry may move the
// value of its predecessor into its node (see rbtree.Tree.Erase), so
// pointers from Index and Ptr are only valid until the next erase.
// Keys must not be changed through Ptr.
//
// Maps must be created with one of the constructors.
type Map[K, V any] struct {
	tree *rbtree.Tree[pair.Pair[K, V]]
	less functional.LessFunc[K]
}

func byKey[K, V any](less functional.LessFunc[K]) functional.LessFunc[pair.Pair[K, V]] {
	return func(a, b pair.Pair[K, V]) bool {
		return less(a.First, b.First)
	}
}

// New returns an empty map with keys ordered by less.
func New[K, V any](less functional.LessFunc[K]) *Map[K, V] {
	return NewWithAllocator[K, V](less, nil)
}

// NewOrdered returns an empty map with keys in their natural order.
func NewOrdered[K constraints.Ordered, V any]() *Map[K, V] {
	return New[K, V](functional.Less[K])
}

// NewWithAllocator returns an empty map with keys ordered by less,
// storing its entries in memory from a.
func NewWithAllocator[K, V any](less functional.LessFunc[K], a allocator.Allocator[pair.Pair[K, V]]) *Map[K, V] {
	return &Map[K, V]{
		tree: rbtree.NewWithAllocator[pair.Pair[K, V]](byKey[K, V](less), a),
		less: less,
	}
}

// FromRange returns a map with keys ordered by less holding the
// entries of [first, last). Where keys repeat, the first entry wins.
func FromRange[K, V any, I iterator.Input[pair.Pair[K, V], I]](first, last I, less functional.LessFunc[K]) *Map[K, V] {
	m := New[K, V](less)
	InsertRange[K, V](m, first, last)
	return m
}

// Clone returns a copy of m with the same ordering and allocator.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone(), less: m.less}
}

// Assign replaces the contents of m with a copy of the contents of o,
// including its ordering and allocator. If the copy cannot be
// allocated, the contents of m are left as they were.
func (m *Map[K, V]) Assign(o *Map[K, V]) {
	if m == o {
		return
	}
	c := o.tree.Clone()
	m.tree.Clear()
	m.tree, m.less = c, o.less
}

func (m *Map[K, V]) keyPair(k K) pair.Pair[K, V] {
	var zero V
	return pair.Make(k, zero)
}

func (m *Map[K, V]) Begin() rbtree.Iterator[pair.Pair[K, V]] { return m.tree.Begin() }

func (m *Map[K, V]) End() rbtree.Iterator[pair.Pair[K, V]] { return m.tree.End() }

func (m *Map[K, V]) RBegin() iterator.Reverse[pair.Pair[K, V], rbtree.Iterator[pair.Pair[K, V]]] {
	return iterator.NewReverse[pair.Pair[K, V]](m.tree.End())
}

func (m *Map[K, V]) REnd() iterator.Reverse[pair.Pair[K, V], rbtree.Iterator[pair.Pair[K, V]]] {
	return iterator.NewReverse[pair.Pair[K, V]](m.tree.Begin())
}

func (m *Map[K, V]) Len() int { return m.tree.Len() }

func (m *Map[K, V]) Empty() bool { return m.tree.Len() == 0 }

// MaxSize is the most entries the allocator can provide.
func (m *Map[K, V]) MaxSize() int { return m.tree.Allocator().MaxSize() }

// Index returns a pointer to the value for k, inserting the zero V
// first if k is not present.
func (m *Map[K, V]) Index(k K) *V {
	it, _ := m.tree.Insert(m.keyPair(k))
	return &it.Ptr().Second
}

// At returns the value for k, or an error wrapping
// containers.ErrOutOfRange if k is not present.
func (m *Map[K, V]) At(k K) (V, error) {
	it := m.tree.Find(m.keyPair(k))
	if !it.Valid() {
		var zero V
		return zero, containers.OutOfRange("treemap.At", "key %v", k)
	}
	return it.Get().Second, nil
}

// Insert adds e if its key is not present. It returns an iterator to
// the entry with e's key and whether e was added; an existing entry is
// left unchanged.
func (m *Map[K, V]) Insert(e pair.Pair[K, V]) (rbtree.Iterator[pair.Pair[K, V]], bool) {
	return m.tree.Insert(e)
}

// InsertHint is Insert, for callers that have a position near e.
// The hint is not used.
func (m *Map[K, V]) InsertHint(_ rbtree.Iterator[pair.Pair[K, V]], e pair.Pair[K, V]) rbtree.Iterator[pair.Pair[K, V]] {
	it, _ := m.tree.Insert(e)
	return it
}

// InsertRange inserts each entry of [first, last) whose key is not
// already present.
func InsertRange[K, V any, I iterator.Input[pair.Pair[K, V], I]](m *Map[K, V], first, last I) {
	for ; !first.Equal(last); first = first.Next() {
		m.tree.Insert(first.Get())
	}
}

// Erase removes the entry at pos and returns the position after it.
func (m *Map[K, V]) Erase(pos rbtree.Iterator[pair.Pair[K, V]]) rbtree.Iterator[pair.Pair[K, V]] {
	return m.tree.Erase(pos)
}

// EraseKey removes the entry for k and returns the number of entries
// removed, which is 0 or 1.
func (m *Map[K, V]) EraseKey(k K) int {
	if m.tree.Delete(m.keyPair(k)) {
		return 1
	}
	return 0
}

// EraseRange removes the entries of [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last rbtree.Iterator[pair.Pair[K, V]]) rbtree.Iterator[pair.Pair[K, V]] {
	for !first.Equal(last) {
		first = m.tree.Erase(first)
	}
	return last
}

func (m *Map[K, V]) Find(k K) rbtree.Iterator[pair.Pair[K, V]] { return m.tree.Find(m.keyPair(k)) }

// Count returns the number of entries for k, which is 0 or 1.
func (m *Map[K, V]) Count(k K) int {
	if m.Contains(k) {
		return 1
	}
	return 0
}

func (m *Map[K, V]) Contains(k K) bool { return m.tree.Find(m.keyPair(k)).Valid() }

func (m *Map[K, V]) LowerBound(k K) rbtree.Iterator[pair.Pair[K, V]] {
	return m.tree.LowerBound(m.keyPair(k))
}

func (m *Map[K, V]) UpperBound(k K) rbtree.Iterator[pair.Pair[K, V]] {
	return m.tree.UpperBound(m.keyPair(k))
}

func (m *Map[K, V]) EqualRange(k K) (first, last rbtree.Iterator[pair.Pair[K, V]]) {
	return m.tree.EqualRange(m.keyPair(k))
}

// Swap exchanges the contents of m and o.
func (m *Map[K, V]) Swap(o *Map[K, V]) {
	m.tree, o.tree = o.tree, m.tree
	m.less, o.less = o.less, m.less
}

func (m *Map[K, V]) Clear() { m.tree.Clear() }

// KeyComp returns the ordering of keys.
func (m *Map[K, V]) KeyComp() functional.LessFunc[K] { return m.less }

// ValueComp returns the ordering of entries, which compares keys only.
func (m *Map[K, V]) ValueComp() functional.LessFunc[pair.Pair[K, V]] { return m.tree.LessFunc() }

func (m *Map[K, V]) Allocator() allocator.Allocator[pair.Pair[K, V]] { return m.tree.Allocator() }

// Verify checks the invariants of the underlying tree.
func (m *Map[K, V]) Verify() error { return m.tree.Verify() }

// String returns the entries in order, as in map[a:1 b:2].
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
		if !it.Equal(m.Begin()) {
			sb.WriteByte(' ')
		}
		e := it.Get()
		fmt.Fprintf(&sb, "%v:%v", e.First, e.Second)
	}
	sb.WriteString("]")
	return sb.String()
}

// EqualFunc reports whether a and b have the same length and eq holds
// for each pair of entries, taken in order.
func EqualFunc[K, V any](a, b *Map[K, V], eq func(x, y pair.Pair[K, V]) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return algorithm.EqualFunc[pair.Pair[K, V], pair.Pair[K, V]](a.Begin(), a.End(), b.Begin(), eq)
}

// LessFunc reports whether a orders before b lexicographically, with
// entries ordered by less.
func LessFunc[K, V any](a, b *Map[K, V], less func(x, y pair.Pair[K, V]) bool) bool {
	return algorithm.LexicographicalCompareFunc[pair.Pair[K, V]](a.Begin(), a.End(), b.Begin(), b.End(), less)
}

// Equal reports whether a and b hold equal entries.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, pair.Equal[K, V])
}

// Less compares the entries of a and b lexicographically, entries
// ordered by key then value.
func Less[K, V constraints.Ordered](a, b *Map[K, V]) bool {
	return LessFunc(a, b, pair.Less[K, V])
}
