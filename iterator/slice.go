package iterator

var _ RandomAccess[int, Slice[int]] = Slice[int]{}

// Slice is a random-access iterator over a Go slice.
// It plays the part of a raw pointer into contiguous storage:
// comparing iterators from different slices is meaningless.
type Slice[T any] struct {
	s []T
	i int
}

// SliceBegin returns an iterator to the first element of s.
func SliceBegin[T any](s []T) Slice[T] {
	return Slice[T]{s: s}
}

// SliceEnd returns an iterator one past the last element of s.
func SliceEnd[T any](s []T) Slice[T] {
	return Slice[T]{s: s, i: len(s)}
}

func (it Slice[T]) Get() T { return it.s[it.i] }

func (it Slice[T]) Ptr() *T { return &it.s[it.i] }

func (it Slice[T]) Next() Slice[T] { return Slice[T]{s: it.s, i: it.i + 1} }

func (it Slice[T]) Prev() Slice[T] { return Slice[T]{s: it.s, i: it.i - 1} }

func (it Slice[T]) Advance(n int) Slice[T] { return Slice[T]{s: it.s, i: it.i + n} }

func (it Slice[T]) Sub(o Slice[T]) int { return it.i - o.i }

func (it Slice[T]) Less(o Slice[T]) bool { return it.i < o.i }

func (it Slice[T]) Equal(o Slice[T]) bool { return it.i == o.i }

func (it Slice[T]) Category() Category { return RandomAccessCategory }

// Index returns the position of it within its slice.
func (it Slice[T]) Index() int { return it.i }
