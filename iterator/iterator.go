// Package iterator provides the position-based iterators shared by the
// containers in this module, and the helpers that work with them.
//
// Iterators here are small values. Moving an iterator returns a new one
// and leaves the receiver untouched, so a copy is a saved position:
//
//	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
//		x := it.Get()
//		... do stuff with x ...
//	}
//
// The type parameter I is the concrete iterator type itself, which lets
// Next and Prev return it without boxing.
package iterator

// Input is a single-pass iterator. After Next is called, older copies
// of the iterator may no longer be usable.
// Get must not be called on a past-the-end iterator.
type Input[T, I any] interface {
	Get() T
	Next() I
	Equal(I) bool
}

// Forward is a multi-pass Input: copies stay valid and independent.
// The method set is the same as Input; the difference is the
// Category the iterator reports.
type Forward[T, I any] interface {
	Input[T, I]
}

// Bidirectional is a Forward iterator that can also step backwards.
type Bidirectional[T, I any] interface {
	Forward[T, I]
	Prev() I
}

// RandomAccess is a Bidirectional iterator that can jump n positions
// and measure the distance to another iterator over the same range in
// constant time.
// i.Sub(j) is the number of steps from j to i.
type RandomAccess[T, I any] interface {
	Bidirectional[T, I]
	Advance(n int) I
	Sub(I) int
	Less(I) bool
}

// Pointer is implemented by iterators that allow in-place modification
// of the element they refer to.
type Pointer[T any] interface {
	Ptr() *T
}
