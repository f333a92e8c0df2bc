package iterator

// Reverse walks a bidirectional range backwards.
//
// A Reverse holds a base iterator one position after the element it
// refers to, so the reverse of [first, last) is
// [NewReverse(last), NewReverse(first)) and neither end needs a
// position before first.
//
//	   first            last
//	     v               v
//	     [ 1 ][ 2 ][ 3 ] .
//	.  [ 1 ][ 2 ][ 3 ]
//	^               ^
//	rend            rbegin (Get reads 3)
type Reverse[T any, I Bidirectional[T, I]] struct {
	base I
}

// NewReverse returns a reverse iterator over base.
func NewReverse[T any, I Bidirectional[T, I]](base I) Reverse[T, I] {
	return Reverse[T, I]{base: base}
}

// Base returns the underlying iterator, which refers to the element
// after the one r refers to.
func (r Reverse[T, I]) Base() I { return r.base }

// Get steps the base back once and reads there.
func (r Reverse[T, I]) Get() T { return r.base.Prev().Get() }

// Ptr returns a pointer to the element r refers to.
// It panics if the base iterator does not implement Pointer.
func (r Reverse[T, I]) Ptr() *T {
	return any(r.base.Prev()).(Pointer[T]).Ptr()
}

func (r Reverse[T, I]) Next() Reverse[T, I] { return Reverse[T, I]{base: r.base.Prev()} }

func (r Reverse[T, I]) Prev() Reverse[T, I] { return Reverse[T, I]{base: r.base.Next()} }

func (r Reverse[T, I]) Equal(o Reverse[T, I]) bool { return r.base.Equal(o.base) }

// Category is the category of the base iterator.
func (r Reverse[T, I]) Category() Category { return CategoryOf[T](r.base) }

// Advance moves r n positions forward, which moves the base back.
// It panics if the base iterator is not random access.
func (r Reverse[T, I]) Advance(n int) Reverse[T, I] {
	return Reverse[T, I]{base: r.randomAccess().Advance(-n)}
}

// Sub is the number of steps from o to r.
// It panics if the base iterator is not random access.
func (r Reverse[T, I]) Sub(o Reverse[T, I]) int {
	return o.randomAccess().Sub(r.base)
}

// Less reports whether r comes before o in reverse order.
// It panics if the base iterator is not random access.
func (r Reverse[T, I]) Less(o Reverse[T, I]) bool {
	return o.randomAccess().Less(r.base)
}

func (r Reverse[T, I]) randomAccess() RandomAccess[T, I] {
	ra, ok := any(r.base).(RandomAccess[T, I])
	if !ok {
		panic("reverse iterator: base is not random access")
	}
	return ra
}
