package iterator

import "reflect"

// Traits describes an iterator type: what it can do and the types it
// works with.
type Traits struct {
	Category Category
	// Value is the element type.
	Value reflect.Type
	// Difference is the type of the distance between two iterators.
	Difference reflect.Type
	// Pointer is the type through which elements can be modified,
	// or nil if the iterator is read-only.
	Pointer reflect.Type
}

// CategoryOf returns the category of it.
// Iterators that implement Categorized are trusted; otherwise the
// category is derived from the method set, and a bare Input is assumed
// to be single-pass.
func CategoryOf[T any, I Input[T, I]](it I) Category {
	switch c := any(it).(type) {
	case Categorized:
		return c.Category()
	case RandomAccess[T, I]:
		return RandomAccessCategory
	case Bidirectional[T, I]:
		return BidirectionalCategory
	default:
		return InputCategory
	}
}

// TraitsOf looks up the Traits of the iterator type I.
func TraitsOf[T any, I Input[T, I]](it I) Traits {
	tr := Traits{
		Category:   CategoryOf[T](it),
		Value:      reflect.TypeOf((*T)(nil)).Elem(),
		Difference: reflect.TypeOf(0),
	}
	if _, ok := any(it).(Pointer[T]); ok {
		tr.Pointer = reflect.TypeOf((*T)(nil))
	}
	return tr
}
