package iterator

// Cursor is the pull-style view of a range, for callers that prefer
//
//	c := iterator.NewRange(first, last)
//	for c.Next() {
//		x := c.Item()
//		... do stuff with x, or break ...
//	}
//
// Next must always be called before Item, even for the first item.
// If Next returns false, Item must not be called.
type Cursor[T any] interface {
	Next() bool
	Item() T
}

var _ Cursor[int] = (*Range[int, Slice[int]])(nil)

// Range is a Cursor over [first, last).
// The cursor may be abandoned at any time. The result of mutating the
// container while iterating over it is undefined.
type Range[T any, I Input[T, I]] struct {
	at, last I
	started  bool
}

// NewRange returns a Cursor over [first, last).
func NewRange[T any, I Input[T, I]](first, last I) *Range[T, I] {
	return &Range[T, I]{
		at:   first,
		last: last,
	}
}

// Next advances the cursor and returns whether there is an item to read.
func (r *Range[T, I]) Next() bool {
	if r == nil {
		return false
	}

	if !r.started {
		r.started = true
	} else if !r.at.Equal(r.last) {
		r.at = r.at.Next()
	}

	return !r.at.Equal(r.last)
}

// Item returns the item under the cursor.
func (r *Range[T, I]) Item() T {
	return r.at.Get()
}

// Collect copies the elements of [first, last) into a new slice.
func Collect[T any, I Input[T, I]](first, last I) []T {
	var out []T
	if CategoryOf[T](first).Includes(ForwardCategory) {
		out = make([]T, 0, Distance[T](first, last))
	}
	for ; !first.Equal(last); first = first.Next() {
		out = append(out, first.Get())
	}
	return out
}
