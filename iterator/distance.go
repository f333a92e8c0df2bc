package iterator

// Distance returns the number of steps from first to last.
// For random-access iterators this is a single subtraction; otherwise
// the range is walked, so last must be reachable from first.
func Distance[T any, I Input[T, I]](first, last I) int {
	if CategoryOf[T](first).Includes(RandomAccessCategory) {
		if ra, ok := any(last).(RandomAccess[T, I]); ok {
			return ra.Sub(first)
		}
	}

	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Advance moves it n steps, jumping directly when it is random access.
// Negative n requires a bidirectional iterator.
func Advance[T any, I Input[T, I]](it I, n int) I {
	if CategoryOf[T](it).Includes(RandomAccessCategory) {
		if ra, ok := any(it).(RandomAccess[T, I]); ok {
			return ra.Advance(n)
		}
	}

	for ; n > 0; n-- {
		it = it.Next()
	}
	if n < 0 {
		bi, ok := any(it).(Bidirectional[T, I])
		if !ok {
			panic("iterator.Advance: negative step on a forward-only iterator")
		}
		for ; n < 0; n++ {
			it = bi.Prev()
			bi = any(it).(Bidirectional[T, I])
		}
	}
	return it
}
