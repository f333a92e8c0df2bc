// Package algorithm provides comparisons over pairs of iterator ranges.
package algorithm

import (
	"go.lepak.sg/containers/iterator"
	"golang.org/x/exp/constraints"
)

// Equal reports whether [first1, last1) equals the range of the same
// length starting at first2. The second range must be at least as long
// as the first.
func Equal[T comparable, I1 iterator.Input[T, I1], I2 iterator.Input[T, I2]](
	first1, last1 I1, first2 I2) bool {
	return EqualFunc[T, T](first1, last1, first2, func(a, b T) bool {
		return a == b
	})
}

// EqualFunc is like Equal but uses pred to compare elements.
func EqualFunc[T1, T2 any, I1 iterator.Input[T1, I1], I2 iterator.Input[T2, I2]](
	first1, last1 I1, first2 I2, pred func(T1, T2) bool) bool {
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if !pred(first1.Get(), first2.Get()) {
			return false
		}
	}
	return true
}

// LexicographicalCompare reports whether [first1, last1) sorts before
// [first2, last2): the first mismatching element decides, and a proper
// prefix sorts before the longer range.
func LexicographicalCompare[T constraints.Ordered, I1 iterator.Input[T, I1], I2 iterator.Input[T, I2]](
	first1, last1 I1, first2, last2 I2) bool {
	return LexicographicalCompareFunc[T](first1, last1, first2, last2, func(a, b T) bool {
		return a < b
	})
}

// LexicographicalCompareFunc is like LexicographicalCompare but orders
// elements with less.
func LexicographicalCompareFunc[T any, I1 iterator.Input[T, I1], I2 iterator.Input[T, I2]](
	first1, last1 I1, first2, last2 I2, less func(a, b T) bool) bool {
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if first2.Equal(last2) {
			return false
		}
		a, b := first1.Get(), first2.Get()
		if less(b, a) {
			return false
		}
		if less(a, b) {
			return true
		}
	}
	return !first2.Equal(last2)
}
