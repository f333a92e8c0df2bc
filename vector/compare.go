package vector

import (
	"golang.org/x/exp/constraints"

	"go.lepak.sg/containers/algorithm"
	"go.lepak.sg/containers/functional"
)

// EqualFunc reports whether a and b have the same length and eq holds
// for each pair of elements.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return algorithm.EqualFunc[T, T](a.Begin(), a.End(), b.Begin(), eq)
}

// LessFunc reports whether a orders before b lexicographically, with
// elements ordered by less.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	return algorithm.LexicographicalCompareFunc[T](a.Begin(), a.End(), b.Begin(), b.End(), less)
}

func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, functional.EqualTo[T])
}

func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, functional.Less[T])
}

func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
