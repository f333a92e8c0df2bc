// Package functional holds the comparator vocabulary shared by the
// ordered containers.
package functional

import (
	"golang.org/x/exp/constraints"
)

// LessFunc reports whether a sorts before b.
// It must be a strict weak ordering: irreflexive, asymmetric and
// transitive, with equivalence (neither a < b nor b < a) being transitive
// as well. The containers do not check this; a comparator that breaks it
// leaves them in an undefined state.
type LessFunc[T any] func(a, b T) bool

// Less is the natural ordering of T.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Greater is the reverse of the natural ordering of T.
func Greater[T constraints.Ordered](a, b T) bool {
	return a > b
}

// EqualTo is the default equality predicate.
func EqualTo[T comparable](a, b T) bool {
	return a == b
}

// Order is the result of a three-way comparison.
type Order int

const (
	Before Order = iota - 1
	Same
	After
)

func (o Order) String() string {
	switch o {
	case Before:
		return "Before"
	case Same:
		return "Same"
	case After:
		return "After"
	default:
		return "<invalid functional.Order>"
	}
}

// Compare compares l and r using the natural ordering of T.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Before
	} else if l > r {
		return After
	} else {
		return Same
	}
}

// Order compares a and b in terms of f. Two values for which
// neither sorts before the other are Same.
func (f LessFunc[T]) Order(a, b T) Order {
	switch {
	case f(a, b):
		return Before
	case f(b, a):
		return After
	default:
		return Same
	}
}

// Equivalent reports whether neither a nor b sorts before the other.
func (f LessFunc[T]) Equivalent(a, b T) bool {
	return !f(a, b) && !f(b, a)
}

// FromCompare adapts a three-way comparison such as strings.Compare
// (negative, zero, positive) into a LessFunc.
func FromCompare[T any](cmp func(a, b T) int) LessFunc[T] {
	return func(a, b T) bool {
		return cmp(a, b) < 0
	}
}
