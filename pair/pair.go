// Package pair provides a two-element heterogeneous tuple. Ordered maps
// store their entries as a Pair of key and value.
package pair

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Make returns the pair (a, b).
func Make[T1, T2 any](a T1, b T2) Pair[T1, T2] {
	return Pair[T1, T2]{First: a, Second: b}
}

// Convert copies p into a pair of different element types,
// converting each element with its own function.
//
//	p := pair.Make(int32(1), "x")
//	q := pair.Convert(p, func(i int32) int64 { return int64(i) }, strings.ToUpper)
func Convert[U1, U2, T1, T2 any](p Pair[T1, T2], f1 func(T1) U1, f2 func(T2) U2) Pair[U1, U2] {
	return Pair[U1, U2]{First: f1(p.First), Second: f2(p.Second)}
}

// Swap returns (p.Second, p.First).
func (p Pair[T1, T2]) Swap() Pair[T2, T1] {
	return Pair[T2, T1]{First: p.Second, Second: p.First}
}

func (p Pair[T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Equal reports whether both elements are equal.
func Equal[T1, T2 comparable](a, b Pair[T1, T2]) bool {
	return a == b
}

// Less orders pairs by First, then by Second.
func Less[T1, T2 constraints.Ordered](a, b Pair[T1, T2]) bool {
	if a.First != b.First {
		return a.First < b.First
	}
	return a.Second < b.Second
}
