// Package typetraits answers questions about type parameters at run time.
//
// Constructors that would be ambiguous when the element type is itself
// an integer (a count and a value, or two iterators) are given distinct
// names instead, for example vector.NewN and vector.FromRange.
package typetraits

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Integral is satisfied by every integer type, including named ones.
type Integral interface {
	constraints.Integer
}

// IsIntegral reports whether T is an integer type, including byte, rune
// and named types whose underlying type is an integer.
func IsIntegral[T any]() bool {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return true
	default:
		return false
	}
}
