package functional

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.Equal(t, Before, Compare(1, 2))
	assert.Equal(t, Same, Compare("a", "a"))
	assert.Equal(t, After, Compare(2.5, 1.0))
}

func TestLessFunc_Order(t *testing.T) {
	tests := []struct {
		name string
		f    LessFunc[int]
		a, b int
		want Order
	}{
		{"less before", Less[int], 1, 2, Before},
		{"less after", Less[int], 3, 2, After},
		{"less same", Less[int], 2, 2, Same},
		{"greater flips", Greater[int], 1, 2, After},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Order(tt.a, tt.b))
		})
	}
}

func TestLessFunc_Equivalent(t *testing.T) {
	// case-insensitive: "a" and "A" are equivalent but not equal
	caseless := LessFunc[string](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})

	assert.True(t, caseless.Equivalent("a", "A"))
	assert.False(t, caseless.Equivalent("a", "b"))
	assert.False(t, EqualTo("a", "A"))
}

func TestFromCompare(t *testing.T) {
	less := FromCompare(strings.Compare)

	assert.True(t, less("bar", "foo"))
	assert.False(t, less("foo", "bar"))
	assert.False(t, less("foo", "foo"))
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "Before", Before.String())
	assert.Equal(t, "<invalid functional.Order>", Order(7).String())
}
