package rbtree

import (
	"math/rand"

	"go.lepak.sg/containers/functional"
)

// BuildRandom builds a tree with num values.
// Values are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	values := make([]int, num)
	for i := 0; i < num; i++ {
		values[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	tr := New[int](functional.Less[int])
	for _, v := range values {
		tr.Insert(v)
	}

	return tr
}
