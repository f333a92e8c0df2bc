package testutils

// Cursor is the Next/Item pull interface, repeated here so that
// packages which define cursors can use these helpers in their own
// tests.
type Cursor[T any] interface {
	Next() bool
	Item() T
}

// Collect pulls every item from c.
func Collect[T any](c Cursor[T]) []T {
	var out []T
	for c.Next() {
		out = append(out, c.Item())
	}
	return out
}
