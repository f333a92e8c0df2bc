package containers

import "github.com/cockroachdb/errors"

// ErrOutOfRange is returned by checked element access (vector.At,
// treemap.At) when the index or key is not present.
// Use errors.Is to test for it; the returned error carries the
// name of the operation and the offending index or key.
var ErrOutOfRange = errors.New("out of range")

// OutOfRange wraps ErrOutOfRange with a diagnostic naming the operation.
func OutOfRange(op string, format string, args ...interface{}) error {
	return errors.Wrapf(ErrOutOfRange, op+": "+format, args...)
}
