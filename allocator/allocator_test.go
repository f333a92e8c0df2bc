package allocator

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStd(t *testing.T) {
	var a Std[*int]

	buf := a.Allocate(3)
	assert.Len(t, buf, 3)

	x := 1
	a.Construct(&buf[0], &x)
	assert.Same(t, &x, buf[0])

	a.Destroy(&buf[0])
	assert.Nil(t, buf[0])

	a.Deallocate(buf, 3)
}

func TestStd_MaxSize(t *testing.T) {
	assert.Equal(t, math.MaxInt/8, Std[int64]{}.MaxSize())
	assert.Equal(t, math.MaxInt, Std[struct{}]{}.MaxSize())
}

func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	f()
	return nil
}

func TestBounded(t *testing.T) {
	a := NewBounded[int](4)
	assert.Equal(t, 4, a.MaxSize())

	buf := a.Allocate(3)
	assert.Len(t, buf, 3)

	err := recoverErr(func() {
		a.Allocate(2)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhausted))
	assert.Equal(t, "allocate 2 (limit 4): allocator exhausted", err.Error())

	a.Deallocate(buf, 3)
	assert.Len(t, a.Allocate(4), 4)
}
