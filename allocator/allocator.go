// Package allocator defines how containers obtain element storage.
//
// Go manages memory itself, so an Allocator mostly decides how much a
// container may hold and what happens to slots that are vacated:
// Destroy zeroes a slot so the garbage collector can reclaim whatever it
// referenced, even though the backing array stays alive.
package allocator

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/semaphore"
)

// ErrExhausted is wrapped by the panic value of a Bounded allocator
// that cannot satisfy a request.
var ErrExhausted = errors.New("allocator exhausted")

// Allocator provides storage for elements of type T.
// Allocate returns a buffer of exactly n slots; Deallocate gives it back,
// with n being the size it was allocated with. Construct and Destroy
// manage a single slot within an allocated buffer.
// Allocators signal failure by panicking; containers do not recover.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(p []T, n int)
	Construct(p *T, v T)
	Destroy(p *T)
	MaxSize() int
}

var _ Allocator[int] = Std[int]{}

// Std allocates from the Go heap. The zero Std is ready to use.
type Std[T any] struct{}

func (Std[T]) Allocate(n int) []T {
	return make([]T, n)
}

func (Std[T]) Deallocate([]T, int) {}

func (Std[T]) Construct(p *T, v T) {
	*p = v
}

func (Std[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// MaxSize is the largest number of T that fits in the address space.
func (Std[T]) MaxSize() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

var _ Allocator[int] = (*Bounded[int])(nil)

// Bounded is a heap allocator that caps the number of slots
// outstanding at any time. A single Bounded may be shared between
// containers and goroutines; it is safe for concurrent use.
//
// Allocate panics with an error wrapping ErrExhausted if the request
// would exceed the limit.
type Bounded[T any] struct {
	Std[T]
	limit int
	sem   *semaphore.Weighted
}

// NewBounded returns an allocator that hands out at most limit slots.
func NewBounded[T any](limit int) *Bounded[T] {
	return &Bounded[T]{
		limit: limit,
		sem:   semaphore.NewWeighted(int64(limit)),
	}
}

func (b *Bounded[T]) Allocate(n int) []T {
	if !b.sem.TryAcquire(int64(n)) {
		panic(errors.Wrapf(ErrExhausted, "allocate %d (limit %d)", n, b.limit))
	}
	return b.Std.Allocate(n)
}

func (b *Bounded[T]) Deallocate(p []T, n int) {
	b.sem.Release(int64(n))
}

// MaxSize is the limit the allocator was created with.
func (b *Bounded[T]) MaxSize() int {
	return b.limit
}
