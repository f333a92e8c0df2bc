package iterator

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/containers/testutils"
	"go.uber.org/goleak"
)

func TestCoIterate_Nil(t *testing.T) {
	// This tests that untyped nil cursors can be handled
	co := CoIterate[int](nil)
	_, ok := <-co.Items()
	assert.False(t, ok)
}

func TestCoIterate(t *testing.T) {
	tests := []struct {
		name string
		s    []int
		do   func(t *testing.T, co CoIterator[int])
	}{
		{
			name: "empty",
			do: func(t *testing.T, co CoIterator[int]) {
				testutils.DrainBlocking(t, nil, co.Items(), time.Second)
			},
		},
		{
			name: "one",
			s:    []int{1},
			do: func(t *testing.T, co CoIterator[int]) {
				testutils.DrainBlocking(t, []int{1}, co.Items(), time.Second)
			},
		},
		{
			name: "stopping",
			s:    []int{1, 2, 3},
			do: func(t *testing.T, co CoIterator[int]) {
				assert.Equal(t, 1, <-co.Items())
				co.Stop()
				// the goroutine may or may not have sent 2 before
				// noticing the stop
				for range co.Items() {
				}
			},
		},
		{
			name: "usage",
			s:    []int{1, 2, 3},
			do: func(t *testing.T, co CoIterator[int]) {
				var a []int
				for i := range co.Items() {
					a = append(a, i)
					if i == 1 {
						co.Stop()
						break
					}
				}
				assert.Equal(t, []int{1}, a)
				for range co.Items() {
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t, CoIterate[int](NewRange[int](SliceBegin(tt.s), SliceEnd(tt.s))))
			goleak.VerifyNone(t)
		})
	}
}

func TestCoIterate_Concurrent(t *testing.T) {
	s := make([]int, 100)
	for i := range s {
		s[i] = i + 1
	}
	co := CoIterate[int](NewRange[int](SliceBegin(s), SliceEnd(s)))

	barrier := make(chan struct{})
	var once sync.Once
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			for j := range co.Items() {
				if j > 50 {
					once.Do(co.Stop)
				}
			}
		}()
	}

	close(barrier)
	wg.Wait()

	goleak.VerifyNone(t)
}
