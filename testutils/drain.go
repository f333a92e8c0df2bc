package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed. Each receive, including the final one that should
// see ch closed, waits up to timeout, so unlike a non-blocking drain
// this works while the producer is still sending.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining: expecting %v", data)

	for i, datum := range data {
		el, ok, timedOut := recvTimeout(ch, timeout)
		switch {
		case timedOut:
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		case !ok:
			t.Errorf("channel closed early, expecting i=%d %v", i, datum)
			return
		}
		assert.Equal(t, datum, el)
	}

	el, ok, timedOut := recvTimeout(ch, timeout)
	switch {
	case timedOut:
		t.Error("at the end of draining, channel was empty but unclosed")
	case ok:
		t.Errorf("channel should be closed, but received: %v", el)
	}
}

func recvTimeout[T any](ch <-chan T, timeout time.Duration) (el T, ok, timedOut bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case el, ok = <-ch:
		return el, ok, false
	case <-timer.C:
		return el, false, true
	}
}
