package iterator

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items of the range
// will be sent.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
//
// If you need to stop from multiple goroutines, use a sync.Once.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration of the cursor c.
// The usage is as follows:
//
//	co := iterator.CoIterate[T](iterator.NewRange(s.Begin(), s.End()))
//	for x := range co.Items() {
//		... do stuff with x ...
//		if x meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine, which exits when either
// Stop is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop. The container must not be modified
// until then.
func CoIterate[T any](c Cursor[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if c == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, c Cursor[T]) {
		defer close(out)
		for c.Next() {
			select {
			case out <- c.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, c)

	return co
}
