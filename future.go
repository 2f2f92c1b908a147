package vessel

// Future is the completion handle of an asynchronous operation. It
// resolves exactly once with the operation's final value and can be
// awaited any number of times.
type Future[T any] struct {
	done  chan struct{}
	value T
}

// NewFuture runs fn on its own goroutine and returns a future that
// resolves with fn's return value. The operation cannot be cancelled; once
// started it runs to completion.
func NewFuture[T any](fn func() T) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.value = fn()
		close(f.done)
	}()
	return f
}

// Resolved returns an already-resolved future holding v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Await blocks until the future resolves and returns its value. Calls
// after resolution return the same value without blocking.
func (f *Future[T]) Await() T {
	<-f.done
	return f.value
}

// Done returns a channel that is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
