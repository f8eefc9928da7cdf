// Package async provides a minimal future primitive used for the engine's
// two suspension points: remote field validation and asynchronous form
// submission. A Future completes exactly once; callers may block on Await,
// bound the wait with AwaitTimeout, or poll Done.
package async

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned by AwaitTimeout when the future does not complete
// in time. The underlying computation keeps running.
var ErrTimeout = errors.New("async: await timed out")

// Future is the pending result of a computation started with Go.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Go runs fn in its own goroutine and returns its future result. A context
// already cancelled when Go is called short-circuits without invoking fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the computation completes.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitTimeout blocks until completion or the timeout, whichever is first.
func (f *Future[T]) AwaitTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// Done reports completion without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
