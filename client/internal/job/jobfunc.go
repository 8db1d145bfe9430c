package job

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilJobFunc is returned when a JobFunc is nil.
var ErrNilJobFunc = errors.New("nil JobFunc")

// Func is a unit of work producing a value.
type Func[T any] func(context.Context) (T, error)

// Run executes f, guarding against a nil function.
func (f Func[T]) Run(ctx context.Context) (T, error) {
	if f == nil {
		var zero T
		return zero, fmt.Errorf("jobfunc: %w", ErrNilJobFunc)
	}
	return f(ctx)
}

// Future is the pending result of a Func started with Go.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go starts fn on its own goroutine and returns immediately. fn runs under
// ctx to completion; nothing in the future cancels it.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("job panic: %v", r)
			}
		}()
		f.val, f.err = Func[T](fn).Run(ctx)
	}()
	return f
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the result is ready or ctx ends. Giving up on the wait
// does not stop the underlying work.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
