package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the computation to complete and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits at most timeout for the computation to complete.
// Returns ErrTimeout if it does not finish in time.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) in a new goroutine and returns its Future.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents running work for an already canceled caller
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Completed returns a Future that has already finished with v and err.
func Completed[U any](v U, err error) *Future[U] {
	f := &Future[U]{result: v, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// WaitAll waits for every future in order and returns their results.
// Stops at the first error.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, 0, len(futures))
	for _, future := range futures {
		v, err := future.Await()
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// WaitAny returns the index and result of the first future to complete.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}

	// Buffered so the losing goroutines never block after the winner is read
	done := make(chan outcome, len(futures))
	for i, future := range futures {
		go func(index int, f *Future[U]) {
			v, err := f.Await()
			done <- outcome{index: index, result: v, err: err}
		}(i, future)
	}

	res := <-done
	return res.index, res.result, res.err
}
