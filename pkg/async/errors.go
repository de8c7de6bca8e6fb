package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the duration elapses first.
	ErrTimeout = errors.New("async: timeout waiting for future")

	// ErrNoFutures is returned by WaitAny when called without futures.
	ErrNoFutures = errors.New("async: no futures provided")
)
