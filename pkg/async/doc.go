// Package async provides a small generic Future used to hand results across
// goroutines.
//
// Future[U] represents the result of a computation that may still be
// running. Await blocks until it completes, AwaitWithTimeout bounds the wait,
// and IsComplete polls without blocking.
//
// Run a function in its own goroutine:
//
//	future := async.Async(ctx, userID, fetchUser)
//	user, err := future.Await()
//
// Wrap a value that is already known, for example a synchronously rendered
// page that must satisfy an asynchronous interface:
//
//	future := async.Completed(page, nil)
//
// WaitAll collects the results of several futures in order and returns the
// first error encountered.
//
// # Errors
//
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
//   - ErrNoFutures: returned when WaitAny is called with no futures
//
// If a context is cancelled before the async function begins execution, the
// future completes immediately with the context's error.
package async
