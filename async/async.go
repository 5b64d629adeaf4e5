// Package async provides the deferred half of the xgx-try guards: an
// operation runs on its own goroutine and its guarded outcome is delivered
// through a Future.
//
// The package is deliberately separate from the root so that synchronous-
// only consumers never link the goroutine machinery. The behavioral contract
// of the guard is identical to the synchronous path: no panic escapes, a
// returned error or a panic becomes a *TryError, and transforms are applied
// immediately upon catching the failure.
//
// There is no cancellation or timeout: a hung operation hangs its Future
// indefinitely. Callers who need deadlines select on Done themselves.
package async

import (
	xgxtry "github.com/xgx-io/xgx-try"
)

// Future is the deferred outcome of a guarded operation. It settles exactly
// once; Wait and Settle may be called any number of times afterwards.
type Future[T any] struct {
	done chan struct{}
	res  xgxtry.Result[T]
}

// Do starts op on its own goroutine inside a guard and returns its Future.
// Success/failure handling matches xgxtry.Do exactly.
func Do[T any](op func() (T, error), transforms ...xgxtry.Transform) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.res = xgxtry.Do(op, transforms...)
	}()
	return f
}

// Resolved returns an already-settled Future holding r. Useful for tests and
// for adapting eagerly computed values into deferred call sites.
func Resolved[T any](r xgxtry.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: r}
	close(f.done)
	return f
}

// Wait blocks until the operation settles and returns its Result.
func (f *Future[T]) Wait() xgxtry.Result[T] {
	<-f.done
	return f.res
}

// Done returns a channel that is closed once the Future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settle blocks until settlement and reports the outcome as (value, error),
// implementing xgxtry.Settler so the root's Auto guard can wait on a Future
// without importing this package.
func (f *Future[T]) Settle() (any, error) {
	r := f.Wait()
	v, err := r.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

var _ xgxtry.Settler = (*Future[any])(nil)
