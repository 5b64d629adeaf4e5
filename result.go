// result.go — the value-or-TryError union returned by guards.
package xgxtry

import (
	"errors"
	"fmt"
)

// Result is either a success value of type T or a captured *TryError.
// The zero Result is a success holding T's zero value.
type Result[T any] struct {
	val T
	err *TryError
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Fail returns a failed Result holding e. A nil e is equivalent to Ok with
// T's zero value.
func Fail[T any](e *TryError) Result[T] {
	return Result[T]{err: e}
}

// IsError reports whether the Result carries a failure.
func (r Result[T]) IsError() bool { return r.err != nil }

// Value returns the success value and the failure; exactly one is
// meaningful. On failure the value is T's zero value.
func (r Result[T]) Value() (T, *TryError) { return r.val, r.err }

// Err returns the captured failure, or nil on success.
func (r Result[T]) Err() *TryError { return r.err }

// Unwrap returns the success value, or panics on failure. It is the single
// intentional re-throw path of the package: callers use it for fail-fast
// semantics after inspecting a Result (or when a failure is truly
// unrecoverable).
//
// With a message argument, the panic carries a NEW error built from that
// message. Without one, the panic carries an error wrapping the captured
// failure.
func (r Result[T]) Unwrap(msg ...string) T {
	if r.err == nil {
		return r.val
	}
	if len(msg) > 0 && msg[0] != "" {
		panic(errors.New(msg[0]))
	}
	panic(fmt.Errorf("unwrap of failed result: %w", r.err))
}

// UnwrapOr returns the success value, or fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.val
}
