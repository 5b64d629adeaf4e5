// construct.go — TryError constructors and wrap helpers.
//
// Scope:
//   - New/Newf for direct, caller-tagged construction.
//   - FromRecovered: the total constructor over arbitrary recovered values;
//     the single place where a panic payload becomes a TryError.
//   - From/Wrap/With/Rekind/WithStack: fluent builders applied to ANY error,
//     mirroring the fluent methods on TryError itself.
//
// Every constructor stamps a fresh timestamp and runs best-effort
// environment enrichment (config.go). Pass-through of an existing TryError
// skips both: it was already constructed.
package xgxtry

import (
	"fmt"
	"time"
)

// RecoveredValue wraps a non-error panic payload so it can travel as the
// cause of a TryError and remain inspectable downstream.
type RecoveredValue struct {
	// Value is the original value passed to panic().
	Value any
}

// Error returns a human-readable representation of the recovered value.
func (r *RecoveredValue) Error() string {
	return "recovered: " + stringify(r.Value)
}

// New creates a TryError with an explicit kind, message, and optional
// key-value context. The source label is the caller's file:line.
func New(kind Kind, msg string, kv ...any) *TryError {
	te := &TryError{
		kind:   kind,
		msg:    msg,
		source: callSite(1),
		at:     time.Now(),
		ctx:    ctxFromKV(kv...),
	}
	return defaultConfig.enrich(te)
}

// Newf creates a TryError with a fmt-style message.
func Newf(kind Kind, format string, args ...any) *TryError {
	te := &TryError{
		kind:   kind,
		msg:    fmt.Sprintf(format, args...),
		source: callSite(1),
		at:     time.Now(),
		ctx:    emptyFields,
	}
	return defaultConfig.enrich(te)
}

// FromRecovered converts an arbitrary recovered value into a TryError.
// It is total: it never panics, whatever v is.
//
//   - *TryError (or structurally an error value that IS a *TryError) →
//     returned unchanged, timestamp retained (idempotent pass-through).
//   - error → kind KindError, message copied from the error, the error kept
//     as cause, stack captured at the boundary.
//   - anything else (string, int, nil, struct, ...) → kind KindUnknown,
//     message from best-effort stringification, value preserved inside a
//     *RecoveredValue cause.
//
// source labels the guard boundary; empty means "unknown".
func FromRecovered(v any, source string) *TryError {
	if te, ok := v.(*TryError); ok && te != nil {
		return te
	}
	if source == "" {
		source = sourceUnknown
	}
	te := &TryError{
		source: source,
		at:     time.Now(),
		ctx:    emptyFields,
		stk:    captureStackDefault(1),
	}
	if err, ok := v.(error); ok && err != nil {
		te.kind = KindError
		te.msg = errMessage(err)
		te.cause = err
	} else {
		te.kind = KindUnknown
		te.msg = stringify(v)
		te.cause = &RecoveredValue{Value: v}
	}
	return defaultConfig.enrich(te)
}

// From converts any error into a *TryError without adding context.
//   - nil → nil (contrast Wrap(nil, msg), which creates a fresh record)
//   - *TryError → returned as-is
//   - other error → KindError record with err as cause (no stack capture
//     here; callers opt in via WithStack)
func From(err error) *TryError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TryError); ok {
		return te
	}
	te := &TryError{
		kind:   KindError,
		msg:    errMessage(err),
		source: callSite(1),
		at:     time.Now(),
		ctx:    emptyFields,
		cause:  err,
	}
	return defaultConfig.enrich(te)
}

// Wrap adds a short contextual message and optional key-values to any error.
//   - If err is already a *TryError, it is augmented immutably.
//   - Otherwise err becomes the cause of a fresh KindError record.
func Wrap(err error, msg string, kv ...any) *TryError {
	if err == nil {
		te := &TryError{
			kind:   KindError,
			msg:    msg,
			source: callSite(1),
			at:     time.Now(),
			ctx:    ctxFromKV(kv...),
		}
		return defaultConfig.enrich(te)
	}
	if te, ok := err.(*TryError); ok {
		return te.Ctx(msg, kv...)
	}
	te := &TryError{
		kind:   KindError,
		msg:    msg,
		source: callSite(1),
		at:     time.Now(),
		ctx:    ctxFromKV(kv...),
		cause:  err,
	}
	return defaultConfig.enrich(te)
}

// With attaches a single key-value to any error immutably.
func With(err error, key string, val any) *TryError {
	if te, ok := err.(*TryError); ok && te != nil {
		return te.With(key, val)
	}
	return Wrap(err, "", key, val)
}

// Rekind sets or overrides the failure category on any error immutably.
func Rekind(err error, k Kind) *TryError {
	if te, ok := err.(*TryError); ok && te != nil {
		return te.WithKind(k)
	}
	return Wrap(err, "").WithKind(k)
}

// WithStack attaches a stack trace to any error immutably. For non-TryError
// inputs it wraps first, then captures.
func WithStack(err error) *TryError {
	return WithStackSkip(err, 1)
}

// WithStackSkip attaches a stack, skipping 'skip' frames beyond this call.
func WithStackSkip(err error, skip int) *TryError {
	if te, ok := err.(*TryError); ok && te != nil {
		return te.WithStackSkip(skip + 1)
	}
	return Wrap(err, "").WithStackSkip(skip + 1)
}

// stringify renders v for a message without ever panicking, even when v's
// String/Error methods do.
func stringify(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("unprintable %T value", v)
		}
	}()
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprint(v)
}

// errMessage extracts err.Error() without letting a misbehaving
// implementation panic through the constructor.
func errMessage(err error) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("unprintable %T error", err)
		}
	}()
	return err.Error()
}
