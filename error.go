// error.go — the TryError record.
//
// TryError is the tagged value a guard returns in place of a panic. It is
// immutable once constructed: every fluent method returns a NEW value
// (copy-on-write) and never alters the receiver. This makes shared error
// values safe across goroutines and keeps provenance reproducible for
// logs and tests without external synchronization.
//
// Interop:
//   - error and fmt.Formatter are implemented (format.go).
//   - Unwrap() error exposes the cause so errors.Is/As traverse the chain.
package xgxtry

import (
	"fmt"
	"time"
)

// TryError is an immutable record describing a captured failure.
//
// The zero value is not useful; build one with New, FromRecovered, From, or
// Wrap, or receive one from a guard.
type TryError struct {
	kind   Kind
	msg    string
	source string
	at     time.Time
	ctx    fields
	cause  error
	stk    Stack
}

// Kind returns the failure category.
func (e *TryError) Kind() Kind { return e.kind }

// Message returns the human-readable description.
func (e *TryError) Message() string { return e.msg }

// Source returns the best-effort origin label (a "file.go:line" call site,
// or "unknown" when unresolvable).
func (e *TryError) Source() string { return e.source }

// OccurredAt returns the construction timestamp. It is assigned exactly once
// and never copied from foreign input.
func (e *TryError) OccurredAt() time.Time { return e.at }

// Context returns a shallow COPY of the attached context as a map, or nil
// when no context is attached. Callers may mutate the returned map freely
// (copy-on-read). Duplicate keys resolve last-write-wins.
func (e *TryError) Context() map[string]any { return ctxToMap(e.ctx) }

// Unwrap returns the causal error (the originally thrown value, wrapped if
// it was not itself an error), or nil. Enables errors.Is/As traversal.
func (e *TryError) Unwrap() error { return e.cause }

// StackTrace returns a copy of the captured stack, or nil when none was
// captured.
func (e *TryError) StackTrace() Stack {
	if len(e.stk) == 0 {
		return nil
	}
	out := make(Stack, len(e.stk))
	copy(out, e.stk)
	return out
}

// Error implements the error interface with a concise one-line message.
func (e *TryError) Error() string {
	if e.msg == "" {
		if e.kind != "" {
			return string(e.kind)
		}
		return "error"
	}
	if e.kind != "" {
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	}
	return e.msg
}

// Ctx attaches optional structured context and, if the current message is
// empty, sets it to msg. It does NOT concatenate messages; progressive
// detail belongs in context fields, not in growing ": "-joined strings.
// Returns a NEW TryError.
func (e *TryError) Ctx(msg string, kv ...any) *TryError {
	n := e.clone()
	if msg != "" && n.msg == "" {
		n.msg = msg
	}
	if len(kv) > 0 {
		n.ctx = ctxCloneAppend(n.ctx, ctxFromKV(kv...)...)
	}
	return n
}

// With adds a single key-value context field. Returns a NEW TryError.
func (e *TryError) With(key string, val any) *TryError {
	n := e.clone()
	n.ctx = ctxCloneAppend(n.ctx, Field{Key: key, Val: val})
	return n
}

// WithKind sets the failure category. Returns a NEW TryError.
func (e *TryError) WithKind(k Kind) *TryError {
	n := e.clone()
	n.kind = k
	return n
}

// WithMessage overwrites the message entirely. Returns a NEW TryError.
func (e *TryError) WithMessage(msg string) *TryError {
	n := e.clone()
	n.msg = msg
	return n
}

// WithSource overrides the origin label. Returns a NEW TryError.
func (e *TryError) WithSource(source string) *TryError {
	n := e.clone()
	if source == "" {
		source = sourceUnknown
	}
	n.source = source
	return n
}

// WithStack attaches a stack trace captured at the call site.
// Returns a NEW TryError.
func (e *TryError) WithStack() *TryError {
	return e.WithStackSkip(1)
}

// WithStackSkip is like WithStack but skips additional call frames
// (useful inside helper wrappers). Returns a NEW TryError.
func (e *TryError) WithStackSkip(skip int) *TryError {
	n := e.clone()
	n.stk = captureStackDefault(skip + 1) // +1 to skip this method
	return n
}

// clone produces a copy with an isolated context slice. The stack is a value
// slice of immutable frames; a shallow copy suffices.
func (e *TryError) clone() *TryError {
	n := *e
	if len(e.ctx) > 0 {
		copied := make(fields, len(e.ctx))
		copy(copied, e.ctx)
		n.ctx = copied
	} else {
		n.ctx = emptyFields
	}
	return &n
}

var _ error = (*TryError)(nil)
