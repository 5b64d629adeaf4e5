// doc.go — package documentation for xgx-try
//
// Package xgxtry converts failure-by-panic and failure-by-return into
// explicit result values. It provides an immutable error record (TryError),
// guarded execution wrappers that never let a failure escape as a panic, and
// a small process-wide configuration layer for environment-aware enrichment.
// It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free in the core (no logging/HTTP/JSON rules here; telemetry
//     adapters live in the telemetry subpackage)
//
// # The Guarantee
//
// Every guard in this package upholds one invariant: no panic crosses a
// guard boundary. Whatever the wrapped operation does — return an error,
// panic with an error, panic with a string or any other value — the guard
// returns a Result carrying either the success value or a *TryError.
//
//	res := xgxtry.Do(func() (Config, error) { return loadConfig(path) })
//	if res.IsError() {
//	    return res.Err()
//	}
//
// The only sanctioned way back into panic-land is Result.Unwrap, an explicit
// escape hatch for callers who want fail-fast semantics after inspecting a
// Result.
//
// # Guard Variants
//
//	+----------------+----------------------------------------------------+
//	| Guard          | Shape                                              |
//	+----------------+----------------------------------------------------+
//	| Do             | func() (T, error) → Result[T]                      |
//	| DoVal          | func() T          → Result[T] (panic-only guard)   |
//	| Tuple          | func() (T, error) → (T, *TryError) pair            |
//	| Call           | fn + positional args via reflection → Result[any]  |
//	| Auto           | func() any; waits if the value can Settle          |
//	| async.Do       | func() (T, error) → *Future[T] (subpackage)        |
//	+----------------+----------------------------------------------------+
//
// Deferred execution lives in the async subpackage so that synchronous-only
// consumers never link the goroutine machinery.
//
// # Error Values
//
// A TryError is a tagged, immutable record: an open-ended Kind string, a
// message, a best-effort source label (file:line of the construction site),
// a construction timestamp, ordered key-value context, an optional cause,
// and an optional stack. All fluent methods are copy-on-write; a TryError
// that has been handed to another goroutine or a telemetry backend never
// changes underneath it.
//
// FromRecovered is total over any input: it never panics, whatever was
// thrown. Values that already carry the TryError shape pass through
// unchanged (no double wrapping).
//
// # Enrichment
//
// Configure installs per-runtime enrichment handlers keyed by the
// classification from the hostenv subpackage (server, client, edge). When
// enabled, a freshly built TryError is offered to the handler for the
// current runtime; a handler that is missing, panics, or returns something
// that is not a valid error value is ignored and the original record is
// kept. Enrichment is strictly best-effort and never degrades construction.
//
// # Structural Detection Caveat
//
// IsErrorValue is a structural predicate: it tests for the error-value
// method set (kind, message, source, timestamp), not for the concrete
// *TryError type. An unrelated type that coincidentally exposes those four
// accessors will be classified as an error value. This is an inherited,
// documented trade-off of shape-based detection; see predicates.go.
package xgxtry
