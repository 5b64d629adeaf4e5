// predicates.go — classification and chain-traversal helpers.
//
// Scope:
//   - IsErrorValue: the structural shape check guards and callers use to
//     tell a success value from a captured failure.
//   - Kind helpers that cooperate with errors.Is/As over wrapped chains.
//   - Nil-safe cause traversal (RootCause, Has).
package xgxtry

import (
	"errors"
	"time"
)

// errorShape is the required method set of an error value: category,
// description, origin, and construction time. Detection is structural on
// purpose — see IsErrorValue.
type errorShape interface {
	Kind() Kind
	Message() string
	Source() string
	OccurredAt() time.Time
}

// IsErrorValue reports whether v carries the error-value shape.
//
// The check is structural (duck-typed): any value exposing the four
// required accessors — Kind, Message, Source, OccurredAt — is classified as
// an error value, regardless of its concrete type. The flip side is that an
// unrelated type coincidentally exposing that method set is misclassified.
// That risk is inherited from the shape-based design and documented rather
// than papered over; callers needing nominal certainty can type-assert
// against *TryError directly.
func IsErrorValue(v any) bool {
	if v == nil {
		return false
	}
	if te, ok := v.(*TryError); ok {
		return te != nil
	}
	_, ok := v.(errorShape)
	return ok
}

// KindOf returns the first Kind discovered along err's unwrap chain, or ""
// when none is found.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var s interface{ Kind() Kind }
	if errors.As(err, &s) {
		return s.Kind()
	}
	return ""
}

// HasKind reports whether any error in err's unwrap chain carries the given
// kind.
func HasKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	var s interface{ Kind() Kind }
	return errors.As(err, &s) && s.Kind() == k
}

// IsUnknownKind reports whether err was built from a non-error panic value.
func IsUnknownKind(err error) bool {
	return HasKind(err, KindUnknown)
}

// RootCause follows Unwrap() error to the deepest cause and returns it.
// Returns nil for nil input; returns err itself when err wraps nothing.
// Traversal is bounded to guard against cyclic chains.
func RootCause(err error) error {
	const maxDepth = 1 << 10
	for depth := 0; err != nil && depth < maxDepth; depth++ {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		next := u.Unwrap()
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// Has reports whether target appears anywhere in err's unwrap chain.
// Nil-safe wrapper over errors.Is.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
