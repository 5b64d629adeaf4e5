// predicates_test.go — verification of the structural error-value check and
// the chain-traversal helpers.
package xgxtry

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// shapedImpostor is an unrelated type that coincidentally exposes the
// error-value method set. It documents the known misclassification risk of
// structural detection.
type shapedImpostor struct{}

func (shapedImpostor) Kind() Kind            { return "Impostor" }
func (shapedImpostor) Message() string       { return "not really an error value" }
func (shapedImpostor) Source() string        { return "nowhere" }
func (shapedImpostor) OccurredAt() time.Time { return time.Time{} }

func TestIsErrorValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    any
		want bool
	}{
		{"TryError", New(KindError, "x"), true},
		{"nil", nil, false},
		{"typed nil TryError", (*TryError)(nil), false},
		{"plain error", errors.New("x"), false},
		{"string", "x", false},
		{"success value", 42, false},
		// Structural detection by design: a matching method set passes,
		// even on a foreign type.
		{"coincidentally shaped type", shapedImpostor{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsErrorValue(tc.v); got != tc.want {
				t.Fatalf("want=%v got=%v", tc.want, got)
			}
		})
	}
}

func TestKindOf_And_HasKind(t *testing.T) {
	t.Parallel()

	te := New(KindTimeout, "slow")
	if KindOf(te) != KindTimeout {
		t.Fatalf("KindOf: got %s", KindOf(te))
	}
	// Wrapped in a foreign layer, errors.As still finds the kind.
	wrapped := fmt.Errorf("outer: %w", te)
	if KindOf(wrapped) != KindTimeout {
		t.Fatal("KindOf must traverse unwrap chains")
	}
	if !HasKind(wrapped, KindTimeout) || HasKind(wrapped, KindNetwork) {
		t.Fatal("HasKind classification wrong")
	}
	if KindOf(nil) != "" || HasKind(nil, KindError) {
		t.Fatal("nil handling wrong")
	}
	if !IsUnknownKind(FromRecovered("boom", "")) {
		t.Fatal("panic-built record must report the unknown kind")
	}
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	if RootCause(nil) != nil {
		t.Fatal("nil in, nil out")
	}
	leaf := errors.New("leaf")
	chain := Wrap(fmt.Errorf("mid: %w", leaf), "top")
	if RootCause(chain) != leaf {
		t.Fatalf("want leaf, got %v", RootCause(chain))
	}
	plain := errors.New("alone")
	if RootCause(plain) != plain {
		t.Fatal("unwrapped error is its own root")
	}
}

func TestHas(t *testing.T) {
	t.Parallel()

	leaf := errors.New("leaf")
	te := Wrap(leaf, "ctx")
	if !Has(te, leaf) {
		t.Fatal("target in chain not found")
	}
	if Has(te, errors.New("other")) {
		t.Fatal("false positive")
	}
	if Has(nil, leaf) || Has(te, nil) {
		t.Fatal("nil handling wrong")
	}
}
