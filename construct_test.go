// construct_test.go — verification of the constructors: totality over
// arbitrary input, pass-through idempotence, and the wrap helpers.
package xgxtry

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// nastyStringer panics when printed.
type nastyStringer struct{}

func (nastyStringer) String() string { panic("String() bug") }

// nastyError panics when asked for its message.
type nastyError struct{}

func (nastyError) Error() string { panic("Error() bug") }

func TestFromRecovered_Totality(t *testing.T) {
	t.Parallel()

	inputs := []any{
		errors.New("plain error"),
		"a string",
		42,
		nil,
		struct{ X int }{1},
		[]byte("bytes"),
		New(KindValidation, "already shaped"),
		nastyStringer{},
		nastyError{},
	}
	for i, in := range inputs {
		in := in
		t.Run(fmt.Sprintf("input_%d_%T", i, in), func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("FromRecovered panicked for %#v: %v", in, r)
				}
			}()
			te := FromRecovered(in, "guard_test.go:1")
			if te == nil {
				t.Fatal("nil TryError")
			}
			if te.Kind() == "" {
				t.Fatal("kind must always be assigned")
			}
		})
	}
}

func TestFromRecovered_Idempotence(t *testing.T) {
	t.Parallel()

	orig := New(KindNetwork, "once")
	again := FromRecovered(orig, "elsewhere.go:9")
	if again != orig {
		t.Fatal("already-shaped input must pass through unchanged")
	}
	if again.OccurredAt() != orig.OccurredAt() {
		t.Fatal("pass-through must retain the original timestamp")
	}
	// And wrapping the wrap is still the same value.
	if FromRecovered(again, "") != orig {
		t.Fatal("double application must be a no-op")
	}
}

func TestFromRecovered_ErrorInput(t *testing.T) {
	t.Parallel()

	cause := errors.New("root")
	before := time.Now()
	te := FromRecovered(cause, "caller.go:7")
	if te.Kind() != KindError {
		t.Fatalf("kind: want=%s got=%s", KindError, te.Kind())
	}
	if te.Message() != "root" {
		t.Fatalf("msg: want=%q got=%q", "root", te.Message())
	}
	if te.Source() != "caller.go:7" {
		t.Fatalf("source: want=%q got=%q", "caller.go:7", te.Source())
	}
	if te.OccurredAt().Before(before) {
		t.Fatal("timestamp must be freshly assigned")
	}
	if !errors.Is(te, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
}

func TestFromRecovered_NonErrorInput(t *testing.T) {
	t.Parallel()

	te := FromRecovered("raw panic", "")
	if te.Kind() != KindUnknown {
		t.Fatalf("kind: want=%s got=%s", KindUnknown, te.Kind())
	}
	if te.Source() != sourceUnknown {
		t.Fatalf("source: want=%q got=%q", sourceUnknown, te.Source())
	}
	var rv *RecoveredValue
	if !errors.As(te, &rv) {
		t.Fatal("raw value must be preserved as *RecoveredValue cause")
	}
	if rv.Value != "raw panic" {
		t.Fatalf("preserved value: want=%q got=%v", "raw panic", rv.Value)
	}
}

func TestNew_SourceAndContext(t *testing.T) {
	t.Parallel()

	te := New(KindValidation, "field rejected", "field", "email", "rule", "format")
	if !strings.HasPrefix(te.Source(), "construct_test.go:") {
		t.Fatalf("source should name this file, got %q", te.Source())
	}
	ctx := te.Context()
	if ctx["field"] != "email" || ctx["rule"] != "format" {
		t.Fatalf("context lost: %v", ctx)
	}
	if te.Error() != "ValidationError: field rejected" {
		t.Fatalf("Error(): got %q", te.Error())
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	te := Newf(KindTimeout, "gave up after %d tries", 3)
	if te.Message() != "gave up after 3 tries" {
		t.Fatalf("msg: got %q", te.Message())
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()

	if From(nil) != nil {
		t.Fatal("From(nil) must be nil")
	}
	orig := New(KindConfig, "x")
	if From(orig) != orig {
		t.Fatal("From must pass TryError through")
	}
	plain := errors.New("plain")
	te := From(plain)
	if te.Kind() != KindError || !errors.Is(te, plain) {
		t.Fatalf("plain error not wrapped: %+v", te)
	}
	if te.StackTrace() != nil {
		t.Fatal("From must not capture a stack; that is opt-in")
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		te := Wrap(nil, "made fresh", "k", "v")
		if te.Message() != "made fresh" || te.Context()["k"] != "v" {
			t.Fatalf("fresh record wrong: %+v", te)
		}
	})
	t.Run("foreign error", func(t *testing.T) {
		base := errors.New("io closed")
		te := Wrap(base, "read failed", "path", "/tmp/x")
		if te.Message() != "read failed" || !errors.Is(te, base) {
			t.Fatalf("wrap wrong: %+v", te)
		}
	})
	t.Run("existing TryError augments immutably", func(t *testing.T) {
		base := New(KindNetwork, "dial failed")
		te := Wrap(base, "ignored because set", "attempt", 2)
		if te == base {
			t.Fatal("augmentation must produce a new value")
		}
		if te.Message() != "dial failed" {
			t.Fatal("set-once message semantics violated")
		}
		if base.Context()["attempt"] != nil {
			t.Fatal("original mutated")
		}
		if te.Context()["attempt"] != 2 {
			t.Fatal("context not attached")
		}
	})
}

func TestWith_Rekind_WithStack(t *testing.T) {
	t.Parallel()

	base := errors.New("b")
	if With(base, "k", 1).Context()["k"] != 1 {
		t.Fatal("With lost the field")
	}
	if Rekind(base, KindPermission).Kind() != KindPermission {
		t.Fatal("Rekind did not apply")
	}
	te := WithStack(base)
	if len(te.StackTrace()) == 0 {
		t.Fatal("WithStack captured nothing")
	}
	if got := te.StackTrace()[0].Function; !strings.Contains(got, "TestWith_Rekind_WithStack") {
		t.Fatalf("stack should start at this test, got %q", got)
	}
}

func TestStringify_NeverPanics(t *testing.T) {
	t.Parallel()

	// fmt contains the String panic itself; either way a non-empty message
	// must come back without the panic escaping.
	if s := stringify(nastyStringer{}); s == "" {
		t.Fatal("stringify returned empty for panicking stringer")
	}
	if s := stringify(nil); s != "<nil>" {
		t.Fatalf("nil rendering: got %q", s)
	}
	if s := errMessage(nastyError{}); !strings.Contains(s, "nastyError") {
		t.Fatalf("fallback should name the type, got %q", s)
	}
}
