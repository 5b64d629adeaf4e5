// context_test.go — verification of the immutable context helpers: pair
// parsing rules, allocation isolation, and copy-on-read map conversion.
package xgxtry

import (
	"testing"
)

func TestCtxFromKV(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		if got := ctxFromKV(); len(got) != 0 {
			t.Fatalf("want empty, got %v", got)
		}
	})
	t.Run("pairs in order", func(t *testing.T) {
		got := ctxFromKV("a", 1, "b", 2)
		if len(got) != 2 || got[0] != (Field{"a", 1}) || got[1] != (Field{"b", 2}) {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("trailing key becomes nil value", func(t *testing.T) {
		got := ctxFromKV("a", 1, "dangling")
		if len(got) != 2 || got[1].Key != "dangling" || got[1].Val != nil {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("non-string key drops the whole pair", func(t *testing.T) {
		got := ctxFromKV(123, "v1", "k2", "v2")
		if len(got) != 1 || got[0] != (Field{"k2", "v2"}) {
			t.Fatalf("misaligned parse: %v", got)
		}
	})
	t.Run("all pairs dropped", func(t *testing.T) {
		if got := ctxFromKV(1, 2, 3, 4); len(got) != 0 {
			t.Fatalf("want empty, got %v", got)
		}
	})
}

func TestCtxCloneAppend_Isolation(t *testing.T) {
	t.Parallel()

	base := ctxFromKV("a", 1)
	grown := ctxCloneAppend(base, Field{"b", 2})
	if len(base) != 1 {
		t.Fatal("base grew")
	}
	if len(grown) != 2 {
		t.Fatalf("append lost fields: %v", grown)
	}
	grown[0].Val = "tampered"
	if base[0].Val != 1 {
		t.Fatal("backing array shared between base and clone")
	}

	// Append of nothing still yields an isolated copy.
	same := ctxCloneAppend(base)
	same[0].Val = "tampered"
	if base[0].Val != 1 {
		t.Fatal("no-op append aliased the original")
	}
}

func TestCtxToMap(t *testing.T) {
	t.Parallel()

	if ctxToMap(nil) != nil {
		t.Fatal("empty context must map to nil")
	}
	m := ctxToMap(ctxFromKV("k", 1, "k", 2))
	if m["k"] != 2 {
		t.Fatalf("last-write-wins violated: %v", m)
	}
}
