// benchmark_test.go — cost of the guard boundary and of construction.
package xgxtry

import (
	"errors"
	"testing"
)

func BenchmarkDo_Success(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		res := Do(func() (int, error) { return i, nil })
		if res.IsError() {
			b.Fatal("unexpected failure")
		}
	}
}

func BenchmarkDo_ReturnedError(b *testing.B) {
	err := errors.New("bench")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		res := Do(func() (int, error) { return 0, err })
		if !res.IsError() {
			b.Fatal("expected failure")
		}
	}
}

func BenchmarkDo_Panic(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		res := Do(func() (int, error) { panic("bench") })
		if !res.IsError() {
			b.Fatal("expected failure")
		}
	}
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(KindValidation, "invalid", "field", "name")
	}
}

func BenchmarkTryError_With(b *testing.B) {
	base := New(KindError, "base", "a", 1, "b", 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base.With("c", i)
	}
}

func BenchmarkIsErrorValue(b *testing.B) {
	te := New(KindError, "x")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !IsErrorValue(te) {
			b.Fatal("misclassified")
		}
	}
}
