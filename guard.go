// guard.go — guarded execution wrappers.
//
// Every guard upholds the package invariant: no panic crosses the boundary.
// The wrapped operation's failure — a returned error or a panic with any
// value — terminates in a returned *TryError, converted at the SINGLE
// recover point inside run. Nothing else in the package recovers on behalf
// of callers.
//
// Transforms: a caller-supplied Transform receives the ORIGINAL failure
// signal (the returned error or the panic payload), not the pre-built
// record, so it performs its own shape inspection. A transform that panics
// or returns nil is discarded and the untransformed record is used;
// customization is best-effort and never breaks the guarantee.
package xgxtry

import (
	"fmt"
	"reflect"
)

// Transform customizes the TryError built for a failure. It receives the
// originally thrown/returned value.
type Transform func(recovered any) *TryError

// Settler is the capability a deferred value exposes so that Auto can wait
// for settlement. async.Future implements it; the interface lives here so
// synchronous-only consumers never import the async machinery.
type Settler interface {
	// Settle blocks until the deferred operation completes and returns its
	// outcome.
	Settle() (any, error)
}

// Do executes op inside a guard and returns its outcome as a Result.
// A returned error and a panic are both captured as a *TryError; a normal
// return yields the value unchanged.
func Do[T any](op func() (T, error), transforms ...Transform) Result[T] {
	return run(callSite(1), transforms, op)
}

// DoVal is Do for operations without an error return; only panics are
// captured.
func DoVal[T any](op func() T, transforms ...Transform) Result[T] {
	return run(callSite(1), transforms, func() (T, error) {
		return op(), nil
	})
}

// Tuple executes op inside a guard and returns a positional pair in the
// multi-value-return idiom: (value, nil) on success, (zero, err) on failure.
// Exactly one side is meaningful.
func Tuple[T any](op func() (T, error)) (T, *TryError) {
	r := run(callSite(1), nil, op)
	return r.val, r.err
}

// Auto executes op inside a guard, then inspects the returned value: when it
// exposes the Settler capability the guard waits for settlement and applies
// the same success/failure handling to the settled outcome; otherwise the
// value is taken as-is. Callers must not assume which path ran.
//
// Transforms are applied immediately upon catching a failure, on either
// path, identical to Do.
func Auto(op func() any, transforms ...Transform) Result[any] {
	source := callSite(1)
	r := run(source, transforms, func() (any, error) {
		return op(), nil
	})
	if r.IsError() {
		return r
	}
	s, ok := r.val.(Settler)
	if !ok {
		return r
	}
	return run(source, transforms, s.Settle)
}

// Call invokes fn with the given positional arguments inside a guard,
// avoiding an intermediate closure. Behaviorally identical to Do otherwise:
// a trailing non-nil error return or any panic (including reflection's own
// panics for a non-function fn or mismatched arguments) becomes a failure.
// The success value is fn's first non-error return, or nil when fn returns
// nothing.
func Call(fn any, args ...any) Result[any] {
	return run(callSite(1), nil, func() (any, error) {
		fv := reflect.ValueOf(fn)
		if !fv.IsValid() || fv.Kind() != reflect.Func {
			panic(fmt.Sprintf("xgxtry: Call target is %T, not a function", fn))
		}
		ft := fv.Type()
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			if a == nil {
				// Untyped nil needs the parameter's zero value.
				in[i] = reflect.Zero(paramType(ft, i))
				continue
			}
			in[i] = reflect.ValueOf(a)
		}
		return interpretReturns(fv.Call(in))
	})
}

// run is the single guard boundary. The recover here is the only place a
// wrapped operation's panic is converted; source was resolved at the guard's
// own call site before op ran.
func run[T any](source string, transforms []Transform, op func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](capture(r, source, transforms))
		}
	}()
	v, err := op()
	if err != nil {
		return Fail[T](capture(err, source, transforms))
	}
	return Ok(v)
}

// capture builds the TryError for a failure signal and applies the optional
// transform. Transform failures fall back to the untransformed record.
func capture(v any, source string, transforms []Transform) *TryError {
	te := FromRecovered(v, source)
	if len(transforms) == 0 || transforms[0] == nil {
		return te
	}
	if out := applyTransform(transforms[0], v); out != nil {
		return out
	}
	return te
}

// applyTransform runs the transform in its own boundary; a panicking
// transform yields nil so the caller keeps the original record.
func applyTransform(tr Transform, v any) (out *TryError) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	return tr(v)
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// paramType resolves the declared type of positional argument i, unrolling
// the variadic tail. On arity mismatch it falls back to any and lets
// reflect.Call raise its own panic, which the guard captures.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	if i < ft.NumIn() {
		return ft.In(i)
	}
	return reflect.TypeOf((*any)(nil)).Elem()
}

// interpretReturns maps reflected return values onto the (value, error)
// contract: a trailing error-typed return is the failure signal, the first
// remaining value (if any) is the success value.
func interpretReturns(outs []reflect.Value) (any, error) {
	if len(outs) == 0 {
		return nil, nil
	}
	last := outs[len(outs)-1]
	if last.Type().Implements(errType) {
		var err error
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		if len(outs) == 1 {
			return nil, err
		}
		return outs[0].Interface(), err
	}
	return outs[0].Interface(), nil
}
