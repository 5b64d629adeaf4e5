// context.go — immutable structured context for TryError.
//
// Design:
//   - Internal representation: append-only []Field (deterministic order).
//   - Builders are non-mutating: every "change" allocates a new slice.
//   - Public view for callers: copy-on-read map[string]any.
//
// Rationale:
//   - Go map iteration order is unspecified; a slice preserves insertion
//     order for formatting and tests.
//   - Plain append may reuse spare capacity and alias the old backing array;
//     we always allocate fresh when deriving a new context.
package xgxtry

// Field is a single contextual key-value pair attached to a TryError.
// Keys SHOULD be snake_case for consistency, but the core does not enforce it.
type Field struct {
	Key string
	Val any
}

// fields is the internal immutable representation of context.
// Append-only; never modify elements in place once published.
type fields []Field

// emptyFields is the canonical empty context.
var emptyFields = make(fields, 0)

// ctxCloneAppend returns a NEW slice holding dst's contents followed by add.
// A fresh backing array is always allocated to prevent aliasing.
func ctxCloneAppend(dst fields, add ...Field) fields {
	n, m := len(dst), len(add)
	if m == 0 {
		if n == 0 {
			return emptyFields
		}
		out := make(fields, n)
		copy(out, dst)
		return out
	}
	out := make(fields, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// ctxFromKV parses variadic key-value arguments into fields.
//
// Rules:
//   - Pairs are read left-to-right as (key, value).
//   - Keys must be strings; a non-string "key" drops the ENTIRE pair (the
//     bad key and its following value) so later pairs stay aligned.
//   - A trailing key with no value becomes (key, nil).
func ctxFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// ctxToMap builds a NEW map from fields (copy-on-read).
// Later duplicate keys overwrite earlier ones (last-write-wins).
func ctxToMap(fs fields) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
