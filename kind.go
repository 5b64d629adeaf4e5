// kind.go — failure-kind definitions for the xgx-try core.
//
// Intent:
//   - Provide a small set of widely useful, human-readable kinds.
//   - Keep the space open-ended: kinds are plain strings, no central registry.
//   - Attach no policy here; retry/HTTP/alerting semantics belong to callers.
//
// Conventions (documented, not enforced):
//   - Built-in kinds use UpperCamelCase with an "Error" suffix.
//   - Avoid the empty string for custom kinds; it is never a built-in.
package xgxtry

// Kind classifies a captured failure into a machine-readable category.
//
// Kinds are stringly-typed so that projects can mint their own categories
// without coordinating through a central enum, and so that values survive
// serialization boundaries unchanged.
type Kind string

// Kinds assigned by the constructor itself.
const (
	// KindError marks a failure built from a native error value.
	KindError Kind = "Error"
	// KindUnknown marks a failure built from a non-error panic value
	// (string, int, struct, nil, ...).
	KindUnknown Kind = "UnknownError"
)

// Common caller-assigned kinds. Purely ergonomic; any string works.
const (
	KindValidation Kind = "ValidationError"
	KindNetwork    Kind = "NetworkError"
	KindTimeout    Kind = "TimeoutError"
	KindNotFound   Kind = "NotFoundError"
	KindPermission Kind = "PermissionError"
	KindConfig     Kind = "ConfigError"
)

// allBuiltinKinds is the ordered set of kinds the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
var allBuiltinKinds = []Kind{
	KindError,
	KindUnknown,
	KindValidation,
	KindNetwork,
	KindTimeout,
	KindNotFound,
	KindPermission,
	KindConfig,
}

// builtinKindSet provides O(1) membership checks for built-ins.
var builtinKindSet = map[Kind]struct{}{
	KindError:      {},
	KindUnknown:    {},
	KindValidation: {},
	KindNetwork:    {},
	KindTimeout:    {},
	KindNotFound:   {},
	KindPermission: {},
	KindConfig:     {},
}

// BuiltinKinds returns a defensive copy of the built-in kinds in a stable order.
func BuiltinKinds() []Kind {
	out := make([]Kind, len(allBuiltinKinds))
	copy(out, allBuiltinKinds)
	return out
}

// IsBuiltin reports whether k is one of the built-in core kinds.
// Ergonomics only; projects may define and use custom kinds freely.
func (k Kind) IsBuiltin() bool {
	_, ok := builtinKindSet[k]
	return ok
}
