// format.go — fmt.Formatter implementation for TryError.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, structured multi-line format:
//	             kind=<kind> msg="<message>" src=<source> at=<RFC3339>
//	             ctx: key1=val1 key2=val2 ...
//	             cause: <recursively formatted with %+v>
//	             stack:
//	               funcA file.go:123
//	               funcB other.go:45
//
// Rationale:
//   - Keep the core free of logging/JSON policy; only fmt formatting.
//   - Deterministic context order via the []Field representation.
//   - Defer cause formatting to fmt with %+v to preserve nested detail.
package xgxtry

import (
	"fmt"
	"io"
	"time"
)

// Format implements fmt.Formatter.
func (e *TryError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		e.formatConcise(s)
	case 's':
		e.formatConcise(s)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		e.formatConcise(s)
	}
}

func (e *TryError) formatConcise(w io.Writer) {
	// write errors are ignored on formatting paths
	_, _ = io.WriteString(w, e.Error())
}

func (e *TryError) formatVerbose(w io.Writer) {
	// Header: kind + msg + source + timestamp.
	if e.kind != "" {
		_, _ = fmt.Fprintf(w, "kind=%s ", e.kind)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", e.msg)
	if e.source != "" {
		_, _ = fmt.Fprintf(w, " src=%s", e.source)
	}
	if !e.at.IsZero() {
		_, _ = fmt.Fprintf(w, " at=%s", e.at.Format(time.RFC3339))
	}

	// Context (ordered, space-separated key=val).
	if len(e.ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range e.ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	// Cause, recursing with %+v so nested records render fully.
	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}

	// Stack frames, most recent first.
	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
