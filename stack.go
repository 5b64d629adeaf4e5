// stack.go — best-effort stack and call-site capture for xgx-try.
//
// Goals:
//   - Correct frame resolution via runtime.Callers + runtime.CallersFrames
//     (handles inlined calls).
//   - Bounded depth; capture only on failure paths, never on success.
//   - Call-site labels ("pkg/file.go:42") for the TryError source field.
package xgxtry

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Frame is a single resolved call site in a captured stack.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path as reported by the runtime
	Line     int     // line number
	Function string  // fully-qualified function name
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// defaultMaxDepth bounds capture work on exceptional paths.
const defaultMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' caller frames beyond
// the capture helpers themselves.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack records up to maxDepth frames, skipping 'skip' initial user
// frames. Internal accounting adds +3 so the first recorded frame lands at
// (or near) the user-visible call site: runtime.Callers itself, captureStack,
// and captureStackDefault each occupy one frame.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// sourceUnknown is the source label used when the call site cannot be resolved.
const sourceUnknown = "unknown"

// callSite returns a short "file.go:line" label for the caller 'skip' frames
// up, or sourceUnknown when the runtime cannot resolve one. skip follows the
// runtime.Caller convention: 0 is callSite itself, 1 its caller, and so on.
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok || file == "" {
		return sourceUnknown
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
