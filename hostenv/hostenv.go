// Package hostenv classifies the current execution environment into one of
// a small fixed set of categories: server, client, or edge.
//
// Detection is a pure function of ambient host indicators — the compiled
// GOOS and a handful of well-known environment markers set by edge/serverless
// platforms. It is total: corrupted, missing, or wrong-typed indicators never
// cause a panic, and every call is a fresh read (no cached classification).
package hostenv

import (
	"os"
	"runtime"
	"strings"
)

// Kind is an environment category. The set is small and fixed; detection
// always returns one of the declared constants.
type Kind string

const (
	// Server is an ordinary operating-system process. It is also the
	// documented fallback when nothing else is recognized.
	Server Kind = "server"
	// Client is a browser-adjacent runtime (js/wasm or WASI builds).
	Client Kind = "client"
	// Edge is a serverless/edge platform identified by its ambient markers.
	Edge Kind = "edge"
)

// Kinds returns the fixed category set in priority order.
func Kinds() []Kind {
	return []Kind{Edge, Client, Server}
}

// edgeMarkers are environment variables set by edge/serverless platforms.
// First non-empty marker wins. The list is intentionally short; platforms
// that behave like ordinary servers (containers, VMs) are not listed.
var edgeMarkers = []string{
	"AWS_LAMBDA_FUNCTION_NAME", // AWS Lambda
	"FUNCTION_TARGET",          // Google Cloud Functions
	"VERCEL",                   // Vercel functions
	"CF_PAGES",                 // Cloudflare Pages
	"FASTLY_HOSTNAME",          // Fastly Compute
}

// Detector classifies the execution environment. The zero value probes the
// real host (runtime.GOOS, os.Getenv); tests inject their own probes.
type Detector struct {
	// GOOS overrides the compiled target OS when non-empty.
	GOOS string
	// Getenv overrides the environment probe when non-nil. A probe that
	// panics is treated as an empty environment.
	Getenv func(string) string
}

// Detect classifies the current environment. Priority order, first match
// wins: edge markers → Edge; js/wasm or wasip1 GOOS → Client; otherwise
// Server. Never panics.
func (d Detector) Detect() Kind {
	goos := d.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, marker := range edgeMarkers {
		if strings.TrimSpace(lookup(getenv, marker)) != "" {
			return Edge
		}
	}
	if goos == "js" || goos == "wasip1" {
		return Client
	}
	return Server
}

// Detect classifies the current environment using host defaults.
func Detect() Kind {
	return Detector{}.Detect()
}

// lookup shields Detect from a panicking probe; a corrupted environment
// reads as empty rather than throwing.
func lookup(getenv func(string) string, key string) (val string) {
	defer func() {
		if recover() != nil {
			val = ""
		}
	}()
	return getenv(key)
}
