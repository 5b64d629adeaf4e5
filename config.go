// config.go — process-wide configuration for environment-aware enrichment.
//
// A Config is an explicitly constructed object so tests and embedders can
// carry their own instance; a process-lifetime default backs the package-
// level Configure/ResetConfig for ergonomic parity with the rest of the API.
//
// Enrichment policy: when enabled, a freshly constructed TryError is offered
// to the handler registered for the currently detected runtime. A handler
// that is missing, panics, or returns nil is discarded and the original
// record is kept — enrichment is strictly best-effort and never makes
// construction fail or degrade.
package xgxtry

import (
	"sync"

	"github.com/xgx-io/xgx-try/hostenv"
)

// Enricher augments a freshly built TryError for a specific runtime. It
// must treat its input as immutable and return a derived record (the fluent
// methods do this naturally).
type Enricher func(*TryError) *TryError

// Options is the merge payload for Configure/Apply. Nil fields leave the
// corresponding setting unchanged (last-write-wins per field).
type Options struct {
	// EnrichEnabled toggles environment-aware enrichment.
	EnrichEnabled *bool
	// Enrichers maps a runtime category to its handler. Entries merge into
	// the existing mapping; a nil handler removes the entry.
	Enrichers map[hostenv.Kind]Enricher
	// Detect overrides runtime detection, mainly for tests.
	Detect func() hostenv.Kind
}

// Bool is a convenience for Options' pointer fields.
func Bool(v bool) *bool { return &v }

// Config holds the mutable process-wide settings consumed by the TryError
// constructors. Safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	enabled   bool
	enrichers map[hostenv.Kind]Enricher
	detect    func() hostenv.Kind
}

// NewConfig returns a Config with built-in defaults: enrichment disabled,
// no handlers, host-backed detection.
func NewConfig() *Config {
	c := &Config{}
	c.Reset()
	return c
}

// Apply merges o into the configuration, last-write-wins per field.
func (c *Config) Apply(o Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if o.EnrichEnabled != nil {
		c.enabled = *o.EnrichEnabled
	}
	for k, h := range o.Enrichers {
		if h == nil {
			delete(c.enrichers, k)
			continue
		}
		c.enrichers[k] = h
	}
	if o.Detect != nil {
		c.detect = o.Detect
	}
}

// Reset restores built-in defaults. Idempotent; callable repeatedly.
// Primarily supports test isolation.
func (c *Config) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
	c.enrichers = make(map[hostenv.Kind]Enricher)
	c.detect = hostenv.Detect
}

// EnrichEnabled reports whether enrichment is currently on.
func (c *Config) EnrichEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// enrich offers te to the handler for the detected runtime. Any handler
// failure — panic, nil return — leaves te untouched.
func (c *Config) enrich(te *TryError) *TryError {
	c.mu.RLock()
	enabled := c.enabled
	detect := c.detect
	c.mu.RUnlock()

	if !enabled || te == nil {
		return te
	}
	kind := safeDetect(detect)
	c.mu.RLock()
	h := c.enrichers[kind]
	c.mu.RUnlock()
	if h == nil {
		return te
	}
	if out := applyEnricher(h, te); out != nil {
		return out
	}
	return te
}

// applyEnricher isolates handler panics from construction.
func applyEnricher(h Enricher, te *TryError) (out *TryError) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	return h(te)
}

// safeDetect shields enrichment from a panicking detector override.
func safeDetect(detect func() hostenv.Kind) (k hostenv.Kind) {
	defer func() {
		if recover() != nil {
			k = hostenv.Server
		}
	}()
	if detect == nil {
		return hostenv.Detect()
	}
	return detect()
}

// defaultConfig is the process-lifetime instance behind the package-level
// API and the constructors in construct.go.
var defaultConfig = NewConfig()

// Configure merges o into the default configuration.
func Configure(o Options) {
	defaultConfig.Apply(o)
}

// ResetConfig restores the default configuration to built-in defaults.
// Idempotent; intended for test isolation.
func ResetConfig() {
	defaultConfig.Reset()
}
