// Package telemetry fans error reports, events, breadcrumbs, and user
// context out to pluggable provider backends.
//
// Providers are registered by name; the first registration of a name wins
// and later duplicates are silently ignored. Dispatch visits providers in
// registration order, and every provider invocation runs inside its own
// failure boundary: one backend panicking never blocks the remaining
// backends and never reaches the dispatcher's caller. Failures are logged
// and swallowed — observability is strictly additive and must not degrade
// the primary error/success contract of the guards.
//
// A Dispatcher is an explicit object; a process-lifetime default instance
// backs the package-level functions.
package telemetry

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	xgxtry "github.com/xgx-io/xgx-try"
)

// User identifies the acting user for providers that track one.
type User struct {
	ID    string
	Email string
	Name  string
}

// Breadcrumb is a lightweight trail entry recorded ahead of a failure.
type Breadcrumb struct {
	Category string
	Message  string
	Data     map[string]any
	At       time.Time
}

// Provider is the minimal contract a backend must satisfy. Everything else
// is optional capability interfaces, type-asserted per dispatch.
type Provider interface {
	Name() string
}

// ErrorReporter receives captured failures.
type ErrorReporter interface {
	ReportError(err *xgxtry.TryError, ctx map[string]any)
}

// EventReporter receives named application events.
type EventReporter interface {
	ReportEvent(name string, data map[string]any)
}

// UserBinder tracks the acting user.
type UserBinder interface {
	SetUser(u User)
	ClearUser()
}

// BreadcrumbRecorder receives breadcrumbs.
type BreadcrumbRecorder interface {
	AddBreadcrumb(b Breadcrumb)
}

// TagSetter receives process-wide tags.
type TagSetter interface {
	SetTags(tags map[string]string)
}

// ContextSetter receives named context blocks.
type ContextSetter interface {
	SetContext(key string, ctx map[string]any)
}

// Dispatcher is a registry of named providers plus the process-wide
// tags/context merged into every error report. Safe for concurrent use.
type Dispatcher struct {
	mu        sync.RWMutex
	providers []Provider // registration order is dispatch order
	names     map[string]struct{}
	enabled   bool
	tags      map[string]string
	contexts  map[string]map[string]any
	log       *slog.Logger
}

// NewDispatcher returns an enabled Dispatcher with no providers. A nil
// logger falls back to slog.Default.
func NewDispatcher(log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		names:    make(map[string]struct{}),
		enabled:  true,
		tags:     make(map[string]string),
		contexts: make(map[string]map[string]any),
		log:      log,
	}
}

// Register adds a provider. It reports false and does nothing when p is nil,
// its name is empty, or a provider of the same name is already registered
// (first registration wins).
func (d *Dispatcher) Register(p Provider) bool {
	if p == nil || p.Name() == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, dup := d.names[p.Name()]; dup {
		return false
	}
	d.names[p.Name()] = struct{}{}
	d.providers = append(d.providers, p)
	return true
}

// Unregister removes the provider with the given name, reporting whether one
// was removed.
func (d *Dispatcher) Unregister(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.names[name]; !ok {
		return false
	}
	delete(d.names, name)
	for i, p := range d.providers {
		if p.Name() == name {
			d.providers = append(d.providers[:i], d.providers[i+1:]...)
			break
		}
	}
	return true
}

// SetEnabled toggles all dispatch operations; when disabled every dispatch
// is a no-op.
func (d *Dispatcher) SetEnabled(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = on
}

// Enabled reports whether dispatch is active.
func (d *Dispatcher) Enabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.enabled
}

// SetGlobalTags merges tags into the process-wide tag set attached to every
// error report.
func (d *Dispatcher) SetGlobalTags(tags map[string]string) {
	d.mu.Lock()
	for k, v := range tags {
		d.tags[k] = v
	}
	snapshot := cloneTags(d.tags)
	d.mu.Unlock()
	d.each("SetTags", func(p Provider) {
		if ts, ok := p.(TagSetter); ok {
			ts.SetTags(snapshot)
		}
	})
}

// SetGlobalContext stores a named context block attached to every error
// report. A nil ctx removes the block.
func (d *Dispatcher) SetGlobalContext(key string, ctx map[string]any) {
	d.mu.Lock()
	if ctx == nil {
		delete(d.contexts, key)
	} else {
		d.contexts[key] = cloneCtx(ctx)
	}
	d.mu.Unlock()
	d.each("SetContext", func(p Provider) {
		if cs, ok := p.(ContextSetter); ok {
			cs.SetContext(key, cloneCtx(ctx))
		}
	})
}

// ReportError fans a captured failure out to every registered error
// reporter. Process-wide tags and context blocks are merged into the
// per-call context first; per-call keys win on collision, and every report
// is stamped with a unique event_id.
func (d *Dispatcher) ReportError(err *xgxtry.TryError, ctx map[string]any) {
	if err == nil {
		return
	}
	merged := d.mergeContext(ctx)
	d.each("ReportError", func(p Provider) {
		if er, ok := p.(ErrorReporter); ok {
			er.ReportError(err, merged)
		}
	})
}

// ReportEvent fans a named event out to every registered event reporter.
func (d *Dispatcher) ReportEvent(name string, data map[string]any) {
	d.each("ReportEvent", func(p Provider) {
		if er, ok := p.(EventReporter); ok {
			er.ReportEvent(name, data)
		}
	})
}

// SetUser forwards the acting user to every user-tracking provider.
func (d *Dispatcher) SetUser(u User) {
	d.each("SetUser", func(p Provider) {
		if ub, ok := p.(UserBinder); ok {
			ub.SetUser(u)
		}
	})
}

// ClearUser clears the acting user on every user-tracking provider.
func (d *Dispatcher) ClearUser() {
	d.each("ClearUser", func(p Provider) {
		if ub, ok := p.(UserBinder); ok {
			ub.ClearUser()
		}
	})
}

// AddBreadcrumb forwards a breadcrumb to every recorder. A zero At is
// stamped with the current time.
func (d *Dispatcher) AddBreadcrumb(b Breadcrumb) {
	if b.At.IsZero() {
		b.At = time.Now()
	}
	d.each("AddBreadcrumb", func(p Provider) {
		if br, ok := p.(BreadcrumbRecorder); ok {
			br.AddBreadcrumb(b)
		}
	})
}

// Reset removes every provider and clears tags, context, and the enabled
// flag back to defaults. Intended for test isolation.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.providers = nil
	d.names = make(map[string]struct{})
	d.enabled = true
	d.tags = make(map[string]string)
	d.contexts = make(map[string]map[string]any)
}

// each snapshots the provider list and invokes fn for every provider inside
// an isolation boundary. A panicking provider is logged and skipped; the
// remaining providers still run.
func (d *Dispatcher) each(op string, fn func(Provider)) {
	d.mu.RLock()
	if !d.enabled {
		d.mu.RUnlock()
		return
	}
	snapshot := make([]Provider, len(d.providers))
	copy(snapshot, d.providers)
	log := d.log
	d.mu.RUnlock()

	for _, p := range snapshot {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Warn("telemetry provider panicked",
						"provider", p.Name(),
						"op", op,
						"panic", r,
					)
				}
			}()
			fn(p)
		}()
	}
}

// mergeContext builds the per-report context: global context blocks first,
// then global tags under "tags", then per-call entries (which win), then a
// fresh event id.
func (d *Dispatcher) mergeContext(ctx map[string]any) map[string]any {
	d.mu.RLock()
	merged := make(map[string]any, len(d.contexts)+len(ctx)+2)
	for k, c := range d.contexts {
		merged[k] = cloneCtx(c)
	}
	if len(d.tags) > 0 {
		merged["tags"] = cloneTags(d.tags)
	}
	d.mu.RUnlock()
	for k, v := range ctx {
		merged[k] = v
	}
	merged["event_id"] = uuid.NewString()
	return merged
}

func cloneTags(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneCtx(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// defaultDispatcher backs the package-level API.
var defaultDispatcher = NewDispatcher(nil)

// Default returns the process-lifetime dispatcher.
func Default() *Dispatcher { return defaultDispatcher }

// RegisterProvider adds a provider to the default dispatcher.
func RegisterProvider(p Provider) bool { return defaultDispatcher.Register(p) }

// UnregisterProvider removes a provider from the default dispatcher.
func UnregisterProvider(name string) bool { return defaultDispatcher.Unregister(name) }

// SetEnabled toggles the default dispatcher.
func SetEnabled(on bool) { defaultDispatcher.SetEnabled(on) }

// ReportError reports a failure through the default dispatcher.
func ReportError(err *xgxtry.TryError, ctx map[string]any) { defaultDispatcher.ReportError(err, ctx) }

// ReportEvent reports an event through the default dispatcher.
func ReportEvent(name string, data map[string]any) { defaultDispatcher.ReportEvent(name, data) }

// SetUser forwards the acting user through the default dispatcher.
func SetUser(u User) { defaultDispatcher.SetUser(u) }

// ClearUser clears the acting user through the default dispatcher.
func ClearUser() { defaultDispatcher.ClearUser() }

// AddBreadcrumb records a breadcrumb through the default dispatcher.
func AddBreadcrumb(b Breadcrumb) { defaultDispatcher.AddBreadcrumb(b) }

// SetGlobalTags merges process-wide tags on the default dispatcher.
func SetGlobalTags(tags map[string]string) { defaultDispatcher.SetGlobalTags(tags) }

// SetGlobalContext stores a named context block on the default dispatcher.
func SetGlobalContext(key string, ctx map[string]any) { defaultDispatcher.SetGlobalContext(key, ctx) }
