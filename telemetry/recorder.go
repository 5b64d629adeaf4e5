// recorder.go — in-memory capture provider.
package telemetry

import (
	"sync"

	xgxtry "github.com/xgx-io/xgx-try"
)

// RecordedError is one captured ReportError call.
type RecordedError struct {
	Err *xgxtry.TryError
	Ctx map[string]any
}

// RecordedEvent is one captured ReportEvent call.
type RecordedEvent struct {
	Name string
	Data map[string]any
}

// Recorder is an in-memory provider implementing every capability. It exists
// for tests and local inspection: register one, run the code under test,
// then assert on what reached it.
type Recorder struct {
	name string

	mu          sync.Mutex
	errors      []RecordedError
	events      []RecordedEvent
	breadcrumbs []Breadcrumb
	tags        map[string]string
	contexts    map[string]map[string]any
	user        *User
}

// NewRecorder builds a Recorder registered under name ("recorder" when
// empty).
func NewRecorder(name string) *Recorder {
	if name == "" {
		name = "recorder"
	}
	return &Recorder{
		name:     name,
		tags:     make(map[string]string),
		contexts: make(map[string]map[string]any),
	}
}

// Name implements Provider.
func (r *Recorder) Name() string { return r.name }

// ReportError implements ErrorReporter.
func (r *Recorder) ReportError(err *xgxtry.TryError, ctx map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, RecordedError{Err: err, Ctx: ctx})
}

// ReportEvent implements EventReporter.
func (r *Recorder) ReportEvent(name string, data map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, RecordedEvent{Name: name, Data: data})
}

// AddBreadcrumb implements BreadcrumbRecorder.
func (r *Recorder) AddBreadcrumb(b Breadcrumb) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breadcrumbs = append(r.breadcrumbs, b)
}

// SetUser implements UserBinder.
func (r *Recorder) SetUser(u User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = &u
}

// ClearUser implements UserBinder.
func (r *Recorder) ClearUser() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = nil
}

// SetTags implements TagSetter.
func (r *Recorder) SetTags(tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range tags {
		r.tags[k] = v
	}
}

// SetContext implements ContextSetter.
func (r *Recorder) SetContext(key string, ctx map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx == nil {
		delete(r.contexts, key)
		return
	}
	r.contexts[key] = ctx
}

// Errors returns the captured error reports in arrival order.
func (r *Recorder) Errors() []RecordedError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedError, len(r.errors))
	copy(out, r.errors)
	return out
}

// Events returns the captured events in arrival order.
func (r *Recorder) Events() []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Breadcrumbs returns the captured breadcrumbs in arrival order.
func (r *Recorder) Breadcrumbs() []Breadcrumb {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Breadcrumb, len(r.breadcrumbs))
	copy(out, r.breadcrumbs)
	return out
}

// User returns the current user, or nil when cleared/never set.
func (r *Recorder) User() *User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.user == nil {
		return nil
	}
	u := *r.user
	return &u
}

// Tags returns a copy of the accumulated tags.
func (r *Recorder) Tags() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneTags(r.tags)
}

var (
	_ Provider           = (*Recorder)(nil)
	_ ErrorReporter      = (*Recorder)(nil)
	_ EventReporter      = (*Recorder)(nil)
	_ BreadcrumbRecorder = (*Recorder)(nil)
	_ UserBinder         = (*Recorder)(nil)
	_ TagSetter          = (*Recorder)(nil)
	_ ContextSetter      = (*Recorder)(nil)
)
