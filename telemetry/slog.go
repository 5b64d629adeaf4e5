// slog.go — structured-log provider.
package telemetry

import (
	"log/slog"

	xgxtry "github.com/xgx-io/xgx-try"
)

// SlogProvider writes every telemetry signal to a structured logger. It is
// the zero-infrastructure backend: errors at Error level, events at Info,
// breadcrumbs and user changes at Debug.
type SlogProvider struct {
	log *slog.Logger
}

// NewSlogProvider builds a provider over log; nil falls back to
// slog.Default.
func NewSlogProvider(log *slog.Logger) *SlogProvider {
	if log == nil {
		log = slog.Default()
	}
	return &SlogProvider{log: log}
}

// Name implements Provider.
func (s *SlogProvider) Name() string { return "slog" }

// ReportError implements ErrorReporter.
func (s *SlogProvider) ReportError(err *xgxtry.TryError, ctx map[string]any) {
	s.log.Error(err.Message(),
		"kind", string(err.Kind()),
		"source", err.Source(),
		"occurred_at", err.OccurredAt(),
		"context", ctx,
	)
}

// ReportEvent implements EventReporter.
func (s *SlogProvider) ReportEvent(name string, data map[string]any) {
	s.log.Info("telemetry event", "event", name, "data", data)
}

// AddBreadcrumb implements BreadcrumbRecorder.
func (s *SlogProvider) AddBreadcrumb(b Breadcrumb) {
	s.log.Debug("breadcrumb",
		"category", b.Category,
		"message", b.Message,
		"data", b.Data,
		"at", b.At,
	)
}

// SetUser implements UserBinder.
func (s *SlogProvider) SetUser(u User) {
	s.log.Debug("telemetry user set", "user_id", u.ID)
}

// ClearUser implements UserBinder.
func (s *SlogProvider) ClearUser() {
	s.log.Debug("telemetry user cleared")
}

var (
	_ Provider           = (*SlogProvider)(nil)
	_ ErrorReporter      = (*SlogProvider)(nil)
	_ EventReporter      = (*SlogProvider)(nil)
	_ BreadcrumbRecorder = (*SlogProvider)(nil)
	_ UserBinder         = (*SlogProvider)(nil)
)
