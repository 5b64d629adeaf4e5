// Package natstelemetry publishes telemetry traffic to NATS subjects as
// JSON, letting downstream consumers aggregate failures from many processes.
//
// Subjects are derived from a configurable prefix:
//
//	<prefix>.errors       error reports
//	<prefix>.events       application events
//	<prefix>.breadcrumbs  breadcrumbs
//
// Publishing is fire-and-forget; a failed publish is logged, never
// propagated (the dispatcher swallows provider failures anyway, but this
// provider does not rely on that).
package natstelemetry

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	xgxtry "github.com/xgx-io/xgx-try"
	"github.com/xgx-io/xgx-try/telemetry"
)

// DefaultSubjectPrefix is used when no prefix is supplied.
const DefaultSubjectPrefix = "xgxtry.telemetry"

// errorReport is the wire shape of a published failure.
type errorReport struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Source  string         `json:"source"`
	At      time.Time      `json:"at"`
	Context map[string]any `json:"context,omitempty"`
}

// eventReport is the wire shape of a published event.
type eventReport struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data,omitempty"`
	At   time.Time      `json:"at"`
}

// breadcrumbReport is the wire shape of a published breadcrumb.
type breadcrumbReport struct {
	Category string         `json:"category"`
	Message  string         `json:"message"`
	Data     map[string]any `json:"data,omitempty"`
	At       time.Time      `json:"at"`
}

// Provider publishes telemetry traffic over a NATS connection.
type Provider struct {
	conn   *nats.Conn
	prefix string
	log    *slog.Logger
}

// New builds a Provider over conn. An empty prefix falls back to
// DefaultSubjectPrefix; a nil logger falls back to slog.Default.
func New(conn *nats.Conn, prefix string, log *slog.Logger) *Provider {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	if log == nil {
		log = slog.Default()
	}
	return &Provider{conn: conn, prefix: prefix, log: log}
}

// Name implements telemetry.Provider.
func (p *Provider) Name() string { return "nats" }

// ErrorSubject returns the subject error reports are published to.
func (p *Provider) ErrorSubject() string { return p.prefix + ".errors" }

// EventSubject returns the subject events are published to.
func (p *Provider) EventSubject() string { return p.prefix + ".events" }

// BreadcrumbSubject returns the subject breadcrumbs are published to.
func (p *Provider) BreadcrumbSubject() string { return p.prefix + ".breadcrumbs" }

// ReportError implements telemetry.ErrorReporter.
func (p *Provider) ReportError(err *xgxtry.TryError, ctx map[string]any) {
	p.publish(p.ErrorSubject(), errorReport{
		Kind:    string(err.Kind()),
		Message: err.Message(),
		Source:  err.Source(),
		At:      err.OccurredAt(),
		Context: ctx,
	})
}

// ReportEvent implements telemetry.EventReporter.
func (p *Provider) ReportEvent(name string, data map[string]any) {
	p.publish(p.EventSubject(), eventReport{Name: name, Data: data, At: time.Now()})
}

// AddBreadcrumb implements telemetry.BreadcrumbRecorder.
func (p *Provider) AddBreadcrumb(b telemetry.Breadcrumb) {
	p.publish(p.BreadcrumbSubject(), breadcrumbReport{
		Category: b.Category,
		Message:  b.Message,
		Data:     b.Data,
		At:       b.At,
	})
}

// publish marshals v and publishes it. Context values are caller-supplied
// and may not be JSON-encodable; encoding failures are logged and dropped
// like any other publish failure.
func (p *Provider) publish(subject string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		p.log.Warn("nats telemetry encode failed", "subject", subject, "err", err)
		return
	}
	if p.conn == nil {
		p.log.Warn("nats telemetry publish skipped: no connection", "subject", subject)
		return
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		p.log.Warn("nats telemetry publish failed", "subject", subject, "err", err)
	}
}

var (
	_ telemetry.Provider           = (*Provider)(nil)
	_ telemetry.ErrorReporter      = (*Provider)(nil)
	_ telemetry.EventReporter      = (*Provider)(nil)
	_ telemetry.BreadcrumbRecorder = (*Provider)(nil)
)
