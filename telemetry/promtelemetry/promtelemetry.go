// Package promtelemetry exposes telemetry traffic as Prometheus metrics:
// captured failures by kind, events by name, and a breadcrumb counter.
//
// The provider does not export error payloads — metrics carry cardinality-
// safe labels only (the open-ended Kind space is assumed to stay small; the
// event name label is the caller's responsibility).
package promtelemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	xgxtry "github.com/xgx-io/xgx-try"
	"github.com/xgx-io/xgx-try/telemetry"
)

// Provider counts telemetry traffic on a Prometheus registry.
type Provider struct {
	errors      *prometheus.CounterVec
	events      *prometheus.CounterVec
	breadcrumbs prometheus.Counter
}

// New builds a Provider and registers its collectors on reg (the default
// registerer when nil). Registration conflicts surface as errors; the
// provider holds no other failure modes.
func New(reg prometheus.Registerer) (*Provider, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Provider{
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xgxtry",
			Subsystem: "telemetry",
			Name:      "errors_total",
			Help:      "Captured failures reported to telemetry, by kind.",
		}, []string{"kind"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xgxtry",
			Subsystem: "telemetry",
			Name:      "events_total",
			Help:      "Application events reported to telemetry, by event name.",
		}, []string{"event"}),
		breadcrumbs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "xgxtry",
			Subsystem: "telemetry",
			Name:      "breadcrumbs_total",
			Help:      "Breadcrumbs recorded ahead of failures.",
		}),
	}
	for _, c := range []prometheus.Collector{p.errors, p.events, p.breadcrumbs} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("promtelemetry: register collector: %w", err)
		}
	}
	return p, nil
}

// MustNew is New panicking on registration failure; convenient at program
// start where a metrics conflict is a programming error.
func MustNew(reg prometheus.Registerer) *Provider {
	p, err := New(reg)
	if err != nil {
		panic(err)
	}
	return p
}

// Name implements telemetry.Provider.
func (p *Provider) Name() string { return "prometheus" }

// ReportError implements telemetry.ErrorReporter.
func (p *Provider) ReportError(err *xgxtry.TryError, _ map[string]any) {
	p.errors.WithLabelValues(string(err.Kind())).Inc()
}

// ReportEvent implements telemetry.EventReporter.
func (p *Provider) ReportEvent(name string, _ map[string]any) {
	p.events.WithLabelValues(name).Inc()
}

// AddBreadcrumb implements telemetry.BreadcrumbRecorder.
func (p *Provider) AddBreadcrumb(_ telemetry.Breadcrumb) {
	p.breadcrumbs.Inc()
}

var (
	_ telemetry.Provider           = (*Provider)(nil)
	_ telemetry.ErrorReporter      = (*Provider)(nil)
	_ telemetry.EventReporter      = (*Provider)(nil)
	_ telemetry.BreadcrumbRecorder = (*Provider)(nil)
)
