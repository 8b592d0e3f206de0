// Package metrics provides Prometheus metrics for the agreement backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the backend.
type Metrics struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	ApprovalsTotal      *prometheus.CounterVec
	CheckinsTotal       *prometheus.CounterVec
	DissolutionsTotal   *prometheus.CounterVec
	ApproveRetriesTotal prometheus.Counter

	registry *prometheus.Registry
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tandem_http_requests_total",
				Help: "Total number of HTTP requests by route and status code.",
			},
			[]string{"route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tandem_http_request_duration_seconds",
				Help:    "HTTP request processing duration by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		ApprovalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tandem_agreement_approvals_total",
				Help: "Total number of approval decisions by outcome.",
			},
			[]string{"outcome"},
		),
		CheckinsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tandem_checkins_total",
				Help: "Total number of recorded check-ins by status.",
			},
			[]string{"status"},
		),
		DissolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tandem_dissolutions_total",
				Help: "Total number of dissolution workflow steps by step.",
			},
			[]string{"step"},
		),
		ApproveRetriesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tandem_approve_retries_total",
				Help: "Total number of approval compare-and-swap retries.",
			},
		),
		registry: reg,
	}

	reg.MustRegister(m.RequestsTotal)
	reg.MustRegister(m.RequestDuration)
	reg.MustRegister(m.ApprovalsTotal)
	reg.MustRegister(m.CheckinsTotal)
	reg.MustRegister(m.DissolutionsTotal)
	reg.MustRegister(m.ApproveRetriesTotal)

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest increments the request counter.
func (m *Metrics) RecordRequest(route, status string) {
	m.RequestsTotal.WithLabelValues(route, status).Inc()
}

// ObserveDuration records request duration.
func (m *Metrics) ObserveDuration(route string, seconds float64) {
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}

// RecordApproval increments the approval counter.
func (m *Metrics) RecordApproval(outcome string) {
	m.ApprovalsTotal.WithLabelValues(outcome).Inc()
}

// RecordApproveRetry increments the approval CAS retry counter.
func (m *Metrics) RecordApproveRetry() {
	m.ApproveRetriesTotal.Inc()
}

// RecordCheckin increments the check-in counter.
func (m *Metrics) RecordCheckin(status string) {
	m.CheckinsTotal.WithLabelValues(status).Inc()
}

// RecordDissolutionStep increments the dissolution step counter.
func (m *Metrics) RecordDissolutionStep(step string) {
	m.DissolutionsTotal.WithLabelValues(step).Inc()
}
