// Package metrics holds the Prometheus collectors the site exports on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeInvalid   = "invalid"
)

// Metrics groups the site's collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	APIRequests *prometheus.CounterVec
	Fallbacks   *prometheus.CounterVec
	Submissions *prometheus.CounterVec
	LateUpdates prometheus.Counter
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "musb_api_requests_total",
			Help: "Backend API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "musb_content_fallbacks_total",
			Help: "Reads that substituted a static default for the fetched collection.",
		}, []string{"collection"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "musb_form_submissions_total",
			Help: "Form submissions by form and final state.",
		}, []string{"form", "outcome"}),
		LateUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "musb_live_late_updates_total",
			Help: "Filter updates that arrived after their view was torn down.",
		}),
	}
	reg.MustRegister(m.APIRequests, m.Fallbacks, m.Submissions, m.LateUpdates)
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveAPI counts one backend request.
func (m *Metrics) ObserveAPI(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.APIRequests.WithLabelValues(endpoint, outcome).Inc()
}

// ObserveFallback counts one default substitution.
func (m *Metrics) ObserveFallback(collection string) {
	if m == nil {
		return
	}
	m.Fallbacks.WithLabelValues(collection).Inc()
}

// ObserveSubmission counts one finished submission.
func (m *Metrics) ObserveSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(form, outcome).Inc()
}

// ObserveLateUpdate counts one update delivered to a torn-down view.
func (m *Metrics) ObserveLateUpdate() {
	if m == nil {
		return
	}
	m.LateUpdates.Inc()
}
