// Package metrics holds the Prometheus collectors of the protocols API.
//
// HTTP traffic:
//   - http_request_total: counter with method, path and status labels
//   - http_request_duration_seconds: histogram with method and path labels
//   - http_request_in_flight: gauge of concurrent requests
//
// Domain:
//   - consent_transitions_total: consent gate transitions by family and target state
//   - generation_requests_total: plan generation attempts by family and outcome
//   - plan_persistence_failures_total: generated plans that could not be stored
//   - active_sessions: sessions currently held in memory
//
// Everything is registered with the default registry at package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Generation outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 30, 120},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (clients seen in last ~5 minutes)",
		},
	)

	ConsentTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consent_transitions_total",
			Help: "Consent gate transitions",
		},
		[]string{"family", "to"},
	)

	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Plan generation requests by outcome",
		},
		[]string{"family", "outcome"},
	)

	PlanPersistenceFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plan_persistence_failures_total",
			Help: "Generated plans that could not be persisted",
		},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Sessions currently held in memory",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(ConsentTransitions)
	prometheus.MustRegister(GenerationRequests)
	prometheus.MustRegister(PlanPersistenceFailures)
	prometheus.MustRegister(ActiveSessions)
}
