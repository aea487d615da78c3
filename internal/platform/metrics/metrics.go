// Package metrics provides Prometheus metrics for the delivery cost service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus collectors for the service.
type Manager struct {
	registry *prometheus.Registry

	// Business metrics
	quotesComputed     prometheus.Counter
	coefficientUpdates prometheus.Counter
	contactSubmissions prometheus.Counter

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Custom registry so the default Go runtime collectors stay out of /metrics.
var globalManager = NewManager(prometheus.NewRegistry())

// NewManager registers all collectors on the given registry.
func NewManager(registry *prometheus.Registry) *Manager {
	auto := promauto.With(registry)

	return &Manager{
		registry: registry,
		quotesComputed: auto.NewCounter(prometheus.CounterOpts{
			Namespace: "delivery",
			Subsystem: "api",
			Name:      "quotes_computed_total",
			Help:      "Total number of delivery cost estimates computed",
		}),
		coefficientUpdates: auto.NewCounter(prometheus.CounterOpts{
			Namespace: "delivery",
			Subsystem: "api",
			Name:      "coefficient_updates_total",
			Help:      "Total number of successful coefficient updates",
		}),
		contactSubmissions: auto.NewCounter(prometheus.CounterOpts{
			Namespace: "delivery",
			Subsystem: "api",
			Name:      "contact_submissions_total",
			Help:      "Total number of stored contact form submissions",
		}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "delivery",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status",
		}, []string{"endpoint", "method", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "delivery",
			Subsystem: "api",
			Name:      "http_request_duration_milliseconds",
			Help:      "Histogram of HTTP request duration in milliseconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "method", "status"}),
	}
}

func RecordQuoteComputed() {
	globalManager.quotesComputed.Inc()
}

func RecordCoefficientUpdate() {
	globalManager.coefficientUpdates.Inc()
}

func RecordContactSubmission() {
	globalManager.contactSubmissions.Inc()
}

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// GetRegistry exposes the registry for the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}
