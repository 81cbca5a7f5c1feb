// Package metrics counts catalog requests and their outcomes.
//
// Metrics live in a private registry. A CLI has no scrape endpoint, so when
// metrics.textfile is set the registry is dumped on exit in the Prometheus
// text format for a node_exporter textfile collector.
//
// Exported series:
//   - animedex_requests_total{operation, outcome}
//   - animedex_request_duration_seconds{operation}
//   - animedex_stale_results_total{controller}
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every animedex series.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	requestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "animedex_requests_total",
		Help: "Catalog requests by operation and outcome",
	}, []string{"operation", "outcome"})

	requestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "animedex_request_duration_seconds",
		Help:    "Catalog request latency by operation",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	staleResults = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "animedex_stale_results_total",
		Help: "Results dropped because a newer request superseded them",
	}, []string{"controller"})
)

// ObserveRequest records one finished request.
func ObserveRequest(operation, outcome string, took time.Duration) {
	requestsTotal.WithLabelValues(operation, outcome).Inc()
	requestDuration.WithLabelValues(operation).Observe(took.Seconds())
}

// StaleResult records a result discarded by a fetch controller.
func StaleResult(controller string) {
	staleResults.WithLabelValues(controller).Inc()
}

// WriteTextfile dumps the registry to path atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}

// StaleResultsFor returns the stale result counter of controller.
func StaleResultsFor(controller string) prometheus.Counter {
	return staleResults.WithLabelValues(controller)
}
