package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements the relay's MetricsCollector using Prometheus
type Collector struct {
	queries            *prometheus.CounterVec
	connectionTests    *prometheus.CounterVec
	repositoryListings *prometheus.CounterVec
	upstreamDuration   *prometheus.HistogramVec
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		queries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphdb_relay_queries_total",
				Help: "Total number of relayed SPARQL queries",
			},
			[]string{"outcome"},
		),
		connectionTests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphdb_relay_connection_tests_total",
				Help: "Total number of connection tests",
			},
			[]string{"outcome"},
		),
		repositoryListings: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphdb_relay_repository_listings_total",
				Help: "Total number of repository listings",
			},
			[]string{"outcome"},
		),
		upstreamDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphdb_relay_upstream_request_duration_seconds",
				Help:    "Upstream GraphDB request duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"operation"},
		),
	}
}

// RecordQuery records one relayed query and its upstream duration
func (c *Collector) RecordQuery(outcome string, duration time.Duration) {
	c.queries.WithLabelValues(outcome).Inc()
	c.upstreamDuration.WithLabelValues("query").Observe(duration.Seconds())
}

// RecordConnectionTest records one connection test and its upstream duration
func (c *Collector) RecordConnectionTest(outcome string, duration time.Duration) {
	c.connectionTests.WithLabelValues(outcome).Inc()
	c.upstreamDuration.WithLabelValues("test_connection").Observe(duration.Seconds())
}

// RecordRepositoryListing records one repository listing and its upstream duration
func (c *Collector) RecordRepositoryListing(outcome string, duration time.Duration) {
	c.repositoryListings.WithLabelValues(outcome).Inc()
	c.upstreamDuration.WithLabelValues("list_repositories").Observe(duration.Seconds())
}
