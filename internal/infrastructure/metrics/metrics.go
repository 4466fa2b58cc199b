package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes recorded for the DNA backend integration.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

var (
	// HTTP request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vexa",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vexa",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// DNA backend binding outcome, incremented once per process
	DNABindTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vexa",
			Subsystem: "gateway",
			Name:      "dna_bind_total",
			Help:      "DNA backend capability binding attempts",
		},
		[]string{"outcome"},
	)

	// Per-operation calls through the integration facade
	DNACallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vexa",
			Subsystem: "gateway",
			Name:      "dna_calls_total",
			Help:      "DNA backend capability calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, endpoint string, status int, durationSeconds float64) {
	RequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordDNACall records one facade call.
func RecordDNACall(operation, outcome string) {
	DNACallsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordDNABind records the startup binding outcome.
func RecordDNABind(success bool) {
	outcome := OutcomeError
	if success {
		outcome = OutcomeOK
	}
	DNABindTotal.WithLabelValues(outcome).Inc()
}
