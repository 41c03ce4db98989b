package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelibrary_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamelibrary_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamelibrary_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting, by route
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelibrary_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"path"},
	)

	// RemoteCallDuration measures calls made to the remote catalog service
	RemoteCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamelibrary_remote_call_duration_seconds",
			Help:    "Remote catalog call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	// StoreRecords tracks how many games the catalog store currently holds
	StoreRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamelibrary_store_records",
			Help: "Number of games held by the catalog store",
		},
	)

	// ValidationRejections counts rejected candidate fields
	ValidationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelibrary_validation_rejections_total",
			Help: "Total number of rejected game fields",
		},
		[]string{"field"},
	)

	// NotificationsSent counts notification intents by kind
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelibrary_notifications_total",
			Help: "Total number of notifications emitted",
		},
		[]string{"kind"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamelibrary_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamelibrary_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// RecordRemoteCall records the duration and outcome of a remote catalog call
func RecordRemoteCall(operation string, startTime time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	RemoteCallDuration.WithLabelValues(operation, outcome).Observe(time.Since(startTime).Seconds())
}
