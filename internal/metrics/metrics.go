// Package metrics provides Prometheus instrumentation for the MCP server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ToolCallsTotal counts tool invocations by tool name and outcome.
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chainfulness",
			Name:      "tool_calls_total",
			Help:      "Total MCP tool invocations by tool and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	// ToolCallDuration observes tool invocation latency by tool name.
	ToolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chainfulness",
			Name:      "tool_call_duration_seconds",
			Help:      "Tool invocation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"tool"},
	)

	// UpstreamRequestsTotal counts upstream API requests by resource type,
	// URL suffix, and status bucket.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chainfulness",
			Name:      "upstream_requests_total",
			Help:      "Total upstream API requests by resource, suffix, and status bucket.",
		},
		[]string{"resource", "suffix", "status"},
	)

	// UpstreamRequestDuration observes upstream request latency.
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chainfulness",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource", "suffix"},
	)

	// PoolTableRows reports how many reference rows were loaded at startup.
	PoolTableRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "chainfulness",
		Name:      "pool_table_rows",
		Help:      "Number of reference pool rows loaded at startup.",
	})
)

func init() {
	prometheus.MustRegister(
		ToolCallsTotal,
		ToolCallDuration,
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		PoolTableRows,
	)
}

// ObserveUpstream records one upstream request. status 0 means the request
// never produced a response (transport failure or timeout).
func ObserveUpstream(resource, suffix string, status int, started time.Time) {
	UpstreamRequestsTotal.WithLabelValues(resource, suffix, statusBucket(status)).Inc()
	UpstreamRequestDuration.WithLabelValues(resource, suffix).Observe(time.Since(started).Seconds())
}

// ObserveToolCall records one tool invocation.
func ObserveToolCall(tool, outcome string, started time.Time) {
	ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
	ToolCallDuration.WithLabelValues(tool).Observe(time.Since(started).Seconds())
}

// Handler returns the Prometheus metrics HTTP handler for the diagnostics
// listener's /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// statusBucket groups HTTP status codes into buckets (2xx, 3xx, 4xx, 5xx).
func statusBucket(code int) string {
	switch {
	case code <= 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
