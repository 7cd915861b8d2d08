package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "demo", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "demo", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "demo", Name: "http_requests_total", Help: "HTTP requests by method, route and status code."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "demo", Name: "http_request_duration_seconds", Help: "HTTP request latency by method and route.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	ProjectOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "demo", Name: "project_operations_total", Help: "Project operations by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	ProjectsStreamed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "demo", Name: "projects_streamed_total", Help: "Projects emitted by the delayed stream."},
	)
	WordCountRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "demo", Name: "word_count_requests_total", Help: "Word-count rankings computed by strategy."},
		[]string{"strategy"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(ProjectOperations)
	reg.MustRegister(ProjectsStreamed)
	reg.MustRegister(WordCountRequests)
}
