// Package metrics registers the gateway's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_logins_total",
		Help: "Successful logins by method (password, oauth).",
	}, []string{"method"})

	Logouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gateway_logouts_total",
		Help: "Explicit logouts.",
	})

	GuardRedirects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_guard_redirects_total",
		Help: "Redirects issued by route guards.",
	}, []string{"guard"})

	backendRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_backend_request_duration_seconds",
		Help:    "Latency of calls to the grading backend.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// ObserveBackendRequest records one backend call. A zero status means
// the request never produced a response (network failure).
func ObserveBackendRequest(method string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	backendRequests.WithLabelValues(method, label).Observe(elapsed.Seconds())
}
