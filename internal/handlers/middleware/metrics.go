package middleware

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/slok/go-http-metrics/metrics/prometheus"
	httpmetrics "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
)

// MetricsMiddleware records request duration, size and in-flight gauges to
// the given registry. Served back on /metrics.
// The registry is per router, so building several routers in one process is
// safe.
func MetricsMiddleware(registry *prom.Registry) func(http.Handler) http.Handler {
	mw := httpmetrics.New(httpmetrics.Config{
		Recorder: prometheus.NewRecorder(prometheus.Config{Registry: registry}),
	})

	return func(next http.Handler) http.Handler {
		return std.Handler("", mw, next)
	}
}
