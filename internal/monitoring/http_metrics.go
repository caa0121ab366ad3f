package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics contains all metrics for HTTP request monitoring
type HTTPMetrics struct {
	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	inFlightRequests *prometheus.GaugeVec

	// ledger business metrics
	ledgerOperations *prometheus.CounterVec
	requestsByStatus *prometheus.GaugeVec
}

func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "drx_backend_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
			},
			[]string{"method", "path", "status"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drx_backend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		inFlightRequests: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "drx_backend_http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
			[]string{"method", "path"},
		),

		ledgerOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "drx_backend_ledger_operations_total",
				Help: "Total number of ledger operations",
			},
			[]string{"operation", "status"},
		),

		requestsByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "drx_backend_requests_by_status",
				Help: "Current number of withdraw and bridge requests per status",
			},
			[]string{"kind", "status"},
		),
	}
}

// MustRegister registers all HTTP metrics with the provided registry
func (m *HTTPMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.inFlightRequests,
		m.ledgerOperations,
		m.requestsByStatus,
	)
}

// RecordLedgerOperation counts a ledger mutation attempt and its outcome
func (m *HTTPMetrics) RecordLedgerOperation(operation, status string) {
	m.ledgerOperations.WithLabelValues(operation, status).Inc()
}

// SetRequestsByStatus publishes the current request trail breakdown
func (m *HTTPMetrics) SetRequestsByStatus(kind, status string, count int) {
	m.requestsByStatus.WithLabelValues(kind, status).Set(float64(count))
}

// HTTPMetricsMiddleware creates a Gin middleware for HTTP metrics collection
func HTTPMetricsMiddleware(metrics *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		method := c.Request.Method

		// FullPath is empty for unmatched routes (404s)
		if path == "" {
			path = c.Request.URL.Path
		}

		metrics.inFlightRequests.WithLabelValues(method, path).Inc()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		metrics.requestDuration.WithLabelValues(method, path, status).Observe(duration)
		metrics.requestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.inFlightRequests.WithLabelValues(method, path).Dec()
	}
}
