package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusAdapter struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	urgentItems     prometheus.Gauge
	migrations      *prometheus.CounterVec
	recommendations *prometheus.CounterVec
}

// NewPrometheusAdapter registers the tracker's collectors with the default registry.
func NewPrometheusAdapter() *PrometheusAdapter {
	return NewPrometheusAdapterWith(prometheus.DefaultRegisterer)
}

func NewPrometheusAdapterWith(reg prometheus.Registerer) *PrometheusAdapter {
	a := &PrometheusAdapter{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		urgentItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "maintenance_urgent_items",
			Help: "Urgent maintenance items across the fleet",
		}),
		migrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snapshot_migrations_total",
			Help: "Snapshot schema migrations performed",
		}, []string{"from", "to"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Recommendation requests by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(a.requests, a.duration, a.urgentItems, a.migrations, a.recommendations)
	return a
}

func (a *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())
	a.requests.WithLabelValues(c.Request.Method, path, status).Inc()
	a.duration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}

func (a *PrometheusAdapter) SetUrgentItems(n int) {
	a.urgentItems.Set(float64(n))
}

func (a *PrometheusAdapter) IncMigration(from, to string) {
	a.migrations.WithLabelValues(from, to).Inc()
}

func (a *PrometheusAdapter) IncRecommendation(outcome string) {
	a.recommendations.WithLabelValues(outcome).Inc()
}
