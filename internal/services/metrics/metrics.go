package metrics

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const divisor = 100

// Metrics holds Prometheus metric vectors for the weather service.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP server metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Domain metrics
	WeatherRequestsTotal *prometheus.CounterVec
	WeatherErrorsTotal   *prometheus.CounterVec
}

// NewMetrics constructs and registers all weather-service metrics.
func NewMetrics(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests received",
			},
			[]string{"method", "endpoint", "status_class"},
		),

		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of HTTP request latencies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		WeatherRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "weather_requests_total",
				Help:      "Total number of locality weather requests",
			},
			[]string{"locality"},
		),

		WeatherErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "weather_errors_total",
				Help:      "Total number of locality weather errors",
			},
			[]string{"locality", "error_type"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WeatherRequestsTotal,
		m.WeatherErrorsTotal,
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/sched/latencies:seconds")},
			),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IncWeatherRequest counts one locality weather request.
func (m *Metrics) IncWeatherRequest(locality string) {
	m.WeatherRequestsTotal.WithLabelValues(locality).Inc()
}

// IncWeatherError counts one failed locality weather request by error bucket.
func (m *Metrics) IncWeatherError(locality, errType string) {
	m.WeatherErrorsTotal.WithLabelValues(locality, errType).Inc()
}

// HTTPMiddleware returns a Gin middleware to instrument HTTP endpoints.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		d := time.Since(start)

		status := c.Writer.Status()
		statusClass := getStatusClass(status)

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, statusClass).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(d.Seconds())
	}
}

func getStatusClass(status int) string {
	return fmt.Sprintf("%dxx", status/divisor)
}
