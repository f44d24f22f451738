package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

const metricsNamespace = "autocomment"

// MetricsOption configures NewMetrics.
type MetricsOption func(*metricsOptions)

type metricsOptions struct {
	registerDefaultCollectors bool
}

// WithoutDefaultCollectors skips the Go and process collectors. Useful in tests.
func WithoutDefaultCollectors() MetricsOption {
	return func(o *metricsOptions) {
		o.registerDefaultCollectors = false
	}
}

// Metrics owns the prometheus registry shared by every role in a process.
type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	declarations *prometheus.CounterVec
	comments     prometheus.Counter
}

// NewMetrics creates a registry with the HTTP and annotation collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	settings := metricsOptions{registerDefaultCollectors: true}
	for _, opt := range opts {
		opt(&settings)
	}

	registry := prometheus.NewRegistry()
	if settings.registerDefaultCollectors {
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	metrics := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		declarations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "declarations_total",
			Help:      "Declarations recognized by kind.",
		}, []string{"kind"}),
		comments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "comments_added_total",
			Help:      "Comments inserted into processed sources.",
		}),
	}

	registry.MustRegister(metrics.requests, metrics.duration, metrics.declarations, metrics.comments)

	return metrics
}

// Handler exposes the registry in the prometheus text format.
func (mt *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(mt.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (mt *Metrics) Registry() *prometheus.Registry {
	return mt.registry
}

// ObserveResult records the declaration and comment counts of one result.
func (mt *Metrics) ObserveResult(stats m.Stats) {
	mt.declarations.WithLabelValues(string(m.KindFunction)).Add(float64(stats.Functions))
	mt.declarations.WithLabelValues(string(m.KindClass)).Add(float64(stats.Classes))
	mt.declarations.WithLabelValues(string(m.KindVariable)).Add(float64(stats.Variables))
	mt.comments.Add(float64(stats.CommentsAdded))
}

func (mt *Metrics) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		mt.requests.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		mt.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(status int) {
	if !s.wroteHeader {
		s.status = status
		s.wroteHeader = true
	}

	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(b)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
