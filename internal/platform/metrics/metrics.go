// Copyright (c) 2026 Tigerlilly. All rights reserved.

// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers request-level metrics for Prometheus scraping.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	loginsTotal     *prometheus.CounterVec
	iconUploads     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on the registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tigerlilly_http_requests_total",
			Help: "Number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tigerlilly_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		loginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tigerlilly_logins_total",
			Help: "Number of login attempts by outcome.",
		}, []string{"outcome"}),
		iconUploads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tigerlilly_icon_uploads_total",
			Help: "Number of icon files stored.",
		}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.loginsTotal,
		c.iconUploads,
	)

	return c
}

// RecordRequest records a finished HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordLogin records a login attempt. Outcome is "success" or "failure".
func (c *Collector) RecordLogin(outcome string) {
	c.loginsTotal.WithLabelValues(outcome).Inc()
}

// RecordIconUpload records a stored icon file.
func (c *Collector) RecordIconUpload() {
	c.iconUploads.Inc()
}

// Handler returns the scrape endpoint for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type metricsRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *metricsRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// Instrument records request count and latency for every routed request.
// The route label uses the chi pattern (e.g. /articles/{id}) so that
// cardinality stays bounded regardless of parameter values.
func Instrument(collector *Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()
			wrapped := &metricsRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrapped, request)

			route := "unmatched"
			if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
				if pattern := routeContext.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			collector.RecordRequest(request.Method, route, wrapped.status, time.Since(startTime))
		})
	}
}
