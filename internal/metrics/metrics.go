// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package metrics

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Instrumentation for:
// - MongoDB operations per collection
// - API endpoint latency and throughput
// - Media store uploads and deletes
// - Media store circuit breaker

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongodb_operation_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	DBUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongodb_up",
			Help: "Whether the last MongoDB ping succeeded (1) or failed (0)",
		},
	)

	DBOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongodb_operation_errors_total",
			Help: "Total number of MongoDB operation errors",
		},
		[]string{"operation", "collection", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Media Store Metrics
	MediaOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_store_operation_duration_seconds",
			Help:    "Duration of media store operations in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"backend", "operation"}, // operation: "upload", "delete_image", "delete_video"
	)

	MediaOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_store_operations_total",
			Help: "Total number of media store operations by result",
		},
		[]string{"backend", "operation", "result"}, // result: "ok", "not_found", "error"
	)

	MediaUploadBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_store_upload_bytes_total",
			Help: "Total bytes uploaded to the media store",
		},
		[]string{"backend", "kind"}, // kind: "video", "image"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Domain Metrics
	DomainEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videotube_domain_events_total",
			Help: "Total number of successful domain mutations",
		},
		[]string{"entity", "action"}, // e.g. entity="playlist", action="add_video"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBOperation records a database operation metric
func RecordDBOperation(operation, collection string, duration time.Duration, err error) {
	DBOperationDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		DBOperationErrors.WithLabelValues(operation, collection, classify(err)).Inc()
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		return errorType
	}
}

// SetDBUp records the outcome of the last database ping.
func SetDBUp(up bool) {
	if up {
		DBUp.Set(1)
		return
	}
	DBUp.Set(0)
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordMediaOperation records a media store call and its outcome.
// result is "ok", "not_found" or "error".
func RecordMediaOperation(backend, operation, result string, duration time.Duration) {
	MediaOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	MediaOperationsTotal.WithLabelValues(backend, operation, result).Inc()
}

// RecordMediaUpload records the size of a stored blob
func RecordMediaUpload(backend, kind string, size int64) {
	if size > 0 {
		MediaUploadBytes.WithLabelValues(backend, kind).Add(float64(size))
	}
}

// RecordDomainEvent counts a successful mutation
func RecordDomainEvent(entity, action string) {
	DomainEvents.WithLabelValues(entity, action).Inc()
}

// SetAppInfo publishes the running version
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// StartUptimeTracker updates AppUptime every interval until stop is closed.
func StartUptimeTracker(start time.Time, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				AppUptime.Set(time.Since(start).Seconds())
			case <-stop:
				return
			}
		}
	}()
}
