// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed at /metrics by the router:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint (chi route pattern), status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rejections by the rate limiter (counter)

Database Metrics:
  - mongodb_operation_duration_seconds: Operation time (histogram)
    Labels: operation (find, aggregate, insert, update, delete, count), collection
  - mongodb_operation_errors_total: Failed operations (counter)
    Labels: operation, collection, error_type
  - mongodb_up: Result of the last background ping (gauge)

Media Store Metrics:
  - media_store_operation_duration_seconds: Upload and delete latency (histogram)
    Labels: backend (s3, filesystem), operation
  - media_store_operations_total: Calls by result (counter)
    Labels: backend, operation, result (ok, not_found, error)
  - media_store_upload_bytes_total: Bytes stored (counter)
    Labels: backend, kind (video, image)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state, 0=closed 1=half-open 2=open (gauge)
  - circuit_breaker_requests_total: Calls by result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total (counter)

Domain Metrics:
  - videotube_domain_events_total: Successful mutations (counter)
    Labels: entity (video, comment, tweet, playlist, subscription, like), action

# Usage

	start := time.Now()
	err := coll.FindOne(ctx, filter).Decode(&v)
	metrics.RecordDBOperation("find", "videos", time.Since(start), err)

# Thread Safety

Every collector is safe for concurrent use.
*/
package metrics
