// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - RequestID: UUID request IDs, propagated to chi and the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge labelled by
    chi route pattern
  - AccessLog: one structured log line per request, warn on slow requests

All middleware use the func(http.Handler) http.Handler shape and are mounted
on the chi router in internal/api:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(time.Second))

Authentication middleware lives in internal/auth.
*/
package middleware
