// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/videotube/internal/logging"
)

// DefaultSlowRequestThreshold is used when AccessLog is given zero.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs every completed request through the request-scoped logger.
// Server errors log at error level, requests slower than threshold at warn,
// everything else at debug.
func AccessLog(threshold time.Duration) func(http.Handler) http.Handler {
	if threshold <= 0 {
		threshold = DefaultSlowRequestThreshold
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			msg := "Request completed"
			switch {
			case status >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > threshold:
				event = logger.Warn().Dur("threshold", threshold)
				msg = "Slow request detected"
			}
			event.
				Str("method", r.Method).
				Str("route", RoutePattern(r)).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", duration).
				Msg(msg)
		})
	}
}
