// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/videotube/internal/models"
)

const healthPingTimeout = 2 * time.Second

// HealthStatus is the healthcheck payload.
type HealthStatus struct {
	Status   string  `json:"status"`
	Database string  `json:"database"`
	Uptime   float64 `json:"uptime"`
}

// Healthcheck handles GET /healthcheck. It pings the database.
func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	const op = "healthcheck"

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondError(w, r, models.Internal(op, err, "Database unavailable"))
		return
	}

	respondOK(w, HealthStatus{
		Status:   "ok",
		Database: "connected",
		Uptime:   time.Since(h.startTime).Seconds(),
	}, "Health check passed")
}
