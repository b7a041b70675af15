// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"net/http"

	"github.com/tomtom215/videotube/internal/models"
)

// ChannelStats handles GET /dashboard/stats for the acting user's channel
func (h *Handler) ChannelStats(w http.ResponseWriter, r *http.Request) {
	const op = "channel stats"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	stats, err := h.store.GetChannelStats(r.Context(), actor.ID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch channel stats"))
		return
	}
	if stats == nil {
		stats = &models.ChannelStats{}
	}
	respondOK(w, stats, "Channel stats fetched")
}

// ChannelVideos handles GET /dashboard/videos
func (h *Handler) ChannelVideos(w http.ResponseWriter, r *http.Request) {
	const op = "channel videos"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	videos, err := h.store.ListChannelVideos(r.Context(), actor.ID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch channel videos"))
		return
	}
	if videos == nil {
		videos = []models.ChannelVideo{}
	}
	respondOK(w, videos, "Channel videos fetched")
}
