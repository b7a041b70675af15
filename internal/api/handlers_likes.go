// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"net/http"

	"github.com/tomtom215/videotube/internal/models"
)

// ToggleVideoLike handles POST /likes/toggle/v/{videoId}
func (h *Handler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	const op = "toggle video like"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	videoID, err := objectIDParam(r, "videoId", op, "Give a valid video ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	exists, err := h.store.VideoExists(r.Context(), videoID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to toggle like"))
		return
	}
	if !exists {
		respondError(w, r, models.NotFound(op, "Video not found"))
		return
	}

	liked, err := h.store.ToggleVideoLike(r.Context(), videoID, actor.ID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to toggle like"))
		return
	}

	if liked {
		recordEvent("like", "create")
		respondOK(w, models.LikeStatus{IsLiked: true}, "Video liked")
		return
	}
	recordEvent("like", "delete")
	respondOK(w, models.LikeStatus{IsLiked: false}, "Video unliked")
}
