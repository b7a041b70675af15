// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"net/http"

	"github.com/tomtom215/videotube/internal/models"
)

// ToggleSubscription handles POST /subscriptions/c/{channelId}
func (h *Handler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	const op = "toggle subscription"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	channelID, err := objectIDParam(r, "channelId", op, "Missing or Invalid channel ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	sub, subscribed, err := h.store.ToggleSubscription(r.Context(), actor.ID, channelID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to toggle subscription"))
		return
	}

	if !subscribed {
		recordEvent("subscription", "delete")
		respondOK(w, emptyObject{}, "Channel Unsubscribed")
		return
	}
	recordEvent("subscription", "create")
	respondOK(w, sub, "Channel Subscribed")
}

// CountSubscribers handles GET /subscriptions/c/{channelId}
func (h *Handler) CountSubscribers(w http.ResponseWriter, r *http.Request) {
	const op = "count subscribers"

	channelID, err := objectIDParam(r, "channelId", op, "Missing or Invalid channel ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	n, err := h.store.CountSubscribers(r.Context(), channelID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch subscriber count"))
		return
	}
	respondOK(w, models.SubscriberCount{SubscriberCount: n}, "Subscriber count fetched successfully")
}

// ListSubscribedChannels handles GET /subscriptions/u/{subscriberId}.
// No subscriptions is a 404 for compatibility with existing clients.
func (h *Handler) ListSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	const op = "list subscribed channels"

	subscriberID, err := objectIDParam(r, "subscriberId", op, "Missing or Invalid subscriber ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	channels, err := h.store.ListSubscribedChannels(r.Context(), subscriberID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch subscribed channels"))
		return
	}
	if len(channels) == 0 {
		respondError(w, r, models.NotFound(op, "No subscribed channels found"))
		return
	}

	respondOK(w, models.SubscribedChannels{
		TotalCount: int64(len(channels)),
		Channels:   channels,
	}, "Subscribed channels fetched successfully")
}
