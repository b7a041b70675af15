// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/videotube/internal/models"
)

// CreateTweet handles POST /tweets
func (h *Handler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	const op = "create tweet"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req contentRequest
	if err := decodeJSON(w, r, &req, op); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validateRequest(&req, op, "Please provide the content for tweet"); err != nil {
		respondError(w, r, err)
		return
	}

	tweet := &models.Tweet{Content: strings.TrimSpace(req.Content), Owner: actor.ID}
	if err := h.store.InsertTweet(r.Context(), tweet); err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to create tweet"))
		return
	}

	recordEvent("tweet", "create")
	respondCreated(w, tweet, "Tweet created successfully")
}

// ListUserTweets handles GET /tweets/user/{userId}
func (h *Handler) ListUserTweets(w http.ResponseWriter, r *http.Request) {
	const op = "list user tweets"

	userID, err := objectIDParam(r, "userId", op, "Missing or Invalid user ID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	page, limit, err := h.pagination(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	tweets, err := h.store.ListUserTweets(r.Context(), userID, page, limit)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch tweets"))
		return
	}
	respondOK(w, tweets, "Tweets fetched successfully")
}

// UpdateTweet handles PATCH /tweets/{tweetId}
func (h *Handler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	const op = "update tweet"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	tweetID, err := objectIDParam(r, "tweetId", op, "Missing or Invalid tweet ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req contentRequest
	if err := decodeJSON(w, r, &req, op); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validateRequest(&req, op, "Please provide the content for tweet"); err != nil {
		respondError(w, r, err)
		return
	}

	tweet, err := h.store.GetTweet(r.Context(), tweetID)
	if err != nil {
		respondError(w, r, storeError(op, err, "Tweet not found", "Failed to update tweet"))
		return
	}
	if tweet.Owner != actor.ID {
		respondError(w, r, h.forbidden(r, actor, "tweet", tweetID, op, "You are not allowed to change other's tweet"))
		return
	}

	updated, err := h.store.UpdateTweetContent(r.Context(), tweetID, actor.ID, strings.TrimSpace(req.Content))
	if err != nil {
		respondError(w, r, storeError(op, err, "Tweet not found", "Failed to update tweet"))
		return
	}

	recordEvent("tweet", "update")
	respondOK(w, updated, "You have updated tweet successfully")
}

// DeleteTweet handles DELETE /tweets/{tweetId}
func (h *Handler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	const op = "delete tweet"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	tweetID, err := objectIDParam(r, "tweetId", op, "Missing or Invalid tweet ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	tweet, err := h.store.GetTweet(r.Context(), tweetID)
	if err != nil {
		respondError(w, r, storeError(op, err, "Tweet not found", "Failed to delete tweet"))
		return
	}
	if tweet.Owner != actor.ID {
		respondError(w, r, h.forbidden(r, actor, "tweet", tweetID, op, "You are not allowed to delete another user's tweet"))
		return
	}

	deleted, err := h.store.DeleteTweet(r.Context(), tweetID, actor.ID)
	if err != nil {
		respondError(w, r, storeError(op, err, "Tweet not found", "Failed to delete tweet"))
		return
	}

	recordEvent("tweet", "delete")
	respondOK(w, deleted, "Tweet deleted successfully")
}
