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

// ListComments handles GET /comments/{videoId}
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	const op = "list comments"

	videoID, err := objectIDParam(r, "videoId", op, "Missing or Invalid video ID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	page, limit, err := h.pagination(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	exists, err := h.store.VideoExists(r.Context(), videoID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch comments"))
		return
	}
	if !exists {
		respondError(w, r, models.NotFound(op, "Video not found"))
		return
	}

	comments, err := h.store.ListComments(r.Context(), videoID, page, limit)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch comments"))
		return
	}
	respondOK(w, comments, "Comments fetched successfully")
}

// AddComment handles POST /comments/{videoId}
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	const op = "add comment"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	videoID, err := objectIDParam(r, "videoId", op, "Missing or Invalid video ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req contentRequest
	if err := decodeJSON(w, r, &req, op); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validateRequest(&req, op, "Please provide the content for comment"); err != nil {
		respondError(w, r, err)
		return
	}

	exists, err := h.store.VideoExists(r.Context(), videoID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to add comment"))
		return
	}
	if !exists {
		respondError(w, r, models.NotFound(op, "Video not found"))
		return
	}

	comment := &models.Comment{
		Content: strings.TrimSpace(req.Content),
		Video:   videoID,
		Owner:   actor.ID,
	}
	if err := h.store.InsertComment(r.Context(), comment); err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to add comment"))
		return
	}

	recordEvent("comment", "create")
	respondCreated(w, comment, "Comment added successfully")
}

// UpdateComment handles PATCH /comments/c/{commentId}
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	const op = "update comment"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	commentID, err := objectIDParam(r, "commentId", op, "Missing or Invalid comment Id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req contentRequest
	if err := decodeJSON(w, r, &req, op); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validateRequest(&req, op, "Please provide the content for comment"); err != nil {
		respondError(w, r, err)
		return
	}

	comment, err := h.store.GetComment(r.Context(), commentID)
	if err != nil {
		respondError(w, r, storeError(op, err, "Comment not found", "Failed to update comment"))
		return
	}
	if comment.Owner != actor.ID {
		respondError(w, r, h.forbidden(r, actor, "comment", commentID, op, "You are not allowed to change other's comment"))
		return
	}

	updated, err := h.store.UpdateCommentContent(r.Context(), commentID, actor.ID, strings.TrimSpace(req.Content))
	if err != nil {
		respondError(w, r, storeError(op, err, "Comment not found", "Failed to update comment"))
		return
	}

	recordEvent("comment", "update")
	respondOK(w, updated, "Comment updated successfully")
}

// DeleteComment handles DELETE /comments/c/{commentId}
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	const op = "delete comment"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	commentID, err := objectIDParam(r, "commentId", op, "Missing or Invalid comment Id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	comment, err := h.store.GetComment(r.Context(), commentID)
	if err != nil {
		respondError(w, r, storeError(op, err, "Comment not found", "Failed to delete comment"))
		return
	}
	if comment.Owner != actor.ID {
		respondError(w, r, h.forbidden(r, actor, "comment", commentID, op, "You are not allowed to delete other's comment"))
		return
	}

	deleted, err := h.store.DeleteComment(r.Context(), commentID, actor.ID)
	if err != nil {
		respondError(w, r, storeError(op, err, "Comment not found", "Failed to delete comment"))
		return
	}

	recordEvent("comment", "delete")
	respondOK(w, deleted, "Comment deleted successfully")
}
