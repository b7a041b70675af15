// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/auth"
	"github.com/tomtom215/videotube/internal/database"
	"github.com/tomtom215/videotube/internal/models"
)

// CreatePlaylist handles POST /playlist
func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	const op = "create playlist"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req createPlaylistRequest
	if err := decodeJSON(w, r, &req, op); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validateRequest(&req, op, "Both playlist name and description are required"); err != nil {
		respondError(w, r, err)
		return
	}

	playlist := &models.Playlist{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Owner:       actor.ID,
	}
	err = h.store.InsertPlaylist(r.Context(), playlist)
	switch {
	case errors.Is(err, database.ErrDuplicateKey):
		respondError(w, r, models.Conflict(op, "A playlist with this name already exists"))
		return
	case err != nil:
		respondError(w, r, models.Internal(op, err, "Failed to create playlist"))
		return
	}

	recordEvent("playlist", "create")
	respondCreated(w, playlist, "Playlist created successfully")
}

// ListUserPlaylists handles GET /playlist/user/{userId}. An empty list is
// still a success.
func (h *Handler) ListUserPlaylists(w http.ResponseWriter, r *http.Request) {
	const op = "list user playlists"

	userID, err := objectIDParam(r, "userId", op, "Invalid user ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	playlists, err := h.store.ListUserPlaylists(r.Context(), userID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch playlists"))
		return
	}
	if len(playlists) == 0 {
		respondOK(w, []models.PlaylistView{}, "No playlists found for this user")
		return
	}
	respondOK(w, playlists, "Playlists fetched successfully")
}

// GetPlaylist handles GET /playlist/{playlistId}
func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	const op = "get playlist"

	playlistID, err := objectIDParam(r, "playlistId", op, "Invalid playlist ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	playlist, err := h.store.GetPlaylistView(r.Context(), playlistID)
	if err != nil {
		respondError(w, r, storeError(op, err, "Playlist not found", "Failed to fetch playlist"))
		return
	}
	respondOK(w, playlist, "Playlist fetched successfully")
}

// membershipParams reads the ids of the add/remove routes
func membershipParams(r *http.Request, op string) (videoID, playlistID primitive.ObjectID, err error) {
	playlistID, err = objectIDParam(r, "playlistId", op, "Invalid or missing playlist ID")
	if err != nil {
		return videoID, playlistID, err
	}
	videoID, err = objectIDParam(r, "videoId", op, "Invalid or missing video ID")
	return videoID, playlistID, err
}

// ownedPlaylist loads a playlist and checks that actor owns it
func (h *Handler) ownedPlaylist(r *http.Request, actor auth.Actor, playlistID primitive.ObjectID, op, denied string) (*models.Playlist, error) {
	playlist, err := h.store.GetPlaylist(r.Context(), playlistID)
	if err != nil {
		return nil, storeError(op, err, "Playlist not found", "Failed to fetch playlist")
	}
	if playlist.Owner != actor.ID {
		return nil, h.forbidden(r, actor, "playlist", playlistID, op, denied)
	}
	return playlist, nil
}

// AddVideoToPlaylist handles PATCH /playlist/add/{videoId}/{playlistId}
func (h *Handler) AddVideoToPlaylist(w http.ResponseWriter, r *http.Request) {
	const op = "add video to playlist"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	videoID, playlistID, err := membershipParams(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := h.ownedPlaylist(r, actor, playlistID, op, "You are not allowed to update this playlist"); err != nil {
		respondError(w, r, err)
		return
	}

	exists, err := h.store.VideoExists(r.Context(), videoID)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to add video to playlist"))
		return
	}
	if !exists {
		respondError(w, r, models.NotFound(op, "Video not found"))
		return
	}

	updated, err := h.store.AddVideoToPlaylist(r.Context(), playlistID, actor.ID, videoID)
	switch {
	case errors.Is(err, database.ErrNotApplied):
		respondError(w, r, models.Conflict(op, "Video already exists in the playlist"))
		return
	case err != nil:
		respondError(w, r, models.Internal(op, err, "Failed to add video to playlist"))
		return
	}

	recordEvent("playlist", "add_video")
	respondOK(w, updated, "Video added to the playlist")
}

// RemoveVideoFromPlaylist handles PATCH /playlist/remove/{videoId}/{playlistId}
func (h *Handler) RemoveVideoFromPlaylist(w http.ResponseWriter, r *http.Request) {
	const op = "remove video from playlist"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	videoID, playlistID, err := membershipParams(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := h.ownedPlaylist(r, actor, playlistID, op, "You are not allowed to remove video from this playlist"); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := h.store.RemoveVideoFromPlaylist(r.Context(), playlistID, actor.ID, videoID)
	switch {
	case errors.Is(err, database.ErrNotApplied):
		respondError(w, r, models.InvalidInput(op, "Video does not exist in this playlist"))
		return
	case err != nil:
		respondError(w, r, models.Internal(op, err, "Failed to remove video from playlist"))
		return
	}

	recordEvent("playlist", "remove_video")
	respondOK(w, updated, "Video removed from playlist")
}

// UpdatePlaylist handles PATCH /playlist/{playlistId}
func (h *Handler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	const op = "update playlist"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	playlistID, err := objectIDParam(r, "playlistId", op, "Invalid playlist ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req updatePlaylistRequest
	if err := decodeJSON(w, r, &req, op); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validateRequest(&req, op, "Invalid playlist details"); err != nil {
		respondError(w, r, err)
		return
	}
	req.normalize()
	if req.Name == nil && req.Description == nil {
		respondError(w, r, models.InvalidInput(op, "At least one field (name or description) is required to update"))
		return
	}

	if _, err := h.ownedPlaylist(r, actor, playlistID, op, "You are not authorized to update this playlist"); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := h.store.UpdatePlaylist(r.Context(), playlistID, actor.ID, database.PlaylistUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	switch {
	case errors.Is(err, database.ErrDuplicateKey):
		respondError(w, r, models.Conflict(op, "A playlist with this name already exists"))
		return
	case err != nil:
		respondError(w, r, storeError(op, err, "Playlist not found", "Failed to update playlist"))
		return
	}

	recordEvent("playlist", "update")
	respondOK(w, updated, "Playlist updated successfully")
}

// DeletePlaylist handles DELETE /playlist/{playlistId}
func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	const op = "delete playlist"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	playlistID, err := objectIDParam(r, "playlistId", op, "Invalid playlist ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if _, err := h.ownedPlaylist(r, actor, playlistID, op, "You are not authorized to delete this playlist"); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.store.DeletePlaylist(r.Context(), playlistID, actor.ID); err != nil {
		respondError(w, r, storeError(op, err, "Playlist not found", "Failed to delete playlist"))
		return
	}

	recordEvent("playlist", "delete")
	respondOK(w, emptyObject{}, "Playlist deleted successfully")
}
