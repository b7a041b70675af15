// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/auth"
	"github.com/tomtom215/videotube/internal/database"
	"github.com/tomtom215/videotube/internal/logging"
	"github.com/tomtom215/videotube/internal/media"
	"github.com/tomtom215/videotube/internal/models"
)

// multipartMemory is how much of a multipart body is held in memory
// before parts spill to temp files.
const multipartMemory = 32 << 20

// SearchVideos handles GET /videos
func (h *Handler) SearchVideos(w http.ResponseWriter, r *http.Request) {
	const op = "search videos"

	q := r.URL.Query()
	query := searchVideosQuery{
		Query:    strings.TrimSpace(q.Get("query")),
		SortBy:   strings.TrimSpace(q.Get("sortBy")),
		SortType: strings.ToLower(strings.TrimSpace(q.Get("sortType"))),
		UserID:   strings.TrimSpace(q.Get("userId")),
	}
	if err := validateRequest(&query, op, "Invalid search parameters"); err != nil {
		respondError(w, r, err)
		return
	}
	page, limit, err := h.pagination(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}

	params := database.VideoSearchParams{
		Query:     query.Query,
		SortBy:    query.SortBy,
		Ascending: query.SortType == "asc",
		Page:      page,
		Limit:     limit,
	}
	if params.SortBy == "" {
		params.SortBy = database.SortByCreatedAt
	}
	if query.UserID != "" {
		owner, err := primitive.ObjectIDFromHex(query.UserID)
		if err != nil {
			respondError(w, r, models.InvalidInput(op, "Invalid search parameters", "userId must be a valid id"))
			return
		}
		params.OwnerID = &owner
	}

	videos, err := h.store.SearchVideos(r.Context(), params)
	if err != nil {
		respondError(w, r, models.Internal(op, err, "Failed to fetch videos"))
		return
	}
	if len(videos) == 0 {
		respondError(w, r, models.NotFound(op, "No videos found"))
		return
	}
	respondOK(w, videos, "Videos fetched successfully")
}

// PublishVideo handles POST /videos. The video blob is uploaded before the
// thumbnail; blobs already stored are removed when a later step fails.
func (h *Handler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	const op = "publish video"
	const invalid = "Give all the required details of video"

	actor, err := actorFrom(r, op)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.parseMultipart(w, r, op, invalid); err != nil {
		respondError(w, r, err)
		return
	}
	defer removeMultipart(r)

	form := publishVideoForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if raw := strings.TrimSpace(r.FormValue("duration")); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
			respondError(w, r, models.InvalidInput(op, invalid, "duration must be a number"))
			return
		}
		form.Duration = d
	}
	if err := validateRequest(&form, op, invalid); err != nil {
		respondError(w, r, err)
		return
	}

	videoBlob, videoFile, err := formBlob(r, "videoFile", media.KindVideo)
	if err != nil {
		respondError(w, r, models.InvalidInput(op, "Video is required"))
		return
	}
	defer closeQuietly(videoFile)
	videoBlob.Duration = form.Duration

	thumbBlob, thumbFile, err := formBlob(r, "thumbnail", media.KindImage)
	if err != nil {
		respondError(w, r, models.InvalidInput(op, "Thumbnail is required"))
		return
	}
	defer closeQuietly(thumbFile)

	videoAsset, err := h.media.Upload(r.Context(), *videoBlob)
	if err != nil {
		respondError(w, r, models.Upstream(op, err, "Failed to upload video"))
		return
	}

	thumbAsset, err := h.media.Upload(r.Context(), *thumbBlob)
	if err != nil {
		h.discardUploads(r, videoAsset.URL, "")
		respondError(w, r, models.Upstream(op, err, "Failed to upload thumbnail"))
		return
	}

	video := &models.Video{
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Title:       form.Title,
		Description: form.Description,
		Duration:    videoAsset.Duration,
		IsPublished: true,
		Owner:       actor.ID,
	}
	if err := h.store.InsertVideo(r.Context(), video); err != nil {
		h.discardUploads(r, videoAsset.URL, thumbAsset.URL)
		respondError(w, r, models.Internal(op, err, "Failed to save video"))
		return
	}

	recordEvent("video", "create")
	respondCreated(w, video, "Video uploaded successfully")
}

// GetVideo handles GET /videos/{videoId}
func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	const op = "get video"

	videoID, err := objectIDParam(r, "videoId", op, "Give a valid video ID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	video, err := h.store.GetVideoWithOwner(r.Context(), videoID)
	if err != nil {
		respondError(w, r, storeError(op, err, "Video not found", "Failed to fetch video"))
		return
	}
	respondOK(w, video, "Video fetched successfully")
}

// UpdateVideo handles PATCH /videos/{videoId}. The previous thumbnail is
// deleted before the new one is uploaded.
func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	const op = "update video"

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
	if err := h.parseMultipart(w, r, op, "Title and description both required"); err != nil {
		respondError(w, r, err)
		return
	}
	defer removeMultipart(r)

	video, err := h.ownedVideo(r, actor, videoID, op, "You are not allowed to update another user's video")
	if err != nil {
		respondError(w, r, err)
		return
	}

	form := updateVideoForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if err := validateRequest(&form, op, "Title and description both required"); err != nil {
		respondError(w, r, err)
		return
	}

	thumbBlob, thumbFile, err := formBlob(r, "thumbnail", media.KindImage)
	if err != nil {
		respondError(w, r, models.InvalidInput(op, "New thumbnail is required"))
		return
	}
	defer closeQuietly(thumbFile)

	res, err := h.media.DeleteImage(r.Context(), video.Thumbnail)
	if err != nil || res == nil || (res.Result != media.ResultOK && res.Result != media.ResultNotFound) {
		respondError(w, r, models.Upstream(op, deleteFailure(err, res), "Error while deleting the previous thumbnail"))
		return
	}

	thumbAsset, err := h.media.Upload(r.Context(), *thumbBlob)
	if err != nil {
		logging.Ctx(r.Context()).Warn().
			Str("video_id", videoID.Hex()).
			Str("thumbnail", video.Thumbnail).
			Msg("Previous thumbnail deleted but the replacement upload failed")
		respondError(w, r, models.Upstream(op, err, "Failed to upload thumbnail"))
		return
	}

	updated, err := h.store.UpdateVideoDetails(r.Context(), videoID, actor.ID, form.Title, form.Description, thumbAsset.URL)
	if err != nil {
		h.discardUploads(r, "", thumbAsset.URL)
		respondError(w, r, storeError(op, err, "Video not found", "Failed to update video"))
		return
	}

	recordEvent("video", "update")
	respondOK(w, updated, "Videos details updated successfully")
}

// DeleteVideo handles DELETE /videos/{videoId}. Both blobs must be removed
// before the document is.
func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	const op = "delete video"

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

	video, err := h.ownedVideo(r, actor, videoID, op, "You are not allowed to delete other's video")
	if err != nil {
		respondError(w, r, err)
		return
	}

	res, err := h.media.DeleteVideo(r.Context(), video.VideoFile)
	if err != nil || !res.OK() {
		respondError(w, r, models.Upstream(op, deleteFailure(err, res), "Failed to delete video file"))
		return
	}

	res, err = h.media.DeleteImage(r.Context(), video.Thumbnail)
	if err != nil || !res.OK() {
		logging.Ctx(r.Context()).Warn().
			Str("video_id", videoID.Hex()).
			Str("video_file", video.VideoFile).
			Str("thumbnail", video.Thumbnail).
			Msg("Video file deleted but thumbnail delete failed; document keeps a dangling URL")
		respondError(w, r, models.Upstream(op, deleteFailure(err, res), "Failed to delete thumbnail file"))
		return
	}

	if err := h.store.DeleteVideo(r.Context(), videoID, actor.ID); err != nil {
		respondError(w, r, storeError(op, err, "Video not found", "Failed to delete video"))
		return
	}

	recordEvent("video", "delete")
	respondOK(w, emptyObject{}, "Video deleted successfully")
}

// TogglePublishStatus handles PATCH /videos/toggle/publish/{videoId}
func (h *Handler) TogglePublishStatus(w http.ResponseWriter, r *http.Request) {
	const op = "toggle publish status"

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

	video, err := h.ownedVideo(r, actor, videoID, op, "You are not allowed to modify another user's video")
	if err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := h.store.SetVideoPublished(r.Context(), videoID, actor.ID, !video.IsPublished)
	if err != nil {
		respondError(w, r, storeError(op, err, "Video not found", "Failed to update video"))
		return
	}

	recordEvent("video", "toggle_publish")
	respondOK(w, updated, "Video published status modified")
}

// ownedVideo loads a video and checks that actor owns it
func (h *Handler) ownedVideo(r *http.Request, actor auth.Actor, videoID primitive.ObjectID, op, denied string) (*models.Video, error) {
	video, err := h.store.GetVideo(r.Context(), videoID)
	if err != nil {
		return nil, storeError(op, err, "Video not found", "Failed to fetch video")
	}
	if video.Owner != actor.ID {
		return nil, h.forbidden(r, actor, "video", videoID, op, denied)
	}
	return video, nil
}

// parseMultipart parses a multipart body capped at the configured upload size
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request, op, message string) error {
	if h.cfg != nil {
		if limit := h.cfg.Media.MaxUploadBytes(); limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.InvalidInput(op, "Upload exceeds the maximum allowed size")
		}
		return models.InvalidInput(op, message)
	}
	return nil
}

func removeMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll() // temp files only
	}
}

// formBlob opens a multipart file part. An empty part counts as missing.
func formBlob(r *http.Request, field string, kind media.Kind) (*media.Blob, io.Closer, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	if header.Size == 0 {
		closeQuietly(file)
		return nil, nil, http.ErrMissingFile
	}
	return &media.Blob{
		Kind:        kind,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, file, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

// discardUploads removes blobs stored by a request that then failed.
// Failures are logged and otherwise ignored.
func (h *Handler) discardUploads(r *http.Request, videoURL, thumbURL string) {
	ctx := context.WithoutCancel(r.Context())
	logger := logging.Ctx(r.Context())

	if videoURL != "" {
		if res, err := h.media.DeleteVideo(ctx, videoURL); err != nil || !res.OK() {
			logger.Warn().Err(deleteFailure(err, res)).Str("url", videoURL).Msg("Failed to discard uploaded video")
		}
	}
	if thumbURL != "" {
		if res, err := h.media.DeleteImage(ctx, thumbURL); err != nil || !res.OK() {
			logger.Warn().Err(deleteFailure(err, res)).Str("url", thumbURL).Msg("Failed to discard uploaded thumbnail")
		}
	}
}

// deleteFailure describes a failed delete for logs
func deleteFailure(err error, res *media.DeleteResult) error {
	if err != nil {
		return err
	}
	if res == nil {
		return errors.New("no delete result")
	}
	return errors.New("unexpected delete result " + strconv.Quote(res.Result))
}
