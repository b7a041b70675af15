// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import "strings"

// Request bodies and query/form bindings. Field names in validation
// messages come from the json and form tags.

type contentRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}

type createPlaylistRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"required,notblank,max=5000"`
}

// updatePlaylistRequest fields are optional. Blank values count as absent.
type updatePlaylistRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func (u *updatePlaylistRequest) normalize() {
	u.Name = nonBlank(u.Name)
	u.Description = nonBlank(u.Description)
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// searchVideosQuery is filled by hand in SearchVideos. The form tags only
// name the fields in validation messages.
type searchVideosQuery struct {
	Query    string `form:"query" validate:"max=200"`
	SortBy   string `form:"sortBy" validate:"omitempty,oneof=createdAt updatedAt title views duration"`
	SortType string `form:"sortType" validate:"omitempty,oneof=asc desc"`
	UserID   string `form:"userId" validate:"omitempty,objectid"`
}

type publishVideoForm struct {
	Title       string  `form:"title" validate:"required,notblank,max=200"`
	Description string  `form:"description" validate:"required,notblank,max=5000"`
	Duration    float64 `form:"duration" validate:"gte=0"`
}

type updateVideoForm struct {
	Title       string `form:"title" validate:"required,notblank,max=200"`
	Description string `form:"description" validate:"required,notblank,max=5000"`
}
