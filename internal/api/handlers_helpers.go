// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/auth"
	"github.com/tomtom215/videotube/internal/models"
	"github.com/tomtom215/videotube/internal/validation"
)

// maxJSONBodyBytes caps JSON request bodies.
const maxJSONBodyBytes = 1 << 20

// Pagination defaults when the config leaves them unset.
const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxPage         = 1_000_000
)

// objectIDParam reads a path parameter that must be an ObjectID
func objectIDParam(r *http.Request, name, op, message string) (primitive.ObjectID, error) {
	raw := chi.URLParam(r, name)
	if !validation.IsObjectID(raw) {
		return primitive.NilObjectID, models.InvalidInput(op, message)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, models.InvalidInput(op, message)
	}
	return id, nil
}

// actorFrom returns the authenticated user. Routes behind Authenticate
// always have one.
func actorFrom(r *http.Request, op string) (auth.Actor, error) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		return auth.Actor{}, models.Unauthorized(op, "Unauthorized request", nil)
	}
	return actor, nil
}

// pagination parses page and limit. limit is capped at the configured
// maximum rather than rejected; a page beyond maxPage is rejected.
func (h *Handler) pagination(r *http.Request, op string) (page, limit int, err error) {
	defLimit, maxLimit := defaultPageSize, maxPageSize
	if h.cfg != nil {
		if h.cfg.API.DefaultPageSize > 0 {
			defLimit = h.cfg.API.DefaultPageSize
		}
		if h.cfg.API.MaxPageSize > 0 {
			maxLimit = h.cfg.API.MaxPageSize
		}
	}

	page, err = positiveIntParam(r, "page", 1, op)
	if err != nil {
		return 0, 0, err
	}
	if page > maxPage {
		return 0, 0, models.InvalidInput(op, "Invalid pagination parameters",
			fmt.Sprintf("page must not exceed %d", maxPage))
	}
	limit, err = positiveIntParam(r, "limit", defLimit, op)
	if err != nil {
		return 0, 0, err
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, nil
}

func positiveIntParam(r *http.Request, name string, def int, op string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, models.InvalidInput(op, "Invalid pagination parameters", name+" must be a positive integer")
	}
	return n, nil
}

// decodeJSON reads a JSON body into v. An empty body leaves v zeroed so
// the caller's validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, op string) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(body).Decode(v)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.InvalidInput(op, "Request body too large")
		}
		return models.InvalidInput(op, "Invalid JSON body")
	}
}

// validateRequest runs struct validation and reports failures under message
func validateRequest(v interface{}, op, message string) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return models.InvalidInput(op, message, verr.Messages()...)
	}
	return nil
}
