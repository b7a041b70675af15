// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/auth"
	"github.com/tomtom215/videotube/internal/config"
	"github.com/tomtom215/videotube/internal/logging"
	"github.com/tomtom215/videotube/internal/media"
	"github.com/tomtom215/videotube/internal/metrics"
	"github.com/tomtom215/videotube/internal/models"
)

// Handler serves the /api/v1 endpoints.
type Handler struct {
	store     Store
	media     media.Store
	cfg       *config.Config
	security  *logging.SecurityLogger
	startTime time.Time
}

// NewHandler creates a handler over store and the media store.
func NewHandler(store Store, mediaStore media.Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		media:     mediaStore,
		cfg:       cfg,
		security:  logging.NewSecurityLogger(),
		startTime: time.Now(),
	}
}

// forbidden logs an ownership violation and returns the Forbidden error
func (h *Handler) forbidden(r *http.Request, actor auth.Actor, resource string, target primitive.ObjectID, op, message string) error {
	h.security.LogOwnershipDenied(actor.ID.Hex(), resource, target.Hex(), r.RemoteAddr)
	return models.Forbidden(op, message)
}

// recordEvent counts a successful mutation
func recordEvent(entity, action string) {
	metrics.RecordDomainEvent(entity, action)
}
