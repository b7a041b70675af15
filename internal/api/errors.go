// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/videotube/internal/logging"
	"github.com/tomtom215/videotube/internal/models"
)

// Error codes for API responses
const (
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeExternalServiceFail = "EXTERNAL_SERVICE_FAILED"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
)

// statusFor maps an error kind to its HTTP status and code. Conflicts are
// reported as 400 for compatibility with existing clients.
func statusFor(kind models.ErrorKind) (int, string) {
	switch kind {
	case models.KindValidation:
		return http.StatusBadRequest, ErrCodeValidationFailed
	case models.KindNotFound:
		return http.StatusNotFound, ErrCodeNotFound
	case models.KindForbidden:
		return http.StatusForbidden, ErrCodeForbidden
	case models.KindConflict:
		return http.StatusBadRequest, ErrCodeConflict
	case models.KindUnauthorized:
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case models.KindUpstream:
		return http.StatusInternalServerError, ErrCodeExternalServiceFail
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// respondError writes the failure envelope for err. Errors that are not an
// AppError are internal and their text never reaches the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.Internal("unknown", err, "Something went wrong")
	}

	status, code := statusFor(appErr.Kind)

	logger := logging.Ctx(r.Context())
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("op", appErr.Op).
		Str("code", code).
		Int("status", status).
		Err(appErr.Err).
		Msg(appErr.Message)

	writeFailure(w, status, code, appErr.Message, appErr.Details)
}
