// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/videotube/internal/logging"
)

// APIResponse is the success envelope of every endpoint.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// APIErrorResponse is the failure envelope. Errors holds per-field
// validation messages and is never null.
type APIErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// emptyObject renders as {} for operations that return no entity.
type emptyObject struct{}

// respondJSON writes v with status
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess writes the success envelope
func respondSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	respondJSON(w, status, &APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// respondOK is respondSuccess with 200
func respondOK(w http.ResponseWriter, data interface{}, message string) {
	respondSuccess(w, http.StatusOK, data, message)
}

// respondCreated is respondSuccess with 201
func respondCreated(w http.ResponseWriter, data interface{}, message string) {
	respondSuccess(w, http.StatusCreated, data, message)
}

// writeFailure writes the failure envelope
func writeFailure(w http.ResponseWriter, status int, code, message string, details []string) {
	if details == nil {
		details = []string{}
	}
	respondJSON(w, status, &APIErrorResponse{
		StatusCode: status,
		Code:       code,
		Message:    message,
		Success:    false,
		Errors:     details,
	})
}

// RejectUnauthorized renders a 401 envelope. It is the auth middleware's
// reject function.
func RejectUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	writeFailure(w, http.StatusUnauthorized, ErrCodeUnauthorized, message, nil)
}
