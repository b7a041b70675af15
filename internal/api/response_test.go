// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/videotube/internal/database"
	"github.com/tomtom215/videotube/internal/models"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind       models.ErrorKind
		wantStatus int
		wantCode   string
	}{
		{models.KindValidation, http.StatusBadRequest, ErrCodeValidationFailed},
		{models.KindNotFound, http.StatusNotFound, ErrCodeNotFound},
		{models.KindForbidden, http.StatusForbidden, ErrCodeForbidden},
		{models.KindConflict, http.StatusBadRequest, ErrCodeConflict},
		{models.KindUnauthorized, http.StatusUnauthorized, ErrCodeUnauthorized},
		{models.KindUpstream, http.StatusInternalServerError, ErrCodeExternalServiceFail},
		{models.KindInternal, http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			status, code := statusFor(tt.kind)
			if status != tt.wantStatus || code != tt.wantCode {
				t.Errorf("statusFor(%v) = %d %s, want %d %s", tt.kind, status, code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantErrors []string
	}{
		{
			name:       "validation with details",
			err:        models.InvalidInput("op", "Bad input", "name is required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Bad input",
			wantErrors: []string{"name is required"},
		},
		{
			name:       "wrapped app error",
			err:        fmt.Errorf("outer: %w", models.NotFound("op", "Video not found")),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Video not found",
			wantErrors: []string{},
		},
		{
			name:       "plain error hides cause",
			err:        errors.New("mongo: socket closed"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Something went wrong",
			wantErrors: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			respondError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body APIErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success || body.StatusCode != tt.wantStatus || body.Message != tt.wantMsg {
				t.Errorf("body = %+v", body)
			}
			if len(body.Errors) != len(tt.wantErrors) {
				t.Errorf("errors = %v, want %v", body.Errors, tt.wantErrors)
			}
		})
	}
}

func TestRespondSuccess_Envelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondCreated(rec, map[string]int{"n": 1}, "Created")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	want := `{"statusCode":201,"data":{"n":1},"message":"Created","success":true}`
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	err := storeError("op", fmt.Errorf("get: %w", database.ErrNotFound), "Gone", "Failed")
	if models.KindOf(err) != models.KindNotFound {
		t.Errorf("ErrNotFound kind = %v", models.KindOf(err))
	}

	cause := errors.New("timeout")
	err = storeError("op", cause, "Gone", "Failed")
	if models.KindOf(err) != models.KindInternal || !errors.Is(err, cause) {
		t.Errorf("other error = %v, want internal wrapping the cause", err)
	}
}
