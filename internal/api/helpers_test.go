// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/auth"
	"github.com/tomtom215/videotube/internal/config"
)

const testSecret = "api_test_secret_that_is_long_enough_for_hs256_signing"

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Code       string          `json:"code"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Errors     []string        `json:"errors"`
}

type testServer struct {
	t       *testing.T
	store   *fakeStore
	media   *fakeMedia
	handler http.Handler
	jwt     *auth.JWTManager
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{DefaultPageSize: 10, MaxPageSize: 100},
		Media: config.MediaConfig{
			MaxUploadMB:   1,
			PublicBaseURL: "http://media.test/media",
		},
		Security: config.SecurityConfig{
			JWTSecret:         testSecret,
			RateLimitDisabled: true,
		},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := testConfig()
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	store := newFakeStore()
	mediaStore := newFakeMedia()
	handler := NewHandler(store, mediaStore, cfg)
	router := NewRouter(handler, auth.NewMiddleware(jwtManager, RejectUnauthorized), cfg, nil)

	return &testServer{
		t:       t,
		store:   store,
		media:   mediaStore,
		handler: router.SetupChi(),
		jwt:     jwtManager,
	}
}

func (s *testServer) token(user primitive.ObjectID) string {
	s.t.Helper()
	tok, err := s.jwt.GenerateToken(user.Hex(), "user-"+user.Hex()[18:], time.Hour)
	if err != nil {
		s.t.Fatalf("GenerateToken() error = %v", err)
	}
	return tok
}

// do sends a request as user. A nil user sends no token.
func (s *testServer) do(user *primitive.ObjectID, method, path string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if user != nil {
		req.Header.Set("Authorization", "Bearer "+s.token(*user))
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		s.t.Fatalf("%s %s: invalid envelope %q: %v", method, path, rec.Body.String(), err)
	}
	if env.StatusCode != rec.Code {
		s.t.Errorf("%s %s: envelope statusCode = %d, HTTP status = %d", method, path, env.StatusCode, rec.Code)
	}
	return rec, env
}

func (s *testServer) doJSON(user *primitive.ObjectID, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return s.do(user, method, path, r, "application/json")
}

type filePart struct {
	field, filename, content string
}

func multipartBody(t *testing.T, fields map[string]string, files ...filePart) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField() error = %v", err)
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.filename)
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		if _, err := part.Write([]byte(f.content)); err != nil {
			t.Fatalf("part.Write() error = %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("multipart Close() error = %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func ptr(id primitive.ObjectID) *primitive.ObjectID {
	return &id
}

func expectFailure(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (message %q)", rec.Code, status, env.Message)
	}
	if env.Success {
		t.Error("success = true on a failure")
	}
	if env.Code != code {
		t.Errorf("code = %q, want %q", env.Code, code)
	}
	if env.Errors == nil {
		t.Error("errors must be an array, got null")
	}
}
