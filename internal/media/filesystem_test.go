// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package media

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/videotube/internal/config"
)

func TestFilesystemStore_PutDelete(t *testing.T) {
	t.Parallel()

	store, err := NewFilesystemStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystemStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, Object{Key: "images/a.png", Body: strings.NewReader("png-bytes")}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(store.Root(), "images", "a.png"))
	if err != nil || string(data) != "png-bytes" {
		t.Fatalf("stored = %q, %v", data, err)
	}

	existed, err := store.Delete(ctx, "images/a.png")
	if err != nil || !existed {
		t.Errorf("Delete = %v, %v, want true", existed, err)
	}
	existed, err = store.Delete(ctx, "images/a.png")
	if err != nil || existed {
		t.Errorf("second Delete = %v, %v, want false", existed, err)
	}
}

func TestFilesystemStore_RejectsEscapingKeys(t *testing.T) {
	t.Parallel()

	store, err := NewFilesystemStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystemStore: %v", err)
	}
	if err := store.Put(context.Background(), Object{Key: "../outside", Body: strings.NewReader("x")}); err == nil {
		t.Error("Put should reject keys outside the root")
	}
	if _, err := store.Delete(context.Background(), "../../etc/passwd"); err == nil {
		t.Error("Delete should reject keys outside the root")
	}
}

func TestFilesystemStore_CanceledPutLeavesNothing(t *testing.T) {
	t.Parallel()

	store, err := NewFilesystemStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystemStore: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Put(ctx, Object{Key: "videos/v.mp4", Body: strings.NewReader("data")}); err == nil {
		t.Fatal("expected an error")
	}
	entries, _ := os.ReadDir(filepath.Join(store.Root(), "videos"))
	if len(entries) != 0 {
		t.Errorf("videos dir has %d entries, want 0", len(entries))
	}
}

func TestFilesystemStore_Handler(t *testing.T) {
	t.Parallel()

	store, err := NewFilesystemStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystemStore: %v", err)
	}
	if err := store.Put(context.Background(), Object{Key: "images/t.txt", Body: strings.NewReader("hello")}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	srv := http.StripPrefix("/media", store.Handler())

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/media/images/t.txt", http.StatusOK, "hello"},
		{"/media/images/", http.StatusNotFound, ""},
		{"/media/images/missing.png", http.StatusNotFound, ""},
		{"/media/images/.upload-123", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(rec.Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q, want %q", body, tt.wantBody)
				}
			}
		})
	}
}

func TestOpen_Filesystem(t *testing.T) {
	t.Parallel()

	cfg := testMediaConfig()
	cfg.Backend = config.MediaBackendFilesystem
	cfg.LocalDir = t.TempDir()

	client, handler, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if handler == nil {
		t.Error("filesystem backend should serve blobs")
	}

	asset, err := client.Upload(context.Background(), Blob{Kind: KindVideo, Filename: "v.webm", Body: strings.NewReader("v"), Duration: 3})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.LocalDir, filepath.FromSlash(asset.Key))); err != nil {
		t.Errorf("uploaded file missing: %v", err)
	}

	res, err := client.DeleteVideo(context.Background(), asset.URL)
	if err != nil || !res.OK() {
		t.Errorf("DeleteVideo = %+v, %v", res, err)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := testMediaConfig()
	cfg.Backend = "ftp"
	if _, _, err := Open(context.Background(), cfg); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}
