// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

//go:build integration

package media

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/videotube/internal/config"
	"github.com/tomtom215/videotube/internal/testinfra"
)

func TestIntegration_S3Store(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	minio, err := testinfra.NewMinioContainer(ctx)
	if err != nil {
		t.Fatalf("start minio: %v", err)
	}
	defer testinfra.CleanupContainer(t, context.Background(), minio)

	cfg := testMediaConfig()
	cfg.Backend = config.MediaBackendS3
	cfg.Endpoint = minio.URL
	cfg.Region = "us-east-1"
	cfg.Bucket = "videotube-test"
	cfg.AccessKey = minio.AccessKey
	cfg.SecretKey = minio.SecretKey
	cfg.PublicBaseURL = minio.URL + "/videotube-test"

	s3Store, err := NewS3Store(ctx, cfg)
	if err != nil {
		t.Fatalf("NewS3Store: %v", err)
	}
	if err := s3Store.EnsureBucket(ctx); err != nil {
		t.Fatalf("EnsureBucket: %v", err)
	}
	if err := s3Store.EnsureBucket(ctx); err != nil {
		t.Fatalf("EnsureBucket on existing bucket: %v", err)
	}

	client := NewClient(s3Store, cfg)

	video, err := client.Upload(ctx, Blob{
		Kind:        KindVideo,
		Filename:    "clip.mp4",
		ContentType: "video/mp4",
		Size:        int64(len("fake-mp4")),
		Body:        strings.NewReader("fake-mp4"),
		Duration:    42.25,
	})
	if err != nil {
		t.Fatalf("Upload video: %v", err)
	}
	if got, err := s3Store.Duration(ctx, video.Key); err != nil || got != "42.25" {
		t.Errorf("duration metadata = %q, %v, want 42.25", got, err)
	}

	thumb, err := client.Upload(ctx, Blob{
		Kind:        KindImage,
		Filename:    "thumb.png",
		ContentType: "image/png",
		Size:        3,
		Body:        strings.NewReader("png"),
	})
	if err != nil {
		t.Fatalf("Upload image: %v", err)
	}

	if res, err := client.DeleteVideo(ctx, thumb.URL); err != nil || res.Result != ResultNotFound {
		t.Errorf("DeleteVideo(image url) = %+v, %v, want not found", res, err)
	}
	if res, err := client.DeleteVideo(ctx, video.URL); err != nil || !res.OK() {
		t.Errorf("DeleteVideo = %+v, %v, want ok", res, err)
	}
	if res, err := client.DeleteVideo(ctx, video.URL); err != nil || res.Result != ResultNotFound {
		t.Errorf("second DeleteVideo = %+v, %v, want not found", res, err)
	}
	if res, err := client.DeleteImage(ctx, thumb.URL); err != nil || !res.OK() {
		t.Errorf("DeleteImage = %+v, %v, want ok", res, err)
	}
}
