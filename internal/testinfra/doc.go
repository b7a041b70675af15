// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to start the real backing services the
// API talks to. Every file is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # MongoDB Container
//
// MongoContainer runs a standalone mongod and exposes its connection URI:
//
//	func TestPlaylistMembership(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mongoC, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongoC)
//	    // connect with mongoC.URI
//	}
//
// # MinIO Container
//
// MinioContainer provides an S3-compatible endpoint for the S3 media store.
//
// # CI Considerations
//
// These tests require Docker. Tests are skipped gracefully if Docker is
// unavailable. The first run downloads the images.
package testinfra
