// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package media

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/videotube/internal/config"
	"github.com/tomtom215/videotube/internal/logging"
)

// Open builds the store selected by cfg.Backend. The returned handler
// serves blobs for the filesystem backend and is nil for S3.
func Open(ctx context.Context, cfg *config.MediaConfig) (*Client, http.Handler, error) {
	switch cfg.Backend {
	case config.MediaBackendS3:
		s3Store, err := NewS3Store(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Endpoint != "" {
			if err := s3Store.EnsureBucket(ctx); err != nil {
				logging.Warn().Err(err).Str("bucket", cfg.Bucket).Msg("Media bucket check failed")
			}
		}
		logging.Info().
			Str("bucket", cfg.Bucket).
			Str("region", cfg.Region).
			Str("endpoint", cfg.Endpoint).
			Msg("Media store: s3")
		return NewClient(s3Store, cfg), nil, nil

	case config.MediaBackendFilesystem:
		fsStore, err := NewFilesystemStore(cfg.LocalDir)
		if err != nil {
			return nil, nil, err
		}
		logging.Info().Str("dir", fsStore.Root()).Msg("Media store: filesystem")
		return NewClient(fsStore, cfg), fsStore.Handler(), nil

	default:
		return nil, nil, fmt.Errorf("unknown media backend %q", cfg.Backend)
	}
}
