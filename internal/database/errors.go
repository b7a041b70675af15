// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/videotube/internal/logging"
)

var (
	// ErrNotFound is returned when a lookup or owner-scoped write matches no document.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// wrapError maps driver errors onto the package sentinels, keeping the
// original error in the chain.
func wrapError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicateKey, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// closeCursor closes a cursor and logs any error
// Use this for cleanup where errors should be acknowledged but not fail the operation
func closeCursor(ctx context.Context, cursor *mongo.Cursor, collection string) {
	if cursor == nil {
		return
	}
	if err := cursor.Close(ctx); err != nil {
		logging.Warn().Str("collection", collection).Err(err).Msg("Failed to close cursor")
	}
}

// disconnectQuietly disconnects a client on an error path where the
// disconnect error is not actionable
func disconnectQuietly(client *mongo.Client) {
	if client != nil {
		_ = client.Disconnect(context.Background()) // best-effort cleanup
	}
}
