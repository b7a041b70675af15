// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/videotube/internal/logging"
	"github.com/tomtom215/videotube/internal/models"
)

// indexSpec is one index on one collection
type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

// indexSpecs returns every index the service relies on. The unique indexes
// enforce playlist name per owner, one subscription edge per pair and one
// like per (video, user).
func indexSpecs() []indexSpec {
	return []indexSpec{
		{models.CollectionVideos, mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("owner_createdAt"),
		}},
		{models.CollectionComments, mongo.IndexModel{
			Keys:    bson.D{{Key: "video", Value: 1}},
			Options: options.Index().SetName("video"),
		}},
		{models.CollectionTweets, mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("owner_createdAt"),
		}},
		{models.CollectionPlaylists, mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetName("owner_name_unique").SetUnique(true),
		}},
		{models.CollectionSubscriptions, mongo.IndexModel{
			Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
			Options: options.Index().SetName("subscriber_channel_unique").SetUnique(true),
		}},
		{models.CollectionSubscriptions, mongo.IndexModel{
			Keys:    bson.D{{Key: "channel", Value: 1}},
			Options: options.Index().SetName("channel"),
		}},
		{models.CollectionLikes, mongo.IndexModel{
			Keys:    bson.D{{Key: "video", Value: 1}, {Key: "likedBy", Value: 1}},
			Options: options.Index().SetName("video_likedBy_unique").SetUnique(true),
		}},
	}
}

// EnsureIndexes creates missing indexes. Creating an index that already
// exists with the same definition is a no-op on the server.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	byCollection := make(map[string][]mongo.IndexModel)
	for _, spec := range indexSpecs() {
		byCollection[spec.collection] = append(byCollection[spec.collection], spec.model)
	}

	for _, name := range collections {
		indexModels, ok := byCollection[name]
		if !ok {
			continue
		}
		start := time.Now()
		created, err := db.coll(name).Indexes().CreateMany(ctx, indexModels)
		db.observe("create_index", name, start, err)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
		logging.Debug().Str("collection", name).Strs("indexes", created).Msg("Indexes ensured")
	}
	return nil
}
