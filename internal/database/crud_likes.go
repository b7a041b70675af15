// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/models"
)

// ToggleVideoLike removes user's like on video if present, otherwise adds
// it, and reports whether the video is liked afterwards. The unique
// (video, likedBy) index turns a lost insert race into "liked".
func (db *DB) ToggleVideoLike(ctx context.Context, video, user primitive.ObjectID) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	coll := db.coll(models.CollectionLikes)
	filter := bson.D{{Key: "video", Value: video}, {Key: "likedBy", Value: user}}

	start := time.Now()
	res, err := coll.DeleteOne(ctx, filter)
	db.observe("delete", models.CollectionLikes, start, err)
	if err != nil {
		return false, wrapError("toggle like", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	now := db.now()
	start = time.Now()
	_, err = coll.InsertOne(ctx, &models.Like{
		ID:        primitive.NewObjectID(),
		Video:     video,
		LikedBy:   user,
		CreatedAt: now,
		UpdatedAt: now,
	})
	db.observe("insert", models.CollectionLikes, start, err)
	err = wrapError("toggle like", err)
	if err != nil && !errors.Is(err, ErrDuplicateKey) {
		return false, err
	}
	return true, nil
}
