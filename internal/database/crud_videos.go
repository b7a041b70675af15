// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/videotube/internal/models"
)

// InsertVideo stores a new video and fills in its ID and timestamps
func (db *DB) InsertVideo(ctx context.Context, video *models.Video) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := db.now()
	video.ID = primitive.NewObjectID()
	video.CreatedAt = now
	video.UpdatedAt = now

	start := time.Now()
	_, err := db.coll(models.CollectionVideos).InsertOne(ctx, video)
	db.observe("insert", models.CollectionVideos, start, err)
	return wrapError("insert video", err)
}

// GetVideo returns the stored video document
func (db *DB) GetVideo(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var video models.Video
	start := time.Now()
	err := db.coll(models.CollectionVideos).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	db.observe("find", models.CollectionVideos, start, err)
	if err != nil {
		return nil, wrapError("get video", err)
	}
	return &video, nil
}

// VideoExists reports whether a video with id exists
func (db *DB) VideoExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	n, err := db.coll(models.CollectionVideos).CountDocuments(ctx,
		bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	db.observe("count", models.CollectionVideos, start, err)
	if err != nil {
		return false, wrapError("video exists", err)
	}
	return n > 0, nil
}

// GetVideoWithOwner returns a video with its owner summary joined
func (db *DB) GetVideoWithOwner(ctx context.Context, id primitive.ObjectID) (*models.VideoWithOwner, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var rows []models.VideoWithOwner
	if err := db.aggregate(ctx, models.CollectionVideos, VideoWithOwnerPipeline(id), &rows); err != nil {
		return nil, wrapError("get video with owner", err)
	}
	if len(rows) == 0 {
		return nil, wrapError("get video with owner", ErrNotFound)
	}
	return &rows[0], nil
}

// SearchVideos runs the catalog search. An empty result is not an error here.
func (db *DB) SearchVideos(ctx context.Context, params VideoSearchParams) ([]models.VideoSearchResult, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows := []models.VideoSearchResult{}
	if err := db.aggregate(ctx, models.CollectionVideos, VideoSearchPipeline(params), &rows); err != nil {
		return nil, wrapError("search videos", err)
	}
	return rows, nil
}

// UpdateVideoDetails sets title, description and thumbnail on a video owned
// by owner and returns the updated document.
func (db *DB) UpdateVideoDetails(ctx context.Context, id, owner primitive.ObjectID, title, description, thumbnail string) (*models.Video, error) {
	return db.updateVideo(ctx, "update video details", id, owner, bson.D{
		{Key: "title", Value: title},
		{Key: "description", Value: description},
		{Key: "thumbnail", Value: thumbnail},
	})
}

// SetVideoPublished sets the publish flag on a video owned by owner
func (db *DB) SetVideoPublished(ctx context.Context, id, owner primitive.ObjectID, published bool) (*models.Video, error) {
	return db.updateVideo(ctx, "set video published", id, owner, bson.D{
		{Key: "isPublished", Value: published},
	})
}

func (db *DB) updateVideo(ctx context.Context, op string, id, owner primitive.ObjectID, set bson.D) (*models.Video, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	set = append(set, bson.E{Key: "updatedAt", Value: db.now()})
	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	update := bson.D{{Key: "$set", Value: set}}

	var video models.Video
	start := time.Now()
	err := db.coll(models.CollectionVideos).
		FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&video)
	db.observe("update", models.CollectionVideos, start, err)
	if err != nil {
		return nil, wrapError(op, err)
	}
	return &video, nil
}

// DeleteVideo removes a video owned by owner
func (db *DB) DeleteVideo(ctx context.Context, id, owner primitive.ObjectID) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.coll(models.CollectionVideos).DeleteOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}})
	db.observe("delete", models.CollectionVideos, start, err)
	if err != nil {
		return wrapError("delete video", err)
	}
	if res.DeletedCount == 0 {
		return wrapError("delete video", ErrNotFound)
	}
	return nil
}

// ListChannelVideos returns every video owned by owner, newest first
func (db *DB) ListChannelVideos(ctx context.Context, owner primitive.ObjectID) ([]models.ChannelVideo, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.D{
			{Key: "videoFile", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "title", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "views", Value: 1},
			{Key: "isPublished", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
		})

	start := time.Now()
	cursor, err := db.coll(models.CollectionVideos).Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		db.observe("find", models.CollectionVideos, start, err)
		return nil, wrapError("list channel videos", err)
	}
	defer closeCursor(ctx, cursor, models.CollectionVideos)

	videos := []models.ChannelVideo{}
	err = cursor.All(ctx, &videos)
	db.observe("find", models.CollectionVideos, start, err)
	if err != nil {
		return nil, wrapError("list channel videos", err)
	}
	return videos, nil
}

// aggregate runs pipeline on collection and decodes every row into results
func (db *DB) aggregate(ctx context.Context, collection string, pipeline interface{}, results interface{}) error {
	start := time.Now()
	cursor, err := db.coll(collection).Aggregate(ctx, pipeline)
	if err != nil {
		db.observe("aggregate", collection, start, err)
		return err
	}
	defer closeCursor(ctx, cursor, collection)

	err = cursor.All(ctx, results)
	db.observe("aggregate", collection, start, err)
	return err
}
