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

// ListUserTweets returns one page of a user's tweets, newest first
func (db *DB) ListUserTweets(ctx context.Context, ownerID primitive.ObjectID, page, limit int) ([]models.TweetView, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows := []models.TweetView{}
	if err := db.aggregate(ctx, models.CollectionTweets, UserTweetsPipeline(ownerID, page, limit), &rows); err != nil {
		return nil, wrapError("list tweets", err)
	}
	return rows, nil
}

// InsertTweet stores a new tweet and fills in its ID and timestamps
func (db *DB) InsertTweet(ctx context.Context, tweet *models.Tweet) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := db.now()
	tweet.ID = primitive.NewObjectID()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	start := time.Now()
	_, err := db.coll(models.CollectionTweets).InsertOne(ctx, tweet)
	db.observe("insert", models.CollectionTweets, start, err)
	return wrapError("insert tweet", err)
}

// GetTweet returns a tweet by ID
func (db *DB) GetTweet(ctx context.Context, id primitive.ObjectID) (*models.Tweet, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var tweet models.Tweet
	start := time.Now()
	err := db.coll(models.CollectionTweets).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	db.observe("find", models.CollectionTweets, start, err)
	if err != nil {
		return nil, wrapError("get tweet", err)
	}
	return &tweet, nil
}

// UpdateTweetContent replaces the content of a tweet owned by owner
func (db *DB) UpdateTweetContent(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Tweet, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: db.now()},
	}}}

	var tweet models.Tweet
	start := time.Now()
	err := db.coll(models.CollectionTweets).
		FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&tweet)
	db.observe("update", models.CollectionTweets, start, err)
	if err != nil {
		return nil, wrapError("update tweet", err)
	}
	return &tweet, nil
}

// DeleteTweet removes a tweet owned by owner and returns it
func (db *DB) DeleteTweet(ctx context.Context, id, owner primitive.ObjectID) (*models.Tweet, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var tweet models.Tweet
	start := time.Now()
	err := db.coll(models.CollectionTweets).
		FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}).
		Decode(&tweet)
	db.observe("delete", models.CollectionTweets, start, err)
	if err != nil {
		return nil, wrapError("delete tweet", err)
	}
	return &tweet, nil
}
