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

// ListComments returns one page of a video's comments with their authors
func (db *DB) ListComments(ctx context.Context, videoID primitive.ObjectID, page, limit int) ([]models.CommentView, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows := []models.CommentView{}
	if err := db.aggregate(ctx, models.CollectionComments, CommentsPipeline(videoID, page, limit), &rows); err != nil {
		return nil, wrapError("list comments", err)
	}
	return rows, nil
}

// InsertComment stores a new comment and fills in its ID and timestamps
func (db *DB) InsertComment(ctx context.Context, comment *models.Comment) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := db.now()
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	start := time.Now()
	_, err := db.coll(models.CollectionComments).InsertOne(ctx, comment)
	db.observe("insert", models.CollectionComments, start, err)
	return wrapError("insert comment", err)
}

// GetComment returns a comment by ID
func (db *DB) GetComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var comment models.Comment
	start := time.Now()
	err := db.coll(models.CollectionComments).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	db.observe("find", models.CollectionComments, start, err)
	if err != nil {
		return nil, wrapError("get comment", err)
	}
	return &comment, nil
}

// UpdateCommentContent replaces the content of a comment owned by owner
func (db *DB) UpdateCommentContent(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: db.now()},
	}}}

	var comment models.Comment
	start := time.Now()
	err := db.coll(models.CollectionComments).
		FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&comment)
	db.observe("update", models.CollectionComments, start, err)
	if err != nil {
		return nil, wrapError("update comment", err)
	}
	return &comment, nil
}

// DeleteComment removes a comment owned by owner and returns it
func (db *DB) DeleteComment(ctx context.Context, id, owner primitive.ObjectID) (*models.Comment, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var comment models.Comment
	start := time.Now()
	err := db.coll(models.CollectionComments).
		FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}).
		Decode(&comment)
	db.observe("delete", models.CollectionComments, start, err)
	if err != nil {
		return nil, wrapError("delete comment", err)
	}
	return &comment, nil
}
