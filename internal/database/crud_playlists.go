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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/videotube/internal/models"
)

// ErrNotApplied is returned when a conditional membership write matched no
// document: the video is already a member on add, or not a member on remove.
var ErrNotApplied = errors.New("conditional write not applied")

// PlaylistUpdate holds the fields to change. Nil fields are left as they are.
type PlaylistUpdate struct {
	Name        *string
	Description *string
}

// InsertPlaylist stores a new, empty playlist. A name the owner already
// uses yields ErrDuplicateKey.
func (db *DB) InsertPlaylist(ctx context.Context, playlist *models.Playlist) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := db.now()
	playlist.ID = primitive.NewObjectID()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}

	start := time.Now()
	_, err := db.coll(models.CollectionPlaylists).InsertOne(ctx, playlist)
	db.observe("insert", models.CollectionPlaylists, start, err)
	return wrapError("insert playlist", err)
}

// GetPlaylist returns the stored playlist document
func (db *DB) GetPlaylist(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var playlist models.Playlist
	start := time.Now()
	err := db.coll(models.CollectionPlaylists).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist)
	db.observe("find", models.CollectionPlaylists, start, err)
	if err != nil {
		return nil, wrapError("get playlist", err)
	}
	return &playlist, nil
}

// ListUserPlaylists returns every playlist owned by ownerID, expanded
func (db *DB) ListUserPlaylists(ctx context.Context, ownerID primitive.ObjectID) ([]models.PlaylistView, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows := []models.PlaylistView{}
	if err := db.aggregate(ctx, models.CollectionPlaylists, UserPlaylistsPipeline(ownerID), &rows); err != nil {
		return nil, wrapError("list playlists", err)
	}
	return rows, nil
}

// GetPlaylistView returns one playlist with member video details
func (db *DB) GetPlaylistView(ctx context.Context, id primitive.ObjectID) (*models.PlaylistView, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var rows []models.PlaylistView
	if err := db.aggregate(ctx, models.CollectionPlaylists, PlaylistDetailPipeline(id), &rows); err != nil {
		return nil, wrapError("get playlist view", err)
	}
	if len(rows) == 0 {
		return nil, wrapError("get playlist view", ErrNotFound)
	}
	return &rows[0], nil
}

// AddVideoToPlaylist appends videoID unless it is already a member. The
// membership check and the push are one conditional write; ErrNotApplied
// means no owned playlist without the video matched.
func (db *DB) AddVideoToPlaylist(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: owner},
		{Key: "videos", Value: bson.D{{Key: "$ne", Value: videoID}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: db.now()}}},
	}
	return db.updatePlaylistMembers(ctx, "add video to playlist", filter, update)
}

// RemoveVideoFromPlaylist pulls videoID if it is a member. ErrNotApplied
// means no owned playlist containing the video matched.
func (db *DB) RemoveVideoFromPlaylist(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: owner},
		{Key: "videos", Value: videoID},
	}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: db.now()}}},
	}
	return db.updatePlaylistMembers(ctx, "remove video from playlist", filter, update)
}

func (db *DB) updatePlaylistMembers(ctx context.Context, op string, filter, update bson.D) (*models.Playlist, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var playlist models.Playlist
	start := time.Now()
	err := db.coll(models.CollectionPlaylists).
		FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&playlist)
	db.observe("update", models.CollectionPlaylists, start, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, wrapError(op, ErrNotApplied)
	}
	if err != nil {
		return nil, wrapError(op, err)
	}
	return &playlist, nil
}

// UpdatePlaylist sets the provided fields on a playlist owned by owner.
// Renaming to a name the owner already uses yields ErrDuplicateKey.
func (db *DB) UpdatePlaylist(ctx context.Context, id, owner primitive.ObjectID, upd PlaylistUpdate) (*models.Playlist, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	set := bson.D{{Key: "updatedAt", Value: db.now()}}
	if upd.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *upd.Name})
	}
	if upd.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *upd.Description})
	}

	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	var playlist models.Playlist
	start := time.Now()
	err := db.coll(models.CollectionPlaylists).
		FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&playlist)
	db.observe("update", models.CollectionPlaylists, start, err)
	if err != nil {
		return nil, wrapError("update playlist", err)
	}
	return &playlist, nil
}

// DeletePlaylist removes a playlist owned by owner
func (db *DB) DeletePlaylist(ctx context.Context, id, owner primitive.ObjectID) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.coll(models.CollectionPlaylists).DeleteOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}})
	db.observe("delete", models.CollectionPlaylists, start, err)
	if err != nil {
		return wrapError("delete playlist", err)
	}
	if res.DeletedCount == 0 {
		return wrapError("delete playlist", ErrNotFound)
	}
	return nil
}
