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

// ToggleSubscription deletes the subscriber -> channel edge if it exists,
// otherwise creates it. It returns the edge and true when the caller is
// subscribed afterwards, or nil and false when the edge was removed.
//
// The unique (subscriber, channel) index keeps at most one edge. When a
// concurrent toggle inserts first, the existing edge is returned.
func (db *DB) ToggleSubscription(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.Subscription, bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	coll := db.coll(models.CollectionSubscriptions)
	filter := bson.D{{Key: "subscriber", Value: subscriber}, {Key: "channel", Value: channel}}

	start := time.Now()
	res, err := coll.DeleteOne(ctx, filter)
	db.observe("delete", models.CollectionSubscriptions, start, err)
	if err != nil {
		return nil, false, wrapError("toggle subscription", err)
	}
	if res.DeletedCount > 0 {
		return nil, false, nil
	}

	now := db.now()
	sub := &models.Subscription{
		ID:         primitive.NewObjectID(),
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	start = time.Now()
	_, err = coll.InsertOne(ctx, sub)
	db.observe("insert", models.CollectionSubscriptions, start, err)
	err = wrapError("toggle subscription", err)
	if errors.Is(err, ErrDuplicateKey) {
		var existing models.Subscription
		start = time.Now()
		findErr := coll.FindOne(ctx, filter).Decode(&existing)
		db.observe("find", models.CollectionSubscriptions, start, findErr)
		if findErr != nil {
			return nil, false, wrapError("toggle subscription", findErr)
		}
		return &existing, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return sub, true, nil
}

// CountSubscribers counts the edges into channel
func (db *DB) CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	n, err := db.coll(models.CollectionSubscriptions).CountDocuments(ctx, bson.D{{Key: "channel", Value: channel}})
	db.observe("count", models.CollectionSubscriptions, start, err)
	if err != nil {
		return 0, wrapError("count subscribers", err)
	}
	return n, nil
}

// ListSubscribedChannels returns the channels subscriber follows
func (db *DB) ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.SubscribedChannel, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows := []models.SubscribedChannel{}
	if err := db.aggregate(ctx, models.CollectionSubscriptions, SubscribedChannelsPipeline(subscriber), &rows); err != nil {
		return nil, wrapError("list subscribed channels", err)
	}
	return rows, nil
}
