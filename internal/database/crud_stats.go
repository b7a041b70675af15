// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/models"
)

type viewsRow struct {
	TotalViews  int64 `bson:"totalViews"`
	TotalVideos int64 `bson:"totalVideos"`
}

type subscribersRow struct {
	TotalSubscribers int64 `bson:"totalSubscribers"`
}

type likesRow struct {
	TotalLikes int64 `bson:"totalLikes"`
}

// GetChannelStats runs the three channel aggregations for owner. A pipeline
// that yields no rows contributes zero.
func (db *DB) GetChannelStats(ctx context.Context, owner primitive.ObjectID) (*models.ChannelStats, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	stats := &models.ChannelStats{}

	var views []viewsRow
	if err := db.aggregate(ctx, models.CollectionVideos, ChannelViewsPipeline(owner), &views); err != nil {
		return nil, wrapError("channel views", err)
	}
	if len(views) > 0 {
		stats.TotalViews = views[0].TotalViews
		stats.TotalVideos = views[0].TotalVideos
	}

	var subs []subscribersRow
	if err := db.aggregate(ctx, models.CollectionSubscriptions, ChannelSubscribersPipeline(owner), &subs); err != nil {
		return nil, wrapError("channel subscribers", err)
	}
	if len(subs) > 0 {
		stats.TotalSubscribers = subs[0].TotalSubscribers
	}

	var likes []likesRow
	if err := db.aggregate(ctx, models.CollectionLikes, ChannelLikesPipeline(owner), &likes); err != nil {
		return nil, wrapError("channel likes", err)
	}
	if len(likes) > 0 {
		stats.TotalLikes = likes[0].TotalLikes
	}

	return stats, nil
}
