// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The types in this file are aggregation pipeline outputs. Their fields
// follow the $project stage of the pipeline that produces them, so a field
// a pipeline does not project is a nil pointer and is omitted on the wire.

// UserSummary is the public face of a user joined into other documents.
type UserSummary struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}

// CommentView is a comment with its author as createdBy.
type CommentView struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Content   string             `json:"content" bson:"content"`
	CreatedBy UserSummary        `json:"createdBy" bson:"createdBy"`
}

// TweetView is a tweet with its author summary in place of the owner ID.
type TweetView struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Content   string             `json:"content" bson:"content"`
	Owner     *UserSummary       `json:"owner,omitempty" bson:"owner,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// PlaylistVideo is a playlist member expanded with its owner. The detail
// view additionally carries duration, views and timestamps.
type PlaylistVideo struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Owner       *UserSummary       `json:"owner,omitempty" bson:"owner,omitempty"`
	Duration    *float64           `json:"duration,omitempty" bson:"duration,omitempty"`
	Views       *int64             `json:"views,omitempty" bson:"views,omitempty"`
	CreatedAt   *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// PlaylistView is a playlist with its owner as createdBy and member videos expanded.
type PlaylistView struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	CreatedBy   *UserSummary       `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	Videos      []PlaylistVideo    `json:"videos" bson:"videos"`
}

// VideoSearchResult is one row of the catalog search. The sort key is
// projected too, so at most one of the optional fields is set.
type VideoSearchResult struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	CreatedBy   *UserSummary       `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt   *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	Views       *int64             `json:"views,omitempty" bson:"views,omitempty"`
	Duration    *float64           `json:"duration,omitempty" bson:"duration,omitempty"`
}

// VideoWithOwner is a full video document with the owner populated.
type VideoWithOwner struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       *UserSummary       `json:"owner" bson:"owner"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ChannelVideo is a video as listed on its owner's dashboard.
type ChannelVideo struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SubscribedChannel is one subscription edge with the channel's summary.
type SubscribedChannel struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	ChannelDetails *UserSummary       `json:"channelDetails,omitempty" bson:"channelDetails,omitempty"`
}

// SubscribedChannels lists the channels a user subscribes to.
type SubscribedChannels struct {
	TotalCount int64               `json:"totalCount"`
	Channels   []SubscribedChannel `json:"channels"`
}

// SubscriberCount is the number of subscribers of a channel.
type SubscriberCount struct {
	SubscriberCount int64 `json:"subscriberCount"`
}

// ChannelStats summarises a channel for its owner's dashboard. Every field
// is zero, never absent, when the channel has nothing.
type ChannelStats struct {
	TotalViews       int64 `json:"totalViews"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

// LikeStatus reports the actor's like state on a video after a toggle.
type LikeStatus struct {
	IsLiked bool `json:"isLiked"`
}
