// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package database

import (
	"math"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/videotube/internal/models"
)

// Aggregation pipeline builders. They are pure functions so the stage
// shapes can be unit tested without a server.

// Sortable video fields accepted by SearchVideos.
const (
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
	SortByTitle     = "title"
	SortByViews     = "views"
	SortByDuration  = "duration"
)

// VideoSortFields is the allow-list for the catalog sort key
var VideoSortFields = map[string]bool{
	SortByCreatedAt: true,
	SortByUpdatedAt: true,
	SortByTitle:     true,
	SortByViews:     true,
	SortByDuration:  true,
}

// VideoSearchParams selects and orders catalog rows
type VideoSearchParams struct {
	Query     string
	OwnerID   *primitive.ObjectID
	SortBy    string
	Ascending bool
	Page      int
	Limit     int
}

// userSummaryProjection is the public face of a user in every join
var userSummaryProjection = bson.D{
	{Key: "username", Value: 1},
	{Key: "fullName", Value: 1},
	{Key: "avatar", Value: 1},
}

// lookupUserSummary joins users on localField into as, keeping only the summary fields
func lookupUserSummary(localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: models.CollectionUsers},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
		{Key: "pipeline", Value: mongo.Pipeline{
			{{Key: "$project", Value: userSummaryProjection}},
		}},
	}}}
}

// firstOf replaces the array field with its first element
func firstOf(field string) bson.D {
	return bson.D{{Key: "$addFields", Value: bson.D{
		{Key: field, Value: bson.D{{Key: "$first", Value: "$" + field}}},
	}}}
}

// paginate returns the $skip and $limit stages for a 1-based page. A skip
// past math.MaxInt64 saturates.
func paginate(page, limit int) []bson.D {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	skip := int64(math.MaxInt64)
	if int64(page-1) <= math.MaxInt64/int64(limit) {
		skip = int64(page-1) * int64(limit)
	}
	return []bson.D{
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: int64(limit)}},
	}
}

func match(filter bson.D) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

func project(fields bson.D) bson.D {
	return bson.D{{Key: "$project", Value: fields}}
}

// CommentsPipeline lists a video's comments with their author as createdBy,
// in store order. Comments whose author no longer exists are dropped by the
// $unwind.
func CommentsPipeline(videoID primitive.ObjectID, page, limit int) mongo.Pipeline {
	p := mongo.Pipeline{
		match(bson.D{{Key: "video", Value: videoID}}),
		lookupUserSummary("owner", "createdBy"),
		firstOf("createdBy"),
		{{Key: "$unwind", Value: "$createdBy"}},
		project(bson.D{{Key: "content", Value: 1}, {Key: "createdBy", Value: 1}}),
	}
	return append(p, paginate(page, limit)...)
}

// UserTweetsPipeline lists a user's tweets newest first with the author
// summary in place of the owner ID.
func UserTweetsPipeline(ownerID primitive.ObjectID, page, limit int) mongo.Pipeline {
	p := mongo.Pipeline{
		match(bson.D{{Key: "owner", Value: ownerID}}),
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		lookupUserSummary("owner", "owner"),
		firstOf("owner"),
		project(bson.D{{Key: "content", Value: 1}, {Key: "owner", Value: 1}, {Key: "createdAt", Value: 1}}),
	}
	return append(p, paginate(page, limit)...)
}

// playlistVideoFields is the member video projection of the list view
var playlistVideoFields = bson.D{
	{Key: "title", Value: 1},
	{Key: "description", Value: 1},
	{Key: "thumbnail", Value: 1},
	{Key: "owner", Value: 1},
}

// playlistVideoDetailFields adds the per-video detail of the single playlist view
var playlistVideoDetailFields = append(append(bson.D{}, playlistVideoFields...),
	bson.E{Key: "duration", Value: 1},
	bson.E{Key: "views", Value: 1},
	bson.E{Key: "createdAt", Value: 1},
	bson.E{Key: "updatedAt", Value: 1},
)

// playlistStages expands a matched playlist: owner as createdBy and each
// member video with its own owner summary. $lookup does not preserve the
// order of the localField array, so members are re-ordered by the stored
// videos array; references to deleted videos are dropped.
func playlistStages(videoFields bson.D) []bson.D {
	reorder := bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$map", Value: bson.D{
			{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$videos", bson.A{}}}}},
			{Key: "as", Value: "id"},
			{Key: "in", Value: bson.D{{Key: "$first", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: "$videoDocs"},
				{Key: "as", Value: "doc"},
				{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$doc._id", "$$id"}}}},
			}}}}}},
		}}}},
		{Key: "as", Value: "video"},
		{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$video", nil}}}},
	}}}

	return []bson.D{
		lookupUserSummary("owner", "createdBy"),
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: models.CollectionVideos},
			{Key: "localField", Value: "videos"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoDocs"},
			{Key: "pipeline", Value: mongo.Pipeline{
				lookupUserSummary("owner", "owner"),
				firstOf("owner"),
				project(videoFields),
			}},
		}}},
		firstOf("createdBy"),
		{{Key: "$addFields", Value: bson.D{{Key: "videos", Value: reorder}}}},
		project(bson.D{
			{Key: "name", Value: 1},
			{Key: "description", Value: 1},
			{Key: "createdBy", Value: 1},
			{Key: "videos", Value: 1},
		}),
	}
}

// UserPlaylistsPipeline lists every playlist owned by ownerID
func UserPlaylistsPipeline(ownerID primitive.ObjectID) mongo.Pipeline {
	p := mongo.Pipeline{
		match(bson.D{{Key: "owner", Value: ownerID}}),
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	return append(p, playlistStages(playlistVideoFields)...)
}

// PlaylistDetailPipeline expands one playlist with member video details
func PlaylistDetailPipeline(playlistID primitive.ObjectID) mongo.Pipeline {
	p := mongo.Pipeline{
		match(bson.D{{Key: "_id", Value: playlistID}}),
	}
	return append(p, playlistStages(playlistVideoDetailFields)...)
}

// SubscribedChannelsPipeline lists the channels subscriberID follows with
// each channel's summary.
func SubscribedChannelsPipeline(subscriberID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "subscriber", Value: subscriberID}}),
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		lookupUserSummary("channel", "channelDetails"),
		firstOf("channelDetails"),
		project(bson.D{{Key: "channelDetails", Value: 1}}),
	}
}

// VideoSearchPipeline filters, sorts and pages the catalog, then joins the
// owner as createdBy. Sorting happens before the projection; the sort key
// is projected so the order is visible to clients. An unknown sort key
// falls back to createdAt, so callers should validate against
// VideoSortFields first.
func VideoSearchPipeline(params VideoSearchParams) mongo.Pipeline {
	filter := bson.D{}
	if params.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(params.Query), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
		}})
	}
	if params.OwnerID != nil {
		filter = append(filter, bson.E{Key: "owner", Value: *params.OwnerID})
	}

	sortBy := params.SortBy
	if !VideoSortFields[sortBy] {
		sortBy = SortByCreatedAt
	}
	direction := -1
	if params.Ascending {
		direction = 1
	}

	fields := bson.D{
		{Key: "thumbnail", Value: 1},
		{Key: "videoFile", Value: 1},
		{Key: "title", Value: 1},
		{Key: "description", Value: 1},
		{Key: "createdBy", Value: 1},
	}
	if sortBy != SortByTitle {
		fields = append(fields, bson.E{Key: sortBy, Value: 1})
	}

	p := mongo.Pipeline{
		match(filter),
		{{Key: "$sort", Value: bson.D{{Key: sortBy, Value: direction}, {Key: "_id", Value: direction}}}},
	}
	p = append(p, paginate(params.Page, params.Limit)...)
	return append(p,
		lookupUserSummary("owner", "createdBy"),
		firstOf("createdBy"),
		project(fields),
	)
}

// VideoWithOwnerPipeline fetches one video with its owner summary
func VideoWithOwnerPipeline(videoID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "_id", Value: videoID}}),
		lookupUserSummary("owner", "owner"),
		firstOf("owner"),
	}
}

// ChannelViewsPipeline sums views and counts videos owned by ownerID
func ChannelViewsPipeline(ownerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "owner", Value: ownerID}}),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// ChannelSubscribersPipeline counts subscription edges into channelID
func ChannelSubscribersPipeline(channelID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "channel", Value: channelID}}),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSubscribers", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// ChannelLikesPipeline counts likes on videos owned by ownerID. Likes are
// joined to their video before filtering on the video's owner.
func ChannelLikesPipeline(ownerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: models.CollectionVideos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoInfo"},
		}}},
		{{Key: "$unwind", Value: "$videoInfo"}},
		match(bson.D{{Key: "videoInfo.owner", Value: ownerID}}),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}
