// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/database"
	"github.com/tomtom215/videotube/internal/models"
)

// VideoStore persists the video catalog.
type VideoStore interface {
	InsertVideo(ctx context.Context, video *models.Video) error
	GetVideo(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	VideoExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	GetVideoWithOwner(ctx context.Context, id primitive.ObjectID) (*models.VideoWithOwner, error)
	SearchVideos(ctx context.Context, params database.VideoSearchParams) ([]models.VideoSearchResult, error)
	UpdateVideoDetails(ctx context.Context, id, owner primitive.ObjectID, title, description, thumbnail string) (*models.Video, error)
	SetVideoPublished(ctx context.Context, id, owner primitive.ObjectID, published bool) (*models.Video, error)
	DeleteVideo(ctx context.Context, id, owner primitive.ObjectID) error
	ListChannelVideos(ctx context.Context, owner primitive.ObjectID) ([]models.ChannelVideo, error)
}

// CommentStore persists comments.
type CommentStore interface {
	ListComments(ctx context.Context, videoID primitive.ObjectID, page, limit int) ([]models.CommentView, error)
	InsertComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	UpdateCommentContent(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id, owner primitive.ObjectID) (*models.Comment, error)
}

// TweetStore persists tweets.
type TweetStore interface {
	ListUserTweets(ctx context.Context, ownerID primitive.ObjectID, page, limit int) ([]models.TweetView, error)
	InsertTweet(ctx context.Context, tweet *models.Tweet) error
	GetTweet(ctx context.Context, id primitive.ObjectID) (*models.Tweet, error)
	UpdateTweetContent(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Tweet, error)
	DeleteTweet(ctx context.Context, id, owner primitive.ObjectID) (*models.Tweet, error)
}

// PlaylistStore persists playlists and their membership.
type PlaylistStore interface {
	InsertPlaylist(ctx context.Context, playlist *models.Playlist) error
	GetPlaylist(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error)
	ListUserPlaylists(ctx context.Context, ownerID primitive.ObjectID) ([]models.PlaylistView, error)
	GetPlaylistView(ctx context.Context, id primitive.ObjectID) (*models.PlaylistView, error)
	AddVideoToPlaylist(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error)
	RemoveVideoFromPlaylist(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id, owner primitive.ObjectID, upd database.PlaylistUpdate) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, id, owner primitive.ObjectID) error
}

// SubscriptionStore persists subscriber -> channel edges.
type SubscriptionStore interface {
	ToggleSubscription(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.Subscription, bool, error)
	CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error)
	ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.SubscribedChannel, error)
}

// LikeStore persists video likes.
type LikeStore interface {
	ToggleVideoLike(ctx context.Context, video, user primitive.ObjectID) (bool, error)
}

// StatsStore aggregates channel statistics.
type StatsStore interface {
	GetChannelStats(ctx context.Context, owner primitive.ObjectID) (*models.ChannelStats, error)
}

// Store is everything the handlers need from persistence.
// *database.DB satisfies it; tests use an in-memory fake.
type Store interface {
	VideoStore
	CommentStore
	TweetStore
	PlaylistStore
	SubscriptionStore
	LikeStore
	StatsStore
	Ping(ctx context.Context) error
}

var _ Store = (*database.DB)(nil)

// storeError turns a persistence error into an AppError. ErrNotFound from
// an owner-scoped write means the entity vanished between the ownership
// read and the write.
func storeError(op string, err error, notFound, failed string) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return models.NotFound(op, notFound)
	default:
		return models.Internal(op, err, failed)
	}
}
