// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names in the document store.
const (
	CollectionUsers         = "users"
	CollectionVideos        = "videos"
	CollectionComments      = "comments"
	CollectionTweets        = "tweets"
	CollectionPlaylists     = "playlists"
	CollectionSubscriptions = "subscriptions"
	CollectionLikes         = "likes"
)

// User is an account owned by the account service. This service only reads
// users to build owner summaries and never writes them.
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	FullName  string             `json:"fullName" bson:"fullName"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Video is an uploaded video. VideoFile and Thumbnail are media store URLs.
//
// Views only ever grows and IsPublished defaults to true on publish.
type Video struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Comment is a user's comment on a video.
type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Video     primitive.ObjectID `json:"video" bson:"video"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Tweet is a short text post on a user's channel.
type Tweet struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Playlist is an ordered, duplicate-free list of videos. Name is unique per owner.
type Playlist struct {
	ID          primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Subscription is a subscriber -> channel edge, both users.
type Subscription struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Like records that LikedBy liked Video.
type Like struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Video     primitive.ObjectID `json:"video" bson:"video"`
	LikedBy   primitive.ObjectID `json:"likedBy" bson:"likedBy"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
