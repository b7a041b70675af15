// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package models defines the data structures shared by the store, the media
layer and the HTTP API.

Model Categories:

 1. Entities (entities.go): documents as persisted in MongoDB, one type per
    collection (User, Video, Comment, Tweet, Playlist, Subscription, Like).
    Identifiers are primitive.ObjectID and encode as 24-hex strings.

 2. Views (views.go): aggregation pipeline outputs such as CommentView,
    PlaylistView and ChannelStats. Joined users appear as UserSummary.

 3. Errors (errors.go): AppError with an ErrorKind the API maps to an HTTP
    status. Store sentinels live in internal/database.

JSON field names use camelCase with "_id" for identifiers, which is the wire
format existing clients consume.
*/
package models
