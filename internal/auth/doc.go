// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package auth verifies access tokens and identifies the acting user.

Tokens are HS256 JWTs issued by the account service and shared through
JWT_SECRET. The sub claim is the user's ObjectID. Middleware.Authenticate
accepts the token from an "Authorization: Bearer" header or the accessToken
cookie, and stores an Actor in the request context:

	mw := auth.NewMiddleware(jwtManager, rejectFunc)
	r.Use(mw.Authenticate)

	actor, ok := auth.ActorFromContext(r.Context())

Rejected tokens are logged through the security logger with the token
masked.
*/
package auth
