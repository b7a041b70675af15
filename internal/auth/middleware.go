// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/videotube/internal/logging"
)

// AccessTokenCookie is the cookie checked when no Authorization header is sent.
const AccessTokenCookie = "accessToken"

var (
	errMissingToken = errors.New("missing access token")
	errBadHeader    = errors.New("invalid authorization header")
)

type contextKey string

const actorContextKey contextKey = "actor"

// Actor is the authenticated user making the request.
type Actor struct {
	ID       primitive.ObjectID
	Username string
}

// ContextWithActor stores actor in ctx.
func ContextWithActor(ctx context.Context, actor Actor) context.Context {
	ctx = context.WithValue(ctx, actorContextKey, actor)
	return logging.ContextWithActorID(ctx, actor.ID.Hex())
}

// ActorFromContext returns the actor set by Middleware.Authenticate.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(Actor)
	return actor, ok
}

// RejectFunc writes the response for an unauthenticated request.
type RejectFunc func(w http.ResponseWriter, r *http.Request, message string)

// Middleware authenticates requests with bearer tokens.
type Middleware struct {
	jwtManager *JWTManager
	security   *logging.SecurityLogger
	reject     RejectFunc
}

// NewMiddleware creates the authentication middleware. reject renders 401
// responses; nil falls back to http.Error.
func NewMiddleware(jwtManager *JWTManager, reject RejectFunc) *Middleware {
	if reject == nil {
		reject = func(w http.ResponseWriter, _ *http.Request, message string) {
			http.Error(w, message, http.StatusUnauthorized)
		}
	}
	return &Middleware{
		jwtManager: jwtManager,
		security:   logging.NewSecurityLogger(),
		reject:     reject,
	}
}

// Authenticate requires a valid access token and puts the Actor in the
// request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractToken(r)
		if err != nil {
			m.security.LogTokenRejected("", err.Error(), r.RemoteAddr, r.URL.Path)
			m.reject(w, r, "Unauthorized request")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.security.LogTokenRejected(token, err.Error(), r.RemoteAddr, r.URL.Path)
			m.reject(w, r, "Invalid access token")
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID())
		if err != nil {
			m.security.LogTokenRejected(token, "subject is not an ObjectID", r.RemoteAddr, r.URL.Path)
			m.reject(w, r, "Invalid access token")
			return
		}

		ctx := ContextWithActor(r.Context(), Actor{ID: userID, Username: claims.Username})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads the bearer token from the Authorization header, or
// the access token cookie when the header is absent.
func extractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		cookie, err := r.Cookie(AccessTokenCookie)
		if err != nil || cookie.Value == "" {
			return "", errMissingToken
		}
		return cookie.Value, nil
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errBadHeader
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}
