// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/videotube/internal/auth"
	"github.com/tomtom215/videotube/internal/config"
	"github.com/tomtom215/videotube/internal/middleware"
)

const defaultMediaMount = "/media"

// Router assembles the HTTP routes.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
	media         http.Handler
	mediaMount    string
}

// NewRouter creates a router. mediaFiles serves stored blobs for the
// filesystem backend and may be nil.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, cfg *config.Config, mediaFiles http.Handler) *Router {
	var sec *config.SecurityConfig
	mount := defaultMediaMount
	if cfg != nil {
		sec = &cfg.Security
		mount = mediaMountPath(cfg.Media.PublicBaseURL)
	}
	return &Router{
		handler:       handler,
		auth:          authMiddleware,
		chiMiddleware: NewChiMiddlewareFromSecurity(sec),
		media:         mediaFiles,
		mediaMount:    mount,
	}
}

// mediaMountPath is the path component of the public media URL
func mediaMountPath(publicBaseURL string) string {
	u, err := url.Parse(publicBaseURL)
	if err != nil {
		return defaultMediaMount
	}
	p := "/" + strings.Trim(u.Path, "/")
	if p == "/" {
		return defaultMediaMount
	}
	return p
}

// SetupChi builds the chi handler tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	if router.media != nil {
		r.Handle(router.mediaMount+"/*", http.StripPrefix(router.mediaMount, router.media))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/healthcheck", router.handler.Healthcheck)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(router.auth.Authenticate)

			r.Route("/videos", func(r chi.Router) {
				r.Get("/", router.handler.SearchVideos)
				r.Post("/", router.handler.PublishVideo)
				r.Patch("/toggle/publish/{videoId}", router.handler.TogglePublishStatus)
				r.Get("/{videoId}", router.handler.GetVideo)
				r.Patch("/{videoId}", router.handler.UpdateVideo)
				r.Delete("/{videoId}", router.handler.DeleteVideo)
			})

			r.Route("/comments", func(r chi.Router) {
				r.Patch("/c/{commentId}", router.handler.UpdateComment)
				r.Delete("/c/{commentId}", router.handler.DeleteComment)
				r.Get("/{videoId}", router.handler.ListComments)
				r.Post("/{videoId}", router.handler.AddComment)
			})

			r.Route("/tweets", func(r chi.Router) {
				r.Post("/", router.handler.CreateTweet)
				r.Get("/user/{userId}", router.handler.ListUserTweets)
				r.Patch("/{tweetId}", router.handler.UpdateTweet)
				r.Delete("/{tweetId}", router.handler.DeleteTweet)
			})

			r.Route("/playlist", func(r chi.Router) {
				r.Post("/", router.handler.CreatePlaylist)
				r.Get("/user/{userId}", router.handler.ListUserPlaylists)
				r.Patch("/add/{videoId}/{playlistId}", router.handler.AddVideoToPlaylist)
				r.Patch("/remove/{videoId}/{playlistId}", router.handler.RemoveVideoFromPlaylist)
				r.Get("/{playlistId}", router.handler.GetPlaylist)
				r.Patch("/{playlistId}", router.handler.UpdatePlaylist)
				r.Delete("/{playlistId}", router.handler.DeletePlaylist)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/c/{channelId}", router.handler.ToggleSubscription)
				r.Get("/c/{channelId}", router.handler.CountSubscribers)
				r.Get("/u/{subscriberId}", router.handler.ListSubscribedChannels)
			})

			r.Post("/likes/toggle/v/{videoId}", router.handler.ToggleVideoLike)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", router.handler.ChannelStats)
				r.Get("/videos", router.handler.ChannelVideos)
			})
		})
	})

	return r
}
