// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package api exposes the VideoTube HTTP interface.

Every route lives under /api/v1 and, except the healthcheck, requires a
bearer token (see package auth). Responses use one envelope:

	{"statusCode": 200, "data": {...}, "message": "...", "success": true}
	{"statusCode": 404, "code": "NOT_FOUND", "message": "...", "success": false, "errors": []}

Handlers return *models.AppError values and respondError maps the error
kind to the status:

	Validation    400 VALIDATION_FAILED
	NotFound      404 NOT_FOUND
	Forbidden     403 FORBIDDEN
	Conflict      400 CONFLICT
	Unauthorized  401 UNAUTHORIZED
	Upstream      500 EXTERNAL_SERVICE_FAILED
	Internal      500 INTERNAL_ERROR

Mutations check ownership by reading the entity first and then issue an
owner-scoped write, so a concurrent delete surfaces as NotFound rather than
a write to someone else's document.

Video uploads are multipart. The media store is called once per blob with no
retry; blobs stored by a request that later fails are removed best-effort.

Wiring:

	handler := api.NewHandler(db, mediaClient, cfg)
	router := api.NewRouter(handler, auth.NewMiddleware(jwt, api.RejectUnauthorized), cfg, mediaFiles)
	srv := &http.Server{Handler: router.SetupChi()}
*/
package api
