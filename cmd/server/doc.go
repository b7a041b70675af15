// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Command server runs the VideoTube API.

Startup order:

 1. Configuration: koanf v2 over defaults, config.yaml and environment
    variables (a .env file fills unset variables)
 2. Logging: zerolog, JSON or console, optional rotating file
 3. MongoDB: connect, ping, ensure indexes
 4. Media store: S3-compatible bucket or local directory
 5. Authentication: HS256 access-token verification
 6. Supervisor tree: database monitor, uptime tracker, HTTP server

# Configuration

	# Server
	PORT=8000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# MongoDB
	MONGODB_URI=mongodb://localhost:27017
	MONGODB_DATABASE=videotube

	# Media store
	MEDIA_BACKEND=filesystem     # or s3
	MEDIA_LOCAL_DIR=./data/media
	MEDIA_PUBLIC_BASE_URL=http://localhost:8000/media
	S3_BUCKET=videotube          # s3 backend
	S3_ENDPOINT=                 # set for R2, Spaces or MinIO

	# Tokens are issued elsewhere; this server only verifies them.
	ACCESS_TOKEN_SECRET=<32+ chars>

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to 10s, then the MongoDB client disconnects.
*/
package main
