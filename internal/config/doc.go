// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package config provides centralized configuration management for VideoTube.

Configuration is layered with Koanf v2: built-in defaults, an optional YAML
file, then environment variables. A .env file is read first for local
development and never overrides variables that are already set.

# Environment Variables

Server:
  - PORT / HTTP_PORT: Listen port (default: 8000)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)

MongoDB:
  - MONGODB_URI: Connection string (required)
  - MONGODB_DATABASE: Database name (default: videotube)

Media store:
  - MEDIA_BACKEND: s3 or filesystem (default: filesystem)
  - S3_ENDPOINT, S3_REGION, S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY
  - MEDIA_PUBLIC_BASE_URL: URL prefix stored on videos
  - MEDIA_LOCAL_DIR: Directory for the filesystem backend

Security:
  - ACCESS_TOKEN_SECRET: HS256 secret shared with the account service (required)
  - CORS_ORIGIN: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - LOG_FILE, LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS

# Validation

Load returns an error when a required value is missing, a URL is malformed,
a bound is out of range, or a production deployment uses a wildcard CORS
origin or a short token secret.
*/
package config
