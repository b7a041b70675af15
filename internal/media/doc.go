// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package media stores uploaded videos and thumbnails.

Client implements Store on top of an ObjectStore backend:

  - S3Store: any S3-compatible bucket via aws-sdk-go-v2
  - FilesystemStore: a local directory, served under /media

Keys are videos/<uuid><ext> and images/<uuid><ext>. Public URLs are the
configured base URL plus the key, and deletes map a URL back to its key by
stripping that base. DeleteVideo only touches keys under videos/ and
DeleteImage only keys under images/; anything else reports "not found".

S3 has no transcoder, so a video's duration is declared by the uploader,
stored as object metadata and echoed in the Asset.

Every call is single attempt. A token bucket (golang.org/x/time/rate)
bounds outbound calls per second and a circuit breaker (sony/gobreaker)
fails fast while the backend is unhealthy. Both are shared by all requests.

Metrics: media_store_operation_duration_seconds, media_store_operations_total,
media_store_upload_bytes_total and the circuit_breaker_* family.
*/
package media
