// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package database provides MongoDB persistence for VideoTube.

All reads that join documents (comment authors, playlist members and their
owners, subscribed channels, search results) run as aggregation pipelines
inside the database. The pipeline builders in pipelines.go are pure
functions so their stage layout can be tested without a server.

# Concurrency

Invariants that span a read and a write are enforced by the store:

  - playlist membership uses a conditional $push filtered on videos $ne id,
    and a conditional $pull filtered on membership
  - subscription and like edges are toggled delete-then-insert over unique
    compound indexes
  - playlist names are unique per owner

Owner-scoped writes put the owner in the filter, so a mismatch reports
ErrNotFound without touching the document. Callers that need to tell
"absent" from "not yours" read first and check ownership.

# Errors

Driver errors are wrapped with the failing operation name. mongo.ErrNoDocuments
becomes ErrNotFound and duplicate key violations become ErrDuplicateKey.
Conditional membership writes that match nothing return ErrNotApplied.

# Metrics

Every driver call records mongodb_operation_duration_seconds and, on
failure, mongodb_operation_errors_total labelled by operation and
collection.

# Testing

Pipeline builders are covered by unit tests. Behaviour against a live
server is covered by integration tests (build tag integration) that start
MongoDB with testcontainers:

	go test -tags integration ./internal/database/...
*/
package database
