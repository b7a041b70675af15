// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

// Package services holds the suture.Service implementations run by the
// supervisor tree: the HTTP server, the database monitor and the uptime
// tracker. Each has a String method so suture's event log names it.
package services
