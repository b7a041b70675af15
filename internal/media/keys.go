// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package media

import "github.com/google/uuid"

// newObjectKey returns prefix + random UUID + ext, e.g. videos/<uuid>.mp4
func newObjectKey(prefix, ext string) string {
	return prefix + uuid.NewString() + ext
}
