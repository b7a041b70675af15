// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/videotube/internal/config"
	"github.com/tomtom215/videotube/internal/logging"
	"github.com/tomtom215/videotube/internal/metrics"
)

// Kind selects the key prefix of a blob.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// Delete outcomes reported in DeleteResult.Result.
const (
	ResultOK       = "ok"
	ResultNotFound = "not found"
)

const (
	videoPrefix = "videos/"
	imagePrefix = "images/"

	// metadataDuration is the object metadata key holding a video's
	// client-declared duration in seconds.
	metadataDuration = "duration"

	maxExtLen = 10
)

// ErrEmptyBlob is returned by Upload when the blob has no body.
var ErrEmptyBlob = errors.New("media: empty blob")

// Blob is an upload request.
type Blob struct {
	Kind        Kind
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	// Duration is the video length in seconds. Ignored for images.
	Duration float64
}

// Asset describes a stored blob.
type Asset struct {
	URL      string  `json:"url"`
	Key      string  `json:"key"`
	Duration float64 `json:"duration,omitempty"`
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	Result string `json:"result"`
}

// OK reports whether the blob was removed.
func (r *DeleteResult) OK() bool {
	return r != nil && r.Result == ResultOK
}

// Store is the media store used by the video handlers.
type Store interface {
	Upload(ctx context.Context, blob Blob) (*Asset, error)
	DeleteImage(ctx context.Context, url string) (*DeleteResult, error)
	DeleteVideo(ctx context.Context, url string) (*DeleteResult, error)
}

// Object is a single blob written to an ObjectStore.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
	Metadata    map[string]string
}

// ObjectStore is a key addressed blob backend.
type ObjectStore interface {
	// Name labels metrics and logs, e.g. "s3".
	Name() string
	Put(ctx context.Context, obj Object) error
	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)
}

// Client implements Store over an ObjectStore. It owns key layout, URL
// mapping, outbound throttling and the circuit breaker. Calls are single
// attempt.
type Client struct {
	objects ObjectStore
	baseURL string
	limiter *rate.Limiter
	breaker *Breaker
	newKey  func(prefix, ext string) string
}

var _ Store = (*Client)(nil)

// NewClient wraps objects with the throttling and breaker settings in cfg.
func NewClient(objects ObjectStore, cfg *config.MediaConfig) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		objects: objects,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		limiter: rate.NewLimiter(limit, burst),
		breaker: NewBreaker("media-"+objects.Name(), cfg.Breaker),
		newKey:  newObjectKey,
	}
}

// Upload stores blob under a fresh key and returns its public URL.
func (c *Client) Upload(ctx context.Context, blob Blob) (*Asset, error) {
	if blob.Body == nil {
		return nil, ErrEmptyBlob
	}

	prefix := imagePrefix
	if blob.Kind == KindVideo {
		prefix = videoPrefix
	}
	key := c.newKey(prefix, extension(blob.Filename))

	obj := Object{
		Key:         key,
		ContentType: blob.ContentType,
		Size:        blob.Size,
		Body:        blob.Body,
	}
	asset := &Asset{URL: c.URLFor(key), Key: key}
	if blob.Kind == KindVideo {
		obj.Metadata = map[string]string{
			metadataDuration: strconv.FormatFloat(blob.Duration, 'f', -1, 64),
		}
		asset.Duration = blob.Duration
	}

	op := "upload_" + string(blob.Kind)
	if err := c.call(ctx, op, func(ctx context.Context) (string, error) {
		return "success", c.objects.Put(ctx, obj)
	}); err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	metrics.RecordMediaUpload(c.objects.Name(), string(blob.Kind), blob.Size)
	logging.Ctx(ctx).Debug().
		Str("key", key).
		Int64("size", blob.Size).
		Msg("Media uploaded")

	return asset, nil
}

// DeleteImage deletes an image by URL. URLs outside images/ report "not found".
func (c *Client) DeleteImage(ctx context.Context, url string) (*DeleteResult, error) {
	return c.delete(ctx, "delete_image", imagePrefix, url)
}

// DeleteVideo deletes a video by URL. URLs outside videos/ report "not found".
func (c *Client) DeleteVideo(ctx context.Context, url string) (*DeleteResult, error) {
	return c.delete(ctx, "delete_video", videoPrefix, url)
}

func (c *Client) delete(ctx context.Context, op, prefix, url string) (*DeleteResult, error) {
	key, ok := c.KeyFor(url)
	if !ok || !strings.HasPrefix(key, prefix) {
		metrics.RecordMediaOperation(c.objects.Name(), op, "not_found", 0)
		return &DeleteResult{Result: ResultNotFound}, nil
	}

	var existed bool
	err := c.call(ctx, op, func(ctx context.Context) (string, error) {
		var err error
		existed, err = c.objects.Delete(ctx, key)
		if err == nil && !existed {
			return "not_found", nil
		}
		return "success", err
	})
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", key, err)
	}
	if !existed {
		return &DeleteResult{Result: ResultNotFound}, nil
	}
	return &DeleteResult{Result: ResultOK}, nil
}

// call throttles, runs fn through the breaker and records the outcome.
// fn returns the metric result label on success.
func (c *Client) call(ctx context.Context, op string, fn func(context.Context) (string, error)) error {
	backend := c.objects.Name()

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordMediaOperation(backend, op, "throttled", 0)
		return fmt.Errorf("rate limit: %w", err)
	}

	start := time.Now()
	result := "success"
	err := c.breaker.Execute(func() error {
		var err error
		result, err = fn(ctx)
		return err
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "rejected"
	case err != nil:
		result = "error"
	}
	metrics.RecordMediaOperation(backend, op, result, time.Since(start))
	return err
}

// URLFor returns the public URL of key.
func (c *Client) URLFor(key string) string {
	return c.baseURL + "/" + key
}

// KeyFor maps a public URL back to its object key. It fails for URLs not
// under the configured base URL and for keys that escape the store root.
func (c *Client) KeyFor(url string) (string, bool) {
	rest, ok := strings.CutPrefix(url, c.baseURL+"/")
	if !ok || rest == "" {
		return "", false
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	if path.Clean(rest) != rest || strings.HasPrefix(rest, "../") || rest == ".." {
		return "", false
	}
	return rest, true
}

// extension returns the lower-cased extension of name including the dot,
// or "" when it is missing or not plain alphanumerics.
func extension(name string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(name, "\\", "/")))
	if len(ext) < 2 || len(ext) > maxExtLen {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
