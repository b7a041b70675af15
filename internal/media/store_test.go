// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/videotube/internal/config"
)

const testBaseURL = "https://cdn.example.com/media"

// memStore is an in-memory ObjectStore
type memStore struct {
	name string

	mu        sync.Mutex
	objects   map[string][]byte
	metadata  map[string]map[string]string
	putErr    error
	deleteErr error
	puts      int
	deletes   int
}

func newMemStore(name string) *memStore {
	return &memStore{
		name:     name,
		objects:  map[string][]byte{},
		metadata: map[string]map[string]string{},
	}
}

func (m *memStore) Name() string { return m.name }

func (m *memStore) Put(_ context.Context, obj Object) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return err
	}
	m.objects[obj.Key] = data
	m.metadata[obj.Key] = obj.Metadata
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	_, ok := m.objects[key]
	delete(m.objects, key)
	return ok, nil
}

func testMediaConfig() *config.MediaConfig {
	return &config.MediaConfig{
		PublicBaseURL:     testBaseURL + "/",
		RequestsPerSecond: 1000,
		Burst:             100,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  3,
			FailureRatio: 0.5,
		},
	}
}

func newTestClient(t *testing.T) (*Client, *memStore) {
	t.Helper()
	objects := newMemStore("mem-" + strings.ReplaceAll(t.Name(), "/", "-"))
	c := NewClient(objects, testMediaConfig())
	n := 0
	c.newKey = func(prefix, ext string) string {
		n++
		return prefix + "blob" + string(rune('0'+n)) + ext
	}
	return c, objects
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	t.Run("video gets videos prefix and duration", func(t *testing.T) {
		t.Parallel()
		c, objects := newTestClient(t)

		asset, err := c.Upload(context.Background(), Blob{
			Kind:     KindVideo,
			Filename: "Holiday.MP4",
			Size:     5,
			Body:     strings.NewReader("video"),
			Duration: 12.5,
		})
		if err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if asset.Key != "videos/blob1.mp4" {
			t.Errorf("key = %q, want videos/blob1.mp4", asset.Key)
		}
		if asset.URL != testBaseURL+"/videos/blob1.mp4" {
			t.Errorf("url = %q", asset.URL)
		}
		if asset.Duration != 12.5 {
			t.Errorf("duration = %v, want 12.5", asset.Duration)
		}
		if got := objects.metadata[asset.Key][metadataDuration]; got != "12.5" {
			t.Errorf("duration metadata = %q, want 12.5", got)
		}
	})

	t.Run("image gets images prefix and no duration", func(t *testing.T) {
		t.Parallel()
		c, objects := newTestClient(t)

		asset, err := c.Upload(context.Background(), Blob{
			Kind:     KindImage,
			Filename: "thumb.png",
			Body:     strings.NewReader("png"),
			Duration: 99,
		})
		if err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if !strings.HasPrefix(asset.Key, imagePrefix) || asset.Duration != 0 {
			t.Errorf("asset = %+v, want images/ key and zero duration", asset)
		}
		if objects.metadata[asset.Key] != nil {
			t.Errorf("image metadata = %v, want none", objects.metadata[asset.Key])
		}
	})

	t.Run("missing body", func(t *testing.T) {
		t.Parallel()
		c, objects := newTestClient(t)
		if _, err := c.Upload(context.Background(), Blob{Kind: KindImage}); !errors.Is(err, ErrEmptyBlob) {
			t.Errorf("err = %v, want ErrEmptyBlob", err)
		}
		if objects.puts != 0 {
			t.Error("backend should not be called")
		}
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		t.Parallel()
		c, objects := newTestClient(t)
		objects.putErr = errors.New("bucket on fire")
		_, err := c.Upload(context.Background(), Blob{Kind: KindVideo, Body: strings.NewReader("x")})
		if err == nil || !strings.Contains(err.Error(), "bucket on fire") {
			t.Errorf("err = %v, want backend error", err)
		}
	})
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()

	upload := func(t *testing.T, c *Client, kind Kind) string {
		t.Helper()
		asset, err := c.Upload(context.Background(), Blob{Kind: kind, Filename: "f.bin", Body: strings.NewReader("x")})
		if err != nil {
			t.Fatalf("Upload: %v", err)
		}
		return asset.URL
	}

	t.Run("existing blob reports ok", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestClient(t)
		url := upload(t, c, KindVideo)

		res, err := c.DeleteVideo(context.Background(), url)
		if err != nil || !res.OK() {
			t.Fatalf("DeleteVideo = %+v, %v, want ok", res, err)
		}
		res, err = c.DeleteVideo(context.Background(), url)
		if err != nil || res.Result != ResultNotFound {
			t.Errorf("second DeleteVideo = %+v, %v, want not found", res, err)
		}
	})

	t.Run("variant mismatch reports not found without a backend call", func(t *testing.T) {
		t.Parallel()
		c, objects := newTestClient(t)
		url := upload(t, c, KindImage)

		res, err := c.DeleteVideo(context.Background(), url)
		if err != nil || res.Result != ResultNotFound {
			t.Errorf("DeleteVideo(image) = %+v, %v, want not found", res, err)
		}
		if objects.deletes != 0 {
			t.Errorf("deletes = %d, want 0", objects.deletes)
		}
		if len(objects.objects) != 1 {
			t.Error("image should still exist")
		}
	})

	t.Run("foreign and empty URLs report not found", func(t *testing.T) {
		t.Parallel()
		c, objects := newTestClient(t)
		for _, url := range []string{"", "https://elsewhere.example.com/images/a.png", testBaseURL} {
			res, err := c.DeleteImage(context.Background(), url)
			if err != nil || res.Result != ResultNotFound {
				t.Errorf("DeleteImage(%q) = %+v, %v, want not found", url, res, err)
			}
		}
		if objects.deletes != 0 {
			t.Errorf("deletes = %d, want 0", objects.deletes)
		}
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		t.Parallel()
		c, objects := newTestClient(t)
		url := upload(t, c, KindImage)
		objects.deleteErr = errors.New("timeout")

		res, err := c.DeleteImage(context.Background(), url)
		if err == nil || res != nil {
			t.Errorf("DeleteImage = %+v, %v, want error", res, err)
		}
	})
}

func TestClient_BreakerOpensOnRepeatedFailures(t *testing.T) {
	t.Parallel()

	c, objects := newTestClient(t)
	objects.putErr = errors.New("unavailable")

	for i := 0; i < 3; i++ {
		_, _ = c.Upload(context.Background(), Blob{Kind: KindImage, Body: strings.NewReader("x")})
	}
	_, _ = c.Upload(context.Background(), Blob{Kind: KindImage, Body: strings.NewReader("x")})

	if c.breaker.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", c.breaker.State())
	}

	before := objects.puts
	_, err := c.Upload(context.Background(), Blob{Kind: KindImage, Body: strings.NewReader("x")})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want ErrOpenState", err)
	}
	if objects.puts != before {
		t.Error("open circuit should not reach the backend")
	}
}

func TestClient_CanceledContextSkipsBackend(t *testing.T) {
	t.Parallel()

	c, objects := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Upload(ctx, Blob{Kind: KindImage, Body: strings.NewReader("x")}); err == nil {
		t.Error("expected an error for a canceled context")
	}
	if objects.puts != 0 {
		t.Errorf("puts = %d, want 0", objects.puts)
	}
}

func TestClient_KeyFor(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{testBaseURL + "/images/a.png", "images/a.png", true},
		{testBaseURL + "/videos/b.mp4?X-Amz-Signature=abc", "videos/b.mp4", true},
		{testBaseURL + "/images/../videos/b.mp4", "", false},
		{testBaseURL + "/../secret", "", false},
		{testBaseURL + "/", "", false},
		{"https://cdn.example.com/mediaextra/images/a.png", "", false},
	}

	for _, tt := range tests {
		got, ok := c.KeyFor(tt.url)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KeyFor(%q) = %q, %v, want %q, %v", tt.url, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"clip.mp4", ".mp4"},
		{"CLIP.MOV", ".mov"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
		{"weird.p?g", ""},
		{`C:\Users\me\thumb.jpg`, ".jpg"},
		{"long.abcdefghijklmnop", ""},
	}

	for _, tt := range tests {
		if got := extension(tt.name); got != tt.want {
			t.Errorf("extension(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNewObjectKey(t *testing.T) {
	t.Parallel()

	a := newObjectKey(videoPrefix, ".mp4")
	b := newObjectKey(videoPrefix, ".mp4")
	if a == b {
		t.Error("keys should be unique")
	}
	if !strings.HasPrefix(a, "videos/") || !strings.HasSuffix(a, ".mp4") || len(a) != len("videos/")+36+len(".mp4") {
		t.Errorf("key = %q, want videos/<uuid>.mp4", a)
	}
}
