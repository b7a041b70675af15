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
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomtom215/videotube/internal/config"
)

// FilesystemStore keeps blobs under a local directory. It is meant for
// development and single-node deployments; Handler serves the files.
// Object metadata is not persisted.
type FilesystemStore struct {
	root string
}

var _ ObjectStore = (*FilesystemStore)(nil)

// NewFilesystemStore creates dir if needed.
func NewFilesystemStore(dir string) (*FilesystemStore, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve media dir: %w", err)
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &FilesystemStore{root: root}, nil
}

// Name implements ObjectStore.
func (f *FilesystemStore) Name() string {
	return config.MediaBackendFilesystem
}

// Root returns the absolute storage directory.
func (f *FilesystemStore) Root() string {
	return f.root
}

func (f *FilesystemStore) path(key string) (string, error) {
	p := filepath.Join(f.root, filepath.FromSlash(key))
	if !strings.HasPrefix(p, f.root+string(filepath.Separator)) {
		return "", fmt.Errorf("key %q escapes media root", key)
	}
	return p, nil
}

// Put writes obj to a temp file and renames it into place, so readers
// never see a partial blob.
func (f *FilesystemStore) Put(ctx context.Context, obj Object) error {
	dst, err := f.path(obj.Key)
	if err != nil {
		return err
	}
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: obj.Body}); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", obj.Key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", obj.Key, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("rename %s: %w", obj.Key, err)
	}
	return nil
}

// Delete removes key and reports whether it existed.
func (f *FilesystemStore) Delete(_ context.Context, key string) (bool, error) {
	p, err := f.path(key)
	if err != nil {
		return false, err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s: %w", key, err)
	}
	return true, nil
}

// Handler serves stored blobs. Directory listings are not exposed.
func (f *FilesystemStore) Handler() http.Handler {
	files := http.FileServer(http.Dir(f.root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") || strings.Contains(r.URL.Path, "/.") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
