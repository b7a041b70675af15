// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultMinioImage is an S3-compatible object store for media tests
	DefaultMinioImage = "minio/minio:latest"

	// DefaultMinioPort is the S3 API port
	DefaultMinioPort = "9000"

	// MinioAccessKey and MinioSecretKey are the root credentials of the container
	MinioAccessKey = "videotube"
	MinioSecretKey = "videotube-secret"
)

var _ testcontainers.Container = (*MinioContainer)(nil)

// MinioContainer represents a running MinIO server for testing.
type MinioContainer struct {
	testcontainers.Container
	URL       string // http://host:port of the S3 API
	AccessKey string
	SecretKey string
}

// NewMinioContainer creates and starts a single-node MinIO server.
func NewMinioContainer(ctx context.Context) (*MinioContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        DefaultMinioImage,
		ExposedPorts: []string{DefaultMinioPort + "/tcp"},
		Cmd:          []string{"server", "/data"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     MinioAccessKey,
			"MINIO_ROOT_PASSWORD": MinioSecretKey,
		},
		WaitingFor: wait.ForHTTP("/minio/health/live").
			WithPort(DefaultMinioPort + "/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, DefaultMinioPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &MinioContainer{
		Container: container,
		URL:       fmt.Sprintf("http://%s:%s", host, port.Port()),
		AccessKey: MinioAccessKey,
		SecretKey: MinioSecretKey,
	}, nil
}
