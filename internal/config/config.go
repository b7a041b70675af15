// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  0. .env file (development convenience, values never override the real environment)
//  1. Defaults: Built-in defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(ctx, &cfg.Mongo)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Media    MediaConfig    `koanf:"media"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MongoConfig holds document store connection settings.
//
// Environment Variables:
//   - MONGODB_URI: connection string (required)
//   - MONGODB_DATABASE: database name (default: videotube)
//   - MONGODB_CONNECT_TIMEOUT: connect and server selection timeout (default: 10s)
//   - MONGODB_MAX_POOL_SIZE: driver connection pool size (default: 100)
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	MaxPoolSize    uint64        `koanf:"max_pool_size"`
}

// Media backends.
const (
	MediaBackendS3         = "s3"
	MediaBackendFilesystem = "filesystem"
)

// MediaConfig selects and configures the blob store holding uploaded
// videos and thumbnails.
//
// Environment Variables:
//   - MEDIA_BACKEND: s3 or filesystem (default: filesystem)
//   - S3_ENDPOINT, S3_REGION, S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY
//   - MEDIA_PUBLIC_BASE_URL: prefix of the URLs stored on videos
//   - MEDIA_LOCAL_DIR: root directory for the filesystem backend
//   - MEDIA_MAX_UPLOAD_MB: multipart request cap (default: 512)
//   - MEDIA_REQUESTS_PER_SECOND / MEDIA_BURST: outbound call budget
type MediaConfig struct {
	Backend           string        `koanf:"backend"`
	Endpoint          string        `koanf:"endpoint"`
	Region            string        `koanf:"region"`
	Bucket            string        `koanf:"bucket"`
	AccessKey         string        `koanf:"access_key"`
	SecretKey         string        `koanf:"secret_key"`
	PublicBaseURL     string        `koanf:"public_base_url"`
	LocalDir          string        `koanf:"local_dir"`
	MaxUploadMB       int64         `koanf:"max_upload_mb"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	Breaker           BreakerConfig `koanf:"breaker"`
}

// MaxUploadBytes returns the multipart request cap in bytes.
func (m MediaConfig) MaxUploadBytes() int64 {
	return m.MaxUploadMB << 20
}

// BreakerConfig tunes the circuit breaker around the media store.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// APIConfig holds API pagination settings.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds token verification, rate limiting and CORS settings.
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`

	// File enables an additional rotating JSON log file when non-empty.
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// Load reads configuration with the following precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH)
//  3. Built-in defaults
//
// A .env file in the working directory is read first and only fills
// variables the environment does not already define.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
