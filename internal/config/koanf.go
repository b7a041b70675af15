// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/videotube/config.yaml",
	"/etc/videotube/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPath is the dotenv file read before anything else.
var DotEnvPath = ".env"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Mongo: MongoConfig{
			URI:            "",
			Database:       "videotube",
			ConnectTimeout: 10 * time.Second,
			MaxPoolSize:    100,
		},
		Media: MediaConfig{
			Backend:           MediaBackendFilesystem,
			Region:            "us-east-1",
			PublicBaseURL:     "http://localhost:8000/media",
			LocalDir:          "./public/media",
			MaxUploadMB:       512,
			RequestsPerSecond: 20,
			Burst:             40,
			Breaker: BreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		API: APIConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			JWTSecret:         "",
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Caller:     false,
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 28,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
func LoadWithKoanf() (*Config, error) {
	// Layer 0: .env file (optional). godotenv.Load never overrides
	// variables that are already set.
	if err := godotenv.Load(DotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvPath, err)
	}

	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// MONGODB_URI -> mongo.uri, S3_BUCKET -> media.bucket
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Several names may point at the same path; PORT and CORS_ORIGIN are the
// names older deployments of this service used.
var envMappings = map[string]string{
	// Server
	"port":         "server.port",
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// MongoDB
	"mongodb_uri":             "mongo.uri",
	"mongodb_database":        "mongo.database",
	"mongodb_connect_timeout": "mongo.connect_timeout",
	"mongodb_max_pool_size":   "mongo.max_pool_size",

	// Media store
	"media_backend":               "media.backend",
	"s3_endpoint":                 "media.endpoint",
	"s3_region":                   "media.region",
	"s3_bucket":                   "media.bucket",
	"s3_access_key":               "media.access_key",
	"s3_secret_key":               "media.secret_key",
	"media_public_base_url":       "media.public_base_url",
	"media_local_dir":             "media.local_dir",
	"media_max_upload_mb":         "media.max_upload_mb",
	"media_requests_per_second":   "media.requests_per_second",
	"media_burst":                 "media.burst",
	"media_breaker_max_requests":  "media.breaker.max_requests",
	"media_breaker_interval":      "media.breaker.interval",
	"media_breaker_timeout":       "media.breaker.timeout",
	"media_breaker_min_requests":  "media.breaker.min_requests",
	"media_breaker_failure_ratio": "media.breaker.failure_ratio",

	// API
	"api_default_page_size": "api.default_page_size",
	"api_max_page_size":     "api.max_page_size",

	// Security
	"access_token_secret": "security.jwt_secret",
	"jwt_secret":          "security.jwt_secret",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origin":         "security.cors_origins",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":        "logging.level",
	"log_format":       "logging.format",
	"log_caller":       "logging.caller",
	"log_file":         "logging.file",
	"log_max_size_mb":  "logging.max_size_mb",
	"log_max_backups":  "logging.max_backups",
	"log_max_age_days": "logging.max_age_days",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - MONGODB_URI -> mongo.uri
//   - ACCESS_TOKEN_SECRET -> security.jwt_secret
//   - PORT -> server.port
//
// Unmapped keys return an empty string so that unrelated environment
// variables never leak into the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
