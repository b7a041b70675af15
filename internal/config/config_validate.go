// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateMongo(); err != nil {
		return err
	}

	if err := c.validateMedia(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateMongo validates the document store connection settings
func (c *Config) validateMongo() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if err := validateMongoURI(c.Mongo.URI); err != nil {
		return fmt.Errorf("MONGODB_URI is invalid: %w", err)
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGODB_DATABASE must not be empty")
	}
	if c.Mongo.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGODB_CONNECT_TIMEOUT must be positive")
	}
	return nil
}

// validateMedia validates the media store configuration for the selected backend
func (c *Config) validateMedia() error {
	switch c.Media.Backend {
	case MediaBackendS3:
		if err := c.validateS3(); err != nil {
			return err
		}
	case MediaBackendFilesystem:
		if c.Media.LocalDir == "" {
			return fmt.Errorf("MEDIA_LOCAL_DIR is required when MEDIA_BACKEND=filesystem")
		}
	default:
		return fmt.Errorf("MEDIA_BACKEND must be one of: s3, filesystem")
	}

	if err := validateBaseURL(c.Media.PublicBaseURL, "MEDIA_PUBLIC_BASE_URL"); err != nil {
		return err
	}
	if c.Media.MaxUploadMB < 1 {
		return fmt.Errorf("MEDIA_MAX_UPLOAD_MB must be at least 1")
	}
	if c.Media.RequestsPerSecond <= 0 || c.Media.Burst < 1 {
		return fmt.Errorf("MEDIA_REQUESTS_PER_SECOND must be positive and MEDIA_BURST at least 1")
	}
	return c.validateBreaker()
}

func (c *Config) validateS3() error {
	if c.Media.Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when MEDIA_BACKEND=s3")
	}
	if c.Media.Region == "" {
		return fmt.Errorf("S3_REGION is required when MEDIA_BACKEND=s3")
	}
	if c.Media.Endpoint != "" {
		if err := validateHTTPURL(c.Media.Endpoint, "S3_ENDPOINT"); err != nil {
			return err
		}
	}
	// Static keys come as a pair; with neither the SDK default chain applies.
	if (c.Media.AccessKey == "") != (c.Media.SecretKey == "") {
		return fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY must be set together")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	b := c.Media.Breaker
	if b.MaxRequests < 1 {
		return fmt.Errorf("MEDIA_BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("MEDIA_BREAKER_TIMEOUT must be positive")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("MEDIA_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be >= API_DEFAULT_PAGE_SIZE")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateJWTSecret(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	return c.validateRateLimits()
}

// validateJWTSecret validates the access token secret. Tokens are issued by
// the account service, so the secret is shared, not generated here.
func (c *Config) validateJWTSecret() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	if c.IsProduction() && len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("ACCESS_TOKEN_SECRET must be at least 32 characters in production")
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("ACCESS_TOKEN_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	return nil
}

// validateCORS rejects a credentialed wildcard origin in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGIN=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGIN=https://yourdomain.com,https://app.yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security
// concerns that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	if c.Logging.File != "" && c.Logging.MaxSizeMB < 1 {
		return fmt.Errorf("LOG_MAX_SIZE_MB must be at least 1 when LOG_FILE is set")
	}
	return nil
}

// placeholderPatterns are values that show a secret was never filled in.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"PLACEHOLDER",
	"EXAMPLE",
}

func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
