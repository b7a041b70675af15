// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// SecurityEvent is an access-control decision worth auditing: a rejected
// token, or a mutation attempted by someone who does not own the resource.
type SecurityEvent struct {
	Event     string
	UserID    string
	Resource  string
	TargetID  string
	IPAddress string
	Path      string
	Token     string
	Reason    string
}

// SecurityLogger writes SecurityEvents with sensitive values masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a security logger on top of the global logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "security").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a specific logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "security").Logger(),
	}
}

// LogEvent logs a security event at warn level.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	e := l.logger.Warn().Str("event", event.Event)

	if event.UserID != "" {
		e = e.Str("user_id", event.UserID)
	}
	if event.Resource != "" {
		e = e.Str("resource", event.Resource)
	}
	if event.TargetID != "" {
		e = e.Str("target_id", event.TargetID)
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.Path != "" {
		e = e.Str("path", truncateString(event.Path, 200))
	}
	if event.Token != "" {
		e = e.Str("token", SanitizeToken(event.Token))
	}
	if event.Reason != "" {
		e = e.Str("reason", SanitizeError(event.Reason))
	}

	e.Msg("")
}

// LogTokenRejected records a request whose access token was missing or invalid.
func (l *SecurityLogger) LogTokenRejected(token, reason, ip, path string) {
	l.LogEvent(&SecurityEvent{
		Event:     "token_rejected",
		Token:     token,
		Reason:    reason,
		IPAddress: ip,
		Path:      path,
	})
}

// LogOwnershipDenied records an attempt to mutate another user's resource.
func (l *SecurityLogger) LogOwnershipDenied(userID, resource, targetID, ip string) {
	l.LogEvent(&SecurityEvent{
		Event:     "ownership_denied",
		UserID:    userID,
		Resource:  resource,
		TargetID:  targetID,
		IPAddress: ip,
	})
}

// SanitizeToken masks a token, showing only first and last 4 characters.
// Example: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9" -> "eyJh...VCJ9"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeError replaces messages that mention credentials with a generic one.
func SanitizeError(err string) string {
	sensitivePatterns := []string{
		"password",
		"secret",
		"bearer",
		"authorization",
		"cookie",
	}

	lowerErr := strings.ToLower(err)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerErr, pattern) {
			return "authentication error"
		}
	}

	return truncateString(err, 200)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
