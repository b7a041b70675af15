// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSanitizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"short", "***"},
		{"exactlytwelv", "***"},
		{"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9", "eyJh...VCJ9"},
		{"1234567890123456", "1234...3456"},
	}

	for _, tt := range tests {
		result := SanitizeToken(tt.input)
		if result != tt.expected {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"token is expired", "token is expired"},
		{"invalid bearer header", "authentication error"},
		{"missing cookie accessToken", "authentication error"},
		{"signature is invalid", "signature is invalid"},
	}

	for _, tt := range tests {
		result := SanitizeError(tt.input)
		if result != tt.expected {
			t.Errorf("SanitizeError(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}

	long := strings.Repeat("x", 300)
	if got := SanitizeError(long); len(got) != 203 {
		t.Errorf("expected truncated length 203, got %d", len(got))
	}
}

func TestSecurityLogger_LogTokenRejected(t *testing.T) {
	var buf bytes.Buffer
	secLog := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	secLog.LogTokenRejected("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9", "token is expired", "10.0.0.1", "/api/v1/videos")

	output := buf.String()
	if !strings.Contains(output, "token_rejected") {
		t.Errorf("expected event in output: %s", output)
	}
	if strings.Contains(output, "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9") {
		t.Errorf("raw token leaked into output: %s", output)
	}
	if !strings.Contains(output, "eyJh...VCJ9") {
		t.Errorf("expected masked token in output: %s", output)
	}
	if !strings.Contains(output, `"level":"warn"`) {
		t.Errorf("expected warn level: %s", output)
	}
}

func TestSecurityLogger_LogOwnershipDenied(t *testing.T) {
	var buf bytes.Buffer
	secLog := NewSecurityLoggerWithLogger(zerolog.New(&buf))

	secLog.LogOwnershipDenied("64b7f0c2a1b2c3d4e5f60718", "video", "64b7f0c2a1b2c3d4e5f60719", "")

	output := buf.String()
	for _, want := range []string{"ownership_denied", `"resource":"video"`, "64b7f0c2a1b2c3d4e5f60719"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output: %s", want, output)
		}
	}
	if strings.Contains(output, `"ip"`) {
		t.Errorf("empty ip should be omitted: %s", output)
	}
}
