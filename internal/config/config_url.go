// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package config

import (
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// validateHTTPURL validates that a URL is a bare HTTP/HTTPS service root:
// scheme http or https, host present, no path and no query.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}

// validateBaseURL validates a public URL prefix. Unlike validateHTTPURL a
// path is allowed (CDN prefixes, /media on the filesystem backend).
func validateBaseURL(rawURL, fieldName string) error {
	if rawURL == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" || parsedURL.Fragment != "" {
		return fmt.Errorf("%s should not contain a query or fragment", fieldName)
	}

	return nil
}

// validateMongoURI validates a MongoDB connection string with the driver's
// own parser, so multi-host replica set URIs are accepted. mongodb+srv
// URIs are only checked for a host: their SRV records are resolved at
// connect time, not at startup.
func validateMongoURI(rawURI string) error {
	switch {
	case strings.HasPrefix(rawURI, connstring.SchemeMongoDBSRV+"://"):
		parsedURL, err := url.Parse(rawURI)
		if err != nil {
			return fmt.Errorf("failed to parse URI: %w", err)
		}
		if parsedURL.Hostname() == "" {
			return fmt.Errorf("host is required")
		}
		if parsedURL.Port() != "" || strings.Contains(parsedURL.Host, ",") {
			return fmt.Errorf("mongodb+srv URI must name a single host without a port")
		}
		return nil

	case strings.HasPrefix(rawURI, connstring.SchemeMongoDB+"://"):
		cs, err := connstring.ParseAndValidate(rawURI)
		if err != nil {
			return fmt.Errorf("failed to parse URI: %w", err)
		}
		if len(cs.Hosts) == 0 {
			return fmt.Errorf("host is required")
		}
		return nil

	default:
		scheme, _, _ := strings.Cut(rawURI, "://")
		return fmt.Errorf("scheme must be mongodb or mongodb+srv, got: %s", scheme)
	}
}
