// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

// Package logging provides centralized zerolog-based structured logging for VideoTube.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output for production, console output for development
//   - Optional rotating log file (lumberjack) alongside the primary output
//   - Context-aware logging with request, correlation and actor IDs
//   - slog adapter for Suture v4 integration
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to delete thumbnail")
//
// # Configuration
//
// Environment Variables (via internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
//   - LOG_FILE: path of a rotating JSON log file (default: disabled)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
