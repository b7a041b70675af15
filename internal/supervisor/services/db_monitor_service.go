// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package services

import (
	"context"
	"time"

	"github.com/tomtom215/videotube/internal/logging"
	"github.com/tomtom215/videotube/internal/metrics"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DBMonitorService pings the database on an interval, publishes the
// mongodb_up gauge and logs reachability changes.
type DBMonitorService struct {
	db       Pinger
	interval time.Duration
	timeout  time.Duration
	name     string
}

// NewDBMonitorService creates the monitor. A non-positive interval
// means 30s.
func NewDBMonitorService(db Pinger, interval time.Duration) *DBMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &DBMonitorService{
		db:       db,
		interval: interval,
		timeout:  timeout,
		name:     "db-monitor",
	}
}

// Serve implements suture.Service.
func (s *DBMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	up := s.check(ctx, true)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			up = s.check(ctx, up)
		}
	}
}

func (s *DBMonitorService) check(ctx context.Context, wasUp bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.Ping(pingCtx)
	if ctx.Err() != nil {
		return wasUp
	}
	up := err == nil
	metrics.SetDBUp(up)

	switch {
	case wasUp && !up:
		logging.Error().Err(err).Msg("Database unreachable")
	case !wasUp && up:
		logging.Info().Msg("Database reachable again")
	}
	return up
}

// String implements fmt.Stringer for suture's logs.
func (s *DBMonitorService) String() string {
	return s.name
}
