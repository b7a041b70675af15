// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService implements suture.Service and fails a configurable number
// of times before running until canceled.
type mockService struct {
	name       string
	starts     atomic.Int32
	failures   atomic.Int32
	failsFirst int32
}

func newMockService(name string, failsFirst int32) *mockService {
	return &mockService{name: name, failsFirst: failsFirst}
}

func (m *mockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	if m.failures.Add(1) <= m.failsFirst {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}
