// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package services

import (
	"context"
	"fmt"
)

// StartStopManager matches the lifecycle shared by the ingest manager and
// the broadcast scheduler: Start spawns internal goroutines and returns,
// Stop blocks until they drain.
type StartStopManager interface {
	Start(ctx context.Context) error
	Stop() error
}

// SchedulerService adapts a Start/Stop component to suture's Serve pattern:
//  1. Start(ctx) spawns the component's goroutines
//  2. block until the context is canceled
//  3. Stop() waits for the goroutines to complete
//
// A Start failure is returned immediately so suture restarts the service
// under its backoff policy.
type SchedulerService struct {
	manager StartStopManager
	name    string
}

// NewIngestService wraps the ingest manager as a supervised service.
func NewIngestService(manager StartStopManager) *SchedulerService {
	return &SchedulerService{manager: manager, name: "ingest-manager"}
}

// NewBroadcastService wraps the broadcast scheduler as a supervised service.
func NewBroadcastService(manager StartStopManager) *SchedulerService {
	return &SchedulerService{manager: manager, name: "broadcast-scheduler"}
}

// Serve implements suture.Service.
func (s *SchedulerService) Serve(ctx context.Context) error {
	if err := s.manager.Start(ctx); err != nil {
		return fmt.Errorf("%s start failed: %w", s.name, err)
	}

	<-ctx.Done()

	if err := s.manager.Stop(); err != nil {
		return fmt.Errorf("%s stop failed: %w", s.name, err)
	}

	return ctx.Err()
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *SchedulerService) String() string {
	return s.name
}
