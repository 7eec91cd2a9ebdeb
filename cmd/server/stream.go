// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package main

import (
	"sync"

	"github.com/moodpulse/moodpulse/internal/supervisor"
	"github.com/moodpulse/moodpulse/internal/supervisor/services"
)

// streamController schedules the ingest manager and broadcast scheduler
// under the supervisor tree's pipeline layer. It implements api.Streamer:
// EnsureStarted is idempotent, so POST /api/v1/start-streaming can be
// called any number of times.
type streamController struct {
	mu        sync.Mutex
	tree      *supervisor.Tree
	ingest    services.StartStopManager
	broadcast services.StartStopManager
	started   bool
}

func newStreamController(tree *supervisor.Tree, ingest, broadcast services.StartStopManager) *streamController {
	return &streamController{
		tree:      tree,
		ingest:    ingest,
		broadcast: broadcast,
	}
}

// EnsureStarted adds the pipeline services to the supervisor tree on first
// call and is a no-op afterwards. The supervisor starts the services once
// its Serve loop runs, and restarts them under its backoff policy.
func (s *streamController) EnsureStarted() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.tree.AddPipelineService(services.NewIngestService(s.ingest))
	s.tree.AddPipelineService(services.NewBroadcastService(s.broadcast))
	s.started = true
	return nil
}

// Running reports whether the pipeline has been scheduled.
func (s *streamController) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}
