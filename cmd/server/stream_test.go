// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package main

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/moodpulse/moodpulse/internal/logging"
	"github.com/moodpulse/moodpulse/internal/supervisor"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{Level: "disabled", Output: io.Discard})
}

// fakePipeline counts lifecycle calls.
type fakePipeline struct {
	startCalls atomic.Int32
	stopCalls  atomic.Int32
}

func (f *fakePipeline) Start(ctx context.Context) error {
	f.startCalls.Add(1)
	return nil
}

func (f *fakePipeline) Stop() error {
	f.stopCalls.Add(1)
	return nil
}

func newTestController(t *testing.T) (*streamController, *fakePipeline, *fakePipeline) {
	t.Helper()
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	ingest := &fakePipeline{}
	broadcast := &fakePipeline{}
	return newStreamController(tree, ingest, broadcast), ingest, broadcast
}

func TestStreamControllerNotRunningInitially(t *testing.T) {
	ctl, _, _ := newTestController(t)
	if ctl.Running() {
		t.Error("Running() = true before EnsureStarted")
	}
}

func TestStreamControllerEnsureStartedIdempotent(t *testing.T) {
	ctl, _, _ := newTestController(t)

	for i := 0; i < 3; i++ {
		if err := ctl.EnsureStarted(); err != nil {
			t.Fatalf("EnsureStarted call %d: %v", i+1, err)
		}
	}
	if !ctl.Running() {
		t.Error("Running() = false after EnsureStarted")
	}
}

func TestStreamControllerStartsPipelineUnderSupervisor(t *testing.T) {
	ctl, ingest, broadcast := newTestController(t)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := ctl.tree.ServeBackground(ctx)

	if err := ctl.EnsureStarted(); err != nil {
		t.Fatalf("EnsureStarted: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for ingest.startCalls.Load() == 0 || broadcast.startCalls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatalf("pipeline never started: ingest=%d broadcast=%d",
				ingest.startCalls.Load(), broadcast.startCalls.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}

	// Idempotent start must not schedule a second copy.
	if err := ctl.EnsureStarted(); err != nil {
		t.Fatalf("second EnsureStarted: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if got := ingest.startCalls.Load(); got != 1 {
		t.Errorf("ingest start calls = %d, want 1", got)
	}

	cancel()
	<-errCh

	if ingest.stopCalls.Load() != 1 {
		t.Errorf("ingest stop calls = %d, want 1", ingest.stopCalls.Load())
	}
	if broadcast.stopCalls.Load() != 1 {
		t.Errorf("broadcast stop calls = %d, want 1", broadcast.stopCalls.Load())
	}
}
