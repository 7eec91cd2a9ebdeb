// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

// fakeManager records Start/Stop calls.
type fakeManager struct {
	startErr   error
	stopErr    error
	startCalls atomic.Int32
	stopCalls  atomic.Int32
}

func (f *fakeManager) Start(ctx context.Context) error {
	f.startCalls.Add(1)
	return f.startErr
}

func (f *fakeManager) Stop() error {
	f.stopCalls.Add(1)
	return f.stopErr
}

func TestSchedulerServiceLifecycle(t *testing.T) {
	mgr := &fakeManager{}
	svc := NewIngestService(mgr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	if mgr.startCalls.Load() != 1 {
		t.Fatalf("start calls = %d, want 1", mgr.startCalls.Load())
	}
	if mgr.stopCalls.Load() != 0 {
		t.Fatal("Stop called before cancel")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if mgr.stopCalls.Load() != 1 {
		t.Errorf("stop calls = %d, want 1", mgr.stopCalls.Load())
	}
}

func TestSchedulerServiceStartFailure(t *testing.T) {
	mgr := &fakeManager{startErr: errors.New("boom")}
	svc := NewBroadcastService(mgr)

	err := svc.Serve(context.Background())
	if err == nil {
		t.Fatal("Serve returned nil on start failure")
	}
	if mgr.stopCalls.Load() != 0 {
		t.Error("Stop called after start failure")
	}
}

func TestSchedulerServiceNames(t *testing.T) {
	if got := NewIngestService(&fakeManager{}).String(); got != "ingest-manager" {
		t.Errorf("ingest name = %q", got)
	}
	if got := NewBroadcastService(&fakeManager{}).String(); got != "broadcast-scheduler" {
		t.Errorf("broadcast name = %q", got)
	}
}

// fakeHub blocks in RunWithContext until canceled.
type fakeHub struct {
	started chan struct{}
}

func (f *fakeHub) RunWithContext(ctx context.Context) error {
	close(f.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestWebSocketHubServiceDelegates(t *testing.T) {
	hub := &fakeHub{started: make(chan struct{})}
	svc := NewWebSocketHubService(hub)

	if svc.String() != "websocket-hub" {
		t.Errorf("name = %q", svc.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	select {
	case <-hub.started:
	case <-time.After(time.Second):
		t.Fatal("hub never started")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
}

// fakeHTTPServer simulates ListenAndServe/Shutdown.
type fakeHTTPServer struct {
	listenErr     error
	shutdownErr   error
	closed        chan struct{}
	shutdownCalls atomic.Int32
}

func newFakeHTTPServer() *fakeHTTPServer {
	return &fakeHTTPServer{closed: make(chan struct{})}
}

func (f *fakeHTTPServer) ListenAndServe() error {
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.closed
	return http.ErrServerClosed
}

func (f *fakeHTTPServer) Shutdown(ctx context.Context) error {
	f.shutdownCalls.Add(1)
	close(f.closed)
	return f.shutdownErr
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	srv := newFakeHTTPServer()
	svc := NewHTTPServerService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
	if srv.shutdownCalls.Load() != 1 {
		t.Errorf("shutdown calls = %d, want 1", srv.shutdownCalls.Load())
	}
}

func TestHTTPServerServiceListenFailure(t *testing.T) {
	srv := newFakeHTTPServer()
	srv.listenErr = errors.New("address in use")
	svc := NewHTTPServerService(srv, time.Second)

	err := svc.Serve(context.Background())
	if err == nil {
		t.Fatal("Serve returned nil on listen failure")
	}
}

func TestHTTPServerServiceDefaultTimeout(t *testing.T) {
	svc := NewHTTPServerService(newFakeHTTPServer(), 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %v, want 10s", svc.shutdownTimeout)
	}
}
