// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package websocket

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/moodpulse/moodpulse/internal/logging"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

// testSnapshot is the payload served as initial_status in tests.
func testSnapshot() interface{} {
	return map[string]interface{}{"current_happiness": 50.0, "total_analyzed": 0}
}

// setupHub creates and starts a new hub for testing
func setupHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(testSnapshot)
	go hub.Run()
	time.Sleep(10 * time.Millisecond)
	return hub
}

// createTestClient creates a mock client for testing
func createTestClient(hub *Hub) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		conn: nil,
		send: make(chan Message, 256),
	}
}

// registerClient registers a client and waits for registration to complete
func registerClient(hub *Hub, client *Client) {
	hub.Register <- client
	time.Sleep(20 * time.Millisecond)
}

func TestNewHub(t *testing.T) {
	hub := NewHub(testSnapshot)

	if hub == nil {
		t.Fatal("NewHub returned nil")
	}

	checks := []struct {
		name   string
		check  bool
		errMsg string
	}{
		{"clients map", hub.clients != nil, "clients map not initialized"},
		{"broadcast channel", hub.broadcast != nil, "broadcast channel not initialized"},
		{"Register channel", hub.Register != nil, "Register channel not initialized"},
		{"Unregister channel", hub.Unregister != nil, "Unregister channel not initialized"},
		{"empty clients", len(hub.clients) == 0, "clients map should be empty"},
		{"snapshot provider", hub.snapshotFn != nil, "snapshot provider not set"},
	}

	for _, c := range checks {
		if !c.check {
			t.Error(c.errMsg)
		}
	}
}

func TestHub_GetClientCount(t *testing.T) {
	hub := NewHub(testSnapshot)

	if hub.GetClientCount() != 0 {
		t.Errorf("Expected 0 clients initially, got %d", hub.GetClientCount())
	}

	for i := 0; i < 5; i++ {
		hub.clients[createTestClient(hub)] = true
	}

	if hub.GetClientCount() != 5 {
		t.Errorf("Expected 5 clients, got %d", hub.GetClientCount())
	}
}

func TestHub_RegisterDeliversInitialStatus(t *testing.T) {
	hub := setupHub(t)
	client := createTestClient(hub)

	registerClient(hub, client)

	select {
	case msg := <-client.send:
		if msg.Type != MessageTypeInitialStatus {
			t.Errorf("first message type = %q, want %q", msg.Type, MessageTypeInitialStatus)
		}
		if msg.Data == nil {
			t.Error("initial_status has no data")
		}
	case <-time.After(time.Second):
		t.Fatal("no initial_status received after register")
	}
}

func TestHub_InitialStatusPrecedesUpdates(t *testing.T) {
	hub := setupHub(t)
	client := createTestClient(hub)

	registerClient(hub, client)
	hub.BroadcastHappinessUpdate(map[string]interface{}{"current_happiness": 61.2})
	time.Sleep(20 * time.Millisecond)

	first := <-client.send
	if first.Type != MessageTypeInitialStatus {
		t.Fatalf("first message type = %q, want %q", first.Type, MessageTypeInitialStatus)
	}

	second := <-client.send
	if second.Type != MessageTypeHappinessUpdate {
		t.Errorf("second message type = %q, want %q", second.Type, MessageTypeHappinessUpdate)
	}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := setupHub(t)

	clients := make([]*Client, 3)
	for i := range clients {
		clients[i] = createTestClient(hub)
		registerClient(hub, clients[i])
		<-clients[i].send // drain initial_status
	}

	hub.BroadcastHappinessUpdate(map[string]interface{}{"current_happiness": 55.5})
	time.Sleep(20 * time.Millisecond)

	for i, client := range clients {
		select {
		case msg := <-client.send:
			if msg.Type != MessageTypeHappinessUpdate {
				t.Errorf("client %d got type %q", i, msg.Type)
			}
		default:
			t.Errorf("client %d received nothing", i)
		}
	}
}

func TestHub_SlowClientPrunedOthersUnaffected(t *testing.T) {
	hub := setupHub(t)

	// A client with a zero-capacity queue can never accept a broadcast.
	slow := &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message)}
	hub.Register <- slow
	time.Sleep(20 * time.Millisecond)

	healthy := createTestClient(hub)
	registerClient(hub, healthy)
	<-healthy.send // drain initial_status

	hub.BroadcastHappinessUpdate(map[string]interface{}{"current_happiness": 48.0})
	time.Sleep(20 * time.Millisecond)

	if got := hub.GetClientCount(); got != 1 {
		t.Errorf("client count after prune = %d, want 1", got)
	}

	select {
	case msg := <-healthy.send:
		if msg.Type != MessageTypeHappinessUpdate {
			t.Errorf("healthy client got type %q", msg.Type)
		}
	default:
		t.Error("healthy client received nothing after slow client pruned")
	}

	// The pruned client's queue was closed by the hub.
	if _, ok := <-slow.send; ok {
		t.Error("pruned client send channel not closed")
	}
}

func TestHub_UnregisterIdempotent(t *testing.T) {
	hub := setupHub(t)
	client := createTestClient(hub)

	registerClient(hub, client)
	if hub.GetClientCount() != 1 {
		t.Fatalf("client count = %d, want 1", hub.GetClientCount())
	}

	hub.Unregister <- client
	time.Sleep(20 * time.Millisecond)
	if hub.GetClientCount() != 0 {
		t.Fatalf("client count after unregister = %d, want 0", hub.GetClientCount())
	}

	// Second unregister of the same client must be a no-op, not a panic
	// from double-closing the send channel.
	hub.Unregister <- client
	time.Sleep(20 * time.Millisecond)
	if hub.GetClientCount() != 0 {
		t.Errorf("client count after double unregister = %d, want 0", hub.GetClientCount())
	}
}

func TestHub_RunWithContextShutdown(t *testing.T) {
	hub := NewHub(testSnapshot)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- hub.RunWithContext(ctx)
	}()
	time.Sleep(10 * time.Millisecond)

	client := createTestClient(hub)
	registerClient(hub, client)

	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("RunWithContext did not return after cancel")
	}

	if hub.GetClientCount() != 0 {
		t.Errorf("clients not closed on shutdown: %d remain", hub.GetClientCount())
	}
}

func TestHub_BroadcastChannelFullDoesNotBlock(t *testing.T) {
	// Hub not running: the broadcast queue fills and further sends must
	// drop instead of blocking.
	hub := NewHub(testSnapshot)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.BroadcastHappinessUpdate(map[string]interface{}{"i": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastHappinessUpdate blocked on a full channel")
	}
}

func TestMarshalMessage(t *testing.T) {
	msg := Message{Type: MessageTypeHappinessUpdate, Data: map[string]interface{}{"current_happiness": 52.0}}
	b, err := MarshalMessage(msg)
	if err != nil {
		t.Fatalf("MarshalMessage error: %v", err)
	}
	if len(b) == 0 {
		t.Error("MarshalMessage returned empty bytes")
	}
}

func TestGetShutdownReason(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled reason = %q", got)
	}

	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline reason = %q", got)
	}
}
