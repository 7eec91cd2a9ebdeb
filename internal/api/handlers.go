// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package api

import (
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"

	"github.com/moodpulse/moodpulse/internal/aggregator"
	"github.com/moodpulse/moodpulse/internal/broadcast"
	"github.com/moodpulse/moodpulse/internal/config"
	"github.com/moodpulse/moodpulse/internal/logging"
	"github.com/moodpulse/moodpulse/internal/models"
	ws "github.com/moodpulse/moodpulse/internal/websocket"
)

// Streamer controls the ingest and broadcast schedulers. The start-streaming
// endpoint is idempotent: calling it while the pipeline runs is a no-op.
type Streamer interface {
	EnsureStarted() error
	Running() bool
}

// Handler holds the dependencies of the REST and WebSocket handlers.
type Handler struct {
	agg       *aggregator.Aggregator
	hub       *ws.Hub
	stream    Streamer
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler.
func NewHandler(agg *aggregator.Aggregator, hub *ws.Hub, stream Streamer, cfg *config.Config) *Handler {
	return &Handler{
		agg:       agg,
		hub:       hub,
		stream:    stream,
		config:    cfg,
		startTime: time.Now(),
	}
}

// Happiness returns the current global happiness index with the same payload
// shape the WebSocket happiness_update carries.
func (h *Handler) Happiness(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	start := time.Now()
	update := broadcast.BuildUpdate(h.agg.Snapshot())

	respondJSON(w, http.StatusOK, withQueryTime(models.NewSuccessResponse(update), start))
}

// RecentPostsRequest carries the validated query parameters of
// GET /api/v1/recent-posts.
type RecentPostsRequest struct {
	Limit int `validate:"min=1,max=50"`
}

// RecentPosts returns the most recently analyzed posts, newest first.
func (h *Handler) RecentPosts(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	start := time.Now()

	req := RecentPostsRequest{
		Limit: getIntParam(r, "limit", 20),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	snap := h.agg.Snapshot()
	posts := snap.RecentPosts
	if len(posts) > req.Limit {
		posts = posts[:req.Limit]
	}
	if posts == nil {
		posts = []models.Post{}
	}

	data := map[string]interface{}{
		"posts": posts,
		"count": len(posts),
		"limit": req.Limit,
	}
	respondJSON(w, http.StatusOK, withQueryTime(models.NewSuccessResponse(data), start))
}

// StartStreaming starts the ingest and broadcast pipeline if it is not
// already running.
func (h *Handler) StartStreaming(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	if h.stream == nil {
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "Streaming pipeline unavailable", nil)
		return
	}

	alreadyRunning := h.stream.Running()
	if err := h.stream.EnsureStarted(); err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternalError, "Failed to start streaming", err)
		return
	}

	data := map[string]interface{}{
		"streaming":       true,
		"already_running": alreadyRunning,
	}
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(data))
}

// CountryTimeline lists the happiness timeline of every country past the
// minimum sample threshold. With ?country=X the response narrows to that
// country; countries below the threshold or never seen answer 404.
func (h *Handler) CountryTimeline(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	start := time.Now()
	snap := h.agg.Snapshot()

	country := r.URL.Query().Get("country")
	if country == "" {
		data := map[string]interface{}{
			"countries":    snap.CountryTimelines,
			"last_updated": snap.GeneratedAt,
		}
		respondJSON(w, http.StatusOK, withQueryTime(models.NewSuccessResponse(data), start))
		return
	}

	timeline := h.agg.CountryTimeline(country)
	if timeline == nil {
		respondError(w, http.StatusNotFound, CodeCountryNotFound, "No data for country", nil)
		return
	}

	data := map[string]interface{}{
		"country":  country,
		"timeline": timeline,
		"count":    len(timeline),
	}
	respondJSON(w, http.StatusOK, withQueryTime(models.NewSuccessResponse(data), start))
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout against slow-client attacks.
func (h *Handler) getUpgrader() gorillaws.Upgrader {
	return gorillaws.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins against the
// configured CORS origins. Browser WebSockets always send Origin; requests
// without one are rejected since allowing them would bypass CORS entirely.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	// Nil config allows by default for tests and development.
	if h.config == nil {
		return true
	}

	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// WebSocket upgrades the connection and registers the client with the hub.
// The hub guarantees an initial_status message before any happiness_update.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "WebSocket service unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register <- client
	client.Start()
}
