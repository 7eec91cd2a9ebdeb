// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package api

import (
	"net/http"
	"time"

	"github.com/moodpulse/moodpulse/internal/models"
)

// Health answers the liveness probe. It reports 200 whenever the process is
// alive, regardless of pipeline state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	data := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  time.Since(h.startTime).Seconds(),
	}
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(data))
}

// Ready answers the readiness probe. The service is ready once the streaming
// pipeline runs; before that it answers 503 so load balancers hold traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	streaming := h.stream != nil && h.stream.Running()

	data := map[string]interface{}{
		"ready":          streaming,
		"streaming":      streaming,
		"total_analyzed": h.agg.TotalAnalyzed(),
	}

	status := http.StatusOK
	if !streaming {
		status = http.StatusServiceUnavailable
	}

	resp := models.NewSuccessResponse(data)
	if !streaming {
		resp = models.NewErrorResponse(CodeServiceUnavailable, "Streaming pipeline not running")
		resp.Data = data
	}
	respondJSON(w, status, resp)
}
