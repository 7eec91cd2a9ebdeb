// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package api provides the HTTP surface of MoodPulse: the versioned REST
// endpoints under /api/v1, the WebSocket upgrade endpoint, health probes,
// and the Prometheus metrics endpoint, all routed through Chi with
// production middleware (CORS, rate limiting, request IDs, security
// headers).
package api
