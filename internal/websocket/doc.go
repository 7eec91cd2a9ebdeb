// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package websocket implements the realtime fan-out channel: a hub that
// tracks subscribers and broadcasts happiness updates, and a per-connection
// client with read/write pumps over gorilla/websocket.
//
// A new subscriber always receives an initial_status message carrying the
// current snapshot before any happiness_update, because both are enqueued
// by the single hub loop. Slow subscribers are pruned, never waited on.
package websocket
