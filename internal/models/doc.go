// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package models defines the domain types shared across the MoodPulse
// pipeline: sources, scored posts, aggregate snapshots, and the REST
// response envelope.
package models
