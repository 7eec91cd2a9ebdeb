// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package services adapts MoodPulse components to suture.Service so they can
// run under the supervision tree. Each wrapper translates a component's
// native lifecycle (RunWithContext, Start/Stop, ListenAndServe/Shutdown)
// into suture's blocking Serve pattern.
package services
