// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package collector implements the seven MoodPulse data sources.
//
// Each collector exposes two explicit paths: FetchLive talks to a real
// upstream (where one exists) and reports failure with an error; Fallback
// serves deterministic synthetic items from a built-in corpus. The choice
// between the two belongs to the caller, never to the collector.
package collector

import (
	"context"
	"errors"

	"github.com/moodpulse/moodpulse/internal/models"
)

// ErrUpstreamUnavailable signals that a collector has no live upstream or
// that the upstream could not be reached. The caller decides whether to
// fall back to the synthetic corpus.
var ErrUpstreamUnavailable = errors.New("collector: upstream unavailable")

// RawItem is one unscored item produced by a collector. URL points at the
// item's origin when the upstream exposes one; Metadata carries the
// source-specific context (subreddit, instance, keyword, ...).
type RawItem struct {
	Text     string
	Author   string
	Country  string
	Source   models.Source
	URL      string
	Metadata map[string]string
}

// Collector produces raw items for a single source.
type Collector interface {
	// Source identifies which source this collector feeds.
	Source() models.Source

	// FetchLive retrieves up to n items from the live upstream. It returns
	// ErrUpstreamUnavailable (possibly wrapped) when the source has no live
	// path or the upstream cannot be reached. An empty result with a nil
	// error is valid and also treated as a miss by callers.
	FetchLive(ctx context.Context, n int) ([]RawItem, error)

	// Fallback returns n synthetic items from the built-in corpus. It never
	// fails and is deterministic given the collector's rotation state.
	Fallback(n int) []RawItem
}

// Config holds settings shared by the live collectors.
type Config struct {
	// UserAgent is sent on every live HTTP request.
	UserAgent string

	// RequestsPerSecond caps outgoing HTTP requests per collector.
	RequestsPerSecond float64

	// RedditSubreddits is the rotation list for the reddit collector.
	RedditSubreddits []string

	// MastodonInstances is the rotation list for the mastodon collector.
	MastodonInstances []string
}

// DefaultConfig returns the stock collector configuration.
func DefaultConfig() Config {
	return Config{
		UserAgent:         "MoodPulse/1.0 (Educational Project)",
		RequestsPerSecond: 1,
		RedditSubreddits: []string{
			"wholesomememes", "UpliftingNews", "happy", "MadeMeSmile",
			"todayilearned", "AskReddit", "funny", "GetMotivated",
			"aww", "HumansBeingBros",
		},
		MastodonInstances: []string{
			"mastodon.social", "mastodon.world", "mstdn.social", "fosstodon.org",
		},
	}
}

// All returns one collector per source, in models.AllSources order.
func All(cfg Config) []Collector {
	return []Collector{
		NewReddit(cfg),
		NewMastodon(cfg),
		NewGoogleTrends(),
		NewYouTube(),
		NewNews(),
		NewTwitter(),
		NewForums(),
	}
}
