// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package models

import "time"

// Post is a single collected item after sentiment scoring.
type Post struct {
	// ID is a unique identifier assigned at ingest time.
	ID string `json:"id"`

	// Source is the collector that produced the post.
	Source Source `json:"source"`

	// Text is the post body used for scoring. May be truncated for display.
	Text string `json:"text"`

	// Author is the post author as reported by the source, or a synthetic
	// handle for fallback items.
	Author string `json:"author,omitempty"`

	// Country is the attributed country name, or "" when unknown.
	Country string `json:"country,omitempty"`

	// URL is the post's origin link, when the source provides one.
	URL string `json:"url,omitempty"`

	// Metadata carries source-specific attributes such as the subreddit,
	// instance, or search keyword an item came from.
	Metadata map[string]string `json:"metadata,omitempty"`

	// CreatedAt is when the post was ingested.
	CreatedAt time.Time `json:"created_at"`

	// Sentiment is the compound sentiment score in [-1, 1].
	Sentiment float64 `json:"sentiment"`

	// Happiness is the sentiment mapped to the [0, 100] happiness scale.
	Happiness float64 `json:"happiness"`

	// Label classifies the post: positive, neutral, or negative.
	Label string `json:"label"`
}
