// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package models

import "time"

// TrendPoint is one sample on a happiness time series.
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// CountryStat summarizes sentiment for a single country.
type CountryStat struct {
	AverageHappiness float64 `json:"average_happiness"`
	TotalPosts       int64   `json:"total_posts"`
	Label            string  `json:"label"`
}

// TimelinePoint is one sample on a country's happiness timeline.
type TimelinePoint struct {
	Happiness float64   `json:"happiness"`
	Timestamp time.Time `json:"timestamp"`
}

// CountryTimeline groups one country's samples for the timeline listing.
type CountryTimeline struct {
	Name       string          `json:"name"`
	TotalPosts int64           `json:"total_posts"`
	Timeline   []TimelinePoint `json:"timeline"`
}

// Snapshot is a point-in-time, fully detached copy of the aggregate state.
// Consumers may hold and mutate a Snapshot freely; it never aliases
// aggregator internals.
type Snapshot struct {
	// CurrentHappiness is the exponentially smoothed global index in [0, 100].
	CurrentHappiness float64 `json:"current_happiness"`

	// Mood is a display label derived from CurrentHappiness.
	Mood string `json:"mood"`

	// TotalAnalyzed counts every post ever ingested.
	TotalAnalyzed int64 `json:"total_analyzed"`

	// SourceBreakdown counts ingested posts per source.
	// Sums to TotalAnalyzed.
	SourceBreakdown map[Source]int64 `json:"source_breakdown"`

	// CountrySentiment holds per-country stats for countries that have
	// passed the minimum sample threshold.
	CountrySentiment map[string]CountryStat `json:"country_sentiment"`

	// CountryTimelines lists the per-country happiness series, sorted by
	// name. Only countries past the minimum sample threshold appear.
	CountryTimelines []CountryTimeline `json:"country_timelines"`

	// RecentPosts lists the latest posts, newest first.
	RecentPosts []Post `json:"recent_posts"`

	// Trend is the recent history of CurrentHappiness, oldest first.
	Trend []TrendPoint `json:"trend"`

	// GeneratedAt is when the snapshot was taken.
	GeneratedAt time.Time `json:"generated_at"`

	// Uptime is the elapsed wall time, in seconds, since the aggregate
	// state was created at process start.
	Uptime float64 `json:"uptime"`
}

// MoodLabel maps a happiness value to a display label.
func MoodLabel(value float64) string {
	switch {
	case value >= 70:
		return "very happy"
	case value >= 55:
		return "happy"
	case value <= 30:
		return "very sad"
	case value <= 45:
		return "sad"
	default:
		return "neutral"
	}
}
