// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package models

import "fmt"

// Source identifies a data source feeding the happiness index.
// The set of sources is closed; unknown strings are rejected by ParseSource.
type Source string

const (
	SourceReddit       Source = "reddit"
	SourceMastodon     Source = "mastodon"
	SourceGoogleTrends Source = "google_trends"
	SourceYouTube      Source = "youtube"
	SourceNews         Source = "news"
	SourceTwitter      Source = "twitter"
	SourceForums       Source = "forums"
)

// allSources lists every valid source in stable display order.
var allSources = []Source{
	SourceReddit,
	SourceMastodon,
	SourceGoogleTrends,
	SourceYouTube,
	SourceNews,
	SourceTwitter,
	SourceForums,
}

// sourceSet is the lookup table backing ParseSource.
var sourceSet = func() map[Source]struct{} {
	m := make(map[Source]struct{}, len(allSources))
	for _, s := range allSources {
		m[s] = struct{}{}
	}
	return m
}()

// AllSources returns every valid source in stable order.
// The returned slice is a copy and safe to modify.
func AllSources() []Source {
	out := make([]Source, len(allSources))
	copy(out, allSources)
	return out
}

// ParseSource validates a source name and returns the typed Source.
func ParseSource(name string) (Source, error) {
	s := Source(name)
	if _, ok := sourceSet[s]; !ok {
		return "", fmt.Errorf("unknown source %q", name)
	}
	return s, nil
}

// Valid reports whether s is one of the defined sources.
func (s Source) Valid() bool {
	_, ok := sourceSet[s]
	return ok
}

// String returns the wire name of the source.
func (s Source) String() string {
	return string(s)
}
