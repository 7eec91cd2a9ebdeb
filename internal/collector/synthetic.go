// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package collector

import (
	"context"
	"sync"

	"github.com/moodpulse/moodpulse/internal/models"
)

// synthetic serves a source from its built-in corpus. The cursor advances
// monotonically under a mutex, so successive Fallback calls walk the corpus
// (and the country ring) deterministically.
type synthetic struct {
	source   models.Source
	corpus   []corpusItem
	metaKey  string
	metaRing []string

	mu            sync.Mutex
	cursor        int
	countryCursor int
}

// newSynthetic builds a corpus-backed collector. metaKey/metaRing name the
// source-specific metadata attached to each item (subreddit, keyword, ...);
// an empty metaKey emits no metadata.
func newSynthetic(source models.Source, corpus []corpusItem, countryOffset int, metaKey string, metaRing []string) *synthetic {
	return &synthetic{
		source:        source,
		corpus:        corpus,
		metaKey:       metaKey,
		metaRing:      metaRing,
		countryCursor: countryOffset % len(countryRing),
	}
}

func (s *synthetic) Source() models.Source { return s.source }

// FetchLive always reports ErrUpstreamUnavailable: these sources have no
// keyless live API, the corpus is the only path.
func (s *synthetic) FetchLive(_ context.Context, _ int) ([]RawItem, error) {
	return nil, ErrUpstreamUnavailable
}

func (s *synthetic) Fallback(n int) []RawItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]RawItem, 0, n)
	for i := 0; i < n; i++ {
		c := s.corpus[s.cursor%len(s.corpus)]
		var meta map[string]string
		if s.metaKey != "" && len(s.metaRing) > 0 {
			meta = map[string]string{s.metaKey: s.metaRing[s.cursor%len(s.metaRing)]}
		}
		s.cursor++

		country := countryRing[s.countryCursor%len(countryRing)]
		s.countryCursor++

		items = append(items, RawItem{
			Text:     c.text,
			Author:   c.author,
			Country:  country,
			Source:   s.source,
			Metadata: meta,
		})
	}
	return items
}

// NewGoogleTrends returns the synthetic google_trends collector. The
// keyword metadata tracks the corpus entry one-to-one.
func NewGoogleTrends() Collector {
	return newSynthetic(models.SourceGoogleTrends, trendsCorpus, 2, "keyword", trendKeywords)
}

// NewYouTube returns the synthetic youtube collector.
func NewYouTube() Collector {
	return newSynthetic(models.SourceYouTube, youtubeCorpus, 5, "video_title", youtubeVideoTitles)
}

// NewNews returns the synthetic news collector.
func NewNews() Collector {
	return newSynthetic(models.SourceNews, newsCorpus, 9, "section", newsSections)
}

// NewTwitter returns the synthetic twitter collector.
func NewTwitter() Collector {
	return newSynthetic(models.SourceTwitter, twitterCorpus, 13, "hashtag", twitterHashtags)
}

// NewForums returns the synthetic forums collector.
func NewForums() Collector {
	return newSynthetic(models.SourceForums, forumsCorpus, 17, "forum", forumBoards)
}
