// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package collector

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/moodpulse/moodpulse/internal/models"
)

// minTextLength filters out items too short to score meaningfully.
const minTextLength = 10

// Reddit collects from the public reddit JSON listing API, rotating
// through a configured subreddit list. No API key is required; the
// endpoint only asks for a descriptive User-Agent.
type Reddit struct {
	client     *http.Client
	limiter    *rate.Limiter
	userAgent  string
	subreddits []string
	fallback   *synthetic

	mu     sync.Mutex
	cursor int
}

// NewReddit builds the reddit collector from cfg.
func NewReddit(cfg Config) *Reddit {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	subs := cfg.RedditSubreddits
	if len(subs) == 0 {
		subs = DefaultConfig().RedditSubreddits
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultConfig().UserAgent
	}
	return &Reddit{
		client:     &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		userAgent:  ua,
		subreddits: subs,
		fallback:   newSynthetic(models.SourceReddit, redditCorpus, 0, "subreddit", subs),
	}
}

func (r *Reddit) Source() models.Source { return models.SourceReddit }

// redditListing mirrors the fields we use from the listing endpoint.
type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				SelfText  string `json:"selftext"`
				Author    string `json:"author"`
				Permalink string `json:"permalink"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// FetchLive pulls the newest posts from the next subreddit in rotation.
func (r *Reddit) FetchLive(ctx context.Context, n int) ([]RawItem, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("reddit rate limit wait: %w", err)
	}

	sub := r.nextSubreddit()
	url := fmt.Sprintf("https://www.reddit.com/r/%s/new.json?limit=%d", sub, n)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("reddit request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit fetch r/%s: %w: %w", sub, ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit fetch r/%s: status %d: %w", sub, resp.StatusCode, ErrUpstreamUnavailable)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("reddit decode r/%s: %w", sub, err)
	}

	items := make([]RawItem, 0, n)
	for _, child := range listing.Data.Children {
		text := child.Data.Title
		if child.Data.SelfText != "" {
			text = text + ". " + child.Data.SelfText
		}
		if len(text) < minTextLength {
			continue
		}
		var url string
		if child.Data.Permalink != "" {
			url = "https://www.reddit.com" + child.Data.Permalink
		}
		items = append(items, RawItem{
			Text:     text,
			Author:   "u/" + child.Data.Author,
			Source:   models.SourceReddit,
			URL:      url,
			Metadata: map[string]string{"subreddit": sub},
		})
		if len(items) == n {
			break
		}
	}
	return items, nil
}

// Fallback serves the built-in reddit corpus.
func (r *Reddit) Fallback(n int) []RawItem {
	return r.fallback.Fallback(n)
}

func (r *Reddit) nextSubreddit() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub := r.subreddits[r.cursor%len(r.subreddits)]
	r.cursor++
	return sub
}
