// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package collector

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/moodpulse/moodpulse/internal/models"
)

// Mastodon collects from public instance timelines, rotating through a
// configured instance list. Public timelines need no authentication.
type Mastodon struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	instances []string
	fallback  *synthetic

	mu     sync.Mutex
	cursor int
}

// NewMastodon builds the mastodon collector from cfg.
func NewMastodon(cfg Config) *Mastodon {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	instances := cfg.MastodonInstances
	if len(instances) == 0 {
		instances = DefaultConfig().MastodonInstances
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultConfig().UserAgent
	}
	return &Mastodon{
		client:    &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		userAgent: ua,
		instances: instances,
		fallback:  newSynthetic(models.SourceMastodon, mastodonCorpus, 3, "instance", instances),
	}
}

func (m *Mastodon) Source() models.Source { return models.SourceMastodon }

type mastodonStatus struct {
	Content string `json:"content"`
	URL     string `json:"url"`
	Account struct {
		Acct string `json:"acct"`
	} `json:"account"`
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// FetchLive pulls the public timeline of the next instance in rotation.
func (m *Mastodon) FetchLive(ctx context.Context, n int) ([]RawItem, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("mastodon rate limit wait: %w", err)
	}

	instance := m.nextInstance()
	url := fmt.Sprintf("https://%s/api/v1/timelines/public?limit=%d&local=false", instance, n)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("mastodon request: %w", err)
	}
	req.Header.Set("User-Agent", m.userAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mastodon fetch %s: %w: %w", instance, ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mastodon fetch %s: status %d: %w", instance, resp.StatusCode, ErrUpstreamUnavailable)
	}

	var statuses []mastodonStatus
	if err := json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		return nil, fmt.Errorf("mastodon decode %s: %w", instance, err)
	}

	items := make([]RawItem, 0, n)
	for _, status := range statuses {
		text := stripHTML(status.Content)
		if len(text) < minTextLength {
			continue
		}
		items = append(items, RawItem{
			Text:     text,
			Author:   "@" + status.Account.Acct,
			Source:   models.SourceMastodon,
			URL:      status.URL,
			Metadata: map[string]string{"instance": instance},
		})
		if len(items) == n {
			break
		}
	}
	return items, nil
}

// Fallback serves the built-in mastodon corpus.
func (m *Mastodon) Fallback(n int) []RawItem {
	return m.fallback.Fallback(n)
}

func (m *Mastodon) nextInstance() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	instance := m.instances[m.cursor%len(m.instances)]
	m.cursor++
	return instance
}

func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}
