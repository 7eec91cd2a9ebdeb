// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package aggregator owns the mutable happiness state. One Aggregator
// instance holds the smoothed global index, per-source counts, per-country
// stats, and the bounded history buffers, all behind a single mutex.
// Snapshots are deep copies: readers never alias internal state.
package aggregator

import (
	"sort"
	"sync"
	"time"

	"github.com/moodpulse/moodpulse/internal/models"
	"github.com/moodpulse/moodpulse/internal/sentiment"
)

// Config bounds the aggregator's buffers and tunes the smoothing.
type Config struct {
	// Alpha is the exponential smoothing factor for the global index.
	Alpha float64

	// RecentPostsCap bounds the recent-posts buffer.
	RecentPostsCap int

	// TrendCap bounds the global trend series.
	TrendCap int

	// CountryTimelineCap bounds each per-country timeline.
	CountryTimelineCap int

	// MinCountrySamples is how many posts a country needs before it
	// appears in snapshot country sentiment.
	MinCountrySamples int
}

// DefaultConfig returns the stock aggregator configuration.
func DefaultConfig() Config {
	return Config{
		Alpha:              0.05,
		RecentPostsCap:     50,
		TrendCap:           100,
		CountryTimelineCap: 100,
		MinCountrySamples:  5,
	}
}

// initialHappiness is the index value before any post arrives.
const initialHappiness = 50.0

type countryState struct {
	sum      float64
	count    int64
	timeline []models.TimelinePoint
}

// Aggregator folds scored posts into the global happiness state.
type Aggregator struct {
	cfg       Config
	startTime time.Time

	mu        sync.Mutex
	current   float64
	total     int64
	bySource  map[models.Source]int64
	countries map[string]*countryState
	recent    []models.Post // oldest first; reversed on snapshot
	trend     []models.TrendPoint
}

// New returns an Aggregator starting at the neutral index.
func New(cfg Config) *Aggregator {
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		cfg.Alpha = DefaultConfig().Alpha
	}
	if cfg.RecentPostsCap <= 0 {
		cfg.RecentPostsCap = DefaultConfig().RecentPostsCap
	}
	if cfg.TrendCap <= 0 {
		cfg.TrendCap = DefaultConfig().TrendCap
	}
	if cfg.CountryTimelineCap <= 0 {
		cfg.CountryTimelineCap = DefaultConfig().CountryTimelineCap
	}
	if cfg.MinCountrySamples <= 0 {
		cfg.MinCountrySamples = DefaultConfig().MinCountrySamples
	}
	return &Aggregator{
		cfg:       cfg,
		startTime: time.Now(),
		current:   initialHappiness,
		bySource:  make(map[models.Source]int64),
		countries: make(map[string]*countryState),
	}
}

// Ingest folds posts into the aggregate state in order.
func (a *Aggregator) Ingest(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range posts {
		a.ingestLocked(&posts[i])
	}
}

func (a *Aggregator) ingestLocked(p *models.Post) {
	a.current = a.current*(1-a.cfg.Alpha) + p.Happiness*a.cfg.Alpha
	a.total++
	a.bySource[p.Source]++

	a.recent = append(a.recent, *p)
	if len(a.recent) > a.cfg.RecentPostsCap {
		a.recent = a.recent[len(a.recent)-a.cfg.RecentPostsCap:]
	}

	a.trend = append(a.trend, models.TrendPoint{Timestamp: p.CreatedAt, Value: a.current})
	if len(a.trend) > a.cfg.TrendCap {
		a.trend = a.trend[len(a.trend)-a.cfg.TrendCap:]
	}

	if p.Country == "" {
		return
	}
	cs, ok := a.countries[p.Country]
	if !ok {
		cs = &countryState{}
		a.countries[p.Country] = cs
	}
	cs.sum += p.Happiness
	cs.count++
	cs.timeline = append(cs.timeline, models.TimelinePoint{Happiness: p.Happiness, Timestamp: p.CreatedAt})
	if len(cs.timeline) > a.cfg.CountryTimelineCap {
		cs.timeline = cs.timeline[len(cs.timeline)-a.cfg.CountryTimelineCap:]
	}
}

// Snapshot returns a deep copy of the aggregate state. Countries below the
// minimum sample threshold are withheld from CountrySentiment and
// CountryTimelines.
func (a *Aggregator) Snapshot() models.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	breakdown := make(map[models.Source]int64, len(a.bySource))
	for s, n := range a.bySource {
		breakdown[s] = n
	}

	countries := make(map[string]models.CountryStat)
	timelines := make([]models.CountryTimeline, 0, len(a.countries))
	for name, cs := range a.countries {
		if cs.count < int64(a.cfg.MinCountrySamples) {
			continue
		}
		avg := cs.sum / float64(cs.count)
		countries[name] = models.CountryStat{
			AverageHappiness: avg,
			TotalPosts:       cs.count,
			Label:            sentiment.LabelForValue(avg),
		}
		points := make([]models.TimelinePoint, len(cs.timeline))
		copy(points, cs.timeline)
		timelines = append(timelines, models.CountryTimeline{
			Name:       name,
			TotalPosts: cs.count,
			Timeline:   points,
		})
	}
	sort.Slice(timelines, func(i, j int) bool {
		return timelines[i].Name < timelines[j].Name
	})

	// Newest first. Post metadata maps are cloned so snapshots stay
	// detached.
	recent := make([]models.Post, len(a.recent))
	for i, p := range a.recent {
		if p.Metadata != nil {
			meta := make(map[string]string, len(p.Metadata))
			for k, v := range p.Metadata {
				meta[k] = v
			}
			p.Metadata = meta
		}
		recent[len(a.recent)-1-i] = p
	}

	trend := make([]models.TrendPoint, len(a.trend))
	copy(trend, a.trend)

	return models.Snapshot{
		CurrentHappiness: a.current,
		Mood:             models.MoodLabel(a.current),
		TotalAnalyzed:    a.total,
		SourceBreakdown:  breakdown,
		CountrySentiment: countries,
		CountryTimelines: timelines,
		RecentPosts:      recent,
		Trend:            trend,
		GeneratedAt:      time.Now().UTC(),
		Uptime:           time.Since(a.startTime).Seconds(),
	}
}

// CountryTimeline returns a copy of the country's happiness samples,
// oldest first. Countries never seen, or still below the minimum sample
// threshold, return nil: exposure is gated the same way as the snapshot's
// CountryTimelines listing, even though every sample is recorded.
func (a *Aggregator) CountryTimeline(country string) []models.TimelinePoint {
	a.mu.Lock()
	defer a.mu.Unlock()

	cs, ok := a.countries[country]
	if !ok || cs.count < int64(a.cfg.MinCountrySamples) {
		return nil
	}
	out := make([]models.TimelinePoint, len(cs.timeline))
	copy(out, cs.timeline)
	return out
}

// CurrentHappiness returns the smoothed global index.
func (a *Aggregator) CurrentHappiness() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// TotalAnalyzed returns the count of all ingested posts.
func (a *Aggregator) TotalAnalyzed() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}
