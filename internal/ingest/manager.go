// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package ingest schedules the collection pipeline: one goroutine per
// source, each on its own cadence, fetching live data and falling back to
// the synthetic corpus when the upstream misses. Scored posts flow into
// the aggregator. A failure in one source never disturbs the others.
package ingest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/moodpulse/moodpulse/internal/aggregator"
	"github.com/moodpulse/moodpulse/internal/collector"
	"github.com/moodpulse/moodpulse/internal/logging"
	"github.com/moodpulse/moodpulse/internal/metrics"
	"github.com/moodpulse/moodpulse/internal/models"
	"github.com/moodpulse/moodpulse/internal/sentiment"
)

// Config tunes the ingest scheduler.
type Config struct {
	// FetchTimeout bounds each live fetch attempt.
	FetchTimeout time.Duration

	// Stagger spaces out the first cycle of successive sources so they
	// never all hit their upstreams at once.
	Stagger time.Duration

	// BatchSize is the base number of items requested per cycle. The
	// effective size varies deterministically between BatchSize and
	// BatchSize+3 across cycles.
	BatchSize int

	// Intervals overrides the per-source cadence. Sources absent from the
	// map use DefaultIntervals.
	Intervals map[models.Source]time.Duration
}

// DefaultIntervals is the stock per-source cadence.
var DefaultIntervals = map[models.Source]time.Duration{
	models.SourceReddit:       45 * time.Second,
	models.SourceMastodon:     60 * time.Second,
	models.SourceGoogleTrends: 90 * time.Second,
	models.SourceYouTube:      75 * time.Second,
	models.SourceNews:         70 * time.Second,
	models.SourceTwitter:      55 * time.Second,
	models.SourceForums:       80 * time.Second,
}

// DefaultConfig returns the stock ingest configuration.
func DefaultConfig() Config {
	return Config{
		FetchTimeout: 10 * time.Second,
		Stagger:      2 * time.Second,
		BatchSize:    3,
	}
}

// Manager runs one collection loop per source.
type Manager struct {
	agg        *aggregator.Aggregator
	collectors []collector.Collector
	cfg        Config

	mu       sync.RWMutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewManager builds an ingest manager feeding agg from the given collectors.
func NewManager(agg *aggregator.Aggregator, collectors []collector.Collector, cfg Config) *Manager {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultConfig().FetchTimeout
	}
	if cfg.Stagger < 0 {
		cfg.Stagger = 0
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	return &Manager{
		agg:        agg,
		collectors: collectors,
		cfg:        cfg,
	}
}

// Start launches one collection loop per source. It fails if the manager
// is already running.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return errors.New("ingest manager already running")
	}
	if len(m.collectors) == 0 {
		return errors.New("ingest manager has no collectors")
	}

	m.stopChan = make(chan struct{})
	m.running = true

	for i, c := range m.collectors {
		m.wg.Add(1)
		go m.runSource(ctx, c, time.Duration(i)*m.cfg.Stagger)
	}

	logging.Info().
		Int("sources", len(m.collectors)).
		Dur("stagger", m.cfg.Stagger).
		Msg("ingest manager started")
	return nil
}

// Stop signals all source loops and waits for them to exit.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	close(m.stopChan)
	m.mu.Unlock()

	m.wg.Wait()
	logging.Info().Msg("ingest manager stopped")
	return nil
}

// Running reports whether the source loops are active.
func (m *Manager) Running() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

// interval returns the cadence for a source.
func (m *Manager) interval(source models.Source) time.Duration {
	if d, ok := m.cfg.Intervals[source]; ok && d > 0 {
		return d
	}
	if d, ok := DefaultIntervals[source]; ok {
		return d
	}
	return time.Minute
}

// runSource is the per-source loop: stagger, first cycle, then one cycle
// per interval tick until stopped.
func (m *Manager) runSource(ctx context.Context, c collector.Collector, offset time.Duration) {
	defer m.wg.Done()

	source := c.Source()
	log := logging.WithComponent("ingest").With().Str("source", source.String()).Logger()

	if offset > 0 {
		select {
		case <-time.After(offset):
		case <-m.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}

	ticker := time.NewTicker(m.interval(source))
	defer ticker.Stop()

	cycle := 0
	m.runCycle(ctx, c, cycle, log)

	for {
		select {
		case <-ticker.C:
			cycle++
			m.runCycle(ctx, c, cycle, log)
		case <-m.stopChan:
			log.Debug().Msg("source loop stopped")
			return
		case <-ctx.Done():
			log.Debug().Msg("source loop context canceled")
			return
		}
	}
}

// runCycle performs one fetch-score-ingest pass. A panic inside a collector
// is contained to this cycle; the loop carries on at the next tick.
func (m *Manager) runCycle(ctx context.Context, c collector.Collector, cycle int, log zerolog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int("cycle", cycle).Msg("collection cycle panicked")
		}
	}()

	source := c.Source()
	start := time.Now()
	n := m.batchSize(cycle)

	fetchCtx, cancel := context.WithTimeout(ctx, m.cfg.FetchTimeout)
	items, err := c.FetchLive(fetchCtx, n)
	cancel()

	// The scheduler owns the fallback decision: a failed or empty live
	// fetch is answered with synthetic corpus data so the index keeps
	// moving.
	fallback := false
	if err != nil || len(items) == 0 {
		switch {
		case err == nil:
			log.Warn().Int("cycle", cycle).Msg("live fetch returned nothing, using fallback")
		case errors.Is(err, collector.ErrUpstreamUnavailable):
			// An expected miss, bare or wrapped with the upstream detail.
			log.Debug().Err(err).Int("cycle", cycle).Msg("live upstream unavailable, using fallback")
		default:
			log.Warn().Err(err).Int("cycle", cycle).Msg("live fetch failed, using fallback")
		}
		items = c.Fallback(n)
		fallback = true
	}

	posts := scoreItems(items)
	m.agg.Ingest(posts)

	metrics.RecordIngest(source.String(), fallback, len(posts), time.Since(start))
	metrics.UpdateIndex(m.agg.CurrentHappiness(), m.agg.TotalAnalyzed())

	log.Debug().
		Int("cycle", cycle).
		Int("posts", len(posts)).
		Bool("fallback", fallback).
		Msg("collection cycle complete")
}

// batchSize varies the per-cycle item count deterministically within
// [BatchSize, BatchSize+3].
func (m *Manager) batchSize(cycle int) int {
	return m.cfg.BatchSize + cycle%4
}

// scoreItems turns raw items into scored posts.
func scoreItems(items []collector.RawItem) []models.Post {
	posts := make([]models.Post, 0, len(items))
	now := time.Now().UTC()
	for _, item := range items {
		r := sentiment.Score(item.Text)
		posts = append(posts, models.Post{
			ID:        uuid.New().String(),
			Source:    item.Source,
			Text:      item.Text,
			Author:    item.Author,
			Country:   item.Country,
			URL:       item.URL,
			Metadata:  item.Metadata,
			CreatedAt: now,
			Sentiment: r.Compound,
			Happiness: r.Value,
			Label:     r.Label,
		})
	}
	return posts
}
