// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package broadcast drives the realtime fan-out: on a fixed cadence it
// takes one aggregator snapshot, shapes it into the wire payload, and hands
// it to the hub. Every subscriber sees the same payload for a given tick.
package broadcast

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/moodpulse/moodpulse/internal/aggregator"
	"github.com/moodpulse/moodpulse/internal/logging"
	"github.com/moodpulse/moodpulse/internal/metrics"
	"github.com/moodpulse/moodpulse/internal/models"
)

// Wire payload trimming: subscribers get a recent slice, not the full
// aggregator buffers.
const (
	recentPostsLimit = 8
	trendLimit       = 20
)

// DefaultInterval is the stock broadcast cadence.
const DefaultInterval = 5 * time.Second

// UpdateData is the payload carried by both initial_status and
// happiness_update messages.
type UpdateData struct {
	CurrentHappiness float64                       `json:"current_happiness"`
	Mood             string                        `json:"mood"`
	TotalAnalyzed    int64                         `json:"total_analyzed"`
	SourceBreakdown  map[models.Source]int64       `json:"source_breakdown"`
	CountrySentiment map[string]models.CountryStat `json:"country_sentiment"`
	CountryTimelines []models.CountryTimeline      `json:"country_timelines"`
	RecentPosts      []models.Post                 `json:"recent_posts"`
	Trend            []models.TrendPoint           `json:"trend"`
	GeneratedAt      time.Time                     `json:"generated_at"`
	Uptime           float64                       `json:"uptime"`
}

// BuildUpdate shapes a snapshot into the wire payload: the latest
// recentPostsLimit posts and the last trendLimit trend points.
func BuildUpdate(snap models.Snapshot) UpdateData {
	recent := snap.RecentPosts
	if len(recent) > recentPostsLimit {
		recent = recent[:recentPostsLimit]
	}
	trend := snap.Trend
	if len(trend) > trendLimit {
		trend = trend[len(trend)-trendLimit:]
	}
	return UpdateData{
		CurrentHappiness: snap.CurrentHappiness,
		Mood:             snap.Mood,
		TotalAnalyzed:    snap.TotalAnalyzed,
		SourceBreakdown:  snap.SourceBreakdown,
		CountrySentiment: snap.CountrySentiment,
		CountryTimelines: snap.CountryTimelines,
		RecentPosts:      recent,
		Trend:            trend,
		GeneratedAt:      snap.GeneratedAt,
		Uptime:           snap.Uptime,
	}
}

// Broadcaster is the hub surface the scheduler needs.
type Broadcaster interface {
	BroadcastHappinessUpdate(data interface{})
}

// Scheduler pushes one shared payload per tick to the hub.
type Scheduler struct {
	agg      *aggregator.Aggregator
	hub      Broadcaster
	interval time.Duration

	mu       sync.RWMutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewScheduler builds a broadcast scheduler. interval <= 0 uses
// DefaultInterval.
func NewScheduler(agg *aggregator.Aggregator, hub Broadcaster, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		agg:      agg,
		hub:      hub,
		interval: interval,
	}
}

// Start launches the tick loop. It fails if the scheduler is already
// running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("broadcast scheduler already running")
	}
	s.stopChan = make(chan struct{})
	s.running = true

	s.wg.Add(1)
	go s.run(ctx)

	logging.Info().Dur("interval", s.interval).Msg("broadcast scheduler started")
	return nil
}

// Stop signals the loop and waits for it to exit.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
	logging.Info().Msg("broadcast scheduler stopped")
	return nil
}

// Running reports whether the tick loop is active.
func (s *Scheduler) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// tick takes ONE snapshot and fans the same payload out to all
// subscribers.
func (s *Scheduler) tick() {
	snap := s.agg.Snapshot()
	s.hub.BroadcastHappinessUpdate(BuildUpdate(snap))
	metrics.BroadcastTicks.Inc()
	metrics.UpdateIndex(snap.CurrentHappiness, snap.TotalAnalyzed)
}
