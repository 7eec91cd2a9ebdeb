// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

package aggregator

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/moodpulse/moodpulse/internal/models"
)

func post(source models.Source, happiness float64, country string) models.Post {
	return models.Post{
		ID:        "test",
		Source:    source,
		Text:      "test post",
		Country:   country,
		CreatedAt: time.Now().UTC(),
		Happiness: happiness,
		Label:     "neutral",
	}
}

func TestFreshAggregatorSnapshot(t *testing.T) {
	a := New(DefaultConfig())
	snap := a.Snapshot()

	if snap.CurrentHappiness != 50.0 {
		t.Errorf("fresh CurrentHappiness = %v, want 50.0", snap.CurrentHappiness)
	}
	if snap.TotalAnalyzed != 0 {
		t.Errorf("fresh TotalAnalyzed = %d, want 0", snap.TotalAnalyzed)
	}
	if len(snap.SourceBreakdown) != 0 || len(snap.CountrySentiment) != 0 {
		t.Errorf("fresh maps not empty: %+v", snap)
	}
	if len(snap.RecentPosts) != 0 || len(snap.Trend) != 0 {
		t.Errorf("fresh buffers not empty: %+v", snap)
	}
	if snap.Mood != "neutral" {
		t.Errorf("fresh Mood = %q, want neutral", snap.Mood)
	}
	if snap.CountryTimelines == nil || len(snap.CountryTimelines) != 0 {
		t.Errorf("fresh CountryTimelines = %v, want empty slice", snap.CountryTimelines)
	}
	if snap.Uptime < 0 {
		t.Errorf("Uptime = %v, want >= 0", snap.Uptime)
	}
}

func TestSmoothingSequence(t *testing.T) {
	a := New(DefaultConfig())

	a.Ingest([]models.Post{post(models.SourceReddit, 50, "")})
	if got := a.CurrentHappiness(); math.Abs(got-50.0) > 1e-9 {
		t.Errorf("after value 50: CurrentHappiness = %v, want 50.0", got)
	}

	a.Ingest([]models.Post{post(models.SourceReddit, 90, "")})
	if got := a.CurrentHappiness(); math.Abs(got-52.0) > 1e-9 {
		t.Errorf("after value 90: CurrentHappiness = %v, want 52.0", got)
	}
}

func TestHappinessStaysBounded(t *testing.T) {
	a := New(DefaultConfig())
	for i := 0; i < 500; i++ {
		a.Ingest([]models.Post{post(models.SourceNews, 100, "")})
	}
	if got := a.CurrentHappiness(); got < 0 || got > 100 {
		t.Errorf("CurrentHappiness = %v out of [0,100]", got)
	}

	b := New(DefaultConfig())
	for i := 0; i < 500; i++ {
		b.Ingest([]models.Post{post(models.SourceNews, 0, "")})
	}
	if got := b.CurrentHappiness(); got < 0 || got > 100 {
		t.Errorf("CurrentHappiness = %v out of [0,100]", got)
	}
}

func TestCountryMinimumSampleGate(t *testing.T) {
	a := New(DefaultConfig())

	for i := 0; i < 4; i++ {
		a.Ingest([]models.Post{post(models.SourceTwitter, 60, "Brazil")})
	}
	snap := a.Snapshot()
	if _, ok := snap.CountrySentiment["Brazil"]; ok {
		t.Fatal("Brazil appeared with only 4 posts")
	}
	if len(snap.CountryTimelines) != 0 {
		t.Errorf("CountryTimelines below the gate = %v, want empty", snap.CountryTimelines)
	}
	if tl := a.CountryTimeline("Brazil"); tl != nil {
		t.Errorf("below-gate timeline exposed: %v", tl)
	}

	a.Ingest([]models.Post{post(models.SourceTwitter, 60, "Brazil")})
	snap = a.Snapshot()
	stat, ok := snap.CountrySentiment["Brazil"]
	if !ok {
		t.Fatal("Brazil missing after 5th post")
	}
	if stat.TotalPosts != 5 {
		t.Errorf("Brazil TotalPosts = %d, want 5", stat.TotalPosts)
	}
	if math.Abs(stat.AverageHappiness-60) > 1e-9 {
		t.Errorf("Brazil AverageHappiness = %v, want 60", stat.AverageHappiness)
	}
	if stat.Label != "positive" {
		t.Errorf("Brazil Label = %q, want positive", stat.Label)
	}
	// The 5th sample makes the timeline visible with every recorded
	// point, including the pre-gate ones.
	if tl := a.CountryTimeline("Brazil"); len(tl) != 5 {
		t.Errorf("Brazil timeline length = %d, want 5", len(tl))
	}
	if len(snap.CountryTimelines) != 1 || snap.CountryTimelines[0].Name != "Brazil" {
		t.Fatalf("CountryTimelines = %v, want Brazil only", snap.CountryTimelines)
	}
	if got := snap.CountryTimelines[0]; got.TotalPosts != 5 || len(got.Timeline) != 5 {
		t.Errorf("Brazil listing = %d posts / %d points, want 5/5", got.TotalPosts, len(got.Timeline))
	}
}

func TestBufferEviction(t *testing.T) {
	a := New(DefaultConfig())

	posts := make([]models.Post, 0, 150)
	for i := 0; i < 150; i++ {
		p := post(models.SourceForums, float64(i%100), "Japan")
		p.ID = fmt.Sprintf("post-%d", i)
		posts = append(posts, p)
	}
	a.Ingest(posts)

	snap := a.Snapshot()
	if len(snap.RecentPosts) != 50 {
		t.Errorf("RecentPosts length = %d, want 50", len(snap.RecentPosts))
	}
	if snap.RecentPosts[0].ID != "post-149" {
		t.Errorf("RecentPosts[0].ID = %q, want post-149 (newest first)", snap.RecentPosts[0].ID)
	}
	if snap.RecentPosts[49].ID != "post-100" {
		t.Errorf("RecentPosts[49].ID = %q, want post-100", snap.RecentPosts[49].ID)
	}
	if len(snap.Trend) != 100 {
		t.Errorf("Trend length = %d, want 100", len(snap.Trend))
	}
	if tl := a.CountryTimeline("Japan"); len(tl) != 100 {
		t.Errorf("Japan timeline length = %d, want 100", len(tl))
	}
}

func TestSourceBreakdownSumsToTotal(t *testing.T) {
	a := New(DefaultConfig())

	a.Ingest([]models.Post{
		post(models.SourceReddit, 70, ""),
		post(models.SourceReddit, 40, ""),
		post(models.SourceMastodon, 55, ""),
		post(models.SourceNews, 30, "Germany"),
		post(models.SourceForums, 80, ""),
	})

	snap := a.Snapshot()
	var sum int64
	for _, n := range snap.SourceBreakdown {
		sum += n
	}
	if sum != snap.TotalAnalyzed {
		t.Errorf("breakdown sum %d != total %d", sum, snap.TotalAnalyzed)
	}
	if snap.TotalAnalyzed != 5 {
		t.Errorf("TotalAnalyzed = %d, want 5", snap.TotalAnalyzed)
	}
	if snap.SourceBreakdown[models.SourceReddit] != 2 {
		t.Errorf("reddit count = %d, want 2", snap.SourceBreakdown[models.SourceReddit])
	}
}

func TestSnapshotDetached(t *testing.T) {
	a := New(DefaultConfig())
	for i := 0; i < 5; i++ {
		a.Ingest([]models.Post{post(models.SourceYouTube, 65, "France")})
	}

	snap := a.Snapshot()
	snap.SourceBreakdown[models.SourceYouTube] = 999
	snap.CountrySentiment["France"] = models.CountryStat{TotalPosts: 999}
	if len(snap.RecentPosts) > 0 {
		snap.RecentPosts[0].Text = "mutated"
	}
	if len(snap.Trend) > 0 {
		snap.Trend[0].Value = -1
	}

	fresh := a.Snapshot()
	if fresh.SourceBreakdown[models.SourceYouTube] != 5 {
		t.Error("snapshot aliased SourceBreakdown")
	}
	if fresh.CountrySentiment["France"].TotalPosts != 5 {
		t.Error("snapshot aliased CountrySentiment")
	}
	if fresh.RecentPosts[0].Text == "mutated" {
		t.Error("snapshot aliased RecentPosts")
	}
	if fresh.Trend[0].Value == -1 {
		t.Error("snapshot aliased Trend")
	}

	p := post(models.SourceYouTube, 65, "France")
	p.Metadata = map[string]string{"video_title": "original"}
	a.Ingest([]models.Post{p})
	snap = a.Snapshot()
	snap.RecentPosts[0].Metadata["video_title"] = "mutated"
	if a.Snapshot().RecentPosts[0].Metadata["video_title"] != "original" {
		t.Error("snapshot aliased post metadata")
	}

	tl := a.CountryTimeline("France")
	tl[0].Happiness = -1
	if a.CountryTimeline("France")[0].Happiness == -1 {
		t.Error("CountryTimeline aliased internal slice")
	}
	if len(fresh.CountryTimelines) > 0 {
		fresh.CountryTimelines[0].Timeline[0].Happiness = -1
		if a.Snapshot().CountryTimelines[0].Timeline[0].Happiness == -1 {
			t.Error("snapshot aliased CountryTimelines")
		}
	}
}

func TestCountryTimelinesSortedByName(t *testing.T) {
	a := New(DefaultConfig())
	for i := 0; i < 5; i++ {
		a.Ingest([]models.Post{
			post(models.SourceNews, 55, "Norway"),
			post(models.SourceNews, 45, "Brazil"),
		})
	}

	snap := a.Snapshot()
	if len(snap.CountryTimelines) != 2 {
		t.Fatalf("CountryTimelines length = %d, want 2", len(snap.CountryTimelines))
	}
	if snap.CountryTimelines[0].Name != "Brazil" || snap.CountryTimelines[1].Name != "Norway" {
		t.Errorf("listing order = %q, %q; want Brazil, Norway",
			snap.CountryTimelines[0].Name, snap.CountryTimelines[1].Name)
	}
}

func TestCountryTimelineUnknown(t *testing.T) {
	a := New(DefaultConfig())
	if tl := a.CountryTimeline("Atlantis"); tl != nil {
		t.Errorf("unknown country timeline = %v, want nil", tl)
	}
}

func TestConcurrentIngestAndSnapshot(t *testing.T) {
	a := New(DefaultConfig())
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				a.Ingest([]models.Post{post(models.SourceReddit, 60, "Canada")})
			}
		}()
	}
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				snap := a.Snapshot()
				var sum int64
				for _, n := range snap.SourceBreakdown {
					sum += n
				}
				if sum != snap.TotalAnalyzed {
					t.Errorf("breakdown sum %d != total %d", sum, snap.TotalAnalyzed)
				}
			}
		}()
	}
	wg.Wait()

	if got := a.TotalAnalyzed(); got != 400 {
		t.Errorf("TotalAnalyzed = %d, want 400", got)
	}
}
