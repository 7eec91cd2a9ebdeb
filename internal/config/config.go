// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package config defines the MoodPulse configuration and its layered
// loader: built-in defaults, an optional YAML file, and environment
// variable overrides, in ascending precedence.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Security   SecurityConfig   `koanf:"security"`
	Ingest     IngestConfig     `koanf:"ingest"`
	Broadcast  BroadcastConfig  `koanf:"broadcast"`
	Aggregator AggregatorConfig `koanf:"aggregator"`
	Collector  CollectorConfig  `koanf:"collector"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// IngestConfig holds collection scheduler settings.
type IngestConfig struct {
	// Autostart launches the ingest and broadcast schedulers at boot.
	// When false they start on the first POST /api/v1/start-streaming.
	Autostart    bool          `koanf:"autostart"`
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	Stagger      time.Duration `koanf:"stagger"`
	BatchSize    int           `koanf:"batch_size"`

	// Per-source cadence.
	RedditInterval       time.Duration `koanf:"reddit_interval"`
	MastodonInterval     time.Duration `koanf:"mastodon_interval"`
	GoogleTrendsInterval time.Duration `koanf:"google_trends_interval"`
	YouTubeInterval      time.Duration `koanf:"youtube_interval"`
	NewsInterval         time.Duration `koanf:"news_interval"`
	TwitterInterval      time.Duration `koanf:"twitter_interval"`
	ForumsInterval       time.Duration `koanf:"forums_interval"`
}

// BroadcastConfig holds fan-out scheduler settings.
type BroadcastConfig struct {
	Interval time.Duration `koanf:"interval"`
}

// AggregatorConfig holds aggregate state settings.
type AggregatorConfig struct {
	Alpha              float64 `koanf:"alpha"`
	RecentPostsCap     int     `koanf:"recent_posts_cap"`
	TrendCap           int     `koanf:"trend_cap"`
	CountryTimelineCap int     `koanf:"country_timeline_cap"`
	MinCountrySamples  int     `koanf:"min_country_samples"`
}

// CollectorConfig holds live collector settings.
type CollectorConfig struct {
	UserAgent         string   `koanf:"user_agent"`
	RequestsPerSecond float64  `koanf:"requests_per_second"`
	RedditSubreddits  []string `koanf:"reddit_subreddits"`
	MastodonInstances []string `koanf:"mastodon_instances"`
}

// defaultConfig returns a Config with all defaults applied. These are
// layered first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8089,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Ingest: IngestConfig{
			Autostart:            true,
			FetchTimeout:         10 * time.Second,
			Stagger:              2 * time.Second,
			BatchSize:            3,
			RedditInterval:       45 * time.Second,
			MastodonInterval:     60 * time.Second,
			GoogleTrendsInterval: 90 * time.Second,
			YouTubeInterval:      75 * time.Second,
			NewsInterval:         70 * time.Second,
			TwitterInterval:      55 * time.Second,
			ForumsInterval:       80 * time.Second,
		},
		Broadcast: BroadcastConfig{
			Interval: 5 * time.Second,
		},
		Aggregator: AggregatorConfig{
			Alpha:              0.05,
			RecentPostsCap:     50,
			TrendCap:           100,
			CountryTimelineCap: 100,
			MinCountrySamples:  5,
		},
		Collector: CollectorConfig{
			UserAgent:         "MoodPulse/1.0 (Educational Project)",
			RequestsPerSecond: 1,
			RedditSubreddits: []string{
				"wholesomememes", "UpliftingNews", "happy", "MadeMeSmile",
				"todayilearned", "AskReddit", "funny", "GetMotivated",
				"aww", "HumansBeingBros",
			},
			MastodonInstances: []string{
				"mastodon.social", "mastodon.world", "mstdn.social", "fosstodon.org",
			},
		},
	}
}

// Validate checks the configuration for values the service cannot run
// with. A validation failure aborts startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Aggregator.Alpha <= 0 || c.Aggregator.Alpha >= 1 {
		return fmt.Errorf("aggregator.alpha must be in (0, 1), got %v", c.Aggregator.Alpha)
	}
	if c.Aggregator.RecentPostsCap < 1 {
		return fmt.Errorf("aggregator.recent_posts_cap must be positive, got %d", c.Aggregator.RecentPostsCap)
	}
	if c.Aggregator.TrendCap < 1 {
		return fmt.Errorf("aggregator.trend_cap must be positive, got %d", c.Aggregator.TrendCap)
	}
	if c.Aggregator.MinCountrySamples < 1 {
		return fmt.Errorf("aggregator.min_country_samples must be positive, got %d", c.Aggregator.MinCountrySamples)
	}
	if c.Broadcast.Interval < time.Second {
		return fmt.Errorf("broadcast.interval must be at least 1s, got %v", c.Broadcast.Interval)
	}
	if c.Ingest.FetchTimeout <= 0 {
		return fmt.Errorf("ingest.fetch_timeout must be positive, got %v", c.Ingest.FetchTimeout)
	}
	if c.Ingest.BatchSize < 1 {
		return fmt.Errorf("ingest.batch_size must be positive, got %d", c.Ingest.BatchSize)
	}
	intervals := map[string]time.Duration{
		"ingest.reddit_interval":        c.Ingest.RedditInterval,
		"ingest.mastodon_interval":      c.Ingest.MastodonInterval,
		"ingest.google_trends_interval": c.Ingest.GoogleTrendsInterval,
		"ingest.youtube_interval":       c.Ingest.YouTubeInterval,
		"ingest.news_interval":          c.Ingest.NewsInterval,
		"ingest.twitter_interval":       c.Ingest.TwitterInterval,
		"ingest.forums_interval":        c.Ingest.ForumsInterval,
	}
	for name, d := range intervals {
		if d < time.Second {
			return fmt.Errorf("%s must be at least 1s, got %v", name, d)
		}
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
	}
	if len(c.Collector.RedditSubreddits) == 0 {
		return fmt.Errorf("collector.reddit_subreddits must not be empty")
	}
	if len(c.Collector.MastodonInstances) == 0 {
		return fmt.Errorf("collector.mastodon_instances must not be empty")
	}
	return nil
}
