// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package main is the entry point for the MoodPulse server.
//
// MoodPulse computes a near-real-time global happiness index from public
// social posts. Collectors pull batches from seven sources (Reddit,
// Mastodon, Google Trends, YouTube, news, Twitter, forums), falling back to
// deterministic synthetic corpora when a source has no live path or its
// upstream is unavailable. Each post is scored by a pure lexicon-based
// sentiment analyzer, folded into an exponentially smoothed index, and
// fanned out to WebSocket subscribers every broadcast tick.
//
// # Application Architecture
//
// The server wires components in the following order:
//
//  1. Configuration: layered defaults, YAML file, env vars (koanf v2)
//  2. Aggregator: smoothed index, per-source and per-country state
//  3. Collectors: live Reddit/Mastodon plus synthetic sources
//  4. WebSocket hub: real-time updates with initial_status on connect
//  5. Schedulers: staggered per-source ingest and periodic broadcast
//  6. Supervisor tree: pipeline, messaging, and API layers (suture)
//  7. HTTP server: REST API, WebSocket upgrade, health probes, /metrics
//
// # Configuration
//
// Configuration is loaded via koanf v2 with layered sources (highest
// priority wins): environment variables, a config file (config.yaml or
// CONFIG_PATH), then built-in defaults. Common variables:
//
//	HTTP_PORT=8089
//	LOG_LEVEL=info
//	INGEST_AUTOSTART=true
//	BROADCAST_INTERVAL=5s
//	CORS_ORIGINS=https://dashboard.example.com
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the HTTP server drains
// in-flight requests, the schedulers stop and wait for their collection
// loops, and the hub closes every WebSocket client.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moodpulse/moodpulse/internal/aggregator"
	"github.com/moodpulse/moodpulse/internal/api"
	"github.com/moodpulse/moodpulse/internal/broadcast"
	"github.com/moodpulse/moodpulse/internal/collector"
	"github.com/moodpulse/moodpulse/internal/config"
	"github.com/moodpulse/moodpulse/internal/ingest"
	"github.com/moodpulse/moodpulse/internal/logging"
	"github.com/moodpulse/moodpulse/internal/models"
	"github.com/moodpulse/moodpulse/internal/supervisor"
	"github.com/moodpulse/moodpulse/internal/supervisor/services"
	ws "github.com/moodpulse/moodpulse/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Bool("ingest_autostart", cfg.Ingest.Autostart).
		Dur("broadcast_interval", cfg.Broadcast.Interval).
		Msg("Starting MoodPulse")

	// Aggregate state: smoothed index plus per-source and per-country stats.
	agg := aggregator.New(aggregator.Config{
		Alpha:              cfg.Aggregator.Alpha,
		RecentPostsCap:     cfg.Aggregator.RecentPostsCap,
		TrendCap:           cfg.Aggregator.TrendCap,
		CountryTimelineCap: cfg.Aggregator.CountryTimelineCap,
		MinCountrySamples:  cfg.Aggregator.MinCountrySamples,
	})

	collectors := collector.All(collector.Config{
		UserAgent:         cfg.Collector.UserAgent,
		RequestsPerSecond: cfg.Collector.RequestsPerSecond,
		RedditSubreddits:  cfg.Collector.RedditSubreddits,
		MastodonInstances: cfg.Collector.MastodonInstances,
	})
	logging.Info().Int("sources", len(collectors)).Msg("Collectors initialized")

	// New WebSocket subscribers receive the current state as initial_status
	// before any happiness_update.
	hub := ws.NewHub(func() interface{} {
		return broadcast.BuildUpdate(agg.Snapshot())
	})

	ingestManager := ingest.NewManager(agg, collectors, ingest.Config{
		FetchTimeout: cfg.Ingest.FetchTimeout,
		Stagger:      cfg.Ingest.Stagger,
		BatchSize:    cfg.Ingest.BatchSize,
		Intervals: map[models.Source]time.Duration{
			models.SourceReddit:       cfg.Ingest.RedditInterval,
			models.SourceMastodon:     cfg.Ingest.MastodonInterval,
			models.SourceGoogleTrends: cfg.Ingest.GoogleTrendsInterval,
			models.SourceYouTube:      cfg.Ingest.YouTubeInterval,
			models.SourceNews:         cfg.Ingest.NewsInterval,
			models.SourceTwitter:      cfg.Ingest.TwitterInterval,
			models.SourceForums:       cfg.Ingest.ForumsInterval,
		},
	})

	scheduler := broadcast.NewScheduler(agg, hub, cfg.Broadcast.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The slog adapter bridges zerolog to sutureslog.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	streamCtl := newStreamController(tree, ingestManager, scheduler)

	handler := api.NewHandler(agg, hub, streamCtl, cfg)
	chiMW := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Messaging and API layers run from boot. The pipeline layer's services
	// are added by the stream controller, either at autostart or on the
	// first POST /api/v1/start-streaming.
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if cfg.Ingest.Autostart {
		if err := streamCtl.EnsureStarted(); err != nil {
			logging.Fatal().Err(err).Msg("Failed to start streaming pipeline")
		}
		logging.Info().Msg("Streaming pipeline scheduled at boot")
	} else {
		logging.Info().Msg("Streaming pipeline idle until POST /api/v1/start-streaming")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
