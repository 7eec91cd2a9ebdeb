// MoodPulse - Near-Real-Time Global Happiness Index
// Copyright 2026 MoodPulse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodpulse/moodpulse

// Package metrics exposes Prometheus instrumentation for the pipeline:
// ingest activity per source, the live index value, broadcast fan-out,
// WebSocket subscribers, and the API surface.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsIngested counts scored posts folded into the aggregate,
	// by source and by path (live or fallback).
	PostsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodpulse_posts_ingested_total",
			Help: "Total posts ingested into the aggregator",
		},
		[]string{"source", "mode"},
	)

	// CollectFailures counts live fetch attempts that fell back.
	CollectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodpulse_collect_failures_total",
			Help: "Total live collection attempts that fell back to synthetic data",
		},
		[]string{"source"},
	)

	// CollectDuration observes per-cycle collection time by source.
	CollectDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodpulse_collect_duration_seconds",
			Help:    "Collection cycle duration by source",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// HappinessIndex tracks the current smoothed global index.
	HappinessIndex = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodpulse_happiness_index",
			Help: "Current smoothed global happiness index (0-100)",
		},
	)

	// PostsAnalyzed tracks the lifetime total of analyzed posts.
	PostsAnalyzed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodpulse_posts_analyzed",
			Help: "Lifetime count of analyzed posts",
		},
	)

	// BroadcastTicks counts broadcast scheduler cycles.
	BroadcastTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodpulse_broadcast_ticks_total",
			Help: "Total broadcast scheduler ticks",
		},
	)

	// WSConnections tracks currently connected WebSocket subscribers.
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodpulse_websocket_connections",
			Help: "Currently connected WebSocket subscribers",
		},
	)

	// WSMessagesSent counts messages delivered to subscriber queues.
	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodpulse_websocket_messages_sent_total",
			Help: "Total messages enqueued to WebSocket subscribers",
		},
	)

	// WSClientsPruned counts subscribers dropped for slow consumption.
	WSClientsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodpulse_websocket_clients_pruned_total",
			Help: "Total WebSocket subscribers pruned for full send queues",
		},
	)

	// APIRequestsTotal counts REST requests by method, endpoint and status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodpulse_api_requests_total",
			Help: "Total API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// APIRequestDuration observes REST request latency.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodpulse_api_request_duration_seconds",
			Help:    "API request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// APIActiveRequests tracks in-flight REST requests.
	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodpulse_api_active_requests",
			Help: "Currently active API requests",
		},
	)
)

// RecordAPIRequest records one completed REST request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIngest records one ingest cycle outcome for a source.
func RecordIngest(source string, fallback bool, count int, duration time.Duration) {
	mode := "live"
	if fallback {
		mode = "fallback"
		CollectFailures.WithLabelValues(source).Inc()
	}
	PostsIngested.WithLabelValues(source, mode).Add(float64(count))
	CollectDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// UpdateIndex publishes the current aggregate state.
func UpdateIndex(happiness float64, totalAnalyzed int64) {
	HappinessIndex.Set(happiness)
	PostsAnalyzed.Set(float64(totalAnalyzed))
}
