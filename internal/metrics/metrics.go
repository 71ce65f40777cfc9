// Package metrics defines the Prometheus instrumentation for guildboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feature lifecycle metrics
var (
	// FeatureOpsTotal tracks feature lifecycle operations by operation and status
	FeatureOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feature_operations_total",
			Help: "Feature lifecycle operations by operation (enable/disable/update) and status",
		},
		[]string{"operation", "status"},
	)
)

// Discord API metrics
var (
	// UpstreamRequestsTotal tracks Discord API requests by resource and status
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discord_requests_total",
			Help: "Discord API requests by resource and status (ok/auth_error/upstream_error)",
		},
		[]string{"resource", "status"},
	)

	// UpstreamRequestDuration tracks Discord API request latency in seconds
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discord_request_duration_seconds",
			Help:    "Discord API request duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"resource"},
	)

	// DirectoryCacheHits tracks freshness-window cache hits by resource
	DirectoryCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_cache_hits_total",
			Help: "Guild directory cache hits by resource",
		},
		[]string{"resource"},
	)

	// DirectoryCacheMisses tracks freshness-window cache misses by resource
	DirectoryCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_cache_misses_total",
			Help: "Guild directory cache misses by resource",
		},
		[]string{"resource"},
	)

	// DirectoryCacheEvictions counts expired entries removed from the directory cache
	DirectoryCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "directory_cache_evictions_total",
			Help: "Expired guild directory cache entries evicted",
		},
	)

	// DirectoryCacheSize tracks the current number of directory cache entries
	DirectoryCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "directory_cache_size",
			Help: "Current number of guild directory cache entries (including expired)",
		},
	)
)

// View cache metrics
var (
	// ViewCacheHits counts served-from-cache feature page renders
	ViewCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "view_cache_hits_total",
			Help: "Feature page renders served from the view cache",
		},
	)

	// ViewCacheMisses counts feature page renders that had to be computed
	ViewCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "view_cache_misses_total",
			Help: "Feature page renders computed after a view cache miss",
		},
	)

	// ViewCacheInvalidations counts explicit view cache invalidations
	ViewCacheInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "view_cache_invalidations_total",
			Help: "Explicit view cache invalidations after feature mutations",
		},
	)
)
