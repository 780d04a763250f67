package cache

import (
	"spansim/internal/shared/metrics"
)

const (
	cacheTypeMemory = "memory"
	cacheTypeRedis  = "redis"
)

var (
	metricCacheHitsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCache,
			Name:      "hits_total",
		},
		[]string{"type"},
	)

	metricCacheMissesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCache,
			Name:      "misses_total",
		},
		[]string{"type"},
	)
)
