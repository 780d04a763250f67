package upstream

import (
	"spansim/internal/shared/metrics"
)

var (
	metricUpstreamRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubUpstream,
			Name:      "requests_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricUpstreamRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubUpstream,
			Name:      "request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)
