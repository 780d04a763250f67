package datasets

import (
	"spansim/internal/shared/metrics"
)

var (
	metricDatasetFetchesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDatasets,
			Name:      "fetches_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
