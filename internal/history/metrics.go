package history

import (
	"spansim/internal/shared/metrics"
)

var (
	metricSnapshotRecordedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHistory,
			Name:      "snapshot_recorded_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricSnapshotReadsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHistory,
			Name:      "snapshot_reads_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)
)
