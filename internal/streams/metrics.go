package streams

import (
	"spansim/internal/shared/metrics"
)

var (
	streamSimulationRecord              = "simulation_record"
	metricSimulationRecordProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "simulation_record_published_total",
		},
		[]string{"stream_id"},
	)

	metricSimulationRecordConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "simulation_record_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
