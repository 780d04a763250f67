package simulation

import (
	"spansim/internal/shared/metrics"
)

const reasonInvalidRegex = "invalid_regex"

var (
	metricSimulationRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSimulation,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRulesSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSimulation,
			Name:      "rules_skipped_total",
		},
		[]string{"reason"},
	)
)
