package rulesets

import (
	"spansim/internal/shared/metrics"
)

const (
	opCreate = "create"
	opGet    = "get"
	opList   = "list"
	opUpdate = "update"
	opDelete = "delete"
)

var (
	metricRuleSetOperationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRuleSets,
			Name:      "operations_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)
)
