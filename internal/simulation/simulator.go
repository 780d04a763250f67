package simulation

import (
	"context"

	"spansim/internal/models"
	"spansim/internal/shared/loggers"
	"spansim/internal/shared/metrics"
	"spansim/internal/shared/svcerrors"
)

// monthDays is the fixed projection horizon: window totals are scaled
// linearly to a 30-day month regardless of the queried window length.
const monthDays = 30.0

// Input carries one simulation request into the engine. GlobalRate is the
// fraction (0..1) applied to groups no rule matches. ExpansionFactor scales
// every simulated count for what-if traffic growth; it is deliberately not
// bounded.
type Input struct {
	Dataset         models.Dataset
	Rules           []models.Rule
	GlobalRate      float64
	ExpansionFactor float64
	PeriodDays      int
}

//go:generate mockgen -source=simulator.go -destination=./mocks/simulation_service_mock.go -package=mocks
type Service interface {
	// Simulate runs the rule configuration over the dataset snapshot and
	// returns per-group and total sampled volumes. The computation is pure:
	// identical inputs always produce identical results.
	Simulate(ctx context.Context, input *Input) (*models.SimulationResult, error)
}

type simulationService struct{}

func NewService() Service {
	return &simulationService{}
}

func (s *simulationService) Simulate(ctx context.Context, input *Input) (*models.SimulationResult, error) {
	logger := loggers.Ctx(ctx)

	if err := s.validateInput(input); err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricSimulationRunsTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	prepared, diagnostics := prepareRules(input.Rules)
	if len(diagnostics) > 0 {
		metricRulesSkippedTotal.WithLabelValues(reasonInvalidRegex).Add(float64(len(diagnostics)))
	}

	result := &models.SimulationResult{
		Breakdown:   make([]models.BreakdownRow, 0, len(input.Dataset.Groups)+1),
		Diagnostics: diagnostics,
	}

	for _, group := range input.Dataset.Groups {
		row := s.simulateGroup(group, prepared, input)
		result.TotalSimulatedCount += row.SimulatedCount
		result.Breakdown = append(result.Breakdown, row)
	}

	// Volume the backend declared but did not break out into visible groups
	// becomes one synthetic bucket, sampled at the global rate. A declared
	// total below the group sum is trusted as-is and reconciles nothing.
	if missing := s.missingCount(input.Dataset); missing > 0 {
		row := models.BreakdownRow{
			Attributes:       models.OtherAttributes(),
			RawCount:         missing,
			SimulatedCount:   float64(missing) * input.GlobalRate * input.ExpansionFactor,
			SamplingRate:     input.GlobalRate,
			MatchedRuleLabel: models.GlobalRuleLabel,
		}
		result.TotalSimulatedCount += row.SimulatedCount
		result.Breakdown = append(result.Breakdown, row)
	}

	totalRaw := input.Dataset.TotalCount()
	result.TotalRawCount = totalRaw
	result.MonthlyRawCount = float64(totalRaw) * monthDays / float64(input.PeriodDays)
	result.MonthlySimulatedCount = result.TotalSimulatedCount * monthDays / float64(input.PeriodDays)
	result.CostReductionPercent = costReduction(float64(totalRaw), result.TotalSimulatedCount)

	logger.Debug().
		Int("groups", len(input.Dataset.Groups)).
		Int("rules", len(prepared)).
		Int64("total_raw", result.TotalRawCount).
		Float64("total_simulated", result.TotalSimulatedCount).
		Msg("simulation completed")

	metricSimulationRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

// simulateGroup resolves the winning rule for one group: the first prepared
// rule that matches sets the rate, otherwise the global rate applies.
func (s *simulationService) simulateGroup(group models.SpanGroup, prepared []preparedRule, input *Input) models.BreakdownRow {
	rate := input.GlobalRate
	label := models.GlobalRuleLabel

	for _, pr := range prepared {
		if pr.matches(group.Attributes) {
			rate = pr.rule.Rate / 100
			label = pr.rule.Label()
			break
		}
	}

	return models.BreakdownRow{
		Attributes:       group.Attributes,
		RawCount:         group.Count,
		SimulatedCount:   float64(group.Count) * rate * input.ExpansionFactor,
		SamplingRate:     rate,
		MatchedRuleLabel: label,
	}
}

func (s *simulationService) missingCount(dataset models.Dataset) int64 {
	if dataset.DeclaredTotal == nil {
		return 0
	}
	return *dataset.DeclaredTotal - dataset.GroupTotal()
}

func (s *simulationService) validateInput(input *Input) error {
	if input == nil {
		return errValidationFailed("input is required", nil)
	}
	if input.PeriodDays <= 0 {
		return errValidationFailed("periodDays must be a positive number of days", nil)
	}
	if input.GlobalRate < 0 || input.GlobalRate > 1 {
		return errValidationFailed("globalRate must be a fraction between 0 and 1", nil)
	}
	return nil
}

// costReduction is the percentage drop from raw to simulated volume. An
// expansion factor can push the simulated total above raw; that reads as no
// savings, never as negative savings. A window with no spans saves nothing.
func costReduction(raw, simulated float64) float64 {
	if raw == 0 {
		return 0
	}
	reduction := (raw - simulated) / raw * 100
	if reduction < 0 {
		return 0
	}
	return reduction
}
