package http

import (
	"fmt"
	"net/http"
	"time"

	"spansim/internal/datasets"
	"spansim/internal/models"
	"spansim/internal/shared/format"
	"spansim/internal/shared/loggers"
	"spansim/internal/shared/ulid"
	"spansim/internal/simulation"
	"spansim/internal/streams"
)

// allowedPeriods are the query windows the API accepts. The engine itself
// takes any positive period; the restriction lives at the edge because the
// upstream backend only serves these windows.
var allowedPeriods = map[int]bool{7: true, 30: true, 90: true}

// simulateRequest is the POST /simulations body. Rates arrive as percents
// (0..100) and are converted to fractions before they reach the engine.
// ExpansionFactor defaults to 1 (no traffic growth) when omitted.
type simulateRequest struct {
	Organization     string        `json:"organization"`
	Project          string        `json:"project"`
	PeriodDays       int           `json:"periodDays"`
	Rules            []models.Rule `json:"rules"`
	GlobalSampleRate *float64      `json:"globalSampleRate"`
	ExpansionFactor  *float64      `json:"expansionFactor"`
}

type simulateResponse struct {
	SimulationID string                   `json:"simulationId"`
	Organization string                   `json:"organization"`
	Project      string                   `json:"project"`
	PeriodDays   int                      `json:"periodDays"`
	Result       *models.SimulationResult `json:"result"`
	Display      displayCounts            `json:"display"`
}

// displayCounts carries the pre-rendered strings clients show verbatim, so
// every consumer abbreviates counts the same way.
type displayCounts struct {
	TotalRawCount         string `json:"totalRawCount"`
	TotalSimulatedCount   string `json:"totalSimulatedCount"`
	MonthlyRawCount       string `json:"monthlyRawCount"`
	MonthlySimulatedCount string `json:"monthlySimulatedCount"`
	CostReductionPercent  string `json:"costReductionPercent"`
}

type simulateHandler struct {
	datasetService    datasets.Service
	simulationService simulation.Service
	recordProducer    streams.SimulationRecordProducer

	now func() time.Time
}

func NewSimulateHandler(datasetService datasets.Service, simulationService simulation.Service, recordProducer streams.SimulationRecordProducer) AppHttpHandler {
	return &simulateHandler{
		datasetService:    datasetService,
		simulationService: simulationService,
		recordProducer:    recordProducer,
		now:               time.Now,
	}
}

// Handle processes POST /api/v1/simulations requests.
func (h *simulateHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req simulateRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}
	if err := validateSimulateRequest(&req); err != nil {
		return err
	}

	scope := models.Scope{
		Organization: req.Organization,
		Project:      req.Project,
		PeriodDays:   req.PeriodDays,
	}

	dataset, err := h.datasetService.GetDataset(r.Context(), scope)
	if err != nil {
		return err
	}

	expansionFactor := 1.0
	if req.ExpansionFactor != nil {
		expansionFactor = *req.ExpansionFactor
	}

	input := &simulation.Input{
		Dataset:         *dataset,
		Rules:           req.Rules,
		GlobalRate:      *req.GlobalSampleRate / 100,
		ExpansionFactor: expansionFactor,
		PeriodDays:      req.PeriodDays,
	}

	result, err := h.simulationService.Simulate(r.Context(), input)
	if err != nil {
		return err
	}

	record := &models.SimulationRecord{
		ID:              ulid.NewULID(),
		Organization:    scope.Organization,
		Project:         scope.Project,
		PeriodDays:      scope.PeriodDays,
		GlobalRate:      input.GlobalRate,
		ExpansionFactor: input.ExpansionFactor,
		Rules:           req.Rules,
		Result:          result,
		RecordedAt:      h.now().UTC(),
	}

	// Recording is best-effort: the caller already has the result, and a
	// snapshot that cannot be enqueued should not fail the simulation.
	if err := h.recordProducer.Produce(r.Context(), record); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).
			Str(loggers.FieldSimulationID, record.ID).
			Msg("failed to enqueue simulation record")
	}

	writeJSONResponse(w, r, http.StatusOK, simulateResponse{
		SimulationID: record.ID,
		Organization: scope.Organization,
		Project:      scope.Project,
		PeriodDays:   scope.PeriodDays,
		Result:       result,
		Display: displayCounts{
			TotalRawCount:         format.Count(float64(result.TotalRawCount)),
			TotalSimulatedCount:   format.Count(result.TotalSimulatedCount),
			MonthlyRawCount:       format.Count(result.MonthlyRawCount),
			MonthlySimulatedCount: format.Count(result.MonthlySimulatedCount),
			CostReductionPercent:  format.Percent(result.CostReductionPercent),
		},
	})
	return nil
}

func validateSimulateRequest(req *simulateRequest) error {
	if req.Organization == "" {
		return errRequestValidationFailed("organization is required")
	}
	if req.Project == "" {
		return errRequestValidationFailed("project is required")
	}
	if !allowedPeriods[req.PeriodDays] {
		return errRequestValidationFailed("periodDays must be one of 7, 30, 90")
	}
	if req.GlobalSampleRate == nil {
		return errRequestValidationFailed("globalSampleRate is required")
	}
	if *req.GlobalSampleRate < 0 || *req.GlobalSampleRate > 100 {
		return errRequestValidationFailed("globalSampleRate must be a percent between 0 and 100")
	}
	for i, rule := range req.Rules {
		if rule.Rate < 0 || rule.Rate > 100 {
			return errRequestValidationFailed(fmt.Sprintf("rules[%d].rate must be a percent between 0 and 100", i))
		}
		if !validOperator(rule.Operator) {
			return errRequestValidationFailed(fmt.Sprintf("rules[%d].operator must be one of equals, contains, starts_with, ends_with, regex", i))
		}
		if rule.Attribute != "" && !models.IsAttributeName(rule.Attribute) {
			return errRequestValidationFailed(fmt.Sprintf("rules[%d].attribute is not a grouping attribute: %q", i, rule.Attribute))
		}
	}
	return nil
}

// validOperator accepts the empty operator: rules authored in the UI start
// blank, and the engine falls back to contains for it anyway.
func validOperator(op models.Operator) bool {
	switch op {
	case "", models.OperatorEquals, models.OperatorContains, models.OperatorStartsWith, models.OperatorEndsWith, models.OperatorRegex:
		return true
	default:
		return false
	}
}
