package events

import (
	"time"

	"spansim/internal/models"
)

// SimulationRecordedEvent carries one finished simulation run from the HTTP
// layer to the history recorder. The producer emits exactly one event per
// run; the consumer persists the snapshot keyed by organization and
// simulation ID, after which the run is readable through the history API.
//
// Events for the same organization land on the same queue partition, so
// snapshots for one organization are written strictly in the order their
// simulations completed.
//
// Example JSON:
//
//	{
//	  "id": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "organization": "acme",
//	  "project": "checkout",
//	  "periodDays": 30,
//	  "globalRate": 0.1,
//	  "expansionFactor": 1,
//	  "rules": [
//	    {"id": "rule-1", "attribute": "operation", "operator": "equals", "value": "db.query", "rate": 100}
//	  ],
//	  "result": {
//	    "totalRawCount": 1500,
//	    "totalSimulatedCount": 600,
//	    "costReductionPercent": 60,
//	    "monthlyRawCount": 1500,
//	    "monthlySimulatedCount": 600,
//	    "breakdown": [
//	      {"operation": "db.query", "rawCount": 500, "simulatedCount": 500, "samplingRate": 1, "matchedRuleLabel": "operation:db.query"},
//	      {"operation": "http.server", "rawCount": 1000, "simulatedCount": 100, "samplingRate": 0.1, "matchedRuleLabel": "global"}
//	    ]
//	  },
//	  "recordedAt": "2026-02-11T09:15:00Z"
//	}
//
// In this example:
//   - The run simulated acme/checkout over a 30-day window
//   - One rule kept all db.query spans while everything else fell back to the
//     10% global rate
//   - The snapshot becomes readable at simulation ID "01ARZ3NDEKTSV4RRFFQ69G5FAV"
type SimulationRecordedEvent struct {
	ID              string                   `json:"id"`
	Organization    string                   `json:"organization"`
	Project         string                   `json:"project"`
	PeriodDays      int                      `json:"periodDays"`
	GlobalRate      float64                  `json:"globalRate"`
	ExpansionFactor float64                  `json:"expansionFactor"`
	Rules           []models.Rule            `json:"rules"`
	Result          *models.SimulationResult `json:"result"`
	RecordedAt      time.Time                `json:"recordedAt"`
}

// Record converts the event into the snapshot shape the history store
// persists. The two types share fields today but evolve independently.
func (e *SimulationRecordedEvent) Record() *models.SimulationRecord {
	return &models.SimulationRecord{
		ID:              e.ID,
		Organization:    e.Organization,
		Project:         e.Project,
		PeriodDays:      e.PeriodDays,
		GlobalRate:      e.GlobalRate,
		ExpansionFactor: e.ExpansionFactor,
		Rules:           e.Rules,
		Result:          e.Result,
		RecordedAt:      e.RecordedAt,
	}
}
