package models

import "time"

// SimulationRecord is a persisted snapshot of one simulation run: the scope
// and parameters the caller requested plus the full computed result. Records
// are immutable once written, so a run can be revisited after the underlying
// span counts have moved on.
type SimulationRecord struct {
	ID              string            `json:"id"`
	Organization    string            `json:"organization"`
	Project         string            `json:"project"`
	PeriodDays      int               `json:"periodDays"`
	GlobalRate      float64           `json:"globalRate"`
	ExpansionFactor float64           `json:"expansionFactor"`
	Rules           []Rule            `json:"rules"`
	Result          *SimulationResult `json:"result"`
	RecordedAt      time.Time         `json:"recordedAt"`
}
