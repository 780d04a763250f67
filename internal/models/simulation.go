package models

// SimulationResult is the outcome of running a rule configuration over one
// dataset snapshot: per-group sampled volumes plus window and monthly totals.
// Counts on the raw side are exact integers from the snapshot; everything on
// the simulated side is fractional because rates multiply.
//
// Example JSON:
//
//	{
//	  "totalRawCount": 1500,
//	  "totalSimulatedCount": 1050,
//	  "costReductionPercent": 30,
//	  "monthlyRawCount": 6428.57,
//	  "monthlySimulatedCount": 4500,
//	  "breakdown": [
//	    {
//	      "operation": "http.server",
//	      "rawCount": 1000,
//	      "simulatedCount": 1000,
//	      "samplingRate": 1,
//	      "matchedRuleLabel": "global"
//	    },
//	    {
//	      "operation": "db.query",
//	      "rawCount": 500,
//	      "simulatedCount": 50,
//	      "samplingRate": 0.1,
//	      "matchedRuleLabel": "operation:db.query"
//	    }
//	  ],
//	  "diagnostics": [
//	    {"ruleId": "rule-3", "message": "invalid regex pattern: ..."}
//	  ]
//	}
type SimulationResult struct {
	TotalRawCount         int64          `json:"totalRawCount"`
	TotalSimulatedCount   float64        `json:"totalSimulatedCount"`
	CostReductionPercent  float64        `json:"costReductionPercent"`
	MonthlyRawCount       float64        `json:"monthlyRawCount"`
	MonthlySimulatedCount float64        `json:"monthlySimulatedCount"`
	Breakdown             []BreakdownRow `json:"breakdown"`
	Diagnostics           []Diagnostic   `json:"diagnostics,omitempty"`
}

// BreakdownRow is the simulated outcome for a single span group. SamplingRate
// is the fraction that was actually applied (rule rate over 100, or the
// global rate), and MatchedRuleLabel names the winning rule or GlobalRuleLabel.
type BreakdownRow struct {
	Attributes
	RawCount         int64   `json:"rawCount"`
	SimulatedCount   float64 `json:"simulatedCount"`
	SamplingRate     float64 `json:"samplingRate"`
	MatchedRuleLabel string  `json:"matchedRuleLabel"`
}

// Diagnostic reports a rule that was skipped during simulation, such as a
// regex rule whose pattern does not compile. Skipped rules match nothing;
// the simulation itself still succeeds.
type Diagnostic struct {
	RuleID  string `json:"ruleId"`
	Message string `json:"message"`
}
