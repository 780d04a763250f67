package models

// Operator selects how a rule value is compared against a group's attribute
// value. Comparisons are case-insensitive for every operator.
type Operator string

const (
	OperatorEquals     Operator = "equals"
	OperatorContains   Operator = "contains"
	OperatorStartsWith Operator = "starts_with"
	OperatorEndsWith   Operator = "ends_with"
	OperatorRegex      Operator = "regex"
)

// GlobalRuleLabel marks breakdown rows that were sampled at the global
// default rate because no rule matched them.
const GlobalRuleLabel = "global"

// Rule is one ordered sampling rule: spans in groups whose attribute matches
// the value keep Rate percent of their volume. Earlier rules win, except that
// equals rules always take precedence over non-equals rules. A rule with an
// empty attribute or value is inert; Disabled additionally parks a rule
// without deleting it from a saved set.
type Rule struct {
	ID        string   `json:"id"`
	Attribute string   `json:"attribute"`
	Operator  Operator `json:"operator"`
	Value     string   `json:"value"`
	Rate      float64  `json:"rate"` // percent, 0..100
	Disabled  bool     `json:"disabled,omitempty"`
}

// Label names the rule in breakdown rows, in "attribute:value" form with the
// value exactly as the caller wrote it.
func (r Rule) Label() string {
	return r.Attribute + ":" + r.Value
}
