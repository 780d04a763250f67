package simulation

import (
	"regexp"
	"strings"

	"spansim/internal/models"
)

// preparedRule carries a rule with its comparison value normalized once and
// its regex compiled once, so matching stays cheap across many groups.
type preparedRule struct {
	rule    models.Rule
	value   string // trimmed; lowercased for the text operators
	pattern *regexp.Regexp
}

// prepareRule trims the rule value, lowercases it for the text operators,
// and compiles regex patterns case-insensitively. ok is false only when a
// regex pattern does not compile; such a rule matches nothing.
func prepareRule(rule models.Rule) (preparedRule, bool) {
	value := strings.TrimSpace(rule.Value)
	pr := preparedRule{rule: rule, value: value}

	if rule.Operator == models.OperatorRegex {
		if value == "" {
			return pr, true
		}
		pattern, err := regexp.Compile("(?i)" + value)
		if err != nil {
			return pr, false
		}
		pr.pattern = pattern
		return pr, true
	}

	pr.value = strings.ToLower(value)
	return pr, true
}

// Matches reports whether rule matches the group's attributes. The simulator
// and ad-hoc callers share this single predicate.
//
// A rule with an empty attribute, an empty (post-trim) value, an attribute
// outside the grouping schema, or an invalid regex pattern matches nothing.
// Only the rule value is trimmed; the group's value is compared as stored.
// Every operator compares case-insensitively, and an unknown operator
// behaves like contains. Matches ignores rule.Disabled: filtering disabled
// rules is the simulator's job.
func Matches(group models.SpanGroup, rule models.Rule) bool {
	pr, ok := prepareRule(rule)
	if !ok {
		return false
	}
	return pr.matches(group.Attributes)
}

func (pr preparedRule) matches(attrs models.Attributes) bool {
	if pr.rule.Attribute == "" || pr.value == "" {
		return false
	}

	record, ok := attrs.Value(pr.rule.Attribute)
	if !ok || record == "" {
		return false
	}

	switch pr.rule.Operator {
	case models.OperatorRegex:
		return pr.pattern.MatchString(record)
	case models.OperatorEquals:
		return strings.ToLower(record) == pr.value
	case models.OperatorStartsWith:
		return strings.HasPrefix(strings.ToLower(record), pr.value)
	case models.OperatorEndsWith:
		return strings.HasSuffix(strings.ToLower(record), pr.value)
	default:
		// contains, and the fallback for unknown operators
		return strings.Contains(strings.ToLower(record), pr.value)
	}
}

// prepareRules readies the enabled rules for matching in precedence order:
// equals rules ahead of everything else, original order preserved inside
// each class. Regex rules whose pattern does not compile are dropped and
// reported as diagnostics instead of failing the simulation.
func prepareRules(rules []models.Rule) ([]preparedRule, []models.Diagnostic) {
	prepared := make([]preparedRule, 0, len(rules))
	var diagnostics []models.Diagnostic

	appendRule := func(rule models.Rule) {
		pr, ok := prepareRule(rule)
		if !ok {
			diagnostics = append(diagnostics, models.Diagnostic{
				RuleID:  rule.ID,
				Message: "invalid regex pattern, rule skipped: " + rule.Value,
			})
			return
		}
		prepared = append(prepared, pr)
	}

	for _, rule := range rules {
		if !rule.Disabled && rule.Operator == models.OperatorEquals {
			appendRule(rule)
		}
	}
	for _, rule := range rules {
		if !rule.Disabled && rule.Operator != models.OperatorEquals {
			appendRule(rule)
		}
	}

	return prepared, diagnostics
}
