package simulation

import (
	"testing"

	"spansim/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	group := models.SpanGroup{
		Attributes: models.Attributes{
			Operation:   "db.query",
			Description: "SELECT * FROM users WHERE id = ?",
			Status:      " ok ",
			StatusCode:  "200",
			Transaction: "/api/users/{id}",
			System:      "PostgreSQL",
		},
		Count: 500,
	}

	tests := []struct {
		name     string
		rule     models.Rule
		expected bool
	}{
		{
			name:     "equals exact",
			rule:     models.Rule{Attribute: "operation", Operator: models.OperatorEquals, Value: "db.query"},
			expected: true,
		},
		{
			name:     "equals is case-insensitive",
			rule:     models.Rule{Attribute: "operation", Operator: models.OperatorEquals, Value: "DB.Query"},
			expected: true,
		},
		{
			name:     "equals rejects substring",
			rule:     models.Rule{Attribute: "operation", Operator: models.OperatorEquals, Value: "db"},
			expected: false,
		},
		{
			name:     "equals trims the rule value",
			rule:     models.Rule{Attribute: "operation", Operator: models.OperatorEquals, Value: "  db.query  "},
			expected: true,
		},
		{
			name:     "contains substring case-insensitive",
			rule:     models.Rule{Attribute: "description", Operator: models.OperatorContains, Value: "from USERS"},
			expected: true,
		},
		{
			name:     "contains rejects absent substring",
			rule:     models.Rule{Attribute: "description", Operator: models.OperatorContains, Value: "DELETE"},
			expected: false,
		},
		{
			name:     "starts_with prefix case-insensitive",
			rule:     models.Rule{Attribute: "description", Operator: models.OperatorStartsWith, Value: "select"},
			expected: true,
		},
		{
			name:     "starts_with rejects inner match",
			rule:     models.Rule{Attribute: "description", Operator: models.OperatorStartsWith, Value: "FROM"},
			expected: false,
		},
		{
			name:     "ends_with suffix case-insensitive",
			rule:     models.Rule{Attribute: "transaction", Operator: models.OperatorEndsWith, Value: "{ID}"},
			expected: true,
		},
		{
			name:     "ends_with rejects prefix match",
			rule:     models.Rule{Attribute: "transaction", Operator: models.OperatorEndsWith, Value: "/api"},
			expected: false,
		},
		{
			name:     "regex compiles case-insensitive",
			rule:     models.Rule{Attribute: "system", Operator: models.OperatorRegex, Value: "^postgres"},
			expected: true,
		},
		{
			name:     "regex against raw record value",
			rule:     models.Rule{Attribute: "transaction", Operator: models.OperatorRegex, Value: `^/api/users/\{id\}$`},
			expected: true,
		},
		{
			name:     "invalid regex matches nothing",
			rule:     models.Rule{Attribute: "operation", Operator: models.OperatorRegex, Value: "db.(query"},
			expected: false,
		},
		{
			name:     "unknown operator falls back to contains",
			rule:     models.Rule{Attribute: "operation", Operator: models.Operator("fuzzy"), Value: "query"},
			expected: true,
		},
		{
			name:     "empty operator falls back to contains",
			rule:     models.Rule{Attribute: "status_code", Value: "20"},
			expected: true,
		},
		{
			name:     "empty rule value never matches",
			rule:     models.Rule{Attribute: "operation", Operator: models.OperatorContains, Value: ""},
			expected: false,
		},
		{
			name:     "whitespace-only rule value never matches",
			rule:     models.Rule{Attribute: "operation", Operator: models.OperatorContains, Value: "   "},
			expected: false,
		},
		{
			name:     "empty attribute never matches",
			rule:     models.Rule{Attribute: "", Operator: models.OperatorEquals, Value: "db.query"},
			expected: false,
		},
		{
			name:     "attribute outside the schema never matches",
			rule:     models.Rule{Attribute: "span.kind", Operator: models.OperatorEquals, Value: "client"},
			expected: false,
		},
		{
			name:     "empty record value never matches",
			rule:     models.Rule{Attribute: "environment", Operator: models.OperatorContains, Value: "prod"},
			expected: false,
		},
		{
			name:     "record value is not trimmed before equals",
			rule:     models.Rule{Attribute: "status", Operator: models.OperatorEquals, Value: "ok"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Matches(group, tt.rule))
		})
	}
}

func TestMatches_RecordValueKeepsWhitespace(t *testing.T) {
	t.Parallel()

	group := models.SpanGroup{
		Attributes: models.Attributes{Operation: " db.query "},
	}

	// equals compares against the stored value including its spaces
	equalsRule := models.Rule{Attribute: "operation", Operator: models.OperatorEquals, Value: "db.query"}
	assert.False(t, Matches(group, equalsRule))

	// contains still finds the trimmed rule value inside the stored one
	containsRule := models.Rule{Attribute: "operation", Operator: models.OperatorContains, Value: "db.query"}
	assert.True(t, Matches(group, containsRule))
}

func TestMatches_IgnoresDisabledFlag(t *testing.T) {
	t.Parallel()

	group := models.SpanGroup{Attributes: models.Attributes{Operation: "db.query"}}
	rule := models.Rule{Attribute: "operation", Operator: models.OperatorEquals, Value: "db.query", Disabled: true}

	assert.True(t, Matches(group, rule), "the predicate matches on content; the simulator filters disabled rules")
}

func TestPrepareRules_EqualsRulesFirst(t *testing.T) {
	t.Parallel()

	rules := []models.Rule{
		{ID: "r1", Attribute: "operation", Operator: models.OperatorContains, Value: "db"},
		{ID: "r2", Attribute: "operation", Operator: models.OperatorEquals, Value: "db.query"},
		{ID: "r3", Attribute: "operation", Operator: models.OperatorStartsWith, Value: "http"},
		{ID: "r4", Attribute: "operation", Operator: models.OperatorEquals, Value: "http.server"},
		{ID: "r5", Attribute: "operation", Operator: models.OperatorContains, Value: "cache", Disabled: true},
	}

	prepared, diagnostics := prepareRules(rules)
	assert.Empty(t, diagnostics)

	ids := make([]string, 0, len(prepared))
	for _, pr := range prepared {
		ids = append(ids, pr.rule.ID)
	}

	// equals rules keep their relative order ahead of the rest; disabled
	// rules are dropped entirely
	assert.Equal(t, []string{"r2", "r4", "r1", "r3"}, ids)
}

func TestPrepareRules_InvalidRegexBecomesDiagnostic(t *testing.T) {
	t.Parallel()

	rules := []models.Rule{
		{ID: "good", Attribute: "operation", Operator: models.OperatorRegex, Value: "^db\\."},
		{ID: "bad", Attribute: "operation", Operator: models.OperatorRegex, Value: "(unclosed"},
	}

	prepared, diagnostics := prepareRules(rules)

	assert.Len(t, prepared, 1)
	assert.Equal(t, "good", prepared[0].rule.ID)

	assert.Len(t, diagnostics, 1)
	assert.Equal(t, "bad", diagnostics[0].RuleID)
	assert.Contains(t, diagnostics[0].Message, "invalid regex")
}
