package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_TotalCount(t *testing.T) {
	t.Parallel()

	declared := int64(4200)

	tests := []struct {
		name     string
		dataset  Dataset
		expected int64
	}{
		{
			name:     "empty dataset",
			dataset:  Dataset{},
			expected: 0,
		},
		{
			name: "sums groups when no declared total",
			dataset: Dataset{
				Groups: []SpanGroup{
					{Attributes: Attributes{Operation: "http.server"}, Count: 1000},
					{Attributes: Attributes{Operation: "db.query"}, Count: 500},
				},
			},
			expected: 1500,
		},
		{
			name: "declared total wins over group sum",
			dataset: Dataset{
				Groups: []SpanGroup{
					{Attributes: Attributes{Operation: "http.server"}, Count: 1000},
				},
				DeclaredTotal: &declared,
			},
			expected: 4200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.dataset.TotalCount())
		})
	}
}

func TestRule_Label(t *testing.T) {
	t.Parallel()

	rule := Rule{Attribute: "operation", Operator: OperatorEquals, Value: " db.query "}
	assert.Equal(t, "operation: db.query ", rule.Label(), "label keeps the value verbatim")
}
