package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	datasetmocks "spansim/internal/datasets/mocks"
	"spansim/internal/models"
	"spansim/internal/simulation"
	simulationmocks "spansim/internal/simulation/mocks"
	streammocks "spansim/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSimulateHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDatasets := datasetmocks.NewMockService(ctrl)
	mockSimulation := simulationmocks.NewMockService(ctrl)
	mockProducer := streammocks.NewMockSimulationRecordProducer(ctrl)
	handler := NewSimulateHandler(mockDatasets, mockSimulation, mockProducer)

	scope := models.Scope{Organization: "acme", Project: "checkout", PeriodDays: 7}
	dataset := &models.Dataset{
		Groups: []models.SpanGroup{
			{Attributes: models.Attributes{Operation: "http.server"}, Count: 1000},
			{Attributes: models.Attributes{Operation: "db.query"}, Count: 500},
		},
	}
	result := &models.SimulationResult{
		TotalRawCount:        1500,
		TotalSimulatedCount:  1050,
		CostReductionPercent: 30,
	}

	mockDatasets.EXPECT().
		GetDataset(gomock.Any(), scope).
		Return(dataset, nil)

	mockSimulation.EXPECT().
		Simulate(gomock.Any(), &simulation.Input{
			Dataset:         *dataset,
			Rules:           []models.Rule{{ID: "r1", Attribute: "operation", Operator: models.OperatorEquals, Value: "db.query", Rate: 10}},
			GlobalRate:      1.0,
			ExpansionFactor: 1.0,
			PeriodDays:      7,
		}).
		Return(result, nil)

	var produced *models.SimulationRecord
	mockProducer.EXPECT().
		Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SimulationRecord) error {
			produced = record
			return nil
		})

	body := `{
		"organization": "acme",
		"project": "checkout",
		"periodDays": 7,
		"rules": [{"id": "r1", "attribute": "operation", "operator": "equals", "value": "db.query", "rate": 10}],
		"globalSampleRate": 100
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", bytes.NewReader([]byte(body)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp simulateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SimulationID)
	assert.Equal(t, "acme", resp.Organization)
	assert.Equal(t, "checkout", resp.Project)
	assert.Equal(t, 7, resp.PeriodDays)
	assert.Equal(t, result.TotalRawCount, resp.Result.TotalRawCount)
	assert.Equal(t, "1.50K", resp.Display.TotalRawCount)
	assert.Equal(t, "1.05K", resp.Display.TotalSimulatedCount)
	assert.Equal(t, "30.0%", resp.Display.CostReductionPercent)

	require.NotNil(t, produced)
	assert.Equal(t, resp.SimulationID, produced.ID)
	assert.Equal(t, "acme", produced.Organization)
	assert.Equal(t, 1.0, produced.GlobalRate)
	assert.False(t, produced.RecordedAt.IsZero())
}

func TestSimulateHandler_Handle_ProducerFailureStillSucceeds(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDatasets := datasetmocks.NewMockService(ctrl)
	mockSimulation := simulationmocks.NewMockService(ctrl)
	mockProducer := streammocks.NewMockSimulationRecordProducer(ctrl)
	handler := NewSimulateHandler(mockDatasets, mockSimulation, mockProducer)

	mockDatasets.EXPECT().
		GetDataset(gomock.Any(), gomock.Any()).
		Return(&models.Dataset{}, nil)
	mockSimulation.EXPECT().
		Simulate(gomock.Any(), gomock.Any()).
		Return(&models.SimulationResult{}, nil)
	mockProducer.EXPECT().
		Produce(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	body := `{"organization": "acme", "project": "checkout", "periodDays": 30, "globalSampleRate": 10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", bytes.NewReader([]byte(body)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSimulateHandler_Handle_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing organization",
			body: `{"project": "checkout", "periodDays": 7, "globalSampleRate": 100}`,
		},
		{
			name: "missing project",
			body: `{"organization": "acme", "periodDays": 7, "globalSampleRate": 100}`,
		},
		{
			name: "unsupported period",
			body: `{"organization": "acme", "project": "checkout", "periodDays": 14, "globalSampleRate": 100}`,
		},
		{
			name: "missing global sample rate",
			body: `{"organization": "acme", "project": "checkout", "periodDays": 7}`,
		},
		{
			name: "global sample rate above 100",
			body: `{"organization": "acme", "project": "checkout", "periodDays": 7, "globalSampleRate": 120}`,
		},
		{
			name: "rule rate out of range",
			body: `{"organization": "acme", "project": "checkout", "periodDays": 7, "globalSampleRate": 100,
				"rules": [{"attribute": "operation", "operator": "equals", "value": "x", "rate": 150}]}`,
		},
		{
			name: "unknown rule operator",
			body: `{"organization": "acme", "project": "checkout", "periodDays": 7, "globalSampleRate": 100,
				"rules": [{"attribute": "operation", "operator": "matches", "value": "x", "rate": 10}]}`,
		},
		{
			name: "unknown rule attribute",
			body: `{"organization": "acme", "project": "checkout", "periodDays": 7, "globalSampleRate": 100,
				"rules": [{"attribute": "nope", "operator": "equals", "value": "x", "rate": 10}]}`,
		},
		{
			name: "unknown request field",
			body: `{"organization": "acme", "project": "checkout", "periodDays": 7, "globalSampleRate": 100, "globalRate": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No service call is expected for a request that fails validation.
			handler := NewSimulateHandler(
				datasetmocks.NewMockService(ctrl),
				simulationmocks.NewMockService(ctrl),
				streammocks.NewMockSimulationRecordProducer(ctrl),
			)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", bytes.NewReader([]byte(tt.body)))
			req.Header.Set(headerContentType, "application/json")
			rr := httptest.NewRecorder()

			err := handler.Handle(rr, req)

			require.Error(t, err)
		})
	}
}

func TestSimulateHandler_Handle_UnsupportedContentType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewSimulateHandler(
		datasetmocks.NewMockService(ctrl),
		simulationmocks.NewMockService(ctrl),
		streammocks.NewMockSimulationRecordProducer(ctrl),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(headerContentType, "text/plain")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
}

func TestSimulateHandler_Handle_DatasetFetchError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDatasets := datasetmocks.NewMockService(ctrl)
	handler := NewSimulateHandler(
		mockDatasets,
		simulationmocks.NewMockService(ctrl),
		streammocks.NewMockSimulationRecordProducer(ctrl),
	)

	mockDatasets.EXPECT().
		GetDataset(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	body := `{"organization": "acme", "project": "checkout", "periodDays": 7, "globalSampleRate": 100}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", bytes.NewReader([]byte(body)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
}
