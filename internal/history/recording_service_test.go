package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"spansim/internal/events"
	"spansim/internal/history"
	historymocks "spansim/internal/history/mocks"
	"spansim/internal/models"
	"spansim/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func recordedEvent() *events.SimulationRecordedEvent {
	return &events.SimulationRecordedEvent{
		ID:              "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Organization:    "acme",
		Project:         "checkout",
		PeriodDays:      30,
		GlobalRate:      0.1,
		ExpansionFactor: 1,
		Rules: []models.Rule{
			{ID: "rule-1", Attribute: "operation", Operator: models.OperatorEquals, Value: "db.query", Rate: 10},
		},
		Result: &models.SimulationResult{
			TotalRawCount:         1500,
			TotalSimulatedCount:   150,
			CostReductionPercent:  90,
			MonthlyRawCount:       1500,
			MonthlySimulatedCount: 150,
		},
		RecordedAt: time.Date(2026, 2, 11, 9, 15, 0, 0, time.UTC),
	}
}

func TestRecord_PersistsSnapshot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	ctx := context.Background()
	event := recordedEvent()

	store.EXPECT().
		Put(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.SimulationRecord) error {
			assert.Equal(t, event.ID, record.ID)
			assert.Equal(t, event.Organization, record.Organization)
			assert.Equal(t, event.Project, record.Project)
			assert.Equal(t, event.PeriodDays, record.PeriodDays)
			assert.Equal(t, event.GlobalRate, record.GlobalRate)
			assert.Equal(t, event.ExpansionFactor, record.ExpansionFactor)
			assert.Equal(t, event.Rules, record.Rules)
			assert.Equal(t, event.Result, record.Result)
			assert.True(t, event.RecordedAt.Equal(record.RecordedAt))
			return nil
		})

	svcErr := service.Record(ctx, event)
	assert.Nil(t, svcErr)
}

func TestRecord_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event *events.SimulationRecordedEvent
	}{
		{
			name:  "nil event",
			event: nil,
		},
		{
			name: "missing id",
			event: func() *events.SimulationRecordedEvent {
				e := recordedEvent()
				e.ID = ""
				return e
			}(),
		},
		{
			name: "missing organization",
			event: func() *events.SimulationRecordedEvent {
				e := recordedEvent()
				e.Organization = ""
				return e
			}(),
		},
		{
			name: "missing result",
			event: func() *events.SimulationRecordedEvent {
				e := recordedEvent()
				e.Result = nil
				return e
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := historymocks.NewMockStore(ctrl)
			service := history.NewRecordingService(store)

			svcErr := service.Record(context.Background(), tt.event)
			require.NotNil(t, svcErr)
			assert.Equal(t, "HIST_1000", svcErr.Code)
			assert.Equal(t, 400, svcErr.HttpStatusCode)
		})
	}
}

func TestRecord_DuplicateSnapshot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	ctx := context.Background()

	store.EXPECT().
		Put(ctx, gomock.Any()).
		Return(history.ErrSimulationAlreadyExists)

	svcErr := service.Record(ctx, recordedEvent())
	require.NotNil(t, svcErr)
	assert.Equal(t, "HIST_1002", svcErr.Code)
	assert.Equal(t, 409, svcErr.HttpStatusCode)
}

func TestRecord_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	ctx := context.Background()

	store.EXPECT().
		Put(ctx, gomock.Any()).
		Return(errors.New("disk full"))

	svcErr := service.Record(ctx, recordedEvent())
	require.NotNil(t, svcErr)
	assert.Equal(t, "HIST_9000", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
}

func TestGetSimulation_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	ctx := context.Background()
	record := recordedEvent().Record()

	store.EXPECT().
		Get(ctx, "acme", "01ARZ3NDEKTSV4RRFFQ69G5FAV").
		Return(record, nil)

	got, err := service.GetSimulation(ctx, "acme", "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestGetSimulation_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	ctx := context.Background()

	store.EXPECT().
		Get(ctx, "acme", "missing").
		Return(nil, history.ErrSimulationNotFound)

	got, err := service.GetSimulation(ctx, "acme", "missing")
	assert.Nil(t, got)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "HIST_1001", svcErr.Code)
	assert.Equal(t, 404, svcErr.HttpStatusCode)
}

func TestGetSimulation_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		organization string
		simulationID string
	}{
		{name: "empty organization", organization: "", simulationID: "01ARZ3NDEKTSV4RRFFQ69G5FAV"},
		{name: "blank organization", organization: "   ", simulationID: "01ARZ3NDEKTSV4RRFFQ69G5FAV"},
		{name: "empty simulation id", organization: "acme", simulationID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := historymocks.NewMockStore(ctrl)
			service := history.NewRecordingService(store)

			got, err := service.GetSimulation(context.Background(), tt.organization, tt.simulationID)
			assert.Nil(t, got)
			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "HIST_1000", svcErr.Code)
		})
	}
}

func TestGetSimulation_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	ctx := context.Background()

	store.EXPECT().
		Get(ctx, "acme", "01ARZ3NDEKTSV4RRFFQ69G5FAV").
		Return(nil, errors.New("read failed"))

	got, err := service.GetSimulation(ctx, "acme", "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.Nil(t, got)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "HIST_9000", svcErr.Code)
}

func TestListSimulationIDs_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	ctx := context.Background()
	ids := []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV", "01BX5ZZKBKACTAV9WEVGEMMVRZ"}

	store.EXPECT().
		ListIDs(ctx, "acme").
		Return(ids, nil)

	got, err := service.ListSimulationIDs(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestListSimulationIDs_EmptyOrganization(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	got, err := service.ListSimulationIDs(context.Background(), "")
	assert.Nil(t, got)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "HIST_1000", svcErr.Code)
}

func TestListSimulationIDs_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := historymocks.NewMockStore(ctrl)
	service := history.NewRecordingService(store)

	ctx := context.Background()

	store.EXPECT().
		ListIDs(ctx, "acme").
		Return(nil, errors.New("scan failed"))

	got, err := service.ListSimulationIDs(ctx, "acme")
	assert.Nil(t, got)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "HIST_9000", svcErr.Code)
}
