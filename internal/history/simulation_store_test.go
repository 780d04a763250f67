package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"spansim/internal/models"
	"spansim/internal/shared/filestorages"
	"spansim/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storedRecord() *models.SimulationRecord {
	return &models.SimulationRecord{
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
			Breakdown: []models.BreakdownRow{
				{
					Attributes:       models.Attributes{Operation: "db.query", System: "postgresql"},
					RawCount:         500,
					SimulatedCount:   50,
					SamplingRate:     0.1,
					MatchedRuleLabel: "operation:db.query",
				},
			},
		},
		RecordedAt: time.Date(2026, 2, 11, 9, 15, 0, 0, time.UTC),
	}
}

func TestNewSimulationStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	assert.NotNil(t, store)
}

func TestSimulationStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()
	record := storedRecord()

	expectedKey := "simulations/acme/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	expectedJSON, _ := json.Marshal(record)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			assert.False(t, opts.AllowOverwrite, "snapshots must never be overwritten")
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Put(ctx, record)
	assert.NoError(t, err)
}

func TestSimulationStore_Put_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Put(ctx, "simulations/acme/01ARZ3NDEKTSV4RRFFQ69G5FAV.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(ctx, storedRecord())
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrSimulationAlreadyExists)
}

func TestSimulationStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	err := store.Put(ctx, storedRecord())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put simulation record")
	assert.Contains(t, err.Error(), "disk full")
	assert.NotErrorIs(t, err, ErrSimulationAlreadyExists)
}

func TestSimulationStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()
	record := storedRecord()
	jsonData, _ := json.Marshal(record)

	mockFileStorage.EXPECT().
		Get(ctx, "simulations/acme/01ARZ3NDEKTSV4RRFFQ69G5FAV.json").
		Return(io.NopCloser(bytes.NewReader(jsonData)), nil)

	got, err := store.Get(ctx, "acme", "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.Organization, got.Organization)
	assert.Equal(t, record.GlobalRate, got.GlobalRate)
	require.NotNil(t, got.Result)
	assert.Equal(t, record.Result.TotalRawCount, got.Result.TotalRawCount)
	assert.Len(t, got.Result.Breakdown, 1)
	assert.True(t, record.RecordedAt.Equal(got.RecordedAt))
}

func TestSimulationStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Get(ctx, "simulations/acme/missing.json").
		Return(nil, filestorages.ErrFileNotFound)

	got, err := store.Get(ctx, "acme", "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrSimulationNotFound)
}

func TestSimulationStore_Get_CorruptPayload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Get(ctx, gomock.Any()).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"id": `))), nil)

	got, err := store.Get(ctx, "acme", "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal simulation record")
}

func TestSimulationStore_ListIDs(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		List(ctx, "simulations/acme").
		Return([]string{
			"simulations/acme/01ARZ3NDEKTSV4RRFFQ69G5FAV.json",
			"simulations/acme/01BX5ZZKBKACTAV9WEVGEMMVRZ.json",
		}, nil)

	ids, err := store.ListIDs(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV", "01BX5ZZKBKACTAV9WEVGEMMVRZ"}, ids)
}

func TestSimulationStore_ListIDs_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		List(ctx, "simulations/nobody").
		Return([]string{}, nil)

	ids, err := store.ListIDs(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSimulationStore_ListIDs_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSimulationStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		List(ctx, "simulations/acme").
		Return(nil, errors.New("permission denied"))

	ids, err := store.ListIDs(ctx, "acme")
	assert.Nil(t, ids)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list simulation records")
}
