package history

import (
	"context"
	"errors"
	"strings"

	"spansim/internal/events"
	"spansim/internal/models"
	"spansim/internal/shared/loggers"
	"spansim/internal/shared/metrics"
	"spansim/internal/shared/svcerrors"
)

const (
	opGet  = "get"
	opList = "list"
)

// RecordingService writes simulation snapshots arriving from the record
// stream and reads them back for the history API. Record runs on queue
// consumer workers; the read methods serve HTTP handlers.
//
//go:generate mockgen -source=recording_service.go -destination=./mocks/recording_service_mock.go -package=mocks
type RecordingService interface {
	Record(ctx context.Context, event *events.SimulationRecordedEvent) *svcerrors.ServiceError
	GetSimulation(ctx context.Context, organization, simulationID string) (*models.SimulationRecord, error)
	ListSimulationIDs(ctx context.Context, organization string) ([]string, error)
}

type recordingService struct {
	store Store
}

func NewRecordingService(store Store) RecordingService {
	return &recordingService{store: store}
}

func (s *recordingService) Record(ctx context.Context, event *events.SimulationRecordedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)

	if svcErr := s.validateEvent(event); svcErr != nil {
		metricSnapshotRecordedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	logger.Debug().
		Str(loggers.FieldOrganization, event.Organization).
		Str(loggers.FieldSimulationID, event.ID).
		Msg("recording simulation snapshot")

	if err := s.store.Put(ctx, event.Record()); err != nil {
		var svcErr *svcerrors.ServiceError
		if errors.Is(err, ErrSimulationAlreadyExists) {
			svcErr = errSimulationAlreadyExists(event.ID, err)
		} else {
			svcErr = errInternalStoreFailed(err)
		}
		metricSnapshotRecordedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	metricSnapshotRecordedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}

func (s *recordingService) GetSimulation(ctx context.Context, organization, simulationID string) (*models.SimulationRecord, error) {
	if strings.TrimSpace(organization) == "" {
		svcErr := errValidationFailed("organization is required")
		metricSnapshotReadsTotal.WithLabelValues(opGet, svcErr.Code).Inc()
		return nil, svcErr
	}
	if strings.TrimSpace(simulationID) == "" {
		svcErr := errValidationFailed("simulationID is required")
		metricSnapshotReadsTotal.WithLabelValues(opGet, svcErr.Code).Inc()
		return nil, svcErr
	}

	record, err := s.store.Get(ctx, organization, simulationID)
	if err != nil {
		var svcErr *svcerrors.ServiceError
		if errors.Is(err, ErrSimulationNotFound) {
			svcErr = errSimulationNotFound(simulationID, err)
		} else {
			svcErr = errInternalStoreFailed(err)
		}
		metricSnapshotReadsTotal.WithLabelValues(opGet, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricSnapshotReadsTotal.WithLabelValues(opGet, metrics.ValueNoError).Inc()
	return record, nil
}

func (s *recordingService) ListSimulationIDs(ctx context.Context, organization string) ([]string, error) {
	if strings.TrimSpace(organization) == "" {
		svcErr := errValidationFailed("organization is required")
		metricSnapshotReadsTotal.WithLabelValues(opList, svcErr.Code).Inc()
		return nil, svcErr
	}

	ids, err := s.store.ListIDs(ctx, organization)
	if err != nil {
		svcErr := errInternalStoreFailed(err)
		metricSnapshotReadsTotal.WithLabelValues(opList, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricSnapshotReadsTotal.WithLabelValues(opList, metrics.ValueNoError).Inc()
	return ids, nil
}

func (s *recordingService) validateEvent(event *events.SimulationRecordedEvent) *svcerrors.ServiceError {
	if event == nil {
		return errValidationFailed("event is required")
	}
	if event.ID == "" {
		return errValidationFailed("event id is required")
	}
	if event.Organization == "" {
		return errValidationFailed("event organization is required")
	}
	if event.Result == nil {
		return errValidationFailed("event result is required")
	}
	return nil
}
