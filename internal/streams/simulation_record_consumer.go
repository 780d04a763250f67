package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"spansim/internal/events"
	"spansim/internal/history"
	"spansim/internal/shared/loggers"
	"spansim/internal/shared/metrics"
	"spansim/internal/shared/svcerrors"
	"spansim/internal/shared/ulid"
)

//go:generate mockgen -source=simulation_record_consumer.go -destination=./mocks/simulation_record_consumer_mock.go -package=mocks
type SimulationRecordConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type simulationRecordConsumer struct {
	queue            *PartitionedQueue[events.SimulationRecordedEvent]
	recordingService history.RecordingService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewSimulationRecordConsumer(queue *PartitionedQueue[events.SimulationRecordedEvent], recordingService history.RecordingService, logger loggers.Logger) SimulationRecordConsumer {
	return &simulationRecordConsumer{
		queue:            queue,
		recordingService: recordingService,
		stopCh:           make(chan struct{}),
		logger:           logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition is a single-writer lane for the organizations the producer
// routes to it.
func (consumer *simulationRecordConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop signals the workers, waits for them to drain their partitions and
// exit. Best called during app shutdown, after the HTTP server has stopped
// accepting requests, so every accepted simulation gets persisted.
func (consumer *simulationRecordConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *simulationRecordConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.SimulationRecordedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			consumer.drainPartition(ctx, partitionIndex, ch)
			return
		case event := <-ch:
			consumer.handleEvent(ctx, partitionIndex, event)
		}
	}
}

// drainPartition persists events still buffered when the stop signal fired.
// A cancelled context aborts the drain; snapshots buffered at that point are
// lost.
func (consumer *simulationRecordConsumer) drainPartition(ctx context.Context, partitionIndex int, ch <-chan events.SimulationRecordedEvent) {
	for {
		if ctx.Err() != nil {
			return
		}
		select {
		case event := <-ch:
			consumer.handleEvent(ctx, partitionIndex, event)
		default:
			return
		}
	}
}

// handleEvent records one snapshot with panic recovery, so a poisoned event
// cannot take the partition worker down with it.
func (consumer *simulationRecordConsumer) handleEvent(ctx context.Context, partitionIndex int, event events.SimulationRecordedEvent) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricSimulationRecordConsumedTotal.WithLabelValues(streamSimulationRecord, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	if svcErr := consumer.recordingService.Record(ctx, &event); svcErr != nil {
		metricSimulationRecordConsumedTotal.WithLabelValues(streamSimulationRecord, svcErr.Code).Inc()
		return
	}
	metricSimulationRecordConsumedTotal.WithLabelValues(streamSimulationRecord, metrics.ValueNoError).Inc()
}
