package streams

import (
	"context"

	"spansim/internal/events"
	"spansim/internal/models"
)

// SimulationRecordProducer publishes one SimulationRecordedEvent per finished
// simulation run onto the partitioned queue.
//
// The partition key is the organization, so all snapshots of one organization
// travel through the same partition and are persisted by a single worker in
// completion order. Different organizations spread across partitions and are
// persisted in parallel.
//
//go:generate mockgen -source=simulation_record_producer.go -destination=./mocks/simulation_record_producer_mock.go -package=mocks
type SimulationRecordProducer interface {
	Produce(ctx context.Context, record *models.SimulationRecord) error
}

type simulationRecordProducer struct {
	queue *PartitionedQueue[events.SimulationRecordedEvent]
}

func NewSimulationRecordProducer(queue *PartitionedQueue[events.SimulationRecordedEvent]) SimulationRecordProducer {
	return &simulationRecordProducer{queue: queue}
}

func (producer *simulationRecordProducer) Produce(ctx context.Context, record *models.SimulationRecord) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	event := events.SimulationRecordedEvent{
		ID:              record.ID,
		Organization:    record.Organization,
		Project:         record.Project,
		PeriodDays:      record.PeriodDays,
		GlobalRate:      record.GlobalRate,
		ExpansionFactor: record.ExpansionFactor,
		Rules:           record.Rules,
		Result:          record.Result,
		RecordedAt:      record.RecordedAt,
	}

	// Partition by organization (single-writer guarantee per organization).
	producer.queue.Publish(event.Organization, event)
	metricSimulationRecordProducedTotal.WithLabelValues(streamSimulationRecord).Inc()
	return nil
}
