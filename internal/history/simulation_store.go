package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"spansim/internal/models"
	"spansim/internal/shared/filestorages"
)

var (
	ErrSimulationNotFound      = errors.New("simulation not found")
	ErrSimulationAlreadyExists = errors.New("simulation already exists")
)

// Store persists simulation snapshots as one JSON file per run, keyed by
// organization and simulation ID. Snapshots are write-once.
//
//go:generate mockgen -source=simulation_store.go -destination=./mocks/simulation_store_mock.go -package=mocks
type Store interface {
	Put(ctx context.Context, record *models.SimulationRecord) error
	Get(ctx context.Context, organization, simulationID string) (*models.SimulationRecord, error)
	// ListIDs returns the simulation IDs recorded for an organization, sorted
	// lexicographically. IDs are ULIDs, so the order is oldest first.
	ListIDs(ctx context.Context, organization string) ([]string, error)
}

type simulationStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSimulationStore(fileStorage filestorages.FileStorage) Store {
	return &simulationStore{fileStorage: fileStorage, dir: "simulations"}
}

func (s *simulationStore) Put(ctx context.Context, record *models.SimulationRecord) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal simulation record: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	key := s.getKey(record.Organization, record.ID)
	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrSimulationAlreadyExists
		}
		return fmt.Errorf("failed to put simulation record: %w", err)
	}
	return nil
}

func (s *simulationStore) Get(ctx context.Context, organization, simulationID string) (*models.SimulationRecord, error) {
	key := s.getKey(organization, simulationID)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSimulationNotFound
		}
		return nil, fmt.Errorf("failed to get simulation record: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation record: %w", err)
	}
	var record models.SimulationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation record: %w", err)
	}
	return &record, nil
}

func (s *simulationStore) ListIDs(ctx context.Context, organization string) ([]string, error) {
	prefix := fmt.Sprintf("%s/%s", s.dir, organization)
	keys, err := s.fileStorage.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation records: %w", err)
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimSuffix(path.Base(key), ".json"))
	}
	return ids, nil
}

func (s *simulationStore) getKey(organization, simulationID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, organization, simulationID)
}
