package history

import (
	"fmt"

	"spansim/internal/shared/svcerrors"
)

const (
	codeValidationFailed        = "HIST_1000"
	codeSimulationNotFound      = "HIST_1001"
	codeSimulationAlreadyExists = "HIST_1002"
	codeInternalStoreFailed     = "HIST_9000"
)

// errValidationFailed returns an error when a history request fails validation.
func errValidationFailed(message string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, message, nil)
}

// errSimulationNotFound returns an error when no snapshot exists for the
// requested simulation ID within the organization.
func errSimulationNotFound(simulationID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSimulationNotFound, fmt.Sprintf("simulation not found: %s", simulationID), cause)
}

// errSimulationAlreadyExists returns an error when a snapshot for the
// simulation ID was already recorded. Snapshots are write-once.
func errSimulationAlreadyExists(simulationID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeSimulationAlreadyExists, fmt.Sprintf("simulation already recorded: %s", simulationID), cause)
}

// errInternalStoreFailed returns an error when a simulation store operation fails.
func errInternalStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("simulationStoreFailed: %w", cause))
}
