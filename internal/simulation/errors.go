package simulation

import (
	"spansim/internal/shared/svcerrors"
)

// Simulation errors
const (
	codeValidationFailed = "SIM_1000"
)

// errValidationFailed returns an error for simulation input validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}
