package upstream

import (
	"fmt"

	"spansim/internal/models"
	"spansim/internal/shared/svcerrors"
)

// SpanGroupsAPI errors
const (
	codeScopeNotFound = "UPS_1000"

	codeInternalRequestFailed    = "UPS_9000"
	codeInternalUnexpectedStatus = "UPS_9001"
	codeInternalDecodeFailed     = "UPS_9002"
)

// errScopeNotFound returns an error when the backend has no data for the scope.
func errScopeNotFound(scope models.Scope) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeScopeNotFound, fmt.Sprintf("no span counts for scope: %s", scope.String()), nil)
}

// errInternalRequestFailed returns an error when the backend request cannot be completed.
func errInternalRequestFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRequestFailed, fmt.Errorf("spanCountsRequestFailed: %w", cause))
}

// errInternalUnexpectedStatus returns an error when the backend answers outside the 2xx range.
func errInternalUnexpectedStatus(status int) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalUnexpectedStatus, fmt.Errorf("spanCountsUnexpectedStatus: %d", status))
}

// errInternalDecodeFailed returns an error when the backend payload cannot be decoded.
func errInternalDecodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDecodeFailed, fmt.Errorf("spanCountsDecodeFailed: %w", cause))
}
