package rulesets

import (
	"fmt"

	"spansim/internal/shared/svcerrors"
)

// Service errors
const (
	codeValidationFailed     = "RS_1000"
	codeRuleSetNotFound      = "RS_1001"
	codeRuleSetAlreadyExists = "RS_1002"

	codeInternalStoreFailed = "RS_9000"
)

// errValidationFailed returns an error for input validation failures.
func errValidationFailed(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, nil)
}

// errRuleSetNotFound returns an error when no rule set exists for the ID.
func errRuleSetNotFound(id string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeRuleSetNotFound, fmt.Sprintf("rule set not found: %s", id), nil)
}

// errRuleSetAlreadyExists returns an error when the name is taken within the scope.
func errRuleSetAlreadyExists(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeRuleSetAlreadyExists, fmt.Sprintf("rule set name already in use: %s", name), cause)
}

// errInternalStoreFailed returns an error when a store operation fails.
func errInternalStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("ruleSetStoreFailed: %w", cause))
}
