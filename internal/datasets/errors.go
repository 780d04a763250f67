package datasets

import (
	"fmt"

	"spansim/internal/shared/svcerrors"
)

// Service errors
const (
	codeValidationFailed = "DS_1000"
	codeUnknownAttribute = "DS_1001"
)

// errValidationFailed returns an error for scope validation failures.
func errValidationFailed(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, nil)
}

// errUnknownAttribute returns an error when the requested attribute is not part of the schema.
func errUnknownAttribute(attribute string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownAttribute, fmt.Sprintf("unknown attribute: %q", attribute), nil)
}
