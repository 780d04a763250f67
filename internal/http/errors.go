package http

import (
	"fmt"

	"spansim/internal/shared/svcerrors"
)

const (
	codeUnsupportedContentType  = "API_1000"
	codeRequestDecodeFailed     = "API_1001"
	codeRequestValidationFailed = "API_1002"
)

// errUnsupportedContentType returns an error when a request body arrives with
// a content type other than JSON.
func errUnsupportedContentType(contentType string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedContentType, fmt.Sprintf("unsupported content type: %q, expected application/json", contentType), nil)
}

// errRequestDecodeFailed returns an error when a request body is not valid JSON.
func errRequestDecodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRequestDecodeFailed, "request body is not valid JSON", cause)
}

// errRequestValidationFailed returns an error for a request that decoded but
// carries values the API does not accept.
func errRequestValidationFailed(message string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRequestValidationFailed, message, nil)
}
