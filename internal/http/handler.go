package http

import (
	"encoding/json"
	"net/http"
	"strings"
)

// AppHttpHandler is the contract route handlers implement. Returned errors
// flow through errorHandlingAdapter, which renders them as the JSON error
// envelope.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// decodeJSONBody enforces the JSON content type and decodes the request body
// into dst. Unknown fields are rejected so a misspelled request field surfaces
// as an error instead of a silently applied default.
func decodeJSONBody(r *http.Request, dst any) error {
	if !strings.Contains(strings.ToLower(contentType(r)), "application/json") {
		return errUnsupportedContentType(contentType(r))
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errRequestDecodeFailed(err)
	}
	return nil
}
