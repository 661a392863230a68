package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrNotConfigured is returned when the geocoding provider cannot be used,
	// typically because no API key has been configured.
	ErrNotConfigured = errors.New("geocoding service is not configured")

	// ErrNoMatch is returned when the geocoding provider answered the request
	// but found zero candidates for the query. It is deliberately distinct
	// from GeocodeError: the request itself succeeded.
	ErrNoMatch = errors.New("no address matches found")
)

// MissingFieldError reports a required address field that was absent from the
// input. It is raised during local validation, before any network call.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// GeocodeError wraps a failure while talking to the geocoding provider:
// connection errors, timeouts, non-2xx responses, or a malformed body.
type GeocodeError struct {
	StatusCode int    // HTTP status, 0 when the request never completed
	Message    string // provider-supplied description, may be empty
	Err        error  // underlying transport or decode error, may be nil
}

func (e *GeocodeError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("geocode request failed: %v", e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("geocode request failed: HTTP %d: %s", e.StatusCode, e.Message)
	default:
		return "geocode request failed: " + e.Message
	}
}

func (e *GeocodeError) Unwrap() error { return e.Err }

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
