package holodex

import (
	"errors"
	"fmt"
)

// Common errors returned by the Holodex client.
var (
	// ErrBadAPIKey is returned when the server rejects the API key (HTTP 403).
	ErrBadAPIKey = errors.New("holodex: invalid API key")

	// ErrNotFound is returned when the requested resource does not exist (HTTP 404).
	ErrNotFound = errors.New("holodex: resource not found")

	// ErrRateLimited is returned when the request quota is exhausted (HTTP 429).
	ErrRateLimited = errors.New("holodex: rate limited")

	// ErrEndOfResults is returned by Pager.Next once all items have been yielded.
	ErrEndOfResults = errors.New("holodex: end of results")
)

// ConfigError indicates invalid client configuration. It is only returned
// at construction time, never from an API call.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("holodex: invalid configuration: %s: %s", e.Field, e.Reason)
}

// ValidationError indicates caller-supplied pagination options outside the
// allowed bounds. It is returned before any network call is made.
type ValidationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("holodex: invalid %s: %s", e.Field, e.Reason)
}

// TransportError wraps a failure from the underlying HTTP stack (connection
// refused, DNS failure, TLS failure, timeout). The request never produced a
// usable response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("holodex: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a non-200 response from the Holodex API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("holodex: API error: status %d: %s", e.StatusCode, e.Body)
}

// Unwrap maps well-known status codes onto their sentinel errors so that
// errors.Is(err, ErrNotFound) and friends work.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 403:
		return ErrBadAPIKey
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimited
	}
	return nil
}

// IsNotFound checks if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an API key failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 403
}

// IsRateLimited checks if the error indicates quota exhaustion.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// ParseError indicates a response body that was delivered successfully but
// could not be understood (malformed JSON, shape mismatch, duplicate keys).
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("holodex: invalid response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("holodex: invalid response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// HeaderError indicates a malformed rate-limit header block: one of the three
// required headers is missing, duplicated, or not a number.
type HeaderError struct {
	Header string
	Reason string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("holodex: rate-limit header %s: %s", e.Header, e.Reason)
}

// MissingFieldError indicates a wire record lacking a field that became
// required in context (for example a statistics counter once video_count
// is present).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("holodex: missing field %q", e.Field)
}

// InvalidTimestampError indicates a timestamp field that was present but not
// parseable as ISO-8601. Distinct from MissingFieldError.
type InvalidTimestampError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("holodex: invalid timestamp in %q: %q", e.Field, e.Value)
}

func (e *InvalidTimestampError) Unwrap() error {
	return e.Err
}

// InvalidIDError indicates a dashed-hex identifier with wrong length, dash
// placement, or a non-hex digit.
type InvalidIDError struct {
	Value  string
	Reason string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("holodex: invalid identifier %q: %s", e.Value, e.Reason)
}

// ConversionError indicates a wire field that could not be normalized into
// its domain representation.
type ConversionError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("holodex: cannot convert field %q: %s", e.Field, e.Reason)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
