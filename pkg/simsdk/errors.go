package simsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// Argument validation errors, returned before any request is made.
var (
	ErrEmptyICCID    = errors.New("simsdk: iccid must not be empty")
	ErrEmptySMSID    = errors.New("simsdk: sms id must not be empty")
	ErrInvalidStatus = errors.New("simsdk: status must be Activated or Disabled")
)

// AuthError is returned when the token endpoint does not yield an access
// token: bad credentials, a service outage or an undecodable answer.
type AuthError struct {
	// StatusCode is the HTTP status of the token response
	StatusCode int

	// Code and Description carry the OAuth2 error fields, when present
	Code        string
	Description string

	// Err is the underlying decode failure, if any
	Err error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	msg := fmt.Sprintf("authentication failed (HTTP %d)", e.StatusCode)
	switch {
	case e.Code != "" && e.Description != "":
		msg += fmt.Sprintf(": %s: %s", e.Code, e.Description)
	case e.Code != "":
		msg += ": " + e.Code
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	default:
		msg += ": response has no access_token"
	}
	return msg
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError wraps a failure of the HTTP client to deliver a request.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send request %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is returned by read operations answered with a non-2xx status.
type APIError struct {
	StatusCode int

	// Body is the decoded error body, nil when it was not a JSON object
	Body Object

	// Raw is the undecoded response body
	Raw []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if msg, ok := e.Body.String("message"); ok && msg != "" {
		return fmt.Sprintf("api error: HTTP %d: %s", e.StatusCode, msg)
	}
	if msg, ok := e.Body.String("error"); ok && msg != "" {
		return fmt.Sprintf("api error: HTTP %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api error: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}
