package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Doer is the subset of *http.Client the SDKs in this module depend on.
// Supplying a custom implementation lets callers add tracing or record
// fixtures in tests.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Standard header values sent with every JSON API call.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	AcceptAny         = "*/*"
	CacheControlNone  = "no-cache"
	AcceptEncodingStd = "gzip, deflate"
	ConnectionKeep    = "keep-alive"
)

// NewJSONRequest serialises payload as the JSON request body. A nil payload
// is sent as an empty object, regardless of method.
func NewJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	if payload == nil {
		payload = struct{}{}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", ContentTypeJSON)
	return req, nil
}

// SetStandardHeaders sets the fixed Accept, Cache-Control, Accept-Encoding and
// Connection headers used by the management API clients.
func SetStandardHeaders(req *http.Request) {
	req.Header.Set("Accept", AcceptAny)
	req.Header.Set("Cache-Control", CacheControlNone)
	req.Header.Set("Accept-Encoding", AcceptEncodingStd)
	req.Header.Set("Connection", ConnectionKeep)
}
