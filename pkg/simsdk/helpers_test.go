package simsdk

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

/*
 * Fake management API used by the package tests. It serves the token
 * endpoint and records every API call so tests can assert on the wire form.
 */

const (
	testClientID     = "client-id"
	testClientSecret = "client-secret"
	testToken        = "test-access-token"
	testICCID        = "8988228066602306770"
	testPrefix       = "/management-api"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

type fakeAPI struct {
	srv *httptest.Server

	mu        sync.Mutex
	tokenHits int
	calls     []recordedRequest

	// tokenStatus/tokenBody answer /oauth/token
	tokenStatus int
	tokenBody   string

	// status/body answer every other call
	status int
	body   string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{
		tokenStatus: http.StatusOK,
		tokenBody:   `{"access_token":"` + testToken + `","token_type":"Bearer","expires_in":3600,"scope":"all"}`,
		status:      http.StatusOK,
		body:        `{}`,
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == testPrefix+tokenPath {
		f.tokenHits++
		if r.Header.Get("Authorization") != "Basic "+BasicCredentials(testClientID, testClientSecret) ||
			string(body) != "grant_type=client_credentials" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"invalid_client"}`)
			return
		}
		w.WriteHeader(f.tokenStatus)
		_, _ = io.WriteString(w, f.tokenBody)
		return
	}

	f.calls = append(f.calls, recordedRequest{
		Method: r.Method,
		Path:   strings.TrimPrefix(r.URL.EscapedPath(), testPrefix),
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func (f *fakeAPI) respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.body = body
}

func (f *fakeAPI) respondToken(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokenStatus = status
	f.tokenBody = body
}

func (f *fakeAPI) lastCall(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls, "no API call was recorded")
	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) tokenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenHits
}

// client returns a Client pointed at the fake API with a fixed clock.
func (f *fakeAPI) client(now time.Time) *Client {
	c := NewClient(testClientID, testClientSecret)
	c.BaseURL = f.srv.URL + testPrefix
	c.now = func() time.Time { return now }
	return c
}

// doerFunc adapts a function to httpx.Doer.
type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
