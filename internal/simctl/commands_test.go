package simctl

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type apiCall struct {
	method string
	path   string
	body   string
}

// fakeManagementAPI answers the token endpoint and records API calls,
// replying to them with status/body.
type fakeManagementAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	status int
	body   string
}

func startFakeAPI(t *testing.T, status int, body string) (*fakeManagementAPI, string) {
	t.Helper()

	f := &fakeManagementAPI{status: status, body: body}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/oauth/token" {
			_, _ = io.WriteString(w, `{"access_token":"cli-token","token_type":"Bearer","expires_in":3600,"scope":"all"}`)
			return
		}

		f.mu.Lock()
		f.calls = append(f.calls, apiCall{method: r.Method, path: r.URL.Path, body: string(raw)})
		f.mu.Unlock()

		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.body)
	}))
	t.Cleanup(srv.Close)

	clearEnv(t)
	t.Setenv("ONCE_CLIENT_ID", "id")
	t.Setenv("ONCE_CLIENT_SECRET", "secret")
	t.Setenv("ONCE_BASE_URL", srv.URL)
	t.Setenv("LOG_LEVEL", "error")

	return f, srv.URL
}

func (f *fakeManagementAPI) last(t *testing.T) apiCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestSimsGet(t *testing.T) {
	api, _ := startFakeAPI(t, http.StatusOK, `{"iccid":"8931","status":"Enabled"}`)

	out, err := runCLI(t, "sims", "get", "8931")
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &obj))
	require.Equal(t, "8931", obj["iccid"])

	call := api.last(t)
	require.Equal(t, http.MethodGet, call.method)
	require.Equal(t, "/v1/sims/8931", call.path)
}

func TestSimsReadCommandsHitTheRightPaths(t *testing.T) {
	cases := []struct {
		args []string
		path string
		body string
	}{
		{[]string{"sims", "list"}, "/v1/sims", `[]`},
		{[]string{"sims", "status", "8931"}, "/v1/sims/8931/status", `{}`},
		{[]string{"sims", "usage", "8931"}, "/v1/sims/8931/usage", `{}`},
		{[]string{"sims", "connectivity", "8931"}, "/v1/sims/8931/connectivity_info", `{}`},
		{[]string{"sims", "events", "8931"}, "/v1/sims/8931/events", `[]`},
		{[]string{"sims", "quota", "data", "8931"}, "/v1/sims/8931/quota/data", `{}`},
		{[]string{"sims", "quota", "sms", "8931"}, "/v1/sims/8931/quota/sms", `{}`},
		{[]string{"sms", "list", "8931"}, "/v1/sims/8931/sms", `[]`},
		{[]string{"sms", "get", "8931", "7"}, "/v1/sims/8931/sms/7", `{}`},
	}

	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			api, _ := startFakeAPI(t, http.StatusOK, tc.body)

			_, err := runCLI(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.path, api.last(t).path)
		})
	}
}

func TestSimsState(t *testing.T) {
	api, _ := startFakeAPI(t, http.StatusOK, ``)

	out, err := runCLI(t, "sims", "state", "8931", "Disabled", "--label", "pump-3")
	require.NoError(t, err)
	require.Equal(t, "200 OK\n", out)

	call := api.last(t)
	require.Equal(t, http.MethodPut, call.method)
	require.Equal(t, `{"iccid":"8931","label":"pump-3","imei_lock":true,"status":"Disabled"}`, call.body)
}

func TestSimsStateRejectsUnknownStatus(t *testing.T) {
	startFakeAPI(t, http.StatusOK, ``)

	_, err := runCLI(t, "sims", "state", "8931", "Paused")
	require.ErrorContains(t, err, "invalid status")
}

func TestMutationFailureExitsNonZero(t *testing.T) {
	startFakeAPI(t, http.StatusBadRequest, `{"message":"nope"}`)

	out, err := runCLI(t, "sims", "reset", "8931")
	require.Error(t, err)
	require.Equal(t, "400 Bad Request\n", out)
}

func TestSMSSend(t *testing.T) {
	api, _ := startFakeAPI(t, http.StatusCreated, ``)

	out, err := runCLI(t, "sms", "send", "8931", "hello", "--expiry", "2026-12-24", "--dcs", "0")
	require.NoError(t, err)
	require.Equal(t, "201 Created\n", out)

	call := api.last(t)
	require.Equal(t, http.MethodPost, call.method)
	require.Equal(t, "/v1/sims/8931/sms", call.path)
	require.JSONEq(t, `{
		"source_address": 1234567890,
		"payload": "hello",
		"udh": "string",
		"dcs": 0,
		"source_address_type": {"id": 145},
		"expiry_date": "2026-12-24T18:10:29.000+0000"
	}`, call.body)
}

func TestSMSSendRejectsBadExpiry(t *testing.T) {
	startFakeAPI(t, http.StatusCreated, ``)

	_, err := runCLI(t, "sms", "send", "8931", "hello", "--expiry", "tomorrow")
	require.ErrorContains(t, err, "--expiry")
}

func TestSMSDelete(t *testing.T) {
	api, _ := startFakeAPI(t, http.StatusNoContent, ``)

	out, err := runCLI(t, "sms", "delete", "8931", "7")
	require.NoError(t, err)
	require.Equal(t, "204 No Content\n", out)
	require.Equal(t, http.MethodDelete, api.last(t).method)
}

func TestToken(t *testing.T) {
	startFakeAPI(t, http.StatusOK, ``)

	out, err := runCLI(t, "token")
	require.NoError(t, err)

	var tok map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tok))
	require.Equal(t, "cli-token", tok["access_token"])
	require.Equal(t, "Bearer", tok["token_type"])
	require.EqualValues(t, 3600, tok["expires_in"])
}

func TestMissingCredentials(t *testing.T) {
	clearEnv(t)

	_, err := runCLI(t, "sims", "list")
	require.ErrorIs(t, err, ErrMissingClientID)
}
