package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/concave-dev/s9s/internal/config"
	"github.com/concave-dev/s9s/internal/logging"
	"github.com/concave-dev/s9s/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(op string, body map[string]any) (int, any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		op, _ := body["operation"].(string)
		code, reply := handler(r.URL.Path+" "+op, body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(url string) *CmonClient {
	return NewCmonClient(Config{BaseURL: url, Timeout: 2 * time.Second})
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, func(op string, _ map[string]any) (int, any) {
		if op != "/v2/clusters ping" {
			return 404, map[string]any{}
		}
		return 200, map[string]any{
			"request_status":    "Ok",
			"request_processed": "2026-10-19T10:00:00.000Z",
		}
	})

	result, err := testClient(srv.URL).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, StatusOk, result.Reply.RequestStatus)
	assert.Equal(t, "2026-10-19T10:00:00.000Z", result.Reply.RequestProcessed)
}

func TestPingUsesEndpointPath(t *testing.T) {
	srv := newTestServer(t, func(op string, _ map[string]any) (int, any) {
		if op != "/rpc/v2/clusters ping" {
			return 404, map[string]any{}
		}
		return 200, map[string]any{"request_status": "Ok"}
	})

	_, err := testClient(srv.URL + "/rpc").Ping(context.Background())
	require.NoError(t, err)
}

func TestPingControllerFailure(t *testing.T) {
	tests := []struct {
		name        string
		code        int
		reply       map[string]any
		wantStatus  options.ExitStatus
		wantMessage string
	}{
		{
			name:        "access denied",
			code:        200,
			reply:       map[string]any{"request_status": "AccessDenied", "error_string": "Not logged in."},
			wantStatus:  options.AccessDenied,
			wantMessage: "Not logged in.",
		},
		{
			name:        "not found",
			code:        200,
			reply:       map[string]any{"request_status": "ObjectNotFound"},
			wantStatus:  options.NotFound,
			wantMessage: "The controller refused the ping request.",
		},
		{
			name:        "error reply with status",
			code:        500,
			reply:       map[string]any{"request_status": "UnknownError", "error_string": "Internal error."},
			wantStatus:  options.Failed,
			wantMessage: "Internal error.",
		},
		{
			name:        "http error without status",
			code:        403,
			reply:       map[string]any{},
			wantStatus:  options.AccessDenied,
			wantMessage: "The controller replied with HTTP status 403.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(string, map[string]any) (int, any) {
				return tt.code, tt.reply
			})

			_, err := testClient(srv.URL).Ping(context.Background())
			require.Error(t, err)

			var rerr *RequestError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, tt.wantStatus, rerr.Status)
			assert.Equal(t, tt.wantMessage, rerr.Message)
		})
	}
}

func TestPingConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := testClient(url).Ping(context.Background())
	require.Error(t, err)

	var rerr *RequestError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, options.ConnectionError, rerr.Status)
	assert.Contains(t, rerr.Message, "Failed to connect to "+url)
}

func TestAuthenticate(t *testing.T) {
	srv := newTestServer(t, func(op string, body map[string]any) (int, any) {
		if op != "/v2/auth authenticateWithPassword" {
			return 404, map[string]any{}
		}
		if body["user_name"] == "admin" && body["password"] == "secret" {
			return 200, map[string]any{"request_status": "Ok"}
		}
		return 200, map[string]any{"request_status": "AccessDenied", "error_string": "Wrong username or password."}
	})

	c := testClient(srv.URL)
	require.NoError(t, c.Authenticate(context.Background(), "admin", "secret"))

	err := c.Authenticate(context.Background(), "admin", "wrong")
	var rerr *RequestError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, options.AccessDenied, rerr.Status)
	assert.Equal(t, "Wrong username or password.", rerr.Message)
}

func TestReplyExitStatus(t *testing.T) {
	tests := []struct {
		status string
		want   options.ExitStatus
	}{
		{StatusOk, options.Ok},
		{StatusAccessDenied, options.AccessDenied},
		{StatusNotAuthorized, options.AccessDenied},
		{StatusNotFound, options.NotFound},
		{StatusInvalid, options.BadOptions},
		{StatusTryAgain, options.Failed},
		{"", options.Failed},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, Reply{RequestStatus: tt.status}.ExitStatus())
		})
	}
}

func TestOnRequestSeesEveryRequest(t *testing.T) {
	srv := newTestServer(t, func(string, map[string]any) (int, any) {
		return 200, map[string]any{"request_status": "Ok"}
	})

	var paths []string
	c := NewCmonClient(Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		OnRequest: func(path string, request any) {
			paths = append(paths, path)
		},
	})

	require.NoError(t, c.Authenticate(context.Background(), "admin", "secret"))
	_, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/v2/auth", "/v2/clusters"}, paths)
}

func TestRequestsCarryCorrelationID(t *testing.T) {
	var ids []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get(RequestIDHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"request_status":"Ok"}`))
	}))
	t.Cleanup(srv.Close)

	c := testClient(srv.URL)
	for i := 0; i < 2; i++ {
		_, err := c.Ping(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, ids, 2)
	assert.Len(t, ids[0], 12)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestWireLoggingFollowsLogLevel(t *testing.T) {
	t.Cleanup(func() { logging.SetLevel(config.DefaultLogLevel) })

	logging.SetLevel(config.DefaultLogLevel)
	assert.False(t, testClient("http://localhost:9501").client.Debug)

	logging.SetLevel("DEBUG")
	assert.True(t, testClient("http://localhost:9501").client.Debug)
}
