package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/concave-dev/s9s/cmd/s9s/client"
	"github.com/concave-dev/s9s/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	o      *options.Options
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	for _, name := range []string{"CMON_CONTROLLER", "CMON_CLUSTER_ID", "USER", "S9S_VERBOSE", "S9S_ONLY_ASCII", "S9S_LOG_LEVEL", "DEBUG"} {
		t.Setenv(name, "")
	}

	original := newClient
	newClient = func(o *options.Options, stdout io.Writer) *client.CmonClient {
		cfg := client.ConfigFromOptions(o)
		cfg.Retries = 0
		return client.NewCmonClient(cfg)
	}
	t.Cleanup(func() { newClient = original })

	dir := t.TempDir()
	o := options.New(options.Paths{
		UserConfig:   filepath.Join(dir, "s9s.conf"),
		SystemConfig: filepath.Join(dir, "system.conf"),
		State:        filepath.Join(dir, "s9s.state"),
	})
	t.Cleanup(o.Close)

	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), o, args, &stdout, &stderr)
	return result{o: o, stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func requireStatus(t *testing.T, err error, want options.ExitStatus) {
	t.Helper()
	var oerr *options.Error
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, want, oerr.Status)
}

func cmonServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		reply := map[string]any{"request_status": "Ok"}
		if body["operation"] == "authenticateWithPassword" && body["password"] != "secret" {
			reply = map[string]any{"request_status": "AccessDenied", "error_string": "Wrong username or password."}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNoMode(t *testing.T) {
	r := run(t)

	requireStatus(t, r.err, options.BadOptions)
	assert.Equal(t, "The first command line option must be the mode.\n", r.stderr)
	assert.Empty(t, r.stdout)
}

func TestBadOptionsArePrinted(t *testing.T) {
	r := run(t, "cluster", "--list", "--stat")

	requireStatus(t, r.err, options.BadOptions)
	assert.Equal(t, "The main options are mutually exclusive.\n", r.stderr)
}

func TestHelpAndVersion(t *testing.T) {
	r := run(t, "cluster", "--help")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "Usage:"))

	r = run(t, "--version")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "s9s Version")
}

func TestRequestIsPrinted(t *testing.T) {
	r := run(t, "node", "--list", "--controller=cmon.local:9555")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "node")
	assert.Contains(t, r.stdout, "list")
	assert.Contains(t, r.stdout, "https://cmon.local:9555")
	assert.Empty(t, r.stderr)
}

func TestControllerPing(t *testing.T) {
	srv := cmonServer(t)

	r := run(t, "controller", "--ping", "--controller="+srv.URL, "--only-ascii")

	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "OK "+srv.URL+" replied in "), r.stdout)
	assert.Equal(t, srv.URL, r.o.State(StateLastController))
}

func TestControllerPingAuthenticates(t *testing.T) {
	srv := cmonServer(t)

	r := run(t, "controller", "--ping", "--controller="+srv.URL, "--cmon-user=admin", "--password=secret")
	require.NoError(t, r.err)

	r = run(t, "controller", "--ping", "--controller="+srv.URL, "--cmon-user=admin", "--password=wrong")
	requireStatus(t, r.err, options.AccessDenied)
	assert.Equal(t, "Wrong username or password.\n", r.stderr)
	assert.Empty(t, r.o.State(StateLastController))
}

func TestControllerPingConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	r := run(t, "controller", "--ping", "--controller="+url)

	requireStatus(t, r.err, options.ConnectionError)
	assert.Equal(t, options.ConnectionError, r.o.ExitStatus())
	assert.Contains(t, r.stderr, "Failed to connect to "+url)
}

func TestControllerPingPrintRequest(t *testing.T) {
	srv := cmonServer(t)

	for _, name := range []string{"CMON_CONTROLLER", "USER"} {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	o := options.New(options.Paths{
		UserConfig:   filepath.Join(dir, "s9s.conf"),
		SystemConfig: filepath.Join(dir, "system.conf"),
		State:        filepath.Join(dir, "s9s.state"),
	})
	t.Cleanup(o.Close)

	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), o,
		[]string{"controller", "--ping", "--print-request", "--controller=" + srv.URL}, &stdout, &stderr)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "Preparing to send request to /v2/clusters:\n"))
	assert.Contains(t, stdout.String(), `"operation": "ping"`)
}
