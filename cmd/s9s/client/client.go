// Package client provides the controller client of the s9s CLI.
//
// The client speaks the Cmon v2 JSON RPC: every request is a POST of a JSON
// object carrying an "operation" field to a per-subsystem path such as
// /v2/auth or /v2/clusters, and every reply carries a request_status string
// that is mapped to an s9s exit status.
//
// CLIENT CONFIGURATION:
//   - Base URL: the resolved controller endpoint including the optional path
//   - Timeout: the --connection-timeout option in seconds
//   - TLS: controllers ship self-signed certificates, verification is off
//   - Retries: connection failures are retried, controller replies are not
//
// Transport failures are reported with the ConnectionError exit status,
// controller-side failures with the status matching request_status.
package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/concave-dev/s9s/cmd/s9s/utils"
	"github.com/concave-dev/s9s/internal/logging"
	"github.com/concave-dev/s9s/internal/netutil"
	"github.com/concave-dev/s9s/internal/options"
	internalutils "github.com/concave-dev/s9s/internal/utils"
	"github.com/concave-dev/s9s/internal/version"
	"github.com/go-resty/resty/v2"
)

// Request status strings of the Cmon RPC.
const (
	StatusOk            = "Ok"
	StatusAccessDenied  = "AccessDenied"
	StatusNotFound      = "ObjectNotFound"
	StatusInvalid       = "InvalidRequest"
	StatusTryAgain      = "TryAgain"
	StatusUnknownError  = "UnknownError"
	StatusNotAuthorized = "AuthRequired"
)

// RequestIDHeader carries the client generated correlation ID.
const RequestIDHeader = "X-Request-Id"

// Reply is the common part of every controller reply.
type Reply struct {
	RequestStatus    string `json:"request_status"`
	ErrorString      string `json:"error_string,omitempty"`
	RequestID        int    `json:"request_id,omitempty"`
	RequestCreated   string `json:"request_created,omitempty"`
	RequestProcessed string `json:"request_processed,omitempty"`
}

// ExitStatus maps the request status to the s9s exit status.
func (r Reply) ExitStatus() options.ExitStatus {
	switch r.RequestStatus {
	case StatusOk:
		return options.Ok
	case StatusAccessDenied, StatusNotAuthorized:
		return options.AccessDenied
	case StatusNotFound:
		return options.NotFound
	case StatusInvalid:
		return options.BadOptions
	default:
		return options.Failed
	}
}

// RequestError is a failed request together with the exit status it maps to.
type RequestError struct {
	Status  options.ExitStatus
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// PingResult describes a successful ping.
type PingResult struct {
	URL       string
	Reply     Reply
	Roundtrip time.Duration
}

// Config holds the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Retries is the number of extra attempts after a connection failure.
	Retries int
	// OnRequest, when set, is called with every request before it is sent.
	OnRequest func(path string, request any)
}

// ConfigFromOptions builds the client settings from the resolved options.
func ConfigFromOptions(o *options.Options) Config {
	return Config{
		BaseURL: o.ControllerEndpoint().BaseURL(),
		Timeout: time.Duration(o.ConnectionTimeout()) * time.Second,
		Retries: 3,
	}
}

// CmonClient talks to one Cmon controller.
type CmonClient struct {
	client    *resty.Client
	baseURL   string
	onRequest func(path string, request any)
}

// NewCmonClient creates a client for the controller at cfg.BaseURL.
func NewCmonClient(cfg Config) *CmonClient {
	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})
	client.SetDebug(logging.IsDebugEnabled())

	client.
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("s9s/%s", version.S9sVersion))

	client.
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only retry on connection errors, never on controller replies
			return err != nil && netutil.IsConnectionError(err)
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		if id, err := internalutils.GenerateID(); err == nil {
			req.SetHeader(RequestIDHeader, id)
		}
		logging.Debug("Making RPC request %s: %s %s",
			req.Header.Get(RequestIDHeader), req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("RPC response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("RPC request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &CmonClient{
		client:    client,
		baseURL:   cfg.BaseURL,
		onRequest: cfg.OnRequest,
	}
}

// BaseURL returns the controller URL requests are sent to.
func (c *CmonClient) BaseURL() string {
	return c.baseURL
}

// Authenticate logs in with a user name and password. The session cookie the
// controller sets is kept for the following requests.
func (c *CmonClient) Authenticate(ctx context.Context, user, password string) error {
	request := map[string]any{
		"operation": "authenticateWithPassword",
		"user_name": user,
		"password":  password,
	}

	reply, _, err := c.call(ctx, "/v2/auth", request)
	if err != nil {
		return err
	}
	if reply.ExitStatus() != options.Ok {
		return &RequestError{
			Status:  options.AccessDenied,
			Message: replyMessage(reply, "Authentication failed."),
		}
	}
	return nil
}

// Ping checks that the controller answers RPC requests.
func (c *CmonClient) Ping(ctx context.Context) (*PingResult, error) {
	request := map[string]any{
		"operation": "ping",
	}

	reply, resp, err := c.call(ctx, "/v2/clusters", request)
	if err != nil {
		return nil, err
	}
	if status := reply.ExitStatus(); status != options.Ok {
		return nil, &RequestError{
			Status:  status,
			Message: replyMessage(reply, "The controller refused the ping request."),
		}
	}

	return &PingResult{
		URL:       c.baseURL,
		Reply:     *reply,
		Roundtrip: resp.Time(),
	}, nil
}

// call posts request to path and decodes the reply.
func (c *CmonClient) call(ctx context.Context, path string, request any) (*Reply, *resty.Response, error) {
	var reply Reply

	if c.onRequest != nil {
		c.onRequest(path, request)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&reply).
		SetError(&reply).
		Post(path)

	if err != nil {
		return nil, nil, &RequestError{
			Status:  options.ConnectionError,
			Message: fmt.Sprintf("Failed to connect to %s: %v.", c.baseURL, err),
			Err:     err,
		}
	}

	if reply.RequestStatus == "" {
		if resp.IsError() {
			return nil, resp, &RequestError{
				Status:  httpStatus(resp.StatusCode()),
				Message: fmt.Sprintf("The controller replied with HTTP status %d.", resp.StatusCode()),
			}
		}
		return nil, resp, &RequestError{
			Status:  options.Failed,
			Message: "The controller sent a reply without request status.",
		}
	}

	return &reply, resp, nil
}

func httpStatus(code int) options.ExitStatus {
	switch code {
	case 401, 403:
		return options.AccessDenied
	case 404:
		return options.NotFound
	default:
		return options.Failed
	}
}

func replyMessage(reply *Reply, fallback string) string {
	if reply.ErrorString != "" {
		return reply.ErrorString
	}
	return fallback
}
