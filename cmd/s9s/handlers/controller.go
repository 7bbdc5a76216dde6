package handlers

import (
	"context"
	"io"

	"github.com/concave-dev/s9s/cmd/s9s/client"
	"github.com/concave-dev/s9s/cmd/s9s/display"
	"github.com/concave-dev/s9s/internal/dispatch"
	"github.com/concave-dev/s9s/internal/logging"
	"github.com/concave-dev/s9s/internal/options"
)

// StateLastController is the state key holding the last controller that
// answered a ping.
const StateLastController = "last_controller"

// newClient builds the RPC client for the resolved options.
var newClient = func(o *options.Options, stdout io.Writer) *client.CmonClient {
	cfg := client.ConfigFromOptions(o)
	if o.IsPrintRequest() {
		cfg.OnRequest = func(path string, request any) {
			display.PrintRPCRequest(stdout, path, request)
		}
	}
	return client.NewCmonClient(cfg)
}

// handlePing checks the connection to the controller, logging in first when
// a password is available.
func handlePing(ctx context.Context, o *options.Options, _ *dispatch.Invocation, stdout io.Writer) error {
	c := newClient(o, stdout)
	logging.Info("Pinging controller at %s", c.BaseURL())

	if password := o.Password(); password != "" {
		if err := c.Authenticate(ctx, o.UserName(), password); err != nil {
			return err
		}
		logging.Debug("Authenticated as %s", o.UserName())
	}

	result, err := c.Ping(ctx)
	if err != nil {
		return err
	}

	display.PrintPing(stdout, result, display.FormatFromOptions(o))
	if !o.SetState(StateLastController, result.URL) {
		return o.Err()
	}
	logging.Success("Controller at %s is reachable", result.URL)
	return nil
}
