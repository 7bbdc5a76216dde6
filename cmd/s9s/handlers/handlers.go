// Package handlers provides the command execution logic of the s9s CLI.
//
// Run is the RunE function of the root command. It owns one option set per
// invocation, hands the raw arguments to the dispatcher and then routes the
// validated invocation to a handler:
//   - --help and --version are answered by the info package
//   - controller --ping reaches the controller through the RPC client
//   - every other invocation prints the resolved request
//
// Failures are printed as a single line on stderr and returned as
// *options.Error so main can exit with the recorded status.
package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/concave-dev/s9s/cmd/s9s/client"
	"github.com/concave-dev/s9s/cmd/s9s/display"
	"github.com/concave-dev/s9s/cmd/s9s/utils"
	"github.com/concave-dev/s9s/internal/dispatch"
	"github.com/concave-dev/s9s/internal/info"
	"github.com/concave-dev/s9s/internal/logging"
	"github.com/concave-dev/s9s/internal/modes"
	"github.com/concave-dev/s9s/internal/options"
	"github.com/spf13/cobra"
)

// handlerFunc executes one validated invocation.
type handlerFunc func(ctx context.Context, o *options.Options, inv *dispatch.Invocation, stdout io.Writer) error

type route struct {
	mode   modes.Mode
	action string
}

var routes = map[route]handlerFunc{
	{modes.Controller, "ping"}: handlePing,
}

// Run parses the command line and executes the requested action.
func Run(cmd *cobra.Command, args []string) error {
	utils.SetupLogging(nil)

	o := options.New(options.DefaultPaths())
	defer o.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return execute(ctx, o, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func execute(ctx context.Context, o *options.Options, args []string, stdout, stderr io.Writer) error {
	inv, err := dispatch.ReadOptions(o, args)
	utils.SetupLogging(o)
	if err != nil {
		return fail(o, stderr, err)
	}

	if inv.IsInfoRequest() {
		info.MaybeHandle(o, stdout)
		return nil
	}

	logging.Debug("Executing %s --%s", inv.Mode, inv.Action)

	handler, ok := routes[route{inv.Mode, inv.Action}]
	if !ok {
		handler = handleRequest
	}
	if err := handler(ctx, o, inv, stdout); err != nil {
		return fail(o, stderr, err)
	}
	return nil
}

// fail records err in the option set unless a failure is already recorded,
// prints the message and returns the recorded failure.
func fail(o *options.Options, stderr io.Writer, err error) error {
	var rerr *client.RequestError
	if errors.As(err, &rerr) {
		o.SetError(rerr.Status, "%s", rerr.Message)
	} else {
		o.SetError(options.Failed, "%s", err.Error())
	}

	logging.PrintError(stderr, o.ErrorString(), o.UseSyntaxHighlight())
	return o.Err()
}

// handleRequest prints the resolved invocation.
func handleRequest(_ context.Context, o *options.Options, inv *dispatch.Invocation, stdout io.Writer) error {
	display.PrintRequest(stdout, display.NewRequest(o, inv.Action), display.FormatFromOptions(o))
	return nil
}
