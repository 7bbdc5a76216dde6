// Package main provides the entry point of the s9s command line client.
//
// s9s talks to the Cmon controller. The first positional argument selects
// the mode (cluster, node, job, backup, ...) and the options that follow
// select one primary action of that mode:
//
//	s9s node --list --controller=https://10.0.0.5:9501 --long
//	s9s cluster --create --nodes="10.0.0.1;10.0.0.2" --cluster-type=galera
//	s9s job --log --job-id=42
//
// INITIALIZATION FLOW:
//  1. Logging is configured from the environment (DEBUG=true)
//  2. The dispatcher detects the mode, loads the configuration files and
//     parses and validates the command line
//  3. --help and --version are answered without contacting the controller
//  4. The handler of the mode runs
//  5. The process exits with the recorded exit status
package main

import (
	"errors"
	"os"

	"github.com/concave-dev/s9s/cmd/s9s/commands"
	"github.com/concave-dev/s9s/cmd/s9s/handlers"
	"github.com/concave-dev/s9s/internal/options"
)

func init() {
	commands.RootCmd.RunE = handlers.Run
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		var oerr *options.Error
		if errors.As(err, &oerr) {
			os.Exit(int(oerr.Status))
		}
		os.Exit(int(options.Failed))
	}
}
