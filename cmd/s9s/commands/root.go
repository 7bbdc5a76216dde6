// Package commands defines the cobra command of the s9s client.
//
// s9s has a single command. Flag parsing is disabled on it because every
// mode carries its own option grammar; the dispatcher owns the command
// line and cobra only provides the program entry and error plumbing.
package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd is the s9s command. Its RunE is assigned by main.
var RootCmd = &cobra.Command{
	Use:   "s9s MODE [OPTION]... [ARGUMENT]...",
	Short: "Command line client for the Cmon controller",
	Long: `s9s is the command line client of the Cmon controller. It creates,
monitors and manages database clusters, their nodes, backups, jobs, users
and the other objects the controller handles.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	Example: `  # List the clusters
  s9s cluster --list --long

  # Create a Galera cluster
  s9s cluster --create --cluster-type=galera --nodes="10.0.0.1;10.0.0.2;10.0.0.3"

  # Follow the messages of a job
  s9s job --follow --job-id=42

  # Check the connection to a controller
  s9s controller --ping --controller=https://10.0.0.5:9501

  # Show the options of a mode
  s9s node --help`,
}
