// Package config provides common default configuration values shared across
// the s9s client components (option resolution, controller endpoint, state
// and configuration files). This centralizes the built-in defaults that sit
// at the bottom of every precedence chain.
package config

const (
	// DefaultControllerProtocol is used when the controller URL carries no scheme.
	DefaultControllerProtocol = "https"

	// DefaultControllerHost is used when no controller was configured anywhere.
	DefaultControllerHost = "localhost"

	// DefaultControllerPort is the Cmon RPC port.
	DefaultControllerPort = 9501

	// DefaultConnectionTimeout is the RPC timeout in seconds.
	DefaultConnectionTimeout = 10

	// DefaultLogLevel keeps the CLI quiet unless asked otherwise.
	DefaultLogLevel = "ERROR"

	// UserConfigDir is the per-user directory relative to $HOME.
	UserConfigDir = ".s9s"

	// UserConfigFile is the user configuration file name inside UserConfigDir.
	UserConfigFile = "s9s.conf"

	// StateFile is the persisted state blob name inside UserConfigDir.
	StateFile = "s9s.state"

	// SystemConfigPath is the system-wide configuration file.
	SystemConfigPath = "/etc/s9s.conf"
)

// Environment variables that relocate the configuration layers.
const (
	EnvUserConfig   = "S9S_USER_CONFIG"
	EnvSystemConfig = "S9S_SYSTEM_CONFIG"
)

// EnvLogLevel selects the client log level (DEBUG, INFO, WARN, ERROR).
const EnvLogLevel = "S9S_LOG_LEVEL"
