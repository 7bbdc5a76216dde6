// Package options holds the resolved option set of one s9s invocation.
//
// OPTION RESOLUTION:
// Every setting is resolved through the same precedence chain:
//  1. Command line: values written by the mode grammar while parsing
//  2. User configuration: ~/.s9s/s9s.conf, $S9S_USER_CONFIG or --config-file
//  3. System configuration: /etc/s9s.conf or $S9S_SYSTEM_CONFIG
//  4. Environment: only for the settings that historically read one
//  5. Default: supplied by the caller of the accessor
//
// The two configuration layers are independent ConfigFile instances and are
// never merged. The settings table in settings.go names the environment
// variable of each setting and the settings that consult the environment
// before the command line.
//
// LIFECYCLE:
// New creates an Options bound to a set of file paths; the Dispatcher fills
// it from the command line and Close drops everything it loaded. Tests build
// a fresh instance per case instead of sharing global state.
//
// FAILURE REPORTING:
// Setters never terminate the process. Composite setters validate their
// argument, record a message and the BadOptions exit status on failure and
// return false; the caller checks the result and aborts.
package options

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/concave-dev/s9s/internal/config"
	"github.com/concave-dev/s9s/internal/configfile"
	"github.com/concave-dev/s9s/internal/modes"
	"github.com/concave-dev/s9s/internal/state"
	"github.com/spf13/viper"
)

// Paths locates the files an Options instance reads and writes.
type Paths struct {
	UserConfig   string
	SystemConfig string
	State        string
}

// DefaultPaths derives the file locations from the environment:
// $S9S_USER_CONFIG or ~/.s9s/s9s.conf, $S9S_SYSTEM_CONFIG or /etc/s9s.conf,
// and ~/.s9s/s9s.state.
func DefaultPaths() Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	userDir := filepath.Join(home, config.UserConfigDir)

	paths := Paths{
		UserConfig:   filepath.Join(userDir, config.UserConfigFile),
		SystemConfig: config.SystemConfigPath,
		State:        filepath.Join(userDir, config.StateFile),
	}
	if path := os.Getenv(config.EnvUserConfig); path != "" {
		paths.UserConfig = path
	}
	if path := os.Getenv(config.EnvSystemConfig); path != "" {
		paths.SystemConfig = path
	}
	return paths
}

// Options is the resolved option set of one invocation.
type Options struct {
	paths Paths

	values       map[string]any
	userConfig   *configfile.ConfigFile
	systemConfig *configfile.ConfigFile
	env          *viper.Viper
	state        *state.Store

	mode  modes.Mode
	extra []string

	exitStatus   ExitStatus
	errorMessage string

	isTerminal func() bool
}

// New returns an empty option set bound to paths. Configuration files are
// not read until LoadConfigFiles is called.
func New(paths Paths) *Options {
	return &Options{
		paths:      paths,
		values:     make(map[string]any),
		env:        newEnvironment(),
		state:      state.New(paths.State),
		isTerminal: stdoutIsTerminal,
	}
}

// Close releases everything the instance loaded. The instance must not be
// used afterwards.
func (o *Options) Close() {
	o.values = nil
	o.userConfig = nil
	o.systemConfig = nil
	o.state = nil
	o.extra = nil
}

// Paths returns the file locations the instance was created with.
func (o *Options) Paths() Paths {
	return o.paths
}

// Reset clears the command line layer, the mode and the recorded failure,
// keeping loaded configuration files.
func (o *Options) Reset() {
	o.values = make(map[string]any)
	o.mode = modes.NoMode
	o.extra = nil
	o.exitStatus = Ok
	o.errorMessage = ""
}

// SetMode fixes the operation mode. Only the first call has an effect.
func (o *Options) SetMode(mode modes.Mode) {
	if o.mode == modes.NoMode {
		o.mode = mode
	}
}

// Mode returns the operation mode.
func (o *Options) Mode() modes.Mode {
	return o.mode
}

// AppendExtraArgument adds a positional operand.
func (o *Options) AppendExtraArgument(arg string) {
	o.extra = append(o.extra, arg)
}

// ExtraArguments returns a copy of the positional operands.
func (o *Options) ExtraArguments() []string {
	out := make([]string, len(o.extra))
	copy(out, o.extra)
	return out
}

// NExtraArguments returns the number of positional operands.
func (o *Options) NExtraArguments() int {
	return len(o.extra)
}

// Has reports whether key was given on the command line.
func (o *Options) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set writes a command line value. Repeated keys overwrite.
func (o *Options) Set(key string, value any) {
	o.values[key] = value
}

// Bool resolves key as a boolean.
func (o *Options) Bool(key string) bool {
	value, ok := o.lookup(key)
	if !ok {
		return false
	}
	return toBool(value)
}

// String resolves key as a string, returning defaultValue when no layer
// holds it.
func (o *Options) String(key, defaultValue string) string {
	value, ok := o.lookup(key)
	if !ok {
		return defaultValue
	}
	return toString(value)
}

// Int resolves key as an integer. Values that do not parse yield
// defaultValue.
func (o *Options) Int(key string, defaultValue int) int {
	value, ok := o.lookup(key)
	if !ok {
		return defaultValue
	}
	return toInt(value, defaultValue)
}

// StringIn resolves a mode specific variable: configuration layers are
// asked for section before their global section.
func (o *Options) StringIn(section, key, defaultValue string) string {
	value, ok := o.lookupIn(section, key)
	if !ok {
		return defaultValue
	}
	return toString(value)
}

// Map resolves key as a map. Configuration and environment values are
// strings and must hold a JSON object. Returns nil when no layer holds a
// value that converts.
func (o *Options) Map(key string) map[string]any {
	value, ok := o.lookup(key)
	if !ok {
		return nil
	}
	m, err := toStringMap(value)
	if err != nil {
		return nil
	}
	return m
}

// StringList returns the list stored under key.
func (o *Options) StringList(key string) []string {
	value, ok := o.lookup(key)
	if !ok {
		return nil
	}
	if s, ok := value.(string); ok {
		return splitList(s)
	}
	return toStringSlice(value)
}

func splitList(text string) []string {
	var out []string
	for _, item := range strings.FieldsFunc(text, func(r rune) bool { return r == ';' || r == ',' }) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
