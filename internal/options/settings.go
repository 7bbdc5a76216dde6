package options

import (
	"strconv"
	"strings"

	"github.com/concave-dev/s9s/internal/configfile"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Keys of the settings that are read through the precedence chain. Option
// keys double as configuration variable names unless a setting says
// otherwise.
const (
	KeyController        = "controller"
	KeyControllerPort    = "controller_port"
	KeyRPCTLS            = "rpc_tls"
	KeyUser              = "cmon_user"
	KeyPassword          = "password"
	KeyPrivateKeyFile    = "private_key_file"
	KeyClusterID         = "cluster_id"
	KeyClusterName       = "cluster_name"
	KeyClusterType       = "cluster_type"
	KeyOnlyASCII         = "only_ascii"
	KeyMaskPasswords     = "mask_passwords"
	KeyVerbose           = "verbose"
	KeyDebug             = "debug"
	KeyConnectionTimeout = "connection_timeout"
	KeyColor             = "color"
	KeyDateFormat        = "date_format"
	KeyPrintJSON         = "print_json"
	KeyPrintRequest      = "print_request"
	KeyBatch             = "batch"
	KeyNoHeader          = "no_header"
	KeyLong              = "long"
	KeyFullPath          = "full_path"
	KeyList              = "list"
	KeyHelp              = "help"
	KeyVersion           = "version"
	KeyConfigFile        = "config_file"
	KeyNodes             = "nodes"
	KeyServers           = "servers"
	KeyMaster            = "master"
	KeySlave             = "slave"
	KeyAccount           = "account"
	KeyContainers        = "containers"
	KeyJobID             = "job_id"
	KeyJobTags           = "job_tags"
)

// setting describes how one key is resolved.
//
// Env names an environment variable consulted after both configuration
// layers. EnvFirst settings are forced on by a truthy environment value
// before anything else is looked at; a false or unset variable leaves them to
// the regular chain, so a command line switch can still turn them on.
type setting struct {
	Key        string
	ConfigName string
	Env        string
	EnvFirst   bool
}

var settings = []setting{
	{Key: KeyController, Env: "CMON_CONTROLLER"},
	{Key: KeyControllerPort},
	{Key: KeyRPCTLS},
	{Key: KeyUser, Env: "USER"},
	{Key: KeyPassword, ConfigName: "cmon_password"},
	{Key: KeyPrivateKeyFile},
	{Key: KeyClusterID, Env: "CMON_CLUSTER_ID"},
	{Key: KeyOnlyASCII, Env: "S9S_ONLY_ASCII", EnvFirst: true},
	{Key: KeyMaskPasswords, Env: "S9S_MASK_PASSWORDS", EnvFirst: true},
	{Key: KeyVerbose, Env: "S9S_VERBOSE"},
	{Key: KeyConnectionTimeout, Env: "S9S_CONNECTION_TIMEOUT"},
	{Key: KeyColor},
	{Key: KeyDateFormat},
	{Key: KeyBatch},
	{Key: KeyNoHeader},
	{Key: KeyLong},
}

var settingsByKey = func() map[string]setting {
	m := make(map[string]setting, len(settings))
	for _, s := range settings {
		m[s.Key] = s
	}
	return m
}()

func lookupSetting(key string) setting {
	if s, ok := settingsByKey[key]; ok {
		return s
	}
	return setting{Key: key}
}

func (s setting) configName() string {
	if s.ConfigName != "" {
		return s.ConfigName
	}
	return s.Key
}

// newEnvironment binds every setting that supports an environment variable
// into a dedicated viper instance. Viper reads the variables at query time.
func newEnvironment() *viper.Viper {
	v := viper.New()
	for _, s := range settings {
		if s.Env != "" {
			_ = v.BindEnv(s.Key, s.Env)
		}
	}
	return v
}

// lookup walks the precedence chain for key: command line, user config,
// system config, environment. The caller applies its default when nothing
// was found.
func (o *Options) lookup(key string) (any, bool) {
	return o.lookupWhere(key, nil)
}

// lookupWhere is lookup that passes over values rejected by accept, so a
// layer holding an unusable value does not hide the layers below it. A nil
// accept takes every value.
func (o *Options) lookupWhere(key string, accept func(any) bool) (any, bool) {
	s := lookupSetting(key)
	usable := func(value any, ok bool) bool {
		return ok && (accept == nil || accept(value))
	}

	if s.EnvFirst {
		if value, ok := o.fromEnvironment(s); usable(value, ok) && toBool(value) {
			return value, true
		}
	}

	if value, ok := o.values[key]; usable(value, ok) {
		return value, true
	}

	if value, ok := configValue(o.userConfig, configfile.GlobalSection, s.configName()); usable(value, ok) {
		return value, true
	}
	if value, ok := configValue(o.systemConfig, configfile.GlobalSection, s.configName()); usable(value, ok) {
		return value, true
	}

	if value, ok := o.fromEnvironment(s); usable(value, ok) {
		return value, true
	}
	return nil, false
}

// lookupIn is lookup for mode specific variables: each config layer is asked
// for the section first and then for the global section.
func (o *Options) lookupIn(section, key string) (any, bool) {
	if value, ok := o.values[key]; ok {
		return value, true
	}
	for _, layer := range []*configfile.ConfigFile{o.userConfig, o.systemConfig} {
		if layer == nil {
			continue
		}
		if value, ok := layer.VariableValueIn(section, key); ok {
			return value, true
		}
	}
	return o.fromEnvironment(lookupSetting(key))
}

func (o *Options) fromEnvironment(s setting) (any, bool) {
	if s.Env == "" || o.env == nil || !o.env.IsSet(s.Key) {
		return nil, false
	}
	return o.env.GetString(s.Key), true
}

func configValue(layer *configfile.ConfigFile, section, name string) (string, bool) {
	if layer == nil || !layer.HasVariable(section, name) {
		return "", false
	}
	return layer.VariableValue(section, name), true
}

// toBool coerces a loosely typed value. Strings are true when they read as
// true, yes, on, 1, t or y in any case; everything else is false.
func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case nil:
		return false
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1", "t", "y":
			return true
		}
		return false
	default:
		return cast.ToInt64(v) != 0
	}
}

// toInt coerces value to a decimal integer, yielding defaultValue when the
// value does not parse.
func toInt(value any, defaultValue int) int {
	switch v := value.(type) {
	case int:
		return v
	case bool:
		return defaultValue
	case nil:
		return defaultValue
	}

	n, err := strconv.Atoi(strings.TrimSpace(cast.ToString(value)))
	if err != nil {
		return defaultValue
	}
	return n
}

func toString(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ";")
	case interface{ String() string }:
		return v.String()
	}
	return cast.ToString(value)
}
