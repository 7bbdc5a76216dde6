package options

import (
	"errors"

	"github.com/concave-dev/s9s/internal/configfile"
	"github.com/concave-dev/s9s/internal/logging"
)

// LoadConfigFiles reads the configuration layers.
//
// With an explicit path (--config-file) only that file is read, as the user
// layer, and it must exist. Otherwise the user file is read when present and
// any failure is fatal. The system file is read when present; a file that
// cannot be read is skipped, one that cannot be parsed is fatal. Returns
// false after recording a BadOptions failure.
func (o *Options) LoadConfigFiles(explicitPath string) bool {
	o.userConfig = nil
	o.systemConfig = nil

	if explicitPath != "" {
		cf := configfile.New(explicitPath)
		if err := cf.Load(); err != nil {
			if configfile.IsNotExist(err) {
				o.SetError(BadOptions, "Configuration file '%s' not found.", explicitPath)
			} else {
				o.SetError(BadOptions, "%s", configErrorMessage(explicitPath, err))
			}
			return false
		}
		o.userConfig = cf
		logging.Debug("Loaded configuration file %s", explicitPath)
		return true
	}

	if o.paths.UserConfig != "" {
		user := configfile.New(o.paths.UserConfig)
		err := user.Load()
		switch {
		case err == nil:
			o.userConfig = user
			logging.Debug("Loaded user configuration %s", o.paths.UserConfig)
		case configfile.IsNotExist(err):
			logging.Debug("No user configuration at %s", o.paths.UserConfig)
		default:
			o.SetError(BadOptions, "%s", configErrorMessage(o.paths.UserConfig, err))
			return false
		}
	}

	if o.paths.SystemConfig != "" {
		system := configfile.New(o.paths.SystemConfig)
		err := system.Load()
		switch {
		case err == nil:
			o.systemConfig = system
			logging.Debug("Loaded system configuration %s", o.paths.SystemConfig)
		case configfile.IsNotExist(err):
		case configfile.IsParseError(err):
			o.SetError(BadOptions, "%s", configErrorMessage(o.paths.SystemConfig, err))
			return false
		default:
			logging.Debug("Ignoring unreadable system configuration: %v", err)
		}
	}

	return true
}

// LoadedConfigFiles returns the paths of the loaded layers, the user layer
// first.
func (o *Options) LoadedConfigFiles() []string {
	var paths []string
	if o.userConfig != nil {
		paths = append(paths, o.userConfig.Path())
	}
	if o.systemConfig != nil {
		paths = append(paths, o.systemConfig.Path())
	}
	return paths
}

func configErrorMessage(path string, err error) string {
	var perr *configfile.ParseError
	if errors.As(err, &perr) {
		return "Error in configuration file " + perr.Error() + "."
	}
	cause := err
	if inner := errors.Unwrap(err); inner != nil {
		cause = inner
	}
	return "Failed to read configuration file '" + path + "': " + cause.Error() + "."
}
