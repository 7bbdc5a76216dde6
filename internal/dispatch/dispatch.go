// Package dispatch turns process arguments into a validated invocation.
//
// DISPATCH PIPELINE:
//  1. Mode detection: the first argument that does not start with '-' or
//     '/' names the mode
//  2. Configuration: --config-file is located in the raw arguments and the
//     configuration layers are loaded before the mode grammar runs
//  3. Parsing: the mode grammar consumes the options left to right and
//     writes them into the option set; leftover positional arguments become
//     extra arguments
//  4. Validation: the mode invariants (one primary action, companion options,
//     operand counts) and the global option checks are enforced
//
// --help and --version short-circuit validation: the invocation is reported
// as successful so the caller can print the information and exit 0.
//
// The dispatcher never terminates the process. Failures are recorded in the
// option set with their exit status and returned as *options.Error.
package dispatch

import (
	"strings"

	"github.com/concave-dev/s9s/internal/grammar"
	"github.com/concave-dev/s9s/internal/logging"
	"github.com/concave-dev/s9s/internal/modes"
	"github.com/concave-dev/s9s/internal/options"
	"github.com/concave-dev/s9s/internal/validate"
)

// Invocation is the validated request of one s9s run.
type Invocation struct {
	Mode modes.Mode
	// Action is the primary action given, empty for --help and --version.
	Action string
	Extra  []string
}

// IsInfoRequest reports whether the invocation only asks for help or the
// version.
func (i *Invocation) IsInfoRequest() bool {
	return i.Action == ""
}

// ReadOptions parses args (program name excluded) into o and validates them.
func ReadOptions(o *options.Options, args []string) (*Invocation, error) {
	mode, err := modes.Detect(args)
	if err != nil {
		o.SetError(options.BadOptions, "%s", err.Error())
		return nil, o.Err()
	}
	o.SetMode(mode)
	logging.Debug("Detected mode %s", mode)

	if !o.LoadConfigFiles(grammar.PreScanConfigFile(args)) {
		return nil, o.Err()
	}

	spec, ok := grammar.Lookup(mode)
	if !ok {
		o.SetError(options.BadOptions, "The mode '%s' has no option grammar.", mode)
		return nil, o.Err()
	}

	fs := spec.FlagSet(o)
	if err := fs.Parse(args); err != nil {
		if grammar.HasHelpRequest(args) {
			logging.Debug("Ignoring parse error because help was requested: %v", err)
			o.Reset()
			o.SetMode(mode)
			o.Set(options.KeyHelp, true)
			return &Invocation{Mode: mode}, nil
		}
		o.SetError(options.BadOptions, "%s", parseErrorMessage(o, err))
		return nil, o.Err()
	}

	token, _ := modes.Token(args)
	modeConsumed := false
	for _, arg := range fs.Args() {
		if !modeConsumed && arg == token {
			modeConsumed = true
			continue
		}
		o.AppendExtraArgument(arg)
	}

	if o.IsHelpRequested() || o.IsVersionRequested() {
		return &Invocation{Mode: mode, Extra: o.ExtraArguments()}, nil
	}

	action, ok := spec.Validate(o)
	if !ok {
		return nil, o.Err()
	}
	if !checkGlobalOptions(o) {
		return nil, o.Err()
	}

	logging.Debug("Validated %s --%s with %d extra argument(s)", mode, action, o.NExtraArguments())
	return &Invocation{Mode: mode, Action: action, Extra: o.ExtraArguments()}, nil
}

// checkGlobalOptions validates option values shared by every mode.
func checkGlobalOptions(o *options.Options) bool {
	if o.Has(options.KeyColor) {
		color := o.String(options.KeyColor, "")
		if err := validate.ValidateOneOf(strings.ToLower(color), grammar.ColorModes...); err != nil {
			o.SetError(options.BadOptions, "The --color argument %v.", err)
			return false
		}
	}

	if o.Has(options.KeyControllerPort) {
		port := o.Int(options.KeyControllerPort, 0)
		if err := validate.ValidatePortRange(port); err != nil {
			o.SetError(options.BadOptions, "The --controller-port argument '%s' is not a valid port number.",
				o.String(options.KeyControllerPort, ""))
			return false
		}
	}

	return true
}

// parseErrorMessage rewrites a pflag error in the s9s style.
func parseErrorMessage(o *options.Options, err error) string {
	msg := err.Error()

	if name, ok := strings.CutPrefix(msg, "unknown flag: "); ok {
		return "Unknown option " + name + "."
	}
	if rest, ok := strings.CutPrefix(msg, "unknown shorthand flag: "); ok {
		return "Unknown option -" + shorthandName(rest) + "."
	}
	if name, ok := strings.CutPrefix(msg, "flag needs an argument: "); ok {
		if strings.HasPrefix(name, "--") {
			return "The " + name + " option requires an argument."
		}
		return "The -" + shorthandName(name) + " option requires an argument."
	}

	// Setters record their own message before pflag wraps it.
	if o.ExitStatus() != options.Ok && o.ErrorString() != "" {
		return o.ErrorString()
	}
	return msg
}

// shorthandName extracts the letter from "'x' in -xyz" or `"x" in -xyz`.
func shorthandName(s string) string {
	letter, _, _ := strings.Cut(s, " in ")
	return strings.Trim(letter, `'"`)
}
