// Package grammar describes the command line of every s9s mode as data.
//
// MODE GRAMMAR:
// Each mode is one Spec: the primary actions of which exactly one must be
// given, groups of actions that count as one, the plain options the mode
// accepts, the companion options an action depends on and the number of
// positional operands an action takes. Adding a mode means adding a Spec to
// the table; the dispatcher and the help printer need no changes.
//
// PARSING:
// FlagSet turns a Spec into a spf13/pflag FlagSet whose values write straight
// into an options.Options. Structured arguments (--nodes, --account, ...)
// are validated by the options setters while the command line is consumed.
//
// VALIDATION:
// Validate enforces the mode invariants after parsing and records failures
// with the BadOptions exit status; it never exits the process.
package grammar

import (
	"fmt"
	"io"
	"strings"

	"github.com/concave-dev/s9s/internal/modes"
	"github.com/concave-dev/s9s/internal/options"
	"github.com/spf13/pflag"
)

// Kind selects how a flag argument is stored.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindInt
	KindList
	KindNodes
	KindServers
	KindMaster
	KindSlave
	KindAccount
	KindContainers
)

var kindTypes = map[Kind]string{
	KindBool:       "bool",
	KindString:     "string",
	KindInt:        "int",
	KindList:       "list",
	KindNodes:      "nodelist",
	KindServers:    "nodelist",
	KindMaster:     "node",
	KindSlave:      "node",
	KindAccount:    "account",
	KindContainers: "containers",
}

// Flag is one long option.
type Flag struct {
	Name  string
	Short string
	Kind  Kind
	Usage string
	// Key overrides the option key derived from Name.
	Key string
	// Arg names the argument in help output.
	Arg string
}

// OptionKey returns the key the flag writes in the option store.
func (f Flag) OptionKey() string {
	if f.Key != "" {
		return f.Key
	}
	return options.KeyForFlag(f.Name)
}

// TakesArgument reports whether the flag needs a value.
func (f Flag) TakesArgument() bool {
	return f.Kind != KindBool
}

// Companion lists the options an action cannot do without. Every name in
// Requires must be present, and at least one of AnyOf when it is not empty.
type Companion struct {
	Action   string
	Requires []string
	AnyOf    []string
}

// Operand bounds the number of positional arguments an action takes. A
// negative Max means unbounded.
type Operand struct {
	Action string
	Min    int
	Max    int
	What   string
}

// Spec is the grammar of one mode.
type Spec struct {
	Mode        modes.Mode
	Description string
	Actions     []Flag
	Groups      [][]string
	Options     []Flag
	Companions  []Companion
	Operands    []Operand
}

// Lookup returns the grammar of mode.
func Lookup(mode modes.Mode) (*Spec, bool) {
	spec, ok := registry[mode]
	return spec, ok
}

// Specs returns every registered grammar in mode order.
func Specs() []*Spec {
	out := make([]*Spec, 0, len(registry))
	for _, mode := range modes.All() {
		if spec, ok := registry[mode]; ok {
			out = append(out, spec)
		}
	}
	return out
}

var registry = func() map[modes.Mode]*Spec {
	m := make(map[modes.Mode]*Spec, len(table)+1)
	m[modes.NoMode] = &Spec{Mode: modes.NoMode, Description: "Command line client for the Cmon controller."}
	for _, spec := range table {
		m[spec.Mode] = spec
	}
	return m
}()

// FlagSet builds the parser for the mode. Parsed values are written into o.
// The set reports errors instead of printing them.
func (s *Spec) FlagSet(o *options.Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(s.Mode.String(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetInterspersed(true)

	for _, group := range [][]Flag{GlobalFlags, s.Actions, s.Options} {
		for i := range group {
			define(fs, o, group[i])
		}
	}
	return fs
}

func define(fs *pflag.FlagSet, o *options.Options, f Flag) {
	if fs.Lookup(f.Name) != nil {
		return
	}
	short := f.Short
	if short != "" && fs.ShorthandLookup(short) != nil {
		short = ""
	}

	flag := fs.VarPF(&optionValue{o: o, flag: f}, f.Name, short, f.Usage)
	if f.Kind == KindBool {
		flag.NoOptDefVal = "true"
	}
}

// AllFlags returns the global flags followed by the mode's actions and
// options, duplicates removed.
func (s *Spec) AllFlags() []Flag {
	seen := make(map[string]bool)
	var out []Flag
	for _, group := range [][]Flag{s.Actions, s.Options, GlobalFlags} {
		for _, f := range group {
			if !seen[f.Name] {
				seen[f.Name] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// IsAction reports whether name is a primary action of the mode.
func (s *Spec) IsAction(name string) bool {
	for _, a := range s.Actions {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SelectedActions returns the primary actions given on the command line,
// with every action group reduced to its first member present.
func (s *Spec) SelectedActions(o *options.Options) []string {
	groupOf := make(map[string]int)
	for i, group := range s.Groups {
		for _, name := range group {
			groupOf[name] = i
		}
	}

	var selected []string
	seenGroup := make(map[int]bool)
	for _, a := range s.Actions {
		if !o.Flag(a.OptionKey()) {
			continue
		}
		if g, ok := groupOf[a.Name]; ok {
			if seenGroup[g] {
				continue
			}
			seenGroup[g] = true
		}
		selected = append(selected, a.Name)
	}
	return selected
}

// Validate checks the mode invariants on a parsed option set and returns
// the selected primary action. On failure the message and BadOptions are
// recorded in o and false is returned.
func (s *Spec) Validate(o *options.Options) (string, bool) {
	if s.Mode == modes.NoMode {
		return "", true
	}

	selected := s.SelectedActions(o)

	for _, c := range s.Companions {
		if !o.Flag(options.KeyForFlag(c.Action)) {
			continue
		}
		if msg := s.checkCompanion(o, c); msg != "" {
			o.SetError(options.BadOptions, "%s", msg)
			return "", false
		}
	}

	switch {
	case len(selected) > 1:
		o.SetError(options.BadOptions, "The main options are mutually exclusive.")
		return "", false
	case len(selected) == 0:
		o.SetError(options.BadOptions, "One of the main options is mandatory.")
		return "", false
	}

	action := selected[0]
	for _, op := range s.Operands {
		if op.Action != action {
			continue
		}
		n := o.NExtraArguments()
		if n < op.Min || (op.Max >= 0 && n > op.Max) {
			o.SetError(options.BadOptions, "The --%s option requires %s.", op.Action, op.What)
			return "", false
		}
	}

	return action, true
}

func (s *Spec) checkCompanion(o *options.Options, c Companion) string {
	for _, name := range c.Requires {
		if !o.IsDefined(options.KeyForFlag(name)) {
			return fmt.Sprintf("The --%s option requires the --%s option.", c.Action, name)
		}
	}

	if len(c.AnyOf) == 0 {
		return ""
	}
	for _, name := range c.AnyOf {
		if o.IsDefined(options.KeyForFlag(name)) {
			return ""
		}
	}
	alternatives := make([]string, len(c.AnyOf))
	for i, name := range c.AnyOf {
		alternatives[i] = "--" + name
	}
	return fmt.Sprintf("The --%s option requires the %s option.", c.Action, strings.Join(alternatives, " or the "))
}

// optionValue adapts one Flag to pflag.Value, storing into the option set.
type optionValue struct {
	o    *options.Options
	flag Flag
	raw  string
}

func (v *optionValue) String() string {
	return v.raw
}

func (v *optionValue) Type() string {
	return kindTypes[v.flag.Kind]
}

func (v *optionValue) Set(s string) error {
	v.raw = s
	key := v.flag.OptionKey()
	o := v.o

	ok := true
	switch v.flag.Kind {
	case KindBool, KindString, KindInt:
		o.Set(key, s)
	case KindList:
		ok = o.SetStringList(key, s)
	case KindNodes:
		ok = o.SetNodes(s)
	case KindServers:
		ok = o.SetServers(s)
	case KindMaster:
		ok = o.SetMaster(s)
	case KindSlave:
		ok = o.SetSlave(s)
	case KindAccount:
		ok = o.SetAccount(s)
	case KindContainers:
		ok = o.SetContainers(s)
	}

	if !ok {
		return fmt.Errorf("%s", o.ErrorString())
	}
	return nil
}
