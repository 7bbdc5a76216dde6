// Package modes maps the mode noun given as the first positional argument
// ("cluster", "nodes", "maint", ...) to the closed set of operation modes.
package modes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Mode identifies the noun an invocation operates on.
type Mode int

const (
	NoMode Mode = iota
	Cluster
	Container
	Job
	Backup
	Node
	Process
	User
	Group
	Account
	Maintenance
	MetaType
	Script
	Sheet
	Server
	Controller
	Tree
	Log
	Event
	Alarm
	Report
	Replication
	DbSchema
	DbVersions
	CloudCredentials
)

// maxSuggestionDistance bounds the edit distance of "Did you mean" hints.
const maxSuggestionDistance = 2

var modeNames = map[Mode]string{
	NoMode:           "",
	Cluster:          "cluster",
	Container:        "container",
	Job:              "job",
	Backup:           "backup",
	Node:             "node",
	Process:          "process",
	User:             "user",
	Group:            "group",
	Account:          "account",
	Maintenance:      "maintenance",
	MetaType:         "metatype",
	Script:           "script",
	Sheet:            "sheet",
	Server:           "server",
	Controller:       "controller",
	Tree:             "tree",
	Log:              "log",
	Event:            "event",
	Alarm:            "alarm",
	Report:           "report",
	Replication:      "replication",
	DbSchema:         "dbschema",
	DbVersions:       "dbversions",
	CloudCredentials: "cloud-credentials",
}

// registry holds every accepted spelling. "controllers" resolves to Server,
// not Controller; existing scripts depend on it.
var registry = map[string]Mode{
	"account":           Account,
	"accounts":          Account,
	"alarm":             Alarm,
	"alarms":            Alarm,
	"backup":            Backup,
	"backups":           Backup,
	"cloud-credentials": CloudCredentials,
	"cluster":           Cluster,
	"clusters":          Cluster,
	"container":         Container,
	"containers":        Container,
	"controller":        Controller,
	"controllers":       Server,
	"dbschema":          DbSchema,
	"dbversions":        DbVersions,
	"event":             Event,
	"events":            Event,
	"group":             Group,
	"groups":            Group,
	"job":               Job,
	"jobs":              Job,
	"log":               Log,
	"logs":              Log,
	"maint":             Maintenance,
	"maintenance":       Maintenance,
	"maintenances":      Maintenance,
	"metatype":          MetaType,
	"metatypes":         MetaType,
	"node":              Node,
	"nodes":             Node,
	"process":           Process,
	"processes":         Process,
	"replication":       Replication,
	"report":            Report,
	"reports":           Report,
	"script":            Script,
	"scripts":           Script,
	"server":            Server,
	"servers":           Server,
	"sheet":             Sheet,
	"sheets":            Sheet,
	"tree":              Tree,
	"user":              User,
	"users":             User,
}

// String returns the canonical noun for the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		if name == "" {
			return "none"
		}
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Lookup resolves a mode name or alias.
func Lookup(name string) (Mode, bool) {
	mode, ok := registry[name]
	return mode, ok
}

// Names returns every accepted spelling in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the selectable modes in declaration order.
func All() []Mode {
	all := make([]Mode, 0, len(modeNames)-1)
	for m := Cluster; m <= CloudCredentials; m++ {
		all = append(all, m)
	}
	return all
}

// ErrNoMode is returned by Detect when the arguments hold no mode token.
var ErrNoMode = errors.New("The first command line option must be the mode.")

// UnknownModeError is returned by Detect for a token that names no mode.
type UnknownModeError struct {
	Name       string
	Suggestion string
}

func (e *UnknownModeError) Error() string {
	msg := fmt.Sprintf("The mode '%s' is invalid.", e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" Did you mean '%s'?", e.Suggestion)
	}
	return msg
}

// Detect picks the mode from process arguments (program name excluded). The
// first token not starting with '-' or '/' is the mode. When there is none,
// but --help or --version was given, NoMode is returned without error so the
// caller can print the general help or the version.
func Detect(args []string) (Mode, error) {
	token, found := Token(args)
	if !found {
		if hasInfoRequest(args) {
			return NoMode, nil
		}
		return NoMode, ErrNoMode
	}

	mode, ok := Lookup(token)
	if !ok {
		return NoMode, &UnknownModeError{Name: token, Suggestion: Suggest(token)}
	}
	return mode, nil
}

// Token returns the argument Detect treats as the mode name.
func Token(args []string) (string, bool) {
	for _, arg := range args {
		if arg == "" || strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "/") {
			continue
		}
		return arg, true
	}
	return "", false
}

// Suggest returns the registered name closest to name, or "" when none is
// within editing distance.
func Suggest(name string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range Names() {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

func hasInfoRequest(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		switch arg {
		case "-h", "--help", "-V", "--version":
			return true
		}
	}
	return false
}
