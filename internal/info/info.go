// Package info answers --help and --version once the command line parsed.
package info

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/concave-dev/s9s/internal/grammar"
	"github.com/concave-dev/s9s/internal/modes"
	"github.com/concave-dev/s9s/internal/options"
	"github.com/concave-dev/s9s/internal/termsize"
	"github.com/concave-dev/s9s/internal/version"
)

// ProgramName is printed in the banner and the usage lines.
const ProgramName = "s9s"

// minUsageWidth keeps option descriptions readable on narrow terminals.
const minUsageWidth = 20

var headingStyle = lipgloss.NewStyle().Bold(true)

// MaybeHandle prints the version banner or the help of the selected mode
// and returns true when either was requested. --version wins over --help.
func MaybeHandle(o *options.Options, w io.Writer) bool {
	switch {
	case o.IsVersionRequested():
		PrintVersion(w)
		return true
	case o.IsHelpRequested():
		PrintHelp(w, o.Mode(), termsize.Columns(), o.UseSyntaxHighlight())
		return true
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "%s Version %s\n", ProgramName, version.S9sVersion)
	fmt.Fprintf(w, "Build date %s, commit %s, %s %s/%s\n",
		version.BuildDate, version.GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w, "Copyright (C) 2016-2026 the s9s authors.")
}

// PrintHelp writes the help of mode laid out for width columns. Without a
// mode the list of modes is printed.
func PrintHelp(w io.Writer, mode modes.Mode, width int, colored bool) {
	h := &helpWriter{w: w, width: width, colored: colored}

	spec, ok := grammar.Lookup(mode)
	if mode == modes.NoMode || !ok {
		h.printModeList()
		return
	}

	h.line("Usage:")
	h.line("  %s %s [OPTION]... [ARGUMENT]...", ProgramName, mode)
	h.blank()
	h.paragraph(spec.Description)
	h.blank()

	h.heading("Main options:")
	h.flags(spec.Actions)
	if len(spec.Options) > 0 {
		h.blank()
		h.heading("Options:")
		h.flags(spec.Options)
	}
	h.blank()
	h.heading("Global options:")
	h.flags(grammar.GlobalFlags)
}

type helpWriter struct {
	w       io.Writer
	width   int
	colored bool
}

func (h *helpWriter) line(format string, args ...any) {
	fmt.Fprintf(h.w, format+"\n", args...)
}

func (h *helpWriter) blank() {
	fmt.Fprintln(h.w)
}

func (h *helpWriter) heading(text string) {
	if h.colored {
		text = headingStyle.Render(text)
	}
	fmt.Fprintln(h.w, text)
}

func (h *helpWriter) paragraph(text string) {
	fmt.Fprintln(h.w, wrap(text, h.width))
}

func (h *helpWriter) printModeList() {
	h.line("Usage:")
	h.line("  %s MODE [OPTION]... [ARGUMENT]...", ProgramName)
	h.blank()
	h.heading("Modes:")

	specs := grammar.Specs()
	column := 0
	for _, spec := range specs {
		column = max(column, len(spec.Mode.String()))
	}
	for _, spec := range specs {
		h.entry("  "+spec.Mode.String(), column+2, spec.Description)
	}

	h.blank()
	h.heading("Global options:")
	h.flags(grammar.GlobalFlags)
	h.blank()
	h.line("Use '%s MODE --help' for the options of a mode.", ProgramName)
}

func (h *helpWriter) flags(list []grammar.Flag) {
	labels := make([]string, len(list))
	column := 0
	for i, f := range list {
		labels[i] = flagLabel(f)
		column = max(column, len(labels[i]))
	}
	for i, f := range list {
		h.entry(labels[i], column, f.Usage)
	}
}

// entry prints label padded to column followed by text wrapped to the
// remaining width.
func (h *helpWriter) entry(label string, column int, text string) {
	indent := column + 2
	usageWidth := max(h.width-indent, minUsageWidth)

	lines := strings.Split(wrap(text, usageWidth), "\n")
	fmt.Fprintf(h.w, "%-*s%s\n", indent, label, lines[0])
	for _, l := range lines[1:] {
		fmt.Fprintf(h.w, "%s%s\n", strings.Repeat(" ", indent), l)
	}
}

func flagLabel(f grammar.Flag) string {
	var b strings.Builder
	if f.Short != "" {
		fmt.Fprintf(&b, "  -%s, ", f.Short)
	} else {
		b.WriteString("      ")
	}
	b.WriteString("--")
	b.WriteString(f.Name)
	if f.TakesArgument() {
		arg := f.Arg
		if arg == "" {
			arg = "VALUE"
		}
		b.WriteString("=")
		b.WriteString(arg)
	}
	return b.String()
}

// wrap breaks text on word boundaries so no line exceeds width.
func wrap(text string, width int) string {
	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
