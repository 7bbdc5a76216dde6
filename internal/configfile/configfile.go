// Package configfile parses the s9s configuration file format: a sectioned
// key = value text where keys before the first section header (or inside a
// [global] section) belong to the unnamed global section.
//
//	# comment
//	controller = https://10.0.0.5:9501
//	cmon_user  = "admin"
//
//	[cluster]
//	cluster_format = "%I %N\n"
//
// Absent variables read as the empty string; VariableValue cannot tell an
// absent key from one set to "". HasVariable is there for the callers that
// need to know.
package configfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// GlobalSection is the name used to address the unnamed section.
const GlobalSection = ""

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ParseError describes a syntax error in a configuration file.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
}

// ConfigFile holds the parsed variables of one configuration file.
type ConfigFile struct {
	path     string
	sections map[string]map[string]string
}

// New creates an empty configuration bound to path. Path is only used for
// error messages and by Load.
func New(path string) *ConfigFile {
	return &ConfigFile{
		path:     path,
		sections: make(map[string]map[string]string),
	}
}

// Path returns the file the configuration was bound to.
func (c *ConfigFile) Path() string {
	return c.path
}

// Load reads and parses the bound file. A missing file yields an error
// matching fs.ErrNotExist; a syntax error yields a *ParseError.
func (c *ConfigFile) Load() error {
	content, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	return c.Parse(string(content))
}

// Parse parses text, adding its variables to the configuration. Later
// definitions of the same key overwrite earlier ones.
func (c *ConfigFile) Parse(text string) error {
	section := GlobalSection
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(text)+1)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name, err := parseSectionHeader(line)
			if err != nil {
				return c.parseError(lineNumber, err.Error())
			}
			section = name
			continue
		}

		key, value, err := parseAssignment(line)
		if err != nil {
			return c.parseError(lineNumber, err.Error())
		}
		c.set(section, key, value)
	}

	if err := scanner.Err(); err != nil {
		return c.parseError(lineNumber+1, err.Error())
	}
	return nil
}

func (c *ConfigFile) parseError(line int, message string) error {
	return &ParseError{File: c.path, Line: line, Message: message}
}

func (c *ConfigFile) set(section, key, value string) {
	vars, ok := c.sections[section]
	if !ok {
		vars = make(map[string]string)
		c.sections[section] = vars
	}
	vars[key] = value
}

func parseSectionHeader(line string) (string, error) {
	if !strings.HasSuffix(line, "]") {
		return "", errors.New("unterminated section header")
	}
	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" {
		return "", errors.New("empty section name")
	}
	if !keyRegex.MatchString(name) {
		return "", fmt.Errorf("invalid section name '%s'", name)
	}
	if name == "global" {
		return GlobalSection, nil
	}
	return name, nil
}

func parseAssignment(line string) (string, string, error) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", fmt.Errorf("expected 'key = value', got '%s'", line)
	}

	key := strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", errors.New("missing variable name")
	}
	if !keyRegex.MatchString(key) {
		return "", "", fmt.Errorf("invalid variable name '%s'", key)
	}

	value, err := parseValue(strings.TrimSpace(line[idx+1:]))
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

// parseValue unquotes a double quoted value or strips a trailing comment
// from a bare one.
func parseValue(raw string) (string, error) {
	if !strings.HasPrefix(raw, `"`) {
		if idx := strings.Index(raw, " #"); idx >= 0 {
			raw = raw[:idx]
		}
		return strings.TrimSpace(raw), nil
	}

	var b strings.Builder
	for i := 1; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case ch == '"':
			rest := strings.TrimSpace(raw[i+1:])
			if rest != "" && !strings.HasPrefix(rest, "#") && !strings.HasPrefix(rest, ";") {
				return "", fmt.Errorf("unexpected text after quoted value: '%s'", rest)
			}
			return b.String(), nil
		case ch == '\\' && i+1 < len(raw):
			i++
			switch raw[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(raw[i])
			}
		default:
			b.WriteByte(ch)
		}
	}
	return "", errors.New("unterminated quoted string")
}

// VariableValue returns the value of key in section, or "" when absent.
// Use GlobalSection for the unnamed section.
func (c *ConfigFile) VariableValue(section, key string) string {
	return c.sections[section][key]
}

// HasVariable reports whether key was defined in section.
func (c *ConfigFile) HasVariable(section, key string) bool {
	_, ok := c.sections[section][key]
	return ok
}

// VariableValueIn looks key up in section first and falls back to the
// global section. The second result reports whether either defined it.
func (c *ConfigFile) VariableValueIn(section, key string) (string, bool) {
	if c.HasVariable(section, key) {
		return c.VariableValue(section, key), true
	}
	if c.HasVariable(GlobalSection, key) {
		return c.VariableValue(GlobalSection, key), true
	}
	return "", false
}

// IsNotExist reports whether err means the configuration file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsParseError reports whether err carries a *ParseError.
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
