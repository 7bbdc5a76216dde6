// Package validate provides input validation utilities for the s9s client.
//
// Implements the format rules for host names appearing in --nodes,
// --servers, --master and --slave arguments. The rules are deliberately
// looser than RFC 1123: Cmon accepts underscores and mixed case in host
// names coming from cloud inventories.

package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var hostNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)

// HostNameFormat validates a host name or IP address literal.
// Allowed characters are [A-Za-z0-9_.:-]; names may not start or end with
// a hyphen or a dot.
func HostNameFormat(name string) error {
	if name == "" {
		return fmt.Errorf("host name cannot be empty")
	}

	if IsIPAddress(name) {
		return nil
	}

	if !hostNameRegex.MatchString(name) {
		return fmt.Errorf("host name '%s' must contain only letters, numbers, dots (.), hyphens (-), and underscores (_)", name)
	}

	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, ".") ||
		strings.HasSuffix(name, "-") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("host name '%s' cannot start or end with hyphen (-) or dot (.)", name)
	}

	return nil
}
