// Package validate provides option value validation utilities for the s9s client.
//
// This file implements common validation patterns shared by the option
// setters, the node list parser and the global option checks. All functions
// leverage the go-playground/validator library for standardized behavior.
//
// VALIDATION UTILITIES:
//   - Port validation: Standard port range checking (1-65535)
//   - Enumerations: One-of checks for options such as --color
package validate

import (
	"fmt"
	"strings"
)

// ValidatePortRange validates that a port number is within the valid range (1-65535).
// Port 0 is rejected since a client always needs a concrete port to connect to.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateOneOf validates that value is one of the allowed words. An empty
// value is accepted so that unset options pass.
func ValidateOneOf(value string, allowed ...string) error {
	if err := ValidateField(value, "omitempty,oneof="+strings.Join(allowed, " ")); err != nil {
		return fmt.Errorf("'%s' is invalid, expected one of: %s", value, strings.Join(allowed, ", "))
	}
	return nil
}
