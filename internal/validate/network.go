// Package validate provides network validation utilities for the s9s client,
// used when node, server and controller addresses are read from the command
// line or from configuration files.
//
// Implements host name and "host:port" validation using the
// go-playground/validator library.
package validate

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// NetworkAddress represents a validated "host:port" pair. Host may be a name
// or an IP address; IPv6 literals are stored without brackets.
type NetworkAddress struct {
	Host string `validate:"required"`
	Port int    `validate:"required,min=1,max=65535"`
}

// String returns the network address in "host:port" form, bracketing IPv6 hosts.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// ParseHostPort parses and validates a "host:port" address string. The host
// part is checked with HostNameFormat, the port with the validator range tags.
func ParseHostPort(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s'", portStr)
	}

	if err := HostNameFormat(host); err != nil {
		return nil, err
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("invalid port %d: must be between 1-65535", port)
	}

	return netAddr, nil
}

// IsIPAddress reports whether host is an IPv4 or IPv6 literal.
func IsIPAddress(host string) bool {
	return ValidateField(strings.Trim(host, "[]"), "ip") == nil
}

// ValidateField validates individual values against specified validation rules using
// the go-playground/validator library.
//
// Example: ValidateField("192.168.1.1", "required,ip")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
