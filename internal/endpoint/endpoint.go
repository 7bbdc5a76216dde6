// Package endpoint resolves controller URLs of the form
// [protocol://]host[:port][/path] into their components.
//
// Defaults are applied lazily by the accessor methods rather than at parse
// time, so an Endpoint remembers exactly what the user wrote and the
// precedence chain can tell "not given" apart from "given as the default".
package endpoint

import (
	"regexp"
	"strconv"

	"github.com/concave-dev/s9s/internal/config"
)

var (
	schemeRegex   = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9+.-]*)://(.*)$`)
	hostPortRegex = regexp.MustCompile(`^(\[[^\]]+\]|[^:/\[\]]+):([0-9]+)(/.*)?$`)
)

// Endpoint is a decomposed controller URL. Zero fields mean "not given".
type Endpoint struct {
	Protocol string
	Host     string
	Port     int
	Path     string
}

// Resolve decomposes url into an Endpoint.
func Resolve(url string) Endpoint {
	var e Endpoint
	e.Set(url)
	return e
}

// Set replaces the endpoint with the decomposition of url. The degenerate
// inputs "http://" and "https://" (and the empty string) leave the endpoint
// unchanged; older clients wrote them into config files. Set reports whether
// the endpoint was replaced.
func (e *Endpoint) Set(url string) bool {
	if IsDegenerate(url) {
		return false
	}

	var resolved Endpoint
	remainder := url

	if m := schemeRegex.FindStringSubmatch(remainder); m != nil {
		resolved.Protocol = m[1]
		remainder = m[2]
	}

	if m := hostPortRegex.FindStringSubmatch(remainder); m != nil {
		if port, err := strconv.Atoi(m[2]); err == nil {
			resolved.Host = m[1]
			resolved.Port = port
			resolved.Path = m[3]
			*e = resolved
			return true
		}
	}

	resolved.Host = remainder
	*e = resolved
	return true
}

// IsDegenerate reports whether url carries no controller at all: the empty
// string or a bare "http://" or "https://".
func IsDegenerate(url string) bool {
	switch url {
	case "", "http://", "https://":
		return true
	}
	return false
}

// IsZero reports whether nothing was resolved into the endpoint.
func (e Endpoint) IsZero() bool {
	return e == Endpoint{}
}

// EffectiveProtocol returns the protocol, defaulting to https.
func (e Endpoint) EffectiveProtocol() string {
	if e.Protocol == "" {
		return config.DefaultControllerProtocol
	}
	return e.Protocol
}

// EffectiveHost returns the host, defaulting to localhost.
func (e Endpoint) EffectiveHost() string {
	if e.Host == "" {
		return config.DefaultControllerHost
	}
	return e.Host
}

// EffectivePort returns the port, defaulting to the Cmon RPC port.
func (e Endpoint) EffectivePort() int {
	if e.Port <= 0 {
		return config.DefaultControllerPort
	}
	return e.Port
}

// String serializes the endpoint in the form Resolve accepts, omitting the
// parts that were not given. Resolve(e.String()) == e for every endpoint
// produced by Resolve.
func (e Endpoint) String() string {
	s := ""
	if e.Protocol != "" {
		s = e.Protocol + "://"
	}
	s += e.Host
	if e.Port > 0 {
		s += ":" + strconv.Itoa(e.Port)
	}
	return s + e.Path
}

// BaseURL returns the fully defaulted URL used to reach the controller.
func (e Endpoint) BaseURL() string {
	return e.EffectiveProtocol() + "://" + e.EffectiveHost() + ":" +
		strconv.Itoa(e.EffectivePort()) + e.Path
}
