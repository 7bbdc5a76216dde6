// Package netutil classifies network errors returned while talking to the
// Cmon controller.
//
// Errors are classified by type (net.OpError, net.DNSError, syscall errno)
// rather than by matching message strings, so the checks hold across
// operating systems and wrapped errors.
package netutil

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// IsConnectionRefusedError reports whether err means nothing listens on the
// controller address.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}

// IsTimeoutError reports whether err is a timeout, either a net.Error
// timeout or an expired context deadline.
func IsTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsHostNotFoundError reports whether the controller host name did not
// resolve.
func IsHostNotFoundError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// IsConnectionError reports whether err happened while establishing or
// keeping the connection, as opposed to an error reported by the
// controller itself.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if IsConnectionRefusedError(err) || IsTimeoutError(err) || IsHostNotFoundError(err) {
		return true
	}
	for _, errno := range []syscall.Errno{syscall.ECONNRESET, syscall.EHOSTUNREACH, syscall.ENETUNREACH} {
		if errors.Is(err, errno) {
			return true
		}
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
