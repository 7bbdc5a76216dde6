package netutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestIsConnectionRefusedError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	_, dialErr := net.DialTimeout("tcp", addr, time.Second)
	if dialErr == nil {
		t.Skip("port was reused before dialing")
	}

	if !IsConnectionRefusedError(dialErr) {
		t.Errorf("IsConnectionRefusedError(%v) = false, want true", dialErr)
	}
	if !IsConnectionError(fmt.Errorf("ping: %w", dialErr)) {
		t.Errorf("IsConnectionError should see through wrapping")
	}
}

func TestClassification(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
	reset := &net.OpError{Op: "read", Net: "tcp", Err: os.NewSyscallError("read", syscall.ECONNRESET)}
	dns := &net.DNSError{Err: "no such host", Name: "cmon.invalid", IsNotFound: true}

	tests := []struct {
		name       string
		err        error
		refused    bool
		timeout    bool
		hostNF     bool
		connection bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("controller said no")},
		{name: "refused", err: refused, refused: true, connection: true},
		{name: "reset", err: reset, connection: true},
		{name: "dns", err: dns, hostNF: true, connection: true},
		{name: "deadline", err: fmt.Errorf("request: %w", context.DeadlineExceeded), timeout: true, connection: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConnectionRefusedError(tt.err); got != tt.refused {
				t.Errorf("IsConnectionRefusedError() = %v, want %v", got, tt.refused)
			}
			if got := IsTimeoutError(tt.err); got != tt.timeout {
				t.Errorf("IsTimeoutError() = %v, want %v", got, tt.timeout)
			}
			if got := IsHostNotFoundError(tt.err); got != tt.hostNF {
				t.Errorf("IsHostNotFoundError() = %v, want %v", got, tt.hostNF)
			}
			if got := IsConnectionError(tt.err); got != tt.connection {
				t.Errorf("IsConnectionError() = %v, want %v", got, tt.connection)
			}
		})
	}
}
