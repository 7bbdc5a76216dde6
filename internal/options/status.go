package options

import "fmt"

// ExitStatus is the process exit code of an s9s invocation.
type ExitStatus int

const (
	Ok              ExitStatus = 0
	JobFailed       ExitStatus = 1
	Failed          ExitStatus = 2
	AccessDenied    ExitStatus = 3
	NotFound        ExitStatus = 4
	ConnectionError ExitStatus = 5
	BadOptions      ExitStatus = 6
)

var statusNames = map[ExitStatus]string{
	Ok:              "ok",
	JobFailed:       "job failed",
	Failed:          "failed",
	AccessDenied:    "access denied",
	NotFound:        "not found",
	ConnectionError: "connection error",
	BadOptions:      "bad options",
}

func (s ExitStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ExitStatus(%d)", int(s))
}

// Error carries the message and exit status recorded by a failed parse or
// request. It is what Options.Err returns.
type Error struct {
	Status  ExitStatus
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// SetExitStatus records status unless a non-Ok status was already recorded.
// The first failure decides the exit code.
func (o *Options) SetExitStatus(status ExitStatus) {
	if o.exitStatus == Ok {
		o.exitStatus = status
	}
}

// ExitStatus returns the recorded status.
func (o *Options) ExitStatus() ExitStatus {
	return o.exitStatus
}

// SetError records a failure message and its exit status. As with
// SetExitStatus the first message is kept.
func (o *Options) SetError(status ExitStatus, format string, args ...any) {
	if o.errorMessage == "" {
		o.errorMessage = fmt.Sprintf(format, args...)
	}
	o.SetExitStatus(status)
}

// ErrorString returns the recorded failure message.
func (o *Options) ErrorString() string {
	return o.errorMessage
}

// Err returns the recorded failure as an *Error, or nil when nothing failed.
func (o *Options) Err() error {
	if o.exitStatus == Ok {
		return nil
	}
	return &Error{Status: o.exitStatus, Message: o.errorMessage}
}
