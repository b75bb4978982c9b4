package cli

import "fmt"

// Exit codes.
const (
	ExitSuccess    = 0 // Success
	ExitGeneral    = 1 // General/unknown error
	ExitConfig     = 2 // Invalid YAML or config values
	ExitScanFailed = 3 // No requested directory could be scanned, or the scan was interrupted
	ExitNotFound   = 4 // No interpreter or version found
)

// ExitCoder is an interface for errors that carry a custom exit code and message.
type ExitCoder interface {
	ExitCode() int
	Message() string
}

type cliError struct {
	code    int
	message string
	err     error
}

// NewCLIError creates a new cliError with the given code and message.
func NewCLIError(code int, message string) *cliError {
	return &cliError{
		code:    code,
		message: message,
	}
}

// WrapError creates a new cliError wrapping an underlying error.
func WrapError(code int, message string, err error) *cliError {
	return &cliError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Error implements the error interface.
func (e *cliError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

// ExitCode returns the exit code for this error.
func (e *cliError) ExitCode() int {
	return e.code
}

// Message returns the formatted message for display.
func (e *cliError) Message() string {
	return fmt.Sprintf("Error: %s\n", e.Error())
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *cliError) Unwrap() error {
	return e.err
}

// ErrConfig creates a configuration error.
func ErrConfig(message string, err error) *cliError {
	return WrapError(ExitConfig, message, err)
}

// ErrScanFailed creates a scan failure error.
func ErrScanFailed(message string, err error) *cliError {
	return WrapError(ExitScanFailed, message, err)
}

// ErrNotFound creates a not found error.
func ErrNotFound(message string) *cliError {
	return NewCLIError(ExitNotFound, message)
}
