package cli

import (
	"errors"
	"fmt"
)

const (
	ExitSuccess       = 0
	ExitOutputError   = 1
	ExitInternalError = 4
)

// OutputError reports that the report could not be written to stdout.
// CommandLine is the invocation rendered as a shell command.
type OutputError struct {
	CommandLine string
	Err         error
}

func (e *OutputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("argprint %s: %v", e.CommandLine, e.Err)
}

func (e *OutputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExitCode maps an error returned by Run to a semantic exit code.
// Unknown errors map to ExitInternalError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var outErr *OutputError
	if errors.As(err, &outErr) && outErr != nil {
		return ExitOutputError
	}
	return ExitInternalError
}
