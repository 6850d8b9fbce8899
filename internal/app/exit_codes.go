package app

import (
	"errors"
	"fmt"
)

// exit codes returned by the promptdeck binary
const (
	ExitOK      = 0
	ExitError   = 1
	ExitMissing = 3 // --strict and placeholders remain
)

// ExitCodeError carries a specific process exit code up to main
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
