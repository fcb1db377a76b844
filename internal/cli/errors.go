package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

func userErrorf(format string, args ...any) error {
	return userError(fmt.Errorf(format, args...))
}

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// userErrors are the sentinels caused by bad input rather than a broken system.
var userErrors = []error{
	types.ErrInvalidID,
	types.ErrDuplicateID,
	types.ErrInvalidTitle,
	types.ErrInvalidName,
	types.ErrInvalidDate,
	types.ErrInvalidTime,
	types.ErrDefaultFolder,
	types.ErrLastCategory,
	types.ErrCodeTaken,
	types.ErrInvalidCode,
	types.ErrQuotaExceeded,
}

// classify tags err with an exit code unless it already carries one.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return err
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return userError(err)
		}
	}
	return sysError(err)
}

// exitCode returns the exit code for err. Errors without one come from flag
// and argument parsing and count as user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
