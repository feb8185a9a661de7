package domain

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned when the requested profile name is neither a
// built-in nor declared in the configuration file.
var ErrProfileNotFound = errors.New("profile not found")

// ErrStepSkipped signals that a step decided not to run (e.g. no package
// manager on the host). It is reported as a skip, never as a failure.
var ErrStepSkipped = errors.New("step skipped")

// ErrNoEnvironment is returned when a step that needs the activated venv runs
// before the venv step populated the session.
var ErrNoEnvironment = errors.New("python environment not initialized")

// ExitError carries a subprocess exit code across the step boundary so that
// the host process can terminate with the same code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error chain to a process exit code: nil is 0, a wrapped
// ExitError surfaces its code, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var xe *ExitError
	if errors.As(err, &xe) {
		return xe.Code
	}
	return 1
}
