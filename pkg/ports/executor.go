package ports

import (
	"context"
	"io"
)

// Command is a fully-resolved invocation request. Env entries are appended to
// the parent environment; on duplicate keys the appended value wins, which is
// how venv activation overrides PATH without mutating the parent process.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory ("" means inherit).
	Dir string

	// Env holds extra KEY=VALUE entries appended to the parent environment.
	Env []string

	// Stdout/Stderr/Stdin override the executor's defaults when non-nil.
	// Launch uses this to hand the terminal to the foreground UI process.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// Executor defines how the engine reaches the host system.
type Executor interface {
	// Run executes the command streaming its output, blocking until exit.
	// A nonzero exit is reported as a *domain.ExitError in the chain.
	Run(ctx context.Context, cmd Command) error

	// Capture executes the command and returns its trimmed stdout.
	Capture(ctx context.Context, cmd Command) (string, error)

	// LookPath reports the absolute path of an executable resolvable on the
	// host PATH, or an error when it is not.
	LookPath(name string) (string, error)
}
