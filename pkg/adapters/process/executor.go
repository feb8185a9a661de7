package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/aretw0/finderctl/pkg/domain"
	"github.com/aretw0/finderctl/pkg/ports"
)

// Executor implements ports.Executor on top of os/exec.
// It is the single place where the engine touches real processes.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
	logger *slog.Logger
}

// Option configures the executor.
type Option func(*Executor)

// WithStdout sets the default stdout for streamed commands.
func WithStdout(w io.Writer) Option {
	return func(e *Executor) {
		e.stdout = w
	}
}

// WithStderr sets the default stderr for streamed commands.
func WithStderr(w io.Writer) Option {
	return func(e *Executor) {
		e.stderr = w
	}
}

// WithStdin sets the default stdin for streamed commands.
func WithStdin(r io.Reader) Option {
	return func(e *Executor) {
		e.stdin = r
	}
}

// WithLogger sets a structured logger; each invocation is logged at debug.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// New creates a process executor. By default output streams to the host's
// stdout/stderr and stdin is not forwarded.
func New(opts ...Option) *Executor {
	e := &Executor{
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the command in the foreground, streaming output.
func (e *Executor) Run(ctx context.Context, spec ports.Command) error {
	cmd := e.build(ctx, spec)

	cmd.Stdout = e.stdout
	if spec.Stdout != nil {
		cmd.Stdout = spec.Stdout
	}
	cmd.Stderr = e.stderr
	if spec.Stderr != nil {
		cmd.Stderr = spec.Stderr
	}
	cmd.Stdin = e.stdin
	if spec.Stdin != nil {
		cmd.Stdin = spec.Stdin
	}

	e.logger.Debug("exec", "cmd", spec.Name, "args", strings.Join(spec.Args, " "))
	return wrapExit(cmd.Run(), spec.Name)
}

// Capture executes the command and returns its trimmed stdout. Stderr is
// buffered and attached to the error for diagnostics.
func (e *Executor) Capture(ctx context.Context, spec ports.Command) (string, error) {
	cmd := e.build(ctx, spec)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logger.Debug("exec", "cmd", spec.Name, "args", strings.Join(spec.Args, " "))
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", wrapExit(fmt.Errorf("%w: %s", err, msg), spec.Name)
		}
		return "", wrapExit(err, spec.Name)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// LookPath resolves an executable on the host PATH.
func (e *Executor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (e *Executor) build(ctx context.Context, spec ports.Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		// Appended entries win on duplicate keys (os/exec keeps the last),
		// which is what lets PATH overrides activate the venv.
		cmd.Env = append(cmd.Environ(), spec.Env...)
	}
	return cmd
}

// wrapExit converts an *exec.ExitError into a domain.ExitError so the exit
// code survives wrapping on its way up to main.
func wrapExit(err error, name string) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &domain.ExitError{Code: ee.ExitCode(), Err: fmt.Errorf("%s: %w", name, err)}
	}
	return fmt.Errorf("%s: %w", name, err)
}
