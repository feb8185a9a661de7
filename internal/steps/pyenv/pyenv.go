// Package pyenv implements the virtual environment step. It creates the venv
// when absent (idempotent: an existing environment is reused untouched) and
// publishes the activation paths on the session as an explicit value instead
// of mutating the ambient process environment.
package pyenv

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/finderctl/internal/config"
	"github.com/aretw0/finderctl/internal/logging"
	"github.com/aretw0/finderctl/pkg/domain"
	"github.com/aretw0/finderctl/pkg/ports"
)

// marker is the file python -m venv always writes at the environment root;
// its presence is what makes re-runs a no-op.
const marker = "pyvenv.cfg"

// Step creates (or reuses) the virtual environment.
type Step struct {
	exec   ports.Executor
	logger *slog.Logger
	python string
	dir    string
}

// Option configures the step.
type Option func(*Step)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Step) {
		s.logger = logger
	}
}

// WithInterpreter overrides the interpreter used to create the venv.
func WithInterpreter(python string) Option {
	return func(s *Step) {
		s.python = python
	}
}

// WithDir overrides the environment directory name (relative to the workdir).
func WithDir(dir string) Option {
	return func(s *Step) {
		s.dir = dir
	}
}

// New creates the venv step.
func New(exec ports.Executor, opts ...Option) *Step {
	s := &Step{
		exec:   exec,
		logger: logging.NewNop(),
		python: config.DefaultPython,
		dir:    config.VenvDir,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Step) Name() string { return "venv" }

// Run ensures the environment exists and records its activation paths on the
// session. Subsequent steps run against session.Python, never the system
// interpreter.
func (s *Step) Run(ctx context.Context, session *domain.Session) error {
	root := filepath.Join(session.WorkDir, s.dir)

	if _, err := os.Stat(filepath.Join(root, marker)); err == nil {
		s.logger.Debug("reusing existing environment", "root", root)
		session.Python = domain.NewPythonEnv(root)
		return nil
	}

	if _, err := s.exec.LookPath(s.python); err != nil {
		return fmt.Errorf("interpreter %q not found: %w", s.python, err)
	}

	s.logger.Info("creating virtual environment", "root", root)
	err := s.exec.Run(ctx, ports.Command{
		Name: s.python,
		Args: []string{"-m", "venv", root},
		Dir:  session.WorkDir,
	})
	if err != nil {
		return fmt.Errorf("create venv: %w", err)
	}

	session.Python = domain.NewPythonEnv(root)
	return nil
}
