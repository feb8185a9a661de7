// Package deps implements the dependency installation step: pip upgrades
// itself, then installs exactly what the requirements manifest declares.
// The step never edits or filters the manifest.
package deps

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

// Step installs the manifest into the active environment.
type Step struct {
	exec     ports.Executor
	logger   *slog.Logger
	manifest string
}

// Option configures the step.
type Option func(*Step)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Step) {
		s.logger = logger
	}
}

// WithManifest overrides the manifest filename (relative to the workdir).
func WithManifest(name string) Option {
	return func(s *Step) {
		s.manifest = name
	}
}

// New creates the dependency install step.
func New(exec ports.Executor, opts ...Option) *Step {
	s := &Step{
		exec:     exec,
		logger:   logging.NewNop(),
		manifest: config.ManifestFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Step) Name() string { return "deps" }

// Run upgrades pip and installs the manifest, both through the venv
// interpreter so nothing touches the system site-packages.
func (s *Step) Run(ctx context.Context, session *domain.Session) error {
	py := session.Python
	if py == nil {
		return domain.ErrNoEnvironment
	}

	manifest := filepath.Join(session.WorkDir, s.manifest)
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("manifest %s: %w", s.manifest, err)
	}

	env := py.Environ(os.Getenv("PATH"))

	s.logger.Debug("upgrading pip")
	err := s.exec.Run(ctx, ports.Command{
		Name: py.Python,
		Args: []string{"-m", "pip", "install", "--upgrade", "pip"},
		Dir:  session.WorkDir,
		Env:  env,
	})
	if err != nil {
		return fmt.Errorf("upgrade pip: %w", err)
	}

	s.logger.Info("installing requirements", "manifest", s.manifest)
	err = s.exec.Run(ctx, ports.Command{
		Name: py.Python,
		Args: []string{"-m", "pip", "install", "-r", s.manifest},
		Dir:  session.WorkDir,
		Env:  env,
	})
	if err != nil {
		return fmt.Errorf("install requirements: %w", err)
	}
	return nil
}
