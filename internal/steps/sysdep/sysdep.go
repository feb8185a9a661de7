// Package sysdep implements the best-effort system precondition step: if the
// active profile names a required binary (e.g. pdftotext) and the host has a
// known package manager, the providing package is installed when the binary
// is absent. A host without any known manager skips the step entirely.
package sysdep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/finderctl/internal/logging"
	"github.com/aretw0/finderctl/pkg/domain"
	"github.com/aretw0/finderctl/pkg/ports"
)

// Manager describes one host package manager the step knows how to drive.
type Manager struct {
	Name        string
	InstallArgs []string
}

// Defaults returns the supported package managers, probed in order.
func Defaults() []Manager {
	return []Manager{
		{Name: "apt-get", InstallArgs: []string{"install", "-y"}},
		{Name: "dnf", InstallArgs: []string{"install", "-y"}},
		{Name: "brew", InstallArgs: []string{"install"}},
	}
}

// Step checks and installs the profile's system precondition.
type Step struct {
	exec     ports.Executor
	logger   *slog.Logger
	managers []Manager
}

// Option configures the step.
type Option func(*Step)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Step) {
		s.logger = logger
	}
}

// WithManagers overrides the probed package managers.
func WithManagers(managers []Manager) Option {
	return func(s *Step) {
		s.managers = managers
	}
}

// New creates the precondition step.
func New(exec ports.Executor, opts ...Option) *Step {
	s := &Step{
		exec:     exec,
		logger:   logging.NewNop(),
		managers: Defaults(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Step) Name() string { return "sysdep" }

// Run installs the profile's precondition binary when missing. Absence of a
// package manager is a skip, not a failure; a failing install aborts the run.
func (s *Step) Run(ctx context.Context, session *domain.Session) error {
	pre := session.Profile.Precondition
	if pre == nil {
		return fmt.Errorf("%w: profile declares no system precondition", domain.ErrStepSkipped)
	}

	if path, err := s.exec.LookPath(pre.Binary); err == nil {
		s.logger.Debug("precondition present", "binary", pre.Binary, "path", path)
		return fmt.Errorf("%w: %s already installed", domain.ErrStepSkipped, pre.Binary)
	}

	mgr, ok := s.detect()
	if !ok {
		s.logger.Debug("no known package manager, skipping precondition", "binary", pre.Binary)
		return fmt.Errorf("%w: no package manager available", domain.ErrStepSkipped)
	}

	pkg := pre.PackageFor(mgr.Name)
	if pkg == "" {
		s.logger.Debug("no package mapping for manager", "manager", mgr.Name)
		return fmt.Errorf("%w: no %s package mapping", domain.ErrStepSkipped, mgr.Name)
	}

	s.logger.Info("installing system dependency", "package", pkg, "manager", mgr.Name)
	err := s.exec.Run(ctx, ports.Command{
		Name: mgr.Name,
		Args: append(append([]string{}, mgr.InstallArgs...), pkg),
	})
	if err != nil {
		return fmt.Errorf("install %s via %s: %w", pkg, mgr.Name, err)
	}
	return nil
}

// detect returns the first package manager resolvable on PATH.
func (s *Step) detect() (Manager, bool) {
	for _, mgr := range s.managers {
		if _, err := s.exec.LookPath(mgr.Name); err == nil {
			return mgr, true
		}
	}
	return Manager{}, false
}
