// Package launch implements the final step: rendering the profile's command
// line (port, entrypoint, interpreter placeholders) and running the UI in the
// foreground. The child's exit code is the invocation's exit code.
package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/finderctl/internal/logging"
	"github.com/aretw0/finderctl/pkg/domain"
	"github.com/aretw0/finderctl/pkg/ports"
)

// Step launches the UI process.
type Step struct {
	exec   ports.Executor
	logger *slog.Logger
}

// Option configures the step.
type Option func(*Step)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Step) {
		s.logger = logger
	}
}

// New creates the launch step.
func New(exec ports.Executor, opts ...Option) *Step {
	s := &Step{
		exec:   exec,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Step) Name() string { return "launch" }

// Run blocks until the UI process exits. Errors from the child carry its
// exit code as a *domain.ExitError through the wrap chain.
func (s *Step) Run(ctx context.Context, session *domain.Session) error {
	py := session.Python
	if py == nil {
		return domain.ErrNoEnvironment
	}

	cmd, err := Render(session)
	if err != nil {
		return err
	}

	env := py.Environ(os.Getenv("PATH"))
	for k, v := range session.Profile.Env {
		env = append(env, k+"="+v)
	}

	s.logger.Info("launching UI",
		"profile", session.Profile.Name,
		"port", session.Port,
		"cmd", cmd.Name,
	)
	err = s.exec.Run(ctx, ports.Command{
		Name:   cmd.Name,
		Args:   cmd.Args,
		Dir:    session.WorkDir,
		Env:    env,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("ui process: %w", err)
	}
	return nil
}

// Invocation is a rendered launch command line.
type Invocation struct {
	Name string
	Args []string
}

// Render expands the profile's command and argument templates against the
// session. The command resolves inside the venv bin directory when present
// there, so "streamlit" finds the venv-installed console script even though
// the parent PATH never changes.
func Render(session *domain.Session) (Invocation, error) {
	py := session.Python
	if py == nil {
		return Invocation{}, domain.ErrNoEnvironment
	}
	p := session.Profile

	name := p.Command
	switch {
	case name == domain.PlaceholderPython:
		name = py.Python
	case !filepath.IsAbs(name):
		if candidate := filepath.Join(py.BinDir, name); exists(candidate) {
			name = candidate
		}
	}

	rep := strings.NewReplacer(
		domain.PlaceholderPort, strconv.Itoa(session.Port),
		domain.PlaceholderPython, py.Python,
		domain.PlaceholderEntrypoint, p.Entrypoint,
	)

	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = rep.Replace(a)
	}

	if name == "" {
		return Invocation{}, fmt.Errorf("profile %q has no launch command", p.Name)
	}
	return Invocation{Name: name, Args: args}, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
