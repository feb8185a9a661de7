package finderctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/finderctl/internal/config"
	"github.com/aretw0/finderctl/internal/logging"
	"github.com/aretw0/finderctl/internal/steps/deps"
	"github.com/aretw0/finderctl/internal/steps/launch"
	"github.com/aretw0/finderctl/internal/steps/pyenv"
	"github.com/aretw0/finderctl/internal/steps/sysdep"
	"github.com/aretw0/finderctl/pkg/adapters/process"
	"github.com/aretw0/finderctl/pkg/domain"
	"github.com/aretw0/finderctl/pkg/ports"
)

// Version is the release version reported by the CLI.
var Version = "0.2.0"

// Runner is the high-level entry point for the finderctl library.
// It owns the ordered bootstrap sequence (system precondition, virtualenv,
// dependency install, UI launch) and executes it fail-fast: the first step
// error aborts the remainder and becomes the invocation's outcome.
type Runner struct {
	workDir     string
	profileName string
	configFile  string
	port        int
	portSet     bool
	exec        ports.Executor
	logger      *slog.Logger
	hooks       domain.LifecycleHooks
	steps       []domain.Step

	session *domain.Session
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithProfile selects a launch profile by name (default "streamlit").
func WithProfile(name string) Option {
	return func(r *Runner) {
		r.profileName = name
	}
}

// WithConfigFile sets the profile overlay file (default "finderctl.yaml",
// resolved against the work directory).
func WithConfigFile(path string) Option {
	return func(r *Runner) {
		r.configFile = path
	}
}

// WithPort pins the UI port, bypassing the environment override entirely.
func WithPort(port int) Option {
	return func(r *Runner) {
		r.port = port
		r.portSet = true
	}
}

// WithExecutor injects a custom process executor (used heavily in tests).
func WithExecutor(exec ports.Executor) Option {
	return func(r *Runner) {
		r.exec = exec
	}
}

// WithLogger sets a custom structured logger for the runner and its steps.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks for step transitions.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.hooks = hooks
	}
}

// WithSteps replaces the default step pipeline.
func WithSteps(steps ...domain.Step) Option {
	return func(r *Runner) {
		r.steps = steps
	}
}

// New initializes a Runner for the given work directory (the directory
// holding requirements.txt and the UI entrypoint). The effective port is
// resolved once, here: explicit WithPort wins, then the FINDER_UI_PORT
// variable, then the profile default. An unparseable variable falls back to
// the default with a warning rather than failing the run.
func New(workDir string, opts ...Option) (*Runner, error) {
	r := &Runner{
		profileName: config.DefaultProfile,
		configFile:  config.DefaultFile,
	}
	for _, opt := range opts {
		opt(r)
	}

	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("invalid work dir: %w", err)
	}
	r.workDir = absDir

	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	if r.exec == nil {
		r.exec = process.New(process.WithLogger(r.logger))
	}

	configPath := r.configFile
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(r.workDir, configPath)
	}
	profile, err := config.Resolve(r.profileName, configPath)
	if err != nil {
		return nil, err
	}

	if !r.portSet {
		settings, err := config.FromEnv()
		if err != nil {
			return nil, err
		}
		port, fellBack := settings.ResolvePort(profile.DefaultPort)
		if fellBack {
			r.logger.Warn("invalid FINDER_UI_PORT, using profile default",
				"value", settings.Port, "default", profile.DefaultPort)
		}
		r.port = port
	}

	r.session = &domain.Session{
		WorkDir: r.workDir,
		Profile: profile,
		Port:    r.port,
	}

	if r.steps == nil {
		r.steps = []domain.Step{
			sysdep.New(r.exec, sysdep.WithLogger(r.logger)),
			pyenv.New(r.exec, pyenv.WithLogger(r.logger)),
			deps.New(r.exec, deps.WithLogger(r.logger)),
			launch.New(r.exec, launch.WithLogger(r.logger)),
		}
	}
	return r, nil
}

// Profile returns the resolved launch profile.
func (r *Runner) Profile() domain.Profile { return r.session.Profile }

// Port returns the resolved listening port.
func (r *Runner) Port() int { return r.session.Port }

// Steps returns the pipeline step names in execution order.
func (r *Runner) Steps() []string {
	names := make([]string, len(r.steps))
	for i, s := range r.steps {
		names[i] = s.Name()
	}
	return names
}

// Run executes the bootstrap sequence. A step returning ErrStepSkipped is
// reported to the hooks as a skip and the run continues; any other error
// stops the pipeline immediately. Nothing created by earlier steps is rolled
// back on failure.
func (r *Runner) Run(ctx context.Context) error {
	for _, step := range r.steps {
		event := &domain.StepEvent{Step: step.Name()}
		if r.hooks.OnStepStart != nil {
			r.hooks.OnStepStart(ctx, event)
		}

		err := step.Run(ctx, r.session)
		if errors.Is(err, domain.ErrStepSkipped) {
			r.logger.Debug("step skipped", "step", step.Name(), "reason", err)
			if r.hooks.OnStepSkip != nil {
				r.hooks.OnStepSkip(ctx, &domain.StepEvent{Step: step.Name(), Reason: err.Error()})
			}
			continue
		}

		event = &domain.StepEvent{Step: step.Name(), Err: err}
		if r.hooks.OnStepEnd != nil {
			r.hooks.OnStepEnd(ctx, event)
		}
		if err != nil {
			return fmt.Errorf("step %s: %w", step.Name(), err)
		}
	}
	return nil
}
