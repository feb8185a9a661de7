package domain

import (
	"context"
	"path/filepath"
	"runtime"
)

// Session captures the runtime state of one bootstrap invocation. It is
// created by the engine and threaded through every step; steps communicate
// exclusively by reading and enriching it.
type Session struct {
	// WorkDir is the directory containing the manifest and UI entrypoint.
	// All relative paths (venv dir, requirements file) resolve against it.
	WorkDir string

	// Profile is the resolved launch profile for this invocation.
	Profile Profile

	// Port is the listening port computed before the run starts
	// (override variable or profile default).
	Port int

	// Python is the activated environment. Nil until the venv step has run;
	// later steps must treat a nil value as a pipeline ordering bug.
	Python *PythonEnv
}

// Step is a single stage of the bootstrap sequence. Steps are executed in
// order and the first error aborts the remainder of the run.
type Step interface {
	// Name identifies the step in logs and status output.
	Name() string

	// Run executes the step against the session. Returning ErrStepSkipped
	// (wrapped or bare) marks the step as skipped rather than failed.
	Run(ctx context.Context, session *Session) error
}

// PythonEnv is the reified form of virtualenv activation: instead of mutating
// the ambient process environment, the resolved paths are carried as a value
// and applied per subprocess.
type PythonEnv struct {
	// Root is the environment directory (e.g. "<workdir>/.venv").
	Root string

	// BinDir is Root/bin (Root/Scripts on Windows).
	BinDir string

	// Python is the absolute path of the environment's interpreter.
	Python string
}

// NewPythonEnv derives the activation paths for a virtual environment rooted
// at root. It performs no filesystem checks; creation is the venv step's job.
func NewPythonEnv(root string) *PythonEnv {
	bin := filepath.Join(root, "bin")
	python := filepath.Join(bin, "python")
	if runtime.GOOS == "windows" {
		bin = filepath.Join(root, "Scripts")
		python = filepath.Join(bin, "python.exe")
	}
	return &PythonEnv{Root: root, BinDir: bin, Python: python}
}

// Environ returns the environment entries that activate the venv for a child
// process: VIRTUAL_ENV plus a PATH with BinDir prepended to parentPath.
// The caller supplies the parent PATH so this stays a pure computation.
func (p *PythonEnv) Environ(parentPath string) []string {
	path := p.BinDir
	if parentPath != "" {
		path += string(filepath.ListSeparator) + parentPath
	}
	return []string{
		"VIRTUAL_ENV=" + p.Root,
		"PATH=" + path,
	}
}
