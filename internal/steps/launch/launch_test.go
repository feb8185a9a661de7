package launch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/finderctl/internal/testutils"
	"github.com/aretw0/finderctl/pkg/domain"
)

func gradioProfile() domain.Profile {
	return domain.Profile{
		Name:        "gradio",
		Command:     domain.PlaceholderPython,
		Entrypoint:  "finder_ui.py",
		DefaultPort: 7861,
		Args:        []string{domain.PlaceholderEntrypoint, "--port", domain.PlaceholderPort, "--no-browser"},
	}
}

func streamlitProfile() domain.Profile {
	return domain.Profile{
		Name:        "streamlit",
		Command:     "streamlit",
		Entrypoint:  "finder_ui.py",
		DefaultPort: 8501,
		Args:        []string{"run", domain.PlaceholderEntrypoint, "--server.port", domain.PlaceholderPort, "--server.headless", "true"},
	}
}

func TestRender(t *testing.T) {
	t.Run("Python Placeholder Resolves To Venv Interpreter", func(t *testing.T) {
		sess := &domain.Session{
			WorkDir: t.TempDir(),
			Profile: gradioProfile(),
			Port:    7861,
		}
		sess.Python = domain.NewPythonEnv(filepath.Join(sess.WorkDir, ".venv"))

		inv, err := Render(sess)
		require.NoError(t, err)
		assert.Equal(t, sess.Python.Python, inv.Name)
		assert.Equal(t, []string{"finder_ui.py", "--port", "7861", "--no-browser"}, inv.Args)
	})

	t.Run("Command Resolves Inside Venv Bin", func(t *testing.T) {
		workDir := t.TempDir()
		py := domain.NewPythonEnv(filepath.Join(workDir, ".venv"))
		require.NoError(t, os.MkdirAll(py.BinDir, 0o755))
		script := filepath.Join(py.BinDir, "streamlit")
		require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))

		sess := &domain.Session{WorkDir: workDir, Profile: streamlitProfile(), Port: 8501, Python: py}

		inv, err := Render(sess)
		require.NoError(t, err)
		assert.Equal(t, script, inv.Name)
		assert.Equal(t, []string{"run", "finder_ui.py", "--server.port", "8501", "--server.headless", "true"}, inv.Args)
	})

	t.Run("Command Missing From Venv Falls Back To PATH Name", func(t *testing.T) {
		sess := &domain.Session{
			WorkDir: t.TempDir(),
			Profile: streamlitProfile(),
			Port:    8501,
		}
		sess.Python = domain.NewPythonEnv(filepath.Join(sess.WorkDir, ".venv"))

		inv, err := Render(sess)
		require.NoError(t, err)
		assert.Equal(t, "streamlit", inv.Name)
	})

	t.Run("No Environment Is An Error", func(t *testing.T) {
		_, err := Render(&domain.Session{Profile: gradioProfile()})
		assert.True(t, errors.Is(err, domain.ErrNoEnvironment))
	})
}

func TestStep_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Runs Foreground With Activated Env", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)

		sess := &domain.Session{WorkDir: t.TempDir(), Profile: gradioProfile(), Port: 9000}
		sess.Python = domain.NewPythonEnv(filepath.Join(sess.WorkDir, ".venv"))

		require.NoError(t, step.Run(ctx, sess))
		require.Len(t, exec.Calls, 1)
		call := exec.Calls[0]
		assert.Equal(t, sess.Python.Python, call.Name)
		assert.Contains(t, call.Args, "9000")
		assert.Contains(t, call.Env, "VIRTUAL_ENV="+sess.Python.Root)
	})

	t.Run("Profile Env Reaches The Child", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)

		profile := gradioProfile()
		profile.Env = map[string]string{"LLM_PROVIDER": "gemini"}
		sess := &domain.Session{WorkDir: t.TempDir(), Profile: profile, Port: 7861}
		sess.Python = domain.NewPythonEnv(filepath.Join(sess.WorkDir, ".venv"))

		require.NoError(t, step.Run(ctx, sess))
		require.Len(t, exec.Calls, 1)
		assert.Contains(t, exec.Calls[0].Env, "LLM_PROVIDER=gemini")
	})

	t.Run("Child Exit Code Propagates", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)

		sess := &domain.Session{WorkDir: t.TempDir(), Profile: gradioProfile(), Port: 7861}
		sess.Python = domain.NewPythonEnv(filepath.Join(sess.WorkDir, ".venv"))
		exec.RunErrs[sess.Python.Python] = &domain.ExitError{Code: 42}

		err := step.Run(ctx, sess)
		require.Error(t, err)
		assert.Equal(t, 42, domain.ExitCode(err))
	})
}
