package deps

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/finderctl/internal/testutils"
	"github.com/aretw0/finderctl/pkg/domain"
)

func session(t *testing.T, withManifest bool) *domain.Session {
	t.Helper()
	workDir := t.TempDir()
	if withManifest {
		require.NoError(t, os.WriteFile(
			filepath.Join(workDir, "requirements.txt"),
			[]byte("streamlit\npypdf\n"), 0o644))
	}
	return &domain.Session{
		WorkDir: workDir,
		Python:  domain.NewPythonEnv(filepath.Join(workDir, ".venv")),
	}
}

func TestStep_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Upgrades Pip Then Installs Manifest", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)
		sess := session(t, true)

		require.NoError(t, step.Run(ctx, sess))

		lines := exec.CommandLines()
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "-m pip install --upgrade pip")
		assert.Contains(t, lines[1], "-m pip install -r requirements.txt")
		// Both invocations go through the venv interpreter.
		assert.True(t, strings.HasPrefix(lines[0], sess.Python.Python))
		assert.True(t, strings.HasPrefix(lines[1], sess.Python.Python))
	})

	t.Run("Subprocess Env Activates The Venv", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)
		sess := session(t, true)

		require.NoError(t, step.Run(ctx, sess))

		require.NotEmpty(t, exec.Calls)
		env := strings.Join(exec.Calls[0].Env, "\n")
		assert.Contains(t, env, "VIRTUAL_ENV="+sess.Python.Root)
		assert.Contains(t, env, "PATH="+sess.Python.BinDir)
	})

	t.Run("Missing Manifest Fails Before Any Install", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)

		err := step.Run(ctx, session(t, false))
		require.Error(t, err)
		assert.Empty(t, exec.Calls)
	})

	t.Run("No Environment Is A Pipeline Bug", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)

		err := step.Run(ctx, &domain.Session{WorkDir: t.TempDir()})
		assert.True(t, errors.Is(err, domain.ErrNoEnvironment))
	})

	t.Run("Pip Failure Propagates", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		sess := session(t, true)
		exec.RunErrs[sess.Python.Python] = errors.New("no matching distribution")
		step := New(exec)

		err := step.Run(ctx, sess)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no matching distribution")
	})
}
