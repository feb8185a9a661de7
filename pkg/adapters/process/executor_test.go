package process

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/finderctl/pkg/domain"
	"github.com/aretw0/finderctl/pkg/ports"
)

func TestExecutor_Capture(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}

	e := New()

	t.Run("Returns Trimmed Stdout", func(t *testing.T) {
		out, err := e.Capture(context.Background(), ports.Command{
			Name: "sh",
			Args: []string{"-c", "echo hello"},
		})
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("Attaches Stderr To Error", func(t *testing.T) {
		_, err := e.Capture(context.Background(), ports.Command{
			Name: "sh",
			Args: []string{"-c", "echo boom >&2; exit 3"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
		assert.Equal(t, 3, domain.ExitCode(err))
	})
}

func TestExecutor_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}

	t.Run("Streams To Configured Writer", func(t *testing.T) {
		var buf bytes.Buffer
		e := New(WithStdout(&buf))

		err := e.Run(context.Background(), ports.Command{
			Name: "sh",
			Args: []string{"-c", "echo streamed"},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "streamed")
	})

	t.Run("Nonzero Exit Becomes ExitError", func(t *testing.T) {
		e := New(WithStdout(&bytes.Buffer{}), WithStderr(&bytes.Buffer{}))

		err := e.Run(context.Background(), ports.Command{
			Name: "sh",
			Args: []string{"-c", "exit 7"},
		})
		require.Error(t, err)

		var xe *domain.ExitError
		require.True(t, errors.As(err, &xe))
		assert.Equal(t, 7, xe.Code)
	})

	t.Run("Extra Env Entries Reach The Child", func(t *testing.T) {
		var buf bytes.Buffer
		e := New(WithStdout(&buf))

		err := e.Run(context.Background(), ports.Command{
			Name: "sh",
			Args: []string{"-c", "echo $FINDERCTL_TEST_VALUE"},
			Env:  []string{"FINDERCTL_TEST_VALUE=activated"},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "activated")
	})
}

func TestExecutor_LookPath(t *testing.T) {
	e := New()

	_, err := e.LookPath("definitely-not-a-real-binary-finderctl")
	assert.Error(t, err)
}
