package sysdep

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/finderctl/internal/testutils"
	"github.com/aretw0/finderctl/pkg/domain"
)

func popplerProfile() domain.Profile {
	return domain.Profile{
		Name: "streamlit",
		Precondition: &domain.Precondition{
			Binary: "pdftotext",
			Packages: map[string]string{
				"apt-get": "poppler-utils",
				"brew":    "poppler",
			},
		},
	}
}

func TestStep_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("No Precondition Is A Skip", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)

		err := step.Run(ctx, &domain.Session{Profile: domain.Profile{Name: "gradio"}})
		assert.True(t, errors.Is(err, domain.ErrStepSkipped))
		assert.Empty(t, exec.Calls)
	})

	t.Run("Binary Already Present Is A Skip", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		exec.Paths["pdftotext"] = "/usr/bin/pdftotext"
		step := New(exec)

		err := step.Run(ctx, &domain.Session{Profile: popplerProfile()})
		assert.True(t, errors.Is(err, domain.ErrStepSkipped))
		assert.Empty(t, exec.Calls)
	})

	t.Run("No Package Manager Skips Without Error", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		step := New(exec)

		err := step.Run(ctx, &domain.Session{Profile: popplerProfile()})
		assert.True(t, errors.Is(err, domain.ErrStepSkipped))
		assert.Empty(t, exec.Calls, "must not attempt an install")
	})

	t.Run("Installs Via First Available Manager", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		exec.Paths["brew"] = "/opt/homebrew/bin/brew"
		step := New(exec)

		err := step.Run(ctx, &domain.Session{Profile: popplerProfile()})
		require.NoError(t, err)
		require.Len(t, exec.Calls, 1)
		assert.Equal(t, "brew", exec.Calls[0].Name)
		assert.Equal(t, []string{"install", "poppler"}, exec.Calls[0].Args)
	})

	t.Run("Manager Order Is Respected", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		exec.Paths["apt-get"] = "/usr/bin/apt-get"
		exec.Paths["brew"] = "/opt/homebrew/bin/brew"
		step := New(exec)

		err := step.Run(ctx, &domain.Session{Profile: popplerProfile()})
		require.NoError(t, err)
		require.Len(t, exec.Calls, 1)
		assert.Equal(t, "apt-get", exec.Calls[0].Name)
		assert.Equal(t, []string{"install", "-y", "poppler-utils"}, exec.Calls[0].Args)
	})

	t.Run("Install Failure Aborts", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		exec.Paths["apt-get"] = "/usr/bin/apt-get"
		exec.RunErrs["apt-get"] = errors.New("unable to locate package")
		step := New(exec)

		err := step.Run(ctx, &domain.Session{Profile: popplerProfile()})
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrStepSkipped))
	})

	t.Run("Manager Without Mapping Is A Skip", func(t *testing.T) {
		exec := testutils.NewFakeExecutor()
		exec.Paths["pacman"] = "/usr/bin/pacman"
		step := New(exec, WithManagers([]Manager{{Name: "pacman", InstallArgs: []string{"-S"}}}))

		err := step.Run(ctx, &domain.Session{Profile: popplerProfile()})
		assert.True(t, errors.Is(err, domain.ErrStepSkipped))
	})
}
