package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteCommand(t *testing.T) {
	cmd := NewCompleteCommand()

	assert.Equal(t, "complete", cmd.Name)
	assert.NotEmpty(t, cmd.Description)
	assert.NotNil(t, cmd.Action)
}

func TestCompleteCommand(t *testing.T) {
	t.Run("should print one file suggestion per line", func(t *testing.T) {
		if _, err := exec.LookPath("bash"); err != nil {
			t.Skip("bash not available")
		}
		r := newAppRun(t)
		for _, name := range []string{"alpha.txt", "alpine.md", "beta.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(r.home, name), []byte("x"), 0o600))
		}

		err := r.run("complete", "al", "cat al")

		require.NoError(t, err)
		assert.Equal(t, "alpha.txt\nalpine.md\n", r.stdout.String())
	})

	t.Run("should require a partial word", func(t *testing.T) {
		r := newAppRun(t)

		err := r.run("complete")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "partial word is required")
	})
}
