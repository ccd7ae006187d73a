package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Run("missing config file returns defaults", func(t *testing.T) {
		workDir := t.TempDir()
		cfg, err := Load(filepath.Join(workDir, "nope.yaml"), workDir)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(workDir, "prompts"), cfg.PromptsPath())
		assert.Equal(t, filepath.Join(workDir, "TO-DOS.md"), cfg.TodoPath())
		assert.Equal(t, filepath.Join(workDir, "whats-next.md"), cfg.HandoffPath())
		assert.NotEmpty(t, cfg.Host.Command)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("", "/work")
		require.NoError(t, err)
		assert.Equal(t, "prompts", cfg.PromptsDir)
	})
}

func TestLoad_PartialFile(t *testing.T) {
	workDir := t.TempDir()
	path := filepath.Join(workDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
prompts_dir: queue
ignore:
  - "*draft*"
host:
  command: "my-agent run {{ .File | shq }}"
`), 0o644))

	cfg, err := Load(path, workDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(workDir, "queue"), cfg.PromptsPath())
	assert.Equal(t, []string{"*draft*"}, cfg.Ignore)
	assert.Equal(t, "my-agent run {{ .File | shq }}", cfg.Host.Command)

	// Unset fields keep their defaults.
	assert.Equal(t, "TO-DOS.md", cfg.TodoFile)
	assert.NotEmpty(t, cfg.Host.BatchCommand)
}

func TestLoad_InvalidConfig(t *testing.T) {
	workDir := t.TempDir()
	path := filepath.Join(workDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
host:
  command: "{{ .Unclosed"
`), 0o644))

	_, err := Load(path, workDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host.command")
}

func TestConfig_AbsolutePathsPassThrough(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkDir = "/work"
	cfg.TodoFile = "/elsewhere/TO-DOS.md"

	assert.Equal(t, "/elsewhere/TO-DOS.md", cfg.TodoPath())
}
