// Package config handles configuration loading and validation for promptq.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Paths are relative to the
// working directory unless absolute.
type Config struct {
	PromptsDir  string   `yaml:"prompts_dir"`  // pending prompt files
	TodoFile    string   `yaml:"todo_file"`    // append-only todo log
	HandoffFile string   `yaml:"handoff_file"` // regenerated handoff document
	Ignore      []string `yaml:"ignore"`       // filename globs hidden from the store
	Host        Host     `yaml:"host"`

	// WorkDir is set by the caller, not from the config file.
	WorkDir string `yaml:"-"`
}

// Host configures the external host runtime handoff. Commands are Go
// templates rendered per prompt; promptq only produces the command line,
// the host does everything else.
type Host struct {
	// Command runs one prompt. Variables: .File (path), .Prompt (raw body).
	Command string `yaml:"command"`
	// BatchCommand runs a parallel batch in a single handoff.
	// Variables: .Files (paths), .Dir (working directory).
	BatchCommand string `yaml:"batch_command"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PromptsDir:  "prompts",
		TodoFile:    "TO-DOS.md",
		HandoffFile: "whats-next.md",
		Host: Host{
			Command:      "claude -p {{ .Prompt | shq }}",
			BatchCommand: "claude -p {{ printf \"Run these prompt files in parallel: %s\" (join .Files \", \") | shq }}",
		},
	}
}

// Load reads configuration from the given path and anchors it at workDir.
// If configPath is empty or doesn't exist, defaults are returned.
func Load(configPath, workDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.WorkDir = workDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set workDir since Unmarshal may have cleared it
			cfg.WorkDir = workDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.PromptsDir == "" {
		c.PromptsDir = def.PromptsDir
	}
	if c.TodoFile == "" {
		c.TodoFile = def.TodoFile
	}
	if c.HandoffFile == "" {
		c.HandoffFile = def.HandoffFile
	}
	if c.Host.Command == "" {
		c.Host.Command = def.Host.Command
	}
	if c.Host.BatchCommand == "" {
		c.Host.BatchCommand = def.Host.BatchCommand
	}
}

// PromptsPath returns the absolute pending prompt directory.
func (c *Config) PromptsPath() string { return c.abs(c.PromptsDir) }

// TodoPath returns the absolute todo log path.
func (c *Config) TodoPath() string { return c.abs(c.TodoFile) }

// HandoffPath returns the absolute handoff document path.
func (c *Config) HandoffPath() string { return c.abs(c.HandoffFile) }

func (c *Config) abs(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.WorkDir, p)
}
