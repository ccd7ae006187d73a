package commands

import (
	"os"
	"path/filepath"
)

// Flags holds global flag destinations shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	WorkDir    string
}

// DefaultConfigPath returns the default config file path using
// XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "promptq", "config.yaml")
}

// DefaultWorkDir returns the current directory; prompt files live alongside
// the project they describe.
func DefaultWorkDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
