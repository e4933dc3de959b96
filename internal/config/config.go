package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Config represents the deskshell configuration
type Config struct {
	Version         string `yaml:"version"`
	Shell           string `yaml:"shell,omitempty"`
	CompletionShell string `yaml:"completion_shell,omitempty"`
	Prompt          string `yaml:"prompt,omitempty"`
	Log             Log    `yaml:"log,omitempty"`
}

// Log represents the diagnostic logging configuration
type Log struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"` // empty = host decides where records go
}

const (
	ConfigFileName         = ".deskshell.yml"
	CurrentVersion         = "1.0"
	DefaultShell           = "sh"
	DefaultCompletionShell = "bash"
	DefaultPrompt          = "$ "
	DefaultLogLevel        = "info"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Version:         CurrentVersion,
		Shell:           DefaultShell,
		CompletionShell: DefaultCompletionShell,
		Prompt:          DefaultPrompt,
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// DefaultPath returns ~/.deskshell.yml, using HOME the same way the session does
func DefaultPath() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = "/"
	}
	return filepath.Join(home, ConfigFileName)
}

// LoadConfig loads configuration from configPath
func LoadConfig(configPath string) (*Config, error) {
	// If config file doesn't exist, use defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate fills in defaults and validates the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Shell == "" {
		c.Shell = DefaultShell
	}
	if c.CompletionShell == "" {
		c.CompletionShell = DefaultCompletionShell
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	if _, ok := validLogLevels[c.Log.Level]; !ok {
		return fmt.Errorf("unsupported log level '%s'", c.Log.Level)
	}

	return nil
}

// Template returns the commented configuration written by 'deskshell init'
func Template() string {
	return `# deskshell configuration
version: "1.0"

# Shell used to run command lines (invoked as: <shell> -c <line>)
shell: sh

# Shell providing the compgen builtin for completions
completion_shell: bash

# Prompt suffix shown after the current directory in the terminal UI
prompt: "$ "

# Diagnostic logging
log:
  # One of: debug, info, warn, error
  level: info

  # Write log records to this file instead of the default sink
  # file: /tmp/deskshell.log
`
}
