// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default state directory name under the user's home directory.
const defaultStateDirName = ".resume-wizard"

// Config represents the CLI configuration. Values come from a JSON file,
// environment variables, and CLI flags, merged in that order with later
// sources winning.
type Config struct {
	// Generation
	Provider string `json:"provider,omitempty"` // Text generation provider: "claude" or "gemini"
	Model    string `json:"model,omitempty"`    // Model override; empty uses the provider default
	APIKey   string `json:"api_key,omitempty"`  // Provider API key

	// Persistence
	StateDir    string `json:"state_dir,omitempty"`    // Directory for the local draft state file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; set to persist drafts to a database

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Chrome binary for PDF export
	OutputDir  string `json:"output_dir,omitempty"`  // Directory exported documents are written to

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables. The API key falls
// back to the variable matching the resolved provider.
func (c *Config) FromEnv() {
	if c.Provider == "" {
		c.Provider = os.Getenv("LLM_PROVIDER")
	}
	if c.Model == "" {
		c.Model = os.Getenv("LLM_MODEL")
	}
	if c.APIKey == "" {
		if c.Provider == "gemini" {
			c.APIKey = os.Getenv("GEMINI_API_KEY")
		} else {
			c.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	if c.StateDir == "" {
		c.StateDir = os.Getenv("STATE_DIR")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ChromePath == "" {
		c.ChromePath = os.Getenv("CHROME_PATH")
	}
}

// Validate checks that the configuration has valid values.
// Note: The API key is not required here; generation commands check for it
// when they actually build a client.
func (c *Config) Validate() error {
	if c.Provider != "" && c.Provider != "claude" && c.Provider != "gemini" {
		return fmt.Errorf("config error: 'provider' must be \"claude\" or \"gemini\", got %q", c.Provider)
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flag values live in c; config file values come in as the
// defaults, so flags always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveStateDir returns the configured state directory, defaulting to a
// dot directory under the user's home.
func (c *Config) ResolveStateDir() (string, error) {
	if c.StateDir != "" {
		return c.StateDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultStateDirName), nil
}
