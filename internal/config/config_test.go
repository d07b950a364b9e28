package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"provider": "gemini",
		"model": "gemini-2.5-flash",
		"state_dir": "/tmp/wizard-state",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "/tmp/wizard-state", cfg.StateDir)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("STATE_DIR", "/tmp/env-state")
	t.Setenv("DATABASE_URL", "postgres://localhost/wizard")

	cfg := &Config{}
	cfg.FromEnv()

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "/tmp/env-state", cfg.StateDir)
	assert.Equal(t, "postgres://localhost/wizard", cfg.DatabaseURL)
}

func TestFromEnv_DoesNotOverrideSetFields(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	cfg := &Config{Provider: "claude", APIKey: "file-key"}
	cfg.FromEnv()

	assert.Equal(t, "claude", cfg.Provider)
	assert.Equal(t, "file-key", cfg.APIKey)
}

func TestFromEnv_KeyFollowsProvider(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "claude-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	claude := &Config{Provider: "claude"}
	claude.FromEnv()
	assert.Equal(t, "claude-key", claude.APIKey)

	gemini := &Config{Provider: "gemini"}
	gemini.FromEnv()
	assert.Equal(t, "gemini-key", gemini.APIKey)
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "gpt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "provider")
}

func TestValidate_MissingChromeBinary(t *testing.T) {
	cfg := &Config{ChromePath: "/nonexistent/chrome"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chrome binary not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Provider: "claude",
		APIKey:   "test-key",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Provider:    "gemini",
		APIKey:      "default-key",
		StateDir:    "/default/state",
		DatabaseURL: "postgres://localhost/wizard",
	}

	partial := Config{
		Provider: "claude",
		Model:    "claude-sonnet-4-20250514",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "claude", merged.Provider)
	assert.Equal(t, "claude-sonnet-4-20250514", merged.Model)

	// Default values should fill in empty fields
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "/default/state", merged.StateDir)
	assert.Equal(t, "postgres://localhost/wizard", merged.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Provider: "claude",
		StateDir: "/custom/state",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "claude", merged.Provider)
	assert.Equal(t, "/custom/state", merged.StateDir)
}

func TestResolveStateDir(t *testing.T) {
	explicit := &Config{StateDir: "/explicit/state"}
	dir, err := explicit.ResolveStateDir()
	require.NoError(t, err)
	assert.Equal(t, "/explicit/state", dir)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	implicit := &Config{}
	dir, err = implicit.ResolveStateDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".resume-wizard"), dir)
}
