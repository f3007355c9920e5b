package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OLLAMA_BASE_URL", "")
	t.Setenv("OLLAMA_DEFAULT_MODEL", "")
	t.Setenv("OLLAMA_TIMEOUT", "")
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434", cfg.BaseURL)
	assert.Equal(t, "llama3.2", cfg.DefaultModel)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 0.7, cfg.Model.Temperature)
	assert.Equal(t, 2048, cfg.Model.MaxTokens)
}

func TestConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url = "http://gpu-box:11434"
default_model = "mistral"
timeout_seconds = 120

[model]
temperature = 0.2
max_tokens = 4096

[services.brave]
api_key = "brv-test"
`), 0o644))

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "http://gpu-box:11434", cfg.BaseURL)
	assert.Equal(t, "mistral", cfg.DefaultModel)
	assert.Equal(t, 120*time.Second, cfg.Timeout())
	assert.Equal(t, 0.2, cfg.Model.Temperature)
	assert.Equal(t, "brv-test", cfg.Services.Brave.APIKey)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`default_model = "mistral"`), 0o644))

	t.Setenv("OLLAMA_BASE_URL", "http://other:11434")
	t.Setenv("OLLAMA_DEFAULT_MODEL", "phi3")
	t.Setenv("OLLAMA_TIMEOUT", "5")

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "http://other:11434", cfg.BaseURL)
	assert.Equal(t, "phi3", cfg.DefaultModel)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestBadEnvTimeoutIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("OLLAMA_TIMEOUT", "soon")

	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestBadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`base_url = [not toml`), 0o644))

	_, err := loadFrom(path)
	require.Error(t, err)
}
