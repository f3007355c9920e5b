package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is resolved in three layers: built-in defaults, then the optional
// config.toml, then OLLAMA_* environment variables.
type Config struct {
	BaseURL        string `toml:"base_url"`
	DefaultModel   string `toml:"default_model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`

	Model    ModelConfig    `toml:"model"`
	Trace    TraceConfig    `toml:"trace"`
	Services ServicesConfig `toml:"services"`
}

type ModelConfig struct {
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

type TraceConfig struct {
	Endpoint string `toml:"endpoint"`
	URLPath  string `toml:"url_path"`
	APIKey   string `toml:"api_key"`
}

type ServicesConfig struct {
	Brave BraveConfig `toml:"brave"`
}

type BraveConfig struct {
	APIKey string `toml:"api_key"`
}

func Default() *Config {
	return &Config{
		BaseURL:        "http://localhost:11434",
		DefaultModel:   "llama3.2",
		TimeoutSeconds: 30,
		Model: ModelConfig{
			Temperature: 0.7,
			MaxTokens:   2048,
		},
	}
}

func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays the OLLAMA_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("OLLAMA_DEFAULT_MODEL"); v != "" {
		cfg.DefaultModel = v
	}
	if v := os.Getenv("OLLAMA_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Path is the config file location, e.g. ~/.config/ollamagent/config.toml.
func Path() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "ollamagent", "config.toml")
}
