package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// configFile is looked up inside the home directory.
const configFile = "config.yaml"

// Config holds runtime wiring options for the CLI.
//
// Values are resolved in order: defaults, then the YAML config file,
// then environment variables.
type Config struct {
	// Home is the state directory, e.g. $HOME/.anylist.
	Home string `env:"ANYLIST_HOME"`

	// BaseURL overrides the service endpoint.
	BaseURL string `env:"ANYLIST_BASE_URL"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `env:"ANYLIST_TIMEOUT"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `env:"ANYLIST_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() (Config, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Home:     filepath.Join(dir, ".anylist"),
		Timeout:  30 * time.Second,
		LogLevel: "info",
	}, nil
}

// Load resolves the effective configuration. home overrides the default
// state directory when non-empty (typically from a --home flag).
func Load(home string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if home != "" {
		cfg.Home = home
	}

	if err := mergeFile(&cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// mergeFile overlays values from Home/config.yaml; a missing file is not
// an error. The file may not relocate Home itself.
func mergeFile(cfg *Config) error {
	path := filepath.Join(cfg.Home, configFile)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var file struct {
		BaseURL  string `yaml:"base_url"`
		Timeout  string `yaml:"timeout"`
		LogLevel string `yaml:"log_level"`
	}
	if err := yaml.Unmarshal(b, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.Timeout != "" {
		d, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return fmt.Errorf("parse %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	return nil
}
