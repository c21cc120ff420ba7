package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvAPIURL    = "TRACKMASTER_API_URL"
	EnvToken     = "TRACKMASTER_TOKEN"
	EnvGroupID   = "TRACKMASTER_GROUP_ID"
	EnvThemeFile = "TRACKMASTER_THEME_FILE"
	EnvEnvFile   = "TRACKMASTER_ENV_FILE"
	EnvLogLevel  = "TRACKMASTER_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
	API         APIConfig   `yaml:"api"`
	UI          UIConfig    `yaml:"ui"`
	LogLevel    string      `yaml:"log_level"`
}

// APIConfig locates the backend and bounds calls to it
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token,omitempty"`
	GroupID        int    `yaml:"group_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxAttempts    int    `yaml:"max_attempts"`
}

// UIConfig tunes the board
type UIConfig struct {
	NoticeSeconds      int `yaml:"notice_seconds"`
	DescriptionPreview int `yaml:"description_preview"`
}

// Timeout returns the per-request timeout
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// NoticeDuration returns how long notifications stay on screen
func (u UIConfig) NoticeDuration() time.Duration {
	return time.Duration(u.NoticeSeconds) * time.Second
}

// Default returns a config with every default applied
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from TRACKMASTER_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadDotEnv reads a .env file into the process environment.
// Variables that are already set win. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(EnvEnvFile)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load loads config from the user's config directory, then applies
// .env and environment overrides.
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	config := &Config{}
	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	loadThemeFile(config)
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory.
// The token is never written.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	out := *c
	out.API.Token = ""
	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "trackmaster", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "trackmaster", "config.yaml"), nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		c.API.Token = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvGroupID)); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvGroupID, v, err)
		}
		c.API.GroupID = id
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8080"
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 10
	}
	if c.API.MaxAttempts <= 0 {
		c.API.MaxAttempts = 3
	}
	if c.UI.NoticeSeconds <= 0 {
		c.UI.NoticeSeconds = 4
	}
	if c.UI.DescriptionPreview <= 0 {
		c.UI.DescriptionPreview = 100
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
