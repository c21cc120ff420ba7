package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points every config input at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvEnvFile, filepath.Join(tempDir, "missing.env"))
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvToken, "")
	t.Setenv(EnvGroupID, "")
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvLogLevel, "")
	return tempDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.GrabTask != "space" {
		t.Errorf("Default GrabTask key = %s, want space", defaults.GrabTask)
	}
	if defaults.PrevSprint != "[" || defaults.NextSprint != "]" {
		t.Errorf("Default sprint keys = %s %s, want [ ]", defaults.PrevSprint, defaults.NextSprint)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %s, want default", cfg.API.BaseURL)
	}
	if cfg.UI.NoticeDuration() != 4*time.Second {
		t.Errorf("NoticeDuration = %v, want 4s", cfg.UI.NoticeDuration())
	}
	if cfg.UI.DescriptionPreview != 100 {
		t.Errorf("DescriptionPreview = %d, want 100", cfg.UI.DescriptionPreview)
	}
	if cfg.API.MaxAttempts != 3 || cfg.API.Timeout() != 10*time.Second {
		t.Errorf("API defaults = %+v", cfg.API)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolate(t)

	writeFile(t, filepath.Join(tempDir, "trackmaster", "config.yaml"), `key_mappings:
  quit: "x"
theme:
  preset: monochrome
  accent: "#123456"
api:
  base_url: https://api.example.com
  group_id: 7
ui:
  notice_seconds: 2
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "a" {
		t.Errorf("AddTask = %s, want default a", cfg.KeyMappings.AddTask)
	}
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want custom", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Title != PresetColorScheme("monochrome").Title {
		t.Errorf("Title = %s, want monochrome preset", cfg.ColorScheme.Title)
	}
	if cfg.API.BaseURL != "https://api.example.com" || cfg.API.GroupID != 7 {
		t.Errorf("API = %+v", cfg.API)
	}
	if cfg.UI.NoticeSeconds != 2 {
		t.Errorf("NoticeSeconds = %d, want 2", cfg.UI.NoticeSeconds)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := isolate(t)
	writeFile(t, filepath.Join(tempDir, "trackmaster", "config.yaml"), "key_mappings: [unclosed")

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	tempDir := isolate(t)
	writeFile(t, filepath.Join(tempDir, "trackmaster", "config.yaml"), "api:\n  base_url: https://file.example.com\n  group_id: 1\n")

	t.Setenv(EnvAPIURL, "https://env.example.com")
	t.Setenv(EnvGroupID, "12")
	t.Setenv(EnvToken, "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %s, want env override", cfg.API.BaseURL)
	}
	if cfg.API.GroupID != 12 {
		t.Errorf("GroupID = %d, want 12", cfg.API.GroupID)
	}
	if cfg.API.Token != "tok" {
		t.Errorf("Token = %s, want tok", cfg.API.Token)
	}

	t.Setenv(EnvGroupID, "twelve")
	if _, err := Load(); err == nil {
		t.Error("Load() with non-numeric group id should fail")
	}
}

func TestDotEnvFile(t *testing.T) {
	tempDir := isolate(t)
	envFile := filepath.Join(tempDir, "board.env")
	writeFile(t, envFile, "TRACKMASTER_GROUP_ID=33\nTRACKMASTER_API_URL=https://dotenv.example.com\n")
	t.Setenv(EnvEnvFile, envFile)
	// set but empty, so godotenv does not overwrite it and the default applies
	t.Setenv(EnvAPIURL, "")
	os.Unsetenv(EnvGroupID)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.GroupID != 33 {
		t.Errorf("GroupID = %d, want 33 from .env", cfg.API.GroupID)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %s, existing env must win over .env", cfg.API.BaseURL)
	}
}

func TestThemeFileLoading(t *testing.T) {
	tempDir := isolate(t)
	themeFile := filepath.Join(tempDir, "theme.yaml")
	writeFile(t, themeFile, "theme:\n  accent: \"#FF0000\"\n  grab_border: \"#00FF00\"\n")
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.GrabBorder != "#00FF00" {
		t.Errorf("GrabBorder = %s, want #00FF00", cfg.ColorScheme.GrabBorder)
	}
	if cfg.ColorScheme.Delete != DefaultColorScheme().Delete {
		t.Errorf("Delete = %s, want default", cfg.ColorScheme.Delete)
	}
}

func TestSaveOmitsToken(t *testing.T) {
	tempDir := isolate(t)

	cfg := Default()
	cfg.API.Token = "secret"
	cfg.API.GroupID = 5
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tempDir, "trackmaster", "config.yaml"))
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("saved config must not contain the token")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.API.GroupID != 5 {
		t.Errorf("GroupID = %d, want 5", loaded.API.GroupID)
	}
}
