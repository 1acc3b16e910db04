package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("Default Config", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "http://localhost:5000" {
			t.Errorf("expected default base URL 'http://localhost:5000', got %s", config.API.BaseURL)
		}
		if config.Database.Path != "coursedeck.db" {
			t.Errorf("expected default database path 'coursedeck.db', got %s", config.Database.Path)
		}
		if config.UI.AutoplayInterval() != 7*time.Second {
			t.Errorf("expected 7s autoplay interval, got %v", config.UI.AutoplayInterval())
		}
	})

	t.Run("Load Config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[api]
base_url = "https://courses.example.com"

[session]
token_path = "/tmp/coursedeck-token"

[ui]
autoplay_seconds = 3
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected config to load, got %v", err)
		}
		if config.API.BaseURL != "https://courses.example.com" {
			t.Errorf("expected configured base URL, got %s", config.API.BaseURL)
		}
		if config.Session.ResolveTokenPath() != "/tmp/coursedeck-token" {
			t.Errorf("expected configured token path, got %s", config.Session.ResolveTokenPath())
		}
		if config.UI.AutoplayInterval() != 3*time.Second {
			t.Errorf("expected 3s autoplay interval, got %v", config.UI.AutoplayInterval())
		}
	})

	t.Run("Load Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("Load Invalid TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("api = [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected parse error for invalid TOML")
		}
	})

	t.Run("Token Path Default", func(t *testing.T) {
		var s SessionConfig
		path := s.ResolveTokenPath()
		if filepath.Base(path) != "token" {
			t.Errorf("expected default token file name 'token', got %s", path)
		}
	})

	t.Run("Create Config File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("expected config file to be created, got %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file at %s: %v", path, err)
		}
		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when config file already exists")
		}
	})
}
