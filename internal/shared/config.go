package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API      APIConfig      `toml:"api"`
	Session  SessionConfig  `toml:"session"`
	Database DatabaseConfig `toml:"database"`
	UI       UIConfig       `toml:"ui"`
}

// APIConfig contains backend endpoint settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// SessionConfig contains token persistence settings.
type SessionConfig struct {
	TokenPath string `toml:"token_path"`
}

// DatabaseConfig contains local course cache settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	AutoplaySeconds int `toml:"autoplay_seconds"`
}

// AutoplayInterval returns the carousel autoplay interval, falling back to
// the 7 second default when unset.
func (u UIConfig) AutoplayInterval() time.Duration {
	if u.AutoplaySeconds <= 0 {
		return 7 * time.Second
	}
	return time.Duration(u.AutoplaySeconds) * time.Second
}

// ResolveTokenPath returns the configured token path, defaulting to
// ~/.coursedeck/token.
func (s SessionConfig) ResolveTokenPath() string {
	if s.TokenPath != "" {
		return s.TokenPath
	}
	return filepath.Join(os.Getenv("HOME"), ".coursedeck", "token")
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
