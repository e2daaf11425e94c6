package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the ~/.killport/config.toml file.
type Config struct {
	Port    string  `toml:"port,omitempty" json:"port"`
	Netstat Netstat `toml:"netstat,omitempty" json:"netstat"`
}

// Netstat holds settings for the Windows netstat lookup.
type Netstat struct {
	Match string `toml:"match,omitempty" json:"match"`
}

// configDirOverride is set by the --config-dir flag or KILLPORT_HOME env var.
var configDirOverride string

// SetConfigDir allows the CLI to pass in the --config-dir / KILLPORT_HOME value.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// Home returns the config directory path.
// Precedence: --config-dir flag / SetConfigDir > KILLPORT_HOME env > ~/.killport
func Home() string {
	if configDirOverride != "" {
		return configDirOverride
	}
	if v := os.Getenv("KILLPORT_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".killport")
	}
	return filepath.Join(home, ".killport")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(Home(), "config.toml")
}

// EnsureDir creates the config home directory if it does not exist.
func EnsureDir() error {
	return os.MkdirAll(Home(), 0o755)
}

// Load reads config.toml and returns a Config struct.
// If the file does not exist, it returns a zero-value Config (defaults).
func Load() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}
	return cfg, nil
}

// Save writes the Config struct back to config.toml.
func Save(cfg *Config) error {
	if err := EnsureDir(); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(ConfigPath(), data, 0o644)
}

// validKeys lists the dot-separated keys that can be used with Get/Set.
var validKeys = map[string]bool{
	"port":          true,
	"netstat.match": true,
}

// Get retrieves a single config value by dot-separated key.
func Get(key string) (string, error) {
	if !validKeys[key] {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	cfg, err := Load()
	if err != nil {
		return "", err
	}
	return getField(cfg, key)
}

// Set validates and stores a single config value by dot-separated key.
// An empty value clears the key.
func Set(key, value string) error {
	if !validKeys[key] {
		return fmt.Errorf("unknown config key: %s", key)
	}
	cfg, err := Load()
	if err != nil {
		return err
	}
	if err := setField(cfg, key, value); err != nil {
		return err
	}
	return Save(cfg)
}

func getField(cfg *Config, key string) (string, error) {
	switch key {
	case "port":
		return cfg.Port, nil
	case "netstat.match":
		return cfg.Netstat.Match, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

func setField(cfg *Config, key, value string) error {
	switch key {
	case "port":
		if value != "" {
			if _, err := ParsePort(value, SourceFile); err != nil {
				return err
			}
		}
		cfg.Port = value
	case "netstat.match":
		if value != "" {
			if _, err := ParseMatch(value, SourceFile); err != nil {
				return err
			}
		}
		cfg.Netstat.Match = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
