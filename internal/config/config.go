// Package config manages llminfo's own settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all llminfo configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Cache   CacheConfig   `toml:"cache"`
	Logging LoggingConfig `toml:"logging"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultProvider string `toml:"default_provider"`
}

// CacheConfig holds model cache settings.
type CacheConfig struct {
	TTLHours float64 `toml:"ttl_hours"`
	Dir      string  `toml:"dir,omitempty"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultProvider: "openrouter",
		},
		Cache: CacheConfig{
			TTLHours: 1,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
// LLMINFO_CONFIG_DIR overrides it, mainly for tests.
func ConfigDir() string {
	if dir := os.Getenv("LLMINFO_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "llminfo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "llminfo")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CacheDir returns the model cache directory: the configured override, or
// the XDG cache location.
func CacheDir(cfg Config) string {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "llminfo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "llminfo")
}

// CacheTTL converts the configured TTL into a duration.
func CacheTTL(cfg Config) time.Duration {
	if cfg.Cache.TTLHours <= 0 {
		return time.Hour
	}
	return time.Duration(cfg.Cache.TTLHours * float64(time.Hour))
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
