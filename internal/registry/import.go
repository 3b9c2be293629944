package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/llminfo/internal/provider"
)

// LoadPluginFile reads and validates a single-provider plugin YAML document.
func LoadPluginFile(path string) (ProviderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ProviderConfig{}, &provider.ConfigurationError{
				Field:   "plugin_file",
				Message: "plugin file not found: " + path,
			}
		}
		return ProviderConfig{}, fmt.Errorf("reading plugin file: %w", err)
	}

	var cfg ProviderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProviderConfig{}, &provider.ConfigurationError{
			Field:   "plugin_file",
			Message: "invalid plugin YAML: " + err.Error(),
		}
	}

	if err := Validate(cfg); err != nil {
		return ProviderConfig{}, err
	}
	return cfg, nil
}

// Import appends or overwrites one provider entry in the user catalog,
// creating the catalog file and its directory as needed.
func Import(userCatalogPath string, cfg ProviderConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	user := Catalog{Providers: make(map[string]ProviderConfig)}

	data, err := os.ReadFile(userCatalogPath)
	if err == nil {
		if err := yaml.Unmarshal(data, &user); err != nil {
			return fmt.Errorf("parsing user catalog: %w", err)
		}
		if user.Providers == nil {
			user.Providers = make(map[string]ProviderConfig)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading user catalog: %w", err)
	}

	user.Providers[cfg.Name] = cfg

	out, err := yaml.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(userCatalogPath), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(userCatalogPath, out, 0o600); err != nil {
		return fmt.Errorf("writing user catalog: %w", err)
	}
	return nil
}
