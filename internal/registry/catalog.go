// Package registry loads declarative provider catalogs and builds Provider
// instances from them. A built-in catalog ships inside the binary; a user
// catalog in the config directory overlays it, winning on name collisions.
package registry

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed providers.yml
var builtinCatalog []byte

// ProviderConfig is one provider entry in a catalog or plugin file.
type ProviderConfig struct {
	Name            string  `yaml:"name"`
	BaseURL         string  `yaml:"base_url"`
	APIKeyEnv       string  `yaml:"api_key_env"`
	ModelsEndpoint  string  `yaml:"models_endpoint"`
	CreditsEndpoint *string `yaml:"credits_endpoint,omitempty"`
	Parser          string  `yaml:"parser"`
}

// Catalog is the on-disk catalog document shape.
type Catalog struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// UserCatalogPath returns the user catalog location inside the config dir.
// dir is the resolved config directory.
func UserCatalogPath(dir string) string {
	return filepath.Join(dir, "providers.yml")
}

// LoadCatalog returns the built-in catalog overlaid with the user catalog
// at the given path. A missing user file is fine.
func LoadCatalog(userPath string) (Catalog, error) {
	var merged Catalog
	if err := yaml.Unmarshal(builtinCatalog, &merged); err != nil {
		return Catalog{}, fmt.Errorf("parsing built-in catalog: %w", err)
	}
	if merged.Providers == nil {
		merged.Providers = make(map[string]ProviderConfig)
	}

	data, err := os.ReadFile(userPath)
	if err != nil {
		if os.IsNotExist(err) {
			return merged, nil
		}
		return Catalog{}, fmt.Errorf("reading user catalog: %w", err)
	}

	var user Catalog
	if err := yaml.Unmarshal(data, &user); err != nil {
		return Catalog{}, fmt.Errorf("parsing user catalog: %w", err)
	}
	for name, cfg := range user.Providers {
		merged.Providers[name] = cfg
	}

	return merged, nil
}
